// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and fixed-timestep ticking.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per render frame. Simulation ticks are derived from
// the elapsed time between frames, not from the frame rate itself.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
