package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkostin/termsnake/internal/core"
	"github.com/mkostin/termsnake/internal/snake"
	"github.com/mkostin/termsnake/internal/storage"
)

// Model is the Bubble Tea model driving the game. It owns the fixed-timestep
// loop: every frame it folds the elapsed wall time into an accumulator and
// runs zero or more simulation ticks, then the view renders exactly once.
type Model struct {
	game   *snake.Game
	screen *core.Screen
	store  *storage.Store
	keys   KeyMap
	cfg    core.RuntimeConfig

	// Fixed-timestep accumulator state. lastFrame is zeroed to reset the
	// timing reference, e.g. when resuming from pause.
	lastFrame time.Time
	acc       time.Duration

	quitting   bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewModel creates a model for the given game. The game is reset here; seed
// the persisted best with game.SetBest afterwards.
func NewModel(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		keys:   DefaultKeyMap(),
		cfg:    cfg,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.cfg.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Direction changes are staged on the
// game and consumed by its next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)

	if d, ok := action.Direction(); ok {
		m.game.SetDirection(d)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		if resumed := m.game.TogglePause(); resumed {
			// Drop the time spent paused so no catch-up burst fires.
			m.lastFrame = time.Time{}
			m.acc = 0
		}
	case core.ActionRestart:
		m = m.restart()
	}

	return m, nil
}

// restart begins a fresh game with a new seed. The best score survives inside
// the game; only the score history row was persisted.
func (m Model) restart() Model {
	m.cfg.Seed = time.Now().UnixNano()
	m.game.Reset(m.cfg)
	m.scoreSaved = false
	m.lastFrame = time.Time{}
	m.acc = 0
	return m
}

// handleResize processes window resize events without resetting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.cfg.ScreenW = msg.Width
	m.cfg.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.SetScreenSize(msg.Width, msg.Height)
	return m, nil
}

// handleFrame advances the fixed-timestep simulation. Elapsed real time goes
// into the accumulator; each full tick interval in it buys one Tick call, so
// the simulation keeps real-time cadence even when a frame arrives late.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastFrame.IsZero() {
		m.acc += now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	for interval := m.game.Interval(); m.acc >= interval; interval = m.game.Interval() {
		m.acc -= interval
		m.game.Tick()
	}

	// Save the score once per game over.
	state := m.game.State()
	if state.GameOver && !m.scoreSaved {
		if m.store != nil && state.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(snake.GameID, state.Score)
		}
		m.scoreSaved = true
	}

	return m, frameCmd(m.cfg.FPS)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".termsnake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", snake.GameID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	if store != nil {
		if best, err := store.HighScore(snake.GameID); err == nil {
			game.SetBest(best)
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
