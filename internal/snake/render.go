package snake

import (
	"fmt"

	"github.com/mkostin/termsnake/internal/core"
)

// Glyphs for game elements.
const (
	runeFood      = '●'
	runeHead      = '█'
	runeBody      = '▓'
	runeBoard     = ' '
	runeSeparator = '─'
)

// Render draws the current game state into the screen buffer. It reads state
// and never mutates it; the buffer is cleared first.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderFood(dst)
	g.renderSnake(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Best: %d  Press R to restart", g.score, g.best))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press Space to resume")
	}
}

// renderHUD draws the top status bar: score, best, and speed multiplier.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d  Best: %d  Speed: %.2fx", g.score, g.best, g.SpeedMultiplier())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), runeSeparator)
}

// renderBoard draws the checkerboard background, two shades alternating by
// (x+y) parity.
func (g *Game) renderBoard(dst *core.Screen) {
	for y := 0; y < g.params.Rows; y++ {
		for x := 0; x < g.params.Columns; x++ {
			bg := core.ColorBoardDark
			if (x+y)%2 == 0 {
				bg = core.ColorBoardLight
			}
			dst.SetCell(g.boardX+x, g.boardY+y, runeBoard, core.ColorDefault, bg)
		}
	}
}

// renderFood draws the food cell, keeping the checker shade beneath it.
func (g *Game) renderFood(dst *core.Screen) {
	cell := dst.GetCell(g.boardX+g.food.X, g.boardY+g.food.Y)
	dst.SetCell(g.boardX+g.food.X, g.boardY+g.food.Y, runeFood, core.ColorBrightRed, cell.Bg)
}

// renderSnake draws segments tail-to-head so the head lands on top.
func (g *Game) renderSnake(dst *core.Screen) {
	for i := len(g.snake) - 1; i >= 0; i-- {
		seg := g.snake[i]
		r := runeBody
		fg := core.ColorGreen
		if i == 0 {
			r = runeHead
			fg = core.ColorBrightGreen
		}
		cell := dst.GetCell(g.boardX+seg.X, g.boardY+seg.Y)
		dst.SetCell(g.boardX+seg.X, g.boardY+seg.Y, r, fg, cell.Bg)
	}
}

// renderOverlay draws a centered box with a title and subtitle.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(title), len(subtitle))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault, core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
