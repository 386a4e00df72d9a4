// Package snake implements the Snake game: a fixed-size grid, a snake advanced
// one cell per tick, food that grows it, and a tick interval that shrinks as
// the score climbs. The package is pure logic; rendering targets a core.Screen
// buffer and the platform layer owns timing, input devices, and persistence.
package snake

import (
	"math"
	"math/rand"
	"time"

	"github.com/mkostin/termsnake/internal/core"
)

// GameID is the identifier used for CLI commands and score storage.
const GameID = "snake"

// Params holds the gameplay constants. Zero values are replaced by defaults
// in New, so a partially filled struct is safe.
type Params struct {
	Columns        int     // Grid width in cells
	Rows           int     // Grid height in cells
	InitialLength  int     // Snake length at reset
	BaseIntervalMs float64 // Tick interval at score 0
	SpeedUpEvery   int     // Speed up after every N points (0 disables)
	SpeedUpFactor  float64 // Interval multiplier per speed-up step
	MinIntervalMs  float64 // Interval floor
	MultiplierCap  float64 // Display cap for the speed multiplier
}

// DefaultParams returns the standard gameplay constants.
func DefaultParams() Params {
	return Params{
		Columns:        32,
		Rows:           20,
		InitialLength:  4,
		BaseIntervalMs: 150,
		SpeedUpEvery:   5,
		SpeedUpFactor:  0.92,
		MinIntervalMs:  45,
		MultiplierCap:  3.0,
	}
}

// withDefaults fills zero fields from DefaultParams.
func (p Params) withDefaults() Params {
	def := DefaultParams()
	if p.Columns <= 0 {
		p.Columns = def.Columns
	}
	if p.Rows <= 0 {
		p.Rows = def.Rows
	}
	if p.InitialLength <= 0 {
		p.InitialLength = def.InitialLength
	}
	if p.BaseIntervalMs <= 0 {
		p.BaseIntervalMs = def.BaseIntervalMs
	}
	if p.SpeedUpFactor <= 0 || p.SpeedUpFactor >= 1 {
		p.SpeedUpFactor = def.SpeedUpFactor
	}
	if p.MinIntervalMs <= 0 {
		p.MinIntervalMs = def.MinIntervalMs
	}
	if p.MultiplierCap <= 0 {
		p.MultiplierCap = def.MultiplierCap
	}
	return p
}

// Game holds the complete Snake game state. Operations are synchronous and
// non-blocking; the loop driver decides when Tick runs.
type Game struct {
	params Params
	rng    *rand.Rand
	tick   uint64

	// Snake state, head at index 0.
	snake      []core.Point
	dir        core.Direction
	pendingDir core.Direction
	food       core.Point

	score      int
	best       int // Survives Reset; seeded from storage by the platform
	intervalMs float64
	paused     bool
	gameOver   bool

	// Screen layout
	screenW   int
	screenH   int
	hudHeight int
	boardX    int
	boardY    int
	tooSmall  bool
}

// New creates a game with the given parameters. Call Reset before use.
func New(params Params) *Game {
	return &Game{params: params.withDefaults()}
}

// Params returns the gameplay constants the game was built with.
func (g *Game) Params() Params {
	return g.params
}

// Reset initializes or restarts the game. The best score survives; everything
// else reinitializes. The RuntimeConfig provides screen dimensions and the
// RNG seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.intervalMs = g.params.BaseIntervalMs
	g.paused = false
	g.gameOver = false
	g.hudHeight = 2

	g.initSnake()
	g.spawnFood()
	g.SetScreenSize(cfg.ScreenW, cfg.ScreenH)
}

// initSnake places the snake mid-grid, heading right, body extending left.
func (g *Game) initSnake() {
	head := core.Point{X: g.params.Columns / 2, Y: g.params.Rows / 2}
	g.snake = make([]core.Point, 0, g.params.InitialLength)
	for i := 0; i < g.params.InitialLength; i++ {
		g.snake = append(g.snake, core.Point{X: head.X - i, Y: head.Y})
	}
	g.dir = core.DirRight
	g.pendingDir = core.DirRight
}

// SetScreenSize updates the screen dimensions and recomputes the board
// placement. Unlike a reset, the simulation state is untouched, so a terminal
// resize never loses a running game.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h

	requiredW := g.params.Columns + 2
	requiredH := g.params.Rows + g.hudHeight + 1
	g.tooSmall = w < requiredW || h < requiredH
	if g.tooSmall {
		return
	}

	// Center the board below the HUD.
	g.boardX = (w - g.params.Columns) / 2
	g.boardY = g.hudHeight + (h-g.hudHeight-g.params.Rows)/2
}

// SetBest seeds the best score, typically from persisted storage at startup.
// A lower value than the current best is ignored.
func (g *Game) SetBest(best int) {
	if best > g.best {
		g.best = best
	}
}

// Best returns the best score seen so far.
func (g *Game) Best() int {
	return g.best
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// SetDirection stages a direction change, applied on the next tick. A
// direction that is the exact reverse of the current one is ignored, so the
// snake can never turn back into its own neck.
func (g *Game) SetDirection(d core.Direction) {
	if d.Opposite() == g.dir {
		return
	}
	g.pendingDir = d
}

// TogglePause flips between paused and running. No-op once the game is over.
// Returns true if the game is now running (the loop driver resets its timing
// reference on resume so no catch-up burst fires).
func (g *Game) TogglePause() bool {
	if g.gameOver {
		return false
	}
	g.paused = !g.paused
	return !g.paused
}

// Tick advances the simulation by one step: commit the staged direction, move
// the head, detect collisions, and handle food. No-op while paused or after
// game over.
func (g *Game) Tick() {
	if g.paused || g.gameOver || g.tooSmall {
		return
	}
	g.tick++

	g.dir = g.pendingDir
	next := g.snake[0].Add(g.dir.Vector())

	if next.X < 0 || next.X >= g.params.Columns || next.Y < 0 || next.Y >= g.params.Rows {
		g.endGame()
		return
	}
	if g.occupied(next) {
		g.endGame()
		return
	}

	g.snake = append([]core.Point{next}, g.snake...)

	if next == g.food {
		g.score++
		if g.params.SpeedUpEvery > 0 && g.score%g.params.SpeedUpEvery == 0 {
			g.intervalMs = math.Max(g.params.MinIntervalMs, g.intervalMs*g.params.SpeedUpFactor)
		}
		g.spawnFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// endGame transitions to game over and folds the score into the best.
func (g *Game) endGame() {
	g.gameOver = true
	if g.score > g.best {
		g.best = g.score
	}
}

// spawnFood places food uniformly at random on a cell the snake does not
// occupy. With no empty cell left it falls back to the corner; the game does
// not define a win condition, play continues until a collision.
func (g *Game) spawnFood() {
	empty := make([]core.Point, 0, g.params.Columns*g.params.Rows-len(g.snake))
	for y := 0; y < g.params.Rows; y++ {
		for x := 0; x < g.params.Columns; x++ {
			p := core.Point{X: x, Y: y}
			if !g.occupied(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		g.food = core.Point{X: 0, Y: 0}
		return
	}
	g.food = empty[g.rng.Intn(len(empty))]
}

// occupied reports whether any snake segment sits on the given point.
func (g *Game) occupied(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Interval returns the current tick interval. The loop driver consumes its
// time accumulator in units of this.
func (g *Game) Interval() time.Duration {
	return time.Duration(g.intervalMs * float64(time.Millisecond))
}

// SpeedMultiplier returns the display ratio of the base interval to the
// current one, capped for display.
func (g *Game) SpeedMultiplier() float64 {
	m := g.params.BaseIntervalMs / g.intervalMs
	return math.Min(m, g.params.MultiplierCap)
}

// State returns the current game state for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
