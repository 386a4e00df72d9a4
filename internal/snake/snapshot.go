package snake

// StateType labels the coarse game state for snapshots.
type StateType string

const (
	StateRunning     StateType = "running"
	StatePaused      StateType = "paused"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete observable game state for determinism
// testing.
type Snapshot struct {
	Tick       uint64
	Score      int
	Best       int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Dir        string
	PendingDir string
	FoodX      int
	FoodY      int
	IntervalMs float64
	State      StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		Best:       g.best,
		SnakeLen:   len(g.snake),
		HeadX:      headX,
		HeadY:      headY,
		Dir:        g.dir.String(),
		PendingDir: g.pendingDir.String(),
		FoodX:      g.food.X,
		FoodY:      g.food.Y,
		IntervalMs: g.intervalMs,
		State:      state,
	}
}
