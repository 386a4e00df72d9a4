package snake

import (
	"testing"

	"github.com/mkostin/termsnake/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 24,
	}
}

func newTestGame(seed int64) *Game {
	g := New(DefaultParams())
	g.Reset(testConfig(seed))
	return g
}

func TestInitialState(t *testing.T) {
	g := newTestGame(1)

	snap := g.Snapshot()
	if snap.State != StateRunning {
		t.Errorf("Initial state = %s, expected running", snap.State)
	}
	if snap.Score != 0 {
		t.Errorf("Initial score = %d, expected 0", snap.Score)
	}
	if snap.SnakeLen != DefaultParams().InitialLength {
		t.Errorf("Initial length = %d, expected %d", snap.SnakeLen, DefaultParams().InitialLength)
	}
	if snap.Dir != "right" {
		t.Errorf("Initial direction = %s, expected right", snap.Dir)
	}
	if snap.IntervalMs != DefaultParams().BaseIntervalMs {
		t.Errorf("Initial interval = %v, expected %v", snap.IntervalMs, DefaultParams().BaseIntervalMs)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs must produce identical snapshots
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := 0; i < 100; i++ {
		if i == 20 {
			g1.SetDirection(core.DirDown)
			g2.SetDirection(core.DirDown)
		}
		if i == 40 {
			g1.SetDirection(core.DirLeft)
			g2.SetDirection(core.DirLeft)
		}
		g1.Tick()
		g2.Tick()
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(42)

	// Moving right; left is the exact reverse and must be rejected
	g.SetDirection(core.DirLeft)
	if g.pendingDir == core.DirLeft {
		t.Error("Should not allow immediate reversal from right to left")
	}
	if g.pendingDir != core.DirRight {
		t.Errorf("pendingDir = %v, expected unchanged right", g.pendingDir)
	}

	// A perpendicular turn is accepted
	g.SetDirection(core.DirUp)
	if g.pendingDir != core.DirUp {
		t.Errorf("pendingDir = %v, expected up", g.pendingDir)
	}

	// The rejection is against the committed direction, not the pending one:
	// still moving right, so left stays rejected even with up staged
	g.SetDirection(core.DirLeft)
	if g.pendingDir != core.DirUp {
		t.Errorf("pendingDir = %v, expected up to survive a rejected left", g.pendingDir)
	}
}

func TestTickMovesWithoutGrowth(t *testing.T) {
	g := newTestGame(7)

	// Make sure food is not directly ahead
	head := g.snake[0]
	if (g.food == core.Point{X: head.X + 1, Y: head.Y}) {
		g.food = core.Point{X: 0, Y: 0}
	}

	lenBefore := len(g.snake)
	g.Tick()

	if len(g.snake) != lenBefore {
		t.Errorf("Length changed on a non-eating tick: %d -> %d", lenBefore, len(g.snake))
	}
	if g.snake[0] != (core.Point{X: head.X + 1, Y: head.Y}) {
		t.Errorf("Head = %v, expected one cell right of %v", g.snake[0], head)
	}
}

func TestEatFoodGrowsAndScores(t *testing.T) {
	g := newTestGame(222)

	// Place food directly ahead of the head
	head := g.snake[0]
	g.food = core.Point{X: head.X + 1, Y: head.Y}

	lenBefore := len(g.snake)
	g.Tick()

	if len(g.snake) != lenBefore+1 {
		t.Errorf("Length = %d, expected %d after eating", len(g.snake), lenBefore+1)
	}
	if g.score != 1 {
		t.Errorf("Score = %d, expected 1 after eating", g.score)
	}

	// Food relocated to a cell the snake does not occupy
	if g.occupied(g.food) {
		t.Errorf("Respawned food at %v overlaps the snake", g.food)
	}
	if g.food.X < 0 || g.food.X >= g.params.Columns || g.food.Y < 0 || g.food.Y >= g.params.Rows {
		t.Errorf("Respawned food at %v is out of bounds", g.food)
	}
}

func TestWallCollision(t *testing.T) {
	g := newTestGame(333)

	// Snake at the right-most column, moving right
	y := g.params.Rows / 2
	g.snake = []core.Point{
		{X: g.params.Columns - 1, Y: y},
		{X: g.params.Columns - 2, Y: y},
		{X: g.params.Columns - 3, Y: y},
	}
	g.dir = core.DirRight
	g.pendingDir = core.DirRight

	g.Tick()

	if !g.gameOver {
		t.Error("Game should be over after hitting the right wall")
	}
}

func TestWallCollisionUpdatesBestOnlyOnImprovement(t *testing.T) {
	tests := []struct {
		name         string
		score, best  int
		expectedBest int
	}{
		{"new best", 7, 5, 7},
		{"not a new best", 3, 5, 5},
		{"equal score keeps best", 5, 5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(333)
			g.score = tc.score
			g.best = tc.best

			g.snake = []core.Point{{X: g.params.Columns - 1, Y: 5}}
			g.dir = core.DirRight
			g.pendingDir = core.DirRight
			g.Tick()

			if !g.gameOver {
				t.Fatal("Expected game over")
			}
			if g.best != tc.expectedBest {
				t.Errorf("Best = %d, expected %d", g.best, tc.expectedBest)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(111)

	// Spiral that hits itself when moving right
	g.snake = []core.Point{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.dir = core.DirRight
	g.pendingDir = core.DirRight

	g.Tick()

	if !g.gameOver {
		t.Error("Game should be over after self collision")
	}
}

func TestTailCellCollision(t *testing.T) {
	g := newTestGame(112)

	// A tight 2x2 loop: the head moves into the cell the tail occupies.
	// Any occupied segment ends the game, the tail included.
	g.snake = []core.Point{
		{X: 5, Y: 5}, // Head
		{X: 6, Y: 5},
		{X: 6, Y: 6},
		{X: 5, Y: 6}, // Tail
	}
	g.dir = core.DirDown
	g.pendingDir = core.DirDown

	g.Tick()

	if !g.gameOver {
		t.Error("Moving into the tail cell should end the game")
	}
}

func TestPausedTicksAreNoops(t *testing.T) {
	g := newTestGame(555)

	g.TogglePause()
	before := g.Snapshot()

	for i := 0; i < 25; i++ {
		g.Tick()
	}

	after := g.Snapshot()
	if before != after {
		t.Errorf("Paused ticks changed state:\n%+v\n%+v", before, after)
	}
}

func TestTogglePauseAfterGameOverIsNoop(t *testing.T) {
	g := newTestGame(556)
	g.gameOver = true

	g.TogglePause()
	if g.paused {
		t.Error("TogglePause should be a no-op once the game is over")
	}
}

func TestSpeedUpAndFloor(t *testing.T) {
	params := DefaultParams()
	params.SpeedUpEvery = 1 // Speed up on every point to hit the floor quickly
	g := New(params)
	g.Reset(testConfig(777))

	// Place the snake at the left edge so it can eat in a straight line
	y := g.params.Rows / 2
	g.snake = []core.Point{
		{X: 4, Y: y},
		{X: 3, Y: y},
		{X: 2, Y: y},
		{X: 1, Y: y},
	}
	g.dir = core.DirRight
	g.pendingDir = core.DirRight

	prev := g.intervalMs
	for i := 0; i < 20; i++ {
		g.food = core.Point{X: g.snake[0].X + 1, Y: y}
		g.Tick()
		if g.gameOver {
			t.Fatalf("Unexpected game over at eat %d", i)
		}
		if g.intervalMs > prev {
			t.Errorf("Interval increased: %v -> %v", prev, g.intervalMs)
		}
		if g.intervalMs < g.params.MinIntervalMs {
			t.Errorf("Interval %v below floor %v", g.intervalMs, g.params.MinIntervalMs)
		}
		prev = g.intervalMs
	}

	if g.intervalMs != g.params.MinIntervalMs {
		t.Errorf("Interval = %v, expected the floor %v after 20 speed-ups", g.intervalMs, g.params.MinIntervalMs)
	}
}

func TestScoreResetsButBestSurvives(t *testing.T) {
	g := newTestGame(888)
	g.score = 9
	g.endGame()

	if g.best != 9 {
		t.Fatalf("Best = %d, expected 9 after game over", g.best)
	}

	g.Reset(testConfig(889))
	if g.score != 0 {
		t.Errorf("Score = %d, expected 0 after reset", g.score)
	}
	if g.best != 9 {
		t.Errorf("Best = %d, expected 9 to survive reset", g.best)
	}
	if g.gameOver || g.paused {
		t.Error("Reset should return to the running state")
	}
}

func TestSetBestNeverDecreases(t *testing.T) {
	g := newTestGame(890)
	g.SetBest(12)
	g.SetBest(5)
	if g.Best() != 12 {
		t.Errorf("Best = %d, expected 12 (SetBest must not lower it)", g.Best())
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	g := newTestGame(999)

	for i := 0; i < 100; i++ {
		g.spawnFood()

		if g.occupied(g.food) {
			t.Errorf("Food spawned on snake at %v", g.food)
		}
		if g.food.X < 0 || g.food.X >= g.params.Columns || g.food.Y < 0 || g.food.Y >= g.params.Rows {
			t.Errorf("Food spawned out of bounds at %v", g.food)
		}
	}
}

func TestFoodSpawnGridFullFallback(t *testing.T) {
	params := DefaultParams()
	params.Columns = 2
	params.Rows = 2
	params.InitialLength = 2
	g := New(params)
	g.Reset(testConfig(1000))

	// Snake fills the entire grid
	g.snake = []core.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}

	g.spawnFood()
	if g.food != (core.Point{X: 0, Y: 0}) {
		t.Errorf("Food = %v, expected the (0, 0) fallback on a full grid", g.food)
	}
}

func TestSpeedMultiplier(t *testing.T) {
	g := newTestGame(1100)

	if m := g.SpeedMultiplier(); m != 1.0 {
		t.Errorf("Multiplier = %v, expected 1.0 at base speed", m)
	}

	g.intervalMs = g.params.MinIntervalMs
	if m := g.SpeedMultiplier(); m != g.params.MultiplierCap {
		t.Errorf("Multiplier = %v, expected the %v cap at the floor", m, g.params.MultiplierCap)
	}
}

func TestTickAfterGameOverIsNoop(t *testing.T) {
	g := newTestGame(1200)
	g.gameOver = true

	before := g.Snapshot()
	g.Tick()
	if g.Snapshot() != before {
		t.Error("Tick should be a no-op once the game is over")
	}
}

func TestResizeDoesNotResetGame(t *testing.T) {
	g := newTestGame(1300)
	g.score = 4
	g.Tick()
	before := g.Snapshot()

	g.SetScreenSize(100, 40)
	if g.Snapshot() != before {
		t.Error("Resize must not change simulation state")
	}

	// Shrinking below the board pauses via the too-small guard
	g.SetScreenSize(10, 5)
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, expected paused_small_window", g.Snapshot().State)
	}

	g.SetScreenSize(100, 40)
	if g.Snapshot().State != StateRunning {
		t.Errorf("State = %s, expected running after growing back", g.Snapshot().State)
	}
}
