package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Render frames per second (default 60)
	Seed    int64 // RNG seed for deterministic gameplay
}

// GameState communicates game status to the platform layer.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score seen so far (persisted by the platform)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}
