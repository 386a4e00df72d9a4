package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkostin/termsnake/internal/config"
	"github.com/mkostin/termsnake/internal/core"
	"github.com/mkostin/termsnake/internal/platform/tui"
	"github.com/mkostin/termsnake/internal/snake"
	"github.com/mkostin/termsnake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD - Steer
  Space       - Pause/resume
  R           - Restart
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower base speed
  normal - Default speed
  hard   - Faster base speed
  fixed  - No speed-up as the score climbs

Examples:
  termsnake play
  termsnake play --difficulty hard
  termsnake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !config.ValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	// Load game configuration
	snakeCfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplySnakePreset(&snakeCfg, config.DifficultyPreset(flagDifficulty))

	// Probe the terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     flagFPS,
		Seed:    flagSeed,
	}

	game := snake.New(toParams(snakeCfg))

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works, best resets to 0
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// toParams converts the YAML configuration into gameplay constants.
func toParams(cfg config.SnakeConfig) snake.Params {
	return snake.Params{
		Columns:        cfg.Grid.Columns,
		Rows:           cfg.Grid.Rows,
		InitialLength:  cfg.Snake.InitialLength,
		BaseIntervalMs: cfg.Speed.BaseIntervalMs,
		SpeedUpEvery:   cfg.Speed.SpeedUpEvery,
		SpeedUpFactor:  cfg.Speed.SpeedUpFactor,
		MinIntervalMs:  cfg.Speed.MinIntervalMs,
		MultiplierCap:  cfg.Speed.MultiplierCap,
	}
}
