package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var flagPlaySize int

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play 2048",
	Long: `Start a game in the terminal. Without a game ID a menu lets you pick
the board size.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  P                - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play 2048_3x3
  t2048 play --size 7
  t2048 play --seed 42 --log-file t2048.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlaySize, "size", 0, "Board side length, skips the menu")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Get terminal size early for the menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := settings.Runtime(width, height)

	var game registry.Game
	switch {
	case len(args) == 1:
		gameID := args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q, run 't2048 list' to see available games", gameID)
		}
		g, err := registry.Create(gameID)
		if err != nil {
			return err
		}
		game = g

	case cmd.Flags().Changed("size"):
		g, err := gameForSize(flagPlaySize)
		if err != nil {
			return err
		}
		game = g

	case !hasVariant(settings.Board.Size):
		// The menu only lists registered sizes, so start the configured one directly.
		g, err := gameForSize(settings.Board.Size)
		if err != nil {
			return err
		}
		game = g

	default:
		result, err := tui.RunMenu(cfg, settings.Board.Size)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config
		g, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}
		game = g
	}

	logger.Info("starting game", "game", game.ID(), "seed", cfg.Seed)
	return tui.Run(game, cfg, logger)
}

// gameForSize returns the registered variant for size, or an unregistered
// board of that size when no variant exists.
func gameForSize(size int) (registry.Game, error) {
	if size < config.MinBoardSize || size > config.MaxBoardSize {
		return nil, fmt.Errorf("board size %d not in [%d, %d]", size, config.MinBoardSize, config.MaxBoardSize)
	}
	if info, ok := registry.BySize(size); ok {
		return registry.Create(info.ID)
	}
	return t2048.New(size), nil
}

func hasVariant(size int) bool {
	_, ok := registry.BySize(size)
	return ok
}
