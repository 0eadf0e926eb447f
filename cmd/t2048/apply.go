package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagBoard   string
	flagSize    int
	flagNoSpawn bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [moves...]",
	Short: "Apply moves to a board without the TUI",
	Long: `Parse a board (or create a new one) and apply each move in order, then
print the board in CSV form, as a grid of powers, and the game status.

Boards are comma-separated tile powers in row-major order, 0 for empty:
"1,0,0,3" is a 2x2 board holding a 2 and an 8.
Moves are N/U, S/D, W/L and E/R, case-insensitive.

Examples:
  t2048 apply --board 2,2,0,0,0,0,0,0,3,0,0,0,0,1,0,0 --no-spawn U
  t2048 apply --size 4 --seed 7 ULDR ULDR`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&flagBoard, "board", "", "Starting board as CSV powers")
	applyCmd.Flags().IntVar(&flagSize, "size", 0, "Side length of a new board when --board is omitted (default from config)")
	applyCmd.Flags().BoolVar(&flagNoSpawn, "no-spawn", false, "Slide and merge only, never spawn tiles")
}

// applyOptions holds the inputs of one headless run.
type applyOptions struct {
	Board    string
	Size     int
	NoSpawn  bool
	Seed     int64
	FourProb float64
	Moves    []string
	Logger   *log.Logger
	Output   io.Writer
}

func runApply(cmd *cobra.Command, args []string) error {
	size := settings.Board.Size
	if cmd.Flags().Changed("size") {
		size = flagSize
	}

	return applyMoves(applyOptions{
		Board:    flagBoard,
		Size:     size,
		NoSpawn:  flagNoSpawn,
		Seed:     settings.Play.Seed,
		FourProb: settings.Board.SpawnFourProbability,
		Moves:    args,
		Logger:   logger,
		Output:   cmd.OutOrStdout(),
	})
}

func applyMoves(opts applyOptions) error {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	spawner := t2048.NewSpawner(rand.New(rand.NewSource(seed)), opts.FourProb)

	var (
		board *t2048.Board
		err   error
	)
	if opts.Board != "" {
		board, err = t2048.ParseBoard(opts.Board, spawner)
	} else {
		if opts.Size < config.MinBoardSize || opts.Size > config.MaxBoardSize {
			return fmt.Errorf("%w: --size %d not in [%d, %d]",
				t2048.ErrInvalidSideLength, opts.Size, config.MinBoardSize, config.MaxBoardSize)
		}
		board, err = t2048.NewBoard(opts.Size, spawner)
	}
	if err != nil {
		return err
	}

	changed := 0
	step := 0
	for _, arg := range opts.Moves {
		for _, r := range arg {
			if r == ',' || unicode.IsSpace(r) {
				continue
			}
			step++

			dir, err := t2048.ParseDirection(r)
			if err != nil {
				return fmt.Errorf("move %d: %w", step, err)
			}

			var moved bool
			if opts.NoSpawn {
				moved = board.MoveDirection(dir)
			} else {
				moved, _ = board.Play(dir)
			}
			if moved {
				changed++
			}
			if opts.Logger != nil {
				opts.Logger.Debug("move", "step", step, "dir", dir, "moved", moved, "board", board.Encode())
			}
		}
	}

	status := "playing"
	if board.IsGameOver() {
		status = "game over"
	}

	out := opts.Output
	fmt.Fprintln(out, board.Encode())
	fmt.Fprintln(out)
	fmt.Fprint(out, board.Grid())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "moves: %d (%d changed the board)\n", step, changed)
	fmt.Fprintf(out, "max tile: %d\n", board.MaxTile())
	fmt.Fprintf(out, "status: %s\n", status)
	return nil
}
