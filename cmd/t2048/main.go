// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 list                        - List board-size variants
//	t2048 play [game]                 - Play a variant (menu when omitted)
//	t2048 apply --board CSV MOVES...  - Apply moves to a board headlessly
//
// Global flags:
//
//	--config <path>     - Config YAML (default search: ~/.t2048/configs, ./configs)
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible games
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

var (
	settings config.T2048Config
	logger   *log.Logger
	logFile  *os.File
)

func main() {
	// Cobra skips post-run hooks when RunE fails, so the log file is closed here.
	err := rootCmd.Execute()
	if cerr := closeLogFile(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Tiles slide as far as they can in the chosen direction and equal
neighbours merge once per move. A new 2 or 4 appears after every move
that changes the board. The game ends when no move is possible.

Available commands:
  list     - Show all board-size variants
  play     - Play a variant
  apply    - Apply moves to a board without the TUI

Examples:
  t2048 list
  t2048 play
  t2048 play 2048_5x5
  t2048 play --size 8 --seed 42
  t2048 apply --board 1,1,0,0,0,0,0,0,0,0,0,0,0,0,0,0 --no-spawn L`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(applyCmd)
}

// setup loads the config, applies explicitly set flags on top and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Play.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Play.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	settings = cfg

	// The TUI owns the terminal, so play only logs to a file.
	var out io.Writer = os.Stderr
	if cmd == playCmd {
		out = io.Discard
	}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = newLogger(out, cfg.LogLevel())
	logger.Debug("config loaded", "source", cfg.Source, "size", cfg.Board.Size, "seed", cfg.Play.Seed)
	return nil
}

// closeLogFile closes the --log-file handle opened by setup, if any.
func closeLogFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	l.SetLevel(level)
	return l
}
