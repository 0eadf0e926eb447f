// Package config provides YAML-based configuration loading for the 2048
// board and terminal session, with environment overrides.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Bounds accepted by Validate.
const (
	MinBoardSize = 1
	MaxBoardSize = 16
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid value")

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board BoardConfig `yaml:"board"`
	Play  PlayConfig  `yaml:"play"`
	Log   LogConfig   `yaml:"log"`

	// Source names where the config was read from (a path or "embedded").
	Source string `yaml:"-"`
}

// BoardConfig defines the board dimension and tile spawning.
type BoardConfig struct {
	Size                 int     `yaml:"size"                   env:"T2048_BOARD_SIZE"`
	SpawnFourProbability float64 `yaml:"spawn_four_probability" env:"T2048_SPAWN_FOUR_PROBABILITY"`
}

// PlayConfig defines the interactive session.
type PlayConfig struct {
	TickRate int   `yaml:"tick_rate" env:"T2048_TICK_RATE"`
	Seed     int64 `yaml:"seed"      env:"T2048_SEED"` // 0 = time-based
}

// LogConfig defines logger output.
type LogConfig struct {
	Level string `yaml:"level" env:"T2048_LOG_LEVEL"`
	File  string `yaml:"file"  env:"T2048_LOG_FILE"`
}

// Validate checks that every value is usable.
func (c T2048Config) Validate() error {
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		return fmt.Errorf("%w: board.size %d not in [%d, %d]", ErrInvalidConfig, c.Board.Size, MinBoardSize, MaxBoardSize)
	}
	if p := c.Board.SpawnFourProbability; p < 0 || p > 1 {
		return fmt.Errorf("%w: board.spawn_four_probability %g not in [0, 1]", ErrInvalidConfig, p)
	}
	if c.Play.TickRate <= 0 {
		return fmt.Errorf("%w: play.tick_rate must be positive, got %d", ErrInvalidConfig, c.Play.TickRate)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c T2048Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Runtime builds the per-game runtime config for a screen of the given size.
func (c T2048Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW = screenW
	rc.ScreenH = screenH
	rc.TickRate = c.Play.TickRate
	rc.Seed = c.Play.Seed
	rc.SpawnFourProbability = c.Board.SpawnFourProbability
	return rc
}
