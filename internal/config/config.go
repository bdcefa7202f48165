// Package config loads the command configuration from the environment and
// command-line flags.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/gbs0/chezz-univoid-game/internal/board"
)

// Config holds chezz command configuration.
type Config struct {
	// Zero keeps the size stored in the user preferences.
	BoardSize  int    `env:"CHEZZ_BOARD_SIZE"`
	DataDir    string `env:"CHEZZ_DATA_DIR"`
	NoStorage  bool   `env:"CHEZZ_NO_STORAGE"`
	DebugMoves bool   `env:"CHEZZ_DEBUG_MOVES"`
}

// ParseConfig reads the environment, then lets flags in args override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.BoardSize, "size", cfg.BoardSize, "default board size (6-12)")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for the statistics database")
	fs.BoolVar(&cfg.NoStorage, "no-storage", cfg.NoStorage, "run without preferences and statistics")
	fs.BoolVar(&cfg.DebugMoves, "debug-moves", cfg.DebugMoves, "verify the board after every move")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.BoardSize != 0 {
		cfg.BoardSize = board.ClampSize(cfg.BoardSize)
	}
	return cfg, nil
}
