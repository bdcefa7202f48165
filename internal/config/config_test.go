package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("chezz", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("CHEZZ_BOARD_SIZE", "8")
	t.Setenv("CHEZZ_DATA_DIR", "/tmp/chezz")
	t.Setenv("CHEZZ_NO_STORAGE", "true")
	t.Setenv("CHEZZ_DEBUG_MOVES", "1")

	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, Config{
		BoardSize:  8,
		DataDir:    "/tmp/chezz",
		NoStorage:  true,
		DebugMoves: true,
	}, cfg)
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CHEZZ_BOARD_SIZE", "8")
	t.Setenv("CHEZZ_NO_STORAGE", "true")

	cfg, err := ParseConfig(newFlagSet(), []string{"-size", "30", "-no-storage=false"})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BoardSize)
	assert.False(t, cfg.NoStorage)
}

func TestParseConfigErrors(t *testing.T) {
	t.Run("bad env", func(t *testing.T) {
		t.Setenv("CHEZZ_BOARD_SIZE", "big")
		_, err := ParseConfig(newFlagSet(), nil)
		assert.ErrorContains(t, err, "parse env")
	})

	t.Run("bad flag", func(t *testing.T) {
		_, err := ParseConfig(newFlagSet(), []string{"-nope"})
		assert.Error(t, err)
	})
}
