package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gbs0/chezz-univoid-game/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferences(t *testing.T) {
	s := openTest(t)

	t.Run("defaults when missing", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		require.NoError(t, err)
		assert.Equal(t, board.MinSize, prefs.BoardSize)
	})

	t.Run("save and load", func(t *testing.T) {
		prefs := DefaultPreferences()
		prefs.BoardSize = 9
		require.NoError(t, s.SavePreferences(prefs))

		got, err := s.LoadPreferences()
		require.NoError(t, err)
		assert.Equal(t, 9, got.BoardSize)
	})

	t.Run("size is clamped on load", func(t *testing.T) {
		prefs := DefaultPreferences()
		prefs.BoardSize = 40
		require.NoError(t, s.SavePreferences(prefs))

		got, err := s.LoadPreferences()
		require.NoError(t, err)
		assert.Equal(t, board.MaxSize, got.BoardSize)
	})
}

func TestRecordGame(t *testing.T) {
	s := openTest(t)

	stats, err := s.LoadStats()
	require.NoError(t, err)
	assert.Zero(t, stats.GamesPlayed)
	assert.Zero(t, stats.WhiteWinRate())

	records := []GameRecord{
		{Winner: board.White, Size: 6, HalfMoves: 7, Duration: time.Minute},
		{Winner: board.Black, Size: 6, HalfMoves: 4, Duration: 30 * time.Second},
		{Winner: board.White, Size: 8, HalfMoves: 21, Duration: 2 * time.Minute},
		{Abandoned: true, Size: 8, HalfMoves: 2, Duration: time.Second},
	}
	for _, rec := range records {
		require.NoError(t, s.RecordGame(rec))
	}

	stats, err = s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 4, stats.GamesPlayed)
	assert.Equal(t, 2, stats.WhiteWins)
	assert.Equal(t, 1, stats.BlackWins)
	assert.Equal(t, 1, stats.Abandoned)
	assert.Equal(t, 3, stats.Decided())
	assert.Equal(t, 21, stats.LongestGame)
	assert.Equal(t, 4, stats.ShortestGame)
	assert.Equal(t, map[string]int{"6": 2, "8": 2}, stats.GamesBySize)
	assert.Equal(t, []SizeCount{{Size: 6, Games: 2}, {Size: 8, Games: 2}}, stats.SizeCounts())
	assert.Equal(t, 3*time.Minute+31*time.Second, stats.TotalPlayTime)
	assert.InDelta(t, 66.67, stats.WhiteWinRate(), 0.01)
}

func TestSizeCountsOrder(t *testing.T) {
	stats := NewGameStats()
	stats.GamesBySize["12"] = 1
	stats.GamesBySize["6"] = 3
	stats.GamesBySize["9"] = 2

	assert.Equal(t, []SizeCount{
		{Size: 6, Games: 3},
		{Size: 9, Games: 2},
		{Size: 12, Games: 1},
	}, stats.SizeCounts())
}

func TestOpenOnDisk(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenDefault(dir)
	require.NoError(t, err)
	require.NoError(t, s.RecordGame(GameRecord{Winner: board.Black, Size: 6, HalfMoves: 3}))
	require.NoError(t, s.Close())

	s, err = OpenDefault(dir)
	require.NoError(t, err)
	defer s.Close()

	stats, err := s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.BlackWins)
}

func TestDataPaths(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		want := filepath.Join(t.TempDir(), "custom")

		dataDir, err := GetDataDir(want)
		require.NoError(t, err)
		assert.Equal(t, want, dataDir)
		assert.DirExists(t, dataDir)

		dbDir, err := GetDatabaseDir(want)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(want, "db"), dbDir)
		assert.DirExists(t, dbDir)
	})

	t.Run("platform default", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", t.TempDir())
		t.Setenv("APPDATA", t.TempDir())

		dataDir, err := GetDataDir("")
		require.NoError(t, err)
		assert.Equal(t, appName, filepath.Base(dataDir))

		_, err = os.Stat(dataDir)
		assert.NoError(t, err, "data directory was not created")
	})
}

func TestDataHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("APPDATA", "")

	tests := []struct {
		goos string
		env  map[string]string
		want string
	}{
		{"linux", nil, filepath.Join(home, ".local", "share")},
		{"linux", map[string]string{"XDG_DATA_HOME": "/xdg"}, "/xdg"},
		{"darwin", map[string]string{"XDG_DATA_HOME": "/xdg"}, filepath.Join(home, "Library", "Application Support")},
		{"windows", nil, filepath.Join(home, "AppData", "Roaming")},
		{"windows", map[string]string{"APPDATA": "/appdata"}, "/appdata"},
	}

	for _, tc := range tests {
		t.Run(tc.goos, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			got, err := dataHome(tc.goos)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
