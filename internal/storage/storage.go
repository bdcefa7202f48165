package storage

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gbs0/chezz-univoid-game/internal/board"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// UserPreferences stores user settings
type UserPreferences struct {
	BoardSize int `json:"board_size"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		BoardSize: board.MinSize,
	}
}

// GameStats stores match tallies across sessions. Game state itself is
// never stored.
type GameStats struct {
	GamesPlayed   int            `json:"games_played"`
	WhiteWins     int            `json:"white_wins"`
	BlackWins     int            `json:"black_wins"`
	Abandoned     int            `json:"abandoned"`
	GamesBySize   map[string]int `json:"games_by_size"`
	TotalPlayTime time.Duration  `json:"total_play_time"`
	LongestGame   int            `json:"longest_game"`  // half-moves
	ShortestGame  int            `json:"shortest_game"` // half-moves, 0 until a game finishes
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{
		GamesBySize: make(map[string]int),
	}
}

// GameRecord is the outcome of one session.
type GameRecord struct {
	Winner    board.Color
	Abandoned bool // reset before a priest was taken
	Size      int
	HalfMoves int
	Duration  time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenDefault opens the database under dataDir, or under the platform data
// directory when dataDir is empty.
func OpenDefault(dataDir string) (*Storage, error) {
	dbDir, err := GetDatabaseDir(dataDir)
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	err := s.get(keyPreferences, prefs)
	prefs.BoardSize = board.ClampSize(prefs.BoardSize)
	return prefs, err
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	err := s.get(keyStats, stats)
	if stats.GamesBySize == nil {
		stats.GamesBySize = make(map[string]int)
	}
	return stats, err
}

// RecordGame records a finished or abandoned session and updates statistics
func (s *Storage) RecordGame(rec GameRecord) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += rec.Duration
	stats.GamesBySize[strconv.Itoa(rec.Size)]++

	if rec.Abandoned {
		stats.Abandoned++
		return s.SaveStats(stats)
	}

	if rec.Winner == board.White {
		stats.WhiteWins++
	} else {
		stats.BlackWins++
	}
	if rec.HalfMoves > stats.LongestGame {
		stats.LongestGame = rec.HalfMoves
	}
	if stats.ShortestGame == 0 || rec.HalfMoves < stats.ShortestGame {
		stats.ShortestGame = rec.HalfMoves
	}

	return s.SaveStats(stats)
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes the value under key into v. A missing key leaves v as is.
func (s *Storage) get(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// Decided returns the number of games that ended with a captured priest.
func (s *GameStats) Decided() int {
	return s.WhiteWins + s.BlackWins
}

// WhiteWinRate returns white's share of decided games as a percentage (0-100)
func (s *GameStats) WhiteWinRate() float64 {
	if s.Decided() == 0 {
		return 0
	}
	return float64(s.WhiteWins) / float64(s.Decided()) * 100
}

// SizeCounts returns the games played per board size, smallest size first.
func (s *GameStats) SizeCounts() []SizeCount {
	out := make([]SizeCount, 0, len(s.GamesBySize))
	for k, n := range s.GamesBySize {
		size, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		out = append(out, SizeCount{Size: size, Games: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Size < out[j].Size })
	return out
}

// SizeCount is the number of games played on one board size.
type SizeCount struct {
	Size  int
	Games int
}
