package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// GameRecord is one finished game.
type GameRecord struct {
	SessionID string    `json:"sessionId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Cause     string    `json:"cause"`
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// GameStats keeps the history of finished games. With an empty path it
// never touches the disk.
type GameStats struct {
	Games []GameRecord
	path  string
	mutex sync.RWMutex
}

// NewGameStats creates the history and loads it from path when set.
func NewGameStats(path string) (*GameStats, error) {
	s := &GameStats{
		Games: make([]GameRecord, 0),
		path:  path,
	}
	if err := s.loadFromFile(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *GameStats) AddGame(rec GameRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Games = append(s.Games, rec)
}

func (s *GameStats) GamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.Games)
}

func (s *GameStats) BestScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	best := 0
	for _, g := range s.Games {
		if g.Score > best {
			best = g.Score
		}
	}
	return best
}

func (s *GameStats) AverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}
	total := 0
	for _, g := range s.Games {
		total += g.Score
	}
	return float64(total) / float64(len(s.Games))
}

func (s *GameStats) AverageDuration() time.Duration {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}
	var total time.Duration
	for _, g := range s.Games {
		total += g.Duration()
	}
	return total / time.Duration(len(s.Games))
}

// SaveToFile writes the history as JSON. No-op without a path.
func (s *GameStats) SaveToFile() error {
	if s.path == "" {
		return nil
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create stats directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(s.Games, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}

// BackupSuffix is appended to a stats file that could not be parsed.
const BackupSuffix = ".bak"

// loadFromFile never leaves a history that a later save would use to
// clobber unreadable data: a corrupt file is moved to path+BackupSuffix,
// and if that fails persistence is turned off for this session.
func (s *GameStats) loadFromFile() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		s.path = ""
		return fmt.Errorf("failed to read stats file, not saving this session: %w", err)
	}
	if err := json.Unmarshal(data, &s.Games); err != nil {
		s.Games = make([]GameRecord, 0)
		backup := s.path + BackupSuffix
		if rerr := os.Rename(s.path, backup); rerr != nil {
			s.path = ""
			return fmt.Errorf("failed to parse stats file (backup failed: %v), not saving this session: %w", rerr, err)
		}
		return fmt.Errorf("failed to parse stats file, moved to %s: %w", backup, err)
	}
	return nil
}

// Persistent reports whether SaveToFile writes anywhere.
func (s *GameStats) Persistent() bool {
	return s.path != ""
}
