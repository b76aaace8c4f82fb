package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func record(score int, seconds int) GameRecord {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return GameRecord{
		SessionID: "s",
		StartTime: start,
		EndTime:   start.Add(time.Duration(seconds) * time.Second),
		Score:     score,
		Cause:     "wall",
	}
}

func TestAggregates(t *testing.T) {
	s, err := NewGameStats("")
	if err != nil {
		t.Fatal(err)
	}
	if s.AverageScore() != 0 || s.AverageDuration() != 0 || s.BestScore() != 0 {
		t.Error("empty history must report zeros")
	}

	s.AddGame(record(3, 10))
	s.AddGame(record(7, 30))
	s.AddGame(record(2, 20))

	if s.GamesPlayed() != 3 {
		t.Errorf("expected 3 games, got %d", s.GamesPlayed())
	}
	if s.BestScore() != 7 {
		t.Errorf("expected best 7, got %d", s.BestScore())
	}
	if s.AverageScore() != 4 {
		t.Errorf("expected average 4, got %v", s.AverageScore())
	}
	if s.AverageDuration() != 20*time.Second {
		t.Errorf("expected 20s, got %v", s.AverageDuration())
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "stats.json")

	s, err := NewGameStats(path)
	if err != nil {
		t.Fatalf("missing file must not fail: %v", err)
	}
	s.AddGame(record(5, 12))
	if err := s.SaveToFile(); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := NewGameStats(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.GamesPlayed() != 1 || loaded.BestScore() != 5 {
		t.Errorf("unexpected reloaded stats: %+v", loaded.Games)
	}
	if loaded.Games[0].Duration() != 12*time.Second {
		t.Errorf("expected 12s, got %v", loaded.Games[0].Duration())
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := NewGameStats(path)
	if err == nil {
		t.Error("expected an error for a corrupt stats file")
	}
	if s.GamesPlayed() != 0 {
		t.Errorf("expected empty history, got %d games", s.GamesPlayed())
	}

	backup, err := os.ReadFile(path + BackupSuffix)
	if err != nil {
		t.Fatalf("corrupt file must be kept as a backup: %v", err)
	}
	if string(backup) != "{not json" {
		t.Errorf("backup content changed: %q", backup)
	}

	s.AddGame(record(4, 8))
	if err := s.SaveToFile(); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	if backup, _ := os.ReadFile(path + BackupSuffix); string(backup) != "{not json" {
		t.Errorf("save must not touch the backup, got %q", backup)
	}
	reloaded, err := NewGameStats(path)
	if err != nil {
		t.Fatalf("reload after save: %v", err)
	}
	if reloaded.GamesPlayed() != 1 || reloaded.BestScore() != 4 {
		t.Errorf("unexpected reloaded stats: %+v", reloaded.Games)
	}
}

func TestUnreadableFileDisablesSaving(t *testing.T) {
	// A directory where the file should be cannot be read as stats.
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}
	s, err := NewGameStats(path)
	if err == nil {
		t.Error("expected an error for an unreadable stats file")
	}
	if s.Persistent() {
		t.Error("expected persistence to be disabled")
	}
	s.AddGame(record(1, 1))
	if err := s.SaveToFile(); err != nil {
		t.Errorf("expected no-op save, got %v", err)
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		t.Errorf("existing path must be left alone: %v", err)
	}
}

func TestSaveWithoutPathIsNoop(t *testing.T) {
	s, _ := NewGameStats("")
	if s.Persistent() {
		t.Error("empty path must not be persistent")
	}
	s.AddGame(record(1, 1))
	if err := s.SaveToFile(); err != nil {
		t.Errorf("expected no-op, got %v", err)
	}
}
