package store

import (
	"path/filepath"
	"testing"

	"github.com/blokuscore/engine/internal/board"
	"github.com/blokuscore/engine/internal/nnue"
	"github.com/blokuscore/engine/internal/record"
)

func TestPutAndIterateRecords(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	net := nnue.NewNetwork()
	want := []record.Record{
		record.FromState(board.New(board.StartCorner, net), 10, 5, record.ResultAWon),
		record.FromState(board.New(board.StartMiddle, net), 20, 15, record.ResultDraw),
	}
	if err := s.PutRecords(want); err != nil {
		t.Fatalf("PutRecords: %v", err)
	}

	var got []record.Record
	err = s.EachRecord(func(r record.Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("EachRecord: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
}

func TestStatsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 0 {
		t.Fatal("expected empty stats before any save")
	}

	stats.GamesPlayed = 3
	stats.AWins = 2
	stats.ByStartPos["corner"] = 3
	if err := s.SaveStats(stats); err != nil {
		t.Fatalf("SaveStats: %v", err)
	}

	reloaded, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats after save: %v", err)
	}
	if reloaded.GamesPlayed != 3 || reloaded.AWins != 2 {
		t.Fatalf("unexpected reloaded stats: %+v", reloaded)
	}
}
