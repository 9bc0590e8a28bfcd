package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestApplyGlobalFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	applyGlobalFlags(&cfg, "/tmp/r.db", "-", "debug")

	if cfg.Storage.DBPath != "/tmp/r.db" || cfg.Log.File != "-" || cfg.Log.Level != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}

	cfg = config.DefaultConfig()
	applyGlobalFlags(&cfg, "", "", "")
	if cfg.Storage.DBPath != config.DefaultConfig().Storage.DBPath {
		t.Error("empty flags must keep config values")
	}
}

func TestApplyBoardFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   boardFlags
		rows    int
		cols    int
		target  int
		wantErr bool
	}{
		{"nothing", boardFlags{}, 4, 4, 2048, false},
		{"preset", boardFlags{Preset: "wide"}, 4, 6, 4096, false},
		{"preset refined", boardFlags{Preset: "large", Cols: 8}, 6, 8, 8192, false},
		{"explicit", boardFlags{Rows: 5, Cols: 5, Target: 1024}, 5, 5, 1024, false},
		{"unknown preset", boardFlags{Preset: "mega"}, 4, 4, 2048, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			err := applyBoardFlags(&cfg, tt.flags)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyBoardFlags error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, t2048.ErrUnknownPreset) {
				t.Errorf("error = %v, want ErrUnknownPreset", err)
			}
			if cfg.Board.Rows != tt.rows || cfg.Board.Columns != tt.cols || cfg.WinTarget != tt.target {
				t.Errorf("board %dx%d target %d, want %dx%d target %d",
					cfg.Board.Rows, cfg.Board.Columns, cfg.WinTarget, tt.rows, tt.cols, tt.target)
			}
		})
	}
}

func TestSetupItems(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveResult(storage.Result{Outcome: "lost", Rows: 6, Cols: 6, WinTarget: 8192, MaxTile: 2048}); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Presets = map[string]config.PresetConfig{
		"tall": {Rows: 8, Columns: 4, Target: 4096},
	}

	items := setupItems(cfg, store)
	if len(items) != len(t2048.Presets)+1 {
		t.Fatalf("got %d items, want %d", len(items), len(t2048.Presets)+1)
	}

	byName := map[string]int{}
	for i, it := range items {
		byName[it.Name] = i
	}
	if large := items[byName["large"]]; large.Best != 2048 || !strings.HasPrefix(large.Title, "Large") {
		t.Errorf("large item = %+v", large)
	}
	if tall := items[byName["tall"]]; tall.Title != "tall (8x4 to 4096)" || tall.Best != 0 {
		t.Errorf("tall item = %+v", tall)
	}

	// Without a store the menu still works
	if got := setupItems(cfg, nil); len(got) != len(items) {
		t.Errorf("setupItems without store = %d items", len(got))
	}
}

func TestRecordResult(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	record := recordResult(store, logging.Discard())
	record(t2048.Summary{Outcome: t2048.OutcomeWon, Rows: 4, Cols: 4, WinTarget: 2048, Moves: 950, MaxTile: 2048})

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if st.Games != 1 || st.Wins != 1 {
		t.Errorf("stats after record = %+v", st)
	}
}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	writeHistory(&buf, nil, storage.Stats{})
	if !strings.Contains(buf.String(), "No games recorded yet.") {
		t.Errorf("empty history output:\n%s", buf.String())
	}

	buf.Reset()
	results := []storage.Result{
		{ID: 2, Outcome: "won", Rows: 4, Cols: 4, WinTarget: 2048, Moves: 1000, MaxTile: 2048},
		{ID: 1, Outcome: "lost", Rows: 5, Cols: 5, WinTarget: 4096, Moves: 420, MaxTile: 512},
	}
	writeHistory(&buf, results, storage.Stats{Games: 2, Wins: 1, Losses: 1, BestTile: 2048, AvgMoves: 710})

	out := buf.String()
	for _, want := range []string{"Result", "Max tile", "WON", "LOST", "5x5", "1000", "Games: 2", "Best tile: 2048"} {
		if !strings.Contains(out, want) {
			t.Errorf("history output missing %q:\n%s", want, out)
		}
	}
}
