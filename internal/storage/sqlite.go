// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Store manages the SQLite database connection for the result ledger.
type Store struct {
	db *sql.DB
}

// Result is one finished game. Only the summary is kept; boards are never
// stored, so a game cannot be resumed from the ledger.
type Result struct {
	ID        int64
	GameID    string // session game identifier, empty for rows saved by hand
	Outcome   string // "won" or "lost"
	Rows      int
	Cols      int
	WinTarget int
	Moves     int
	MaxTile   int
	CreatedAt time.Time
}

// Size returns the board size as "RxC".
func (r Result) Size() string {
	return fmt.Sprintf("%dx%d", r.Rows, r.Cols)
}

// ResultFromSummary converts a session summary into a ledger row.
func ResultFromSummary(s t2048.Summary) Result {
	return Result{
		GameID:    s.GameID,
		Outcome:   s.Outcome.String(),
		Rows:      s.Rows,
		Cols:      s.Cols,
		WinTarget: s.WinTarget,
		Moves:     s.Moves,
		MaxTile:   s.MaxTile,
	}
}

// Stats contains aggregated statistics over the ledger.
type Stats struct {
	Games      int
	Wins       int
	Losses     int
	BestTile   int
	AvgMoves   float64
	LastPlayed time.Time
}

// WinRate returns the share of won games in [0, 1].
func (s Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL,
			board_rows INTEGER NOT NULL,
			board_cols INTEGER NOT NULL,
			win_target INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			max_tile INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_size ON results(board_rows, board_cols);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(max_tile DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (game_id, outcome, board_rows, board_cols, win_target, moves, max_tile)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Outcome, r.Rows, r.Cols, r.WinTarget, r.Moves, r.MaxTile,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveSummary records a session summary. Its signature matches the
// session's finish hook.
func (s *Store) SaveSummary(sum t2048.Summary) error {
	_, err := s.SaveResult(ResultFromSummary(sum))
	return err
}

// RecentResults retrieves the most recent results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, outcome, board_rows, board_cols, win_target, moves, max_tile, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Outcome, &r.Rows, &r.Cols, &r.WinTarget, &r.Moves, &r.MaxTile, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats retrieves aggregated statistics over all recorded games.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(max_tile), 0),
		        COALESCE(AVG(moves), 0),
		        MAX(created_at)
		 FROM results`,
	).Scan(&st.Games, &st.Wins, &st.Losses, &st.BestTile, &st.AvgMoves, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)

	return st, nil
}

// BestTile returns the highest tile reached on a board of the given size.
// Returns 0 if no games of that size exist.
func (s *Store) BestTile(rows, cols int) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(max_tile) FROM results WHERE board_rows = ? AND board_cols = ?",
		rows, cols,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best tile: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// ClearResults deletes all recorded games.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and the driver's string form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
