// Package storage provides SQLite-based history of finished memory games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-memory/internal/memory"
)

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished or abandoned game.
type GameRecord struct {
	ID        int64
	RunID     string
	Score     int
	Turns     int
	Matches   int
	Rows      int
	Cols      int
	Won       bool
	CreatedAt time.Time
}

// Grid returns the grid label, e.g. "4x4".
func (r GameRecord) Grid() string {
	return GridLabel(r.Rows, r.Cols)
}

// GridLabel formats a grid size the way history queries filter on it.
func GridLabel(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
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
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			turns INTEGER NOT NULL DEFAULT 0,
			matches INTEGER NOT NULL DEFAULT 0,
			grid TEXT NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_grid ON games(grid);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(grid, score DESC);
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

// SaveGame records a game. A run id that was already recorded is ignored
// and 0 is returned.
func (s *Store) SaveGame(r GameRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT OR IGNORE INTO games (run_id, score, turns, matches, grid, rows, cols, won)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Score, r.Turns, r.Matches, r.Grid(), r.Rows, r.Cols, boolToInt(r.Won),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return 0, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordResult implements memory.ResultRecorder.
func (s *Store) RecordResult(r memory.Result) error {
	if r.RunID == "" {
		return errors.New("storage: result has no run id")
	}
	_, err := s.SaveGame(GameRecord{
		RunID:   r.RunID,
		Score:   r.Score,
		Turns:   r.Turns,
		Matches: r.Matches,
		Rows:    r.Rows,
		Cols:    r.Cols,
		Won:     r.Won,
	})
	return err
}

// Ensure Store implements ResultRecorder
var _ memory.ResultRecorder = (*Store)(nil)

const gameColumns = `id, run_id, score, turns, matches, rows, cols, won, created_at`

// TopScores retrieves the top N won games, optionally for a single grid.
// An empty grid matches every grid size. Ties go to the game with fewer turns.
func (s *Store) TopScores(grid string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+gameColumns+`
		 FROM games
		 WHERE won = 1 AND (? = '' OR grid = ?)
		 ORDER BY score DESC, turns ASC
		 LIMIT ?`,
		grid, grid, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanGames(rows)
}

// RecentGames retrieves the most recent games, won or not.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+gameColumns+`
		 FROM games
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	return scanGames(rows)
}

// GameByRunID retrieves a game by its run id, or nil if it was never recorded.
func (s *Store) GameByRunID(runID string) (*GameRecord, error) {
	rows, err := s.db.Query(`SELECT `+gameColumns+` FROM games WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	games, err := scanGames(rows)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return &games[0], nil
}

// HighScore returns the highest winning score for the grid, or for every
// grid when grid is empty. Returns 0 if no games were won.
func (s *Store) HighScore(grid string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM games WHERE won = 1 AND (? = '' OR grid = ?)",
		grid, grid,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes the history for the grid, or all history when grid is empty.
func (s *Store) ClearScores(grid string) error {
	_, err := s.db.Exec("DELETE FROM games WHERE ? = '' OR grid = ?", grid, grid)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GridStats contains aggregated statistics for one grid size.
type GridStats struct {
	Grid       string
	GamesCount int
	WonCount   int
	HighScore  int
	AvgScore   float64
	BestTurns  int // Fewest turns in a won game, 0 if none
	LastPlayed time.Time
}

// GetGridStats retrieves aggregated statistics for a grid size.
func (s *Store) GetGridStats(grid string) (*GridStats, error) {
	stats := &GridStats{Grid: grid}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(MAX(CASE WHEN won = 1 THEN score END), 0),
		        COALESCE(AVG(score), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN turns END), 0),
		        MAX(created_at)
		 FROM games WHERE grid = ?`,
		grid,
	).Scan(&stats.GamesCount, &stats.WonCount, &stats.HighScore, &stats.AvgScore, &stats.BestTurns, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get grid stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllGridStats retrieves statistics for every grid size that has been played.
func (s *Store) GetAllGridStats() (map[string]*GridStats, error) {
	rows, err := s.db.Query(
		`SELECT grid,
		        COUNT(*),
		        SUM(won),
		        COALESCE(MAX(CASE WHEN won = 1 THEN score END), 0),
		        AVG(score),
		        COALESCE(MIN(CASE WHEN won = 1 THEN turns END), 0),
		        MAX(created_at)
		 FROM games
		 GROUP BY grid`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all grid stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GridStats)
	for rows.Next() {
		var g GridStats
		var lastPlayed any
		if err := rows.Scan(&g.Grid, &g.GamesCount, &g.WonCount, &g.HighScore, &g.AvgScore, &g.BestTurns, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		g.LastPlayed = parseTime(lastPlayed)
		stats[g.Grid] = &g
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func scanGames(rows *sql.Rows) ([]GameRecord, error) {
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		var createdAt any
		if err := rows.Scan(&g.ID, &g.RunID, &g.Score, &g.Turns, &g.Matches, &g.Rows, &g.Cols, &g.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.CreatedAt = parseTime(createdAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTime handles datetimes the driver returns as either time.Time or string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
