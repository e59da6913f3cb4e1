// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/party-pascal/internal/rules"
	"github.com/vovakirdan/party-pascal/internal/score"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// GameStats contains aggregated statistics for one minigame across all runs.
type GameStats struct {
	GameID     string
	Plays      int
	Failures   int
	Best       int
	AvgPoints  float64
	LastPlayed time.Time
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
	// Concurrent SSH sessions share this handle.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_id TEXT NOT NULL DEFAULT '',
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			weighted INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, weighted DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player_id);

		CREATE TABLE IF NOT EXISTS stages (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			game_id TEXT NOT NULL,
			points INTEGER NOT NULL,
			failed INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (run_id, position)
		);
		CREATE INDEX IF NOT EXISTS idx_stages_game ON stages(game_id, points DESC);
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

// SaveRun records a finished run and its stages in one transaction.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(run score.Run) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	playedAt := run.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}
	res, err := tx.Exec(
		`INSERT INTO runs (player_id, mode, difficulty, score, weighted, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.PlayerID, string(run.Mode), string(run.Difficulty), run.Score, run.Weighted,
		playedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for i, st := range run.Stages {
		if _, err := tx.Exec(
			"INSERT INTO stages (run_id, position, game_id, points, failed) VALUES (?, ?, ?, ?, ?)",
			id, i, st.Game, st.Points, st.Failed,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save stage %s: %w", st.Game, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

const runColumns = "id, player_id, mode, difficulty, score, weighted, created_at"

// RecentRuns retrieves the most recent runs of any mode, newest first.
func (s *Store) RecentRuns(limit int) ([]score.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
}

// TopRuns retrieves the best runs of a mode by weighted score.
func (s *Store) TopRuns(mode score.Mode, limit int) ([]score.Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE mode = ? ORDER BY weighted DESC, id ASC LIMIT ?`,
		string(mode), limit,
	)
}

// PlayerRuns retrieves a player's runs, newest first.
func (s *Store) PlayerRuns(playerID string, limit int) ([]score.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE player_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		playerID, limit,
	)
}

// RunByID retrieves one run with its stages. Returns nil if it does not exist.
func (s *Store) RunByID(id int64) (*score.Run, error) {
	runs, err := s.queryRuns(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	run := runs[0]

	rows, err := s.db.Query(
		"SELECT game_id, points, failed FROM stages WHERE run_id = ? ORDER BY position",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var st score.StageResult
		if err := rows.Scan(&st.Game, &st.Points, &st.Failed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stage: %w", err)
		}
		run.Stages = append(run.Stages, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return &run, nil
}

func (s *Store) queryRuns(query string, args ...any) ([]score.Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []score.Run
	for rows.Next() {
		var r score.Run
		var mode, difficulty string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.PlayerID, &mode, &difficulty, &r.Score, &r.Weighted, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Mode = score.Mode(mode)
		r.Difficulty = rules.Parse(difficulty)
		r.PlayedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// HighScore returns the best weighted score for a mode.
// Returns 0 if no runs exist.
func (s *Store) HighScore(mode score.Mode) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(weighted) FROM runs WHERE mode = ?",
		string(mode),
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// GetGameStats retrieves aggregated statistics for one minigame.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(st.failed), 0), COALESCE(MAX(st.points), 0),
		        COALESCE(AVG(st.points), 0), MAX(r.created_at)
		 FROM stages st JOIN runs r ON r.id = st.run_id
		 WHERE st.game_id = ?`,
		gameID,
	).Scan(&stats.Plays, &stats.Failures, &stats.Best, &stats.AvgPoints, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// GetAllGamesStats retrieves statistics for every minigame that has been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT st.game_id, COUNT(*), SUM(st.failed), MAX(st.points), AVG(st.points), MAX(r.created_at)
		 FROM stages st JOIN runs r ON r.id = st.run_id
		 GROUP BY st.game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.Plays, &gs.Failures, &gs.Best, &gs.AvgPoints, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearRuns deletes every run and stage.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM stages; DELETE FROM runs;"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

const timeLayout = "2006-01-02 15:04:05"

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
