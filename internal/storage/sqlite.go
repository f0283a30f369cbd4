// Package storage provides SQLite-based persistence for solve results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tumblesolve/internal/board"
)

// Store manages the SQLite database connection for solve history.
type Store struct {
	db *sql.DB
}

// SolveRecord is one solve attempt for a level.
type SolveRecord struct {
	ID        int64
	LevelID   string
	Solved    bool
	MoveCount int
	Moves     string // encoded move list, empty when unsolved
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path. It expands
// a leading ~, creates parent directories, and runs migrations.
func Open(dbPath string) (*Store, error) {
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

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			solved INTEGER NOT NULL,
			move_count INTEGER NOT NULL,
			moves TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_level ON solves(level_id, created_at DESC);
	`)
	return err
}

// SaveResult records one solve attempt and returns its row ID.
func (s *Store) SaveResult(levelID string, solved bool, moves []board.Point, d time.Duration) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO solves (level_id, solved, move_count, moves, duration_ms) VALUES (?, ?, ?, ?, ?)`,
		levelID, solved, len(moves), EncodeMoves(moves), d.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save result: %w", err)
	}
	return res.LastInsertId()
}

// History returns the most recent records for one level, newest first.
func (s *Store) History(levelID string, limit int) ([]SolveRecord, error) {
	return s.query(
		`SELECT id, level_id, solved, move_count, moves, duration_ms, created_at
		 FROM solves WHERE level_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		levelID, limit,
	)
}

// Recent returns the most recent records across all levels, newest first.
func (s *Store) Recent(limit int) ([]SolveRecord, error) {
	return s.query(
		`SELECT id, level_id, solved, move_count, moves, duration_ms, created_at
		 FROM solves ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
}

func (s *Store) query(q string, args ...any) ([]SolveRecord, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query history: %w", err)
	}
	defer rows.Close()

	var out []SolveRecord
	for rows.Next() {
		var r SolveRecord
		var durationMS int64
		if err := rows.Scan(&r.ID, &r.LevelID, &r.Solved, &r.MoveCount, &r.Moves, &durationMS, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan record: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		out = append(out, r)
	}
	return out, rows.Err()
}

// EncodeMoves serializes a move list as "x,y;x,y;...".
func EncodeMoves(moves []board.Point) string {
	parts := make([]string, len(moves))
	for i, p := range moves {
		parts[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	return strings.Join(parts, ";")
}

// DecodeMoves parses the EncodeMoves representation.
func DecodeMoves(s string) ([]board.Point, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	moves := make([]board.Point, len(parts))
	for i, part := range parts {
		xy := strings.SplitN(part, ",", 2)
		if len(xy) != 2 {
			return nil, fmt.Errorf("storage: bad move %q", part)
		}
		x, err := strconv.Atoi(xy[0])
		if err != nil {
			return nil, fmt.Errorf("storage: bad move %q: %w", part, err)
		}
		y, err := strconv.Atoi(xy[1])
		if err != nil {
			return nil, fmt.Errorf("storage: bad move %q: %w", part, err)
		}
		moves[i] = board.Point{X: x, Y: y}
	}
	return moves, nil
}
