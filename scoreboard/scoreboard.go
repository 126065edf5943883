package scoreboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultTop is the size of the printed high-score table
const DefaultTop = 10

var ErrClosed = errors.New("scoreboard: closed")

// Entry is one finished game
type Entry struct {
	Player     string
	Score      int
	Level      int
	Seed       int64
	RecordedAt time.Time
}

// Board is the high-score table in a local SQLite file
type Board struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates or opens the score file, ":memory:" works for tests
func Open(path string) (*Board, error) {
	if path == "" {
		return nil, fmt.Errorf("scoreboard: empty db path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Board{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS scores_by_score ON scores(score DESC, id ASC);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Record inserts a finished game, a zero RecordedAt means now
func (b *Board) Record(ctx context.Context, e Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return ErrClosed
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO scores(player, score, level, seed, recorded_at) VALUES(?,?,?,?,?)`,
		e.Player, e.Score, e.Level, e.Seed, e.RecordedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("scoreboard: insert: %w", err)
	}
	return nil
}

// Top returns the n best scores, ties keep insertion order
func (b *Board) Top(ctx context.Context, n int) ([]Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return nil, ErrClosed
	}
	rows, err := b.db.QueryContext(ctx,
		`SELECT player, score, level, seed, recorded_at FROM scores ORDER BY score DESC, id ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("scoreboard: query: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e  Entry
			at string
		)
		if err := rows.Scan(&e.Player, &e.Score, &e.Level, &e.Seed, &at); err != nil {
			return nil, fmt.Errorf("scoreboard: scan: %w", err)
		}
		e.RecordedAt, _ = time.Parse(time.RFC3339Nano, at)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close releases the database, later calls return ErrClosed
func (b *Board) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}
