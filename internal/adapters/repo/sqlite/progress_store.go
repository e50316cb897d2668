package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/monster-deck/internal/domain"
	"github.com/bnema/monster-deck/internal/ports"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS progress (
	deck TEXT PRIMARY KEY,
	slide_id TEXT NOT NULL,
	slide_index INTEGER NOT NULL,
	updated_at DATETIME NOT NULL
);`

// ProgressStore keeps the last slide per deck in a SQLite file.
type ProgressStore struct {
	db     *sql.DB
	dbPath string
}

var _ ports.ProgressStore = (*ProgressStore)(nil)

func NewProgressStore(dbPath string) (*ProgressStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create progress directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open progress database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize progress schema: %w", err)
	}

	return &ProgressStore{db: db, dbPath: dbPath}, nil
}

func (s *ProgressStore) Close() error {
	return s.db.Close()
}

func (s *ProgressStore) Path() string {
	return s.dbPath
}

func (s *ProgressStore) Load(ctx context.Context, deck string) (domain.Progress, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT slide_id, slide_index, updated_at FROM progress WHERE deck = ?`, deck)

	var (
		slideID   string
		index     int
		updatedAt time.Time
	)
	if err := row.Scan(&slideID, &index, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Progress{}, domain.ErrNoProgress
		}
		return domain.Progress{}, fmt.Errorf("query progress for %q: %w", deck, err)
	}

	return domain.Progress{
		Deck:      deck,
		SlideID:   domain.SlideID(slideID),
		Index:     index,
		UpdatedAt: updatedAt,
	}, nil
}

func (s *ProgressStore) Save(ctx context.Context, progress domain.Progress) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO progress (deck, slide_id, slide_index, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(deck) DO UPDATE SET
			slide_id = excluded.slide_id,
			slide_index = excluded.slide_index,
			updated_at = excluded.updated_at`,
		progress.Deck, string(progress.SlideID), progress.Index, progress.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save progress for %q: %w", progress.Deck, err)
	}

	return nil
}
