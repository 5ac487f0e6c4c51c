package sqlite

import (
	"codeberg.org/miketth/keymapshift/pkg/history"
	"codeberg.org/miketth/keymapshift/pkg/history/sqlite/migrations"
	"context"
	"database/sql"
	"fmt"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"os"
	"path/filepath"
)

type Store struct {
	db      *sql.DB
	querier *Queries
}

func NewStore(filename string, log *zap.SugaredLogger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrations.Migrate(db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{
		db:      db,
		querier: New(db),
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Record(ctx context.Context, entry history.Entry) error {
	if _, err := s.querier.InsertShift(ctx, InsertShiftParams{
		CreatedAt:  entry.CreatedAt,
		Input:      entry.Input,
		Output:     entry.Output,
		FromLayout: entry.FromLayout,
		ToLayout:   entry.ToLayout,
	}); err != nil {
		return fmt.Errorf("sqlite insert: %w", err)
	}

	return nil
}

func (s *Store) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	// sqlite reads a negative LIMIT as no limit at all
	if limit <= 0 {
		return nil, nil
	}

	shifts, err := s.querier.RecentShifts(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("sqlite select: %w", err)
	}

	ret := make([]history.Entry, 0, len(shifts))
	for _, shift := range shifts {
		ret = append(ret, history.Entry{
			ID:         shift.ID,
			CreatedAt:  shift.CreatedAt,
			Input:      shift.Input,
			Output:     shift.Output,
			FromLayout: shift.FromLayout,
			ToLayout:   shift.ToLayout,
		})
	}

	return ret, nil
}
