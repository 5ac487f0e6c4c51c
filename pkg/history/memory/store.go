package memory

import (
	"codeberg.org/miketth/keymapshift/pkg/history"
	"context"
	"sync"
)

type Store struct {
	entries []history.Entry
	lock    sync.Mutex
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Record(_ context.Context, entry history.Entry) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	entry.ID = int64(len(s.entries) + 1)
	s.entries = append(s.entries, entry)
	return nil
}

func (s *Store) Recent(_ context.Context, limit int) ([]history.Entry, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if limit <= 0 {
		return nil, nil
	}

	out := make([]history.Entry, 0, limit)
	for i := len(s.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}
