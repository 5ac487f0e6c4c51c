package history

import (
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"context"
	"time"
)

type Entry struct {
	ID         int64
	CreatedAt  time.Time
	Input      string
	Output     string
	FromLayout string
	ToLayout   string
}

type Store interface {
	Record(ctx context.Context, entry Entry) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// Recorder adapts a Store to record the shifts a Shifter performs.
type Recorder struct {
	store Store
	now   func() time.Time
}

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store, now: time.Now}
}

func (r *Recorder) RecordShift(ctx context.Context, input string, res keymapshift.Result) error {
	return r.store.Record(ctx, Entry{
		CreatedAt:  r.now().UTC(),
		Input:      input,
		Output:     res.Text,
		FromLayout: res.From.Label,
		ToLayout:   res.To.Label,
	})
}
