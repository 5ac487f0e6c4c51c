package keymapshift

import (
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
)

type Result struct {
	Text  string
	From  Layout
	To    Layout
	Score Score
}

// Shift re-derives text under the layout following the one that most plausibly produced it.
func Shift(text string, snapshot Snapshot) (Result, error) {
	idx, score := matchLayout(text, snapshot)
	if idx < 0 || score.Matches == 0 {
		return Result{}, ErrLayoutUndetermined
	}

	nextIdx, ok := NextLayout(idx, snapshot)
	if !ok {
		return Result{}, ErrNoNextLayout
	}

	current, target := snapshot[idx], snapshot[nextIdx]
	out := Remap(text, current, target)
	out = ApplyDirection(out, current.Layout.Direction, target.Layout.Direction)

	return Result{
		Text:  out,
		From:  current.Layout,
		To:    target.Layout,
		Score: score,
	}, nil
}

func ShiftText(text string, snapshot Snapshot) (string, error) {
	res, err := Shift(text, snapshot)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

type Shifter struct {
	source  TextSource
	sink    TextSink
	catalog LayoutCatalog
	log     *zap.SugaredLogger

	recorder  ShiftRecorder
	activator LayoutActivator
}

type Option func(*Shifter)

func WithRecorder(r ShiftRecorder) Option {
	return func(s *Shifter) {
		s.recorder = r
	}
}

func WithActivator(a LayoutActivator) Option {
	return func(s *Shifter) {
		s.activator = a
	}
}

func NewShifter(
	source TextSource,
	sink TextSink,
	catalog LayoutCatalog,
	log *zap.SugaredLogger,
	opts ...Option,
) *Shifter {
	s := &Shifter{
		source:  source,
		sink:    sink,
		catalog: catalog,
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunOnce shifts the highlighted text to the next layout and puts it back in place.
// The selection is left untouched unless a full replacement was computed.
func (s *Shifter) RunOnce(ctx context.Context) error {
	text, ok, err := s.source.SelectedText(ctx)
	if err != nil {
		return fmt.Errorf("get selected text: %w", err)
	}
	if !ok || text == "" {
		return ErrNoSelection
	}

	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("get layout snapshot: %w", err)
	}
	s.log.Debugw("got layout snapshot", "layouts", len(snapshot))

	res, err := Shift(text, snapshot)
	if err != nil {
		return err
	}
	s.log.Debugw("shifted text", "from", res.From.Label, "to", res.To.Label, "score", res.Score.Value, "matches", res.Score.Matches)

	if err := s.sink.ReplaceSelectedText(ctx, res.Text); err != nil {
		var injErr *InjectionError
		if errors.As(err, &injErr) {
			return injErr
		}
		return &InjectionError{Reason: err.Error()}
	}

	if s.recorder != nil {
		if err := s.recorder.RecordShift(ctx, text, res); err != nil {
			s.log.Warnw("failed to record shift", "error", err)
		}
	}

	if s.activator != nil {
		if err := s.activator.Activate(ctx, res.To.Label); err != nil {
			s.log.Warnw("failed to activate target layout", "layout", res.To.Label, "error", err)
		}
	}

	return nil
}
