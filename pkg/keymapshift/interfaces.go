package keymapshift

import "context"

type TextSource interface {
	// SelectedText returns false when nothing is selected.
	SelectedText(ctx context.Context) (string, bool, error)
}

type TextSink interface {
	ReplaceSelectedText(ctx context.Context, text string) error
}

type LayoutCatalog interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// LayoutActivator is implemented by catalogs that can also make a layout the active one.
type LayoutActivator interface {
	Activate(ctx context.Context, label string) error
}

type ShiftRecorder interface {
	RecordShift(ctx context.Context, input string, result Result) error
}
