package win32

import (
	"context"
	"fmt"
	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"time"
)

const (
	copyTimeout  = 500 * time.Millisecond
	copyInterval = 10 * time.Millisecond
)

// CopySource reads the selection by sending Ctrl+C to the focused window and
// reading the clipboard once it changes. The previous clipboard text is put back.
type CopySource struct {
	log *zap.SugaredLogger
}

func NewCopySource(log *zap.SugaredLogger) *CopySource {
	return &CopySource{log: log}
}

func (s *CopySource) SelectedText(ctx context.Context) (string, bool, error) {
	previous, prevErr := clipboard.ReadAll()
	before := clipboardSequence()

	if err := sendInput(copyEvents()); err != nil {
		return "", false, fmt.Errorf("send copy: %w", err)
	}

	if !waitChange(ctx, clipboardSequence, before, copyTimeout, copyInterval) {
		s.log.Debug("clipboard did not change after copy, nothing selected")
		return "", false, nil
	}

	text, err := clipboard.ReadAll()

	if prevErr == nil {
		if rerr := clipboard.WriteAll(previous); rerr != nil {
			s.log.Warnw("failed to restore clipboard", "error", rerr)
		}
	}

	if err != nil {
		return "", false, fmt.Errorf("read clipboard: %w", err)
	}
	return text, text != "", nil
}

// TypingSink types the text over the selection as unicode key events.
type TypingSink struct{}

func (TypingSink) ReplaceSelectedText(_ context.Context, text string) error {
	return sendInput(unicodeEvents(text))
}
