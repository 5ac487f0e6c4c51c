//go:build !linux && !windows

package platform

import (
	"codeberg.org/miketth/keymapshift/pkg/catalog"
	"codeberg.org/miketth/keymapshift/pkg/config"
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"codeberg.org/miketth/keymapshift/pkg/selection"
	"context"
	"fmt"
	"go.uber.org/zap"
)

func systemCatalog(context.Context, *config.Config, catalog.KeymapLoader, *zap.SugaredLogger) (keymapshift.LayoutCatalog, error) {
	return nil, fmt.Errorf("set layouts in the config file: %w", ErrNoLayouts)
}

// Source reads the clipboard; the selection itself is not reachable here.
func Source(*zap.SugaredLogger) keymapshift.TextSource {
	return selection.ClipboardSource{}
}

// Sink puts the result on the clipboard for the user to paste.
func Sink(*zap.SugaredLogger) keymapshift.TextSink {
	return selection.ClipboardSink{}
}
