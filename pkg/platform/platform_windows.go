package platform

import (
	"codeberg.org/miketth/keymapshift/pkg/catalog"
	"codeberg.org/miketth/keymapshift/pkg/config"
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"codeberg.org/miketth/keymapshift/pkg/win32"
	"context"
	"go.uber.org/zap"
)

// systemCatalog reads the layouts installed in Windows along with their glyphs.
func systemCatalog(_ context.Context, _ *config.Config, _ catalog.KeymapLoader, log *zap.SugaredLogger) (keymapshift.LayoutCatalog, error) {
	log.Debug("using windows keyboard layouts")
	return win32.NewCatalog(log), nil
}

func Source(log *zap.SugaredLogger) keymapshift.TextSource {
	return win32.NewCopySource(log)
}

func Sink(*zap.SugaredLogger) keymapshift.TextSink {
	return win32.TypingSink{}
}
