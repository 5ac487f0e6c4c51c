package platform

import (
	"codeberg.org/miketth/keymapshift/pkg/catalog"
	"codeberg.org/miketth/keymapshift/pkg/config"
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"codeberg.org/miketth/keymapshift/pkg/selection"
	"codeberg.org/miketth/keymapshift/pkg/xkblayouts"
	"context"
	"fmt"
	"go.uber.org/zap"
)

// systemCatalog derives the layout list from the installed locales, keeping
// only layouts evdev.xml knows about.
func systemCatalog(ctx context.Context, cfg *config.Config, loader catalog.KeymapLoader, log *zap.SugaredLogger) (keymapshift.LayoutCatalog, error) {
	registry, err := xkblayouts.ParseLayouts(cfg.EvdevXMLPath)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	locales, err := xkblayouts.InstalledLocales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}

	layouts := registry.LayoutsForLocales(locales)
	if len(layouts) == 0 {
		return nil, ErrNoLayouts
	}

	log.Debugw("derived layouts from locales", "locales", len(locales), "layouts", layouts)
	return catalog.NewStatic(layouts, loader, log), nil
}

// Source reads the primary selection through the usual Wayland and X11 tools,
// then falls back to the clipboard.
func Source(log *zap.SugaredLogger) keymapshift.TextSource {
	return selection.ChainSource{
		selection.NewCommandSource(selection.SelectionCommands(selection.IsWSL()), nil, log),
		selection.ClipboardSource{},
	}
}

// Sink types over the selection with wtype or xdotool.
func Sink(log *zap.SugaredLogger) keymapshift.TextSink {
	return selection.NewTypingSink(selection.TypingCommands(), nil, log)
}
