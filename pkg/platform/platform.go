// Package platform wires the catalog, text source and text sink that suit the
// running system.
package platform

import (
	"codeberg.org/miketth/keymapshift/pkg/catalog"
	"codeberg.org/miketth/keymapshift/pkg/config"
	"codeberg.org/miketth/keymapshift/pkg/hyprland"
	"codeberg.org/miketth/keymapshift/pkg/keymaps"
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
)

var ErrNoLayouts = errors.New("no layouts configured")

// Catalog returns the layout catalog selected by cfg. In auto mode Hyprland is
// used when it is running. Otherwise the configured layouts are used, or the
// layouts installed on the system when none are configured.
func Catalog(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (keymapshift.LayoutCatalog, error) {
	loader := keymaps.DirLoader{Dir: cfg.KeymapsDir, System: true}

	switch cfg.Catalog {
	case config.CatalogHyprland:
		return hyprlandCatalog(loader, log)
	case config.CatalogAuto:
		if hyprland.Running() {
			return hyprlandCatalog(loader, log)
		}
	}

	if len(cfg.Layouts) == 0 {
		return systemCatalog(ctx, cfg, loader, log)
	}

	log.Debugw("using configured layouts", "layouts", cfg.Layouts)
	return catalog.NewStatic(cfg.Layouts, loader, log), nil
}

func hyprlandCatalog(loader catalog.KeymapLoader, log *zap.SugaredLogger) (*catalog.Hyprland, error) {
	hyprctl, err := hyprland.NewHyprctl()
	if err != nil {
		return nil, fmt.Errorf("connect hyprctl: %w", err)
	}

	log.Debug("using hyprland layouts")
	return catalog.NewHyprland(hyprctl, loader, log), nil
}
