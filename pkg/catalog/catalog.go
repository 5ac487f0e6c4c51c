package catalog

import (
	"codeberg.org/miketth/keymapshift/pkg/keymaps"
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"fmt"
	"go.uber.org/zap"
)

// KeymapLoader provides the keymaps layouts are resolved against. It is asked
// again for every snapshot.
type KeymapLoader interface {
	Load() (*keymaps.Registry, error)
}

// build resolves every layout id through the loaded keymaps, in order. Unknown
// layouts and repeated ids are skipped.
func build(ids []string, loader KeymapLoader, log *zap.SugaredLogger) (keymapshift.Snapshot, error) {
	registry, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load keymaps: %w", err)
	}

	snapshot := make(keymapshift.Snapshot, 0, len(ids))
	seen := make(map[string]bool, len(ids))

	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		name, variant := keymaps.ParseID(id)
		km, ok := registry.Lookup(name, variant)
		if !ok {
			log.Warnw("no keymap for layout, skipping", "layout", id)
			continue
		}

		snapshot = append(snapshot, km.LayoutMap(id))
	}

	return snapshot, nil
}
