package catalog

import (
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"context"
	"go.uber.org/zap"
)

// Static serves layouts from a fixed, ordered list of layout ids.
type Static struct {
	ids     []string
	keymaps KeymapLoader
	log     *zap.SugaredLogger
}

func NewStatic(ids []string, keymaps KeymapLoader, log *zap.SugaredLogger) *Static {
	return &Static{
		ids:     append([]string(nil), ids...),
		keymaps: keymaps,
		log:     log,
	}
}

func (s *Static) Snapshot(_ context.Context) (keymapshift.Snapshot, error) {
	return build(s.ids, s.keymaps, s.log)
}
