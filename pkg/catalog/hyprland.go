package catalog

import (
	"codeberg.org/miketth/keymapshift/pkg/hyprland"
	"codeberg.org/miketth/keymapshift/pkg/keymaps"
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
)

var ErrNoKeyboard = errors.New("no keyboard with layouts found")

type KeyboardClient interface {
	GetKeyboards(ctx context.Context) ([]hyprland.Keyboard, error)
	SwitchToLayout(ctx context.Context, keyboard string, idx int) error
}

// Hyprland serves the layouts configured for the main keyboard of a running Hyprland.
type Hyprland struct {
	client  KeyboardClient
	keymaps KeymapLoader
	log     *zap.SugaredLogger
}

func NewHyprland(client KeyboardClient, keymaps KeymapLoader, log *zap.SugaredLogger) *Hyprland {
	return &Hyprland{
		client:  client,
		keymaps: keymaps,
		log:     log,
	}
}

func (h *Hyprland) mainKeyboard(ctx context.Context) (hyprland.Keyboard, error) {
	keyboards, err := h.client.GetKeyboards(ctx)
	if err != nil {
		return hyprland.Keyboard{}, fmt.Errorf("get keyboards: %w", err)
	}

	keyboard, ok := hyprland.MainKeyboard(keyboards)
	if !ok {
		return hyprland.Keyboard{}, ErrNoKeyboard
	}

	return keyboard, nil
}

func layoutIDs(keyboard hyprland.Keyboard) []string {
	ids := make([]string, len(keyboard.Layouts))
	for i, layout := range keyboard.Layouts {
		ids[i] = keymaps.FormatID(layout, keyboard.Variant(i))
	}
	return ids
}

func (h *Hyprland) Snapshot(ctx context.Context) (keymapshift.Snapshot, error) {
	keyboard, err := h.mainKeyboard(ctx)
	if err != nil {
		return nil, err
	}

	h.log.Debugw("using keyboard", "keyboard", keyboard.Name, "layouts", keyboard.Layouts)
	return build(layoutIDs(keyboard), h.keymaps, h.log)
}

// Activate makes label the active layout of the main keyboard.
func (h *Hyprland) Activate(ctx context.Context, label string) error {
	keyboard, err := h.mainKeyboard(ctx)
	if err != nil {
		return err
	}

	for i, id := range layoutIDs(keyboard) {
		if id != label {
			continue
		}

		if err := h.client.SwitchToLayout(ctx, keyboard.Name, i); err != nil {
			return fmt.Errorf("switch layout: %w", err)
		}
		return nil
	}

	return fmt.Errorf("layout %q not found for keyboard %q", label, keyboard.Name)
}
