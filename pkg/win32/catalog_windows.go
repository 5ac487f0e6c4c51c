package win32

import (
	"codeberg.org/miketth/keymapshift/pkg/keymaps"
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"context"
	"fmt"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

// Catalog serves the keyboard layouts installed for the current user, labelled
// by locale name.
type Catalog struct {
	log *zap.SugaredLogger
}

func NewCatalog(log *zap.SugaredLogger) *Catalog {
	return &Catalog{log: log}
}

func (c *Catalog) layouts() ([]windows.Handle, []string, error) {
	hkls, err := keyboardLayouts()
	if err != nil {
		return nil, nil, err
	}

	names := make([]string, len(hkls))
	for i, hkl := range hkls {
		names[i] = localeName(langID(hkl))
	}
	return hkls, uniqueLabels(names), nil
}

func (c *Catalog) Snapshot(_ context.Context) (keymapshift.Snapshot, error) {
	hkls, labels, err := c.layouts()
	if err != nil {
		return nil, fmt.Errorf("list keyboard layouts: %w", err)
	}

	snapshot := make(keymapshift.Snapshot, len(hkls))
	for i, hkl := range hkls {
		snapshot[i] = layoutMap(hkl, labels[i])
		c.log.Debugw("read keyboard layout", "layout", labels[i], "hkl", fmt.Sprintf("%08x", uintptr(hkl)), "keys", len(snapshot[i].Forward))
	}
	return snapshot, nil
}

func layoutMap(hkl windows.Handle, label string) keymapshift.LayoutMap {
	forward := make(map[uint16]string)

	var state [256]byte
	for level, shifted := range []bool{false, true} {
		state[vkShift] = 0
		if shifted {
			state[vkShift] = 0x80
		}

		for vk := uint16(0); vk < keymaps.ShiftLevel; vk++ {
			glyph, ok := keyGlyph(hkl, vk, &state)
			if !ok || !printable(glyph) {
				continue
			}
			forward[vk+uint16(level)*keymaps.ShiftLevel] = glyph
		}
	}

	direction := keymapshift.LeftToRight
	if IsRightToLeftLangID(langID(hkl)) {
		direction = keymapshift.RightToLeft
	}

	return keymapshift.LayoutMap{
		Layout:  keymapshift.Layout{Label: label, Direction: direction},
		Forward: forward,
	}
}

// Activate asks the foreground window to switch to the layout labelled label.
func (c *Catalog) Activate(_ context.Context, label string) error {
	hkls, labels, err := c.layouts()
	if err != nil {
		return fmt.Errorf("list keyboard layouts: %w", err)
	}

	for i, l := range labels {
		if l != label {
			continue
		}

		hwnd := foregroundWindow()
		if hwnd == 0 {
			return ErrNoForegroundWindow
		}
		return requestLayout(hwnd, hkls[i])
	}

	return fmt.Errorf("%w: %s", ErrUnknownLayout, label)
}
