package keymaps

import (
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ShiftLevel is added to a key-code to address the glyph the key produces with Shift held.
const ShiftLevel = 0x100

var ErrInvalidKeymap = errors.New("invalid keymap")

// Keymap describes what each key produces under one layout. Key-codes are evdev codes.
type Keymap struct {
	Name        string
	Variant     string
	Description string
	Direction   string
	Keys        map[uint16]string
	Shift       map[uint16]string
}

// ID is the label the keymap is known by in a snapshot, e.g. "us" or "de(nodeadkeys)".
func (k Keymap) ID() string {
	return FormatID(k.Name, k.Variant)
}

func FormatID(name, variant string) string {
	if variant == "" {
		return name
	}
	return fmt.Sprintf("%s(%s)", name, variant)
}

// ParseID splits "de(nodeadkeys)" into "de" and "nodeadkeys".
func ParseID(id string) (name, variant string) {
	id = strings.TrimSpace(id)
	open := strings.IndexByte(id, '(')
	if open < 0 || !strings.HasSuffix(id, ")") {
		return id, ""
	}
	return id[:open], id[open+1 : len(id)-1]
}

func (k Keymap) Forward() map[uint16]string {
	forward := make(map[uint16]string, len(k.Keys)+len(k.Shift))
	for code, glyph := range k.Keys {
		if glyph != "" {
			forward[code] = glyph
		}
	}
	for code, glyph := range k.Shift {
		if glyph != "" {
			forward[code+ShiftLevel] = glyph
		}
	}
	return forward
}

func (k Keymap) LayoutDirection() keymapshift.Direction {
	switch strings.ToLower(k.Direction) {
	case "rtl":
		return keymapshift.RightToLeft
	case "ltr":
		return keymapshift.LeftToRight
	}
	return InferDirection(k.Keys)
}

// LayoutMap builds the snapshot entry for this keymap, labelled with label.
func (k Keymap) LayoutMap(label string) keymapshift.LayoutMap {
	return keymapshift.LayoutMap{
		Layout: keymapshift.Layout{
			Label:     label,
			Direction: k.LayoutDirection(),
		},
		Forward: k.Forward(),
	}
}

// InferDirection treats a layout as right-to-left when any of its keys starts with a
// right-to-left character.
func InferDirection(keys map[uint16]string) keymapshift.Direction {
	for _, glyph := range keys {
		r, _ := utf8.DecodeRuneInString(glyph)
		if r != utf8.RuneError && keymapshift.IsRightToLeft(r) {
			return keymapshift.RightToLeft
		}
	}
	return keymapshift.LeftToRight
}

func (k Keymap) validate() error {
	if k.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidKeymap)
	}
	switch strings.ToLower(k.Direction) {
	case "", "ltr", "rtl":
	default:
		return fmt.Errorf("%w: %s: unknown direction %q", ErrInvalidKeymap, k.ID(), k.Direction)
	}
	if len(k.Keys) == 0 {
		return fmt.Errorf("%w: %s: no keys", ErrInvalidKeymap, k.ID())
	}
	return nil
}

func parseTable(raw map[string]string) (map[uint16]string, error) {
	table := make(map[uint16]string, len(raw))
	for key, glyph := range raw {
		code, err := strconv.ParseUint(strings.TrimSpace(key), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: key-code %q: %v", ErrInvalidKeymap, key, err)
		}
		if code >= ShiftLevel {
			return nil, fmt.Errorf("%w: key-code %d out of range", ErrInvalidKeymap, code)
		}
		if glyph == "" {
			continue
		}
		table[uint16(code)] = glyph
	}
	return table, nil
}
