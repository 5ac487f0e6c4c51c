//go:build linux && cgo

package keymaps

/*
#cgo pkg-config: xkbcommon
#include <xkbcommon/xkbcommon.h>
#include <stdlib.h>

// level_utf32 returns the character key produces at level of the first layout,
// or 0 when the level holds no single character keysym.
static uint32_t level_utf32(struct xkb_keymap *keymap, xkb_keycode_t key, xkb_level_index_t level) {
	const xkb_keysym_t *syms;

	if (xkb_keymap_num_layouts_for_key(keymap, key) == 0) {
		return 0;
	}
	if (level >= xkb_keymap_num_levels_for_key(keymap, key, 0)) {
		return 0;
	}
	if (xkb_keymap_key_get_syms_by_level(keymap, key, 0, level, &syms) != 1) {
		return 0;
	}
	return xkb_keysym_to_utf32(syms[0]);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unicode"
	"unsafe"
)

// xkb keycodes are evdev codes plus 8
const evdevOffset = 8

var ErrCompileKeymap = errors.New("compile xkb keymap")

var SystemCompiler Compiler = CompileXKB

// CompileXKB builds a keymap from the xkb description installed on the system.
// The unshifted level fills Keys and the shifted level fills Shift.
func CompileXKB(name, variant string) (Keymap, error) {
	ctx := C.xkb_context_new(C.XKB_CONTEXT_NO_ENVIRONMENT_NAMES)
	if ctx == nil {
		return Keymap{}, fmt.Errorf("%w: create context", ErrCompileKeymap)
	}
	defer C.xkb_context_unref(ctx)
	C.xkb_context_set_log_level(ctx, C.XKB_LOG_LEVEL_CRITICAL)

	var names C.struct_xkb_rule_names

	cLayout := C.CString(name)
	defer C.free(unsafe.Pointer(cLayout))
	names.layout = cLayout

	if variant != "" {
		cVariant := C.CString(variant)
		defer C.free(unsafe.Pointer(cVariant))
		names.variant = cVariant
	}

	keymap := C.xkb_keymap_new_from_names(ctx, &names, C.XKB_KEYMAP_COMPILE_NO_FLAGS)
	if keymap == nil {
		return Keymap{}, fmt.Errorf("%w: %s", ErrCompileKeymap, FormatID(name, variant))
	}
	defer C.xkb_keymap_unref(keymap)

	km := Keymap{
		Name:    name,
		Variant: variant,
		Keys:    make(map[uint16]string),
		Shift:   make(map[uint16]string),
	}
	levels := []map[uint16]string{km.Keys, km.Shift}

	minKey, maxKey := C.xkb_keymap_min_keycode(keymap), C.xkb_keymap_max_keycode(keymap)
	for key := minKey; key <= maxKey; key++ {
		if key < evdevOffset {
			continue
		}
		code := uint32(key) - evdevOffset
		if code >= ShiftLevel {
			break
		}

		for level, table := range levels {
			r := rune(C.level_utf32(keymap, key, C.xkb_level_index_t(level)))
			if r == 0 || unicode.IsControl(r) || unicode.IsSpace(r) {
				continue
			}
			table[uint16(code)] = string(r)
		}
	}

	if err := km.validate(); err != nil {
		return Keymap{}, err
	}
	return km, nil
}
