package keymapshift

import (
	"sort"
	"unicode/utf8"
)

// InverseMap maps a glyph back to the key-codes producing it, in ascending key-code order.
type InverseMap map[rune][]uint16

// Invert builds the inverse of lm's forward table. Glyphs longer than one
// character are left out. Key-codes for a glyph are sorted ascending, so
// the lowest key-code is always the first candidate.
func Invert(lm LayoutMap) InverseMap {
	codes := make([]uint16, 0, len(lm.Forward))
	for code := range lm.Forward {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	inverse := make(InverseMap, len(codes))
	for _, code := range codes {
		glyph := lm.Forward[code]
		if glyph == "" || utf8.RuneCountInString(glyph) != 1 {
			continue
		}
		r, _ := utf8.DecodeRuneInString(glyph)
		inverse[r] = append(inverse[r], code)
	}

	return inverse
}

func (m InverseMap) Has(r rune) bool {
	_, ok := m[r]
	return ok
}

// KeyCode returns the lowest key-code producing r.
func (m InverseMap) KeyCode(r rune) (uint16, bool) {
	codes := m[r]
	if len(codes) == 0 {
		return 0, false
	}
	return codes[0], true
}
