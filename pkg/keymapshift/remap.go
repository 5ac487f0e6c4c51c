package keymapshift

import "strings"

// Remap re-types text on target: each character is traced back to the key that
// produces it on current and replaced by what that key produces on target.
// Characters current cannot produce, and keys target has no glyph for, pass
// through unchanged.
func Remap(text string, current, target LayoutMap) string {
	inverse := Invert(current)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		code, ok := inverse.KeyCode(r)
		if !ok {
			b.WriteRune(r)
			continue
		}

		glyph := target.Forward[code]
		if glyph == "" {
			b.WriteRune(r)
			continue
		}
		b.WriteString(glyph)
	}

	return b.String()
}
