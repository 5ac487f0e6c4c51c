package keymapshift

import (
	"golang.org/x/text/unicode/bidi"
	"unicode"
)

// DirectionHint reports the direction of the first strong directional character of
// text. Whitespace, ASCII punctuation and characters without a strong bidi class are
// skipped. ok is false when text has no strong character.
func DirectionHint(text string) (dir Direction, ok bool) {
	for _, r := range text {
		if unicode.IsSpace(r) || isASCIIPunct(r) {
			continue
		}
		switch bidiClass(r) {
		case bidi.L:
			return LeftToRight, true
		case bidi.R, bidi.AL:
			return RightToLeft, true
		}
	}
	return LeftToRight, false
}

// IsRightToLeft reports whether r is a strong right-to-left character.
func IsRightToLeft(r rune) bool {
	class := bidiClass(r)
	return class == bidi.R || class == bidi.AL
}

func bidiClass(r rune) bidi.Class {
	props, _ := bidi.LookupRune(r)
	return props.Class()
}

func isASCIIPunct(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

// ApplyDirection reverses text when from and to differ. The reversal is per code
// point; combining marks and mixed-direction runs get no special treatment.
func ApplyDirection(text string, from, to Direction) string {
	if from == to {
		return text
	}
	return reverse(text)
}

func reverse(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
