// Package hotkey parses the human-readable hotkey notation used in the
// config file ("Ctrl+Alt+K") and registers it with the desktop.
package hotkey

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const DefaultDisplay = "Ctrl+Alt+K"

var ErrMissingKey = errors.New("missing key in hotkey")

type Spec struct {
	Ctrl  bool
	Alt   bool
	Shift bool
	Key   rune
}

// Normalize canonicalises the spelling of a hotkey: "ctrl + alt+k" becomes "Ctrl+Alt+K".
func Normalize(display string) string {
	parts := strings.Split(display, "+")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		switch strings.ToLower(p) {
		case "ctrl", "control":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		default:
			parts[i] = capitalize(strings.ToLower(p))
		}
	}
	return strings.Join(parts, "+")
}

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

func Parse(display string) (Spec, error) {
	if strings.TrimSpace(display) == "" {
		return Spec{}, errors.New("hotkey cannot be empty")
	}

	var spec Spec
	for _, part := range strings.Split(display, "+") {
		p := strings.ToLower(strings.TrimSpace(part))
		switch {
		case p == "ctrl" || p == "control":
			spec.Ctrl = true
		case p == "alt":
			spec.Alt = true
		case p == "shift":
			spec.Shift = true
		case len([]rune(p)) == 1:
			spec.Key = unicode.ToUpper([]rune(p)[0])
		default:
			return Spec{}, fmt.Errorf("unsupported key segment: %q", part)
		}
	}

	if spec.Key == 0 {
		return Spec{}, ErrMissingKey
	}
	return spec, nil
}

func (s Spec) String() string {
	var parts []string
	if s.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if s.Alt {
		parts = append(parts, "Alt")
	}
	if s.Shift {
		parts = append(parts, "Shift")
	}
	return strings.Join(append(parts, string(s.Key)), "+")
}

// GnomeBinding renders the spec as a GNOME accelerator, e.g. "<Control><Alt>K".
func (s Spec) GnomeBinding() string {
	var b strings.Builder
	if s.Ctrl {
		b.WriteString("<Control>")
	}
	if s.Alt {
		b.WriteString("<Alt>")
	}
	if s.Shift {
		b.WriteString("<Shift>")
	}
	b.WriteRune(s.Key)
	return b.String()
}
