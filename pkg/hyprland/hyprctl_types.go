package hyprland

import (
	"strings"
)

type Keyboard struct {
	Name        string
	Layouts     []string
	Variants    []string
	Main        bool
	ActiveIndex int
}

// Variant returns the variant configured for the layout at idx, or "".
func (k Keyboard) Variant(idx int) string {
	if idx < 0 || idx >= len(k.Variants) {
		return ""
	}
	return k.Variants[idx]
}

type keyboard struct {
	Name              string `json:"name"`
	Layout            string `json:"layout"`
	Variant           string `json:"variant"`
	Options           string `json:"options"`
	ActiveKeymap      string `json:"active_keymap"`
	ActiveLayoutIndex int    `json:"active_layout_index"`
	Main              bool   `json:"main"`
}

type devices struct {
	Keyboards []keyboard `json:"keyboards"`
}

func (k keyboard) ToKeyboard() Keyboard {
	return Keyboard{
		Name:        k.Name,
		Layouts:     splitList(k.Layout),
		Variants:    strings.Split(k.Variant, ","),
		Main:        k.Main,
		ActiveIndex: k.ActiveLayoutIndex,
	}
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// MainKeyboard picks the keyboard Hyprland marks as main, or the first one with layouts.
func MainKeyboard(keyboards []Keyboard) (Keyboard, bool) {
	for _, k := range keyboards {
		if k.Main && len(k.Layouts) > 0 {
			return k, true
		}
	}
	for _, k := range keyboards {
		if len(k.Layouts) > 0 {
			return k, true
		}
	}
	return Keyboard{}, false
}
