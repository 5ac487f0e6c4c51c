// Package win32 reads keyboard layouts and the selection on Windows and types
// text back with SendInput.
package win32

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode"
	"unicode/utf16"
)

var (
	ErrUnknownLayout      = errors.New("layout is not installed")
	ErrNoForegroundWindow = errors.New("no foreground window")
)

// primary language ids written right-to-left: Arabic, Hebrew, Persian, Urdu,
// Syriac, Divehi, Pashto, Yiddish, Central Kurdish
var rtlLanguages = map[uint16]bool{
	0x01: true, 0x0D: true, 0x29: true, 0x20: true, 0x5A: true,
	0x65: true, 0x63: true, 0x3D: true, 0x92: true,
}

func IsRightToLeftLangID(langID uint16) bool {
	return rtlLanguages[langID&0x03FF]
}

// uniqueLabels suffixes repeated locale names, e.g. two en-US layouts become
// "en-US" and "en-US#2".
func uniqueLabels(names []string) []string {
	seen := make(map[string]int, len(names))
	labels := make([]string, len(names))
	for i, name := range names {
		seen[name]++
		if n := seen[name]; n > 1 {
			labels[i] = fmt.Sprintf("%s#%d", name, n)
			continue
		}
		labels[i] = name
	}
	return labels
}

// printable reports whether a key's output is a glyph worth matching on.
func printable(glyph string) bool {
	if glyph == "" {
		return false
	}
	for _, r := range glyph {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

type keyEvent struct {
	vk      uint16
	unit    uint16
	unicode bool
	up      bool
}

// unicodeEvents types text as UTF-16 code units, one press and release each.
func unicodeEvents(text string) []keyEvent {
	units := utf16.Encode([]rune(text))
	events := make([]keyEvent, 0, len(units)*2)
	for _, u := range units {
		events = append(events,
			keyEvent{unit: u, unicode: true},
			keyEvent{unit: u, unicode: true, up: true},
		)
	}
	return events
}

const (
	vkShift   = 0x10
	vkControl = 0x11
	vkC       = 0x43
)

func copyEvents() []keyEvent {
	return []keyEvent{
		{vk: vkControl},
		{vk: vkC},
		{vk: vkC, up: true},
		{vk: vkControl, up: true},
	}
}

// waitChange polls current until it differs from before. It gives up after
// timeout or when ctx is done.
func waitChange(ctx context.Context, current func() uint32, before uint32, timeout, interval time.Duration) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		if current() != before {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-deadline.C:
			return current() != before
		case <-tick.C:
		}
	}
}
