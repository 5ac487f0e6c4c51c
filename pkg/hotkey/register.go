//go:build linux || windows || darwin

package hotkey

import (
	"context"
	"errors"
	"fmt"
	"golang.design/x/hotkey"
)

var ErrUnsupportedKey = errors.New("hotkey key must be a letter or a digit")

var (
	letterKeys = [...]hotkey.Key{
		hotkey.KeyA, hotkey.KeyB, hotkey.KeyC, hotkey.KeyD, hotkey.KeyE, hotkey.KeyF, hotkey.KeyG,
		hotkey.KeyH, hotkey.KeyI, hotkey.KeyJ, hotkey.KeyK, hotkey.KeyL, hotkey.KeyM, hotkey.KeyN,
		hotkey.KeyO, hotkey.KeyP, hotkey.KeyQ, hotkey.KeyR, hotkey.KeyS, hotkey.KeyT, hotkey.KeyU,
		hotkey.KeyV, hotkey.KeyW, hotkey.KeyX, hotkey.KeyY, hotkey.KeyZ,
	}
	digitKeys = [...]hotkey.Key{
		hotkey.Key0, hotkey.Key1, hotkey.Key2, hotkey.Key3, hotkey.Key4,
		hotkey.Key5, hotkey.Key6, hotkey.Key7, hotkey.Key8, hotkey.Key9,
	}
)

// key maps a letter or digit to the platform key. macOS key codes are not
// contiguous, so the named constants are used everywhere.
func key(r rune) (hotkey.Key, error) {
	switch {
	case r >= 'A' && r <= 'Z':
		return letterKeys[r-'A'], nil
	case r >= '0' && r <= '9':
		return digitKeys[r-'0'], nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedKey, r)
}

func (s Spec) modifiers() []hotkey.Modifier {
	var mods []hotkey.Modifier
	if s.Ctrl {
		mods = append(mods, hotkey.ModCtrl)
	}
	if s.Alt {
		mods = append(mods, modAlt)
	}
	if s.Shift {
		mods = append(mods, hotkey.ModShift)
	}
	return mods
}

// Listen registers spec globally and calls fn for every press until ctx is done.
// Presses that arrive while fn is running are dropped.
func Listen(ctx context.Context, spec Spec, fn func(context.Context)) error {
	k, err := key(spec.Key)
	if err != nil {
		return err
	}

	hk := hotkey.New(spec.modifiers(), k)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register hotkey %s: %w", spec, err)
	}
	defer hk.Unregister()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-hk.Keydown():
			fn(ctx)
		}
	}
}
