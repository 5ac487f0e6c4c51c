package binder

import (
	"codeberg.org/miketth/keymapshift/pkg/hotkey"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

const (
	appName   = "Keyboard Map Shift"
	appID     = "keymapshift"
	RunSubcmd = "run"
)

var ErrUnsupportedDesktop = errors.New("unsupported desktop environment for automatic binding")

// Binder makes the desktop run the shift command when the hotkey is pressed.
type Binder interface {
	Apply(ctx context.Context, spec hotkey.Spec) error
}

type Desktop int

const (
	Unknown Desktop = iota
	Gnome
	KDE
)

func (d Desktop) String() string {
	switch d {
	case Gnome:
		return "gnome"
	case KDE:
		return "kde"
	}
	return "unknown"
}

func Detect() Desktop {
	for _, env := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		val := strings.ToLower(os.Getenv(env))
		switch {
		case strings.Contains(val, "gnome"):
			return Gnome
		case strings.Contains(val, "kde"), strings.Contains(val, "plasma"):
			return KDE
		}
	}
	return Unknown
}

// Runner runs an external command, returning its trimmed stdout.
type Runner func(ctx context.Context, name string, args ...string) (string, error)

func execRunner(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// New returns the binder for desktop that binds the hotkey to command.
func New(desktop Desktop, command string) (Binder, error) {
	switch desktop {
	case Gnome:
		return NewGnome(command, nil), nil
	case KDE:
		return NewKDE(command, nil)
	}
	return nil, ErrUnsupportedDesktop
}
