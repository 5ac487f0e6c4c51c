//go:build !linux && !windows && !darwin

package hotkey

import (
	"context"
	"errors"
)

var ErrUnsupported = errors.New("global hotkeys are not supported on this platform")

func Listen(context.Context, Spec, func(context.Context)) error {
	return ErrUnsupported
}
