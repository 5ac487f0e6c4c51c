package keymapshift

import (
	"errors"
	"fmt"
)

var (
	ErrNoSelection        = errors.New("no text is currently highlighted")
	ErrLayoutUndetermined = errors.New("could not determine the layout of the highlighted text")
	ErrNoNextLayout       = errors.New("no next layout found")
	ErrInjectionFailed    = errors.New("replace highlighted text")
)

type InjectionError struct {
	Reason string
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInjectionFailed, e.Reason)
}

func (e *InjectionError) Is(target error) bool {
	return target == ErrInjectionFailed
}
