//go:build linux || windows || darwin

package hotkey

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.design/x/hotkey"
	"testing"
)

func TestKey(t *testing.T) {
	k, err := key('K')
	require.NoError(t, err)
	assert.Equal(t, hotkey.KeyK, k)

	k, err = key('7')
	require.NoError(t, err)
	assert.Equal(t, hotkey.Key7, k)

	_, err = key('!')
	assert.ErrorIs(t, err, ErrUnsupportedKey)
}

func TestModifiers(t *testing.T) {
	spec, err := Parse("Ctrl+Alt+Shift+K")
	require.NoError(t, err)
	assert.Equal(t, []hotkey.Modifier{hotkey.ModCtrl, modAlt, hotkey.ModShift}, spec.modifiers())
}
