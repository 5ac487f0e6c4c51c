package hyprland

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net"
	"os"
	"path/filepath"
	"testing"
)

// fakeHyprland serves one canned response per connection and records the requests.
func fakeHyprland(t *testing.T, response string) <-chan string {
	t.Helper()

	runtimeDir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", runtimeDir)
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "test")

	dir := filepath.Join(runtimeDir, "hypr", "test")
	require.NoError(t, os.MkdirAll(dir, 0755))

	ln, err := net.Listen("unix", filepath.Join(dir, ".socket.sock"))
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	requests := make(chan string, 8)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			buf := make([]byte, 1024)
			n, _ := conn.Read(buf)
			requests <- string(buf[:n])
			_, _ = conn.Write([]byte(response))
			conn.Close()
		}
	}()

	return requests
}

const devicesJSON = `{
	"mice": [],
	"keyboards": [
		{"name": "power-button", "layout": "us", "variant": "", "main": false},
		{"name": "at-translated-set-2-keyboard", "layout": "us,ru,il", "variant": ",,", "active_layout_index": 1, "main": true}
	]
}`

func TestGetKeyboards(t *testing.T) {
	requests := fakeHyprland(t, devicesJSON)

	c, err := NewHyprctl()
	require.NoError(t, err)

	keyboards, err := c.GetKeyboards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "j/devices", <-requests)
	require.Len(t, keyboards, 2)

	main, ok := MainKeyboard(keyboards)
	require.True(t, ok)
	assert.Equal(t, "at-translated-set-2-keyboard", main.Name)
	assert.Equal(t, []string{"us", "ru", "il"}, main.Layouts)
	assert.Equal(t, 1, main.ActiveIndex)
	assert.Equal(t, "", main.Variant(2))
	assert.Equal(t, "", main.Variant(7))
}

func TestSwitchToLayout(t *testing.T) {
	requests := fakeHyprland(t, "ok")

	c, err := NewHyprctl()
	require.NoError(t, err)

	require.NoError(t, c.SwitchToLayout(context.Background(), "kbd", 2))
	assert.Equal(t, "switchxkblayout kbd 2", <-requests)
}

func TestSwitchToLayoutError(t *testing.T) {
	fakeHyprland(t, "device not found")

	c, err := NewHyprctl()
	require.NoError(t, err)

	err = c.SwitchToLayout(context.Background(), "kbd", 2)
	assert.ErrorContains(t, err, "device not found")
}

func TestNotRunning(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	_, err := NewHyprctl()
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestMainKeyboardFallsBackToFirstWithLayouts(t *testing.T) {
	k, ok := MainKeyboard([]Keyboard{{Name: "a"}, {Name: "b", Layouts: []string{"us"}}})
	require.True(t, ok)
	assert.Equal(t, "b", k.Name)

	_, ok = MainKeyboard(nil)
	assert.False(t, ok)
}
