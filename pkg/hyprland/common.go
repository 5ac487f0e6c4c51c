package hyprland

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
)

var ErrNotRunning = errors.New("hyprland might not be running")

const controlSocket = ".socket.sock"

func connect() (net.Conn, error) {
	socketPath, err := getSocketPath()
	if err != nil {
		return nil, fmt.Errorf("get socket path: %w", err)
	}

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	return conn, nil
}

// Running reports whether the environment points at a Hyprland instance.
func Running() bool {
	return os.Getenv("HYPRLAND_INSTANCE_SIGNATURE") != ""
}

func getSocketPath() (string, error) {
	signature := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if signature == "" {
		return "", fmt.Errorf("HYPRLAND_INSTANCE_SIGNATURE is not set, %w", ErrNotRunning)
	}

	// hyprland >= 0.40 keeps its sockets in the runtime dir
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		path := filepath.Join(runtimeDir, "hypr", signature, controlSocket)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return filepath.Join("/tmp/hypr", signature, controlSocket), nil
}
