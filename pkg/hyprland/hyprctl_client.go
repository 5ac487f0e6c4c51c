package hyprland

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

type Hyprctl struct{}

func NewHyprctl() (*Hyprctl, error) {
	if !Running() {
		return nil, ErrNotRunning
	}
	return &Hyprctl{}, nil
}

func (c *Hyprctl) SwitchToLayout(ctx context.Context, keyboard string, idx int) error {
	conn, err := c.makeRequest(ctx, fmt.Sprintf("switchxkblayout %s %d", keyboard, idx), "")
	if err != nil {
		return err
	}
	defer conn.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, conn)
	if err != nil {
		return fmt.Errorf("read response from hyprctl socket: %w", err)
	}

	if out := strings.TrimSpace(buf.String()); out != "ok" {
		return fmt.Errorf("hyprctl: %s", out)
	}

	return nil
}

func (c *Hyprctl) GetKeyboards(ctx context.Context) ([]Keyboard, error) {
	conn, err := c.makeRequest(ctx, "devices", "j")
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	dec := json.NewDecoder(conn)

	var devs devices
	if err := dec.Decode(&devs); err != nil {
		return nil, fmt.Errorf("unmarshal devices: %w", err)
	}

	keyboards := devs.Keyboards
	out := make([]Keyboard, 0, len(keyboards))
	for _, k := range keyboards {
		out = append(out, k.ToKeyboard())
	}

	return out, nil
}

const requestTimeout = 2 * time.Second

func (c *Hyprctl) makeRequest(ctx context.Context, request string, args string) (net.Conn, error) {
	conn, err := connect()
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(requestTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	if args != "" {
		request = fmt.Sprintf("%s/%s", args, request)
	}
	_, err = conn.Write([]byte(request))
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("write to hyprctl socket: %w", err)
	}

	return conn, nil
}
