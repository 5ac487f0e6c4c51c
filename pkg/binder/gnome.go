package binder

import (
	"codeberg.org/miketth/keymapshift/pkg/hotkey"
	"context"
	"fmt"
	"strings"
)

const (
	gnomeBindingPath   = "/org/gnome/settings-daemon/plugins/media-keys/custom-keybindings/keymapshift/"
	gnomeMediaKeys     = "org.gnome.settings-daemon.plugins.media-keys"
	gnomeCustomBinding = "org.gnome.settings-daemon.plugins.media-keys.custom-keybinding"
	gnomeListKey       = "custom-keybindings"
)

type GnomeBinder struct {
	command string
	run     Runner
}

func NewGnome(command string, run Runner) *GnomeBinder {
	if run == nil {
		run = execRunner
	}
	return &GnomeBinder{command: command, run: run}
}

func (g *GnomeBinder) Apply(ctx context.Context, spec hotkey.Spec) error {
	current, err := g.run(ctx, "gsettings", "get", gnomeMediaKeys, gnomeListKey)
	if err != nil {
		return fmt.Errorf("gsettings get %s %s: %w", gnomeMediaKeys, gnomeListKey, err)
	}

	paths := parseStrv(current)
	if !contains(paths, gnomeBindingPath) {
		paths = append(paths, gnomeBindingPath)
		if err := g.set(ctx, gnomeMediaKeys, gnomeListKey, formatStrv(paths)); err != nil {
			return err
		}
	}

	schema := gnomeCustomBinding + ":" + gnomeBindingPath
	settings := [][2]string{
		{"name", quote(appName)},
		{"command", quote(g.command)},
		{"binding", quote(spec.GnomeBinding())},
	}
	for _, kv := range settings {
		if err := g.set(ctx, schema, kv[0], kv[1]); err != nil {
			return err
		}
	}

	return nil
}

func (g *GnomeBinder) set(ctx context.Context, schema, key, value string) error {
	if _, err := g.run(ctx, "gsettings", "set", schema, key, value); err != nil {
		return fmt.Errorf("gsettings set %s %s: %w", schema, key, err)
	}
	return nil
}

// parseStrv reads a GVariant string array as printed by gsettings: "['a', 'b']" or "@as []".
func parseStrv(s string) []string {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "@as"))
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")

	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.Trim(strings.TrimSpace(item), `'"`)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func formatStrv(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quote(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
