package xkblayouts

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// InstalledLocales lists the locales reported by `locale -a`.
func InstalledLocales(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, "locale", "-a").Output()
	if err != nil {
		return nil, fmt.Errorf("locale -a: %w", err)
	}

	var locales []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			locales = append(locales, line)
		}
	}
	return locales, scanner.Err()
}

// LayoutsForLocales returns, in registry order, the layouts named after the
// country part of any of the given locales ("ru_RU.UTF-8" -> "ru").
func (r *XkbConfigRegistry) LayoutsForLocales(locales []string) []string {
	if r == nil {
		return nil
	}

	countries := make(map[string]bool)
	for _, loc := range locales {
		if strings.HasPrefix(loc, "C") || strings.HasPrefix(loc, "POSIX") {
			continue
		}
		parts := strings.FieldsFunc(loc, func(r rune) bool { return r == '_' || r == '.' })
		if len(parts) >= 2 {
			countries[strings.ToLower(parts[1])] = true
		}
	}

	var layouts []string
	for _, l := range r.LayoutList.Layout {
		if countries[strings.ToLower(l.ConfigItem.Name)] {
			layouts = append(layouts, l.ConfigItem.Name)
		}
	}
	return layouts
}
