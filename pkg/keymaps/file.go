package keymaps

import (
	"encoding/json"
	"fmt"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
)

type keymapFile struct {
	Name        string            `toml:"name" yaml:"name" json:"name"`
	Variant     string            `toml:"variant" yaml:"variant" json:"variant"`
	Description string            `toml:"description" yaml:"description" json:"description"`
	Direction   string            `toml:"direction" yaml:"direction" json:"direction"`
	Keys        map[string]string `toml:"keys" yaml:"keys" json:"keys"`
	Shift       map[string]string `toml:"shift" yaml:"shift" json:"shift"`
}

func IsKeymapFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func LoadFile(path string) (Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Keymap{}, fmt.Errorf("read keymap: %w", err)
	}

	km, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return Keymap{}, fmt.Errorf("decode %s: %w", path, err)
	}

	return km, nil
}

// Decode parses a keymap in the format named by ext (".toml", ".yaml", ".yml" or ".json").
func Decode(ext string, data []byte) (Keymap, error) {
	var f keymapFile

	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".json":
		err = json.Unmarshal(data, &f)
	default:
		return Keymap{}, fmt.Errorf("unsupported keymap format %q", ext)
	}
	if err != nil {
		return Keymap{}, fmt.Errorf("unmarshal: %w", err)
	}

	keys, err := parseTable(f.Keys)
	if err != nil {
		return Keymap{}, fmt.Errorf("keys: %w", err)
	}
	shift, err := parseTable(f.Shift)
	if err != nil {
		return Keymap{}, fmt.Errorf("shift: %w", err)
	}

	km := Keymap{
		Name:        strings.TrimSpace(f.Name),
		Variant:     strings.TrimSpace(f.Variant),
		Description: f.Description,
		Direction:   f.Direction,
		Keys:        keys,
		Shift:       shift,
	}
	if err := km.validate(); err != nil {
		return Keymap{}, err
	}

	return km, nil
}
