package config

import (
	"codeberg.org/miketth/keymapshift/pkg/hotkey"
	"codeberg.org/miketth/keymapshift/pkg/xkblayouts"
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"io/fs"
	"os"
	"path/filepath"
)

const appName = "keymapshift"

type CatalogKind string

const (
	CatalogAuto     CatalogKind = "auto"
	CatalogHyprland CatalogKind = "hyprland"
	CatalogStatic   CatalogKind = "static"
)

type Config struct {
	// History keeps every shifted input and its result in a plaintext sqlite
	// file at HistoryPath. Off unless enabled, since shifted text is often a
	// password typed in the wrong layout.
	Hotkey       string      `toml:"hotkey"`
	Catalog      CatalogKind `toml:"catalog"`
	Layouts      []string    `toml:"layouts"`
	KeymapsDir   string      `toml:"keymaps_dir"`
	EvdevXMLPath string      `toml:"evdev_xml_path"`
	SwitchLayout bool        `toml:"switch_layout"`
	Notify       bool        `toml:"notify"`
	History      bool        `toml:"history"`
	HistoryPath  string      `toml:"history_path"`
}

func Default() *Config {
	return &Config{
		Hotkey:       hotkey.DefaultDisplay,
		Catalog:      CatalogAuto,
		KeymapsDir:   filepath.Join(xdg.DataHome, appName, "keymaps"),
		EvdevXMLPath: xkblayouts.DefaultEvdevXMLPath,
		SwitchLayout: true,
		Notify:       true,
		History:      false,
		HistoryPath:  filepath.Join(xdg.StateHome, appName, "history.db"),
	}
}

// Path is where the config file lives unless overridden on the command line.
func Path() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(appName, "config.toml"))
	if err != nil {
		return "", fmt.Errorf("get config file path: %w", err)
	}
	return path, nil
}

// Load reads the config at path on top of the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	_, err := toml.DecodeFile(path, cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Catalog {
	case CatalogAuto, CatalogHyprland, CatalogStatic:
	default:
		return fmt.Errorf("unknown catalog %q", c.Catalog)
	}

	if _, err := hotkey.Parse(c.Hotkey); err != nil {
		return fmt.Errorf("hotkey: %w", err)
	}

	return nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return file.Close()
}
