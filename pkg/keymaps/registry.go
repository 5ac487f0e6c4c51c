package keymaps

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
)

//go:embed builtin/*.toml
var builtinFiles embed.FS

// Compiler builds the keymap of a layout from the system keyboard description.
type Compiler func(name, variant string) (Keymap, error)

type Registry struct {
	keymaps  map[string]Keymap
	builtin  map[string]bool
	compiler Compiler
}

func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[string]Keymap),
		builtin: make(map[string]bool),
	}
}

// Builtin returns a registry holding the keymaps shipped with the binary.
func Builtin() (*Registry, error) {
	r := NewRegistry()

	entries, err := fs.ReadDir(builtinFiles, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin keymaps: %w", err)
	}

	for _, entry := range entries {
		name := path.Join("builtin", entry.Name())
		data, err := builtinFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		km, err := Decode(path.Ext(name), data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		r.Add(km)
		r.builtin[km.ID()] = true
	}

	return r, nil
}

// Add registers km, replacing any keymap with the same ID.
func (r *Registry) Add(km Keymap) {
	r.keymaps[km.ID()] = km
	delete(r.builtin, km.ID())
}

// UseCompiler makes Lookup prefer compiled system keymaps over the built-in ones.
// Keymaps added from files still take precedence.
func (r *Registry) UseCompiler(c Compiler) {
	r.compiler = c
}

// LoadDir adds every keymap file in dir. A missing dir is not an error.
func (r *Registry) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read keymaps dir: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !IsKeymapFile(entry.Name()) {
			continue
		}

		km, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return loaded, err
		}
		r.Add(km)
		loaded++
	}

	return loaded, nil
}

// Lookup finds the keymap for a layout and variant: a keymap file, then the
// compiled system keymap, then a built-in one, and finally the layout's base
// keymap when the variant is unknown.
func (r *Registry) Lookup(name, variant string) (Keymap, bool) {
	id := FormatID(name, variant)
	if km, ok := r.keymaps[id]; ok && !r.builtin[id] {
		return km, true
	}
	if r.compiler != nil {
		if km, err := r.compiler(name, variant); err == nil {
			return km, true
		}
	}
	if km, ok := r.keymaps[id]; ok {
		return km, true
	}
	km, ok := r.keymaps[name]
	return km, ok
}

func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.keymaps))
	for id := range r.keymaps {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Load lets a fixed registry serve as a Loader.
func (r *Registry) Load() (*Registry, error) {
	return r, nil
}

// DirLoader builds a fresh registry from the built-in keymaps and the files in
// Dir. With System set, layouts are compiled from the system xkb description
// where that is available.
type DirLoader struct {
	Dir    string
	System bool
}

func (l DirLoader) Load() (*Registry, error) {
	r, err := Builtin()
	if err != nil {
		return nil, err
	}
	if l.System && SystemCompiler != nil {
		r.UseCompiler(SystemCompiler)
	}

	if l.Dir == "" {
		return r, nil
	}
	if _, err := r.LoadDir(l.Dir); err != nil {
		return nil, fmt.Errorf("load user keymaps: %w", err)
	}

	return r, nil
}
