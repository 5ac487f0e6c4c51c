package binder

import (
	"codeberg.org/miketth/keymapshift/pkg/hotkey"
	"context"
	"fmt"
	"github.com/adrg/xdg"
	"gopkg.in/ini.v1"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	kdeComponent    = appID + ".desktop"
	kdeFriendlyName = "_k_friendly_name"
	kdeTrigger      = "Trigger"
	kdeDbusPath     = "/component/" + appID + "_desktop"

	desktopEntryTemplate = "[Desktop Entry]\nType=Application\nName={name}\nExec={exec}\nTerminal=false\nCategories=Utility;\n"
)

type KDEBinder struct {
	command       string
	desktopFile   string
	shortcutsFile string
	run           Runner
}

func NewKDE(command string, run Runner) (*KDEBinder, error) {
	if run == nil {
		run = execRunner
	}

	desktopFile, err := xdg.DataFile(filepath.Join("applications", kdeComponent))
	if err != nil {
		return nil, fmt.Errorf("get desktop file path: %w", err)
	}

	return &KDEBinder{
		command:       command,
		desktopFile:   desktopFile,
		shortcutsFile: filepath.Join(xdg.ConfigHome, "kglobalshortcutsrc"),
		run:           run,
	}, nil
}

func (k *KDEBinder) Apply(ctx context.Context, spec hotkey.Spec) error {
	if err := os.MkdirAll(filepath.Dir(k.desktopFile), 0755); err != nil {
		return fmt.Errorf("create applications dir: %w", err)
	}
	if err := os.WriteFile(k.desktopFile, []byte(desktopEntry(k.command)), 0644); err != nil {
		return fmt.Errorf("write desktop file: %w", err)
	}

	shortcuts, err := ini.LooseLoad(k.shortcutsFile)
	if err != nil {
		return fmt.Errorf("load kglobalshortcutsrc: %w", err)
	}

	section := shortcuts.Section(kdeComponent)
	section.Key(kdeFriendlyName).SetValue(appName)
	section.Key(kdeTrigger).SetValue(fmt.Sprintf("%s,none,Trigger", spec))

	if err := saveCompact(shortcuts, k.shortcutsFile); err != nil {
		return fmt.Errorf("save kglobalshortcutsrc: %w", err)
	}

	// best effort
	_, _ = k.run(ctx, "qdbus", "org.kde.kglobalaccel", kdeDbusPath, "reconfigure")

	return nil
}

var iniFormatMu sync.Mutex

// saveCompact writes key=value lines the way KConfig does. ini only exposes
// that switch as package state, so it is flipped for the write and restored.
func saveCompact(file *ini.File, path string) error {
	iniFormatMu.Lock()
	defer iniFormatMu.Unlock()

	pretty := ini.PrettyFormat
	ini.PrettyFormat = false
	defer func() { ini.PrettyFormat = pretty }()

	return file.SaveTo(path)
}

func desktopEntry(command string) string {
	return strings.NewReplacer("{name}", appName, "{exec}", command).Replace(desktopEntryTemplate)
}
