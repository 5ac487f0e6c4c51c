package main

import (
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"codeberg.org/miketth/keymapshift/pkg/notify"
	"context"
	"errors"
	"fmt"
	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/coreos/go-systemd/v22/journal"
	"os"
	"time"
)

const notificationSummary = "Keyboard Map Shift"

func userMessage(err error) string {
	var injErr *keymapshift.InjectionError
	switch {
	case errors.Is(err, keymapshift.ErrNoSelection):
		return "Nothing is selected."
	case errors.Is(err, keymapshift.ErrLayoutUndetermined):
		return "Could not tell which layout the selected text was typed in."
	case errors.Is(err, keymapshift.ErrNoNextLayout):
		return "There is no layout to shift the text to."
	case errors.As(err, &injErr):
		return fmt.Sprintf("Could not replace the selected text: %s", injErr.Reason)
	}
	return fmt.Sprintf("Shifting failed: %v", err)
}

// interactive reports whether stderr is a terminal the user is looking at.
func interactive() bool {
	fi, err := os.Stderr.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// report surfaces a failure outside the terminal: hotkey launches have nobody
// reading stderr.
func (a *app) report(err error) {
	if interactive() {
		return
	}

	msg := userMessage(err)

	if journal.Enabled() {
		vars := map[string]string{"SYSLOG_IDENTIFIER": "keymapshift"}
		if jerr := journal.Send(msg, journal.PriErr, vars); jerr != nil {
			a.log.Debugw("failed to write to journal", "error", jerr)
		}
	}

	if !a.cfg.Notify {
		return
	}

	n, nerr := notify.New()
	if nerr != nil {
		a.log.Debugw("notifications unavailable", "error", nerr)
		return
	}
	defer n.Close()

	if nerr := n.Send(notificationSummary, msg, notify.Normal); nerr != nil {
		a.log.Debugw("failed to send notification", "error", nerr)
	}
}

func systemdNotifyLoop(ctx context.Context) error {
	// tell systemd that we're ready
	supported, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		return fmt.Errorf("notify systemd: %w", err)
	}
	if !supported {
		return nil
	}

	_, _ = daemon.SdNotify(false, "STATUS=Waiting for the hotkey")

	t, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		return fmt.Errorf("check watchdog: %w", err)
	}
	// if watchdog is not enabled, we don't need to notify it
	if t == 0 {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-time.After(t / 2):
			_, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog)
			if err != nil {
				return fmt.Errorf("notify watchdog: %w", err)
			}
		}
	}
}
