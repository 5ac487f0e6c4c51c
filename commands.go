package main

import (
	"codeberg.org/miketth/keymapshift/pkg/binder"
	"codeberg.org/miketth/keymapshift/pkg/history"
	"codeberg.org/miketth/keymapshift/pkg/history/memory"
	"codeberg.org/miketth/keymapshift/pkg/history/sqlite"
	"codeberg.org/miketth/keymapshift/pkg/hotkey"
	"codeberg.org/miketth/keymapshift/pkg/keymaps"
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"codeberg.org/miketth/keymapshift/pkg/platform"
	"codeberg.org/miketth/keymapshift/pkg/xkblayouts"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"text/tabwriter"
	"time"
)

var errInvalidCount = errors.New("number of shifts must be at least 1")

func (a *app) openHistory() (history.Store, func()) {
	if !a.cfg.History {
		return memory.NewStore(), func() {}
	}

	store, err := sqlite.NewStore(a.cfg.HistoryPath, a.log)
	if err != nil {
		a.log.Warnw("failed to open history, keeping it in memory", "path", a.cfg.HistoryPath, "error", err)
		return memory.NewStore(), func() {}
	}

	return store, func() {
		if err := store.Close(); err != nil {
			a.log.Warnw("failed to close history", "error", err)
		}
	}
}

func (a *app) newShifter(ctx context.Context) (*keymapshift.Shifter, func(), error) {
	cat, err := platform.Catalog(ctx, a.cfg, a.log)
	if err != nil {
		return nil, nil, fmt.Errorf("create layout catalog: %w", err)
	}

	store, closeStore := a.openHistory()
	opts := []keymapshift.Option{keymapshift.WithRecorder(history.NewRecorder(store))}

	if a.cfg.SwitchLayout {
		if activator, ok := cat.(keymapshift.LayoutActivator); ok {
			opts = append(opts, keymapshift.WithActivator(activator))
		}
	}

	sh := keymapshift.NewShifter(platform.Source(a.log), platform.Sink(a.log), cat, a.log, opts...)
	return sh, closeStore, nil
}

func (a *app) runOnce(ctx context.Context) error {
	sh, closeStore, err := a.newShifter(ctx)
	if err != nil {
		a.report(err)
		return err
	}
	defer closeStore()

	err = sh.RunOnce(ctx)
	if err != nil {
		a.report(err)
		return fmt.Errorf("shift selection: %w", err)
	}

	return nil
}

func (a *app) listen(ctx context.Context) error {
	spec, err := hotkey.Parse(a.cfg.Hotkey)
	if err != nil {
		return fmt.Errorf("parse hotkey: %w", err)
	}

	sh, closeStore, err := a.newShifter(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	a.log.Infow("started keymapshift", "hotkey", spec.String())

	errChan := make(chan error, 3)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		err := hotkey.Listen(ctx, spec, func(ctx context.Context) {
			if err := sh.RunOnce(ctx); err != nil {
				a.log.Warnw("failed to shift selection", "error", err)
				a.report(err)
			}
		})
		if err != nil {
			errChan <- fmt.Errorf("listen for hotkey: %w", err)
		}
	}()

	go func() {
		defer wg.Done()
		err := systemdNotifyLoop(ctx)
		if err != nil {
			errChan <- fmt.Errorf("systemd notify: %w", err)
		}
	}()

	err = <-errChan
	switch {
	case errors.Is(err, context.Canceled):
		a.log.Info("shutting down")
		wg.Wait()
		return nil
	case err != nil:
		return err
	}

	return nil
}

func (a *app) bindHotkey(ctx context.Context, args []string) error {
	display := a.cfg.Hotkey
	if len(args) > 0 {
		display = strings.Join(args, " ")
	}

	spec, err := hotkey.Parse(display)
	if err != nil {
		return fmt.Errorf("parse hotkey: %w", err)
	}

	a.cfg.Hotkey = spec.String()
	if err := a.cfg.Save(a.cfgPath); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	a.log.Debugw("saved hotkey", "hotkey", a.cfg.Hotkey, "path", a.cfgPath)

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("find executable: %w", err)
	}
	command := fmt.Sprintf("%q -config %q %s", exe, a.cfgPath, binder.RunSubcmd)

	desktop := binder.Detect()
	b, err := binder.New(desktop, command)
	if errors.Is(err, binder.ErrUnsupportedDesktop) {
		fmt.Printf("Could not bind automatically. Bind %s to this command in your desktop settings:\n  %s\n", spec, command)
		fmt.Println("or keep `keymapshift listen` running.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("create %s binder: %w", desktop, err)
	}

	if err := b.Apply(ctx, spec); err != nil {
		return fmt.Errorf("bind hotkey on %s: %w", desktop, err)
	}

	fmt.Printf("Bound %s on %s.\n", spec, desktop)
	return nil
}

func (a *app) listLayouts(ctx context.Context) error {
	cat, err := platform.Catalog(ctx, a.cfg, a.log)
	if err != nil {
		return fmt.Errorf("create layout catalog: %w", err)
	}

	snapshot, err := cat.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("get layout snapshot: %w", err)
	}

	registry, err := xkblayouts.ParseLayouts(a.cfg.EvdevXMLPath)
	if err != nil {
		a.log.Debugw("no layout descriptions", "error", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, lm := range snapshot {
		name, variant := keymaps.ParseID(lm.Layout.Label)
		description := registry.GetLayoutPrettyName(name, variant)
		if description == "" {
			description = "-"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d keys\n", i, lm.Layout.Label, lm.Layout.Direction, description, len(lm.Forward))
	}

	return w.Flush()
}

func (a *app) showHistory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	n := fs.Int("n", 10, "number of shifts to show")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse history flags: %w", err)
	}
	if *n < 1 {
		return fmt.Errorf("%w: %d", errInvalidCount, *n)
	}

	if !a.cfg.History {
		fmt.Println("History is disabled in the config.")
		return nil
	}

	store, err := sqlite.NewStore(a.cfg.HistoryPath, a.log)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	entries, err := store.Recent(ctx, *n)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s -> %s\t%q -> %q\n",
			e.CreatedAt.Local().Format(time.DateTime), e.FromLayout, e.ToLayout, e.Input, e.Output)
	}

	return w.Flush()
}

func (a *app) shiftArgs(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		return keymapshift.ErrNoSelection
	}

	cat, err := platform.Catalog(ctx, a.cfg, a.log)
	if err != nil {
		return fmt.Errorf("create layout catalog: %w", err)
	}

	snapshot, err := cat.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("get layout snapshot: %w", err)
	}

	res, err := keymapshift.Shift(text, snapshot)
	if err != nil {
		return fmt.Errorf("shift text: %w", err)
	}
	a.log.Debugw("shifted text", "from", res.From.Label, "to", res.To.Label)

	fmt.Println(res.Text)
	return nil
}
