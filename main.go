package main

import (
	"codeberg.org/miketth/keymapshift/pkg/config"
	"codeberg.org/miketth/keymapshift/pkg/hotkey"
	"context"
	"flag"
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	hotkey.RunOnMainThread(func() {
		err := run()
		if err != nil {
			log.Fatalf("error: %+v", err)
		}
	})
}

type app struct {
	cfg     *config.Config
	cfgPath string
	log     *zap.SugaredLogger
}

func run() error {
	configPath := flag.String("config", "", "path to config.toml (default: $XDG_CONFIG_HOME/keymapshift/config.toml)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	a := &app{log: log, cfgPath: *configPath}
	if a.cfgPath == "" {
		a.cfgPath, err = config.Path()
		if err != nil {
			return err
		}
	}

	a.cfg, err = config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log.Debugw("loaded config", "path", a.cfgPath, "catalog", a.cfg.Catalog)

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, args := "run", flag.Args()
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "run":
		return a.runOnce(ctx)
	case "listen":
		return a.listen(ctx)
	case "bind":
		return a.bindHotkey(ctx, args)
	case "layouts":
		return a.listLayouts(ctx)
	case "history":
		return a.showHistory(ctx, args)
	case "shift":
		return a.shiftArgs(ctx, args)
	}

	usage()
	return fmt.Errorf("unknown command %q", cmd)
}

func usage() {
	out := flag.CommandLine.Output()
	_, _ = fmt.Fprintf(out, "Usage: %s [flags] [command]\n\n", os.Args[0])
	_, _ = fmt.Fprintln(out, "Commands:")
	_, _ = fmt.Fprintln(out, "  run            shift the selected text to the next layout (default)")
	_, _ = fmt.Fprintln(out, "  listen         stay running and shift on every hotkey press")
	_, _ = fmt.Fprintln(out, "  bind [hotkey]  save the hotkey and bind it in the desktop environment")
	_, _ = fmt.Fprintln(out, "  layouts        list the layouts text is shifted between")
	_, _ = fmt.Fprintln(out, "  history [-n N] show the most recent shifts")
	_, _ = fmt.Fprintln(out, "  shift <text>   print text shifted to the next layout")
	_, _ = fmt.Fprintln(out, "\nFlags:")
	flag.PrintDefaults()
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{"stdout"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if !debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
