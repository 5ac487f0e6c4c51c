package selection

import (
	"context"
	"errors"
	"fmt"
	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"os"
	"strings"
)

var ErrNoTypingTool = errors.New("no tool to type text with")

// TypingSink replaces the selection by typing the text into the focused window.
type TypingSink struct {
	commands []Command
	run      Runner
	log      *zap.SugaredLogger
}

func NewTypingSink(commands []Command, run Runner, log *zap.SugaredLogger) *TypingSink {
	if run == nil {
		run = ExecRunner
	}
	return &TypingSink{
		commands: commands,
		run:      run,
		log:      log,
	}
}

// TypingCommands picks wtype on Wayland and xdotool on X11.
// The text is appended as the final argument.
func TypingCommands() []Command {
	var commands []Command
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		commands = append(commands, Command{Name: "wtype", Args: []string{"--"}})
	}
	if os.Getenv("DISPLAY") != "" {
		commands = append(commands, Command{Name: "xdotool", Args: []string{"type", "--clearmodifiers", "--"}})
	}
	return commands
}

func (s *TypingSink) ReplaceSelectedText(ctx context.Context, text string) error {
	if len(s.commands) == 0 {
		return ErrNoTypingTool
	}

	var failures []string
	for _, c := range s.commands {
		args := append(append([]string(nil), c.Args...), text)
		if _, err := s.run(ctx, c.Name, args...); err != nil {
			s.log.Debugw("typing command failed", "command", c.Name, "error", err)
			failures = append(failures, err.Error())
			continue
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrNoTypingTool, strings.Join(failures, "; "))
}

// ClipboardSink puts the text on the clipboard for the user to paste over the selection.
type ClipboardSink struct{}

func (ClipboardSink) ReplaceSelectedText(_ context.Context, text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}
