package selection

import (
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"context"
	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"os"
	"strings"
)

// CommandSource returns the output of the first command in its chain that
// succeeds with non-empty output.
type CommandSource struct {
	commands []Command
	run      Runner
	log      *zap.SugaredLogger
}

func NewCommandSource(commands []Command, run Runner, log *zap.SugaredLogger) *CommandSource {
	if run == nil {
		run = ExecRunner
	}
	return &CommandSource{
		commands: commands,
		run:      run,
		log:      log,
	}
}

func (s *CommandSource) SelectedText(ctx context.Context) (string, bool, error) {
	for _, c := range s.commands {
		out, err := s.run(ctx, c.Name, c.Args...)
		if err != nil {
			s.log.Debugw("selection command failed", "command", c.String(), "error", err)
			continue
		}

		text := string(out)
		if c.CRLF {
			text = strings.ReplaceAll(text, "\r\n", "\n")
		}
		if text != "" {
			s.log.Debugw("got selection", "command", c.String())
			return text, true, nil
		}
	}

	return "", false, nil
}

// SelectionCommands is the chain used on Linux: the Windows clipboard first
// when running under WSL, then Wayland and X11 primary selection and clipboard.
func SelectionCommands(wsl bool) []Command {
	var commands []Command
	if wsl {
		commands = append(commands, Command{
			Name: "powershell.exe",
			Args: []string{"-NoProfile", "-Command", "Get-Clipboard"},
			CRLF: true,
		})
	}

	return append(commands,
		Command{Name: "wl-paste", Args: []string{"--no-newline", "--primary"}},
		Command{Name: "wl-paste", Args: []string{"--no-newline"}},
		Command{Name: "xclip", Args: []string{"-o", "-selection", "primary"}},
		Command{Name: "xclip", Args: []string{"-o"}},
		Command{Name: "xsel", Args: []string{"-o"}},
		Command{Name: "xsel", Args: []string{"-o", "-b"}},
	)
}

func IsWSL() bool {
	if os.Getenv("WSL_INTEROP") != "" || os.Getenv("WSL_DISTRO_NAME") != "" {
		return true
	}
	release, err := os.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(release)), "microsoft")
}

type ClipboardSource struct{}

func (ClipboardSource) SelectedText(context.Context) (string, bool, error) {
	if clipboard.Unsupported {
		return "", false, nil
	}

	text, err := clipboard.ReadAll()
	if err != nil {
		return "", false, err
	}
	return text, text != "", nil
}

// ChainSource asks each source in turn until one has a selection.
type ChainSource []keymapshift.TextSource

func (c ChainSource) SelectedText(ctx context.Context) (string, bool, error) {
	for _, src := range c {
		text, ok, err := src.SelectedText(ctx)
		if err != nil {
			return "", false, err
		}
		if ok && text != "" {
			return text, true, nil
		}
	}
	return "", false, nil
}
