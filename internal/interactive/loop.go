package interactive

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jmylchreest/prism/internal/files"
	"github.com/jmylchreest/prism/internal/terminal"
)

// menu is printed once when interactive mode starts.
const menu = `j  next               J  next favorite
k  previous           K  previous favorite
p  pick using fzf     f  toggle favorite
l  switch light/dark  s  shuffle
q  quit               i  show info
`

// KeyCommand maps a typed key to its logical command. Unknown keys map to
// CmdNone.
func KeyCommand(key byte) Command {
	switch key {
	case 'j', ' ', '\r', '\n':
		return CmdNext
	case 'k':
		return CmdPrevious
	case 'J':
		return CmdNextFavorite
	case 'K':
		return CmdPreviousFavorite
	case 's':
		return CmdShuffle
	case 'p':
		return CmdPick
	case 'f':
		return CmdToggleFavorite
	case 'l':
		return CmdToggleLightDark
	case 'i':
		return CmdInfo
	case 'q', 'Q', 3: // 3 is ctrl-c
		return CmdQuit
	default:
		return CmdNone
	}
}

// Loop wires the controller to the terminal: raw single-key input in, one
// palette application out, until quit.
type Loop struct {
	ctrl    *Controller
	sink    terminal.Sink
	current *files.Current
	out     io.Writer
}

// NewLoop creates an interaction loop writing status output to out.
func NewLoop(ctrl *Controller, sink terminal.Sink, current *files.Current, out io.Writer) *Loop {
	return &Loop{ctrl: ctrl, sink: sink, current: current, out: out}
}

// Run processes one key per iteration until the quit command. It requires
// stdin to be a tty.
func (l *Loop) Run() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("interactive mode requires a tty")
	}

	fmt.Fprint(l.out, menu+"\n")
	l.printStatus("")
	for {
		key, err := readKey(fd)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		cmd := KeyCommand(key)
		if cmd == CmdNone {
			continue
		}
		result, err := l.ctrl.Dispatch(cmd)
		if err != nil {
			return err
		}
		if result.Effect == EffectQuit {
			fmt.Fprintln(l.out)
			return nil
		}
		if result.Effect == EffectApply {
			l.sink.Apply(result.Preset.Palette)
			if err := l.current.Set(result.Preset.Name); err != nil {
				return err
			}
		}
		l.printStatus(result.Message)
	}
}

// printStatus redraws the single status line in place.
func (l *Loop) printStatus(info string) {
	extra := ""
	if info != "" {
		extra = fmt.Sprintf(" (%s)", info)
	}
	star := ""
	if l.ctrl.favorites.Contains(l.ctrl.Current().Name) {
		star = "*"
	}
	fmt.Fprintf(l.out, "\r\x1b[2K[%d%s] %s%s", l.ctrl.Cursor(), star, l.ctrl.Current().Name, extra)
}

// readKey reads a single key without waiting for enter, restoring the
// terminal mode immediately afterwards so status output renders normally.
func readKey(fd int) (byte, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, err
	}
	defer term.Restore(fd, state) //nolint:errcheck // best effort restore

	var buf [1]byte
	if _, err := os.Stdin.Read(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}
