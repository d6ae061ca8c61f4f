// Package terminal delivers palettes to the live terminal: an iTerm2
// escape-sequence sink (tmux aware) and the animated transition engine that
// drives interpolated frames through it.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/jmylchreest/prism/internal/colour"
)

// Sink applies a palette to the live terminal. Delivery is fire and forget:
// the underlying transport offers no acknowledgement and may silently drop
// sequences, which the transition engine compensates for with a final
// corrective resend.
type Sink interface {
	// Apply transmits every colour of the palette.
	Apply(palette colour.Palette)
	// ApplyPreset tells the terminal to switch to a named preset it already
	// knows. Preferred over Apply when the name is available.
	ApplyPreset(name string)
}

// EscapeSink emits iTerm2 proprietary OSC 1337 SetColors sequences. When
// running under tmux the sequence is wrapped in a DCS passthrough so tmux
// forwards it to the outer terminal.
type EscapeSink struct {
	w    io.Writer
	tmux bool
}

// NewEscapeSink creates a sink writing to w. Pass InsideTmux() for tmux.
func NewEscapeSink(w io.Writer, tmux bool) *EscapeSink {
	return &EscapeSink{w: w, tmux: tmux}
}

// NewStdoutSink creates a sink for the controlling terminal, detecting tmux
// automatically.
func NewStdoutSink() *EscapeSink {
	return NewEscapeSink(os.Stdout, InsideTmux())
}

func (s *EscapeSink) send(key, value string) {
	msg := fmt.Sprintf("\x1b]1337;SetColors=%s=%s\x07", key, value)
	if s.tmux {
		msg = fmt.Sprintf("\x1bPtmux;\x1b%s\x1b\\", msg)
	}
	fmt.Fprint(s.w, msg)
}

// Apply sends one SetColors sequence per palette slot, in canonical slot
// order so repeated applies produce identical byte streams.
func (s *EscapeSink) Apply(palette colour.Palette) {
	for _, slot := range colour.Slots {
		c, ok := palette[slot]
		if !ok {
			continue
		}
		s.send(string(slot), strings.TrimPrefix(c.Hex(), "#"))
	}
}

// ApplyPreset switches the terminal to one of its own named presets.
func (s *EscapeSink) ApplyPreset(name string) {
	s.send("preset", name)
}

// InsideTmux reports whether the process appears to run inside tmux, either
// via the TMUX environment variable or a tmux ancestor process.
func InsideTmux() bool {
	if os.Getenv("TMUX") != "" {
		return true
	}
	pid := os.Getppid()
	for depth := 0; depth < 16 && pid > 1; depth++ {
		proc, err := ps.FindProcess(pid)
		if err != nil || proc == nil {
			return false
		}
		if strings.HasPrefix(proc.Executable(), "tmux") {
			return true
		}
		pid = proc.PPid()
	}
	return false
}
