package probe

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Display supplies the backlight brightness of a numbered display as a
// value in [0, 1]. The boolean result is false when no reading is available
// for that display.
type Display interface {
	Brightness(display int) (float64, bool)
}

var brightnessLine = regexp.MustCompile(`^display (\d+): brightness ([0-9.]+)$`)

// BrightnessTool reads display brightness by running the brightness CLI
// ("brightness -l") and parsing its per-display output lines.
type BrightnessTool struct {
	logger  hclog.Logger
	command []string
	timeout time.Duration
}

// NewBrightnessTool creates a display probe. An empty command defaults to
// "brightness -l".
func NewBrightnessTool(logger hclog.Logger, command []string) *BrightnessTool {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if len(command) == 0 {
		command = []string{"brightness", "-l"}
	}
	return &BrightnessTool{logger: logger, command: command, timeout: 5 * time.Second}
}

// Brightness returns the brightness of the given display number, 0 being
// the primary display.
func (b *BrightnessTool) Brightness(display int) (float64, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, b.command[0], b.command[1:]...).Output()
	if err != nil {
		b.logger.Warn("display signal unavailable", "error",
			fmt.Errorf("failed to run %s: %w", b.command[0], err))
		return 0, false
	}
	value, ok := parseBrightness(string(out), display)
	if !ok {
		b.logger.Warn("display signal unavailable",
			"display", display, "reason", "no brightness line for display")
	}
	return value, ok
}

// parseBrightness scans tool output for the requested display's brightness.
func parseBrightness(output string, display int) (float64, bool) {
	for _, line := range strings.Split(output, "\n") {
		match := brightnessLine.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		num, err := strconv.Atoi(match[1])
		if err != nil || num != display {
			continue
		}
		value, err := strconv.ParseFloat(match[2], 64)
		if err != nil {
			continue
		}
		return value, true
	}
	return 0, false
}
