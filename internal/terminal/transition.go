package terminal

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/prism/internal/colour"
)

// Animation configures a palette transition.
type Animation struct {
	// Frames is the number of interpolation steps; the transition sends
	// Frames+1 palettes including both endpoints. Must be at least 1.
	Frames int
	// Sleep is the pause between consecutive frames.
	Sleep time.Duration
	// ResetDelay is the pause before the final corrective resend of the
	// target palette.
	ResetDelay time.Duration
}

// Transition fades the terminal from one palette to another by sending a
// timed sequence of interpolated frames to a sink.
type Transition struct {
	logger hclog.Logger
}

// NewTransition creates a transition engine.
func NewTransition(logger hclog.Logger) *Transition {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Transition{logger: logger}
}

// Run sends frames 0..cfg.Frames to the sink, sleeping cfg.Sleep between
// sends, then re-sends the exact target palette once after cfg.ResetDelay.
// The resend is unconditional: the transport may drop or reorder individual
// escape sequences and the single delayed correction repairs that without
// retries or acknowledgements.
//
// Cancelling the context abandons the sequence at whatever frame it
// reached; no partial undo is attempted and the sink keeps whatever it last
// received.
func (t *Transition) Run(ctx context.Context, from, to colour.Palette, cfg Animation, sink Sink) error {
	frames := cfg.Frames
	if frames < 1 {
		frames = 1
	}
	frame := from.Frames(to, frames)

	t.logger.Debug("starting transition", "frames", frames, "sleep", cfg.Sleep)
	for i := 0; i <= frames; i++ {
		if err := ctx.Err(); err != nil {
			t.logger.Debug("transition abandoned", "frame", i)
			return err
		}
		sink.Apply(frame(i))
		if i < frames {
			if err := sleep(ctx, cfg.Sleep); err != nil {
				t.logger.Debug("transition abandoned", "frame", i+1)
				return err
			}
		}
	}

	if err := sleep(ctx, cfg.ResetDelay); err != nil {
		return err
	}
	sink.Apply(to)
	return nil
}

// sleep blocks for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
