package probe

import (
	"time"

	"github.com/jmylchreest/prism/internal/preset"
)

// Gather fetches both environmental signals and combines them for the
// scorer. The two reads run concurrently with independent timeouts; a read
// that misses its deadline is reported unavailable. Gather always returns,
// never errors.
func Gather(sun Sun, display Display, displayNum int, at time.Time, timeout time.Duration) preset.Signals {
	type sunResult struct {
		value float64
		ok    bool
	}
	type displayResult struct {
		value float64
		ok    bool
	}

	sunCh := make(chan sunResult, 1)
	displayCh := make(chan displayResult, 1)

	go func() {
		value, ok := sun.Elevation(at)
		sunCh <- sunResult{value, ok}
	}()
	go func() {
		value, ok := display.Brightness(displayNum)
		displayCh <- displayResult{value, ok}
	}()

	var signals preset.Signals
	sunDeadline := time.After(timeout)
	displayDeadline := time.After(timeout)

	select {
	case r := <-sunCh:
		signals.Sun, signals.SunOK = r.value, r.ok
	case <-sunDeadline:
	}
	select {
	case r := <-displayCh:
		signals.Display, signals.DisplayOK = r.value, r.ok
	case <-displayDeadline:
	}
	return signals
}
