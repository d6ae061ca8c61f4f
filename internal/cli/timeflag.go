package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// timeValue is a pflag.Value accepting several time layouts for the
// -t/--time flag. When unset it resolves to the current time.
type timeValue struct {
	t     time.Time
	isSet bool
}

var _ pflag.Value = (*timeValue)(nil)

// timeLayouts are tried in order. Bare clock times are placed on today's
// date in the local timezone.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"15:04",
}

func (v *timeValue) String() string {
	if !v.isSet {
		return ""
	}
	return v.t.Format(time.RFC3339)
}

func (v *timeValue) Set(value string) error {
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err != nil {
			continue
		}
		if layout == "15:04" {
			now := time.Now()
			t = time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, time.Local)
		}
		v.t = t
		v.isSet = true
		return nil
	}
	return fmt.Errorf("%q: cannot parse time", value)
}

func (v *timeValue) Type() string {
	return "time"
}

// Time returns the parsed time, or the current time when the flag was
// not given.
func (v *timeValue) Time() time.Time {
	if !v.isSet {
		return time.Now()
	}
	return v.t
}
