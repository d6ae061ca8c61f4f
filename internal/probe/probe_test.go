package probe

import (
	"testing"
	"time"
)

func TestNormalizedElevation(t *testing.T) {
	// Greenwich at an equinox: solar noon near 12:00 UTC, solar midnight
	// near 00:00 UTC.
	date := func(hour int) time.Time {
		return time.Date(2023, time.March, 21, hour, 0, 0, 0, time.UTC)
	}

	noon, ok := SolarPosition{Latitude: 51.48, Longitude: 0}.Elevation(date(12))
	if !ok {
		t.Fatal("SolarPosition reported unavailable")
	}
	if noon < 0.9 {
		t.Errorf("normalized elevation at solar noon = %v, want near 1", noon)
	}

	midnight, _ := SolarPosition{Latitude: 51.48, Longitude: 0}.Elevation(date(0))
	if midnight > 0.1 {
		t.Errorf("normalized elevation at solar midnight = %v, want near 0", midnight)
	}

	morning, _ := SolarPosition{Latitude: 51.48, Longitude: 0}.Elevation(date(6))
	if morning < 0.3 || morning > 0.7 {
		t.Errorf("normalized elevation near sunrise = %v, want near 0.5", morning)
	}

	if noon <= morning || morning <= midnight {
		t.Errorf("elevation not increasing through the morning: %v, %v, %v",
			midnight, morning, noon)
	}
}

func TestNormalizedElevationRange(t *testing.T) {
	locations := []struct{ lat, lon float64 }{
		{0, 0}, {51.48, 0}, {-33.9, 18.4}, {64.1, -21.9}, {35.7, 139.7},
	}
	for _, loc := range locations {
		for hour := 0; hour < 24; hour++ {
			at := time.Date(2023, time.June, 10, hour, 30, 0, 0, time.UTC)
			value, _ := SolarPosition{Latitude: loc.lat, Longitude: loc.lon}.Elevation(at)
			if value < 0 || value > 1 {
				t.Errorf("elevation at lat=%v lon=%v hour=%d = %v, want within [0, 1]",
					loc.lat, loc.lon, hour, value)
			}
		}
	}
}

func TestParseBrightness(t *testing.T) {
	output := "display 0: brightness 0.812500\ndisplay 1: brightness 0.500000\ndisplay 2: no brightness information\n"

	tests := []struct {
		name    string
		display int
		want    float64
		wantOK  bool
	}{
		{name: "primary display", display: 0, want: 0.8125, wantOK: true},
		{name: "secondary display", display: 1, want: 0.5, wantOK: true},
		{name: "display without reading", display: 2, wantOK: false},
		{name: "unknown display", display: 9, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseBrightness(output, tt.display)
			if ok != tt.wantOK {
				t.Fatalf("parseBrightness ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("parseBrightness = %v, want %v", got, tt.want)
			}
		})
	}
}

type fakeSun struct {
	value float64
	ok    bool
	delay time.Duration
}

func (f fakeSun) Elevation(time.Time) (float64, bool) {
	time.Sleep(f.delay)
	return f.value, f.ok
}

type fakeDisplay struct {
	value float64
	ok    bool
	delay time.Duration
}

func (f fakeDisplay) Brightness(int) (float64, bool) {
	time.Sleep(f.delay)
	return f.value, f.ok
}

func TestGather(t *testing.T) {
	t.Run("both available", func(t *testing.T) {
		signals := Gather(fakeSun{value: 0.8, ok: true}, fakeDisplay{value: 0.4, ok: true},
			0, time.Now(), time.Second)
		if !signals.SunOK || signals.Sun != 0.8 {
			t.Errorf("sun signal = %v/%v, want 0.8/true", signals.Sun, signals.SunOK)
		}
		if !signals.DisplayOK || signals.Display != 0.4 {
			t.Errorf("display signal = %v/%v, want 0.4/true", signals.Display, signals.DisplayOK)
		}
	})

	t.Run("slow probe times out independently", func(t *testing.T) {
		signals := Gather(fakeSun{value: 0.8, ok: true},
			fakeDisplay{value: 0.4, ok: true, delay: 200 * time.Millisecond},
			0, time.Now(), 20*time.Millisecond)
		if !signals.SunOK {
			t.Error("fast sun probe should still report")
		}
		if signals.DisplayOK {
			t.Error("slow display probe should have timed out")
		}
	})

	t.Run("unavailable probe reports not ok", func(t *testing.T) {
		signals := Gather(fakeSun{ok: false}, fakeDisplay{ok: false}, 0, time.Now(), time.Second)
		if signals.SunOK || signals.DisplayOK {
			t.Errorf("signals = %+v, want both unavailable", signals)
		}
	})
}
