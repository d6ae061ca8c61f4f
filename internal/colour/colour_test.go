package colour

import (
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Colour
		wantErr bool
	}{
		{name: "with hash", input: "#1a2b3c", want: Colour{R: 0x1a, G: 0x2b, B: 0x3c}},
		{name: "without hash", input: "ff0080", want: Colour{R: 0xff, G: 0x00, B: 0x80}},
		{name: "uppercase", input: "#FFAA00", want: Colour{R: 0xff, G: 0xaa, B: 0x00}},
		{name: "surrounding space", input: "  #000000 ", want: Colour{}},
		{name: "too short", input: "#fff", wantErr: true},
		{name: "not hex", input: "#zzzzzz", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []Colour{{0, 0, 0}, {255, 255, 255}, {0x1a, 0x2b, 0x3c}} {
		parsed, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", c.Hex(), err)
		}
		if parsed != c {
			t.Errorf("round trip of %v via %q = %v", c, c.Hex(), parsed)
		}
	}
}

func TestRelativeLuminance(t *testing.T) {
	if got := (Colour{0, 0, 0}).RelativeLuminance(); got != 0 {
		t.Errorf("luminance of black = %v, want 0", got)
	}
	white := (Colour{255, 255, 255}).RelativeLuminance()
	if white < 0.999 || white > 1.001 {
		t.Errorf("luminance of white = %v, want 1", white)
	}
	// Green carries most of the luminance weight.
	green := (Colour{0, 255, 0}).RelativeLuminance()
	red := (Colour{255, 0, 0}).RelativeLuminance()
	if green <= red {
		t.Errorf("luminance of green (%v) should exceed red (%v)", green, red)
	}
}

func TestColourInterpolateEndpoints(t *testing.T) {
	a := Colour{R: 10, G: 200, B: 33}
	b := Colour{R: 240, G: 5, B: 177}
	if got := a.Interpolate(b, 0); got != a {
		t.Errorf("Interpolate at t=0 = %v, want %v", got, a)
	}
	if got := a.Interpolate(b, 1); got != b {
		t.Errorf("Interpolate at t=1 = %v, want %v", got, b)
	}
}

func TestColourInterpolateMonotonic(t *testing.T) {
	a := Colour{R: 0, G: 255, B: 30}
	b := Colour{R: 255, G: 0, B: 200}
	const steps = 20
	prev := a
	for i := 1; i <= steps; i++ {
		cur := a.Interpolate(b, float64(i)/steps)
		if cur.R < prev.R {
			t.Errorf("step %d: red decreased from %d to %d", i, prev.R, cur.R)
		}
		if cur.G > prev.G {
			t.Errorf("step %d: green increased from %d to %d", i, prev.G, cur.G)
		}
		if cur.B < prev.B {
			t.Errorf("step %d: blue decreased from %d to %d", i, prev.B, cur.B)
		}
		prev = cur
	}
}
