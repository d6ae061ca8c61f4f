package colour

import (
	"fmt"

	"github.com/jmylchreest/prism/internal/calc"
)

// Slot identifies a colour's role within a terminal palette. The set of
// slots is fixed; the names double as the keys used in preset files and in
// the escape sequences sent to the terminal.
type Slot string

const (
	SlotForeground   Slot = "fg"
	SlotBackground   Slot = "bg"
	SlotBold         Slot = "bold"
	SlotLink         Slot = "link"
	SlotSelectionBg  Slot = "selbg"
	SlotSelectionFg  Slot = "selfg"
	SlotCursorBg     Slot = "curbg"
	SlotCursorFg     Slot = "curfg"
	SlotUnderline    Slot = "underline"
)

// Ansi returns the slot for ANSI colour n (0-15).
func Ansi(n int) Slot {
	return Slot(fmt.Sprintf("ansi%d", n))
}

// Slots lists every valid slot in canonical order.
var Slots = buildSlots()

func buildSlots() []Slot {
	slots := []Slot{
		SlotForeground, SlotBackground, SlotBold, SlotLink,
		SlotSelectionBg, SlotSelectionFg, SlotCursorBg, SlotCursorFg,
		SlotUnderline,
	}
	for i := 0; i < 16; i++ {
		slots = append(slots, Ansi(i))
	}
	return slots
}

var validSlots = func() map[Slot]bool {
	m := make(map[Slot]bool, len(Slots))
	for _, s := range Slots {
		m[s] = true
	}
	return m
}()

// ValidSlot reports whether s names a known palette slot.
func ValidSlot(s Slot) bool {
	return validSlots[s]
}

// Palette is a collection of colours keyed by slot. A usable palette always
// contains the foreground and background slots.
type Palette map[Slot]Colour

// Validate checks that the palette has the required slots and no unknown
// ones.
func (p Palette) Validate() error {
	if _, ok := p[SlotForeground]; !ok {
		return fmt.Errorf("palette missing %q slot", SlotForeground)
	}
	if _, ok := p[SlotBackground]; !ok {
		return fmt.Errorf("palette missing %q slot", SlotBackground)
	}
	for slot := range p {
		if !ValidSlot(slot) {
			return fmt.Errorf("palette has unknown slot %q", slot)
		}
	}
	return nil
}

// Clone returns a copy of the palette.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for slot, c := range p {
		out[slot] = c
	}
	return out
}

// Equal reports whether two palettes hold the same colours.
func (p Palette) Equal(other Palette) bool {
	if len(p) != len(other) {
		return false
	}
	for slot, c := range p {
		if oc, ok := other[slot]; !ok || oc != c {
			return false
		}
	}
	return true
}

// RelativeLuminance returns the relative luminance of the background colour.
func (p Palette) RelativeLuminance() float64 {
	return p[SlotBackground].RelativeLuminance()
}

// ContrastRatio returns the foreground/background contrast as a number in
// [0, 1], derived from the WCAG contrast ratio.
func (p Palette) ContrastRatio() float64 {
	l1 := p[SlotForeground].RelativeLuminance()
	l2 := p[SlotBackground].RelativeLuminance()
	lighter, darker := l1, l2
	if darker > lighter {
		lighter, darker = darker, lighter
	}
	ratio := ((lighter+0.05)/(darker+0.05) - 1) / 20
	return calc.Clamp(ratio, 0, 1)
}

// Interpolate blends two palettes at position t. Slots present in both
// palettes are interpolated per channel; slots present in only one pass
// through unchanged rather than fading to an undefined colour.
func (p Palette) Interpolate(other Palette, t float64) Palette {
	out := make(Palette, len(p))
	for slot, c := range p {
		if oc, ok := other[slot]; ok {
			out[slot] = c.Interpolate(oc, t)
		} else {
			out[slot] = c
		}
	}
	for slot, oc := range other {
		if _, ok := p[slot]; !ok {
			out[slot] = oc
		}
	}
	return out
}

// Frames returns the interpolation sequence from palette p to palette other
// with n steps, as a pure function of the frame index. Index 0 is p exactly
// and index n is other exactly. The same function can be called repeatedly
// or out of order; it retains no state.
func (p Palette) Frames(other Palette, n int) func(i int) Palette {
	return func(i int) Palette {
		return p.Interpolate(other, float64(i)/float64(n))
	}
}
