package preset

import (
	"errors"
	"math/rand"
	"time"

	"github.com/jmylchreest/prism/internal/calc"
)

// Weights configures smart selection: the weight of each score term plus the
// shaping parameters applied to the corresponding signal before weighting.
// Weights are immutable per invocation.
type Weights struct {
	Sun     float64
	Display float64
	Random  float64

	SunBimodal bool
	SunOffset  float64
	SunMin     float64
	SunMax     float64

	DisplayOffset float64
	DisplayMin    float64
	DisplayMax    float64
}

// Signals carries the environmental readings consumed by smart selection.
// An unavailable signal contributes zero weight rather than failing the
// selection.
type Signals struct {
	Sun       float64
	SunOK     bool
	Display   float64
	DisplayOK bool
}

// Score holds the pre-weighted terms of a preset's smart score. Higher is
// better.
type Score struct {
	Sun     float64
	Display float64
	Random  float64
}

// Total returns the score as a single number.
func (s Score) Total() float64 {
	return s.Sun + s.Display + s.Random
}

// Selector ranks and selects presets from environmental signals.
type Selector struct {
	weights Weights
	rng     *rand.Rand
}

// NewSelector creates a selector. A nil rng gets a time-seeded source.
func NewSelector(weights Weights, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{weights: weights, rng: rng}
}

// idealRank maps a raw signal through its offset and [min, max] window to
// the rank in [0, 1] that would score best.
func idealRank(value float64, ok bool, offset, min, max float64) (float64, bool) {
	if !ok {
		return 0, false
	}
	return calc.MapNumber(calc.Clamp(value+offset, 0, 1), min, max, 0, 1), true
}

// Scores calculates the smart score terms for each candidate. Candidates
// are ranked against each other: brightness ranks relate high sun elevation
// to bright presets (split into two lobes when SunBimodal is set), and
// reversed contrast ranks relate high display brightness to low-contrast
// presets. Each candidate's term is its rank's closeness to the signal's
// ideal rank.
func (s *Selector) Scores(candidates []Preset, signals Signals) map[string]Score {
	byName := make(map[string]Preset, len(candidates))
	names := make([]string, 0, len(candidates))
	for _, p := range candidates {
		byName[p.Name] = p
		names = append(names, p.Name)
	}

	brightness := func(name string) float64 { return byName[name].Brightness() }
	contrast := func(name string) float64 { return byName[name].Contrast() }

	var sunRanks map[string]float64
	if s.weights.SunBimodal {
		sunRanks = calc.BimodalNormalizedRanks(names, 0.5, brightness, false)
	} else {
		sunRanks = calc.NormalizedRanks(names, brightness, false)
	}
	displayRanks := calc.NormalizedRanks(names, contrast, true)

	idealSun, sunOK := idealRank(signals.Sun, signals.SunOK,
		s.weights.SunOffset, s.weights.SunMin, s.weights.SunMax)
	idealDisplay, displayOK := idealRank(signals.Display, signals.DisplayOK,
		s.weights.DisplayOffset, s.weights.DisplayMin, s.weights.DisplayMax)

	scores := make(map[string]Score, len(names))
	for _, name := range names {
		var score Score
		if sunOK {
			score.Sun = s.weights.Sun * calc.Closeness(sunRanks[name], idealSun)
		}
		if displayOK {
			score.Display = s.weights.Display * calc.Closeness(displayRanks[name], idealDisplay)
		}
		score.Random = s.weights.Random * s.rng.Float64()
		scores[name] = score
	}
	return scores
}

// Smart selects a favourite preset by weighted sampling proportional to
// smart score. Presets in the history are excluded from the candidates
// unless that would leave none, in which case the repeat constraint is
// relaxed. The chosen name is pushed onto the history.
func (s *Selector) Smart(favorites []Preset, signals Signals, history *History) (Preset, error) {
	if len(favorites) == 0 {
		return Preset{}, ErrNoFavorites
	}

	options := make([]Preset, 0, len(favorites))
	for _, p := range favorites {
		if !history.Contains(p.Name) {
			options = append(options, p)
		}
	}
	if len(options) == 0 {
		// Avoiding repeats would leave nothing to choose; allow them.
		options = favorites
	}

	scores := s.Scores(options, signals)
	choice := s.sample(options, scores)
	history.Push(choice.Name)
	return choice, nil
}

// sample draws one preset with probability proportional to its total score,
// walking candidates in their stable insertion order. When every score is
// zero the draw is uniform.
func (s *Selector) sample(options []Preset, scores map[string]Score) Preset {
	total := 0.0
	for _, p := range options {
		if t := scores[p.Name].Total(); t > 0 {
			total += t
		}
	}
	if total <= 0 {
		return options[s.rng.Intn(len(options))]
	}
	r := s.rng.Float64() * total
	for _, p := range options {
		t := scores[p.Name].Total()
		if t <= 0 {
			continue
		}
		r -= t
		if r < 0 {
			return p
		}
	}
	// Floating-point slack lands on the last scored candidate.
	for i := len(options) - 1; i >= 0; i-- {
		if scores[options[i].Name].Total() > 0 {
			return options[i]
		}
	}
	return options[len(options)-1]
}

// Random picks a uniformly random favourite. Unless allowRepeat is set, the
// current preset is excluded; picking from a single favourite that is also
// current is reported as an error rather than a guaranteed repeat.
func Random(favorites []string, current string, allowRepeat bool, rng *rand.Rand) (string, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	options := favorites
	if !allowRepeat {
		options = make([]string, 0, len(favorites))
		for _, name := range favorites {
			if name != current {
				options = append(options, name)
			}
		}
	}
	if len(options) == 0 {
		if len(favorites) == 0 {
			return "", ErrNoFavorites
		}
		return "", errors.New("need at least 2 favorites to pick a new random preset")
	}
	return options[rng.Intn(len(options))], nil
}
