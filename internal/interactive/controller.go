// Package interactive implements prism's interactive mode: a single-threaded
// state machine that turns one logical command at a time into a preset to
// apply, plus the raw-terminal input loop that feeds it.
package interactive

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jmylchreest/prism/internal/preset"
)

// Command is one logical interactive-mode command.
type Command int

const (
	CmdNone Command = iota
	CmdNext
	CmdPrevious
	CmdNextFavorite
	CmdPreviousFavorite
	CmdShuffle
	CmdPick
	CmdToggleFavorite
	CmdToggleLightDark
	CmdInfo
	CmdQuit
)

// Effect describes what the caller should do after a dispatch.
type Effect int

const (
	// EffectNone means no palette change; Message may carry status info.
	EffectNone Effect = iota
	// EffectApply means Preset should be transmitted to the terminal.
	EffectApply
	// EffectQuit means the interaction loop should exit.
	EffectQuit
)

// Result is the outcome of dispatching one command.
type Result struct {
	Effect  Effect
	Preset  preset.Preset
	Message string
}

// FavoriteSet is the ordered favourite names collaborator. Mutations are
// persisted by the implementation.
type FavoriteSet interface {
	Names() []string
	Len() int
	Contains(name string) bool
	Add(name string) error
	Remove(name string) error
}

// Picker is the external fuzzy-selection collaborator. It blocks the
// interaction loop until the user chooses a candidate or cancels; a
// cancelled pick is not an error.
type Picker interface {
	Pick(candidates []string) (name string, ok bool)
}

// Controller is the interactive-mode state machine. It owns two independent
// cursors: one over the full preset list and one over the favourites list.
// It is not safe for concurrent use; interactive mode is single-threaded by
// design.
type Controller struct {
	store     *preset.Store
	favorites FavoriteSet
	picker    Picker
	rng       *rand.Rand

	cursor    int
	favCursor int
	current   preset.Preset
}

// NewController creates a controller with the cursor positioned at the
// preset currently live in the terminal. An empty initial name starts at
// the first preset; a non-empty unknown name is an invariant violation.
func NewController(store *preset.Store, favorites FavoriteSet, picker Picker, initial string, rng *rand.Rand) (*Controller, error) {
	if store.Len() == 0 {
		return nil, fmt.Errorf("no presets to browse")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c := &Controller{
		store:     store,
		favorites: favorites,
		picker:    picker,
		rng:       rng,
		favCursor: -1,
	}
	if initial == "" {
		c.cursor = 0
	} else {
		idx := store.Index(initial)
		if idx < 0 {
			return nil, fmt.Errorf("%q: %w", initial, preset.ErrUnknownPreset)
		}
		c.cursor = idx
	}
	c.current, _ = store.Get(store.Names()[c.cursor])
	return c, nil
}

// Current returns the preset the controller considers live. It is updated
// before transmission, so a dropped delivery never desynchronises it from
// the intended target.
func (c *Controller) Current() preset.Preset {
	return c.current
}

// Cursor returns the position in the full preset list.
func (c *Controller) Cursor() int {
	return c.cursor
}

// Dispatch executes one command and returns its effect. Errors are reserved
// for invariant violations; expected conditions (no favourites, cancelled
// pick) come back as EffectNone with a message.
func (c *Controller) Dispatch(cmd Command) (Result, error) {
	switch cmd {
	case CmdNext:
		return c.move(1)
	case CmdPrevious:
		return c.move(-1)
	case CmdNextFavorite:
		return c.moveFavorite(1)
	case CmdPreviousFavorite:
		return c.moveFavorite(-1)
	case CmdShuffle:
		return c.shuffle()
	case CmdPick:
		return c.pick()
	case CmdToggleFavorite:
		return c.toggleFavorite()
	case CmdToggleLightDark:
		return c.toggleLightDark()
	case CmdInfo:
		return Result{
			Effect: EffectNone,
			Message: fmt.Sprintf("brightness=%.3f, contrast=%.3f",
				c.current.Brightness(), c.current.Contrast()),
		}, nil
	case CmdQuit:
		return Result{Effect: EffectQuit}, nil
	default:
		return Result{Effect: EffectNone}, nil
	}
}

// applyAt moves the full-list cursor to idx and makes that preset current.
func (c *Controller) applyAt(idx int) (Result, error) {
	names := c.store.Names()
	c.cursor = idx
	p, err := c.store.Get(names[idx])
	if err != nil {
		return Result{}, err
	}
	c.current = p
	return Result{Effect: EffectApply, Preset: p}, nil
}

func (c *Controller) move(delta int) (Result, error) {
	n := c.store.Len()
	return c.applyAt(((c.cursor+delta)%n + n) % n)
}

func (c *Controller) moveFavorite(delta int) (Result, error) {
	if c.favorites.Len() == 0 {
		return Result{Effect: EffectNone, Message: "no favorites"}, nil
	}
	names := c.favorites.Names()
	n := len(names)
	if c.favCursor < 0 {
		// First favourite navigation: start from the favourite nearest the
		// current preset, or the ends of the list.
		if idx := indexOf(names, c.current.Name); idx >= 0 {
			c.favCursor = idx
		} else if delta > 0 {
			c.favCursor = n - 1 // wraps to the first favourite
		} else {
			c.favCursor = 0 // wraps to the last favourite
		}
	}
	c.favCursor = ((c.favCursor+delta)%n + n) % n
	name := names[c.favCursor]
	idx := c.store.Index(name)
	if idx < 0 {
		// Favourites are pruned against the store at startup.
		return Result{}, fmt.Errorf("favorite %q: %w", name, preset.ErrUnknownPreset)
	}
	p, err := c.store.Get(name)
	if err != nil {
		return Result{}, err
	}
	c.current = p
	return Result{Effect: EffectApply, Preset: p}, nil
}

func (c *Controller) shuffle() (Result, error) {
	names := c.store.Names()
	options := make([]int, 0, len(names))
	for i, name := range names {
		if name != c.current.Name {
			options = append(options, i)
		}
	}
	if len(options) == 0 {
		return Result{Effect: EffectNone, Message: "no other presets"}, nil
	}
	return c.applyAt(options[c.rng.Intn(len(options))])
}

func (c *Controller) pick() (Result, error) {
	name, ok := c.picker.Pick(c.store.Names())
	if !ok {
		return Result{Effect: EffectNone, Message: "cancelled"}, nil
	}
	idx := c.store.Index(name)
	if idx < 0 {
		return Result{Effect: EffectNone, Message: "invalid selection"}, nil
	}
	return c.applyAt(idx)
}

func (c *Controller) toggleFavorite() (Result, error) {
	name := c.current.Name
	if c.favorites.Contains(name) {
		if err := c.favorites.Remove(name); err != nil {
			return Result{}, fmt.Errorf("failed to unfavorite %q: %w", name, err)
		}
		return Result{Effect: EffectNone, Message: "unfavorited"}, nil
	}
	if err := c.favorites.Add(name); err != nil {
		return Result{}, fmt.Errorf("failed to favorite %q: %w", name, err)
	}
	return Result{Effect: EffectNone, Message: "favorited"}, nil
}

// toggleLightDark moves to the nearest preset, in cursor order and
// wrapping, whose darkness flag is the opposite of the current preset's.
func (c *Controller) toggleLightDark() (Result, error) {
	names := c.store.Names()
	n := len(names)
	for step := 1; step < n; step++ {
		idx := (c.cursor + step) % n
		p, err := c.store.Get(names[idx])
		if err != nil {
			return Result{}, err
		}
		if p.Dark != c.current.Dark {
			return c.applyAt(idx)
		}
	}
	return Result{Effect: EffectNone, Message: "no light/dark version"}, nil
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
