package preset

// History is a bounded FIFO of recently selected preset names, used by smart
// selection to avoid repeats. It lives only for the lifetime of the process.
type History struct {
	names []string
	limit int
}

// NewHistory creates a history that remembers the last limit selections.
// A limit of 0 disables repeat tracking entirely.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Push records a selected preset name, evicting the oldest entry beyond the
// limit.
func (h *History) Push(name string) {
	if h.limit == 0 {
		return
	}
	h.names = append(h.names, name)
	if len(h.names) > h.limit {
		h.names = h.names[len(h.names)-h.limit:]
	}
}

// Names returns the remembered names, oldest first.
func (h *History) Names() []string {
	out := make([]string, len(h.names))
	copy(out, h.names)
	return out
}

// Contains reports whether name is in the history.
func (h *History) Contains(name string) bool {
	for _, n := range h.names {
		if n == name {
			return true
		}
	}
	return false
}

// Len returns the number of remembered names.
func (h *History) Len() int {
	return len(h.names)
}
