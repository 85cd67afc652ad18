// Package navigation records where the client was sent. The CLI reads the
// last entry to tell the user what to do next; the portal turns it into a
// redirect.
package navigation

import (
	"sync"

	"github.com/rs/zerolog"
)

const maxEntries = 32

// History is a bounded, concurrency-safe list of visited paths.
type History struct {
	log zerolog.Logger

	mu      sync.Mutex
	entries []string
	subs    []func(path string)
}

// NewHistory returns an empty History.
func NewHistory(log zerolog.Logger) *History {
	return &History{log: log}
}

// Navigate appends path and notifies subscribers.
func (h *History) Navigate(path string) {
	h.mu.Lock()
	h.entries = append(h.entries, path)
	if len(h.entries) > maxEntries {
		h.entries = h.entries[len(h.entries)-maxEntries:]
	}
	subs := make([]func(string), len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()

	h.log.Debug().Str("path", path).Msg("navigate")
	for _, fn := range subs {
		fn(path)
	}
}

// Subscribe registers fn to run on every navigation.
func (h *History) Subscribe(fn func(path string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, fn)
}

// Current returns the latest path, or "" when nothing happened yet.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

// Entries returns a copy of the recorded paths, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
