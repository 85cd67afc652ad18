package navigation

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	h := NewHistory(zerolog.Nop())
	assert.Empty(t, h.Current())

	var seen []string
	h.Subscribe(func(p string) { seen = append(seen, p) })

	h.Navigate("/login")
	h.Navigate("/student/dashboard")

	assert.Equal(t, "/student/dashboard", h.Current())
	assert.Equal(t, []string{"/login", "/student/dashboard"}, h.Entries())
	assert.Equal(t, []string{"/login", "/student/dashboard"}, seen)
}

func TestHistory_Bounded(t *testing.T) {
	h := NewHistory(zerolog.Nop())
	for i := 0; i < maxEntries+5; i++ {
		h.Navigate(fmt.Sprintf("/p/%d", i))
	}

	entries := h.Entries()
	assert.Len(t, entries, maxEntries)
	assert.Equal(t, "/p/5", entries[0])
	assert.Equal(t, fmt.Sprintf("/p/%d", maxEntries+4), h.Current())
}
