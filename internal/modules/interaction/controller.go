// Package interaction tracks which allocation segment is focused.
// Focus can be set from the chart or from the paired legend/table; both
// surfaces render from the same single focus value.
package interaction

import (
	"sync"

	"github.com/rs/zerolog"
)

// Source identifies which surface set or is clearing the focus.
type Source string

const (
	SourceChart  Source = "chart"
	SourceLegend Source = "legend"
)

// ParseSource validates a source string. Unknown values return false.
func ParseSource(s string) (Source, bool) {
	switch Source(s) {
	case SourceChart:
		return SourceChart, true
	case SourceLegend:
		return SourceLegend, true
	}
	return "", false
}

// FocusChange is broadcast to listeners on every focus transition.
type FocusChange struct {
	Index  int    `json:"index"` // -1 when no focus is active
	Active bool   `json:"active"`
	Source string `json:"source"`
}

// Controller handles thread-safe focus state management for one chart
// instance. At most one focus is active; the last writer wins regardless of
// source, but a clear only takes effect if the clearing source still holds
// the focus. That rule stops a stale pointer-leave from one surface from
// wiping a focus the other surface set a moment later.
type Controller struct {
	mu        sync.RWMutex
	index     int // -1 = no focus
	source    Source
	listeners []func(FocusChange)
	log       zerolog.Logger
}

// NewController creates a controller with no active focus.
func NewController(log zerolog.Logger) *Controller {
	return &Controller{
		index: -1,
		log:   log.With().Str("component", "focus_controller").Logger(),
	}
}

// SetFocus focuses the segment at index, overwriting any existing focus.
func (c *Controller) SetFocus(index int, source Source) {
	if index < 0 {
		c.ClearFocus(source)
		return
	}

	c.mu.Lock()
	c.index = index
	c.source = source
	change := FocusChange{Index: index, Active: true, Source: string(source)}
	listeners := append([]func(FocusChange){}, c.listeners...)
	c.mu.Unlock()

	c.log.Debug().Int("index", index).Str("source", string(source)).Msg("Focus set")
	for _, fn := range listeners {
		fn(change)
	}
}

// ClearFocus clears the focus if it is held by the given source.
// Clearing from the other source is a no-op.
func (c *Controller) ClearFocus(source Source) {
	c.mu.Lock()
	if c.index < 0 || c.source != source {
		c.mu.Unlock()
		return
	}
	c.index = -1
	change := FocusChange{Index: -1, Active: false, Source: string(source)}
	listeners := append([]func(FocusChange){}, c.listeners...)
	c.mu.Unlock()

	c.log.Debug().Str("source", string(source)).Msg("Focus cleared")
	for _, fn := range listeners {
		fn(change)
	}
}

// Current returns the focused index, or ok=false when no focus is active.
func (c *Controller) Current() (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.index < 0 {
		return -1, false
	}
	return c.index, true
}

// CurrentIndex returns the focused index or -1. Convenience for the
// geometry builder, which takes -1 as "no focus".
func (c *Controller) CurrentIndex() int {
	idx, _ := c.Current()
	return idx
}

// OnChange registers a listener invoked on every focus transition.
// Listeners are called outside the lock and must not block for long; the
// websocket hub hands the change off to per-connection send queues.
func (c *Controller) OnChange(fn func(FocusChange)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}
