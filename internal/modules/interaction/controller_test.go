package interaction

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController() *Controller {
	return NewController(zerolog.New(nil).Level(zerolog.Disabled))
}

func TestController_InitialState(t *testing.T) {
	c := newTestController()

	idx, ok := c.Current()
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
	assert.Equal(t, -1, c.CurrentIndex())
}

func TestController_SetAndClear(t *testing.T) {
	c := newTestController()

	c.SetFocus(2, SourceChart)
	idx, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	c.ClearFocus(SourceChart)
	_, ok = c.Current()
	assert.False(t, ok)
}

func TestController_LastWriterWins(t *testing.T) {
	c := newTestController()

	c.SetFocus(1, SourceChart)
	c.SetFocus(4, SourceLegend)

	idx, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, 4, idx)
}

func TestController_StaleClearIsNoOp(t *testing.T) {
	c := newTestController()

	c.SetFocus(1, SourceChart)
	c.SetFocus(3, SourceLegend)

	// The chart's pointer-leave arrives after the legend took over.
	c.ClearFocus(SourceChart)

	idx, ok := c.Current()
	assert.True(t, ok, "a clear from the surface that lost the focus must not clear it")
	assert.Equal(t, 3, idx)

	c.ClearFocus(SourceLegend)
	_, ok = c.Current()
	assert.False(t, ok)
}

func TestController_ClearWithoutFocus(t *testing.T) {
	c := newTestController()
	c.ClearFocus(SourceChart)

	_, ok := c.Current()
	assert.False(t, ok)
}

func TestController_NegativeIndexClears(t *testing.T) {
	c := newTestController()

	c.SetFocus(2, SourceChart)
	c.SetFocus(-1, SourceChart)

	_, ok := c.Current()
	assert.False(t, ok)
}

func TestController_OnChangeNotifications(t *testing.T) {
	c := newTestController()

	var changes []FocusChange
	c.OnChange(func(ch FocusChange) { changes = append(changes, ch) })

	c.SetFocus(2, SourceChart)
	c.ClearFocus(SourceChart)
	c.ClearFocus(SourceChart) // no-op, must not notify

	require.Len(t, changes, 2)
	assert.Equal(t, FocusChange{Index: 2, Active: true, Source: "chart"}, changes[0])
	assert.Equal(t, FocusChange{Index: -1, Active: false, Source: "chart"}, changes[1])
}

func TestController_ConcurrentAccess(t *testing.T) {
	c := newTestController()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			c.SetFocus(n%5, SourceChart)
		}(i)
		go func() {
			defer wg.Done()
			c.CurrentIndex()
		}()
	}
	wg.Wait()

	idx, ok := c.Current()
	assert.True(t, ok)
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, 5)
}

func TestParseSource(t *testing.T) {
	src, ok := ParseSource("chart")
	assert.True(t, ok)
	assert.Equal(t, SourceChart, src)

	src, ok = ParseSource("legend")
	assert.True(t, ok)
	assert.Equal(t, SourceLegend, src)

	_, ok = ParseSource("table")
	assert.False(t, ok)
	_, ok = ParseSource("")
	assert.False(t, ok)
}
