package swipelist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/swiperow/internal/gesture"
	"github.com/llehouerou/swiperow/internal/swipeable"
)

type fakeItem struct {
	calls []string
}

func (f *fakeItem) OpenLeading()  { f.calls = append(f.calls, "open-leading") }
func (f *fakeItem) OpenTrailing() { f.calls = append(f.calls, "open-trailing") }
func (f *fakeItem) Close()        { f.calls = append(f.calls, "close") }

func mounted(t *testing.T, l *List, keys ...string) map[string]*fakeItem {
	t.Helper()
	items := make(map[string]*fakeItem, len(keys))
	for _, k := range keys {
		items[k] = &fakeItem{}
		l.Mount(k, items[k])
	}
	return items
}

func TestKeyedOperations(t *testing.T) {
	l := New()
	items := mounted(t, l, "a", "b")

	require.NoError(t, l.OpenLeading("a"))
	require.NoError(t, l.OpenTrailing("b"))
	require.NoError(t, l.Close("a"))

	assert.Equal(t, []string{"open-leading", "close"}, items["a"].calls)
	assert.Equal(t, []string{"open-trailing"}, items["b"].calls)
}

func TestUnknownKey(t *testing.T) {
	l := New()
	mounted(t, l, "a")

	for _, err := range []error{l.OpenLeading("zz"), l.OpenTrailing("zz"), l.Close("zz")} {
		assert.ErrorIs(t, err, ErrUnknownKey)
	}
}

func TestBulkOperations(t *testing.T) {
	l := New()
	items := mounted(t, l, "a", "b", "c")

	l.OpenAllLeading()
	l.OpenAllTrailing()
	l.CloseAll()

	for k, it := range items {
		assert.Equal(t, []string{"open-leading", "open-trailing", "close"}, it.calls, k)
	}
}

func TestUnmount(t *testing.T) {
	l := New()
	items := mounted(t, l, "a", "b")

	l.Unmount("a")
	l.CloseAll()

	assert.Empty(t, items["a"].calls)
	assert.Equal(t, []string{"b"}, l.Keys())
	assert.Equal(t, 1, l.Len())
	assert.ErrorIs(t, l.Close("a"), ErrUnknownKey)
}

func TestOpeningClosesOthersWhenSingleOpen(t *testing.T) {
	var forwarded []string
	l := New(
		WithAllowMultiOpen(false),
		WithChangeFunc(func(key string, c swipeable.Change) {
			forwarded = append(forwarded, key+":"+c.Action.String())
		}),
	)
	items := mounted(t, l, "a", "b", "c")

	l.Listener("b")(swipeable.Change{Item: swipeable.Leading, Action: swipeable.OpeningThresholdPassed})

	assert.Equal(t, []string{"close"}, items["a"].calls)
	assert.Empty(t, items["b"].calls)
	assert.Equal(t, []string{"close"}, items["c"].calls)
	assert.Equal(t, []string{"b:opening-threshold-passed"}, forwarded)
}

func TestOtherChangesDoNotClose(t *testing.T) {
	l := New(WithAllowMultiOpen(false))
	items := mounted(t, l, "a", "b")

	l.Listener("b")(swipeable.Change{Item: swipeable.Leading, Action: swipeable.Opened})
	l.Listener("b")(swipeable.Change{Item: swipeable.Leading, Action: swipeable.Closed})

	assert.Empty(t, items["a"].calls)
}

func TestMultiOpenAllowedByDefault(t *testing.T) {
	l := New()
	items := mounted(t, l, "a", "b")
	require.True(t, l.AllowMultiOpen())

	l.Listener("b")(swipeable.Change{Action: swipeable.OpeningThresholdPassed})

	assert.Empty(t, items["a"].calls)

	l.SetAllowMultiOpen(false)
	l.Listener("b")(swipeable.Change{Action: swipeable.OpeningThresholdPassed})
	assert.Equal(t, []string{"close"}, items["a"].calls)
}

func TestDragClaim(t *testing.T) {
	l := New()
	mounted(t, l, "a", "b")

	assert.True(t, l.BeginDrag("a"))
	assert.False(t, l.BeginDrag("b"), "only one row drags at a time")
	assert.True(t, l.BeginDrag("a"))
	assert.False(t, l.BeginDrag("missing"))

	key, ok := l.Dragging()
	assert.True(t, ok)
	assert.Equal(t, "a", key)

	l.EndDrag("b")
	_, ok = l.Dragging()
	assert.True(t, ok, "ending another key keeps the claim")

	l.Unmount("a")
	_, ok = l.Dragging()
	assert.False(t, ok)
	assert.True(t, l.BeginDrag("b"))
}

func TestRowDirection(t *testing.T) {
	assert.Equal(t, gesture.Vertical, RowDirection(gesture.Horizontal))
	assert.Equal(t, gesture.Horizontal, RowDirection(gesture.Vertical))
}

// Two real rows: opening one past its threshold closes the other.
func TestSingleOpenWithRows(t *testing.T) {
	l := New(WithAllowMultiOpen(false))
	newRow := func(key string) *swipeable.Swipeable {
		opts := swipeable.DefaultOptions()
		opts.Leading = func(swipeable.Props) string { return "" }
		row := swipeable.New(opts, swipeable.WithListener(l.Listener(key)))
		row.SetContainerExtent(300)
		row.SetLeadingExtent(80)
		l.Mount(key, row)
		return row
	}
	a, b := newRow("a"), newRow("b")
	now := time.Unix(0, 0)
	step := func() {
		now = now.Add(16 * time.Millisecond)
		a.Frame(now)
		b.Frame(now)
	}

	a.OpenLeading()
	for range 20 {
		step()
	}
	require.InDelta(t, 80.0, a.Translation(), 0)

	b.HandleGesture(gesture.Event{Phase: gesture.PhaseActive, Offset: 50})
	step()
	assert.Equal(t, swipeable.TransitionClose, a.PendingTransition())
	for range 20 {
		step()
	}
	assert.InDelta(t, 0.0, a.Translation(), 0)
	assert.InDelta(t, 50.0, b.Translation(), 0)
}
