package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/swiperow/internal/app/popupctl"
	"github.com/llehouerou/swiperow/internal/config"
	"github.com/llehouerou/swiperow/internal/state"
	"github.com/llehouerou/swiperow/internal/swipeable"
	"github.com/llehouerou/swiperow/internal/ui/action"
	"github.com/llehouerou/swiperow/internal/ui/testutil"
)

const frameStep = 16 * time.Millisecond

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestModel returns a 60x12 model over the given titles, newest first.
// Rows are 58 cells wide; "Read" panels are 8 cells and "Archive"
// panels 11.
func newTestModel(t *testing.T, titles ...string) (Model, *state.Mock, *clock) {
	t.Helper()
	store := state.NewMock()
	seed := make([]state.SeedItem, len(titles))
	for i, title := range titles {
		seed[i] = state.SeedItem{Title: title, Age: time.Duration(i+1) * time.Minute}
	}
	_, err := store.SeedIfEmpty(seed)
	require.NoError(t, err)

	cfg, err := config.LoadFrom()
	require.NoError(t, err)

	// The mock store stamps items with the wall clock.
	clk := &clock{t: time.Now()}
	m, err := New(cfg, store, WithClock(clk.now))
	require.NoError(t, err)
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 12})
	return m, store, clk
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	return update(t, m, testutil.Key(key))
}

// pressRun sends a key and feeds back the popup action its command
// produces.
func pressRun(t *testing.T, m Model, key string) Model {
	t.Helper()
	m, cmd := updateCmd(t, m, testutil.Key(key))
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(action.Msg)
	require.True(t, ok, "expected a popup action, got %T", msg)
	return update(t, m, msg)
}

// settle drives frames until no row animates.
func settle(t *testing.T, m Model, clk *clock) Model {
	t.Helper()
	for range 600 {
		clk.advance(frameStep)
		m = update(t, m, FrameMsg(clk.t))
		if !m.animating() {
			return m
		}
	}
	t.Fatal("rows still animating after 600 frames")
	return m
}

func translation(m Model, id int64) float64 {
	return m.rows[(state.Item{ID: id}).Key()].sw.Translation()
}

func rowState(m Model, id int64) swipeable.TranslationState {
	return m.rows[(state.Item{ID: id}).Key()].sw.State()
}

func hasEvent(events []state.SwipeEvent, side, action, method string) bool {
	for _, ev := range events {
		if ev.Side == side && ev.Action == action && ev.Method == method {
			return true
		}
	}
	return false
}

func TestNew_MountsItems(t *testing.T) {
	m, _, _ := newTestModel(t, "apple", "banana", "cherry")

	assert.Len(t, m.items, 3)
	assert.Len(t, m.visible, 3)
	assert.Equal(t, 3, m.list.Len())
	assert.Equal(t, "apple", m.items[0].Title)
}

func TestNew_StoreError(t *testing.T) {
	cfg, err := config.LoadFrom()
	require.NoError(t, err)

	_, err = New(cfg, failingStore{state.NewMock()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load items")
}

type failingStore struct{ *state.Mock }

func (failingStore) ListItems() ([]state.Item, error) {
	return nil, errors.New("disk gone")
}

func TestLayout(t *testing.T) {
	m, _, _ := newTestModel(t, "apple")

	assert.Equal(t, 58, m.rowWidth())
	assert.Equal(t, 8, m.listHeight())
	assert.Equal(t, 2, m.listTop())

	snaps := m.rows["item-1"].sw.SnapPoints()
	assert.InDelta(t, 8.0, snaps.Trailing, 0)
	assert.InDelta(t, -11.0, snaps.Leading, 0)
}

func TestKeyOpensAndClosesCursorRow(t *testing.T) {
	m, store, clk := newTestModel(t, "apple", "banana")

	m, cmd := updateCmd(t, m, testutil.Key("l"))
	require.NotNil(t, cmd, "opening should start the frame clock")
	m = settle(t, m, clk)

	assert.InDelta(t, 8.0, translation(m, 1), 0)
	assert.Equal(t, swipeable.StateLeadingOpened, rowState(m, 1))
	assert.InDelta(t, 0.0, translation(m, 2), 0)

	events := store.Events()
	assert.True(t, hasEvent(events, "leading", "opening-threshold-passed", "transition"))
	assert.True(t, hasEvent(events, "leading", "opened", "transition"))
	assert.Contains(t, m.status, "apple")

	m = press(t, m, "c")
	m = settle(t, m, clk)
	assert.InDelta(t, 0.0, translation(m, 1), 0)
	assert.True(t, hasEvent(store.Events(), "leading", "closed", "transition"))
}

func TestFrameClockStopsWhenIdle(t *testing.T) {
	m, _, clk := newTestModel(t, "apple")

	m = press(t, m, "h")
	require.True(t, m.ticking)

	m = settle(t, m, clk)
	clk.advance(frameStep)
	m, cmd := updateCmd(t, m, FrameMsg(clk.t))
	assert.Nil(t, cmd)
	assert.False(t, m.ticking)
}

func TestBulkControl(t *testing.T) {
	m, _, clk := newTestModel(t, "apple", "banana", "cherry")

	m = press(t, m, "H")
	m = settle(t, m, clk)
	for id := int64(1); id <= 3; id++ {
		assert.InDelta(t, -11.0, translation(m, id), 0, "row %d", id)
	}

	m = press(t, m, "C")
	m = settle(t, m, clk)
	for id := int64(1); id <= 3; id++ {
		assert.InDelta(t, 0.0, translation(m, id), 0, "row %d", id)
	}
}

func TestSingleOpenClosesOtherRows(t *testing.T) {
	m, _, clk := newTestModel(t, "apple", "banana")

	m = press(t, m, "m")
	require.False(t, m.list.AllowMultiOpen())

	m = press(t, m, "l")
	m = settle(t, m, clk)
	require.InDelta(t, 8.0, translation(m, 1), 0)

	m = press(t, m, "j")
	m = press(t, m, "l")
	m = settle(t, m, clk)

	assert.InDelta(t, 0.0, translation(m, 1), 0)
	assert.InDelta(t, 8.0, translation(m, 2), 0)
}

func TestDragOpensLeading(t *testing.T) {
	m, store, clk := newTestModel(t, "apple", "banana")

	m = update(t, m, testutil.Press(10, 2))
	_, dragging := m.list.Dragging()
	assert.True(t, dragging)

	for _, x := range []int{13, 16} {
		clk.advance(frameStep)
		m = update(t, m, testutil.Drag(x, 2))
		m = update(t, m, FrameMsg(clk.t))
	}
	assert.InDelta(t, 6.0, translation(m, 1), 0)
	assert.True(t, hasEvent(store.Events(), "leading", "opening-threshold-passed", "drag"))

	m = update(t, m, testutil.Release(16, 2))
	_, dragging = m.list.Dragging()
	assert.False(t, dragging)

	m = settle(t, m, clk)
	assert.InDelta(t, 8.0, translation(m, 1), 0.5)
	assert.Equal(t, swipeable.StateLeadingOpened, rowState(m, 1))
	assert.True(t, hasEvent(store.Events(), "leading", "opened", "swipe"))
	assert.InDelta(t, 0.0, translation(m, 2), 0)
}

func TestPressCatchesRowMidTransition(t *testing.T) {
	m, _, clk := newTestModel(t, "apple")

	m = press(t, m, "l")
	for range 4 {
		clk.advance(frameStep)
		m = update(t, m, FrameMsg(clk.t))
	}
	mid := translation(m, 1)
	require.Greater(t, mid, 0.0)
	require.Less(t, mid, 8.0)

	m = update(t, m, testutil.Press(30, 2))
	for range 5 {
		clk.advance(frameStep)
		m = update(t, m, FrameMsg(clk.t))
	}

	e := m.rows[(state.Item{ID: 1}).Key()]
	assert.Equal(t, swipeable.TransitionNone, e.sw.PendingTransition())
	assert.InDelta(t, mid, translation(m, 1), 1e-9)
}

func TestShortDragSnapsBack(t *testing.T) {
	m, _, clk := newTestModel(t, "apple")

	m = update(t, m, testutil.Press(30, 2))
	clk.advance(100 * time.Millisecond)
	m = update(t, m, testutil.Drag(28, 2))
	m = update(t, m, FrameMsg(clk.t))
	clk.advance(200 * time.Millisecond)
	m = update(t, m, testutil.Release(28, 2))
	m = settle(t, m, clk)

	assert.InDelta(t, 0.0, translation(m, 1), 0)
}

func TestPressSelectsRow(t *testing.T) {
	m, _, _ := newTestModel(t, "apple", "banana", "cherry")

	m = update(t, m, testutil.Press(10, 4))
	assert.Equal(t, 2, m.cursor.Pos())

	m = update(t, m, testutil.Release(10, 4))
	m = update(t, m, testutil.Press(10, 9))
	assert.Equal(t, 2, m.cursor.Pos(), "press below the last row is ignored")
}

func TestTapOnLeadingPanelTogglesRead(t *testing.T) {
	m, store, clk := newTestModel(t, "apple")

	m = press(t, m, "l")
	m = settle(t, m, clk)

	m = update(t, m, testutil.Press(3, 2))
	m = update(t, m, testutil.Release(3, 2))
	assert.Equal(t, `Marked "apple" read`, m.status)

	m = settle(t, m, clk)
	items, err := store.ListItems()
	require.NoError(t, err)
	assert.True(t, items[0].Read)
	assert.True(t, m.items[0].Read)
	assert.InDelta(t, 0.0, translation(m, 1), 0)
}

func TestTapOnTrailingPanelArchivesAndRestores(t *testing.T) {
	m, store, clk := newTestModel(t, "apple", "banana")

	m = press(t, m, "h")
	m = settle(t, m, clk)

	m = update(t, m, testutil.Press(50, 2))
	m = update(t, m, testutil.Release(50, 2))

	assert.Len(t, m.visible, 1)
	assert.NotContains(t, m.rows, "item-1")
	assert.Equal(t, "banana", m.items[0].Title)
	items, err := store.ListItems()
	require.NoError(t, err)
	assert.Len(t, items, 1)

	m = press(t, m, "u")
	assert.Len(t, m.visible, 2)
	assert.Contains(t, m.rows, "item-1")
	assert.InDelta(t, 0.0, translation(m, 1), 0, "restored rows start closed")

	m = press(t, m, "u")
	assert.Equal(t, "Nothing to restore", m.status)
}

func TestTapOnContentClosesRow(t *testing.T) {
	m, _, clk := newTestModel(t, "apple")

	m = press(t, m, "h")
	m = settle(t, m, clk)

	m = update(t, m, testutil.Press(10, 2))
	m = update(t, m, testutil.Release(10, 2))
	m = settle(t, m, clk)

	assert.InDelta(t, 0.0, translation(m, 1), 0)
}

func TestActivateRunsOpenPanel(t *testing.T) {
	m, store, clk := newTestModel(t, "apple", "banana")

	m = press(t, m, "enter")
	assert.Contains(t, m.status, "reveal")

	m = press(t, m, "h")
	m = settle(t, m, clk)
	m = press(t, m, "enter")

	items, err := store.ListItems()
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Len(t, m.visible, 1)
}

func TestStoreErrorShownInStatus(t *testing.T) {
	m, store, clk := newTestModel(t, "apple")

	m = press(t, m, "h")
	m = settle(t, m, clk)

	store.Err = errors.New("disk full")
	m = press(t, m, "enter")

	assert.True(t, m.statusErr)
	assert.Equal(t, "Failed to archive item 'apple': disk full", m.status)
	assert.Len(t, m.visible, 1)
}

func TestFilter(t *testing.T) {
	m, _, _ := newTestModel(t, "apple", "banana", "cherry")

	m = press(t, m, "/")
	require.Equal(t, popupctl.TextInput, m.popups.ActivePopup())

	m = press(t, m, "a")
	m = press(t, m, "p")
	assert.Equal(t, "ap", m.filter)
	require.Len(t, m.visible, 1)
	assert.Equal(t, "apple", m.items[m.visible[0]].Title)

	m = pressRun(t, m, "enter")
	assert.Equal(t, popupctl.None, m.popups.ActivePopup())
	assert.Equal(t, "ap", m.filter)

	m = press(t, m, "/")
	m = pressRun(t, m, "esc")
	assert.Empty(t, m.filter)
	assert.Len(t, m.visible, 3)
}

func TestFilterKeepsRowsMounted(t *testing.T) {
	m, _, clk := newTestModel(t, "apple", "banana")

	m = press(t, m, "/")
	m = press(t, m, "b")
	m = pressRun(t, m, "enter")
	require.Len(t, m.visible, 1)

	m = press(t, m, "L")
	m = settle(t, m, clk)
	assert.InDelta(t, 8.0, translation(m, 1), 0, "hidden rows still follow bulk control")
}

func TestNewItem(t *testing.T) {
	m, store, _ := newTestModel(t, "apple")

	m = press(t, m, "n")
	for _, r := range "kiwi" {
		m = press(t, m, string(r))
	}
	m = pressRun(t, m, "enter")

	require.Len(t, m.items, 2)
	assert.Contains(t, m.rows, "item-2")
	assert.Equal(t, `Added "kiwi"`, m.status)
	items, err := store.ListItems()
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestHelpPopup(t *testing.T) {
	m, _, _ := newTestModel(t, "apple")

	m = press(t, m, "?")
	assert.Equal(t, popupctl.Help, m.popups.ActivePopup())

	// Keys go to the popup while it is open.
	m = press(t, m, "l")
	assert.False(t, m.ticking)

	m = pressRun(t, m, "esc")
	assert.Equal(t, popupctl.None, m.popups.ActivePopup())
}

func TestMouseIgnoredUnderPopup(t *testing.T) {
	m, _, _ := newTestModel(t, "apple")

	m = press(t, m, "?")
	m = update(t, m, testutil.Press(10, 2))
	_, dragging := m.list.Dragging()
	assert.False(t, dragging)
}

func TestWheelScrolls(t *testing.T) {
	titles := make([]string, 20)
	for i := range titles {
		titles[i] = strings.Repeat("x", i+1)
	}
	m, _, _ := newTestModel(t, titles...)

	m = update(t, m, testutil.Wheel(10, 5, true))
	assert.Equal(t, 1, m.cursor.Offset())
	m = update(t, m, testutil.Wheel(10, 5, false))
	assert.Equal(t, 0, m.cursor.Offset())
}

func TestQuitClosesStore(t *testing.T) {
	m, store, _ := newTestModel(t, "apple")

	_, cmd := updateCmd(t, m, testutil.Key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, store.IsClosed())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigReload(t *testing.T) {
	m, _, clk := newTestModel(t, "apple", "banana")

	m = press(t, m, "l")
	m = settle(t, m, clk)

	cfg, err := config.LoadFrom(writeConfig(t, `
[list]
allow_multi_open = false

[ui]
leading_label = "Mark read"
`))
	require.NoError(t, err)

	m = update(t, m, ConfigReloadedMsg{Config: cfg})

	assert.False(t, m.list.AllowMultiOpen())
	assert.Equal(t, "Config reloaded, 1 rows rebuilt", m.status)
	assert.Equal(t, 8, m.rows["item-1"].leadingWidth, "open row keeps its options")
	assert.Equal(t, 13, m.rows["item-2"].leadingWidth)
	assert.InDelta(t, 8.0, translation(m, 1), 0)
	assert.InDelta(t, 13.0, m.rows["item-2"].sw.SnapPoints().Trailing, 0)
}

func TestConfigReloadError(t *testing.T) {
	m, _, _ := newTestModel(t, "apple")

	m = update(t, m, ConfigReloadedMsg{Err: errors.New("bad toml")})

	assert.True(t, m.statusErr)
	assert.Equal(t, "Failed to reload config: bad toml", m.status)
	assert.True(t, m.list.AllowMultiOpen())
}

func TestWaitForConfig(t *testing.T) {
	assert.Nil(t, waitForConfig(nil))

	ch := make(chan ConfigReloadedMsg, 1)
	ch <- ConfigReloadedMsg{Err: errors.New("x")}
	msg := waitForConfig(ch)()
	assert.IsType(t, ConfigReloadedMsg{}, msg)

	close(ch)
	assert.Nil(t, waitForConfig(ch)())
}

func TestView(t *testing.T) {
	m, _, clk := newTestModel(t, "apple", "banana")

	view := testutil.StripANSI(m.View())
	lines := testutil.Lines(view)
	require.Len(t, lines, 12)
	assert.Contains(t, lines[0], "swiperow")
	assert.Contains(t, lines[0], "2 items")
	assert.Contains(t, lines[2], "apple")
	assert.Contains(t, lines[2], "ago")
	assert.Contains(t, lines[11], "? help")

	m = press(t, m, "l")
	m = settle(t, m, clk)
	view = testutil.StripANSI(m.View())
	line, ok := testutil.FindLine(view, "apple")
	require.True(t, ok)
	assert.Contains(t, line, "Read")
	assert.Contains(t, testutil.Lines(view)[0], "1 open")
}

func TestViewEmptyAndNarrow(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, ok := testutil.FindLine(testutil.StripANSI(m.View()), "No items")
	assert.True(t, ok)

	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Contains(t, m.View(), "Window too narrow")
}
