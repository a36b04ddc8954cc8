package helpbindings

import (
	"strings"
	"testing"

	"github.com/llehouerou/swiperow/internal/ui/action"
	"github.com/llehouerou/swiperow/internal/ui/testutil"
)

func newTestHelpPopup(contexts []string, height int) (*Model, *testutil.PopupHarness) {
	m := New()
	m.SetContexts(contexts)
	m.SetSize(80, height)
	return &m, testutil.NewPopupHarness(&m)
}

func assertClosed(t *testing.T, h *testutil.PopupHarness) {
	t.Helper()
	msg, ok := h.LastMsg().(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", h.LastMsg())
	}
	if _, ok := msg.Action.(Close); !ok {
		t.Fatalf("expected Close, got %T", msg.Action)
	}
	if msg.Source != "helpbindings" {
		t.Errorf("source = %q", msg.Source)
	}
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"esc", "q", "?"} {
		t.Run(key, func(t *testing.T) {
			_, h := newTestHelpPopup(AllContexts, 24)
			h.SendKey(key)
			assertClosed(t, h)
		})
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	m, h := newTestHelpPopup(AllContexts, 24)

	h.SendKey("j")
	h.SendKey("down")
	if m.scrollOffset != 2 {
		t.Fatalf("scroll offset = %d after two steps down, want 2", m.scrollOffset)
	}

	h.SendKey("k")
	if m.scrollOffset != 1 {
		t.Errorf("scroll offset = %d after one step up, want 1", m.scrollOffset)
	}
}

func TestHelpBindings_ScrollStopsAtEdges(t *testing.T) {
	m, h := newTestHelpPopup(AllContexts, 24)

	h.SendKey("up")
	if m.scrollOffset != 0 {
		t.Errorf("scroll offset = %d at top, want 0", m.scrollOffset)
	}

	for range 100 {
		h.SendKey("j")
	}
	if m.scrollOffset != m.maxScroll() {
		t.Errorf("scroll offset = %d, want max %d", m.scrollOffset, m.maxScroll())
	}
}

func TestHelpBindings_NoScrollWhenContentFits(t *testing.T) {
	m, h := newTestHelpPopup([]string{"rows"}, 40)
	h.SendKey("j")
	if m.scrollOffset != 0 {
		t.Errorf("scroll offset = %d, want 0", m.scrollOffset)
	}
	if h.ViewContains("scroll") {
		t.Error("footer offers scrolling for content that fits")
	}
}

func TestHelpBindings_View(t *testing.T) {
	_, h := newTestHelpPopup(AllContexts, 100)

	for _, want := range []string{"Help", "Global", "List", "Selected Row", "All Rows", "Reveal leading panel", "space", "close"} {
		if !h.ViewContains(want) {
			t.Errorf("view does not contain %q", want)
		}
	}
}

func TestHelpBindings_ContextOrder(t *testing.T) {
	_, h := newTestHelpPopup([]string{"rows", "global"}, 100)

	view := testutil.StripANSI(h.View())
	global := strings.Index(view, "Global")
	rows := strings.Index(view, "All Rows")
	if global == -1 || rows == -1 {
		t.Fatalf("missing categories in %q", view)
	}
	if global > rows {
		t.Error("Global should appear before All Rows regardless of SetContexts order")
	}
}

func TestHelpBindings_EmptyViewWhenNoSize(t *testing.T) {
	m := New()
	if got := m.View(); got != "" {
		t.Errorf("view = %q, want empty without a size", got)
	}
}
