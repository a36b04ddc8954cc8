package headerbar

import (
	"strings"
	"testing"

	"github.com/llehouerou/swiperow/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	got := testutil.StripANSI(Render(Info{Total: 5, Unread: 2, Open: 1, MultiOpen: true, Filter: "milk"}, 80))

	if testutil.Width(got) != 80 {
		t.Errorf("width = %d, want 80", testutil.Width(got))
	}
	for _, want := range []string{"swiperow", "5 items", "2 unread", "1 open", "multi", "/milk"} {
		if !strings.Contains(got, want) {
			t.Errorf("header %q does not contain %q", got, want)
		}
	}
}

func TestRenderHidesInactiveParts(t *testing.T) {
	got := testutil.StripANSI(Render(Info{Total: 1}, 60))
	for _, unwanted := range []string{"open", "multi", "/"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("header %q should not contain %q", got, unwanted)
		}
	}
}

func TestRenderNarrow(t *testing.T) {
	if got := Render(Info{}, 10); got != "" {
		t.Errorf("narrow header = %q, want empty", got)
	}
	got := testutil.StripANSI(Render(Info{Total: 100, Unread: 100, Open: 10, MultiOpen: true}, 24))
	if got != "swiperow" {
		t.Errorf("crowded header = %q, want title only", got)
	}
}
