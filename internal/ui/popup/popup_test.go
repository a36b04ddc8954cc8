package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCenter(t *testing.T) {
	got := Center("ab\ncd", 6, 4)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), got)
	}
	if lines[0] != "      " {
		t.Errorf("top padding = %q", lines[0])
	}
	if lines[1] != "  ab" || lines[2] != "  cd" {
		t.Errorf("centered lines = %q, %q", lines[1], lines[2])
	}
}

func TestCenterLargerThanScreen(t *testing.T) {
	got := Center("abcdef", 3, 0)
	if got != "abcdef" {
		t.Errorf("Center = %q, want unchanged", got)
	}
}

func TestRenderBorderedContainsContent(t *testing.T) {
	got := ansi.Strip(RenderBordered("hello", 40, 12, SizeAuto))
	if !strings.Contains(got, "hello") {
		t.Errorf("bordered popup lost its content: %q", got)
	}
	if !strings.Contains(got, "╭") {
		t.Errorf("bordered popup has no rounded border: %q", got)
	}
}

func TestDimensions(t *testing.T) {
	w, h := dimensions("hello", 80, 24, SizeAuto)
	if w != 11 || h != 5 {
		t.Errorf("auto size = %dx%d, want 11x5", w, h)
	}

	w, _ = dimensions(strings.Repeat("x", 100), 80, 24, SizeInput)
	if w != 60 {
		t.Errorf("input width = %d, want 60", w)
	}

	w, h = dimensions("x", 80, 20, SizeConfig{WidthPct: 50, HeightPct: 50})
	if w != 40 || h != 10 {
		t.Errorf("pct size = %dx%d, want 40x10", w, h)
	}
}
