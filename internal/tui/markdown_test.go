package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestNewRenderer(t *testing.T) {
	if _, ok := NewRenderer("plain").(PlainRenderer); !ok {
		t.Error("expected PlainRenderer for plain style")
	}
	if _, ok := NewRenderer("dark").(*GlamourRenderer); !ok {
		t.Error("expected GlamourRenderer for dark style")
	}
}

func TestPlainRendererWraps(t *testing.T) {
	out, err := PlainRenderer{}.Render("one two three four", 9)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	for _, line := range strings.Split(out, "\n") {
		if ansi.StringWidth(line) > 9 {
			t.Errorf("line %q wider than 9 columns", line)
		}
	}
}

func TestGlamourRendererRendersAndCaches(t *testing.T) {
	r := NewGlamourRenderer("notty")

	first, err := r.Render("# Budget\n\n**Total:** 45 Crores", 60)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	plain := ansi.Strip(first)
	if !strings.Contains(plain, "Budget") || !strings.Contains(plain, "45 Crores") {
		t.Errorf("unexpected render output: %q", plain)
	}
	if strings.Contains(plain, "**Total:**") {
		t.Errorf("markdown emphasis was not rendered: %q", plain)
	}

	second, err := r.Render("# Budget\n\n**Total:** 45 Crores", 60)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if first != second {
		t.Error("expected identical cached output")
	}
	if len(r.cache) != 1 {
		t.Errorf("cache holds %d entries, want 1", len(r.cache))
	}
}

func TestGlamourRendererDropsCacheOnResize(t *testing.T) {
	r := NewGlamourRenderer("notty")

	for _, md := range []string{"# Budget", "# Impact", "# Overview"} {
		if _, err := r.Render(md, 60); err != nil {
			t.Fatalf("Render() error: %v", err)
		}
	}
	if len(r.cache) != 3 {
		t.Fatalf("cache holds %d entries, want 3", len(r.cache))
	}

	for _, width := range []int{70, 80, 90} {
		if _, err := r.Render("# Budget", width); err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if r.width != width {
			t.Errorf("renderer width = %d, want %d", r.width, width)
		}
		if len(r.cache) != 1 {
			t.Errorf("after resize to %d cache holds %d entries, want 1", width, len(r.cache))
		}
	}
}
