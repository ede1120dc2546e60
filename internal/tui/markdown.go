package tui

import (
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
)

// Renderer turns assistant markdown into terminal text of at most width columns.
type Renderer interface {
	Render(markdown string, width int) (string, error)
}

// NewRenderer returns the renderer for a MARKDOWN_STYLE value. "plain"
// disables markdown styling; any other value names a glamour style.
func NewRenderer(style string) Renderer {
	if style == "plain" {
		return PlainRenderer{}
	}
	return NewGlamourRenderer(style)
}

// PlainRenderer wraps markdown source without styling it.
type PlainRenderer struct{}

func (PlainRenderer) Render(markdown string, width int) (string, error) {
	if width <= 0 {
		return markdown, nil
	}
	return ansi.Wrap(markdown, width, ""), nil
}

// GlamourRenderer renders markdown with a glamour style. It keeps the term
// renderer and output cache for the most recent width only, since replies
// repeat on every redraw but a resize invalidates them all.
type GlamourRenderer struct {
	style string

	mu       sync.Mutex
	width    int
	renderer *glamour.TermRenderer
	cache    map[string]string
}

// NewGlamourRenderer creates a renderer for the named glamour style.
func NewGlamourRenderer(style string) *GlamourRenderer {
	return &GlamourRenderer{
		style: style,
		cache: make(map[string]string),
	}
}

func (g *GlamourRenderer) Render(markdown string, width int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.renderer == nil || g.width != width {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(g.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		g.renderer = tr
		g.width = width
		clear(g.cache)
	}

	if out, ok := g.cache[markdown]; ok {
		return out, nil
	}
	out, err := g.renderer.Render(markdown)
	if err != nil {
		return "", err
	}
	g.cache[markdown] = out
	return out, nil
}
