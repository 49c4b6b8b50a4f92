package topics

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderer formats a topic for display. ext is the extension of the file
// the topic was loaded from.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer shows topics as written.
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, _ string) string {
	return content
}

// MarkdownRenderer renders .md topics for a terminal with glamour. Other
// topics, and any topic glamour fails on, are shown as written.
type MarkdownRenderer struct {
	style string
	width int

	once sync.Once
	term *glamour.TermRenderer
	err  error
}

// NewMarkdownRenderer creates a renderer using the glamour style (a
// standard style name, a style file, or "auto" to follow the terminal
// background). width wraps words; zero keeps glamour's default.
func NewMarkdownRenderer(style string, width int) *MarkdownRenderer {
	return &MarkdownRenderer{style: style, width: width}
}

func (r *MarkdownRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	r.once.Do(r.init)
	if r.err != nil {
		return content
	}
	rendered, err := r.term.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimLeft(rendered, "\n")
}

func (r *MarkdownRenderer) init() {
	var options []glamour.TermRendererOption
	if r.style == "" || r.style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStylePath(r.style))
	}
	if r.width > 0 {
		options = append(options, glamour.WithWordWrap(r.width))
	}
	r.term, r.err = glamour.NewTermRenderer(options...)
}
