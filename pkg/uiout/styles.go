package uiout

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStylesData []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Theme represents the complete styles configuration
type Theme struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Styles maps semantic names to lipgloss styles
type Styles map[string]lipgloss.Style

// fieldStyles maps field names to the semantic style used to show them.
var fieldStyles = map[string]string{
	"bkptno": "Number",
	"number": "Number",
	"addr":   "Address",
	"func":   "Function",
	"what":   "What",
}

// DefaultStyles builds the embedded theme for a renderer bound to w so that
// color detection follows the actual output.
func DefaultStyles(w io.Writer) (Styles, error) {
	return LoadStyles(lipgloss.NewRenderer(w), defaultStylesData)
}

// LoadStyles parses a YAML theme into styles created by r.
func LoadStyles(r *lipgloss.Renderer, data []byte) (Styles, error) {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(theme.Colors))
	for name, def := range theme.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styles := make(Styles, len(theme.Styles))
	for name, def := range theme.Styles {
		styles[name] = buildStyle(r, def, colors)
	}
	return styles, nil
}

func buildStyle(r *lipgloss.Renderer, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	return style
}

// Render applies the named style to s. Unknown names and nil Styles
// return s unchanged.
func (s Styles) Render(name, text string) string {
	if s == nil {
		return text
	}
	style, ok := s[name]
	if !ok {
		return text
	}
	return style.Render(text)
}

// RenderField applies the style associated with a field name.
func (s Styles) RenderField(field, text string) string {
	name, ok := fieldStyles[field]
	if !ok {
		return text
	}
	return s.Render(name, text)
}
