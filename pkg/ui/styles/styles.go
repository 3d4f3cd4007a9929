// Package styles defines the visual styling for simenv's terminal output.
//
// Styles have semantic names (Header, Variable, Added, Prior, ...) and
// adaptive colors that follow the terminal's light or dark background.
// Definitions live in the embedded styles.yaml.
package styles

import (
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var (
	loadOnce sync.Once
	loaded   Config
	loadErr  error
)

// Load parses the embedded style sheet once
func Load() (Config, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(embeddedStyles)
	})
	return loaded, loadErr
}

// Parse decodes a style sheet
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse styles data: %w", err)
	}
	return cfg, nil
}

// Sheet is a set of styles bound to one output
type Sheet struct {
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
}

// NewSheet builds the styles for w. With colored false every style renders
// as plain text, keeping layout (padding, margins) intact.
func NewSheet(w io.Writer, colored bool) *Sheet {
	r := lipgloss.NewRenderer(w)
	if !colored {
		r.SetColorProfile(termenv.Ascii)
	}

	s := &Sheet{renderer: r, styles: make(map[string]lipgloss.Style)}

	cfg, err := Load()
	if err != nil {
		return s
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	for name, def := range cfg.Styles {
		s.styles[name] = buildStyle(r, def, colors, colored)
	}
	return s
}

func buildStyle(r *lipgloss.Renderer, def StyleDef, colors map[string]lipgloss.AdaptiveColor, colored bool) lipgloss.Style {
	style := r.NewStyle()

	if colored {
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
	}

	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}
	return style
}

// Get returns a named style, or an unstyled one
func (s *Sheet) Get(name string) lipgloss.Style {
	if style, ok := s.styles[name]; ok {
		return style
	}
	return s.renderer.NewStyle()
}

// Render is shorthand for s.Get(name).Render(text)
func (s *Sheet) Render(name, text string) string {
	return s.Get(name).Render(text)
}
