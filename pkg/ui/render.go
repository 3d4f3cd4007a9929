// Package ui renders simenv results for people and for other programs.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/simenv/pkg/doctor"
	"github.com/arthur-debert/simenv/pkg/environ"
	serrors "github.com/arthur-debert/simenv/pkg/errors"
	"github.com/arthur-debert/simenv/pkg/ui/styles"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ChangesView is what `simenv show` prints
type ChangesView struct {
	Profile   string           `json:"profile" yaml:"profile"`
	Home      string           `json:"home" yaml:"home"`
	Separator string           `json:"separator" yaml:"separator"`
	Changes   []environ.Change `json:"changes" yaml:"changes"`
}

// ProfileSummary is one line of `simenv profiles`
type ProfileSummary struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Active      bool     `json:"active" yaml:"active"`
	Variables   []string `json:"variables" yaml:"variables"`
}

// RenderChanges writes the before/after view of a composition.
// f must be resolved (not FormatAuto).
func RenderChanges(w io.Writer, f Format, view ChangesView) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, view)
	case FormatYAML:
		return writeYAML(w, view)
	case FormatDotenv:
		values := make(map[string]string, len(view.Changes))
		for _, c := range view.Changes {
			values[c.Variable] = c.After
		}
		out, err := godotenv.Marshal(values)
		if err != nil {
			return serrors.Wrap(err, serrors.ErrInternal, "failed to encode dotenv")
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}

	sheet := styles.NewSheet(w, f == FormatTerminal)
	var b strings.Builder

	home := view.Home
	if home == "" {
		home = "(unset)"
	}
	b.WriteString(sheet.Render("Header", fmt.Sprintf("%s  HOME=%s", view.Profile, home)))
	b.WriteString("\n")

	for _, c := range view.Changes {
		b.WriteString(sheet.Render("Variable", c.Variable))
		b.WriteString("\n")

		marker := "+ "
		if !strings.HasSuffix(c.After, view.Separator+c.Before) {
			marker = "= "
		}
		for _, entry := range c.Added(view.Separator) {
			b.WriteString(sheet.Render("Item", sheet.Render("Added", marker+entry)))
			b.WriteString("\n")
		}

		prior := "(unset)"
		if c.WasSet {
			prior = c.Before
		}
		b.WriteString(sheet.Render("Item", sheet.Render("Prior", "was "+prior)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderReport writes a doctor report
func RenderReport(w io.Writer, f Format, report doctor.Report) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatYAML:
		return writeYAML(w, report)
	case FormatDotenv:
		return serrors.New(serrors.ErrInvalidInput, "dotenv output is only available for environments")
	}

	sheet := styles.NewSheet(w, f == FormatTerminal)
	var b strings.Builder

	b.WriteString(sheet.Render("Header", fmt.Sprintf("%s  %d directories, %d missing", report.Profile, len(report.Dirs), report.Missing())))
	b.WriteString("\n")

	current := ""
	for _, d := range report.Dirs {
		if d.Variable != current {
			current = d.Variable
			b.WriteString(sheet.Render("Variable", fmt.Sprintf("%s (%s)", d.Variable, d.Kind)))
			b.WriteString("\n")
		}

		if !d.Exists {
			b.WriteString(sheet.Render("Item", sheet.Render("Missing", "✗ "+d.Path)))
			b.WriteString("\n")
			continue
		}
		b.WriteString(sheet.Render("Item", sheet.Render("Added", "✓ "+d.Path)))
		b.WriteString("\n")

		for _, m := range d.Models {
			line := "model " + m.Name
			if m.Version != "" {
				line += " " + m.Version
			}
			b.WriteString(sheet.Render("Item", sheet.Render("Item", sheet.Render("Muted", line))))
			b.WriteString("\n")
		}
		for _, wl := range d.Worlds {
			b.WriteString(sheet.Render("Item", sheet.Render("Item", sheet.Render("Muted", "world "+wl.Name))))
			b.WriteString("\n")
		}
		for _, p := range d.Plugins {
			b.WriteString(sheet.Render("Item", sheet.Render("Item", sheet.Render("Muted", "plugin "+p))))
			b.WriteString("\n")
		}
	}

	for _, warning := range report.Warnings {
		b.WriteString(sheet.Render("Warning", "warning: ") + warning)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderProfiles writes the list of configured profiles
func RenderProfiles(w io.Writer, f Format, profiles []ProfileSummary) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, profiles)
	case FormatYAML:
		return writeYAML(w, profiles)
	case FormatDotenv:
		return serrors.New(serrors.ErrInvalidInput, "dotenv output is only available for environments")
	}

	sheet := styles.NewSheet(w, f == FormatTerminal)
	var b strings.Builder
	for _, p := range profiles {
		marker := "  "
		if p.Active {
			marker = "* "
		}
		b.WriteString(marker + sheet.Render("Variable", p.Name))
		if p.Description != "" {
			b.WriteString("  " + sheet.Render("Muted", p.Description))
		}
		b.WriteString("\n")
		b.WriteString(sheet.Render("Item", sheet.Render("Item", strings.Join(p.Variables, " "))))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return serrors.Wrap(err, serrors.ErrInternal, "failed to encode json")
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return serrors.Wrap(err, serrors.ErrInternal, "failed to encode yaml")
	}
	return enc.Close()
}
