package environ

import (
	"fmt"
	"strings"
)

// DefaultSeparator joins search-path entries
const DefaultSeparator = ":"

// HomeVar is the variable name entries use to reference the home directory
const HomeVar = "HOME"

// Mode says how an assignment treats the prior value of its variable
type Mode string

const (
	// ModePrepend puts the entries in front of the prior value
	ModePrepend Mode = "prepend"
	// ModeSet overwrites the variable with a single literal value
	ModeSet Mode = "set"
)

// ParseMode accepts the config spelling of a mode
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePrepend, "":
		return ModePrepend, nil
	case ModeSet:
		return ModeSet, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want prepend or set)", s)
	}
}

// Assignment is a single export statement
type Assignment struct {
	Variable string
	Mode     Mode
	// Entries may reference $HOME, ${HOME} or any other variable
	Entries []string
}

// Profile is an ordered set of assignments that configure one toolchain
type Profile struct {
	Name        string
	Description string
	Separator   string
	Steps       []Assignment
}

// Sep returns the list separator, defaulting to ':'
func (p Profile) Sep() string {
	if p.Separator == "" {
		return DefaultSeparator
	}
	return p.Separator
}

// Targets lists the distinct variables the profile writes, in first-write order
func (p Profile) Targets() []string {
	seen := make(map[string]bool, len(p.Steps))
	var out []string
	for _, step := range p.Steps {
		if seen[step.Variable] {
			continue
		}
		seen[step.Variable] = true
		out = append(out, step.Variable)
	}
	return out
}

// Validate checks the shape of every step
func (p Profile) Validate() error {
	for i, step := range p.Steps {
		if step.Variable == "" {
			return fmt.Errorf("step %d: variable name is empty", i+1)
		}
		if strings.ContainsAny(step.Variable, "= \t\n") {
			return fmt.Errorf("step %d: invalid variable name %q", i+1, step.Variable)
		}
		switch step.Mode {
		case ModePrepend:
			if len(step.Entries) == 0 {
				return fmt.Errorf("step %d (%s): prepend needs at least one entry", i+1, step.Variable)
			}
		case ModeSet:
			if len(step.Entries) != 1 {
				return fmt.Errorf("step %d (%s): set needs exactly one entry, got %d", i+1, step.Variable, len(step.Entries))
			}
		default:
			return fmt.Errorf("step %d (%s): unknown mode %q", i+1, step.Variable, step.Mode)
		}
		for _, entry := range step.Entries {
			if err := checkReferences(entry); err != nil {
				return fmt.Errorf("step %d (%s): %w", i+1, step.Variable, err)
			}
		}
	}
	return nil
}

// checkReferences rejects entries whose ${...} forms expansion would
// silently drop
func checkReferences(entry string) error {
	if strings.ContainsRune(entry, 0) {
		return fmt.Errorf("entry %q contains a NUL byte", entry)
	}
	rest := entry
	for {
		i := strings.Index(rest, "${")
		if i < 0 {
			return nil
		}
		rest = rest[i+2:]
		end := strings.IndexByte(rest, '}')
		switch {
		case end < 0:
			return fmt.Errorf("unterminated ${ in entry %q", entry)
		case end == 0:
			return fmt.Errorf("empty ${} in entry %q", entry)
		}
		rest = rest[end+1:]
	}
}
