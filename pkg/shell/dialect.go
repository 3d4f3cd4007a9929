// Package shell renders composed environments as code a shell can source.
package shell

import (
	"path/filepath"
	"strings"

	serrors "github.com/arthur-debert/simenv/pkg/errors"
)

// Dialect is a family of shells sharing assignment syntax
type Dialect string

const (
	Bash Dialect = "bash"
	Zsh  Dialect = "zsh"
	Sh   Dialect = "sh"
	Fish Dialect = "fish"
)

// Dialects lists the supported dialect names
func Dialects() []string {
	return []string{string(Bash), string(Zsh), string(Sh), string(Fish)}
}

// ParseDialect maps a shell name or path to its dialect
func ParseDialect(s string) (Dialect, error) {
	name := strings.ToLower(filepath.Base(strings.TrimSpace(s)))
	switch name {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "sh", "dash", "ash", "ksh", "mksh":
		return Sh, nil
	case "fish":
		return Fish, nil
	default:
		return "", serrors.Newf(serrors.ErrShellUnsupported, "unsupported shell %q", s).
			WithDetail("supported", Dialects())
	}
}

// DetectDialect guesses the dialect from a $SHELL value, falling back to bash
func DetectDialect(shellPath string) Dialect {
	if shellPath == "" {
		return Bash
	}
	d, err := ParseDialect(shellPath)
	if err != nil {
		return Bash
	}
	return d
}

// IsPOSIX reports whether the dialect uses export NAME=value syntax
func (d Dialect) IsPOSIX() bool {
	return d != Fish
}
