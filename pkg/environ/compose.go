package environ

import (
	"os"
	"strings"
)

// Compose applies the profile to a copy of current and returns it.
// home resolves $HOME inside entries; an empty home expands to an empty
// segment. current is never modified.
func Compose(current Env, home string, p Profile) Env {
	out := current.Clone()
	sep := p.Sep()

	for _, step := range p.Steps {
		switch step.Mode {
		case ModeSet:
			if len(step.Entries) > 0 {
				out[step.Variable] = Expand(step.Entries[0], home, out)
			}
		default:
			parts := make([]string, 0, len(step.Entries)+1)
			for _, entry := range step.Entries {
				parts = append(parts, Expand(entry, home, out))
			}
			parts = append(parts, out[step.Variable])
			out[step.Variable] = strings.Join(parts, sep)
		}
	}

	return out
}

// Expand resolves variable references in an entry. HOME comes from home,
// everything else from env; unset variables expand to "".
func Expand(entry, home string, env Env) string {
	return os.Expand(entry, func(name string) string {
		if name == HomeVar {
			return home
		}
		return env[name]
	})
}

// Change records what composition did to one variable
type Change struct {
	Variable string `json:"variable" yaml:"variable"`
	Before   string `json:"before" yaml:"before"`
	After    string `json:"after" yaml:"after"`
	WasSet   bool   `json:"was_set" yaml:"was_set"`
}

// Added returns the entries After gained in front of Before, split on sep.
// For values that were overwritten it returns the whole new value.
func (c Change) Added(sep string) []string {
	if c.Before != "" && strings.HasSuffix(c.After, sep+c.Before) {
		head := strings.TrimSuffix(c.After, sep+c.Before)
		return strings.Split(head, sep)
	}
	if c.Before == "" && strings.HasSuffix(c.After, sep) {
		return strings.Split(strings.TrimSuffix(c.After, sep), sep)
	}
	return []string{c.After}
}

// Diff reports the profile's target variables before and after composition
func Diff(before, after Env, p Profile) []Change {
	targets := p.Targets()
	changes := make([]Change, 0, len(targets))
	for _, name := range targets {
		prior, wasSet := before[name]
		changes = append(changes, Change{
			Variable: name,
			Before:   prior,
			After:    after[name],
			WasSet:   wasSet,
		})
	}
	return changes
}

// Directories lists every directory entry the profile contributes, expanded
// and in step order. Set assignments are skipped: they hold literals.
func Directories(p Profile, home string, env Env) map[string][]string {
	out := make(map[string][]string)
	for _, step := range p.Steps {
		if step.Mode == ModeSet {
			continue
		}
		for _, entry := range step.Entries {
			out[step.Variable] = append(out[step.Variable], Expand(entry, home, env))
		}
	}
	return out
}
