package shell

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/simenv/pkg/environ"
)

// Script renders the profile as a sequence of assignments that reference
// each variable's prior value, so evaluating it behaves like sourcing the
// original setup script: re-evaluating it in the same shell prepends again.
//
// When home is empty $HOME is left for the shell to expand; otherwise it is
// replaced with home. Other variable references always stay symbolic.
func Script(p environ.Profile, home string, d Dialect) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# simenv profile %s\n", p.Name)

	sep := p.Sep()
	for _, step := range p.Steps {
		// Compose leaves the variable alone in this case too
		if step.Mode == environ.ModeSet && len(step.Entries) == 0 {
			continue
		}

		parts := make([]string, 0, len(step.Entries)+1)
		for _, entry := range step.Entries {
			parts = append(parts, symbolic(entry, home, d))
		}

		var value string
		switch step.Mode {
		case environ.ModeSet:
			value = parts[0]
		default:
			parts = append(parts, reference(step.Variable, d))
			value = strings.Join(parts, escapeDouble(sep, d))
		}

		if d.IsPOSIX() {
			fmt.Fprintf(&b, "export %s=\"%s\"\n", step.Variable, value)
		} else {
			fmt.Fprintf(&b, "set -gx %s \"%s\"\n", step.Variable, value)
		}
	}
	return b.String()
}

// Exports renders final values as literals. The values were composed on top
// of the environment simenv ran in, so re-running simenv and evaluating its
// fresh output still prepends again.
func Exports(changes []environ.Change, d Dialect) string {
	var b strings.Builder
	for _, c := range changes {
		if d.IsPOSIX() {
			fmt.Fprintf(&b, "export %s=%s\n", c.Variable, QuotePOSIX(c.After))
		} else {
			fmt.Fprintf(&b, "set -gx %s %s\n", c.Variable, QuoteFish(c.After))
		}
	}
	return b.String()
}

// InitSnippet is the line users add to their shell rc file
func InitSnippet(binary string, d Dialect) string {
	if d == Fish {
		return fmt.Sprintf("%s script --shell fish | source", binary)
	}
	return fmt.Sprintf(`eval "$(%s script --shell %s)"`, binary, d)
}

// QuotePOSIX single-quotes s for sh-compatible shells
func QuotePOSIX(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// QuoteFish single-quotes s for fish, where only \ and ' need escaping
func QuoteFish(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

// symbolic renders an entry for a double-quoted context, substituting home
// and keeping other references for the shell to resolve
func symbolic(entry, home string, d Dialect) string {
	if d == Fish {
		return symbolicFish(entry, home)
	}
	return os.Expand(escapeDouble(entry, d), func(name string) string {
		if name == environ.HomeVar && home != "" {
			return strings.ReplaceAll(escapeDouble(home, d), "$", `\$`)
		}
		return reference(name, d)
	})
}

// symbolicFish is symbolic for fish, which has no ${NAME} form inside double
// quotes. A bare $NAME runs to the last name character, so a reference
// followed by one is cut off with an empty "" pair.
func symbolicFish(entry, home string) string {
	var names []string
	skeleton := os.Expand(strings.ReplaceAll(entry, "\x00", ""), func(name string) string {
		names = append(names, name)
		return "\x00"
	})
	literals := strings.Split(skeleton, "\x00")

	var b strings.Builder
	b.WriteString(escapeDouble(literals[0], Fish))
	for i, name := range names {
		next := literals[i+1]
		if name == environ.HomeVar && home != "" {
			b.WriteString(escapeDouble(home, Fish))
		} else {
			b.WriteString(reference(name, Fish))
			if next != "" && isNameByte(next[0]) {
				b.WriteString(`""`)
			}
		}
		b.WriteString(escapeDouble(next, Fish))
	}
	return b.String()
}

func reference(name string, d Dialect) string {
	if d == Fish {
		return "$" + name
	}
	return "${" + name + "}"
}

func isNameByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// escapeDouble escapes characters that are special inside double quotes.
// POSIX callers handle $ themselves; fish output never carries a literal $.
func escapeDouble(s string, d Dialect) string {
	if d == Fish {
		return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`).Replace(s)
	}
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`").Replace(s)
}
