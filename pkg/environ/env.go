package environ

import (
	"os"
	"sort"
	"strings"
)

// Env is a process environment keyed by variable name.
// A missing key means the variable is unset.
type Env map[string]string

// FromOS snapshots the current process environment
func FromOS() Env {
	return FromList(os.Environ())
}

// FromList parses KEY=VALUE pairs. Entries without '=' are ignored and
// later duplicates win, matching how exec treats a duplicated key.
func FromList(pairs []string) Env {
	env := make(Env, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Clone returns an independent copy
func (e Env) Clone() Env {
	out := make(Env, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Get returns the value of key, or "" when unset
func (e Env) Get(key string) string {
	return e[key]
}

// Lookup reports whether key is set
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// Merge overlays other on top of e and returns the result. Neither input is modified.
func (e Env) Merge(other Env) Env {
	out := e.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Keys returns variable names in sorted order
func (e Env) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List renders the environment as sorted KEY=VALUE pairs, the form exec.Cmd expects
func (e Env) List() []string {
	keys := e.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+e[k])
	}
	return out
}

// Apply exports the named variables from e into the current process.
// Variables missing from e are unset.
func Apply(e Env, vars []string) error {
	for _, name := range vars {
		value, ok := e[name]
		if !ok {
			if err := os.Unsetenv(name); err != nil {
				return err
			}
			continue
		}
		if err := os.Setenv(name, value); err != nil {
			return err
		}
	}
	return nil
}
