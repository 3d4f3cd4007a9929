package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/simenv/pkg/environ"
	serrors "github.com/arthur-debert/simenv/pkg/errors"
	"github.com/arthur-debert/simenv/pkg/logging"
	"github.com/arthur-debert/simenv/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix marks environment variables that override top-level settings
const EnvPrefix = "SIMENV_"

// keys that may be set from SIMENV_* variables
var envKeys = map[string]bool{
	"home":      true,
	"profile":   true,
	"separator": true,
}

// Step is one assignment as written in a config file
type Step struct {
	Variable string   `koanf:"variable" toml:"variable" yaml:"variable"`
	Mode     string   `koanf:"mode" toml:"mode" yaml:"mode"`
	Entries  []string `koanf:"entries" toml:"entries" yaml:"entries"`
}

// Profile is a named, ordered list of steps
type Profile struct {
	Description string `koanf:"description" toml:"description,omitempty" yaml:"description,omitempty"`
	Separator   string `koanf:"separator" toml:"separator,omitempty" yaml:"separator,omitempty"`
	Steps       []Step `koanf:"steps" toml:"steps" yaml:"steps"`
}

// Config is the merged configuration
type Config struct {
	// Home overrides $HOME for entry expansion
	Home      string             `koanf:"home" toml:"home,omitempty" yaml:"home,omitempty"`
	Separator string             `koanf:"separator" toml:"separator" yaml:"separator"`
	Profile   string             `koanf:"profile" toml:"profile" yaml:"profile"`
	Profiles  map[string]Profile `koanf:"profiles" toml:"profiles" yaml:"profiles"`

	// Source is the user config file that was loaded, if any
	Source string `koanf:"-" toml:"-" yaml:"-"`
}

// Options controls where Load looks and what it overrides
type Options struct {
	// ConfigFile is an explicit config path. When set, it must exist.
	ConfigFile string
	// Overrides are applied last, typically from command-line flags.
	// Empty string values are ignored.
	Overrides map[string]string
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load merges, in increasing priority: embedded defaults, the user config
// file, SIMENV_* environment variables and opts.Overrides.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, serrors.Wrap(err, serrors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. User config file
	path := opts.ConfigFile
	explicit := path != ""
	if !explicit {
		path = paths.ConfigFile()
	}
	path = paths.ExpandHome(path)

	var source string
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, serrors.Wrapf(err, serrors.ErrConfigParse, "failed to parse config %s", path)
		}
		source = path
		logger.Debug().Str("path", path).Msg("Loaded user config")
	} else if explicit {
		return nil, serrors.Wrapf(err, serrors.ErrConfigLoad, "config file %s", path)
	} else {
		logger.Trace().Str("path", path).Msg("No user config")
	}

	// 3. Environment
	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(s, v string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if !envKeys[key] || v == "" {
			return "", nil
		}
		return key, v
	}), nil)
	if err != nil {
		return nil, serrors.Wrap(err, serrors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Flag overrides
	overrides := make(map[string]interface{}, len(opts.Overrides))
	for key, value := range opts.Overrides {
		if value != "" {
			overrides[key] = value
		}
	}
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return nil, serrors.Wrap(err, serrors.ErrConfigLoad, "failed to apply overrides")
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, serrors.Wrap(err, serrors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = source

	if _, ok := cfg.Profiles[cfg.Profile]; !ok {
		return nil, serrors.Newf(serrors.ErrProfileNotFound, "no profile named %q", cfg.Profile).
			WithDetail("available", cfg.ProfileNames())
	}

	return &cfg, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// ProfileNames lists configured profiles in sorted order
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ActiveProfile converts the selected profile into its validated form
func (c *Config) ActiveProfile() (environ.Profile, error) {
	return c.BuildProfile(c.Profile)
}

// BuildProfile converts a named profile into its validated form
func (c *Config) BuildProfile(name string) (environ.Profile, error) {
	raw, ok := c.Profiles[name]
	if !ok {
		return environ.Profile{}, serrors.Newf(serrors.ErrProfileNotFound, "no profile named %q", name).
			WithDetail("available", c.ProfileNames())
	}

	sep := raw.Separator
	if sep == "" {
		sep = c.Separator
	}

	p := environ.Profile{
		Name:        name,
		Description: raw.Description,
		Separator:   sep,
		Steps:       make([]environ.Assignment, 0, len(raw.Steps)),
	}
	for i, step := range raw.Steps {
		mode, err := environ.ParseMode(step.Mode)
		if err != nil {
			return environ.Profile{}, serrors.Wrapf(err, serrors.ErrConfigValid, "profile %s step %d", name, i+1)
		}
		p.Steps = append(p.Steps, environ.Assignment{
			Variable: strings.TrimSpace(step.Variable),
			Mode:     mode,
			Entries:  step.Entries,
		})
	}

	if err := p.Validate(); err != nil {
		return environ.Profile{}, serrors.Wrapf(err, serrors.ErrConfigValid, "profile %s", name)
	}
	return p, nil
}

// ResolveHome returns the configured home override, or the value read from env
func (c *Config) ResolveHome(e environ.Env) string {
	if c.Home != "" {
		return paths.ExpandHome(c.Home)
	}
	return e.Get("HOME")
}

// String gives a short description for logs
func (c *Config) String() string {
	return fmt.Sprintf("profile=%s profiles=%d source=%q", c.Profile, len(c.Profiles), c.Source)
}
