package cli

import (
	"github.com/arthur-debert/simenv/pkg/config"
	"github.com/arthur-debert/simenv/pkg/environ"
	serrors "github.com/arthur-debert/simenv/pkg/errors"
	"github.com/arthur-debert/simenv/pkg/logging"
	"github.com/arthur-debert/simenv/pkg/ui"
	"github.com/joho/godotenv"
)

// globalOptions holds the persistent flags
type globalOptions struct {
	verbosity  int
	configFile string
	home       string
	profile    string
	envFile    string
	clean      bool
}

// session is everything a command needs to compose
type session struct {
	cfg     *config.Config
	profile environ.Profile
	base    environ.Env
	home    string
}

func (o *globalOptions) loadConfig() (*config.Config, error) {
	return config.Load(config.Options{
		ConfigFile: o.configFile,
		Overrides: map[string]string{
			"home":    o.home,
			"profile": o.profile,
		},
	})
}

// newSession loads configuration, the active profile and the base environment
func (o *globalOptions) newSession() (*session, error) {
	logger := logging.GetLogger("cli.session")

	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	p, err := cfg.ActiveProfile()
	if err != nil {
		return nil, err
	}

	base := environ.Env{}
	if !o.clean {
		base = environ.FromOS()
	}
	if o.envFile != "" {
		fileEnv, err := godotenv.Read(o.envFile)
		if err != nil {
			return nil, serrors.Wrapf(err, serrors.ErrConfigLoad, "cannot read env file %s", o.envFile)
		}
		base = base.Merge(environ.Env(fileEnv))
	}

	s := &session{
		cfg:     cfg,
		profile: p,
		base:    base,
		home:    cfg.ResolveHome(base),
	}

	logger.Debug().
		Str("profile", p.Name).
		Str("home", s.home).
		Str("source", cfg.Source).
		Int("steps", len(p.Steps)).
		Msg("Session ready")

	return s, nil
}

// composed returns the environment after applying the profile
func (s *session) composed() environ.Env {
	return environ.Compose(s.base, s.home, s.profile)
}

// changes returns the before/after pairs for the profile's variables
func (s *session) changes() []environ.Change {
	return environ.Diff(s.base, s.composed(), s.profile)
}

// view bundles the changes for rendering
func (s *session) view() ui.ChangesView {
	return ui.ChangesView{
		Profile:   s.profile.Name,
		Home:      s.home,
		Separator: s.profile.Sep(),
		Changes:   s.changes(),
	}
}
