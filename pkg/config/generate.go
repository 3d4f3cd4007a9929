package config

import (
	"os"
	"path/filepath"

	serrors "github.com/arthur-debert/simenv/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// DefaultContent returns the embedded default configuration
func DefaultContent() []byte {
	out := make([]byte, len(defaultConfig))
	copy(out, defaultConfig)
	return out
}

// Dump serializes the effective configuration as TOML
func Dump(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, serrors.Wrap(err, serrors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}

// WriteDefault writes the embedded defaults to path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return serrors.Newf(serrors.ErrAlreadyExists, "%s already exists", path).
			WithDetail("path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return serrors.Wrapf(err, serrors.ErrFileWrite, "cannot create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, defaultConfig, 0644); err != nil {
		return serrors.Wrapf(err, serrors.ErrFileWrite, "cannot write %s", path)
	}
	return nil
}
