// Package config loads the pdb settings from defaults, a YAML file, the environment and flags.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"go.trai.ch/zerr"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader with koanf.
type Loader struct {
	Logger ports.Logger
	// Dir is searched for DefaultFile. Empty means the working directory.
	Dir string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load merges, in increasing order of precedence, the defaults, the settings file at path
// (DefaultFile when path is empty and the file exists), PDB_ environment variables and
// the flags that were set explicitly.
func (l *Loader) Load(path string, flags *pflag.FlagSet) (*domain.Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, zerr.Wrap(err, "failed to load default settings")
	}

	settingsFile, err := l.findFile(path)
	if err != nil {
		return nil, err
	}
	if settingsFile != "" {
		if err := k.Load(file.Provider(settingsFile), yaml.Parser()); err != nil {
			return nil, readError(zerr.Wrap(err, "failed to parse settings file"), settingsFile)
		}
		l.Logger.Debug("loaded settings from " + settingsFile)
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, zerr.Wrap(err, "failed to load environment settings")
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, zerr.Wrap(err, "failed to load flag settings")
		}
	}

	var settings domain.Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, readError(zerr.Wrap(err, "failed to decode settings"), settingsFile)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// findFile returns the settings file to read, or an empty string when there is none.
// An explicit path must exist.
func (l *Loader) findFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", readError(zerr.Wrap(err, "settings file not accessible"), path)
		}
		return path, nil
	}

	candidate := filepath.Join(l.Dir, DefaultFile)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", nil
}

// envValue maps PDB_LOG_LEVEL to log_level and splits path lists.
func envValue(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if listKeys[key] {
		return key, filepath.SplitList(value)
	}
	return key, value
}

// flagKey maps a kebab-case flag name to its settings key.
func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return strings.ReplaceAll(name, "-", "_")
}

func readError(err error, path string) error {
	return errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", path))
}
