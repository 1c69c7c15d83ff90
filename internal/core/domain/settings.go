package domain

import "go.trai.ch/zerr"

// Output formats understood by the renderers.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Settings holds the user-facing configuration of a discovery.
type Settings struct {
	Roots          []string `koanf:"roots"`
	Include        string   `koanf:"include"`
	Exclude        string   `koanf:"exclude"`
	Extension      string   `koanf:"extension"`
	IgnoreFailures bool     `koanf:"ignore_failures"`
	Workers        int      `koanf:"workers"`
	Format         string   `koanf:"format"`
	LogLevel       string   `koanf:"log_level"`
	ProtectedDirs  []string `koanf:"protected_dirs"`
	Projects       bool     `koanf:"projects"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Roots:     []string{"."},
		Extension: SolutionExtension,
		Format:    FormatText,
		LogLevel:  "info",
	}
}

// Validate checks the settings for values no component can work with.
func (s *Settings) Validate() error {
	if len(s.Roots) == 0 {
		return ErrNoRoots
	}
	if s.Workers < 0 {
		return zerr.With(ErrInvalidWorkers, "workers", s.Workers)
	}
	switch s.Format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return zerr.With(ErrInvalidFormat, "format", s.Format)
	}
}

// Mode returns the failure mode the settings ask for, recording into sink when tolerant.
func (s *Settings) Mode(sink *ErrorRecord) FailureMode {
	if s.IgnoreFailures {
		return Tolerant(sink)
	}
	return Strict()
}
