package ports

import (
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/spf13/pflag"
)

// ConfigLoader defines the interface for loading the application settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load merges defaults, the settings file at path (or the default file when path is empty),
	// the environment and the explicitly set flags, in increasing order of precedence.
	Load(path string, flags *pflag.FlagSet) (*domain.Settings, error)
}
