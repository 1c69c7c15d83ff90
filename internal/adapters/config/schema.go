package config

import "github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"

// DefaultFile is the settings file looked up in the working directory when none is given.
const DefaultFile = ".pdb.yaml"

// EnvPrefix is the prefix of environment variables that override settings, as in PDB_WORKERS.
const EnvPrefix = "PDB_"

// Settings keys, matching the koanf tags of domain.Settings.
const (
	KeyRoots          = "roots"
	KeyInclude        = "include"
	KeyExclude        = "exclude"
	KeyExtension      = "extension"
	KeyIgnoreFailures = "ignore_failures"
	KeyWorkers        = "workers"
	KeyFormat         = "format"
	KeyLogLevel       = "log_level"
	KeyProtectedDirs  = "protected_dirs"
	KeyProjects       = "projects"
)

// listKeys hold path lists. Their environment values are split with the OS list separator.
var listKeys = map[string]bool{
	KeyRoots:         true,
	KeyProtectedDirs: true,
}

// flagKeys maps flag names whose key is not the snake_case form of the name.
var flagKeys = map[string]string{
	"root":          KeyRoots,
	"protected-dir": KeyProtectedDirs,
}

func defaults() map[string]any {
	d := domain.DefaultSettings()
	return map[string]any{
		KeyRoots:          d.Roots,
		KeyInclude:        d.Include,
		KeyExclude:        d.Exclude,
		KeyExtension:      d.Extension,
		KeyIgnoreFailures: d.IgnoreFailures,
		KeyWorkers:        d.Workers,
		KeyFormat:         d.Format,
		KeyLogLevel:       d.LogLevel,
		KeyProjects:       d.Projects,
	}
}
