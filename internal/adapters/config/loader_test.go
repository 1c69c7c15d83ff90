package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/config"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports/mocks"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	l := config.NewLoader(log)
	l.Dir = t.TempDir()
	return l
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringSlice("root", []string{"."}, "")
	flags.String("include", "", "")
	flags.Int("workers", 0, "")
	flags.Bool("ignore-failures", false, "")
	flags.String("log-level", "info", "")
	flags.StringSlice("protected-dir", nil, "")
	return flags
}

func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Defaults(t *testing.T) {
	settings, err := newLoader(t).Load("", nil)
	require.NoError(t, err)

	want := domain.DefaultSettings()
	assert.Equal(t, want.Roots, settings.Roots)
	assert.Equal(t, want.Extension, settings.Extension)
	assert.Equal(t, want.Format, settings.Format)
	assert.Equal(t, want.LogLevel, settings.LogLevel)
	assert.Zero(t, settings.Workers)
	assert.False(t, settings.IgnoreFailures)
	assert.Empty(t, settings.ProtectedDirs)
}

func TestLoader_Precedence(t *testing.T) {
	l := newLoader(t)
	writeSettings(t, l.Dir, strings.Join([]string{
		"roots: [/from/file]",
		"include: file",
		"workers: 2",
		"format: yaml",
		"log_level: warn",
	}, "\n"))

	t.Setenv("PDB_WORKERS", "6")
	t.Setenv("PDB_LOG_LEVEL", "debug")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--log-level", "error", "--ignore-failures"}))

	settings, err := l.Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, []string{"/from/file"}, settings.Roots)
	assert.Equal(t, "file", settings.Include)
	assert.Equal(t, domain.FormatYAML, settings.Format)
	assert.Equal(t, 6, settings.Workers)
	assert.Equal(t, "error", settings.LogLevel)
	assert.True(t, settings.IgnoreFailures)
}

func TestLoader_FlagsOverrideLists(t *testing.T) {
	l := newLoader(t)
	writeSettings(t, l.Dir, "roots: [/from/file]\n")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{
		"--root", "/a", "--root", "/b",
		"--protected-dir", "/opt/vendor",
	}))

	settings, err := l.Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, settings.Roots)
	assert.Equal(t, []string{"/opt/vendor"}, settings.ProtectedDirs)
}

func TestLoader_UnsetFlagsKeepLowerLayers(t *testing.T) {
	l := newLoader(t)
	writeSettings(t, l.Dir, "roots: [/from/file]\nworkers: 3\n")

	settings, err := l.Load("", newFlags())
	require.NoError(t, err)
	assert.Equal(t, []string{"/from/file"}, settings.Roots)
	assert.Equal(t, 3, settings.Workers)
}

func TestLoader_EnvLists(t *testing.T) {
	t.Setenv("PDB_ROOTS", strings.Join([]string{"/one", "/two"}, string(os.PathListSeparator)))
	t.Setenv("PDB_INCLUDE", "shop web")

	settings, err := newLoader(t).Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/one", "/two"}, settings.Roots)
	assert.Equal(t, "shop web", settings.Include)
}

func TestLoader_ExplicitFile(t *testing.T) {
	l := newLoader(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extension: .csproj\nprojects: true\n"), 0o600))

	settings, err := l.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ".csproj", settings.Extension)
	assert.True(t, settings.Projects)
}

func TestLoader_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.ErrorIs(t, err, domain.ErrConfigReadFailed)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		l := newLoader(t)
		writeSettings(t, l.Dir, "roots: [unterminated\n")
		_, err := l.Load("", nil)
		require.ErrorIs(t, err, domain.ErrConfigReadFailed)
	})

	t.Run("invalid format", func(t *testing.T) {
		l := newLoader(t)
		writeSettings(t, l.Dir, "format: xml\n")
		_, err := l.Load("", nil)
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid output format")
	})

	t.Run("negative workers", func(t *testing.T) {
		t.Setenv("PDB_WORKERS", "-1")
		_, err := newLoader(t).Load("", nil)
		require.Error(t, err)
		assert.ErrorContains(t, err, "worker count must not be negative")
	})
}
