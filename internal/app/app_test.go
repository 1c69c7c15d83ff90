package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/msbuild"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/registry"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/sln"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/telemetry"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/app"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports/mocks"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/engine/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const projectXML = `<Project Sdk="Microsoft.NET.Sdk"><PropertyGroup><TargetFramework>net8.0</TargetFramework></PropertyGroup></Project>`

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func solutionText(rels ...string) string {
	var b strings.Builder
	b.WriteString("Microsoft Visual Studio Solution File, Format Version 12.00\n")
	for i, rel := range rels {
		name := strings.TrimSuffix(filepath.Base(filepath.FromSlash(rel)), ".csproj")
		fmt.Fprintf(&b, "Project(\"{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}\") = \"%s\", \"%s\", \"{%d}\"\nEndProject\n", name, rel, i)
	}
	return b.String()
}

// workspace lays out A.sln -> P1, P2 and B.sln -> P1.
func workspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "p1", "P1.csproj"), projectXML)
	writeFile(t, filepath.Join(root, "p2", "P2.csproj"), projectXML)
	writeFile(t, filepath.Join(root, "a", "A.sln"), solutionText("../p1/P1.csproj", "../p2/P2.csproj"))
	writeFile(t, filepath.Join(root, "b", "B.sln"), solutionText("../p1/P1.csproj"))
	return root
}

type fixture struct {
	app    *app.App
	loader *mocks.MockConfigLoader
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	tel := telemetry.NewNoOp()
	res := resolver.NewResolver(sln.NewParser(log), msbuild.NewLoader(log), log, tel)
	loader := mocks.NewMockConfigLoader(ctrl)

	return fixture{app: app.New(loader, res, log, tel), loader: loader}
}

func (f fixture) settings(s domain.Settings) {
	f.loader.EXPECT().Load("", nil).Return(&s, nil)
}

func settingsFor(root, format string) domain.Settings {
	s := domain.DefaultSettings()
	s.Roots = []string{root}
	s.Format = format
	return s
}

type summary struct {
	Summary struct {
		Solutions int `json:"solutions"`
		Projects  int `json:"projects"`
		Failures  int `json:"failures"`
	} `json:"summary"`
	Projects []struct {
		Name      string   `json:"name"`
		Solutions []string `json:"solutions"`
	} `json:"projects"`
	Failures []struct {
		Path string `json:"path"`
	} `json:"failures"`
}

func decode(t *testing.T, buf *bytes.Buffer) summary {
	t.Helper()
	var s summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &s))
	return s
}

func TestApp_Scan(t *testing.T) {
	root := workspace(t)
	f := newFixture(t)
	f.settings(settingsFor(root, domain.FormatJSON))

	var buf bytes.Buffer
	require.NoError(t, f.app.Scan(context.Background(), &buf, app.Options{}))

	doc := decode(t, &buf)
	assert.Equal(t, 2, doc.Summary.Solutions)
	assert.Equal(t, 2, doc.Summary.Projects)
	assert.Equal(t, 0, doc.Summary.Failures)
	require.Len(t, doc.Projects, 2)
	assert.Equal(t, "P1", doc.Projects[0].Name)
	assert.Len(t, doc.Projects[0].Solutions, 2)
	assert.Len(t, doc.Projects[1].Solutions, 1)
}

func TestApp_Scan_Tolerant(t *testing.T) {
	root := workspace(t)
	broken := writeFile(t, filepath.Join(root, "c", "Broken.sln"), "not a solution")

	f := newFixture(t)
	s := settingsFor(root, domain.FormatJSON)
	s.IgnoreFailures = true
	f.settings(s)

	var buf bytes.Buffer
	require.NoError(t, f.app.Scan(context.Background(), &buf, app.Options{}))

	doc := decode(t, &buf)
	assert.Equal(t, 2, doc.Summary.Solutions)
	assert.Equal(t, 1, doc.Summary.Failures)
	require.Len(t, doc.Failures, 1)
	assert.Equal(t, broken, doc.Failures[0].Path)
}

func TestApp_Scan_Strict(t *testing.T) {
	root := workspace(t)
	writeFile(t, filepath.Join(root, "c", "Broken.sln"), "not a solution")

	f := newFixture(t)
	f.settings(settingsFor(root, domain.FormatJSON))

	var buf bytes.Buffer
	err := f.app.Scan(context.Background(), &buf, app.Options{})
	require.ErrorIs(t, err, domain.ErrParse)
	assert.Empty(t, buf.String())
}

func TestApp_Scan_Projects(t *testing.T) {
	root := workspace(t)
	f := newFixture(t)
	s := settingsFor(root, domain.FormatJSON)
	s.Projects = true
	s.Exclude = "p2"
	f.settings(s)

	var buf bytes.Buffer
	require.NoError(t, f.app.Scan(context.Background(), &buf, app.Options{}))

	doc := decode(t, &buf)
	assert.Equal(t, 0, doc.Summary.Solutions)
	require.Len(t, doc.Projects, 1)
	assert.Equal(t, "P1", doc.Projects[0].Name)
	assert.Empty(t, doc.Projects[0].Solutions)
}

func TestApp_Scan_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("custom.yaml", nil).Return(nil, domain.ErrConfigReadFailed)

	err := f.app.Scan(context.Background(), &bytes.Buffer{}, app.Options{ConfigFile: "custom.yaml"})
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestApp_Scan_InvalidFormat(t *testing.T) {
	f := newFixture(t)
	f.settings(settingsFor(t.TempDir(), "xml"))

	err := f.app.Scan(context.Background(), &bytes.Buffer{}, app.Options{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid output format")
}

func TestApp_Show_Solution(t *testing.T) {
	root := workspace(t)
	f := newFixture(t)
	f.settings(settingsFor(root, domain.FormatText))

	var buf bytes.Buffer
	require.NoError(t, f.app.Show(context.Background(), &buf, filepath.Join(root, "a", "A.sln"), app.Options{}))

	out := buf.String()
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "P2")
	assert.NotContains(t, out, "projects not resolved")
}

func TestApp_Show_Project(t *testing.T) {
	root := workspace(t)
	f := newFixture(t)
	f.settings(settingsFor(root, domain.FormatJSON))

	var buf bytes.Buffer
	require.NoError(t, f.app.Show(context.Background(), &buf, filepath.Join(root, "p1", "P1.csproj"), app.Options{}))

	var doc struct {
		Name      string   `json:"name"`
		Solutions []string `json:"solutions"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "P1", doc.Name)
	assert.Equal(t, []string{
		filepath.Join(root, "a", "A.sln"),
		filepath.Join(root, "b", "B.sln"),
	}, doc.Solutions)
}

func TestApp_Show_Unsupported(t *testing.T) {
	f := newFixture(t)
	f.settings(settingsFor(t.TempDir(), domain.FormatText))

	err := f.app.Show(context.Background(), &bytes.Buffer{}, "Legacy.vbproj", app.Options{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestApp_Discover_SharedRegistry(t *testing.T) {
	root := workspace(t)
	f := newFixture(t)

	cache := registry.New()
	first, err := f.app.Discover(context.Background(), settingsFor(root, domain.FormatText), cache)
	require.NoError(t, err)
	second, err := f.app.Discover(context.Background(), settingsFor(root, domain.FormatText), cache)
	require.NoError(t, err)

	assert.Equal(t, 2, cache.Len())
	assert.Same(t, first.Projects[0], second.Projects[0])
	assert.NotEqual(t, first.PassID, second.PassID)
	// Solutions are recorded once per identity, whichever pass loaded them.
	assert.Equal(t, 2, first.Projects[0].SolutionCount())
}

func TestApp_Discover_Canceled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.app.Discover(ctx, settingsFor(t.TempDir(), domain.FormatText), nil)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestApp_Scan_ProjectExtension(t *testing.T) {
	root := workspace(t)
	f := newFixture(t)
	s := settingsFor(root, domain.FormatJSON)
	s.Extension = ".CSPROJ"
	s.IgnoreFailures = true
	f.settings(s)

	var buf bytes.Buffer
	require.NoError(t, f.app.Scan(context.Background(), &buf, app.Options{}))

	doc := decode(t, &buf)
	assert.Equal(t, 0, doc.Summary.Solutions)
	assert.Equal(t, 2, doc.Summary.Projects)
	assert.Equal(t, 0, doc.Summary.Failures)
	require.Len(t, doc.Projects, 2)
	assert.Equal(t, "P1", doc.Projects[0].Name)
	assert.Equal(t, "P2", doc.Projects[1].Name)
}

func TestApp_Show_Solution_Tolerant(t *testing.T) {
	root := workspace(t)
	broken := writeFile(t, filepath.Join(root, "p2", "P2.csproj"), "<Project>")

	f := newFixture(t)
	s := settingsFor(root, domain.FormatJSON)
	s.IgnoreFailures = true
	f.settings(s)

	var buf bytes.Buffer
	require.NoError(t, f.app.Show(context.Background(), &buf, filepath.Join(root, "a", "A.sln"), app.Options{}))

	var doc struct {
		Name     string   `json:"name"`
		Resolved bool     `json:"resolved"`
		Projects []string `json:"projects"`
		Failures []struct {
			Path  string `json:"path"`
			Error string `json:"error"`
		} `json:"failures"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "A", doc.Name)
	assert.True(t, doc.Resolved)
	assert.Equal(t, []string{filepath.Join(root, "p1", "P1.csproj")}, doc.Projects)
	require.Len(t, doc.Failures, 1)
	assert.Equal(t, broken, doc.Failures[0].Path)
	assert.Contains(t, doc.Failures[0].Error, "failed to parse description file")
}

func TestApp_Show_Solution_Strict(t *testing.T) {
	root := workspace(t)
	writeFile(t, filepath.Join(root, "p2", "P2.csproj"), "<Project>")

	f := newFixture(t)
	f.settings(settingsFor(root, domain.FormatJSON))

	var buf bytes.Buffer
	err := f.app.Show(context.Background(), &buf, filepath.Join(root, "a", "A.sln"), app.Options{})
	require.ErrorIs(t, err, domain.ErrParse)
	assert.Empty(t, buf.String())
}

func TestApp_Show_Project_SkipsBrokenSolutions(t *testing.T) {
	root := workspace(t)
	writeFile(t, filepath.Join(root, "z", "Unrelated.sln"), "garbage")

	f := newFixture(t)
	f.settings(settingsFor(root, domain.FormatJSON))

	var buf bytes.Buffer
	require.NoError(t, f.app.Show(context.Background(), &buf, filepath.Join(root, "p1", "P1.csproj"), app.Options{}))

	var doc struct {
		Solutions []string `json:"solutions"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []string{
		filepath.Join(root, "a", "A.sln"),
		filepath.Join(root, "b", "B.sln"),
	}, doc.Solutions)
}
