package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/report"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func fixture(t *testing.T) *domain.Discovery {
	t.Helper()

	app := domain.NewProject("/repo/App/App.csproj", domain.ProjectInfo{
		TargetFrameworks:  []string{"net8.0"},
		PackageReferences: []domain.PackageReference{{Name: "Serilog", Version: "3.1.1"}},
	})
	lib := domain.NewProject("/repo/Lib/Lib.csproj", domain.ProjectInfo{})

	shop := domain.NewSolution("/repo/Shop.sln", []domain.SolutionEntry{
		{Name: "App", RelativePath: `App\App.csproj`, Line: 3},
		{Name: "Lib", RelativePath: `Lib\Lib.csproj`, Line: 5},
	})
	require.NoError(t, shop.Resolve(func() ([]*domain.Project, error) {
		return []*domain.Project{lib, app}, nil
	}))

	errs := domain.NewErrorRecord()
	errs.Record("/repo/Broken.sln", errors.Join(domain.ErrParse, errors.New("missing header")))

	d := domain.NewDiscovery([]string{"/repo"})
	d.Solutions = []*domain.Solution{shop}
	d.Errors = errs
	d.CollectProjects()
	return d
}

func TestNew_InvalidFormat(t *testing.T) {
	_, err := report.New("xml")
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid output format")

	r, err := report.New(domain.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatYAML, r.Format())
}

func TestRenderDiscovery_Text(t *testing.T) {
	d := fixture(t)
	r, err := report.New(domain.FormatText)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderDiscovery(&buf, d))

	out := buf.String()
	assert.Contains(t, out, d.PassID.String())
	assert.Contains(t, out, "Shop")
	assert.Contains(t, out, "/repo/App/App.csproj")
	assert.Contains(t, out, "1 solutions, 2 projects, 1 failures")
	assert.Contains(t, out, "/repo/Broken.sln")
	assert.Contains(t, out, "missing header")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("App.csproj")), bytes.Index(buf.Bytes(), []byte("Lib.csproj")))
}

func TestRenderDiscovery_JSON(t *testing.T) {
	d := fixture(t)
	r, err := report.New(domain.FormatJSON)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderDiscovery(&buf, d))

	var doc struct {
		PassID  string `json:"passId"`
		Summary struct {
			Solutions int `json:"solutions"`
			Projects  int `json:"projects"`
			Failures  int `json:"failures"`
		} `json:"summary"`
		Solutions []struct {
			Name     string   `json:"name"`
			Projects []string `json:"projects"`
		} `json:"solutions"`
		Projects []struct {
			Name      string   `json:"name"`
			Solutions []string `json:"solutions"`
		} `json:"projects"`
		Failures []struct {
			Path  string `json:"path"`
			Error string `json:"error"`
		} `json:"failures"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, d.PassID.String(), doc.PassID)
	assert.Equal(t, 1, doc.Summary.Solutions)
	assert.Equal(t, 2, doc.Summary.Projects)
	assert.Equal(t, 1, doc.Summary.Failures)
	require.Len(t, doc.Solutions, 1)
	assert.Equal(t, []string{"/repo/App/App.csproj", "/repo/Lib/Lib.csproj"}, doc.Solutions[0].Projects)
	require.Len(t, doc.Projects, 2)
	assert.Equal(t, []string{"/repo/Shop.sln"}, doc.Projects[0].Solutions)
	require.Len(t, doc.Failures, 1)
	assert.NotContains(t, doc.Failures[0].Error, "\n")
}

func TestRenderProject_YAML(t *testing.T) {
	d := fixture(t)
	r, err := report.New(domain.FormatYAML)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderProject(&buf, d.Projects[0]))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "App", doc["name"])
	details, ok := doc["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"net8.0"}, details["targetFrameworks"])
	assert.Equal(t, []any{"/repo/Shop.sln"}, doc["solutions"])
}

func TestRenderSolution_Text(t *testing.T) {
	r, err := report.New(domain.FormatText)
	require.NoError(t, err)

	unresolved := domain.NewSolution("/repo/Lazy.sln", []domain.SolutionEntry{
		{Name: "Web", RelativePath: `Web\Web.csproj`, Line: 4},
	})

	var buf bytes.Buffer
	require.NoError(t, r.RenderSolution(&buf, unresolved, nil))
	assert.Contains(t, buf.String(), "Lazy")
	assert.Contains(t, buf.String(), "projects not resolved")
	assert.Contains(t, buf.String(), `Web\Web.csproj`)
}

func TestRenderProject_Text(t *testing.T) {
	d := fixture(t)
	r, err := report.New(domain.FormatText)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderProject(&buf, d.Projects[0]))

	out := buf.String()
	assert.Contains(t, out, "net8.0")
	assert.Contains(t, out, "referenced by 1 solutions")
	assert.Contains(t, out, "Serilog")
	assert.Contains(t, out, "3.1.1")
}

func TestRenderSolution_JSONIncludesEntries(t *testing.T) {
	d := fixture(t)
	r, err := report.New(domain.FormatJSON)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderSolution(&buf, d.Solutions[0], nil))

	var doc struct {
		Resolved bool                   `json:"resolved"`
		Entries  []domain.SolutionEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.True(t, doc.Resolved)
	assert.Len(t, doc.Entries, 2)
	assert.Equal(t, 3, doc.Entries[0].Line)
}

func TestRenderSolution_Failures(t *testing.T) {
	d := fixture(t)
	errs := domain.NewErrorRecord()
	errs.Record("/repo/Bad/Bad.csproj", errors.Join(domain.ErrParse, errors.New("unexpected EOF")))

	t.Run("text", func(t *testing.T) {
		r, err := report.New(domain.FormatText)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.RenderSolution(&buf, d.Solutions[0], errs))
		assert.Contains(t, buf.String(), "Failures")
		assert.Contains(t, buf.String(), "/repo/Bad/Bad.csproj")
		assert.Contains(t, buf.String(), "unexpected EOF")
	})

	t.Run("json", func(t *testing.T) {
		r, err := report.New(domain.FormatJSON)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.RenderSolution(&buf, d.Solutions[0], errs))

		var doc struct {
			Failures []struct {
				Path  string `json:"path"`
				Error string `json:"error"`
			} `json:"failures"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		require.Len(t, doc.Failures, 1)
		assert.Equal(t, "/repo/Bad/Bad.csproj", doc.Failures[0].Path)
		assert.Contains(t, doc.Failures[0].Error, "unexpected EOF")
	})

	t.Run("strict omits failures", func(t *testing.T) {
		r, err := report.New(domain.FormatJSON)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.RenderSolution(&buf, d.Solutions[0], nil))
		assert.NotContains(t, buf.String(), "failures")
	})
}
