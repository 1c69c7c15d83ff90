package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/jedib0t/go-pretty/v6/table"
)

// textWriter keeps the first write error and skips later writes.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func writeDiscovery(w io.Writer, d *domain.Discovery) error {
	tw := &textWriter{w: w}

	tw.printf("%s %s\n\n", titleStyle.Render("Discovery"), pathStyle.Render(d.PassID.String()))

	for _, s := range d.Solutions {
		writeSolutionTree(tw, s)
	}
	if len(d.Solutions) == 0 {
		for _, p := range d.Projects {
			tw.printf("%s %s %s\n", projectStyle.Render(Circle), projectStyle.Render(p.Name()), pathStyle.Render(p.Path()))
		}
	}

	tw.printf("\n%d solutions, %d projects, %d failures\n", len(d.Solutions), len(d.Projects), d.FailureCount())
	if tw.err != nil {
		return tw.err
	}

	if d.FailureCount() == 0 {
		return nil
	}
	return writeFailures(w, d.Errors)
}

func writeSolutionTree(tw *textWriter, s *domain.Solution) {
	tw.printf("%s %s %s\n", solutionStyle.Render(Dot), solutionStyle.Render(s.Name()), pathStyle.Render(s.Path()))

	projects := s.Projects()
	for i, p := range projects {
		icon := Branch
		if i == len(projects)-1 {
			icon = Last
		}
		tw.printf("  %s %s %s\n", icon, projectStyle.Render(p.Name()), pathStyle.Render(p.Path()))
	}
}

func writeFailures(w io.Writer, record *domain.ErrorRecord) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", failureTitleStyle.Render("Failures")); err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Path", "Error"})
	for _, f := range failures(record) {
		t.AppendRow(table.Row{f.Path, failureStyle.Render(Cross + " " + f.Error)})
	}
	t.Render()
	return nil
}

func writeSolution(w io.Writer, s *domain.Solution, errs *domain.ErrorRecord) error {
	tw := &textWriter{w: w}

	writeSolutionTree(tw, s)
	if !s.Resolved() {
		tw.printf("  %s\n", pathStyle.Render("projects not resolved"))
	}
	if tw.err != nil {
		return tw.err
	}

	if entries := s.Entries(); len(entries) > 0 {
		tw.printf("\n")
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Line", "Entry", "Path"})
		for _, e := range entries {
			t.AppendRow(table.Row{e.Line, e.Name, e.RelativePath})
		}
		t.Render()
	}
	if tw.err != nil {
		return tw.err
	}

	if errs == nil || errs.Len() == 0 {
		return nil
	}
	return writeFailures(w, errs)
}

func writeProject(w io.Writer, p *domain.Project) error {
	tw := &textWriter{w: w}
	info := p.Info()

	tw.printf("%s %s %s\n", projectStyle.Render(Circle), projectStyle.Render(p.Name()), pathStyle.Render(p.Path()))
	if len(info.TargetFrameworks) > 0 {
		tw.printf("  frameworks: %s\n", strings.Join(info.TargetFrameworks, ", "))
	}
	if info.RootNamespace != "" {
		tw.printf("  namespace:  %s\n", info.RootNamespace)
	}
	for _, ref := range info.ProjectReferences {
		tw.printf("  references: %s\n", pathStyle.Render(ref))
	}

	solutions := p.Solutions()
	tw.printf("  referenced by %d solutions\n", len(solutions))
	for i, s := range solutions {
		icon := Branch
		if i == len(solutions)-1 {
			icon = Last
		}
		tw.printf("  %s %s %s\n", icon, solutionStyle.Render(s.Name()), pathStyle.Render(s.Path()))
	}
	if tw.err != nil || len(info.PackageReferences) == 0 {
		return tw.err
	}

	tw.printf("\n")
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Package", "Version"})
	for _, ref := range info.PackageReferences {
		t.AppendRow(table.Row{ref.Name, ref.Version})
	}
	t.Render()
	return tw.err
}
