// Package domain contains the core model of the solution/project graph and the rules shared by every
// component that builds it: path identity, term filtering, failure routing and name ordering.
package domain

import (
	"path/filepath"
	"strings"
)

const (
	// SolutionExtension is the suffix of solution description files.
	SolutionExtension = ".sln"
	// ProjectExtension is the suffix of the project description files the loader understands.
	ProjectExtension = ".csproj"
)

// Loadable is the capability shared by every object parsed from a description file.
type Loadable interface {
	// ID returns the normalized identity of Path. It never changes.
	ID() Identity
	// Path returns the path the object was loaded from, as given.
	Path() string
	// Name returns the display name of the object.
	Name() string
	// FileName returns the base name of Path.
	FileName() string
}

// file holds the attributes every Loadable derives from its path.
type file struct {
	id   Identity
	path string
}

func newFile(path string) file {
	return file{id: Normalize(path), path: path}
}

// ID returns the normalized identity of the file.
func (f *file) ID() Identity { return f.id }

// Path returns the path as given at construction.
func (f *file) Path() string { return f.path }

// FileName returns the base name of the path.
func (f *file) FileName() string { return filepath.Base(f.path) }

// stem returns the file name without its extension.
func (f *file) stem() string {
	name := f.FileName()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// HasExtension reports whether path ends with ext, ignoring case.
func HasExtension(path, ext string) bool {
	return strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext))
}

// JoinRelative joins a path written in a description file to dir.
// Both separators are accepted, since description files are written with backslashes.
func JoinRelative(dir, rel string) string {
	rel = strings.ReplaceAll(rel, `\`, string(filepath.Separator))
	rel = strings.ReplaceAll(rel, "/", string(filepath.Separator))
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(dir, rel)
}
