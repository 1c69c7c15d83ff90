// Package fs provides the file system adapter that discovers description files.
package fs

import (
	"errors"
	iofs "io/fs"
	"iter"
	"path/filepath"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileWalker = (*Walker)(nil)

// Walker provides recursive file discovery with directory exclusion rules.
type Walker struct {
	rules   ExclusionRules
	walkDir func(root string, fn iofs.WalkDirFunc) error
}

// NewWalker creates a new Walker applying the given rules.
func NewWalker(rules ExclusionRules) *Walker {
	return &Walker{rules: rules, walkDir: filepath.WalkDir}
}

// Rules returns the exclusion rules of the walker.
func (w *Walker) Rules() ExclusionRules {
	return w.rules
}

// Walk yields every file below root whose name ends with ext, ignoring case, in depth-first
// lexical order. Excluded directories are never listed. A directory that cannot be listed because
// access is denied is dropped together with its subtree. Any other failure is yielded once, wrapped
// in domain.ErrTraversal, and ends the sequence.
func (w *Walker) Walk(root, ext string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := w.walkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return w.handleError(d, err)
			}

			if d.IsDir() {
				if w.rules.Excludes(path) {
					return filepath.SkipDir
				}
				return nil
			}

			if !domain.HasExtension(d.Name(), ext) {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to walk directory"), "root", root)
			yield("", errors.Join(domain.ErrTraversal, err))
		}
	}
}

// handleError absorbs access-denied failures and passes everything else through.
func (w *Walker) handleError(d iofs.DirEntry, err error) error {
	if !errors.Is(err, iofs.ErrPermission) {
		return err
	}
	if d != nil && d.IsDir() {
		return filepath.SkipDir
	}
	// The root itself could not be read.
	return filepath.SkipAll
}
