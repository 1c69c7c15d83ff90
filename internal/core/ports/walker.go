package ports

import "iter"

// FileWalker enumerates candidate description files below a root directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type FileWalker interface {
	// Walk yields the paths of files below root whose name ends with ext, ignoring case.
	// Directories that cannot be listed for lack of permission are skipped silently.
	// Any other traversal failure is yielded once with an empty path and ends the sequence.
	Walk(root, ext string) iter.Seq2[string, error]
}
