package domain

import "go.trai.ch/zerr"

var (
	// ErrTraversal is returned when a directory cannot be enumerated for a reason other than access denial.
	ErrTraversal = zerr.New("directory traversal failed")

	// ErrParse is returned when a description file cannot be read or is structurally invalid.
	ErrParse = zerr.New("failed to parse description file")

	// ErrResolution is returned when the path of a referenced project cannot be computed.
	ErrResolution = zerr.New("failed to resolve project reference")

	// ErrUnsupportedFile is returned when a file has an extension no loader handles.
	ErrUnsupportedFile = zerr.New("unsupported file type")

	// ErrNoRoots is returned when a discovery is started without any root directory.
	ErrNoRoots = zerr.New("no root directories specified")

	// ErrInvalidFormat is returned when an unknown output format is requested.
	ErrInvalidFormat = zerr.New("invalid output format, expected 'text', 'json' or 'yaml'")

	// ErrInvalidWorkers is returned when the configured worker count is negative.
	ErrInvalidWorkers = zerr.New("worker count must not be negative")

	// ErrConfigReadFailed is returned when the settings file cannot be read or decoded.
	ErrConfigReadFailed = zerr.New("failed to read settings")
)
