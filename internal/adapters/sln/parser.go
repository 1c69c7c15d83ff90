// Package sln reads the project listing of solution files.
package sln

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SolutionParser = (*Parser)(nil)

// Header is the first line of every solution file, followed by the format version.
const Header = "Microsoft Visual Studio Solution File"

const maxLineSize = 1024 * 1024

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}

	// Project("{type-guid}") = "Name", "relative\path", "{project-guid}"
	projectLine = regexp.MustCompile(
		`^Project\("([^"]*)"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"\s*(?:,\s*"([^"]*)")?\s*$`,
	)
)

// Parser implements ports.SolutionParser for the Visual Studio solution text format.
// Only the structure is read: the Project blocks and the paths they list.
type Parser struct {
	Logger ports.Logger
}

// NewParser creates a new Parser with the given logger.
func NewParser(logger ports.Logger) *Parser {
	return &Parser{Logger: logger}
}

// ParseSolution reads the solution file at path.
func (p *Parser) ParseSolution(ctx context.Context, path string) (*domain.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 -- path comes from discovery or the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, parseError(zerr.Wrap(err, "failed to read solution file"), path)
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, parseError(err, path)
	}

	p.Logger.Debug(fmt.Sprintf("parsed %d entries from %s", len(entries), path))
	return domain.NewSolution(path, entries), nil
}

// Parse extracts the Project entries of a solution file's content in file order.
func Parse(data []byte) ([]domain.SolutionEntry, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		entries    []domain.SolutionEntry
		headerSeen bool
		openLine   int
		lineNo     int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !headerSeen {
			if !strings.HasPrefix(line, Header) {
				return nil, zerr.With(zerr.New("missing solution file header"), "line", lineNo)
			}
			headerSeen = true
			continue
		}

		switch {
		case strings.HasPrefix(line, "Project("):
			if openLine != 0 {
				return nil, zerr.With(zerr.New("project block is not terminated"), "line", openLine)
			}
			entry, err := parseProjectLine(line, lineNo)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
			openLine = lineNo
		case line == "EndProject":
			if openLine == 0 {
				return nil, zerr.With(zerr.New("EndProject without Project"), "line", lineNo)
			}
			openLine = 0
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to scan solution file")
	}
	if !headerSeen {
		return nil, zerr.New("missing solution file header")
	}
	if openLine != 0 {
		return nil, zerr.With(zerr.New("project block is not terminated"), "line", openLine)
	}

	return entries, nil
}

func parseProjectLine(line string, lineNo int) (domain.SolutionEntry, error) {
	m := projectLine.FindStringSubmatch(line)
	if m == nil {
		return domain.SolutionEntry{}, zerr.With(zerr.New("malformed project entry"), "line", lineNo)
	}
	return domain.SolutionEntry{
		TypeGUID:     m[1],
		Name:         m[2],
		RelativePath: m[3],
		GUID:         m[4],
		Line:         lineNo,
	}, nil
}

func parseError(err error, path string) error {
	return errors.Join(domain.ErrParse, zerr.With(err, "path", path))
}
