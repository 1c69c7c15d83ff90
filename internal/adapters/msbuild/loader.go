// Package msbuild loads SDK and legacy style project description files.
package msbuild

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding/ianaindex"
)

var _ ports.ProjectLoader = (*Loader)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type projectXML struct {
	XMLName        xml.Name           `xml:"Project"`
	PropertyGroups []propertyGroupXML `xml:"PropertyGroup"`
	ItemGroups     []itemGroupXML     `xml:"ItemGroup"`
}

type propertyGroupXML struct {
	AssemblyName     string `xml:"AssemblyName"`
	RootNamespace    string `xml:"RootNamespace"`
	TargetFramework  string `xml:"TargetFramework"`
	TargetFrameworks string `xml:"TargetFrameworks"`
	// TargetFrameworkVersion is used by legacy projects.
	TargetFrameworkVersion string `xml:"TargetFrameworkVersion"`
}

type itemGroupXML struct {
	PackageReferences []packageReferenceXML `xml:"PackageReference"`
	ProjectReferences []projectReferenceXML `xml:"ProjectReference"`
}

type packageReferenceXML struct {
	Include        string `xml:"Include,attr"`
	Version        string `xml:"Version,attr"`
	VersionElement string `xml:"Version"`
}

type projectReferenceXML struct {
	Include string `xml:"Include,attr"`
}

// Loader implements ports.ProjectLoader by decoding the project XML.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// LoadProject parses the project file at path.
func (l *Loader) LoadProject(ctx context.Context, path string) (*domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 -- path comes from discovery or a solution entry
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, parseError(zerr.Wrap(err, "failed to read project file"), path)
	}

	info, err := Decode(data, filepath.Dir(path))
	if err != nil {
		return nil, parseError(err, path)
	}

	return domain.NewProject(path, info), nil
}

// Decode extracts the project details from the XML in data.
// Project references are resolved against dir.
func Decode(data []byte, dir string) (domain.ProjectInfo, error) {
	var doc projectXML
	decoder := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	decoder.CharsetReader = charsetReader
	if err := decoder.Decode(&doc); err != nil {
		return domain.ProjectInfo{}, zerr.Wrap(err, "failed to decode project xml")
	}

	var info domain.ProjectInfo
	for _, pg := range doc.PropertyGroups {
		info.AssemblyName = firstNonEmpty(info.AssemblyName, pg.AssemblyName)
		info.RootNamespace = firstNonEmpty(info.RootNamespace, pg.RootNamespace)
		if len(info.TargetFrameworks) == 0 {
			info.TargetFrameworks = frameworks(pg)
		}
	}

	for _, ig := range doc.ItemGroups {
		for _, ref := range ig.PackageReferences {
			name := strings.TrimSpace(ref.Include)
			if name == "" {
				continue
			}
			info.PackageReferences = append(info.PackageReferences, domain.PackageReference{
				Name:    name,
				Version: strings.TrimSpace(firstNonEmpty(ref.Version, ref.VersionElement)),
			})
		}
		for _, ref := range ig.ProjectReferences {
			include := strings.TrimSpace(ref.Include)
			if include == "" {
				continue
			}
			info.ProjectReferences = append(info.ProjectReferences, domain.JoinRelative(dir, include))
		}
	}

	return info, nil
}

func frameworks(pg propertyGroupXML) []string {
	raw := firstNonEmpty(pg.TargetFrameworks, pg.TargetFramework)
	if raw == "" {
		raw = pg.TargetFrameworkVersion
	}

	var out []string
	for _, f := range strings.Split(raw, ";") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// charsetReader decodes the encodings older tooling declares in the XML prolog, such as windows-1252.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "us-ascii", "ascii":
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, zerr.With(zerr.New("unsupported charset"), "charset", charset)
	}
	return enc.NewDecoder().Reader(input), nil
}

func parseError(err error, path string) error {
	return errors.Join(domain.ErrParse, zerr.With(err, "path", path))
}
