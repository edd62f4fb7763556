package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jakoblorz/go-envmodules/internal/filesystem"
	"github.com/jakoblorz/go-envmodules/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the canonical metadata file inside a module directory
const DefaultFileName = "meta.yaml"

// ErrMalformed is returned when a package spec is not a YAML mapping
var ErrMalformed = errors.New("malformed package spec")

// executableLine matches "- name" lines in a package spec description
var executableLine = regexp.MustCompile(`(?m)^[ \t]*- (.+)$`)

// Normalize converts a raw package spec document into canonical metadata.
//
// An empty document yields an empty record. Anything that is not a mapping
// with the expected field types fails with ErrMalformed.
func Normalize(data []byte) (*models.Metadata, error) {
	var raw models.RawPackageSpec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return NormalizeSpec(raw), nil
}

// NormalizeSpec converts an already decoded package spec
func NormalizeSpec(raw models.RawPackageSpec) *models.Metadata {
	return &models.Metadata{
		Description: summaryLine(raw.Description),
		Packages:    packageNames(raw.Packages),
		Executables: executables(raw.Description),
	}
}

func summaryLine(description string) string {
	trimmed := strings.TrimSpace(description)
	if i := strings.IndexAny(trimmed, "\r\n"); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}

// executables scans every line of the description, including the first
func executables(description string) []string {
	out := []string{}
	for _, match := range executableLine.FindAllStringSubmatch(description, -1) {
		name := strings.TrimSpace(match[1])
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}

// packageNames strips "@version" qualifiers, keeping order and duplicates
func packageNames(packages []string) []string {
	out := make([]string, 0, len(packages))
	for _, pkg := range packages {
		name, _, _ := strings.Cut(pkg, "@")
		out = append(out, name)
	}
	return out
}

// Encode renders metadata as canonical YAML in description, packages,
// executables order
func Encode(md *models.Metadata) ([]byte, error) {
	canonical := models.Metadata{
		Description: md.Description,
		Packages:    nonNil(md.Packages),
		Executables: nonNil(md.Executables),
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&canonical); err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}

	return buf.Bytes(), nil
}

// Save encodes md and writes it to path, creating missing parent directories
func Save(fs filesystem.FileSystem, path string, md *models.Metadata) error {
	data, err := Encode(md)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
