// Package metadata reads, writes and normalizes per-module metadata files.
package metadata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-envmodules/internal/filesystem"
	"github.com/jakoblorz/go-envmodules/internal/models"
	"gopkg.in/yaml.v3"
)

// Loader reads canonical metadata for modules under a root directory
type Loader struct {
	fs       filesystem.FileSystem
	root     string
	fileName string
}

// NewLoader creates a Loader. An empty fileName means DefaultFileName.
func NewLoader(fs filesystem.FileSystem, root, fileName string) *Loader {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &Loader{
		fs:       fs,
		root:     root,
		fileName: fileName,
	}
}

// Path returns the metadata file location for module
func (l *Loader) Path(module string) string {
	return filepath.Join(l.root, module, l.fileName)
}

// Load reads and parses a module's metadata. It never fails: a missing file
// and an unreadable one come back as distinct statuses on the result.
func (l *Loader) Load(module string) models.MetadataResult {
	result := models.MetadataResult{Module: module}

	if module == "" || strings.ContainsRune(module, filepath.Separator) || module == "." || module == ".." {
		result.Status = models.MetadataInvalid
		result.Reason = fmt.Sprintf("invalid module name %q", module)
		return result
	}

	data, err := l.fs.ReadFile(l.Path(module))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Status = models.MetadataMissing
			return result
		}
		result.Status = models.MetadataInvalid
		result.Reason = err.Error()
		return result
	}

	md, err := Parse(data)
	if err != nil {
		result.Status = models.MetadataInvalid
		result.Reason = err.Error()
		return result
	}

	result.Status = models.MetadataFound
	result.Metadata = md
	return result
}

// Parse decodes a canonical metadata document
func Parse(data []byte) (*models.Metadata, error) {
	var md models.Metadata
	if err := yaml.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("invalid metadata YAML: %w", err)
	}

	md.Packages = nonNil(md.Packages)
	md.Executables = nonNil(md.Executables)
	return &md, nil
}
