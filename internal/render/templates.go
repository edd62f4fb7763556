// Package render turns modules, metadata and tool reports into text.
package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/jakoblorz/go-envmodules/internal/filesystem"
	"github.com/jakoblorz/go-envmodules/internal/models"
)

// AvailData is passed to `avail` templates
type AvailData struct {
	Root    string
	Query   string
	Modules []string
}

// MetadataData is passed to `show` templates and the metadata pane
type MetadataData struct {
	Module      string
	Status      string
	Description string
	Packages    []string
	Executables []string
	Reason      string
}

const DefaultAvailTemplate = `{{ .Modules | join "\n" }}`

const DefaultMetadataTemplate = `{{- if eq .Status "found" -}}
Description: {{ .Description | default "(none)" }}
Packages: {{ if .Packages }}{{ .Packages | join ", " }}{{ else }}(none){{ end }}
Executables: {{ if .Executables }}{{ .Executables | join ", " }}{{ else }}(none){{ end }}
{{- else if eq .Status "missing" -}}
No metadata found for {{ .Module }}.
{{- else -}}
failed to load metadata: {{ .Reason }}
{{- end -}}`

// builtins maps template names to their default text
var builtins = map[string]string{
	"avail":    DefaultAvailTemplate,
	"metadata": DefaultMetadataTemplate,
}

// NewMetadataData flattens a load result for templates
func NewMetadataData(result models.MetadataResult) MetadataData {
	data := MetadataData{
		Module: result.Module,
		Status: result.Status.String(),
		Reason: result.Reason,
	}
	if result.Metadata != nil {
		data.Description = result.Metadata.Description
		data.Packages = result.Metadata.Packages
		data.Executables = result.Metadata.Executables
	}
	return data
}

// ParseTemplate parses text with the sprig function map
func ParseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}

// ParseTemplateFile parses the template stored at path
func ParseTemplateFile(fs filesystem.FileSystem, path string) (*template.Template, error) {
	if !fs.Exists(path) {
		return nil, fmt.Errorf("template file not found: %s", path)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return ParseTemplate(filepath.Base(path), string(data))
}

// ExecuteTemplate renders tmpl with data
func ExecuteTemplate(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// ExecuteDefaultTemplate renders one of the built-in templates by name
func ExecuteDefaultTemplate(name string, data interface{}) (string, error) {
	tmpl, err := parseBuiltin(name)
	if err != nil {
		return "", err
	}
	return ExecuteTemplate(tmpl, data)
}

// Resolve loads a user template: "@path" reads a file, anything else is
// used inline, and "" selects the built-in template called name.
func Resolve(fs filesystem.FileSystem, name, flag string) (*template.Template, error) {
	switch {
	case flag == "":
		return parseBuiltin(name)
	case flag[0] == '@':
		return ParseTemplateFile(fs, flag[1:])
	default:
		return ParseTemplate(name, flag)
	}
}

func parseBuiltin(name string) (*template.Template, error) {
	text, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown template: %s", name)
	}
	return ParseTemplate(name, text)
}
