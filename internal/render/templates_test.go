package render

import (
	"io/fs"
	"testing"

	"github.com/jakoblorz/go-envmodules/internal/filesystem"
	"github.com/jakoblorz/go-envmodules/internal/models"
	"github.com/stretchr/testify/require"
)

func TestExecuteDefaultTemplate_Avail(t *testing.T) {
	out, err := ExecuteDefaultTemplate("avail", AvailData{Modules: []string{"bcftools", "samtools"}})
	require.NoError(t, err)
	require.Equal(t, "bcftools\nsamtools", out)

	out, err = ExecuteDefaultTemplate("avail", AvailData{})
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func TestExecuteDefaultTemplate_Unknown(t *testing.T) {
	_, err := ExecuteDefaultTemplate("release", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown template")
}

func TestMetadata_Found(t *testing.T) {
	out := Metadata(&models.MetadataResult{
		Module: "samtools",
		Status: models.MetadataFound,
		Metadata: &models.Metadata{
			Description: "Tools for SAM/BAM files",
			Packages:    []string{"samtools", "htslib"},
			Executables: []string{"samtools"},
		},
	})

	require.Equal(t, "Description: Tools for SAM/BAM files\nPackages: samtools, htslib\nExecutables: samtools", out)
}

func TestMetadata_FoundButEmpty(t *testing.T) {
	out := Metadata(&models.MetadataResult{
		Module:   "empty",
		Status:   models.MetadataFound,
		Metadata: &models.Metadata{Packages: []string{}, Executables: []string{}},
	})

	require.Equal(t, "Description: (none)\nPackages: (none)\nExecutables: (none)", out)
}

func TestMetadata_MissingAndInvalidDiffer(t *testing.T) {
	missing := Metadata(&models.MetadataResult{Module: "plink", Status: models.MetadataMissing})
	invalid := Metadata(&models.MetadataResult{Module: "plink", Status: models.MetadataInvalid, Reason: "yaml: line 1: did not find expected node content"})

	require.Equal(t, "No metadata found for plink.", missing)
	require.Equal(t, "failed to load metadata: yaml: line 1: did not find expected node content", invalid)
}

func TestMetadata_NothingSelected(t *testing.T) {
	require.Equal(t, "Select a module to see its description.", Metadata(nil))
}

func TestResolve_InlineUsesSprig(t *testing.T) {
	tmpl, err := Resolve(filesystem.NewMockFileSystem(), "avail", `{{ len .Modules }} modules: {{ .Modules | join "," | upper }}`)
	require.NoError(t, err)

	out, err := ExecuteTemplate(tmpl, AvailData{Modules: []string{"r", "python"}})
	require.NoError(t, err)
	require.Equal(t, "2 modules: R,PYTHON", out)
}

func TestResolve_File(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/templates/show.tmpl", []byte(`{{ .Module }}={{ .Status }}`))

	tmpl, err := Resolve(mfs, "metadata", "@/templates/show.tmpl")
	require.NoError(t, err)
	require.Equal(t, "show.tmpl", tmpl.Name())

	out, err := ExecuteTemplate(tmpl, NewMetadataData(models.MetadataResult{Module: "R", Status: models.MetadataMissing}))
	require.NoError(t, err)
	require.Equal(t, "R=missing", out)
}

func TestResolve_Default(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()

	tmpl, err := Resolve(mfs, "metadata", "")
	require.NoError(t, err)
	require.Equal(t, "metadata", tmpl.Name())

	tmpl, err = Resolve(mfs, "avail", "")
	require.NoError(t, err)
	out, err := ExecuteTemplate(tmpl, AvailData{Modules: []string{"a", "b"}})
	require.NoError(t, err)
	require.Equal(t, "a\nb", out)

	_, err = Resolve(mfs, "nope", "")
	require.Error(t, err)
}

func TestResolve_ParseError(t *testing.T) {
	_, err := Resolve(filesystem.NewMockFileSystem(), "avail", "{{ .Modules")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse template avail")
}

func TestExecuteTemplate_FieldError(t *testing.T) {
	tmpl, err := Resolve(filesystem.NewMockFileSystem(), "avail", "{{ .Nope }}")
	require.NoError(t, err)

	_, err = ExecuteTemplate(tmpl, AvailData{})
	require.Error(t, err)
}

func TestResolve_MissingFile(t *testing.T) {
	_, err := Resolve(filesystem.NewMockFileSystem(), "avail", "@/templates/nope.tmpl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "template file not found: /templates/nope.tmpl")
}

func TestResolve_UnreadableFile(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/templates/locked.tmpl", []byte("{{ .Root }}"))
	mfs.FailReads("/templates/locked.tmpl", fs.ErrPermission)

	_, err := Resolve(mfs, "avail", "@/templates/locked.tmpl")
	require.ErrorIs(t, err, fs.ErrPermission)
}
