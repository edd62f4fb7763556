package metadata

import (
	"io/fs"
	"testing"

	"github.com/jakoblorz/go-envmodules/internal/filesystem"
	"github.com/jakoblorz/go-envmodules/internal/models"
	"github.com/stretchr/testify/require"
)

const testRoot = "/modules"

func TestLoad_Found(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile(testRoot+"/samtools/meta.yaml", []byte(`description: Tools for SAM/BAM files
packages:
  - samtools
  - htslib
executables:
  - samtools
  - ace2sam
`))

	result := NewLoader(mfs, testRoot, "").Load("samtools")

	require.Equal(t, models.MetadataFound, result.Status)
	require.Equal(t, "samtools", result.Module)
	require.Empty(t, result.Reason)
	require.Equal(t, &models.Metadata{
		Description: "Tools for SAM/BAM files",
		Packages:    []string{"samtools", "htslib"},
		Executables: []string{"samtools", "ace2sam"},
	}, result.Metadata)
}

func TestLoad_FoundButEmpty(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile(testRoot+"/empty/meta.yaml", []byte("description: \"\"\npackages: []\nexecutables: []\n"))

	result := NewLoader(mfs, testRoot, "").Load("empty")

	require.Equal(t, models.MetadataFound, result.Status)
	require.NotNil(t, result.Metadata)
	require.Empty(t, result.Metadata.Packages)
}

func TestLoad_Missing(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddDir(testRoot + "/plink")

	result := NewLoader(mfs, testRoot, "").Load("plink")

	require.Equal(t, models.MetadataMissing, result.Status)
	require.Nil(t, result.Metadata)
	require.Empty(t, result.Reason)
}

func TestLoad_MissingModuleDirectory(t *testing.T) {
	result := NewLoader(filesystem.NewMockFileSystem(), testRoot, "").Load("ghost")

	require.Equal(t, models.MetadataMissing, result.Status)
}

func TestLoad_Invalid(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile(testRoot+"/broken/meta.yaml", []byte("packages: [unclosed\n"))

	result := NewLoader(mfs, testRoot, "").Load("broken")

	require.Equal(t, models.MetadataInvalid, result.Status)
	require.Nil(t, result.Metadata)
	require.Contains(t, result.Reason, "invalid metadata YAML")
}

func TestLoad_Unreadable(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile(testRoot+"/locked/meta.yaml", []byte("description: x\n"))
	mfs.FailReads(testRoot+"/locked/meta.yaml", fs.ErrPermission)

	result := NewLoader(mfs, testRoot, "").Load("locked")

	require.Equal(t, models.MetadataInvalid, result.Status)
	require.Contains(t, result.Reason, "permission denied")
}

func TestLoad_RejectsPathLikeNames(t *testing.T) {
	loader := NewLoader(filesystem.NewMockFileSystem(), testRoot, "")

	for _, name := range []string{"", ".", "..", "../etc"} {
		result := loader.Load(name)
		require.Equal(t, models.MetadataInvalid, result.Status, "name %q", name)
	}
}

func TestLoad_CustomFileName(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile(testRoot+"/R/module.yaml", []byte("description: R\n"))

	loader := NewLoader(mfs, testRoot, "module.yaml")

	require.Equal(t, testRoot+"/R/module.yaml", loader.Path("R"))
	require.Equal(t, models.MetadataFound, loader.Load("R").Status)
}
