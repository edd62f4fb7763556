package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jakoblorz/go-envmodules/internal/filesystem"
	"github.com/stretchr/testify/require"
)

const testRoot = "/genesandhealth/library-red/modules"

func TestModules_OnlyDirectoriesSorted(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(testRoot + "/samtools")
	fs.AddDir(testRoot + "/bcftools")
	fs.AddFile(testRoot+"/README", []byte("not a module"))
	fs.AddFile(testRoot+"/plink/meta.yaml", []byte("description: plink\n"))
	fs.AddFile(testRoot+"/.lock", nil)

	modules := New(fs, testRoot, nil).Modules()

	require.Equal(t, []string{"bcftools", "plink", "samtools"}, modules)
}

func TestModules_MissingRootIsEmpty(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	modules := New(fs, "/does/not/exist", nil).Modules()

	require.NotNil(t, modules)
	require.Empty(t, modules)
}

func TestModules_UnreadableRootIsEmpty(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddDir(testRoot + "/samtools")
	mfs.FailReads(testRoot, fs.ErrPermission)

	modules := New(mfs, testRoot, nil).Modules()

	require.Empty(t, modules)
}

func TestModules_RootIsAFile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/opt/modules", []byte("oops"))

	require.Empty(t, New(fs, "/opt/modules", nil).Modules())
}

func TestModules_NoCachingAcrossCalls(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(testRoot + "/samtools")

	d := New(fs, testRoot, nil)
	require.Equal(t, []string{"samtools"}, d.Modules())

	fs.AddDir(testRoot + "/R")
	require.Equal(t, []string{"R", "samtools"}, d.Modules())
}

func TestModules_OSFileSystem(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"zlib", "gatk", "Python"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))

	target := t.TempDir()
	require.NoError(t, os.Symlink(target, filepath.Join(root, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))

	modules := New(filesystem.NewOSFileSystem(), root, nil).Modules()

	require.Equal(t, []string{"Python", "gatk", "linked", "zlib"}, modules)
}
