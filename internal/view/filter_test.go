package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	modules := []string{"zlib", "R", "bcftools", "Python"}

	visible := Filter(modules, "")

	require.Equal(t, modules, visible)

	visible[0] = "mutated"
	require.Equal(t, "zlib", modules[0], "result must not alias the input")
}

func TestFilter_CaseInsensitive(t *testing.T) {
	require.Equal(t, []string{"Foo"}, Filter([]string{"Foo", "bar"}, "FOO"))
	require.Equal(t, []string{"Foo"}, Filter([]string{"Foo", "bar"}, "oo"))
}

func TestFilter_PreservesOrder(t *testing.T) {
	modules := []string{"samtools", "bcftools", "plink", "htslib-tools"}

	require.Equal(t, []string{"samtools", "bcftools", "htslib-tools"}, Filter(modules, "tools"))
}

func TestFilter_NoMatches(t *testing.T) {
	visible := Filter([]string{"samtools"}, "gatk")

	require.NotNil(t, visible)
	require.Empty(t, visible)
}

func TestFilter_NilInput(t *testing.T) {
	require.Empty(t, Filter(nil, ""))
	require.Empty(t, Filter(nil, "x"))
}

func TestFilter_QueryIsLiteral(t *testing.T) {
	modules := []string{"r-4.3", "r-4x3", "r-base", "py.test", "pyxt"}

	require.Equal(t, []string{"r-4.3"}, Filter(modules, "4.3"))
	require.Equal(t, []string{"py.test"}, Filter(modules, "y.t"))
	require.Equal(t, []string{"r-4.3", "py.test"}, Filter(modules, "."))
	require.Empty(t, Filter(modules, ".*"))
	require.Empty(t, Filter(modules, " "))
}
