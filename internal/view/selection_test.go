package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelection_OnlyVisibleNames(t *testing.T) {
	var s Selection

	require.False(t, s.Select("gatk", []string{"samtools"}))
	_, ok := s.Name()
	require.False(t, ok)

	require.True(t, s.Select("samtools", []string{"samtools"}))
	name, ok := s.Name()
	require.True(t, ok)
	require.Equal(t, "samtools", name)
}

func TestSelection_EmptyNameRejected(t *testing.T) {
	var s Selection
	require.False(t, s.Select("", []string{""}))
}

func TestSelection_Clamp(t *testing.T) {
	var s Selection
	s.Select("samtools", []string{"samtools", "bcftools"})

	require.False(t, s.Clamp([]string{"samtools"}))
	name, _ := s.Name()
	require.Equal(t, "samtools", name)

	require.True(t, s.Clamp([]string{"bcftools"}))
	_, ok := s.Name()
	require.False(t, ok)

	require.False(t, s.Clamp([]string{"samtools"}), "clamp never restores")
	_, ok = s.Name()
	require.False(t, ok)
}

func TestSelection_Clear(t *testing.T) {
	var s Selection
	s.Select("R", []string{"R"})
	s.Clear()

	_, ok := s.Name()
	require.False(t, ok)
}
