package cli

import (
	"testing"

	"github.com/jakoblorz/go-envmodules/internal/manager"
	"github.com/jakoblorz/go-envmodules/internal/models"
	"github.com/jakoblorz/go-envmodules/internal/tui/browse"
	"github.com/stretchr/testify/require"
)

func TestLoad_RunsLoadThenList(t *testing.T) {
	h := newHarness(t, "samtools")
	h.runner.SetOutput(models.ActionLoad, "samtools", manager.MockOutput{Stdout: "Loading samtools/1.17"})
	h.runner.SetOutput(models.ActionList, "", manager.MockOutput{Stdout: "1) samtools/1.17"})

	out, err := h.run("load", "samtools")
	require.NoError(t, err)

	require.Equal(t, []manager.Call{
		{Action: models.ActionLoad, Module: "samtools"},
		{Action: models.ActionList},
	}, h.runner.Calls())
	require.Contains(t, out, "Load Module")
	require.Contains(t, out, "Loading samtools/1.17")
	require.Contains(t, out, browse.LoadedTitle)
	require.Contains(t, out, "1) samtools/1.17")
}

func TestUnload_ToolFailureIsShownAndListRefreshed(t *testing.T) {
	h := newHarness(t, "samtools")
	h.runner.SetOutput(models.ActionUnload, "samtools", manager.MockOutput{Stderr: "samtools is not loaded", ExitCode: 1})

	out, err := h.run("unload", "samtools")
	require.NoError(t, err, "tool failures are reported as text")
	require.Contains(t, out, "samtools is not loaded")
	require.Equal(t, 2, h.runner.CallCount())
}

func TestStatus_DoesNotList(t *testing.T) {
	h := newHarness(t, "samtools")
	h.runner.SetOutput(models.ActionStatus, "samtools", manager.MockOutput{Stdout: "samtools: loaded"})

	out, err := h.run("status", "samtools")
	require.NoError(t, err)
	require.Contains(t, out, "Module Status")
	require.Contains(t, out, "samtools: loaded")
	require.NotContains(t, out, browse.LoadedTitle)
	require.Equal(t, []manager.Call{{Action: models.ActionStatus, Module: "samtools"}}, h.runner.Calls())
}

func TestLoad_UnknownModule(t *testing.T) {
	h := newHarness(t, "samtools")

	_, err := h.run("load", "gatk")
	require.Error(t, err)
	require.Contains(t, err.Error(), `module "gatk" not found in /modules`)
	require.Zero(t, h.runner.CallCount())
}

func TestLoad_NoArgumentWithoutTerminal(t *testing.T) {
	h := newHarness(t, "samtools")

	_, err := h.run("load")
	require.ErrorIs(t, err, ErrNoModule)
	require.Zero(t, h.runner.CallCount())
}

func TestLoad_PicksInteractively(t *testing.T) {
	h := newHarness(t, "samtools", "bcftools")
	stubInteractive(t, true)
	offered := stubPicker(t, "bcftools")

	_, err := h.run("load")
	require.NoError(t, err)
	require.Equal(t, []string{"bcftools", "samtools"}, *offered)
	require.Equal(t, manager.Call{Action: models.ActionLoad, Module: "bcftools"}, h.runner.Calls()[0])
}

func TestLoad_PickerAborted(t *testing.T) {
	h := newHarness(t, "samtools")
	stubInteractive(t, true)
	stubPicker(t, "")

	out, err := h.run("load")
	require.NoError(t, err)
	require.Empty(t, out)
	require.Zero(t, h.runner.CallCount())
}

func TestModule_TooManyArgs(t *testing.T) {
	h := newHarness(t, "a", "b")

	_, err := h.run("load", "a", "b")
	require.Error(t, err)
}

func TestRestore_Yes(t *testing.T) {
	h := newHarness(t)
	h.runner.SetOutput(models.ActionRestore, "", manager.MockOutput{Stdout: "Restoring defaults"})

	out, err := h.run("restore", "--yes")
	require.NoError(t, err)
	require.Contains(t, out, "Restore Modules")
	require.Contains(t, out, "Restoring defaults")
	require.Equal(t, []manager.Call{{Action: models.ActionRestore}, {Action: models.ActionList}}, h.runner.Calls())
}

func TestRestore_ConfirmDeclined(t *testing.T) {
	h := newHarness(t)
	stubInteractive(t, true)
	stubConfirm(t, false)

	out, err := h.run("restore")
	require.NoError(t, err)
	require.Contains(t, out, "Restore cancelled")
	require.Zero(t, h.runner.CallCount())
}

func TestRestore_ConfirmAccepted(t *testing.T) {
	h := newHarness(t)
	stubInteractive(t, true)
	stubConfirm(t, true)

	_, err := h.run("restore")
	require.NoError(t, err)
	require.Equal(t, 2, h.runner.CallCount())
}

func TestLoaded_PrintsList(t *testing.T) {
	h := newHarness(t)
	h.runner.SetOutput(models.ActionList, "", manager.MockOutput{Stdout: "Currently Loaded Modulefiles:"})

	out, err := h.run("loaded")
	require.NoError(t, err)
	require.Equal(t, "Currently Loaded Modulefiles:\n", out)
	require.Equal(t, []manager.Call{{Action: models.ActionList}}, h.runner.Calls())
}
