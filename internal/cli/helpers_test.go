package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jakoblorz/go-envmodules/internal/config"
	"github.com/jakoblorz/go-envmodules/internal/filesystem"
	"github.com/jakoblorz/go-envmodules/internal/manager"
	"github.com/jakoblorz/go-envmodules/internal/tui/browse"
	"github.com/jakoblorz/go-envmodules/internal/view"
)

const testRoot = "/modules"

type cliHarness struct {
	t       *testing.T
	fs      *filesystem.MockFileSystem
	runner  *manager.MockRunner
	stdin   string
	lastCfg *config.Config
}

func newHarness(t *testing.T, modules ...string) *cliHarness {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"MODULES_DIR", "MANAGER", "METADATA_FILE", "TIMEOUT", "LOG_LEVEL", "LOG_FILE", "WATCH"} {
		t.Setenv(config.EnvPrefix+"_"+key, "")
		os.Unsetenv(config.EnvPrefix + "_" + key)
	}

	stubInteractive(t, false)

	fs := filesystem.NewMockFileSystem()
	fs.AddDir(testRoot)
	for _, m := range modules {
		fs.AddDir(testRoot + "/" + m)
	}

	return &cliHarness{t: t, fs: fs, runner: manager.NewMockRunner()}
}

// run executes envmodules with args against the mock filesystem and runner
func (h *cliHarness) run(args ...string) (string, error) {
	h.t.Helper()

	root := NewRootCommand(h.fs, func(cfg *config.Config, _ *log.Logger) manager.Runner {
		h.lastCfg = cfg
		return h.runner
	})

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(h.stdin))
	root.SetArgs(append(args, "--modules-dir", testRoot))

	err := root.Execute()
	return stdout.String(), err
}

func stubInteractive(t *testing.T, interactive bool) {
	t.Helper()
	prev := isInteractive
	isInteractive = func() bool { return interactive }
	t.Cleanup(func() { isInteractive = prev })
}

func stubPicker(t *testing.T, choice string) *[]string {
	t.Helper()
	prev := pickModule
	var offered []string
	pickModule = func(_ string, modules []string) (string, error) {
		offered = modules
		return choice, nil
	}
	t.Cleanup(func() { pickModule = prev })
	return &offered
}

func stubConfirm(t *testing.T, answer bool) {
	t.Helper()
	prev := confirmRestore
	confirmRestore = func() (bool, error) { return answer, nil }
	t.Cleanup(func() { confirmRestore = prev })
}

func stubBrowser(t *testing.T) **view.SyncedView {
	t.Helper()
	prev := runBrowser
	var got *view.SyncedView
	runBrowser = func(v *view.SyncedView, _ ...browse.Option) error {
		got = v
		return nil
	}
	t.Cleanup(func() { runBrowser = prev })
	return &got
}
