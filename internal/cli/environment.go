package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jakoblorz/go-envmodules/internal/config"
	"github.com/jakoblorz/go-envmodules/internal/discovery"
	"github.com/jakoblorz/go-envmodules/internal/filesystem"
	"github.com/jakoblorz/go-envmodules/internal/logging"
	"github.com/jakoblorz/go-envmodules/internal/manager"
	"github.com/jakoblorz/go-envmodules/internal/metadata"
	"github.com/jakoblorz/go-envmodules/internal/view"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	configFlag = "config"

	// tuiAnnotation marks commands that take over the terminal
	tuiAnnotation = "envmodules/tui"
)

// RunnerFactory builds the module-manager runner once config is resolved
type RunnerFactory func(cfg *config.Config, logger *log.Logger) manager.Runner

// isInteractive reports whether prompts can be shown
var isInteractive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// environment is resolved once per invocation and shared by all commands
type environment struct {
	fs        filesystem.FileSystem
	newRunner RunnerFactory

	cfg    *config.Config
	logger *log.Logger
	runner manager.Runner
	closer io.Closer
}

func newEnvironment(fs filesystem.FileSystem, newRunner RunnerFactory) *environment {
	return &environment{
		fs:        fs,
		newRunner: newRunner,
		logger:    logging.Discard(),
	}
}

// setup loads config, builds the logger and binds the runner to the
// command's context
func (e *environment) setup(cmd *cobra.Command, _ []string) error {
	configPath := ""
	if flag := cmd.Flag(configFlag); flag != nil {
		configPath = flag.Value.String()
	}

	cfg, resolved, err := config.Load(config.LoadOptions{
		ConfigFilePath: configPath,
		Flags:          cmd.Flags(),
	})
	if err != nil {
		return err
	}
	e.cfg = cfg

	if err := e.setupLogger(cmd); err != nil {
		return err
	}
	if resolved != "" {
		e.logger.Debug("config loaded", "file", resolved)
	}

	runner := e.newRunner(cfg, e.logger)
	if ctx := cmd.Context(); ctx != nil {
		runner = runner.WithContext(ctx)
	}
	e.runner = runner

	return nil
}

func (e *environment) setupLogger(cmd *cobra.Command) error {
	if cmd.Annotations[tuiAnnotation] == "" {
		logger, err := logging.New(cmd.ErrOrStderr(), e.cfg.LogLevel)
		if err != nil {
			return err
		}
		e.logger = logger
		return nil
	}

	// the browser owns the terminal
	if e.cfg.LogFile == "" {
		e.logger = logging.Discard()
		return nil
	}

	logger, closer, err := logging.NewFile(e.cfg.LogFile, e.cfg.LogLevel)
	if err != nil {
		return err
	}
	e.logger = logger
	e.closer = closer
	return nil
}

func (e *environment) teardown(_ *cobra.Command, _ []string) error {
	if e.closer == nil {
		return nil
	}
	err := e.closer.Close()
	e.closer = nil
	if err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

func (e *environment) newLoader() *metadata.Loader {
	return metadata.NewLoader(e.fs, e.cfg.ModulesDir, e.cfg.MetadataFile)
}

func (e *environment) newDiscoverer() *discovery.Discoverer {
	return discovery.New(e.fs, e.cfg.ModulesDir, e.logger)
}

func (e *environment) newView() *view.SyncedView {
	return view.New(e.runner, e.newLoader(), e.newDiscoverer(), view.WithLogger(e.logger))
}
