package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/jakoblorz/go-envmodules/internal/config"
	"github.com/jakoblorz/go-envmodules/internal/filesystem"
	"github.com/jakoblorz/go-envmodules/internal/manager"
	"github.com/jakoblorz/go-envmodules/internal/models"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, newRunner RunnerFactory) *cobra.Command {
	env := newEnvironment(fs, newRunner)

	rootCmd := &cobra.Command{
		Use:   "envmodules",
		Short: "Browse, load and unload environment modules",
		Long: `A front-end for the module-manager tool.

Lists the modules installed under the modules directory, shows their
metadata, and loads, unloads or restores them. Every change is followed by
a fresh listing of the loaded modules.`,
		SilenceUsage:       true,
		SilenceErrors:     true,
		PersistentPreRunE:  env.setup,
		PersistentPostRunE: env.teardown,
		Annotations:        map[string]string{tuiAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `envmodules browse` when no subcommand is provided.
			return (&BrowseCommand{env: env}).Run(cmd, args)
		},
	}

	defaults := config.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.String(configFlag, "", "config file (default $XDG_CONFIG_HOME/envmodules/config.yaml)")
	flags.String("modules-dir", defaults.ModulesDir, "directory holding one subdirectory per module")
	flags.String("manager", defaults.Manager, "path to the module-manager tool")
	flags.String("metadata-file", defaults.MetadataFile, "metadata file name inside each module directory")
	flags.Duration("timeout", defaults.Timeout, "abort a module-manager call after this long (0 = never)")
	flags.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.String("log-file", defaults.LogFile, "write browser logs to this file")
	flags.Bool("watch", defaults.Watch, "rescan the browser's module list when the modules directory changes")

	// Add subcommands
	rootCmd.AddCommand(NewAvailCommand(env))
	rootCmd.AddCommand(NewModuleCommand(env, models.ActionLoad))
	rootCmd.AddCommand(NewModuleCommand(env, models.ActionUnload))
	rootCmd.AddCommand(NewModuleCommand(env, models.ActionStatus))
	rootCmd.AddCommand(NewRestoreCommand(env))
	rootCmd.AddCommand(NewLoadedCommand(env))
	rootCmd.AddCommand(NewShowCommand(env))
	rootCmd.AddCommand(NewNormalizeCommand(env))
	rootCmd.AddCommand(NewBrowseCommand(env))

	return rootCmd
}

// NewOSRunner is the RunnerFactory used outside tests
func NewOSRunner(cfg *config.Config, logger *log.Logger) manager.Runner {
	return manager.NewOSRunner(cfg.Manager,
		manager.WithTimeout(cfg.Timeout),
		manager.WithLogger(logger),
	)
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCommand(fs, NewOSRunner)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
