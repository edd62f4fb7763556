package cli

import (
	"fmt"

	"github.com/jakoblorz/go-envmodules/internal/discovery"
	"github.com/jakoblorz/go-envmodules/internal/tui/browse"
	"github.com/spf13/cobra"
)

// runBrowser starts the full-screen browser; swapped out in tests
var runBrowser = browse.Run

// BrowseCommand handles the browse command
type BrowseCommand struct {
	env *environment
}

// NewBrowseCommand creates a new browse command
func NewBrowseCommand(env *environment) *cobra.Command {
	cmd := &BrowseCommand{env: env}

	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive module browser",
		Long: `Open the full-screen module browser: search the installed modules,
inspect their metadata, and load, unload or restore them.

This is also what runs when envmodules is called without a subcommand.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{tuiAnnotation: "true"},
		RunE:        cmd.Run,
	}
}

// Run executes the browse command
func (c *BrowseCommand) Run(cmd *cobra.Command, args []string) error {
	v := c.env.newView()
	v.Init()

	var opts []browse.Option
	if c.env.cfg.Watch {
		watcher, err := discovery.Watch(c.env.cfg.ModulesDir, c.env.logger)
		if err != nil {
			return fmt.Errorf("failed to watch modules directory: %w", err)
		}
		defer watcher.Close()
		opts = append(opts, browse.WithChanges(watcher.Changes()))
	}

	return runBrowser(v, opts...)
}
