package cli

import (
	"github.com/spf13/cobra"
)

// LoadedCommand handles the loaded command
type LoadedCommand struct {
	env *environment
}

// NewLoadedCommand creates a new loaded command
func NewLoadedCommand(env *environment) *cobra.Command {
	cmd := &LoadedCommand{env: env}

	return &cobra.Command{
		Use:     "loaded",
		Aliases: []string{"list"},
		Short:   "Print the loaded modules",
		Long:    `Print module-manager's list output verbatim.`,
		Args:    cobra.NoArgs,
		RunE:    cmd.Run,
	}
}

// Run executes the loaded command
func (c *LoadedCommand) Run(cmd *cobra.Command, args []string) error {
	writeText(cmd.OutOrStdout(), c.env.newView().Refresh())
	return nil
}
