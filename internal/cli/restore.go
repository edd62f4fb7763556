package cli

import (
	"fmt"

	"github.com/jakoblorz/go-envmodules/internal/tui/browse"
	"github.com/spf13/cobra"
)

// confirmRestore asks before restoring; swapped out in tests
var confirmRestore = browse.ConfirmRestore

// RestoreCommand handles the restore command
type RestoreCommand struct {
	env *environment
	yes bool
}

// NewRestoreCommand creates a new restore command
func NewRestoreCommand(env *environment) *cobra.Command {
	cmd := &RestoreCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore the default module set",
		Long: `Replace the loaded modules with the default set, then print the
loaded modules as reported by module-manager.

In a terminal you are asked to confirm unless --yes is given.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolVarP(&cmd.yes, "yes", "y", false, "do not ask for confirmation")

	return cobraCmd
}

// Run executes the restore command
func (c *RestoreCommand) Run(cmd *cobra.Command, args []string) error {
	if !c.yes && isInteractive() {
		confirmed, err := confirmRestore()
		if err != nil {
			return fmt.Errorf("failed to run confirmation: %w", err)
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Restore cancelled")
			return nil
		}
	}

	v := c.env.newView()
	report := v.Restore()

	out := cmd.OutOrStdout()
	printReport(out, report)
	printLoaded(out, v.Loaded())

	return nil
}
