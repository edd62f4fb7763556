package cli

import (
	"errors"
	"fmt"

	"github.com/jakoblorz/go-envmodules/internal/models"
	"github.com/jakoblorz/go-envmodules/internal/tui/browse"
	"github.com/jakoblorz/go-envmodules/internal/view"
	"github.com/spf13/cobra"
)

// pickModule prompts for a module; swapped out in tests
var pickModule = browse.PickModule

// ErrNoModule is returned when a module is needed and none was given
var ErrNoModule = errors.New("a module name is required")

// ModuleCommand handles load, unload and status
type ModuleCommand struct {
	env    *environment
	action models.Action
}

// NewModuleCommand creates the command for one module action
func NewModuleCommand(env *environment, action models.Action) *cobra.Command {
	cmd := &ModuleCommand{env: env, action: action}

	var short, long string
	switch action {
	case models.ActionLoad:
		short = "Load a module"
		long = "Load a module, then print the loaded modules as reported by module-manager."
	case models.ActionUnload:
		short = "Unload a module"
		long = "Unload a module, then print the loaded modules as reported by module-manager."
	default:
		short = "Show a module's status"
		long = "Print module-manager's status output for a module. The loaded list is not refreshed."
	}

	cobraCmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [module]", action),
		Short: short,
		Long: long + `

Without a module argument, an interactive picker lists the installed
modules when running in a terminal.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cmd.complete,
		RunE:              cmd.Run,
	}

	return cobraCmd
}

// Run executes the action
func (c *ModuleCommand) Run(cmd *cobra.Command, args []string) error {
	v := c.env.newView()
	modules := v.Rediscover()

	module, err := c.resolveModule(args, modules)
	if err != nil {
		return err
	}
	if module == "" {
		// picker aborted
		return nil
	}

	if err := v.Select(module); err != nil {
		if errors.Is(err, view.ErrNotVisible) {
			return fmt.Errorf("module %q not found in %s", module, c.env.cfg.ModulesDir)
		}
		return err
	}

	report := v.Perform(c.action)

	out := cmd.OutOrStdout()
	printReport(out, report)
	if c.action.Mutates() {
		printLoaded(out, v.Loaded())
	}

	return nil
}

func (c *ModuleCommand) resolveModule(args []string, modules []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if !isInteractive() {
		return "", fmt.Errorf("%w for %s", ErrNoModule, c.action)
	}
	return pickModule(fmt.Sprintf("%s: select a module", c.action.Title()), modules)
}

func (c *ModuleCommand) complete(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if c.env.cfg == nil {
		// completion runs without the persistent pre-run
		if err := c.env.setup(cmd, args); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	return c.env.newDiscoverer().Modules(), cobra.ShellCompDirectiveNoFileComp
}
