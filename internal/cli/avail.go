package cli

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/go-envmodules/internal/render"
	"github.com/spf13/cobra"
)

// AvailCommand handles the avail command
type AvailCommand struct {
	env      *environment
	query    string
	template string
}

// NewAvailCommand creates a new avail command
func NewAvailCommand(env *environment) *cobra.Command {
	cmd := &AvailCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "avail",
		Short: "List installed modules",
		Long: `List the modules installed under the modules directory, sorted by name.

--query keeps modules whose name contains the text, ignoring case.
--template renders the list with a Go text/template (sprig functions are
available). Prefix with @ to read the template from a file.`,
		Example: `  # Everything installed
  envmodules avail

  # Modules mentioning "tools"
  envmodules avail --query tools

  # Comma separated
  envmodules avail --template '{{ .Modules | join "," }}'`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.query, "query", "q", "", "case-insensitive substring filter")
	cobraCmd.Flags().StringVar(&cmd.template, "template", "", "output template, or @file")

	return cobraCmd
}

// Run executes the avail command
func (c *AvailCommand) Run(cmd *cobra.Command, args []string) error {
	tmpl, err := render.Resolve(c.env.fs, "avail", c.template)
	if err != nil {
		return err
	}

	v := c.env.newView()
	v.Rediscover()
	visible := v.SetQuery(c.query)

	if len(visible) == 0 {
		c.env.logger.Info("no modules found", "root", c.env.cfg.ModulesDir, "query", c.query)
	}

	out, err := render.ExecuteTemplate(tmpl, render.AvailData{
		Root:    c.env.cfg.ModulesDir,
		Query:   c.query,
		Modules: visible,
	})
	if err != nil {
		return err
	}

	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), out)

	return nil
}
