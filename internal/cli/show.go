package cli

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/go-envmodules/internal/render"
	"github.com/spf13/cobra"
)

// ShowCommand handles the show command
type ShowCommand struct {
	env      *environment
	template string
}

// NewShowCommand creates a new show command
func NewShowCommand(env *environment) *cobra.Command {
	cmd := &ShowCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "show <module>",
		Short: "Show a module's metadata",
		Long: `Print the description, packages and executables recorded in a module's
metadata file.

A module without a metadata file and one whose file cannot be parsed are
reported differently. --template renders the metadata with a Go
text/template; fields are Module, Status, Description, Packages,
Executables and Reason.`,
		Example: `  envmodules show samtools
  envmodules show samtools --template '{{ .Executables | join "\n" }}'`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.template, "template", "", "output template, or @file")

	return cobraCmd
}

// Run executes the show command
func (c *ShowCommand) Run(cmd *cobra.Command, args []string) error {
	tmpl, err := render.Resolve(c.env.fs, "metadata", c.template)
	if err != nil {
		return err
	}

	result := c.env.newLoader().Load(args[0])
	c.env.logger.Debug("metadata loaded", "module", result.Module, "status", result.Status)

	out, err := render.ExecuteTemplate(tmpl, render.NewMetadataData(result))
	if err != nil {
		return err
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), out)

	return nil
}
