package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jakoblorz/go-envmodules/internal/metadata"
	"github.com/jakoblorz/go-envmodules/internal/tui"
	"github.com/spf13/cobra"
)

// NormalizeCommand handles the normalize command
type NormalizeCommand struct {
	env    *environment
	output string
}

// NewNormalizeCommand creates a new normalize command
func NewNormalizeCommand(env *environment) *cobra.Command {
	cmd := &NormalizeCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Convert a package specification into module metadata",
		Long: `Read a package specification (a YAML document with a multi-line
description and versioned packages) and write the module metadata file.

The summary is the first line of the description, executables are its
"- name" lines and packages lose their "@version" suffix. Input is read from
the file argument or stdin.`,
		Example: `  # Write meta.yaml in the current directory
  envmodules normalize < softpack.yml

  # Write straight into a module directory
  envmodules normalize softpack.yml --output /software/modules/bcftools

  # Print instead of writing
  envmodules normalize softpack.yml --output -`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", metadata.DefaultFileName, "output file or module directory, - for stdout")

	return cobraCmd
}

// Run executes the normalize command
func (c *NormalizeCommand) Run(cmd *cobra.Command, args []string) error {
	data, err := c.readInput(cmd, args)
	if err != nil {
		return err
	}

	md, err := metadata.Normalize(data)
	if err != nil {
		return fmt.Errorf("failed to normalize: %w", err)
	}

	if c.output == "-" {
		encoded, err := metadata.Encode(md)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(encoded)
		return err
	}

	path := c.outputPath()
	if err := metadata.Save(c.env.fs, path, md); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), tui.SuccessStyle.Render(
		fmt.Sprintf("✓ Wrote %s (%d packages, %d executables)", path, len(md.Packages), len(md.Executables))))

	return nil
}

// outputPath places the metadata file inside --output when it names a directory
func (c *NormalizeCommand) outputPath() string {
	if info, err := c.env.fs.Stat(c.output); err == nil && info.IsDir() {
		return filepath.Join(c.output, c.env.cfg.MetadataFile)
	}
	return c.output
}

func (c *NormalizeCommand) readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := c.env.fs.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return data, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}
