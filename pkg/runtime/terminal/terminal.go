package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/learn-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/learn-atlas/pkg/services/templates"
)

// CLI represents the command-line interface
type CLI struct {
	registry templates.Registry
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry templates.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn-atlas",
		Short: "Training report generation tool",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.registry, cli.output))
	cmd.AddCommand(commands.NewTemplatesCmd(cli.registry, cli.output))
	cmd.AddCommand(commands.NewSeedCmd(cli.output))

	return cmd
}
