package terminal

import (
	"io"
	"os"

	"github.com/muse-tools/streamcast/pkg/runtime/terminal/commands"
	"github.com/muse-tools/streamcast/pkg/runtime/terminal/export"
	"github.com/muse-tools/streamcast/pkg/services/metadata"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry metadata.Registry
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry metadata.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streamcast",
		Short: "Artist streaming revenue simulator",
	}

	cmd.AddCommand(commands.NewSimulateCmd(cli.reporter))
	cmd.AddCommand(commands.NewArtistCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewSolveCmd())

	return cmd
}
