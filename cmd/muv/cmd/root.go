// Package cmd implements the muv CLI commands.
//
// The root command dispatches to run, content and version. Running muv
// with no subcommand is the same as muv run.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	run := newRunCommand()

	root := &cobra.Command{
		Use:   "muv",
		Short: "MUV Academia landing page in your terminal",
		Long: `muv renders the MUV Academia landing page in the terminal.

Scroll with the arrow keys, j/k or PgUp/PgDn. Press m for the section menu,
Tab to fill the contact form and q to quit. The "Crianças atendidas" badge
counts up the first time it scrolls into view.`,
		Example: `  muv
  muv run --content page.yaml --watch
  muv content show --format toml > page.toml
  muv content validate page.yaml page.toml`,
		Version:       fmt.Sprintf("%s %s/%s", Version, runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          run.RunE,
	}
	root.Flags().AddFlagSet(run.Flags())

	root.AddCommand(run, newContentCommand(), newVersionCommand())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		color.New(color.FgHiRed).Fprint(os.Stderr, "Error: ")
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
