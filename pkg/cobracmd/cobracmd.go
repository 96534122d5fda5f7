// Package cobracmd mounts a clikit Application as a cobra command, so it can
// run as the root of a program or as a subcommand of an existing cobra tree.
package cobracmd

import (
	"github.com/CliForge/clikit/pkg/cli"
	"github.com/spf13/cobra"
)

// New returns a command that hands its raw arguments to app. Cobra flag
// parsing is disabled; the application parses its own flags.
func New(use string, app *cli.Application) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              app.Description(),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), args)
		},
	}
}

// Execute runs cmd and maps the result to a process exit status. Errors and
// the verbose completion time are reported through the application's
// printer.
func Execute(cmd *cobra.Command, app *cli.Application) int {
	err := cmd.Execute()
	if err != nil {
		app.Printer().Error(err.Error())
	}
	app.ReportCompletion()
	return cli.ExitCode(err)
}
