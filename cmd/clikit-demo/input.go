package main

import (
	"context"

	"github.com/CliForge/clikit/pkg/binding"
	"github.com/CliForge/clikit/pkg/cli"
	"github.com/CliForge/clikit/pkg/output"
)

// InputCommand prints how the input was parsed.
type InputCommand struct{}

// NewInputCommand creates an InputCommand.
func NewInputCommand() cli.Command {
	return &InputCommand{}
}

// inputReport is the document printed by InputCommand.
type inputReport struct {
	FirstArgument string          `json:"first_argument" yaml:"first_argument"`
	Args          []string        `json:"args" yaml:"args"`
	Flags         []string        `json:"flags" yaml:"flags"`
	Options       map[string]bool `json:"options" yaml:"options"`
}

// Spec implements cli.Command.
func (c *InputCommand) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:        "input",
		Description: "Shows how the command line was parsed.",
		Args: []binding.ArgumentSpec{
			{Type: binding.TypeString, Name: "first", Description: "Any value.", Default: ""},
		},
		Flags: append(cli.DefaultCommandSpec().Flags,
			binding.Bool("-y", "--yaml", "Print the report as YAML instead of JSON."),
		),
	}
}

// Run implements cli.Command.
func (c *InputCommand) Run(ctx context.Context, inv *cli.Invocation) error {
	report := inputReport{
		FirstArgument: inv.Arg(0).String(),
		Args:          inv.Args(),
		Flags:         inv.FlagTokens(),
		Options: map[string]bool{
			cli.FlagVerbose: inv.Verbose(),
		},
	}
	if report.Args == nil {
		report.Args = []string{}
	}
	if report.Flags == nil {
		report.Flags = []string{}
	}

	format := "json"
	if inv.Flag("yaml") {
		format = "yaml"
	}
	f, err := output.NewFormatter(format)
	if err != nil {
		return err
	}

	p := inv.Printer()
	p.Success("This was your input:")
	return f.Format(p.Out(), report)
}
