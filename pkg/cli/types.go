// Package cli is a small framework for single-shot command-line
// applications.
//
// An Application owns a Registry of commands. Running it parses the process
// arguments into a command name, positional arguments and flag tokens,
// resolves the command, binds flags and runs the command through two phases:
// a precheck that may stop the run (for example to describe the command) and
// the main phase that performs the actual work.
//
//	app := cli.New(cli.WithName("demo"), cli.WithVersion("1.0.0"))
//	if err := app.Register("greet", NewGreetCommand); err != nil {
//		log.Fatal(err)
//	}
//	app.Execute(context.Background())
package cli

import (
	"context"

	"github.com/CliForge/clikit/pkg/binding"
	"github.com/CliForge/clikit/pkg/output"
)

// Command is a unit of work run by an Application.
type Command interface {
	// Spec declares the command's name, description, arguments and flags.
	// It must not have side effects.
	Spec() CommandSpec

	// Run is the main phase. It is only called when the precheck passed.
	Run(ctx context.Context, inv *Invocation) error
}

// Prechecker is implemented by commands that decide for themselves whether
// the main phase should run. It is consulted after the describe flag.
type Prechecker interface {
	Precheck(ctx context.Context, inv *Invocation) (bool, error)
}

// DescribeExtender is implemented by commands that add to their usage
// output.
type DescribeExtender interface {
	// AfterDescribeHead is called after the name and description.
	AfterDescribeHead(p *output.Printer)
	// AfterDescribeBody is called after arguments and flags.
	AfterDescribeBody(p *output.Printer)
}

// Factory creates a fresh command. It is called once per resolution and
// must not perform side effects beyond construction.
type Factory func() Command

// CommandSpec is the declared metadata of a command.
type CommandSpec struct {
	Name        string
	Description string
	// Args are resolved by position.
	Args []binding.ArgumentSpec
	// Flags replace the default command flags when set.
	Flags []binding.FlagSpec
}

// Flag identifiers bound for every invocation.
const (
	FlagVersion  = "version"
	FlagVerbose  = "verbose"
	FlagDescribe = "describe"
	FlagHelp     = "help"
)

// DefaultAppFlags returns the application level flags.
func DefaultAppFlags() []binding.FlagSpec {
	return []binding.FlagSpec{
		binding.Bool("-v", "--version", "Show the application name and version."),
		binding.Bool("-i", "--verbose", "Enable timing and diagnostic output."),
		binding.Bool("-d", "--describe", "Describe command arguments and flags."),
		binding.Bool("-h", "--help", "Show the list of available commands."),
	}
}

// DefaultCommandSpec returns the spec every command's declaration is
// merged onto.
func DefaultCommandSpec() CommandSpec {
	return CommandSpec{
		Name:        "[no name]",
		Description: "[no description]",
		Args:        []binding.ArgumentSpec{},
		Flags: []binding.FlagSpec{
			binding.Bool("-i", "--verbose", "Enable timing and diagnostic output."),
			binding.Bool("-d", "--describe", "Describe command arguments and flags."),
		},
	}
}
