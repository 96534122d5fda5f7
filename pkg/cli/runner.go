package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/CliForge/clikit/pkg/argv"
	"github.com/CliForge/clikit/pkg/binding"
	"github.com/CliForge/clikit/pkg/output"
)

// Execute runs the application with the configured arguments, or
// os.Args[1:], reports any error and terminates the process with the
// resulting exit code. With WithoutExit it returns the code instead.
func (a *Application) Execute(ctx context.Context) int {
	args := a.args
	if !a.argsSet {
		args = os.Args[1:]
	}

	err := a.Run(ctx, args)
	if err != nil {
		a.printer.Error(err.Error())
	}

	a.ReportCompletion()

	code := ExitCode(err)
	if !a.noExit {
		a.exit(code)
	}
	return code
}

// ReportCompletion prints the time since the application was created when
// the last run was verbose. Embedders that call Run directly use it to end
// the run the way Execute does.
func (a *Application) ReportCompletion() {
	if a.verbose {
		a.printer.Info("Completed after " + a.started.Stop())
	}
}

// Run parses args, resolves the command and runs its lifecycle:
// precheck, then the main phase if the precheck passed.
func (a *Application) Run(ctx context.Context, args []string) error {
	a.verbose = false

	if err := binding.ValidateFlags(a.flags); err != nil {
		return &FlagConfigError{Scope: "application", Err: err}
	}

	in, err := argv.Parse(args, a.defaultCommand)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInput, err)
	}

	appFlags := binding.NewFlagValues()
	binding.BindFlags(appFlags, a.withDefaults(a.flags), in.Flags)
	a.printer.SetDebug(appFlags.Enabled(FlagVerbose))

	if appFlags.Enabled(FlagVersion) {
		return a.printVersion()
	}

	key, err := a.resolve(in, appFlags)
	if err != nil {
		return err
	}

	inv, err := a.instantiate(key, in)
	if err != nil {
		return err
	}
	defer inv.ProgressStop()

	return a.runInvocation(ctx, inv)
}

// resolve finds the registry key for the parsed command, honouring the
// help flag and falling back to the default command.
func (a *Application) resolve(in *argv.ParsedInput, appFlags *binding.FlagValues) (string, error) {
	logger := a.printer.Logger()

	if appFlags.Enabled(FlagHelp) {
		if key, ok := a.registry.Resolve(HelpCommandName); ok {
			return key, nil
		}
	}

	if key, ok := a.registry.Resolve(in.Command); ok {
		return key, nil
	}

	a.printer.Error("Unknown command: " + in.Command)
	logger.Debug("command not registered",
		logger.Args("command", in.Command, "default", a.defaultCommand, "registered", a.registry.Keys()))

	if key, ok := a.registry.Resolve(a.defaultCommand); ok {
		return key, nil
	}
	return "", &ResolutionError{Command: in.Command, Default: a.defaultCommand}
}

func (a *Application) runInvocation(ctx context.Context, inv *Invocation) error {
	verbose := inv.Verbose()
	a.verbose = verbose

	if verbose {
		span := a.timer.Start("command-run")
		a.reportStart(inv)

		proceed, err := a.runPhases(ctx, inv)
		if err != nil {
			return err
		}

		phase := "Command"
		if !proceed {
			phase = "Precheck"
		}
		a.printer.Println()
		a.printer.Success(fmt.Sprintf("%s %s completed in %s", phase, inv.key, span.Stop()))
		a.printer.Println()
		return nil
	}

	_, err := a.runPhases(ctx, inv)
	return err
}

// runPhases runs the precheck and, when it passes, the main phase. It
// reports whether the main phase ran.
func (a *Application) runPhases(ctx context.Context, inv *Invocation) (bool, error) {
	proceed, err := a.precheck(ctx, inv)
	if err != nil {
		return false, &CommandExecutionError{Command: inv.key, Phase: "precheck", Cause: err}
	}
	if !proceed {
		return false, nil
	}

	if err := inv.cmd.Run(ctx, inv); err != nil {
		return true, &CommandExecutionError{Command: inv.key, Phase: "run", Cause: err}
	}
	return true, nil
}

// precheck describes the command and stops when the describe flag is set,
// otherwise defers to the command's Prechecker if it has one.
func (a *Application) precheck(ctx context.Context, inv *Invocation) (bool, error) {
	if inv.Flag(FlagDescribe) {
		inv.Describe()
		return false, nil
	}
	if pc, ok := inv.cmd.(Prechecker); ok {
		return pc.Precheck(ctx, inv)
	}
	return true, nil
}

// reportStart prints the working directory and the supplied arguments and
// flags with their declared descriptions.
func (a *Application) reportStart(inv *Invocation) {
	p := a.printer

	p.Success("Command " + inv.key + " running in: " + a.cwd)

	if len(inv.input.Args) > 0 {
		p.Println()
		p.Println(" With arguments:")
		for idx, arg := range inv.input.Args {
			p.Println("  " + output.Highlight(arg) + " " + argDescription(idx, inv.spec.Args))
		}
	}

	if len(inv.input.Flags) > 0 {
		p.Println()
		p.Println(" With flags:")
		for _, tok := range inv.input.Flags {
			p.Println("  " + output.Highlight(tok) + " " + flagDescription(tok, inv.spec.Flags, a.flags))
		}
	}
	p.Println()
}

// printVersion prints name@version.
func (a *Application) printVersion() error {
	version, err := a.Version()
	if err != nil {
		return err
	}
	a.printer.Println(a.name + "@" + version)
	return nil
}

// Version returns the configured version, falling back to the main
// module version recorded in the binary.
func (a *Application) Version() (string, error) {
	if a.version != "" {
		return a.version, nil
	}
	if info, ok := a.buildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}
	return "", fmt.Errorf("%w: no version set for %s", ErrVersion, a.name)
}
