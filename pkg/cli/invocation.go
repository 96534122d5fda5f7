package cli

import (
	"context"
	"time"

	"github.com/CliForge/clikit/pkg/argv"
	"github.com/CliForge/clikit/pkg/binding"
	"github.com/CliForge/clikit/pkg/output"
	"github.com/CliForge/clikit/pkg/progress"
)

// Invocation is a command bound to the input of one run. It is created
// fresh for every run and discarded afterwards.
type Invocation struct {
	app     *Application
	cmd     Command
	key     string
	spec    CommandSpec
	input   *argv.ParsedInput
	flags   *binding.FlagValues
	spinner *progress.Spinner
}

// instantiate creates the command registered under key and binds the
// application level flags, then the command level flags, so command
// declarations shadow application ones.
func (a *Application) instantiate(key string, in *argv.ParsedInput) (*Invocation, error) {
	cmd, err := a.registry.Instantiate(key)
	if err != nil {
		return nil, err
	}

	spec := mergeSpec(DefaultCommandSpec(), cmd.Spec())
	if err := binding.ValidateFlags(spec.Flags); err != nil {
		return nil, &FlagConfigError{Scope: "command '" + key + "'", Err: err}
	}

	flags := binding.NewFlagValues()
	binding.BindFlags(flags, a.withDefaults(a.flags), in.Flags)
	binding.BindFlags(flags, a.withDefaults(spec.Flags), in.Flags)

	return &Invocation{
		app:   a,
		cmd:   cmd,
		key:   key,
		spec:  spec,
		input: in,
		flags: flags,
	}, nil
}

// App returns the owning application.
func (i *Invocation) App() *Application {
	return i.app
}

// Name returns the registry key the command was resolved to.
func (i *Invocation) Name() string {
	return i.key
}

// Spec returns the merged command spec.
func (i *Invocation) Spec() CommandSpec {
	return i.spec
}

// Printer returns the output sink.
func (i *Invocation) Printer() *output.Printer {
	return i.app.printer
}

// Args returns the raw positional arguments after the command name.
func (i *Invocation) Args() []string {
	return append([]string(nil), i.input.Args...)
}

// FlagTokens returns the raw flag tokens.
func (i *Invocation) FlagTokens() []string {
	return append([]string(nil), i.input.Flags...)
}

// Arg returns positional argument n coerced to its declared type. Absent
// arguments yield the declared default or null. Malformed structured
// arguments are reported as diagnostics and yield null.
func (i *Invocation) Arg(n int) binding.Value {
	v, err := binding.Argument(n, i.spec.Args, i.input.Args)
	if err != nil {
		logger := i.app.printer.Logger()
		logger.Error("invalid argument", logger.Args("command", i.key, "error", err))
		return binding.Null()
	}
	if v.IsNull() && n >= len(i.input.Args) && n >= 0 && n < len(i.spec.Args) {
		return binding.Of(i.spec.Args[n].Type, i.spec.Args[n].Default)
	}
	return v
}

// Flag reports whether the flag with identifier id is set.
func (i *Invocation) Flag(id string) bool {
	return i.flags.Enabled(id)
}

// FlagValue returns the bound value of a flag.
func (i *Invocation) FlagValue(id string) (any, bool) {
	return i.flags.Get(id)
}

// Verbose reports whether verbose output is enabled.
func (i *Invocation) Verbose() bool {
	return i.flags.Enabled(FlagVerbose)
}

// Wait blocks for d or until ctx is done.
func (i *Invocation) Wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Prompt prints message and reads one line of input.
func (i *Invocation) Prompt(ctx context.Context, message string) (string, error) {
	return i.app.reader.ReadLine(ctx, message)
}

// Erase removes the previous terminal line.
func (i *Invocation) Erase() {
	i.app.printer.EraseLine()
}

// ProgressStart shows a spinner prefixed by text, replacing any running one.
func (i *Invocation) ProgressStart(text string) {
	if i.spinner == nil {
		i.spinner = progress.NewSpinner(&progress.Config{Writer: i.app.printer.Out()})
	}
	i.spinner.Start(text)
}

// ProgressStop hides the spinner.
func (i *Invocation) ProgressStop() {
	if i.spinner != nil {
		i.spinner.Stop()
	}
}
