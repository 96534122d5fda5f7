package cli

import (
	"io"
	"os"
	"runtime/debug"

	"github.com/CliForge/clikit/pkg/binding"
	"github.com/CliForge/clikit/pkg/cli/interactive"
	"github.com/CliForge/clikit/pkg/config"
	"github.com/CliForge/clikit/pkg/output"
	"github.com/CliForge/clikit/pkg/timer"
	"github.com/mohae/deepcopy"
)

// Application defaults.
const (
	DefaultName     = "Application"
	HelpCommandName = "help"
)

// Application owns the command registry and runs one invocation.
type Application struct {
	name           string
	version        string
	description    string
	cwd            string
	defaultCommand string
	flags          []binding.FlagSpec
	// flagDefaults override declared defaults in both flag scopes.
	flagDefaults map[string]any

	args    []string
	argsSet bool

	registry  *Registry
	helpHooks HelpHooks
	noHelp    bool

	stdout  io.Writer
	stderr  io.Writer
	stdin   io.Reader
	noColor bool
	printer *output.Printer
	reader  *interactive.LineReader

	timer   *timer.Timer
	started *timer.Span
	verbose bool

	exit      func(int)
	noExit    bool
	buildInfo func() (*debug.BuildInfo, bool)
}

// Option configures an Application.
type Option func(*Application)

// New creates an Application. The built-in help command is registered
// unless WithoutHelp is given.
func New(opts ...Option) *Application {
	cwd, _ := os.Getwd()

	a := &Application{
		name:           DefaultName,
		cwd:            cwd,
		defaultCommand: HelpCommandName,
		flags:          DefaultAppFlags(),
		registry:       NewRegistry(),
		timer:          timer.New(),
		exit:           os.Exit,
		buildInfo:      debug.ReadBuildInfo,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.started = a.timer.Start("application")

	if a.printer == nil {
		a.printer = output.NewPrinter(&output.Config{
			Out:     a.stdout,
			Err:     a.stderr,
			NoColor: a.noColor,
		})
	}
	a.reader = interactive.NewLineReader(a.stdin, a.printer.Out())

	if !a.noHelp {
		hooks := a.helpHooks
		// The registry is still empty, so the help command cannot be rejected.
		_ = a.registry.Register(HelpCommandName, func() Command {
			return &HelpCommand{app: a, hooks: hooks}
		})
	}

	return a
}

// WithName sets the application name.
func WithName(name string) Option {
	return func(a *Application) {
		a.name = name
	}
}

// WithVersion sets the version printed by --version.
func WithVersion(version string) Option {
	return func(a *Application) {
		a.version = version
	}
}

// WithDescription sets the application description.
func WithDescription(description string) Option {
	return func(a *Application) {
		a.description = description
	}
}

// WithCwd sets the working directory reported in verbose mode.
func WithCwd(cwd string) Option {
	return func(a *Application) {
		a.cwd = cwd
	}
}

// WithDefaultCommand sets the command used when none is given or the given
// one is unknown. An empty name disables the fallback.
func WithDefaultCommand(name string) Option {
	return func(a *Application) {
		a.defaultCommand = name
	}
}

// WithFlags replaces the application level flags.
func WithFlags(flags []binding.FlagSpec) Option {
	return func(a *Application) {
		a.flags = deepcopy.Copy(flags).([]binding.FlagSpec)
	}
}

// WithArgs sets the tokens Execute parses instead of os.Args[1:].
func WithArgs(args ...string) Option {
	return func(a *Application) {
		a.args = append([]string{}, args...)
		a.argsSet = true
	}
}

// WithOutput sets the regular and diagnostic writers.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *Application) {
		a.stdout = out
		a.stderr = errOut
	}
}

// WithInput sets the reader prompts read from.
func WithInput(in io.Reader) Option {
	return func(a *Application) {
		a.stdin = in
	}
}

// WithNoColor disables styled output.
func WithNoColor(noColor bool) Option {
	return func(a *Application) {
		a.noColor = noColor
	}
}

// WithPrinter sets the output sink directly.
func WithPrinter(p *output.Printer) Option {
	return func(a *Application) {
		a.printer = p
	}
}

// WithoutExit keeps Execute from terminating the process.
func WithoutExit() Option {
	return func(a *Application) {
		a.noExit = true
	}
}

// WithExitFunc replaces os.Exit.
func WithExitFunc(exit func(int)) Option {
	return func(a *Application) {
		a.exit = exit
	}
}

// WithoutHelp skips registering the built-in help command.
func WithoutHelp() Option {
	return func(a *Application) {
		a.noHelp = true
	}
}

// WithHelpHooks sets callbacks run by the built-in help command.
func WithHelpHooks(hooks HelpHooks) Option {
	return func(a *Application) {
		a.helpHooks = hooks
	}
}

// WithConfig applies a loaded user configuration. Options given after it
// take precedence.
func WithConfig(cfg *config.Config) Option {
	return func(a *Application) {
		if cfg == nil {
			return
		}
		if cfg.DefaultCommand != nil {
			a.defaultCommand = *cfg.DefaultCommand
		}
		if cfg.Cwd != "" {
			a.cwd = cfg.Cwd
		}
		if cfg.NoColor {
			a.noColor = true
		}
		if cfg.Verbose {
			if a.flagDefaults == nil {
				a.flagDefaults = make(map[string]any)
			}
			a.flagDefaults[FlagVerbose] = true
		}
	}
}

// Register adds a command factory under name.
func (a *Application) Register(name string, factory Factory) error {
	return a.registry.Register(name, factory)
}

// Name returns the application name.
func (a *Application) Name() string {
	return a.name
}

// Description returns the application description.
func (a *Application) Description() string {
	return a.description
}

// Cwd returns the working directory.
func (a *Application) Cwd() string {
	return a.cwd
}

// DefaultCommand returns the fallback command name.
func (a *Application) DefaultCommand() string {
	return a.defaultCommand
}

// Flags returns a copy of the application level flags.
func (a *Application) Flags() []binding.FlagSpec {
	return deepcopy.Copy(a.flags).([]binding.FlagSpec)
}

// Registry returns the command registry.
func (a *Application) Registry() *Registry {
	return a.registry
}

// Printer returns the output sink.
func (a *Application) Printer() *output.Printer {
	return a.printer
}

// withDefaults returns a copy of specs with the configured default
// overrides applied.
func (a *Application) withDefaults(specs []binding.FlagSpec) []binding.FlagSpec {
	out := deepcopy.Copy(specs).([]binding.FlagSpec)
	for i := range out {
		if def, ok := a.flagDefaults[out[i].Key()]; ok {
			out[i].Default = def
		}
	}
	return out
}

// mergeSpec composes a declared spec onto defaults without modifying
// either. Declared slices replace the default slices entirely.
func mergeSpec(defaults, declared CommandSpec) CommandSpec {
	merged := deepcopy.Copy(defaults).(CommandSpec)

	if declared.Name != "" {
		merged.Name = declared.Name
	}
	if declared.Description != "" {
		merged.Description = declared.Description
	}
	if declared.Args != nil {
		merged.Args = deepcopy.Copy(declared.Args).([]binding.ArgumentSpec)
	}
	if declared.Flags != nil {
		merged.Flags = deepcopy.Copy(declared.Flags).([]binding.FlagSpec)
	}

	return merged
}
