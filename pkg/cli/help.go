package cli

import (
	"context"
	"fmt"

	"github.com/CliForge/clikit/pkg/output"
)

// HelpHooks are optional callbacks that extend the help listing.
type HelpHooks struct {
	// AfterHead runs after the title line.
	AfterHead func(p *output.Printer)
	// AfterFlags runs after the global flags.
	AfterFlags func(p *output.Printer)
	// AfterCommands runs after the command list.
	AfterCommands func(p *output.Printer)
}

// HelpCommand lists the global flags and every registered command.
type HelpCommand struct {
	app   *Application
	hooks HelpHooks
}

// Spec implements Command.
func (h *HelpCommand) Spec() CommandSpec {
	return CommandSpec{
		Name:        HelpCommandName,
		Description: "Shows a list of all registered commands and some general information.",
	}
}

// Run implements Command. Each registered command is instantiated only to
// read its spec; the instances are discarded without being run.
func (h *HelpCommand) Run(ctx context.Context, inv *Invocation) error {
	p := inv.Printer()

	p.Success(h.app.Name() + ": Help")
	if h.app.Description() != "" {
		p.Println()
		p.Println(" " + h.app.Description())
	}
	if h.hooks.AfterHead != nil {
		h.hooks.AfterHead(p)
	}

	printFlags(p, h.app.flags, " Global flags:")
	if h.hooks.AfterFlags != nil {
		h.hooks.AfterFlags(p)
	}

	p.Println()
	p.Println(" Commands:")
	for _, key := range h.app.registry.Keys() {
		cmd, err := h.app.registry.Instantiate(key)
		if err != nil {
			return fmt.Errorf("failed to describe command '%s': %w", key, err)
		}
		spec := mergeSpec(DefaultCommandSpec(), cmd.Spec())

		line := "   " + output.Highlight(spec.Name)
		if inv.Verbose() {
			line += " [key " + output.Name(key) + "]"
		}
		p.Println(line + " : " + spec.Description)
	}
	if h.hooks.AfterCommands != nil {
		h.hooks.AfterCommands(p)
	}

	p.Println()
	return nil
}
