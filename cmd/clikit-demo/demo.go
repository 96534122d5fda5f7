package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/CliForge/clikit/pkg/binding"
	"github.com/CliForge/clikit/pkg/cli"
	"github.com/CliForge/clikit/pkg/output"
)

// defaultDelay is used when no delay argument is given.
const defaultDelay int64 = 2000

// DemoCommand waits behind a spinner, then asks for a name.
type DemoCommand struct{}

// NewDemoCommand creates a DemoCommand.
func NewDemoCommand() cli.Command {
	return &DemoCommand{}
}

// Spec implements cli.Command.
func (d *DemoCommand) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:        "demo",
		Description: "Demo command with basic features.",
		Args: []binding.ArgumentSpec{
			{
				Type:        binding.TypeInteger,
				Name:        "delay",
				Description: "Time (ms) to delay command execution and show a spinner.",
				Default:     defaultDelay,
			},
		},
	}
}

// Run implements cli.Command.
func (d *DemoCommand) Run(ctx context.Context, inv *cli.Invocation) error {
	delay, ok := inv.Arg(0).Int()
	if !ok || delay < 0 {
		delay = defaultDelay
	}

	inv.ProgressStart("warming up...")
	err := inv.Wait(ctx, time.Duration(delay)*time.Millisecond)
	inv.ProgressStop()
	if err != nil {
		return err
	}

	p := inv.Printer()
	p.Info("Please enter your name:")
	name, err := inv.Prompt(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	inv.Erase()

	p.Println(" I suppose " + output.Name(strings.TrimSpace(name)) + " is the smart one?")
	p.Success("Go build your own command now!")
	return nil
}
