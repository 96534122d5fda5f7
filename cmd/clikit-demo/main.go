// Package main implements the clikit demo application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/CliForge/clikit/pkg/cli"
	"github.com/CliForge/clikit/pkg/cobracmd"
	"github.com/CliForge/clikit/pkg/config"
)

const appName = "clikit-demo"

// version is set at build time.
var version = "0.1.0"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, err := config.NewLoader(appName).Load()
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return cli.ExitError
	}

	app, err := newApp(cfg,
		cli.WithInput(in),
		cli.WithOutput(out, errOut),
	)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return cli.ExitError
	}

	root := cobracmd.New(appName, app)
	root.SetArgs(args)
	root.SetContext(ctx)
	return cobracmd.Execute(root, app)
}

// newApp builds the demo application with its commands registered.
func newApp(cfg *config.Config, opts ...cli.Option) (*cli.Application, error) {
	base := []cli.Option{
		cli.WithName("Demo application"),
		cli.WithVersion(version),
		cli.WithDescription("Shows what a clikit application looks like."),
		cli.WithConfig(cfg),
	}
	app := cli.New(append(base, opts...)...)

	if err := app.Register("demo", NewDemoCommand); err != nil {
		return nil, err
	}
	if err := app.Register("input", NewInputCommand); err != nil {
		return nil, err
	}
	return app, nil
}
