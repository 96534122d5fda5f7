package cli

import (
	"fmt"
	"strings"

	"github.com/CliForge/clikit/pkg/binding"
	"github.com/CliForge/clikit/pkg/output"
)

// Describe prints the command's usage: name, description, arguments and
// flags.
func (i *Invocation) Describe() {
	p := i.app.printer
	ext, hasExt := i.cmd.(DescribeExtender)

	p.Success("Describing command: " + i.spec.Name)
	p.Println()
	p.Println(" " + i.spec.Description)

	if hasExt {
		ext.AfterDescribeHead(p)
	}

	printArgs(p, i.spec.Args, "")
	printFlags(p, i.spec.Flags, "")
	p.Println()

	if hasExt {
		ext.AfterDescribeBody(p)
	}
}

// printArgs lists argument specs by index. Nothing is printed for an empty
// list.
func printArgs(p *output.Printer, args []binding.ArgumentSpec, title string) {
	if len(args) == 0 {
		return
	}
	if title == "" {
		title = " Arguments:"
	}

	p.Println()
	p.Println(title)
	for idx, arg := range args {
		p.Println(fmt.Sprintf("  %s %s {%s} : %s",
			output.Highlight(idx), output.Name(arg.Name), output.Kind(arg.Type), arg.Description))
	}
}

// printFlags lists flag specs as an aligned table. Nothing is printed for
// an empty list.
func printFlags(p *output.Printer, flags []binding.FlagSpec, title string) {
	if len(flags) == 0 {
		return
	}
	if title == "" {
		title = " Flags:"
	}

	p.Println()
	p.Println(title)
	for _, line := range strings.Split(strings.TrimRight(binding.Usage(flags), "\n"), "\n") {
		p.Println(" " + line)
	}
}

// argDescription returns the declared description of argument idx.
func argDescription(idx int, args []binding.ArgumentSpec) string {
	if desc, ok := binding.Describe(idx, args); ok {
		return desc
	}
	return "Unknown argument"
}

// flagDescription looks a flag token up in the given scopes in order.
func flagDescription(token string, scopes ...[]binding.FlagSpec) string {
	if f, ok := binding.LookupFlag(token, scopes...); ok && f.Description != "" {
		return f.Description
	}
	return "Unknown flag"
}
