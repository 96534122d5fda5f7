// Package argv splits raw process arguments into a command name,
// positional arguments and flag tokens.
//
// The convention is strictly positional: the first token names the command
// unless it is a flag, every later token starting with "-" is a flag and
// everything else is a positional argument. Tokens are expected to be
// pre-split by the shell; no quoting or escaping is interpreted.
package argv

import (
	"errors"
	"strings"
)

// ErrNoCommand is returned when no command can be determined from the input.
var ErrNoCommand = errors.New("no arguments supplied and no default command set")

// ParsedInput is the result of splitting a token sequence.
type ParsedInput struct {
	// Command is the case-folded command name, or the default command.
	Command string
	// Explicit reports whether Command was taken from the tokens.
	Explicit bool
	// Args holds the positional arguments after the command, in order.
	Args []string
	// Flags holds every "-" prefixed token, in order.
	Flags []string
}

// Parse splits tokens using defaultCommand when no command is given.
func Parse(tokens []string, defaultCommand string) (*ParsedInput, error) {
	in := &ParsedInput{
		Args:  []string{},
		Flags: []string{},
	}

	rest := tokens
	switch {
	case len(tokens) == 0 || IsFlag(tokens[0]):
		if defaultCommand == "" {
			return nil, ErrNoCommand
		}
		in.Command = strings.ToLower(defaultCommand)
	default:
		in.Command = strings.ToLower(tokens[0])
		in.Explicit = true
		rest = tokens[1:]
	}

	for _, tok := range rest {
		if IsFlag(tok) {
			in.Flags = append(in.Flags, tok)
		} else {
			in.Args = append(in.Args, tok)
		}
	}

	return in, nil
}

// IsFlag reports whether a token is a flag token.
func IsFlag(token string) bool {
	return strings.HasPrefix(token, "-")
}

// HasFlag reports whether any of the given forms appears verbatim.
func (p *ParsedInput) HasFlag(forms ...string) bool {
	for _, tok := range p.Flags {
		for _, f := range forms {
			if f != "" && tok == f {
				return true
			}
		}
	}
	return false
}
