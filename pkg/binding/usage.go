package binding

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
)

// Usage renders flag specs as an aligned table, one flag per line, in
// declaration order. Only the first declaration of a form is shown.
func Usage(specs []FlagSpec) string {
	fs := pflag.NewFlagSet("usage", pflag.ContinueOnError)
	fs.SortFlags = false

	for _, f := range specs {
		name := strings.TrimLeft(f.Long, "-")
		short := strings.TrimLeft(f.Short, "-")
		if name == "" {
			name, short = short, ""
		}
		if name == "" || fs.Lookup(name) != nil {
			continue
		}
		// pflag shorthands are a single character.
		if len(short) != 1 || fs.ShorthandLookup(short) != nil {
			short = ""
		}

		if _, isBool := f.Default.(bool); f.Boolean || isBool || f.Default == nil {
			fs.BoolP(name, short, cast.ToBool(f.Default), f.Description)
		} else {
			fs.StringP(name, short, cast.ToString(f.Default), f.Description)
		}
	}

	return fs.FlagUsages()
}
