package binding

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// FlagSpec declares an order-independent switch.
type FlagSpec struct {
	// ID is the identifier values are stored under. Empty means derived
	// from Long, see Key.
	ID          string
	Short       string
	Long        string
	Description string
	// Default is used when neither form is present.
	Default any
	// Boolean coerces Default to a bool when binding.
	Boolean bool
}

// Key returns the identifier the flag's value is bound to: ID when set,
// otherwise Long without leading dashes and with inner hyphens replaced by
// underscores ("--no-color" becomes "no_color").
func (f FlagSpec) Key() string {
	if f.ID != "" {
		return f.ID
	}
	key := strings.TrimLeft(f.Long, "-")
	if key == "" {
		key = strings.TrimLeft(f.Short, "-")
	}
	return strings.ReplaceAll(key, "-", "_")
}

// Matches reports whether token is one of the flag's forms.
func (f FlagSpec) Matches(token string) bool {
	return token != "" && (token == f.Short || token == f.Long)
}

// Bool declares a boolean flag defaulting to false.
func Bool(short, long, description string) FlagSpec {
	return FlagSpec{Short: short, Long: long, Description: description, Default: false, Boolean: true}
}

// DuplicateFlagError reports two flags sharing a form inside one scope.
type DuplicateFlagError struct {
	Form  string
	First string
	Other string
}

// Error implements the error interface.
func (e *DuplicateFlagError) Error() string {
	return fmt.Sprintf("flag form %q declared by both %q and %q", e.Form, e.First, e.Other)
}

// ValidateFlags checks that no short or long form is declared twice.
func ValidateFlags(specs []FlagSpec) error {
	seen := make(map[string]string, len(specs)*2)
	for _, f := range specs {
		for _, form := range []string{f.Short, f.Long} {
			if form == "" {
				continue
			}
			if owner, ok := seen[form]; ok {
				return &DuplicateFlagError{Form: form, First: owner, Other: f.Key()}
			}
			seen[form] = f.Key()
		}
	}
	return nil
}

// FlagValues maps flag identifiers to their bound values.
type FlagValues struct {
	values map[string]any
}

// NewFlagValues creates an empty value set.
func NewFlagValues() *FlagValues {
	return &FlagValues{values: make(map[string]any)}
}

// BindFlags sets every spec's value on target: true when the short or long
// form appears verbatim in tokens, otherwise the declared default. Binding
// the same tokens again yields the same values.
func BindFlags(target *FlagValues, specs []FlagSpec, tokens []string) {
	if target.values == nil {
		target.values = make(map[string]any, len(specs))
	}
	for _, f := range specs {
		target.values[f.Key()] = flagValue(f, tokens)
	}
}

func flagValue(f FlagSpec, tokens []string) any {
	for _, tok := range tokens {
		if f.Matches(tok) {
			return true
		}
	}
	if f.Boolean {
		return cast.ToBool(f.Default)
	}
	return f.Default
}

// Enabled reports whether the flag bound under id is truthy.
func (v *FlagValues) Enabled(id string) bool {
	val, ok := v.values[id]
	if !ok {
		return false
	}
	return cast.ToBool(val)
}

// Get returns the raw bound value.
func (v *FlagValues) Get(id string) (any, bool) {
	val, ok := v.values[id]
	return val, ok
}

// Set overrides a bound value.
func (v *FlagValues) Set(id string, value any) {
	if v.values == nil {
		v.values = make(map[string]any)
	}
	v.values[id] = value
}

// Snapshot returns a copy of all bound values.
func (v *FlagValues) Snapshot() map[string]any {
	out := make(map[string]any, len(v.values))
	for k, val := range v.values {
		out[k] = val
	}
	return out
}

// LookupFlag finds the spec a token refers to, searching scopes in order.
// Earlier scopes shadow later ones.
func LookupFlag(token string, scopes ...[]FlagSpec) (FlagSpec, bool) {
	for _, specs := range scopes {
		for _, f := range specs {
			if f.Matches(token) {
				return f, true
			}
		}
	}
	return FlagSpec{}, false
}
