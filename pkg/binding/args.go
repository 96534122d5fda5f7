// Package binding coerces positional arguments to declared types and binds
// boolean flags from the raw flag tokens of an invocation.
package binding

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ArgType is the declared semantic type of a positional argument.
type ArgType string

const (
	// TypeString leaves the raw token untouched.
	TypeString ArgType = "string"
	// TypeInteger parses a whole number.
	TypeInteger ArgType = "integer"
	// TypeFloat parses a floating point number.
	TypeFloat ArgType = "float"
	// TypeBoolean matches a fixed set of truthy literals.
	TypeBoolean ArgType = "boolean"
	// TypeArray splits on commas.
	TypeArray ArgType = "array"
	// TypeJSON parses a JSON literal.
	TypeJSON ArgType = "json"
)

// truthy lists the literals a boolean argument accepts as true.
var truthy = []string{"1", "true", "yes", "y"}

// ErrCoercion is the category of argument coercion failures.
var ErrCoercion = errors.New("argument coercion failed")

// ArgumentSpec declares a positional argument. Its index in the declaring
// slice is its identity.
type ArgumentSpec struct {
	Type        ArgType
	Name        string
	Description string
	// Default is used when the argument is not supplied.
	Default any
}

// ArgumentCoercionError reports a malformed structured argument.
type ArgumentCoercionError struct {
	Index int
	Name  string
	Type  ArgType
	Raw   string
	Cause error
}

// Error implements the error interface.
func (e *ArgumentCoercionError) Error() string {
	return fmt.Sprintf("argument %d (%s): cannot parse %q as %s: %v", e.Index, e.Name, e.Raw, e.Type, e.Cause)
}

// Unwrap returns the underlying parse error.
func (e *ArgumentCoercionError) Unwrap() error {
	return e.Cause
}

// Is matches the coercion category.
func (e *ArgumentCoercionError) Is(target error) bool {
	return target == ErrCoercion
}

// Value is a coerced argument. The zero Value is null.
type Value struct {
	typ   ArgType
	raw   string
	set   bool
	value any
}

// Null returns the absent value.
func Null() Value {
	return Value{}
}

// Of wraps an already typed value, e.g. a declared default.
func Of(typ ArgType, v any) Value {
	if v == nil {
		return Null()
	}
	return Value{typ: typ, raw: fmt.Sprint(v), set: true, value: v}
}

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool {
	return !v.set
}

// Type returns the declared type the value was coerced to.
func (v Value) Type() ArgType {
	return v.typ
}

// Raw returns the original token.
func (v Value) Raw() string {
	return v.raw
}

// Interface returns the coerced Go value: string, bool, int64, float64,
// []string, the decoded JSON value, or nil.
func (v Value) Interface() any {
	return v.value
}

// IsNaN reports whether a numeric value failed to parse.
func (v Value) IsNaN() bool {
	f, ok := v.value.(float64)
	return ok && math.IsNaN(f)
}

// String returns the value formatted as text, or "" when null.
func (v Value) String() string {
	if !v.set {
		return ""
	}
	if s, ok := v.value.(string); ok {
		return s
	}
	return v.raw
}

// Bool returns the boolean value; non-boolean values are false.
func (v Value) Bool() bool {
	b, _ := v.value.(bool)
	return b
}

// Int returns the integer value. ok is false for null or NaN values.
func (v Value) Int() (n int64, ok bool) {
	switch x := v.value.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case float64:
		if math.IsNaN(x) {
			return 0, false
		}
		return int64(x), true
	}
	return 0, false
}

// Float returns the float value. Null and unparsable values yield NaN.
func (v Value) Float() float64 {
	switch x := v.value.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	case int:
		return float64(x)
	}
	return math.NaN()
}

// Strings returns the array value.
func (v Value) Strings() []string {
	s, _ := v.value.([]string)
	return s
}

// Coerce converts raw according to spec.Type. Unparsable numbers become NaN
// without an error; malformed JSON returns a null value and an
// *ArgumentCoercionError for the caller to report.
func Coerce(raw string, spec ArgumentSpec) (Value, error) {
	v := Value{typ: spec.Type, raw: raw, set: true}

	switch spec.Type {
	case TypeBoolean:
		v.value = isTruthy(raw)
	case TypeInteger:
		// Always base 10: "010" is ten, "0x1F" and "1_000" are not numbers.
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			v.value = math.NaN()
		} else {
			v.value = n
		}
	case TypeFloat:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			v.value = math.NaN()
		} else {
			v.value = f
		}
	case TypeArray:
		v.value = strings.Split(raw, ",")
	case TypeJSON:
		var data any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return Null(), &ArgumentCoercionError{Name: spec.Name, Type: spec.Type, Raw: raw, Cause: err}
		}
		v.value = data
	default:
		v.typ = TypeString
		v.value = raw
	}

	return v, nil
}

// Argument coerces args[index] against specs[index]. A missing spec or a
// missing argument yields a null value and no error.
func Argument(index int, specs []ArgumentSpec, args []string) (Value, error) {
	if index < 0 || index >= len(specs) || index >= len(args) {
		return Null(), nil
	}

	v, err := Coerce(args[index], specs[index])
	var cerr *ArgumentCoercionError
	if errors.As(err, &cerr) {
		cerr.Index = index
	}
	return v, err
}

// Describe returns the description of the argument at index.
func Describe(index int, specs []ArgumentSpec) (string, bool) {
	if index < 0 || index >= len(specs) || specs[index].Description == "" {
		return "", false
	}
	return specs[index].Description, true
}

func isTruthy(raw string) bool {
	for _, t := range truthy {
		if raw == t {
			return true
		}
	}
	return false
}
