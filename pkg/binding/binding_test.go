package binding

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce_Boolean(t *testing.T) {
	spec := ArgumentSpec{Type: TypeBoolean, Name: "flag"}

	for _, raw := range []string{"1", "true", "yes", "y"} {
		v, err := Coerce(raw, spec)
		require.NoError(t, err)
		assert.True(t, v.Bool(), raw)
	}
	for _, raw := range []string{"0", "false", "TRUE", "Yes", "", "on"} {
		v, err := Coerce(raw, spec)
		require.NoError(t, err)
		assert.False(t, v.Bool(), raw)
	}
}

func TestCoerce_Integer(t *testing.T) {
	spec := ArgumentSpec{Type: TypeInteger, Name: "delay"}

	v, err := Coerce("5000", spec)
	require.NoError(t, err)
	n, ok := v.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(5000), n)
	assert.False(t, v.IsNaN())

	v, err = Coerce("nope", spec)
	require.NoError(t, err, "unparsable numbers are not errors")
	assert.True(t, v.IsNaN())
	assert.False(t, v.IsNull())
	_, ok = v.Int()
	assert.False(t, ok)
	assert.True(t, math.IsNaN(v.Float()))
}

func TestCoerce_IntegerIsDecimal(t *testing.T) {
	spec := ArgumentSpec{Type: TypeInteger}

	tests := []struct {
		raw  string
		want int64
		nan  bool
	}{
		{raw: "010", want: 10},
		{raw: "08", want: 8},
		{raw: "-42", want: -42},
		{raw: "+7", want: 7},
		{raw: "0x1F", nan: true},
		{raw: "0b11", nan: true},
		{raw: "1_000", nan: true},
		{raw: "3.5", nan: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := Coerce(tt.raw, spec)
			require.NoError(t, err)
			if tt.nan {
				assert.True(t, v.IsNaN())
				return
			}
			n, ok := v.Int()
			assert.True(t, ok)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestCoerce_Float(t *testing.T) {
	spec := ArgumentSpec{Type: TypeFloat}

	v, err := Coerce("2.5", spec)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v.Float())

	v, err = Coerce("abc", spec)
	require.NoError(t, err)
	assert.True(t, v.IsNaN())
}

func TestCoerce_Array(t *testing.T) {
	v, err := Coerce("a,b,c", ArgumentSpec{Type: TypeArray})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, v.Strings())

	v, err = Coerce(" a, b", ArgumentSpec{Type: TypeArray})
	require.NoError(t, err)
	assert.Equal(t, []string{" a", " b"}, v.Strings(), "elements are not trimmed")
}

func TestCoerce_JSON(t *testing.T) {
	spec := ArgumentSpec{Type: TypeJSON, Name: "payload"}

	v, err := Coerce(`{"a":[1,2]}`, spec)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": []any{1.0, 2.0}}, v.Interface())

	v, err = Coerce(`{"a":`, spec)
	require.Error(t, err)
	assert.True(t, v.IsNull())
	assert.True(t, errors.Is(err, ErrCoercion))

	var cerr *ArgumentCoercionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "payload", cerr.Name)
	assert.Equal(t, `{"a":`, cerr.Raw)
}

func TestCoerce_StringDefault(t *testing.T) {
	v, err := Coerce("Hello World", ArgumentSpec{Type: TypeString})
	require.NoError(t, err)
	assert.Equal(t, "Hello World", v.String())

	v, err = Coerce("x", ArgumentSpec{Type: "unknown"})
	require.NoError(t, err)
	assert.Equal(t, TypeString, v.Type())
	assert.Equal(t, "x", v.Interface())
}

func TestArgument(t *testing.T) {
	specs := []ArgumentSpec{
		{Type: TypeInteger, Name: "delay"},
		{Type: TypeJSON, Name: "data"},
	}

	v, err := Argument(0, specs, []string{"5000"})
	require.NoError(t, err)
	n, _ := v.Int()
	assert.Equal(t, int64(5000), n)

	// Missing raw value.
	v, err = Argument(1, specs, []string{"5000"})
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	// Missing spec.
	v, err = Argument(2, specs, []string{"1", "{}", "extra"})
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	v, err = Argument(-1, specs, []string{"1"})
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	// Coercion errors carry the index.
	_, err = Argument(1, specs, []string{"1", "{"})
	var cerr *ArgumentCoercionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 1, cerr.Index)
}

func TestDescribe(t *testing.T) {
	specs := []ArgumentSpec{{Type: TypeString, Name: "a", Description: "first"}}

	desc, ok := Describe(0, specs)
	assert.True(t, ok)
	assert.Equal(t, "first", desc)

	_, ok = Describe(3, specs)
	assert.False(t, ok)
}

func TestOf(t *testing.T) {
	assert.True(t, Of(TypeInteger, nil).IsNull())

	v := Of(TypeInteger, int64(2000))
	n, ok := v.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(2000), n)
	assert.Equal(t, "2000", v.Raw())
}

func TestFlagSpec_Key(t *testing.T) {
	assert.Equal(t, "verbose", Bool("-i", "--verbose", "").Key())
	assert.Equal(t, "no_color", Bool("", "--no-color", "").Key())
	assert.Equal(t, "x", Bool("-x", "", "").Key())
	assert.Equal(t, "custom", FlagSpec{ID: "custom", Long: "--other"}.Key())
}

func TestBindFlags(t *testing.T) {
	specs := []FlagSpec{
		Bool("-i", "--verbose", "Verbose"),
		Bool("-d", "--describe", "Describe"),
		{Short: "-f", Long: "--force", Default: "true", Boolean: true},
		{Short: "-m", Long: "--mode", Default: "fast"},
	}

	values := NewFlagValues()
	BindFlags(values, specs, []string{"-i", "--describe"})

	assert.True(t, values.Enabled("verbose"))
	assert.True(t, values.Enabled("describe"))
	assert.True(t, values.Enabled("force"), "boolean defaults are coerced")

	mode, ok := values.Get("mode")
	assert.True(t, ok)
	assert.Equal(t, "fast", mode, "non-boolean defaults are kept as declared")

	assert.False(t, values.Enabled("missing"))
}

func TestBindFlags_Idempotent(t *testing.T) {
	specs := []FlagSpec{
		Bool("-i", "--verbose", ""),
		Bool("-q", "--quiet", ""),
		{Long: "--level", Default: 3},
	}
	tokens := []string{"--verbose", "-x"}

	values := NewFlagValues()
	BindFlags(values, specs, tokens)
	first := values.Snapshot()
	BindFlags(values, specs, tokens)

	assert.Equal(t, first, values.Snapshot())
}

func TestBindFlags_OrderIndependent(t *testing.T) {
	specs := []FlagSpec{Bool("-a", "--alpha", ""), Bool("-b", "--beta", "")}
	reversed := []FlagSpec{specs[1], specs[0]}
	tokens := []string{"-b"}

	a, b := NewFlagValues(), NewFlagValues()
	BindFlags(a, specs, tokens)
	BindFlags(b, reversed, tokens)

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestBindFlags_ScopeShadowing(t *testing.T) {
	app := []FlagSpec{{Short: "-i", Long: "--verbose", Default: true, Boolean: true}}
	cmd := []FlagSpec{Bool("-i", "--verbose", "")}

	values := NewFlagValues()
	BindFlags(values, app, nil)
	BindFlags(values, cmd, nil)

	assert.False(t, values.Enabled("verbose"), "command scope is bound last and wins")
}

func TestBindFlags_ZeroTarget(t *testing.T) {
	var values FlagValues
	BindFlags(&values, []FlagSpec{Bool("-a", "--alpha", "")}, []string{"--alpha"})
	assert.True(t, values.Enabled("alpha"))
}

func TestValidateFlags(t *testing.T) {
	require.NoError(t, ValidateFlags([]FlagSpec{
		Bool("-a", "--alpha", ""),
		Bool("-b", "--beta", ""),
		Bool("", "--gamma", ""),
		Bool("", "--delta", ""),
	}))

	err := ValidateFlags([]FlagSpec{
		Bool("-a", "--alpha", ""),
		Bool("-a", "--another", ""),
	})
	var dup *DuplicateFlagError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "-a", dup.Form)
	assert.Equal(t, "alpha", dup.First)
	assert.Equal(t, "another", dup.Other)
}

func TestLookupFlag(t *testing.T) {
	app := []FlagSpec{Bool("-v", "--version", "app version"), Bool("-i", "--verbose", "app verbose")}
	cmd := []FlagSpec{Bool("-i", "--verbose", "command verbose")}

	f, ok := LookupFlag("-i", cmd, app)
	require.True(t, ok)
	assert.Equal(t, "command verbose", f.Description)

	f, ok = LookupFlag("--version", cmd, app)
	require.True(t, ok)
	assert.Equal(t, "app version", f.Description)

	_, ok = LookupFlag("--nope", cmd, app)
	assert.False(t, ok)
}

func TestUsage(t *testing.T) {
	out := Usage([]FlagSpec{
		Bool("-i", "--verbose", "Enable verbose output."),
		Bool("-i", "--verbose", "Shadowed duplicate."),
		Bool("", "--no-color", "Disable colors."),
		{Short: "-xy", Long: "--wide", Description: "Long shorthand.", Default: false, Boolean: true},
		{Long: "--mode", Description: "Mode.", Default: "fast"},
	})

	assert.Contains(t, out, "-i, --verbose")
	assert.Contains(t, out, "Enable verbose output.")
	assert.NotContains(t, out, "Shadowed duplicate.")
	assert.Contains(t, out, "--no-color")
	assert.Contains(t, out, "--wide")
	assert.Contains(t, out, `(default "fast")`)
	assert.Less(t, strings.Index(out, "--verbose"), strings.Index(out, "--no-color"))
}
