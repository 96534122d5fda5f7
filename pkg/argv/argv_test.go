package argv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		def     string
		want    *ParsedInput
		wantErr error
	}{
		{
			name:   "command args and flags",
			tokens: []string{"demo", "5000", "-i"},
			def:    "help",
			want: &ParsedInput{
				Command:  "demo",
				Explicit: true,
				Args:     []string{"5000"},
				Flags:    []string{"-i"},
			},
		},
		{
			name:   "command is case folded",
			tokens: []string{"DeMo", "A", "--Verbose"},
			want: &ParsedInput{
				Command:  "demo",
				Explicit: true,
				Args:     []string{"A"},
				Flags:    []string{"--Verbose"},
			},
		},
		{
			name:   "empty uses default",
			tokens: nil,
			def:    "help",
			want: &ParsedInput{
				Command: "help",
				Args:    []string{},
				Flags:   []string{},
			},
		},
		{
			name:    "empty without default",
			tokens:  []string{},
			wantErr: ErrNoCommand,
		},
		{
			name:   "leading flag keeps token as flag",
			tokens: []string{"-d", "x", "--verbose", "y"},
			def:    "demo",
			want: &ParsedInput{
				Command: "demo",
				Args:    []string{"x", "y"},
				Flags:   []string{"-d", "--verbose"},
			},
		},
		{
			name:    "leading flag without default",
			tokens:  []string{"-d"},
			wantErr: ErrNoCommand,
		},
		{
			name:   "interleaved order preserved",
			tokens: []string{"run", "a", "-x", "b", "--y", "c"},
			want: &ParsedInput{
				Command:  "run",
				Explicit: true,
				Args:     []string{"a", "b", "c"},
				Flags:    []string{"-x", "--y"},
			},
		},
		{
			name:   "no quoting applied",
			tokens: []string{"echo", `"a b"`, "-"},
			want: &ParsedInput{
				Command:  "echo",
				Explicit: true,
				Args:     []string{`"a b"`},
				Flags:    []string{"-"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.tokens, tt.def)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_CommandNeverInArgs(t *testing.T) {
	inputs := [][]string{
		{"a"},
		{"a", "a"},
		{"cmd", "x", "-f", "cmd"},
	}
	for _, tokens := range inputs {
		got, err := Parse(tokens, "")
		if err != nil {
			t.Fatalf("Parse(%v): %v", tokens, err)
		}
		if got.Command != tokens[0] {
			t.Errorf("Parse(%v) command = %q", tokens, got.Command)
		}
		if len(got.Args)+len(got.Flags) != len(tokens)-1 {
			t.Errorf("Parse(%v) did not consume exactly the command token", tokens)
		}
	}
}

func TestParse_DoesNotMutateInput(t *testing.T) {
	tokens := []string{"Demo", "1"}
	if _, err := Parse(tokens, ""); err != nil {
		t.Fatal(err)
	}
	if tokens[0] != "Demo" {
		t.Errorf("input slice was modified: %v", tokens)
	}
}

func TestHasFlag(t *testing.T) {
	in, err := Parse([]string{"x", "-v", "--describe"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if !in.HasFlag("-d", "--describe") {
		t.Error("expected --describe to match")
	}
	if in.HasFlag("-h", "--help") {
		t.Error("did not expect help flag")
	}
	if in.HasFlag("") {
		t.Error("empty form must never match")
	}
}
