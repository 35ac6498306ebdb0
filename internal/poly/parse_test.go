package poly

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Term
	}{
		{"two pairs", "2 3 5 1", []Term{NewTerm(2, 3), NewTerm(5, 1)}},
		{"trailing coefficient", "2 3 5", []Term{NewTerm(2, 3)}},
		{"empty", "", []Term{}},
		{"blank", "   \t ", []Term{}},
		{"garbage", "hello world", []Term{}},
		{"stops at bad exponent", "1 2 3 x 4 0", []Term{NewTerm(1, 2)}},
		{"decimal exponent", "1 2.5", []Term{NewTerm(1, 2)}},
		{"suffix after exponent", "3 2x", []Term{NewTerm(3, 2)}},
		{"fractional exponent splits", "1.5 2.7", []Term{NewTerm(1.5, 2)}},
		{"suffix stops later pair", "1 2 3 4x", []Term{NewTerm(1, 2), NewTerm(3, 4)}},
		{"fraction starts next pair", "1 2.7 3", []Term{NewTerm(1, 2), NewTerm(0.7, 3)}},
		{"glued sign", "2 1-3 0", []Term{NewTerm(2, 1), NewTerm(-3, 0)}},
		{"dangling exponent marker", "1e 2", []Term{}},
		{"exponent overflow", "1 99999999999999999999", []Term{}},
		{"negative exponent", "2 -1", []Term{NewTerm(2, -1)}},
		{"zero coefficient kept", "0 4 1 0", []Term{NewTerm(0, 4), NewTerm(1, 0)}},
		{"first line only", "1 1\n2 2", []Term{NewTerm(1, 1)}},
		{"scientific", "-1.5e2 3", []Term{NewTerm(-150, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewDefault()
			p.Parse(tt.input)
			if diff := cmp.Diff(tt.want, p.Terms(), termCmp); diff != "" {
				t.Errorf("Parse(%q) (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse_ResetsPriorTerms(t *testing.T) {
	p, _ := New(1)
	for i := 0; i < 6; i++ {
		p.AddTerm(1, i)
	}
	p.Parse("7 0")
	if p.Len() != 1 {
		t.Errorf("expected 1 term, got %d", p.Len())
	}
	if p.Capacity() != 8 {
		t.Errorf("expected capacity kept at 8, got %d", p.Capacity())
	}
}

func TestParse_GrowsStorage(t *testing.T) {
	p, _ := New(1)
	p.Parse("1 0 1 1 1 2 1 3 1 4")
	if p.Len() != 5 {
		t.Fatalf("expected 5 terms, got %d", p.Len())
	}
	if p.Capacity() != 8 {
		t.Errorf("expected capacity 8, got %d", p.Capacity())
	}
}

func TestParseStrict(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantKind   ParseErrorKind
		wantParsed int
		wantRest   string
	}{
		{"clean", "3 2 -1 1", 0, 2, ""},
		{"blank", "  ", 0, 0, ""},
		{"no pairs", "abc 1", ParseNoPairs, 0, "abc 1"},
		{"lone coefficient", "5", ParseNoPairs, 0, "5"},
		{"trailing", "2 3 5", ParseTrailingInput, 1, "5"},
		{"trailing garbage", "2 3 x y z", ParseTrailingInput, 1, "x y z"},
		{"suffix after exponent", "3 2x", ParseTrailingInput, 1, "x"},
		{"fraction left over", "1.5 2.7", ParseTrailingInput, 1, ".7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewDefault()
			err := p.ParseStrict(tt.input)
			if p.Len() != tt.wantParsed {
				t.Errorf("parsed %d terms, want %d", p.Len(), tt.wantParsed)
			}
			if tt.wantKind == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if perr.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", perr.Kind, tt.wantKind)
			}
			if perr.Parsed != tt.wantParsed {
				t.Errorf("Parsed = %d, want %d", perr.Parsed, tt.wantParsed)
			}
			if perr.Remainder != tt.wantRest {
				t.Errorf("Remainder = %q, want %q", perr.Remainder, tt.wantRest)
			}
			if !errors.Is(err, ErrMalformedTerm) {
				t.Error("ParseError should unwrap to ErrMalformedTerm")
			}
		})
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"3 2 -1 1\n9 9\n", "3 2 -1 1"},
		{"no newline", "no newline"},
		{"", ""},
		{"\nsecond", ""},
	}

	for _, tt := range tests {
		got, err := FirstLine(strings.NewReader(tt.input))
		if err != nil {
			t.Fatalf("FirstLine(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("FirstLine(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestReadLine(t *testing.T) {
	p := NewDefault()
	if err := p.ReadLine(strings.NewReader("3 2 -1 1 4 0\n9 9\n")); err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if got := p.Render(); got != "3x^2 - x + 4" {
		t.Errorf("Render() = %q", got)
	}

	if err := p.ReadLine(strings.NewReader("")); err != nil {
		t.Fatalf("ReadLine on empty reader failed: %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("expected no terms, got %d", p.Len())
	}
}
