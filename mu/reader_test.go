package mu

import (
	"errors"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"abc", "abc"},
		{`"a b"`, "a b"},
		{"()", "()"},
		{"(a (b (c)) d)", "(a (b (c)) d)"},
		{"(quote (testing 1 (2.0) -3.14e159))", "(quote (testing 1 (2.0) -3.14e159))"},
		{"  ( +   1\n 2 )  ", "(+ 1 2)"},
	}
	for _, tt := range tests {
		tokens, err := Tokenize(tt.src)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", tt.src, err)
		}
		rr := NewReader(tokens)
		x, err := rr.Read()
		if err != nil {
			t.Errorf("Read(%q) error: %v", tt.src, err)
			continue
		}
		if got := Str(x); got != tt.want {
			t.Errorf("Read(%q) = %s, want %s", tt.src, got, tt.want)
		}
		if rr.More() {
			t.Errorf("Read(%q) left tokens", tt.src)
		}
	}
}

func TestReadKinds(t *testing.T) {
	xs, err := Parse(`(1 x "s")`)
	if err != nil {
		t.Fatal(err)
	}
	j, ok := xs[0].(List)
	if !ok || len(j) != 3 {
		t.Fatalf("Parse = %#v", xs)
	}
	if _, ok := j[0].(Number); !ok {
		t.Errorf("%#v is not a Number", j[0])
	}
	if j[1] != NewSym("x") {
		t.Errorf("%#v is not the symbol x", j[1])
	}
	if s, ok := j[2].(string); !ok || s != "s" {
		t.Errorf("%#v is not the string s", j[2])
	}
}

func TestReadSuccessive(t *testing.T) {
	xs, err := Parse("(define x 1) x\n(+ x 1)")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"(define x 1)", "x", "(+ x 1)"}
	if len(xs) != len(want) {
		t.Fatalf("Parse read %d expressions, want %d", len(xs), len(want))
	}
	for i, x := range xs {
		if Str(x) != want[i] {
			t.Errorf("expression %d = %s, want %s", i, Str(x), want[i])
		}
	}
}

func TestReadUnbalanced(t *testing.T) {
	tests := []struct {
		src        string
		incomplete bool
	}{
		{"(", true},
		{"(+ 1 (* 2 3)", true},
		{")", false},
		{"(+ 1 2))", false},
	}
	for _, tt := range tests {
		_, err := Parse(tt.src)
		if !errors.Is(err, ErrUnbalancedParen) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.src, err, ErrUnbalancedParen)
		}
		if IsIncomplete(err) != tt.incomplete {
			t.Errorf("IsIncomplete(Parse(%q)) = %v, want %v", tt.src, !tt.incomplete, tt.incomplete)
		}
	}
}

func TestReadEmpty(t *testing.T) {
	_, err := NewReader(nil).Read()
	if !errors.Is(err, ErrUnbalancedParen) {
		t.Errorf("Read() on no tokens error = %v", err)
	}
}

func TestReadBooleans(t *testing.T) {
	xs, err := Parse("#t #f (#t x)")
	if err != nil {
		t.Fatal(err)
	}
	if xs[0] != true || xs[1] != false {
		t.Errorf("Parse(#t #f) = %#v, %#v", xs[0], xs[1])
	}
	if b, ok := xs[2].(List)[0].(bool); !ok || !b {
		t.Errorf("#t inside a list read as %#v", xs[2].(List)[0])
	}
}

func TestReadNestingLimit(t *testing.T) {
	tokens, err := Tokenize("((()))")
	if err != nil {
		t.Fatal(err)
	}
	rr := NewReader(tokens)
	rr.maxDepth = 3
	if x, err := rr.Read(); err != nil || Str(x) != "((()))" {
		t.Errorf("Read = %v, %v; want ((()))", x, err)
	}

	tokens, _ = Tokenize("(((())))")
	rr = NewReader(tokens)
	rr.maxDepth = 3
	if _, err := rr.Read(); !errors.Is(err, ErrStackExhaustion) {
		t.Errorf("Read of 4 levels error = %v, want %v", err, ErrStackExhaustion)
	}

	deep := strings.Repeat("(", DefaultMaxDepth+10)
	if _, err := Parse(deep); !errors.Is(err, ErrStackExhaustion) {
		t.Errorf("Parse of %d open parens error = %v, want %v", DefaultMaxDepth+10, err, ErrStackExhaustion)
	}
}
