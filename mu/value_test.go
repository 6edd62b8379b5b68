package mu

import (
	"strings"
	"testing"
)

func TestStr(t *testing.T) {
	tests := []struct {
		x    Any
		want string
	}{
		{Number("-3.14e159"), "-3.14e159"},
		{"some string", "some string"},
		{true, "#t"},
		{false, "#f"},
		{Nil, "nil"},
		{List{}, "()"},
		{List{NewSym("a"), List{Number("1"), "s"}, List{}}, "(a (1 s) ())"},
		{&Lambda{}, "<Lambda>"},
		{&Primitive{"car", car_}, "<Proc>"},
	}
	for _, tt := range tests {
		if got := Str(tt.x); got != tt.want {
			t.Errorf("Str(%#v) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestStrDeepList(t *testing.T) {
	var x Any = Number("1")
	for i := 0; i < DefaultMaxDepth+5; i++ {
		x = List{x}
	}
	s := Str(x)
	want := strings.Repeat("(", DefaultMaxDepth) + "..." + strings.Repeat(")", DefaultMaxDepth)
	if s != want {
		t.Errorf("Str of a %d-level list has length %d, want %d", DefaultMaxDepth+5, len(s), len(want))
	}
}
