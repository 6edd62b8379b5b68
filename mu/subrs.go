package mu

import (
	"fmt"
	"strconv"
)

// Subrs is the table of primitive procedures bound in the global frame.
var Subrs = map[string]func(List) (Any, error){
	"+": add_,
	"-": sub_,
	"*": mul_,
	"/": div_,

	">":  compareAll(">", func(a, b int64) bool { return a > b }),
	"<":  compareAll("<", func(a, b int64) bool { return a < b }),
	"<=": compareAll("<=", func(a, b int64) bool { return a <= b }),

	"car":    car_,
	"cdr":    cdr_,
	"cons":   cons_,
	"append": append_,
	"list":   list_,
	"length": length_,
	"null?":  nullP_,
}

// ToInt decodes x the way C's atol does: an optional sign and the
// leading digits, ignoring the rest. Overflow wraps around.
func ToInt(x Any) (int64, error) {
	s, ok := x.(Number)
	if !ok {
		return 0, NewEvalError(ErrType, "not a number", x)
	}
	var n int64
	i, neg := 0, false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	for ; i < len(s) && isDigit(s[i]); i++ {
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}

// FromInt encodes n as a Number.
func FromInt(n int64) Number {
	return Number(strconv.FormatInt(n, 10))
}

func arity(name string, args List, min, max int) error {
	if len(args) < min || (max >= 0 && len(args) > max) {
		return &EvalError{ErrArity,
			fmt.Sprintf("%s given %d: %s", name, len(args), Str(args))}
	}
	return nil
}

// foldL folds the numbers of args with fn, starting from the first one.
func foldL(name string, args List, fn func(int64, int64) (int64, error)) (Any, error) {
	if err := arity(name, args, 1, -1); err != nil {
		return nil, err
	}
	acc, err := ToInt(args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		n, err := ToInt(a)
		if err != nil {
			return nil, err
		}
		if acc, err = fn(acc, n); err != nil {
			return nil, err
		}
	}
	return FromInt(acc), nil
}

func add_(x List) (Any, error) {
	return foldL("+", x, func(a, b int64) (int64, error) { return a + b, nil })
}

func sub_(x List) (Any, error) {
	return foldL("-", x, func(a, b int64) (int64, error) { return a - b, nil })
}

func mul_(x List) (Any, error) {
	return foldL("*", x, func(a, b int64) (int64, error) { return a * b, nil })
}

func div_(x List) (Any, error) {
	return foldL("/", x, func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, NewEvalError(ErrDivisionByZero, "/", x)
		}
		return a / b, nil
	})
}

// compareAll(name, fn) makes a primitive which returns
// fn(a, b) && fn(b, c) && fn(c, d) for (a b c d).
func compareAll(name string, fn func(int64, int64) bool) func(List) (Any, error) {
	return func(x List) (Any, error) {
		if err := arity(name, x, 1, -1); err != nil {
			return nil, err
		}
		a, err := ToInt(x[0])
		if err != nil {
			return nil, err
		}
		result := true
		for _, e := range x[1:] {
			b, err := ToInt(e)
			if err != nil {
				return nil, err
			}
			if !fn(a, b) {
				result = false
			}
			a = b
		}
		return result, nil
	}
}

// listArg returns args[i] as a list or fails with ErrType.
func listArg(name string, args List, i int) (List, error) {
	j, ok := asList(args[i])
	if !ok {
		return nil, NewEvalError(ErrType, name+" expects a list", args[i])
	}
	return j, nil
}

func car_(x List) (Any, error) {
	if err := arity("car", x, 1, 1); err != nil {
		return nil, err
	}
	j, err := listArg("car", x, 0)
	if err != nil {
		return nil, err
	}
	if len(j) == 0 {
		return nil, NewEvalError(ErrEmptyList, "car", x[0])
	}
	return j[0], nil
}

// cdr_ returns Nil, not (), when the list has fewer than two elements.
func cdr_(x List) (Any, error) {
	if err := arity("cdr", x, 1, 1); err != nil {
		return nil, err
	}
	j, err := listArg("cdr", x, 0)
	if err != nil {
		return nil, err
	}
	if len(j) < 2 {
		return Nil, nil
	}
	return append(List{}, j[1:]...), nil
}

func cons_(x List) (Any, error) {
	if err := arity("cons", x, 2, 2); err != nil {
		return nil, err
	}
	j, err := listArg("cons", x, 1)
	if err != nil {
		return nil, err
	}
	result := make(List, 0, len(j)+1)
	result = append(result, x[0])
	return append(result, j...), nil
}

func append_(x List) (Any, error) {
	if err := arity("append", x, 2, 2); err != nil {
		return nil, err
	}
	a, err := listArg("append", x, 0)
	if err != nil {
		return nil, err
	}
	b, err := listArg("append", x, 1)
	if err != nil {
		return nil, err
	}
	result := make(List, 0, len(a)+len(b))
	result = append(result, a...)
	return append(result, b...), nil
}

func list_(x List) (Any, error) {
	return append(List{}, x...), nil
}

func length_(x List) (Any, error) {
	if err := arity("length", x, 1, 1); err != nil {
		return nil, err
	}
	j, err := listArg("length", x, 0)
	if err != nil {
		return nil, err
	}
	return FromInt(int64(len(j))), nil
}

func nullP_(x List) (Any, error) {
	if err := arity("null?", x, 1, 1); err != nil {
		return nil, err
	}
	j, ok := asList(x[0])
	return ok && len(j) == 0, nil
}
