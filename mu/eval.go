package mu

import "fmt"

// DefaultMaxDepth is the default limit of nested evaluations and of
// list nesting in the reader and printer. A goroutine stack may grow
// to 1 GB; an evaluation level takes well under 1 KB of it.
const DefaultMaxDepth = 100000

// evaluator carries the depth limit through one evaluation.
type evaluator struct {
	maxDepth int
}

// Eval evaluates expression in env with the default depth limit.
func Eval(expression Any, env *Env) (Any, error) {
	ev := evaluator{DefaultMaxDepth}
	return ev.eval(expression, env, 0)
}

func (ev *evaluator) eval(expression Any, env *Env, depth int) (Any, error) {
	if depth > ev.maxDepth {
		return nil, &EvalError{ErrStackExhaustion,
			fmt.Sprintf("nesting exceeds %d", ev.maxDepth)}
	}
	depth++
	switch x := expression.(type) {
	case *Sym:
		return env.Lookup(x)
	case List:
		if len(x) == 0 {
			return Nil, nil
		}
		if f, ok := x[0].(*Sym); ok && f.IsKeyword {
			return ev.evalSpecial(f, x, env, depth)
		}
		fn, err := ev.eval(x[0], env, depth)
		if err != nil {
			return nil, err
		}
		args := make(List, 0, len(x)-1)
		for _, e := range x[1:] {
			v, err := ev.eval(e, env, depth)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
		return ev.apply(fn, args, depth)
	default:
		return x, nil // numbers, strings and booleans
	}
}

func (ev *evaluator) evalSpecial(f *Sym, x List, env *Env, depth int) (Any, error) {
	switch f {
	case Quote_: // (quote e)
		if len(x) != 2 {
			return nil, NewEvalError(ErrArity, "bad quote", x)
		}
		return x[1], nil
	case If_: // (if cond then [else])
		if len(x) != 3 && len(x) != 4 {
			return nil, NewEvalError(ErrArity, "bad if", x)
		}
		test, err := ev.eval(x[1], env, depth)
		if err != nil {
			return nil, err
		}
		if b, ok := test.(bool); ok && !b {
			if len(x) == 3 {
				return Nil, nil
			}
			return ev.eval(x[3], env, depth)
		}
		return ev.eval(x[2], env, depth)
	case SetQ_: // (set! v e)
		sym, value, err := ev.evalBinding(x, env, depth)
		if err != nil {
			return nil, err
		}
		if err := env.Set(sym, value); err != nil {
			return nil, err
		}
		return value, nil
	case Define_:
		if len(x) >= 3 {
			if s, ok := x[1].(List); ok { // (define (f v...) e...)
				if len(s) == 0 {
					return nil, NewEvalError(ErrType, "not definable", s)
				}
				name, ok := s[0].(*Sym)
				if !ok {
					return nil, NewEvalError(ErrType, "not definable", s[0])
				}
				fn, err := makeLambda(s[1:], x[2:], env)
				if err != nil {
					return nil, err
				}
				env.Define(name, fn)
				return fn, nil
			}
		}
		sym, value, err := ev.evalBinding(x, env, depth) // (define v e)
		if err != nil {
			return nil, err
		}
		env.Define(sym, value)
		return value, nil
	case Lambda_: // (lambda (v...) e...)
		if len(x) < 3 {
			return nil, NewEvalError(ErrArity, "bad lambda", x)
		}
		params, ok := asList(x[1])
		if !ok {
			return nil, NewEvalError(ErrType, "parameters must be a list", x[1])
		}
		return makeLambda(params, x[2:], env)
	case Begin_: // (begin e1...)
		if len(x) < 2 {
			return nil, NewEvalError(ErrArity, "empty begin", x)
		}
		return ev.evalBody(x[1:], env, depth)
	}
	return nil, NewEvalError(ErrType, "unknown keyword", f)
}

// evalBinding checks (set!|define v e) and evaluates e.
func (ev *evaluator) evalBinding(x List, env *Env, depth int) (*Sym, Any, error) {
	if len(x) != 3 {
		return nil, nil, NewEvalError(ErrArity, "bad "+x[0].(*Sym).Name, x)
	}
	sym, ok := x[1].(*Sym)
	if !ok {
		return nil, nil, NewEvalError(ErrType, "not a symbol", x[1])
	}
	value, err := ev.eval(x[2], env, depth)
	if err != nil {
		return nil, nil, err
	}
	return sym, value, nil
}

// evalBody evaluates each of body in order and returns the last value.
func (ev *evaluator) evalBody(body List, env *Env, depth int) (Any, error) {
	for _, e := range body[:len(body)-1] {
		if _, err := ev.eval(e, env, depth); err != nil {
			return nil, err
		}
	}
	return ev.eval(body[len(body)-1], env, depth)
}

// makeLambda builds a closure over env.
func makeLambda(params List, body List, env *Env) (*Lambda, error) {
	syms := make([]*Sym, len(params))
	for i, p := range params {
		s, ok := p.(*Sym)
		if !ok {
			return nil, NewEvalError(ErrType, "parameter must be a symbol", p)
		}
		syms[i] = s
	}
	return &Lambda{syms, body, env}, nil
}

// apply calls fn with args already evaluated.
func (ev *evaluator) apply(fn Any, args List, depth int) (Any, error) {
	switch f := fn.(type) {
	case *Lambda:
		env, err := NewFrame(f.Params, args, f.Env)
		if err != nil {
			return nil, err
		}
		return ev.evalBody(f.Body, env, depth)
	case *Primitive:
		return f.Fn(args)
	}
	return nil, NewEvalError(ErrNotCallable, "not a function", fn)
}
