package mu

import "fmt"

// Env represents an environment frame: bindings plus the enclosing frame.
// Closures hold frames by pointer, so a frame lives as long as any
// closure or running application refers to it.
type Env struct {
	vars  map[*Sym]Any
	outer *Env
}

// NewEnv constructs an empty frame inside outer (nil for the global frame).
func NewEnv(outer *Env) *Env {
	return &Env{make(map[*Sym]Any), outer}
}

// NewFrame constructs a frame inside outer which binds each of params
// to the corresponding element of args.
func NewFrame(params []*Sym, args List, outer *Env) (*Env, error) {
	if len(params) != len(args) {
		return nil, &EvalError{ErrArity,
			fmt.Sprintf("expected %d, given %d: %s", len(params), len(args), Str(args))}
	}
	env := &Env{make(map[*Sym]Any, len(params)), outer}
	for i, p := range params {
		env.vars[p] = args[i]
	}
	return env, nil
}

// env.String() returns "#N-symbols" where N is the number of symbols in env.
func (env *Env) String() string {
	return fmt.Sprintf("#%d-symbols", len(env.vars))
}

// Outer returns the enclosing frame, or nil for the global frame.
func (env *Env) Outer() *Env {
	return env.outer
}

// find returns the innermost frame which binds sym.
func (env *Env) find(sym *Sym) *Env {
	for e := env; e != nil; e = e.outer {
		if _, ok := e.vars[sym]; ok {
			return e
		}
	}
	return nil
}

// Lookup retrieves the value of sym.
func (env *Env) Lookup(sym *Sym) (Any, error) {
	e := env.find(sym)
	if e == nil {
		return nil, NewEvalError(ErrUnboundSymbol, "undefined variable", sym)
	}
	return e.vars[sym], nil
}

// Define binds sym to value in this frame, shadowing any outer binding.
func (env *Env) Define(sym *Sym, value Any) {
	env.vars[sym] = value
}

// Set changes the value of sym in the innermost frame which binds it.
func (env *Env) Set(sym *Sym, value Any) error {
	e := env.find(sym)
	if e == nil {
		return NewEvalError(ErrUnboundSymbol, "undefined variable to set", sym)
	}
	e.vars[sym] = value
	return nil
}
