package mu

// Interpreter evaluates source text against a global environment
// which persists across calls.
type Interpreter struct {
	global   *Env
	maxDepth int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithMaxDepth limits nested evaluations; deeper recursion fails
// with ErrStackExhaustion. Non-positive n keeps the default.
func WithMaxDepth(n int) Option {
	return func(in *Interpreter) {
		if n > 0 {
			in.maxDepth = n
		}
	}
}

// NewInterpreter constructs an interpreter with a fresh global environment.
func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{MakeGlobalEnv(), DefaultMaxDepth}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// MakeGlobalEnv constructs a global frame with the primitives and nil bound.
func MakeGlobalEnv() *Env {
	env := NewEnv(nil)
	env.Define(Nil, Nil)
	for name, fn := range Subrs {
		env.Define(NewSym(name), &Primitive{name, fn})
	}
	return env
}

// Global returns the global environment.
func (in *Interpreter) Global() *Env {
	return in.global
}

// Eval reads every expression in src, then evaluates them in order.
// Nothing is evaluated if src fails to read.
// It returns the value of the last one, or Nil if src has none.
func (in *Interpreter) Eval(src string) (Any, error) {
	xs, err := parse(src, in.maxDepth)
	if err != nil {
		return nil, err
	}
	var result Any = Nil
	for _, x := range xs {
		if result, err = in.EvalExpr(x); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// EvalExpr evaluates an expression already read.
func (in *Interpreter) EvalExpr(x Any) (Any, error) {
	ev := evaluator{in.maxDepth}
	return ev.eval(x, in.global, 0)
}
