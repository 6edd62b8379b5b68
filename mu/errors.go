package mu

import "errors"

// Kinds of evaluation errors. Every error returned by this package
// is an *EvalError wrapping one of these; test with errors.Is.
var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnbalancedParen    = errors.New("unbalanced parenthesis")
	ErrUnboundSymbol      = errors.New("unbound symbol")
	ErrArity              = errors.New("wrong number of arguments")
	ErrNotCallable        = errors.New("not a function")
	ErrEmptyList          = errors.New("empty list")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrStackExhaustion    = errors.New("stack exhausted")
	ErrType               = errors.New("wrong type")
)

// EvalError represents an error in reading or evaluation.
type EvalError struct {
	Kind    error
	Message string
}

// NewEvalError constructs a new EvalError of kind about x.
func NewEvalError(kind error, msg string, x Any) *EvalError {
	return &EvalError{kind, msg + ": " + Str(x)}
}

// err.Error() returns a textual representation of err.
func (err *EvalError) Error() string {
	return "EvalError: " + err.Kind.Error() + ": " + err.Message
}

// Unwrap returns the kind of err.
func (err *EvalError) Unwrap() error {
	return err.Kind
}

// IsIncomplete reports whether err means the input ended
// in the middle of an expression.
func IsIncomplete(err error) bool {
	var ee *EvalError
	if !errors.As(err, &ee) {
		return false
	}
	return ee.Kind == ErrUnterminatedString ||
		(ee.Kind == ErrUnbalancedParen && ee.Message == eofMessage)
}
