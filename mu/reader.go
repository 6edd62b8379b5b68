package mu

import "fmt"

const eofMessage = "unexpected end of input"

// Reader represents a reader of expressions from a token stream.
type Reader struct {
	tokens   []Token
	index    int // the next index of tokens
	depth    int // the current list nesting
	maxDepth int
}

// NewReader constructs a reader which will read expressions from tokens.
// Lists may nest up to DefaultMaxDepth levels.
func NewReader(tokens []Token) *Reader {
	return &Reader{tokens, 0, 0, DefaultMaxDepth}
}

// More reports whether any token is left unread.
func (rr *Reader) More() bool {
	return rr.index < len(rr.tokens)
}

// Read reads exactly one expression.
func (rr *Reader) Read() (Any, error) {
	if !rr.More() {
		return nil, &EvalError{ErrUnbalancedParen, eofMessage}
	}
	token := rr.tokens[rr.index]
	rr.index++
	switch token.Kind {
	case ParenToken:
		if token.Text == ")" {
			return nil, NewEvalError(ErrUnbalancedParen, "unexpected", token.Text)
		}
		return rr.readListBody()
	case NumberToken:
		return Number(token.Text), nil
	case StringToken:
		return token.Text, nil
	}
	switch token.Text {
	case "#t":
		return true, nil
	case "#f":
		return false, nil
	}
	return NewSym(token.Text), nil
}

func (rr *Reader) readListBody() (List, error) {
	if rr.depth >= rr.maxDepth {
		return nil, &EvalError{ErrStackExhaustion,
			fmt.Sprintf("lists nest deeper than %d", rr.maxDepth)}
	}
	rr.depth++
	defer func() { rr.depth-- }()
	j := List{}
	for {
		if !rr.More() {
			return nil, &EvalError{ErrUnbalancedParen, eofMessage}
		}
		if t := rr.tokens[rr.index]; t.Kind == ParenToken && t.Text == ")" {
			rr.index++
			return j, nil
		}
		x, err := rr.Read()
		if err != nil {
			return nil, err
		}
		j = append(j, x)
	}
}

// Parse reads every expression in src.
func Parse(src string) ([]Any, error) {
	return parse(src, DefaultMaxDepth)
}

func parse(src string, maxDepth int) ([]Any, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	rr := NewReader(tokens)
	rr.maxDepth = maxDepth
	var result []Any
	for rr.More() {
		x, err := rr.Read()
		if err != nil {
			return nil, err
		}
		result = append(result, x)
	}
	return result, nil
}
