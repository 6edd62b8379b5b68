package mu

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a token.
type TokenKind int

const (
	ParenToken TokenKind = iota
	SymbolToken
	StringToken
	NumberToken
)

func (k TokenKind) String() string {
	switch k {
	case ParenToken:
		return "paren"
	case SymbolToken:
		return "symbol"
	case StringToken:
		return "string"
	case NumberToken:
		return "number"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a classified piece of source text.
// For a string token, Text is the content without quotes.
type Token struct {
	Kind TokenKind
	Text string
}

// Tokenize splits src into tokens.
// A ';' outside a string starts a comment running to the end of the line.
func Tokenize(src string) ([]Token, error) {
	tokens := make([]Token, 0, len(src)/3)
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == ';':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case r == '(' || r == ')':
			tokens = append(tokens, Token{ParenToken, src[i : i+1]})
			i++
		case r == '"':
			n := strings.IndexByte(src[i+1:], '"')
			if n < 0 {
				return nil, NewEvalError(ErrUnterminatedString,
					"missing closing quote", src[i:])
			}
			tokens = append(tokens, Token{StringToken, src[i+1 : i+1+n]})
			i += n + 2
		default:
			j := i
			for j < len(src) {
				r, size := utf8.DecodeRuneInString(src[j:])
				if isDelimiter(r) {
					break
				}
				j += size
			}
			tokens = append(tokens, atomToken(src[i:j]))
			i = j
		}
	}
	return tokens, nil
}

// atomToken classifies s as a number if it starts with a digit
// or with '-' and a digit, else as a symbol.
func atomToken(s string) Token {
	if isDigit(s[0]) || (s[0] == '-' && len(s) > 1 && isDigit(s[1])) {
		return Token{NumberToken, s}
	}
	return Token{SymbolToken, s}
}

func isDelimiter(r rune) bool {
	return r == '(' || r == ')' || r == '"' || r == ';' || unicode.IsSpace(r)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

