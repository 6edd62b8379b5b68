/*
  Mu Lisp in Go.

  The Sym type, the keyword table and Str are derived from
  Scheme in Go (https://github.com/nukata/scheme-in-go).
*/
package mu

import (
	"strings"
	"sync"
)

const Version = 0.10

type Any = interface{}

// A value is one of:
//
//	*Sym        symbol (Nil is the symbol nil)
//	Number      numeral text, decoded on demand
//	string      string literal
//	bool        #t or #f
//	List        list, also used for code
//	*Lambda     closure
//	*Primitive  host procedure

// Number holds the literal text of a numeral.
type Number string

// List represents a list. Lists are never mutated in place;
// list primitives always build new ones.
type List []Any

// Lambda represents a closure made by evaluating (lambda (v...) e...).
type Lambda struct {
	Params []*Sym
	Body   List // evaluated as (begin e...)
	Env    *Env
}

// Primitive represents a procedure implemented in Go.
type Primitive struct {
	Name string
	Fn   func(args List) (Any, error)
}

//----------------------------------------------------------------------

// Sym represents a symbol or a keyword.
type Sym struct {
	Name      string
	IsKeyword bool
}

// symbols is the table of interned symbols.
var symbols = make(map[string]*Sym)

// symLock is the exclusive lock for the table.
var symLock sync.RWMutex

// NewSym constructs an interned symbol for name.
func NewSym(name string) *Sym {
	return NewSym2(name, false)
}

// NewSym2 constructs an interned symbol (or a keyword
// if isKeyword is true on its first construction) for name.
func NewSym2(name string, isKeyword bool) *Sym {
	symLock.RLock()
	sym, ok := symbols[name]
	symLock.RUnlock()
	if ok {
		return sym
	}
	symLock.Lock()
	sym, ok = symbols[name]
	if !ok {
		sym = &Sym{name, isKeyword}
		symbols[name] = sym
	}
	symLock.Unlock()
	return sym
}

// sym.String() returns the name of sym.
func (sym *Sym) String() string {
	return sym.Name
}

// Expression keywords

var Begin_ = NewSym2("begin", true)
var Define_ = NewSym2("define", true)
var If_ = NewSym2("if", true)
var Lambda_ = NewSym2("lambda", true)
var Quote_ = NewSym2("quote", true)
var SetQ_ = NewSym2("set!", true)

// Nil represents the empty result and the end of a list.
var Nil = NewSym("nil")

//----------------------------------------------------------------------

// Str(x) returns a textual representation of Any x.
// Strings are shown without quotes.
// Lists nested deeper than DefaultMaxDepth are shown as "...".
func Str(x Any) string {
	var b strings.Builder
	writeStr(&b, x, 0)
	return b.String()
}

func writeStr(b *strings.Builder, a Any, depth int) {
	switch x := a.(type) {
	case bool:
		if x {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case List:
		if depth >= DefaultMaxDepth {
			b.WriteString("...")
			return
		}
		b.WriteByte('(')
		for i, e := range x {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeStr(b, e, depth+1)
		}
		b.WriteByte(')')
	case *Sym:
		b.WriteString(x.Name)
	case Number:
		b.WriteString(string(x))
	case string:
		b.WriteString(x)
	case *Lambda:
		b.WriteString("<Lambda>")
	case *Primitive:
		b.WriteString("<Proc>")
	case nil:
		b.WriteString("nil")
	default:
		b.WriteString("<unknown>")
	}
}

// fn.String() returns "<Lambda>".
func (fn *Lambda) String() string {
	return "<Lambda>"
}

// p.String() returns "<Proc>".
func (p *Primitive) String() string {
	return "<Proc>"
}

// j.String() returns a textual representation of the list j.
func (j List) String() string {
	return Str(j)
}

// asList returns x as a list, treating Nil as the empty list.
func asList(x Any) (List, bool) {
	switch v := x.(type) {
	case List:
		return v, true
	case *Sym:
		if v == Nil {
			return nil, true
		}
	}
	return nil, false
}
