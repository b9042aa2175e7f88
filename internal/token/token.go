// Package token defines the lexical categories of the surface syntax.
package token

import "fmt"

// Type is the category of a token.
type Type int

const (
	EOF Type = iota
	ILLEGAL
	IDENT  // variable names
	LAMBDA // λ
	PI     // Π
	STAR   // *
	BOX    // □
	COLON  // :
	DOT    // .
	LPAREN // (
	RPAREN // )
)

var names = map[Type]string{
	EOF:     "end of input",
	ILLEGAL: "illegal character",
	IDENT:   "identifier",
	LAMBDA:  "'λ'",
	PI:      "'Π'",
	STAR:    "'*'",
	BOX:     "'□'",
	COLON:   "':'",
	DOT:     "'.'",
	LPAREN:  "'('",
	RPAREN:  "')'",
}

func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Token is one word of the input line. Column is the 1-based rune offset of
// the token's first character.
type Token struct {
	Type   Type
	Lexeme string
	Column int
}
