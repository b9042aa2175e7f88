// Package lexer turns a line of surface syntax into tokens.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/fluxo-lang/fluxo/internal/token"
)

// Lexer scans a single input line rune by rune.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	column       int  // current column number (1-based, in runes)
}

func New(input string) *Lexer {
	l := &Lexer{input: input, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

// NextToken scans and returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	col := l.column

	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Column: col}
	case 'λ':
		l.readChar()
		return token.Token{Type: token.LAMBDA, Lexeme: "λ", Column: col}
	case 'Π':
		l.readChar()
		return token.Token{Type: token.PI, Lexeme: "Π", Column: col}
	case '*':
		l.readChar()
		return token.Token{Type: token.STAR, Lexeme: "*", Column: col}
	case '□':
		l.readChar()
		return token.Token{Type: token.BOX, Lexeme: "□", Column: col}
	case ':':
		l.readChar()
		return token.Token{Type: token.COLON, Lexeme: ":", Column: col}
	case '.':
		l.readChar()
		return token.Token{Type: token.DOT, Lexeme: ".", Column: col}
	case '(':
		l.readChar()
		return token.Token{Type: token.LPAREN, Lexeme: "(", Column: col}
	case ')':
		l.readChar()
		return token.Token{Type: token.RPAREN, Lexeme: ")", Column: col}
	}

	if isIdentRune(l.ch) {
		return token.Token{Type: token.IDENT, Lexeme: l.readIdentifier(), Column: col}
	}

	ch := l.ch
	l.readChar()
	return token.Token{Type: token.ILLEGAL, Lexeme: string(ch), Column: col}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentRune(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// isIdentRune admits letters, digits, underscores and primes. λ and Π are
// Unicode letters but belong to the grammar, so they are carved out.
func isIdentRune(ch rune) bool {
	if ch == 'λ' || ch == 'Π' {
		return false
	}
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '\''
}
