package mimir

import "fmt"

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	TokenInteger TokenType = "Integer"
	TokenPlus    TokenType = "Plus"
	TokenError   TokenType = "Error"
	TokenEOF     TokenType = "EndOfFile"
)

// errorLexeme is reported for every unrecognised rune.
const errorLexeme = "error"

func (t TokenType) String() string {
	return string(t)
}

// Token captures one classified unit of source text.
type Token struct {
	Type   TokenType
	Lexeme string
}

func (t Token) String() string {
	return fmt.Sprintf("Token { kind: %s, lexeme: %q }", t.Type, t.Lexeme)
}
