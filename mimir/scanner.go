package mimir

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner turns source text into tokens, one ScanToken call at a time.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	source string

	// cursor is the byte offset of the last consumed rune.
	cursor int
	// offset is the byte offset of the lookahead rune.
	offset int
}

// NewScanner returns a Scanner positioned at the start of source.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source}
}

// Reset discards any scanning progress and starts over on source.
func (s *Scanner) Reset(source string) {
	*s = Scanner{source: source}
}

// next consumes the lookahead rune, reporting false once the source is
// exhausted.
func (s *Scanner) next() (rune, bool) {
	if s.offset >= len(s.source) {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(s.source[s.offset:])
	s.cursor = s.offset
	s.offset += w
	return r, true
}

func (s *Scanner) peek() (rune, bool) {
	if s.offset >= len(s.source) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.offset:])
	return r, true
}

func (s *Scanner) skipWhitespace() {
	for {
		r, ok := s.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		s.next()
	}
}

// ScanToken returns the next token in the source. Once the source is
// exhausted every call returns an EndOfFile token.
func (s *Scanner) ScanToken() Token {
	s.skipWhitespace()

	r, ok := s.next()
	switch {
	case !ok:
		return Token{Type: TokenEOF, Lexeme: ""}
	case r == '+':
		return Token{Type: TokenPlus, Lexeme: "+"}
	case unicode.IsNumber(r):
		return s.scanInteger()
	default:
		return Token{Type: TokenError, Lexeme: errorLexeme}
	}
}

// scanInteger runs after the first numeric rune has been consumed.
func (s *Scanner) scanInteger() Token {
	start := s.cursor
	for {
		r, ok := s.peek()
		if !ok || !unicode.IsNumber(r) {
			break
		}
		s.next()
	}
	// The lexeme must not keep the whole source alive.
	return Token{Type: TokenInteger, Lexeme: strings.Clone(s.source[start:s.offset])}
}

// Tokenize scans source to the end and returns every token, including the
// trailing EndOfFile token.
func Tokenize(source string) []Token {
	s := NewScanner(source)
	tokens := make([]Token, 0)
	for {
		tok := s.ScanToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}
