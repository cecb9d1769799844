package lexer

import (
	"strconv"
)

// maxLexeme caps the captured text of numbers and identifiers. Longer
// runs are still consumed in full but the excess characters are dropped.
const maxLexeme = 63

// Scanner performs lexical analysis on shardjs source.
type Scanner struct {
	source []byte
	cursor int
	line   int
	column int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// Next returns the next token from the source. After the end of input it
// keeps returning EOF tokens.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Line: s.line, Column: s.column}
	}

	line, column := s.line, s.column
	ch := s.source[s.cursor]

	if isDigit(ch) {
		return s.scanNumber(line, column)
	}

	if isAlpha(ch) || ch == '_' {
		return s.scanIdentifier(line, column)
	}

	s.advance()
	kind := KindError
	switch ch {
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindStar
	case '/':
		kind = KindSlash
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	case ';':
		kind = KindSemicolon
	case '=':
		kind = KindAssign
		if s.match('=') {
			kind = KindEqual
		}
	case '>':
		kind = KindGreater
		if s.match('=') {
			kind = KindGreaterEqual
		}
	case '<':
		kind = KindLess
		if s.match('=') {
			kind = KindLessEqual
		}
	case '!':
		// the language has no unary "not"; a bare '!' stays an error token
		if s.match('=') {
			kind = KindNotEqual
		}
	}

	return Token{Kind: kind, Line: line, Column: column}
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		switch s.source[s.cursor] {
		case ' ', '\t', '\r', '\n':
			s.advance()
		default:
			return
		}
	}
}

// advance consumes the current character, updating line and column.
func (s *Scanner) advance() {
	if s.cursor >= len(s.source) {
		return
	}
	if s.source[s.cursor] == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	s.cursor++
}

// match consumes the current character only if it equals ch.
func (s *Scanner) match(ch byte) bool {
	if s.cursor < len(s.source) && s.source[s.cursor] == ch {
		s.advance()
		return true
	}
	return false
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

// scanNumber reads an integer or decimal literal. The decimal point is
// only consumed when at least one digit follows it; otherwise it is left
// for the next token.
func (s *Scanner) scanNumber(line, column int) Token {
	buf := make([]byte, 0, 16)
	take := func() {
		if len(buf) < maxLexeme {
			buf = append(buf, s.source[s.cursor])
		}
		s.advance()
	}

	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		take()
	}

	if s.cursor < len(s.source) && s.source[s.cursor] == '.' && isDigit(s.peek()) {
		take()
		for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
			take()
		}
	}

	value, _ := strconv.ParseFloat(string(buf), 64)
	return Token{Kind: KindNumber, Number: value, Line: line, Column: column}
}

// scanIdentifier reads an identifier or the 'let' keyword.
func (s *Scanner) scanIdentifier(line, column int) Token {
	buf := make([]byte, 0, 16)
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if !isAlpha(ch) && !isDigit(ch) && ch != '_' {
			break
		}
		if len(buf) < maxLexeme {
			buf = append(buf, ch)
		}
		s.advance()
	}

	text := string(buf)
	if text == "let" {
		return Token{Kind: KindLet, Line: line, Column: column}
	}
	return Token{Kind: KindIdentifier, Text: text, Line: line, Column: column}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
