package parser

import "fmt"

// Token is one lexical unit. Lexeme is always the exact matched source
// substring, so string tokens keep their surrounding quotes.
type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

// Scanner pulls tokens lazily from a source string: each NextToken call
// scans exactly one token, discarding any whitespace and comments in front
// of it. The source is never mutated; only the cursor advances.
type Scanner struct {
	source      string
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// NextToken returns the next token, or nil once the input is exhausted.
// After an error the scanner is left at the offending position; further
// calls are not meaningful.
func (s *Scanner) NextToken() (*Token, error) {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column

		c := s.advance()
		switch c {
		// Whitespace (discarded, then rescan from the new cursor)
		case ' ', '\r', '\t', '\n':

		// Simple single-character tokens
		case ';':
			return s.token(SEMICOLON), nil
		case '{':
			return s.token(LEFT_BRACE), nil
		case '}':
			return s.token(RIGHT_BRACE), nil
		case '(':
			return s.token(LEFT_PAREN), nil
		case ')':
			return s.token(RIGHT_PAREN), nil

		// Operators
		case '+', '-':
			return s.token(ADDITIVE_OP), nil
		case '*':
			return s.token(MULTIPLICATIVE_OP), nil
		case '/':
			if s.matchNext('/') {
				s.skipLineComment()
			} else if s.matchNext('*') {
				if err := s.skipBlockComment(); err != nil {
					return nil, err
				}
			} else {
				return s.token(MULTIPLICATIVE_OP), nil
			}

		// String literals
		case '"':
			return s.scanString()

		default:
			if isDigit(c) {
				return s.scanNumber(), nil
			}
			return nil, s.errorf("unexpected character %q", c)
		}
	}

	return nil, nil
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) token(tokenType TokenType) *Token {
	return &Token{
		Type:   tokenType,
		Lexeme: s.source[s.start:s.current],
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	}
}

func (s *Scanner) errorf(format string, args ...any) *LexicalError {
	return &LexicalError{
		Message: fmt.Sprintf(format, args...),
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	}
}

func (s *Scanner) skipLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

// skipBlockComment stops at the first "*/", never the last one.
func (s *Scanner) skipBlockComment() error {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance() // *
			s.advance() // /
			return nil
		}
		s.advance()
	}
	return s.errorf("unterminated block comment")
}

// scanNumber consumes the maximal run of decimal digits.
func (s *Scanner) scanNumber() *Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	return s.token(NUMBER)
}

// scanString consumes up to the closing quote. There are no escape
// sequences; any non-quote character, newlines included, may appear inside.
func (s *Scanner) scanString() (*Token, error) {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}
	if s.isAtEnd() {
		return nil, s.errorf("unterminated string")
	}
	s.advance()
	return s.token(STRING), nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
