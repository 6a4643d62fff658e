// Package sable parses Sable source text into an abstract syntax tree.
//
// Sable is a minimal expression language: number and string literals,
// additive and multiplicative binary operators with the usual precedence,
// parenthesised grouping, expression statements terminated by ';', and
// brace-delimited blocks. Line comments ("// ...") and block comments
// ("/* ... */") are skipped wherever whitespace is.
package sable

import (
	"sable/ast"
	"sable/internal/errors"
	"sable/internal/parser"
)

// Parse parses source into a Program, or returns the first lexical or
// syntax error encountered. No partial tree is ever returned on failure.
func Parse(source string) (*ast.Program, error) {
	return parser.ParseSource("<input>", source)
}

// FormatError renders a failure from Parse as a compiler-style diagnostic:
// a coded header, the file location, and the offending source line with a
// caret marker. Errors from elsewhere render as a bare message.
func FormatError(filename, source string, err error) string {
	reporter := errors.NewErrorReporter(filename, source)
	return reporter.FormatError(errors.FromParseError(filename, err))
}
