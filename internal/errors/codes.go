package errors

// Error codes used in rendered diagnostics.
//
// Error code ranges:
// E0100-E0199: frontend (scan/parse) errors
// E0200-E0299: reserved for future use
const (
	// E0101: no lexical rule matches the remaining input
	ErrorLexical = "E0101"

	// E0102: the lookahead token does not fit the grammar
	ErrorSyntax = "E0102"

	// E0103: a literal production was entered with a non-literal lookahead
	ErrorGrammarDispatch = "E0103"
)
