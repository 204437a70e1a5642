/*
File    : return-to-monk/lexer/lexer_utils.go
*/
package lexer

// isWhitespace checks if the given byte is a whitespace character.
// Monkey recognizes space, tab, carriage return, and line feed between tokens.
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is whitespace, false otherwise
func isWhitespace(curr byte) bool {
	return curr == ' ' || curr == '\t' || curr == '\r' || curr == '\n'
}

// isNumeric checks if the given byte is an ASCII decimal digit (0-9).
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a digit, false otherwise
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte is an ASCII letter (a-z, A-Z).
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a letter, false otherwise
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// readNumber reads and tokenizes an integer literal from the source.
// Monkey integers are plain decimal digit runs ([0-9]+); sign, float, hex,
// and exponent forms are not part of the language.
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: An INT_LIT token spanning the digit run
//
// Example:
//
//	Source: "12345"
//	Returns: Token{Type: INT_LIT, Literal: "12345"}
func readNumber(lex *Lexer) Token {
	position := lex.Position
	column := lex.Column

	// Consume the complete digit run
	for isNumeric(lex.Current) {
		lex.Advance()
	}

	return NewTokenWithMetadata(INT_LIT, lex.Src[position:lex.Position], lex.Line, column)
}

// readIdentifier reads and tokenizes an identifier or keyword from the source.
// Identifiers can be variable names, function names, or language keywords.
//
// Rules:
//   - Must start with a letter (a-z, A-Z) or underscore (_)
//   - Continues over letters and underscores only; a digit ends the run
//   - Keywords are identified using the lookupIdent function
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: An IDENTIFIER_ID token or a keyword token type
//
// Example:
//
//	Source: "myVariable"
//	Returns: Token{Type: IDENTIFIER_ID, Literal: "myVariable"}
//
//	Source: "if"
//	Returns: Token{Type: IF_KEY, Literal: "if"}
func readIdentifier(lex *Lexer) Token {
	position := lex.Position
	column := lex.Column

	// Continue reading letters and underscores
	for isAlpha(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[position:lex.Position]

	// Check if this identifier is actually a keyword
	return NewTokenWithMetadata(lookupIdent(literal), literal, lex.Line, column)
}
