/*
File    : return-to-monk/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: `=+(){},;`,
			ExpectedTokens: []Token{
				NewToken(ASSIGN_OP, "="),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(COMMA_DELIM, ","),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(INT_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
			},
		},
		{
			Input: `!*/<> == != = !`,
			ExpectedTokens: []Token{
				NewToken(NOT_OP, "!"),
				NewToken(MUL_OP, "*"),
				NewToken(DIV_OP, "/"),
				NewToken(LT_OP, "<"),
				NewToken(GT_OP, ">"),
				NewToken(EQ_OP, "=="),
				NewToken(NE_OP, "!="),
				NewToken(ASSIGN_OP, "="),
				NewToken(NOT_OP, "!"),
			},
		},
		{
			Input: `fn let if else true false return then`,
			ExpectedTokens: []Token{
				NewToken(FUNC_KEY, "fn"),
				NewToken(LET_KEY, "let"),
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "then"),
			},
		},
		{
			// digits never continue an identifier: x1 is two tokens
			Input: `abc _under __KEY__ x1`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(IDENTIFIER_ID, "_under"),
				NewToken(IDENTIFIER_ID, "__KEY__"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(INT_LIT, "1"),
			},
		},
		{
			// unrecognized characters surface as INVALID and lexing continues
			Input: `1 @ 2 # 3`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "1"),
				NewToken(INVALID_TYPE, "@"),
				NewToken(INT_LIT, "2"),
				NewToken(INVALID_TYPE, "#"),
				NewToken(INT_LIT, "3"),
			},
		},
		{
			Input: `
			let add = fn(x, y) {
				return x + y;
			};
			let result = add(5, 10);
			`,
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "add"),
				NewToken(ASSIGN_OP, "="),
				NewToken(FUNC_KEY, "fn"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(COMMA_DELIM, ","),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(PLUS_OP, "+"),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "result"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER_ID, "add"),
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "5"),
				NewToken(COMMA_DELIM, ","),
				NewToken(INT_LIT, "10"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `5 < 10 > 5; !-5;`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "5"),
				NewToken(LT_OP, "<"),
				NewToken(INT_LIT, "10"),
				NewToken(GT_OP, ">"),
				NewToken(INT_LIT, "5"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(NOT_OP, "!"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "5"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		tokens := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(tokens), "token count for %q", test.Input)
		for i, expected := range test.ExpectedTokens {
			if i >= len(tokens) {
				break
			}
			assert.Equal(t, expected.Type, tokens[i].Type, "token %d type for %q", i, test.Input)
			assert.Equal(t, expected.Literal, tokens[i].Literal, "token %d literal for %q", i, test.Input)
		}
	}
}

// TestNextToken_EOFRepeats verifies the lexer keeps producing EOF tokens
// once the end of input is reached.
func TestNextToken_EOFRepeats(t *testing.T) {
	lex := NewLexer("x")

	token := lex.NextToken()
	assert.Equal(t, IDENTIFIER_ID, token.Type)

	for i := 0; i < 3; i++ {
		token = lex.NextToken()
		assert.Equal(t, EOF_TYPE, token.Type)
	}
}

// TestNextToken_EmptyInput verifies an empty source immediately yields EOF.
func TestNextToken_EmptyInput(t *testing.T) {
	lex := NewLexer("")

	token := lex.NextToken()
	assert.Equal(t, EOF_TYPE, token.Type)
}

// TestNextToken_LineTracking verifies line numbers advance across newlines.
func TestNextToken_LineTracking(t *testing.T) {
	lex := NewLexer("let x = 1;\nlet y = 2;")

	tokens := lex.ConsumeTokens()
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[len(tokens)-1].Line)
}
