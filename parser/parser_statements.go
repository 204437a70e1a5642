/*
File    : return-to-monk/parser/parser_statements.go
*/
package parser

import "github.com/stijnVanHorenbeek/return-to-monk/lexer"

// parseStatement dispatches on the current token to parse one statement.
// Monkey has four statement forms:
//   - let statements: let x = expr;
//   - return statements: return expr;
//   - block statements: { stmt1; stmt2; }
//   - expression statements: any expression, with an optional trailing semicolon
//
// Returns:
//
//	The parsed StatementNode, or nil if the statement could not be parsed
//	(the error has already been recorded; the main loop consumes past it)
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.LET_KEY:
		return par.parseDeclarativeStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	case lexer.LEFT_BRACE:
		return par.parseBlockStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseDeclarativeStatement parses a let binding of the form:
//
//	let <identifier> = <expression> [;]
//
// The value is a full expression parsed at the lowest precedence; the trailing
// semicolon is optional (it is also optional at end of input and before '}').
//
// Returns:
//
//	The parsed DeclarativeStatementNode, or nil on a malformed binding
func (par *Parser) parseDeclarativeStatement() StatementNode {
	stmt := &DeclarativeStatementNode{LetToken: par.CurrToken}

	// The binding name must follow the let keyword
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	stmt.Identifier = IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}

	// Then the assignment operator
	if !par.expectAdvance(lexer.ASSIGN_OP) {
		return nil
	}

	// Move onto the first token of the value expression and parse it
	par.advance()
	stmt.Expr = par.parseExpression(MINIMUM_PRIORITY)
	if stmt.Expr == nil {
		return nil
	}

	// Consume the optional statement terminator
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}

	return stmt
}

// parseReturnStatement parses a return statement of the form:
//
//	return <expression> [;]
//
// The value is a full expression parsed at the lowest precedence.
//
// Returns:
//
//	The parsed ReturnStatementNode, or nil on a malformed value expression
func (par *Parser) parseReturnStatement() StatementNode {
	stmt := &ReturnStatementNode{ReturnToken: par.CurrToken}

	// Move onto the first token of the value expression and parse it
	par.advance()
	stmt.Expr = par.parseExpression(MINIMUM_PRIORITY)
	if stmt.Expr == nil {
		return nil
	}

	// Consume the optional statement terminator
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}

	return stmt
}

// parseBlockStatement parses a brace-delimited sequence of statements:
//
//	{ <statement>* }
//
// The current token must be the opening brace. Each inner statement is
// produced by the normal statement dispatch. Parsing stops at the closing
// brace, or at EOF for an unterminated block.
//
// Returns:
//
//	The parsed BlockStatementNode
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	block := &BlockStatementNode{BraceToken: par.CurrToken}
	block.Statements = make([]StatementNode, 0)

	// Step past the opening brace
	par.advance()

	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}

	return block
}

// parseExpressionStatement parses a bare expression used in statement
// position. Expressions implement StatementNode directly, so the expression
// node itself is the statement; there is no wrapper node.
//
// Returns:
//
//	The parsed expression as a StatementNode, or nil if no expression
//	could be parsed here
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}

	// Consume the optional statement terminator
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}

	return expr
}
