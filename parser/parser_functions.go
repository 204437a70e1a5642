/*
File    : return-to-monk/parser/parser_functions.go
*/
package parser

import "github.com/stijnVanHorenbeek/return-to-monk/lexer"

// parseIfExpression parses a conditional expression:
//
//	if ( <condition> ) <block> [ else <block> ]
//
// The condition is a full expression parsed at the lowest precedence.
// The else branch is optional; when absent the node's ElseBlock is nil and
// the conditional evaluates to null when the condition is not truthy.
func (par *Parser) parseIfExpression() ExpressionNode {
	node := &IfExpressionNode{IfToken: par.CurrToken}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	// Step past the '(' onto the condition and parse it
	par.advance()
	node.Condition = par.parseExpression(MINIMUM_PRIORITY)
	if node.Condition == nil {
		return nil
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	node.ThenBlock = par.parseBlockStatement()

	// An else branch is only parsed when the else keyword follows the block
	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance()

		if !par.expectAdvance(lexer.LEFT_BRACE) {
			return nil
		}
		node.ElseBlock = par.parseBlockStatement()
	}

	return node
}

// parseFunctionLiteral parses an anonymous function literal:
//
//	fn ( <params> ) <block>
//
// Parameters are identifiers separated by commas; an empty list is allowed.
// The body is always a block. The literal produces a value; binding it to a
// name is an ordinary let statement.
func (par *Parser) parseFunctionLiteral() ExpressionNode {
	node := &FunctionLiteralExpressionNode{FuncToken: par.CurrToken}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	node.Params = par.parseFunctionParams()
	if node.Params == nil {
		return nil
	}

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	node.Body = par.parseBlockStatement()

	return node
}

// parseFunctionParams parses the parameter list of a function literal.
// The current token is the opening '('; on success the current token is the
// closing ')'.
//
// Returns:
//
//	The ordered parameter identifiers, or nil on a malformed list
func (par *Parser) parseFunctionParams() []*IdentifierExpressionNode {
	params := make([]*IdentifierExpressionNode, 0)

	// Empty parameter list: fn() { ... }
	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return params
	}

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	params = append(params, &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal})

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		params = append(params, &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal})
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	return params
}

// parseCallExpression parses a call in infix position: the '(' after a
// complete expression opens an argument list.
//
//	<callee> ( <args> )
//
// The callee is whatever expression was parsed to the left - an identifier,
// a function literal, or any expression evaluating to a function - so
// immediate invocation like fn(x) { x; }(5) parses naturally.
func (par *Parser) parseCallExpression(function ExpressionNode) ExpressionNode {
	node := &CallExpressionNode{ParenToken: par.CurrToken, Function: function}

	node.Arguments = par.parseCallArguments()
	if node.Arguments == nil {
		return nil
	}

	return node
}

// parseCallArguments parses the comma-separated argument list of a call.
// The current token is the opening '('; on success the current token is the
// closing ')'. Arguments are full expressions parsed at the lowest
// precedence and preserve source order.
//
// Returns:
//
//	The ordered argument expressions, or nil on a malformed list
func (par *Parser) parseCallArguments() []ExpressionNode {
	args := make([]ExpressionNode, 0)

	// Empty argument list: f()
	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return args
	}

	par.advance()
	arg := par.parseExpression(MINIMUM_PRIORITY)
	if arg == nil {
		return nil
	}
	args = append(args, arg)

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		par.advance()
		arg = par.parseExpression(MINIMUM_PRIORITY)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	return args
}
