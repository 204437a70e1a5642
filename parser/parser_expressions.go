/*
File    : return-to-monk/parser/parser_expressions.go
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/stijnVanHorenbeek/return-to-monk/lexer"
)

// parseExpression is the heart of the Pratt parsing algorithm.
// It parses an expression whose operators all bind tighter than the given
// priority:
//  1. Select the unary (prefix) handler for the current token; if there is
//     none, record an error and give up on this expression.
//  2. Invoke it to obtain the left-hand side.
//  3. While the next token is not a semicolon and its precedence is higher
//     than the given priority, advance and hand the left-hand side to the
//     binary (infix) handler of the new current token. The returned node
//     becomes the new left-hand side.
//
// Because a binary handler re-enters parseExpression with its own operator's
// precedence, operators of equal precedence group left-to-right.
//
// Parameters:
//
//	priority - The binding power of the context invoking the parse
//
// Returns:
//
//	The parsed ExpressionNode, or nil if no expression starts here
func (par *Parser) parseExpression(priority int) ExpressionNode {
	unary := par.UnaryFuncs[par.CurrToken.Type]
	if unary == nil {
		par.addError(fmt.Sprintf("no prefix parse function for %s", par.CurrToken.Type))
		return nil
	}
	left := unary()

	for left != nil && par.NextToken.Type != lexer.SEMICOLON_DELIM && priority < getPrecedence(&par.NextToken) {
		binary := par.BinaryFuncs[par.NextToken.Type]
		if binary == nil {
			return left
		}
		par.advance()
		left = binary(left)
	}

	return left
}

// parseIdentifierExpression parses the current IDENT token into an
// identifier node. The parser does not resolve names; binding and lookup
// are evaluator concerns.
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	return &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}
}

// parseIntegerLiteral parses the current INT token into an integer literal
// node. The digit run is converted to a signed 64-bit value here so the
// evaluator works with native integers.
func (par *Parser) parseIntegerLiteral() ExpressionNode {
	value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		par.addError(fmt.Sprintf("could not parse %q as integer", par.CurrToken.Literal))
		return nil
	}
	return &IntegerLiteralExpressionNode{Token: par.CurrToken, Value: value}
}

// parseBooleanLiteral parses the current true/false keyword token into a
// boolean literal node.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteralExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Type == lexer.TRUE_KEY}
}

// parseParenthesizedExpression parses a grouped expression:
//
//	( <expression> )
//
// Grouping only steers precedence; there is no grouping node in the tree,
// the inner expression is returned directly.
func (par *Parser) parseParenthesizedExpression() ExpressionNode {
	// Step past the opening parenthesis
	par.advance()

	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	return expr
}

// parseUnaryExpression parses a prefix operation:
//
//	!<operand>  or  -<operand>
//
// The operand is parsed at PREFIX priority so that prefix operators bind
// tighter than any infix operator: -a * b parses as ((-a) * b).
func (par *Parser) parseUnaryExpression() ExpressionNode {
	node := &UnaryExpressionNode{Operation: par.CurrToken}

	// Step onto the operand and parse it with prefix binding power
	par.advance()
	node.Right = par.parseExpression(PREFIX_PRIORITY)
	if node.Right == nil {
		return nil
	}

	return node
}

// parseBinaryExpression parses an infix operation, given its already-parsed
// left operand:
//
//	<left> <op> <right>
//
// The right operand is parsed at the operator's own precedence, captured
// before advancing. Parsing the right side at the same precedence (rather
// than one lower) makes equal-precedence chains left-associative.
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	node := &BinaryExpressionNode{Operation: par.CurrToken, Left: left}

	// Capture the operator's binding power, then parse the right operand at it
	priority := getPrecedence(&par.CurrToken)
	par.advance()
	node.Right = par.parseExpression(priority)
	if node.Right == nil {
		return nil
	}

	return node
}
