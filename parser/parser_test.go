/*
File    : return-to-monk/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// represents a test case for operator precedence rendering
// Input: source code
// Expected: canonical fully-parenthesised rendering of the parsed program
type TestPrecedence struct {
	Input    string
	Expected string
}

// parseProgram is a test helper that parses src and fails the test on any
// parser error.
func parseProgram(t *testing.T, src string) *RootNode {
	t.Helper()
	par := NewParser(src)
	root := par.Parse()
	require.Empty(t, par.GetErrors(), "parser errors for %q", src)
	return root
}

// TestOperatorPrecedence checks that expressions parse with the correct
// grouping by comparing the fully-parenthesised rendering of the tree.
func TestOperatorPrecedence(t *testing.T) {

	tests := []TestPrecedence{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"false", "false"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"3 < 5 == true", "((3 < 5) == true)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
	}

	for _, test := range tests {
		root := parseProgram(t, test.Input)
		assert.Equal(t, test.Expected, root.Literal(), "rendering of %q", test.Input)
	}
}

// TestRenderingRoundTrip verifies that re-parsing a program's canonical
// rendering yields a structurally equal tree (same rendering again).
func TestRenderingRoundTrip(t *testing.T) {
	sources := []string{
		"a + b * c + d / e - f",
		"let x = 1 + 2 * 3;",
		"return !true;",
		"if (x < y) { x } else { y }",
		"let add = fn(x, y) { return x + y; };",
		"fn(x) { x; }(5)",
	}

	for _, src := range sources {
		first := parseProgram(t, src).Literal()
		second := parseProgram(t, first).Literal()
		assert.Equal(t, first, second, "round trip of %q", src)
	}
}

// TestDeclarativeStatements checks let statements: the bound name and the
// full value expression parsed at lowest precedence.
func TestDeclarativeStatements(t *testing.T) {
	tests := []struct {
		Input         string
		ExpectedName  string
		ExpectedValue string
	}{
		{"let x = 5;", "x", "5"},
		{"let y = true;", "y", "true"},
		{"let foobar = y;", "foobar", "y"},
		{"let z = 1 + 2 * 3", "z", "(1 + (2 * 3))"},
	}

	for _, test := range tests {
		root := parseProgram(t, test.Input)
		require.Len(t, root.Statements, 1)

		stmt, ok := root.Statements[0].(*DeclarativeStatementNode)
		require.True(t, ok, "statement is %T, want *DeclarativeStatementNode", root.Statements[0])
		assert.Equal(t, test.ExpectedName, stmt.Identifier.Name)
		assert.Equal(t, test.ExpectedValue, stmt.Expr.Literal())
	}
}

// TestReturnStatements checks return statements parse a full value expression.
func TestReturnStatements(t *testing.T) {
	tests := []struct {
		Input         string
		ExpectedValue string
	}{
		{"return 5;", "5"},
		{"return true;", "true"},
		{"return 1 + foo * 2;", "(1 + (foo * 2))"},
	}

	for _, test := range tests {
		root := parseProgram(t, test.Input)
		require.Len(t, root.Statements, 1)

		stmt, ok := root.Statements[0].(*ReturnStatementNode)
		require.True(t, ok, "statement is %T, want *ReturnStatementNode", root.Statements[0])
		assert.Equal(t, test.ExpectedValue, stmt.Expr.Literal())
	}
}

// TestIfExpression checks the conditional form without an else branch:
// the alternative must be absent, not an empty block.
func TestIfExpression(t *testing.T) {
	root := parseProgram(t, "if (x < y) { x }")
	require.Len(t, root.Statements, 1)

	node, ok := root.Statements[0].(*IfExpressionNode)
	require.True(t, ok, "statement is %T, want *IfExpressionNode", root.Statements[0])
	assert.Equal(t, "(x < y)", node.Condition.Literal())
	require.Len(t, node.ThenBlock.Statements, 1)
	assert.Equal(t, "x", node.ThenBlock.Statements[0].Literal())
	assert.Nil(t, node.ElseBlock)
}

// TestIfElseExpression checks the conditional form with an else branch.
func TestIfElseExpression(t *testing.T) {
	root := parseProgram(t, "if (x < y) { x } else { y }")
	require.Len(t, root.Statements, 1)

	node, ok := root.Statements[0].(*IfExpressionNode)
	require.True(t, ok)
	require.NotNil(t, node.ElseBlock)
	require.Len(t, node.ElseBlock.Statements, 1)
	assert.Equal(t, "y", node.ElseBlock.Statements[0].Literal())
}

// TestBlockStatement checks a bare block in statement position.
func TestBlockStatement(t *testing.T) {
	root := parseProgram(t, "{ let x = 1; x; }")
	require.Len(t, root.Statements, 1)

	block, ok := root.Statements[0].(*BlockStatementNode)
	require.True(t, ok, "statement is %T, want *BlockStatementNode", root.Statements[0])
	assert.Len(t, block.Statements, 2)
}

// TestFunctionLiteral checks parameter lists preserve order, including the
// empty list.
func TestFunctionLiteral(t *testing.T) {
	tests := []struct {
		Input          string
		ExpectedParams []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, test := range tests {
		root := parseProgram(t, test.Input)
		require.Len(t, root.Statements, 1)

		node, ok := root.Statements[0].(*FunctionLiteralExpressionNode)
		require.True(t, ok, "statement is %T, want *FunctionLiteralExpressionNode", root.Statements[0])
		require.Len(t, node.Params, len(test.ExpectedParams))
		for i, name := range test.ExpectedParams {
			assert.Equal(t, name, node.Params[i].Name)
		}
	}
}

// TestFunctionLiteralBody checks the body parses as a block of statements.
func TestFunctionLiteralBody(t *testing.T) {
	root := parseProgram(t, "fn(x, y) { x + y; }")
	require.Len(t, root.Statements, 1)

	node, ok := root.Statements[0].(*FunctionLiteralExpressionNode)
	require.True(t, ok)
	require.Len(t, node.Body.Statements, 1)
	assert.Equal(t, "(x + y)", node.Body.Statements[0].Literal())
}

// TestCallExpression checks argument lists parse at lowest precedence and
// preserve source order.
func TestCallExpression(t *testing.T) {
	root := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	require.Len(t, root.Statements, 1)

	node, ok := root.Statements[0].(*CallExpressionNode)
	require.True(t, ok, "statement is %T, want *CallExpressionNode", root.Statements[0])
	assert.Equal(t, "add", node.Function.Literal())
	require.Len(t, node.Arguments, 3)
	assert.Equal(t, "1", node.Arguments[0].Literal())
	assert.Equal(t, "(2 * 3)", node.Arguments[1].Literal())
	assert.Equal(t, "(4 + 5)", node.Arguments[2].Literal())
}

// TestImmediateCallExpression checks that a function literal can be invoked
// directly: the callee of the call is the literal itself.
func TestImmediateCallExpression(t *testing.T) {
	root := parseProgram(t, "fn(x) { x; }(5)")
	require.Len(t, root.Statements, 1)

	node, ok := root.Statements[0].(*CallExpressionNode)
	require.True(t, ok, "statement is %T, want *CallExpressionNode", root.Statements[0])

	_, ok = node.Function.(*FunctionLiteralExpressionNode)
	assert.True(t, ok, "callee is %T, want *FunctionLiteralExpressionNode", node.Function)
	require.Len(t, node.Arguments, 1)
	assert.Equal(t, "5", node.Arguments[0].Literal())
}

// TestIntegerLiteral checks the digit run converts to a signed 64-bit value.
func TestIntegerLiteral(t *testing.T) {
	root := parseProgram(t, "5;")
	require.Len(t, root.Statements, 1)

	node, ok := root.Statements[0].(*IntegerLiteralExpressionNode)
	require.True(t, ok)
	assert.Equal(t, int64(5), node.Value)
}

// TestParserErrors checks that failures are recorded with the exact message
// forms. Recovery past an error is checked by TestParserRecovers.
func TestParserErrors(t *testing.T) {
	tests := []struct {
		Input         string
		ExpectedError string
	}{
		{"let x 5;", "expected next token to be =, got IntLiteral instead"},
		{"let = 5;", "expected next token to be Identifier, got = instead"},
		{"*5", "no prefix parse function for *"},
		{"@", "no prefix parse function for INVALID"},
	}

	for _, test := range tests {
		par := NewParser(test.Input)
		par.Parse()

		require.True(t, par.HasErrors(), "expected errors for %q", test.Input)
		assert.Contains(t, par.GetErrors(), test.ExpectedError, "errors for %q", test.Input)
	}
}

// TestParserRecovers checks that one bad statement still yields the later
// good statements plus a non-empty error list.
func TestParserRecovers(t *testing.T) {
	par := NewParser("let x 5; let y = 10;")
	root := par.Parse()

	assert.True(t, par.HasErrors())

	found := false
	for _, stmt := range root.Statements {
		if decl, ok := stmt.(*DeclarativeStatementNode); ok && decl.Identifier.Name == "y" {
			found = true
		}
	}
	assert.True(t, found, "expected the parse to recover and produce the y binding")
}
