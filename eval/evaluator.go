/*
File    : return-to-monk/eval/evaluator.go
*/

// Package eval implements the tree-walking evaluator for the Monkey language.
// It walks the AST produced by the parser under a lexically-scoped environment
// chain, producing either a value or an in-band error value. Evaluation is
// synchronous, single-threaded, and recursive; statement order, operand order,
// and argument order follow source order.
package eval

import (
	"fmt"

	"github.com/stijnVanHorenbeek/return-to-monk/objects"
	"github.com/stijnVanHorenbeek/return-to-monk/parser"
	"github.com/stijnVanHorenbeek/return-to-monk/scope"
)

// Evaluator holds the state for evaluating Monkey AST nodes.
// It owns the global scope, which persists across Eval calls so that a host
// (such as the REPL) can keep let bindings alive between inputs. Everything
// else is per-call state threaded through the recursion.
type Evaluator struct {
	Scp *scope.Scope // Global scope for top-level bindings
}

// NewEvaluator creates and initializes a new Evaluator instance.
//
// The evaluator starts with a fresh global scope with no parent. Hosts that
// need bindings to persist across multiple programs (the REPL) create one
// evaluator and reuse it; tests construct a fresh one per scenario.
//
// Returns:
//   - *Evaluator: A fully initialized evaluator ready to execute Monkey code
//
// Example usage:
//
//	ev := NewEvaluator()
//	result := ev.Eval(parser.NewParser(src).Parse())
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Scp: scope.NewScope(nil),
	}
}

// Eval evaluates a complete program against the evaluator's global scope.
//
// The program behaves like a block with one difference: when a ReturnValue
// bubbles out of the statement list, the wrapper is stripped and the inner
// value becomes the program's result. The wrapper itself never escapes to
// the caller. An error value aborts evaluation and is returned as-is.
//
// Parameters:
//   - root: The program node produced by the parser
//
// Returns:
//   - objects.MonkeyObject: The program's value, an *objects.Error, or Null
//     for an empty program
func (e *Evaluator) Eval(root *parser.RootNode) objects.MonkeyObject {
	var result objects.MonkeyObject = &objects.Null{}

	for _, stmt := range root.Statements {
		result = e.evalNode(stmt, e.Scp)

		switch result := result.(type) {
		case *objects.ReturnValue:
			// The program boundary strips the control-flow wrapper
			return result.Value
		case *objects.Error:
			return result
		}
	}

	return result
}

// evalNode is the central dispatch of the evaluator.
// It pattern-matches on the node's concrete type and delegates to the
// matching evaluation routine, threading the active scope through.
//
// Parameters:
//   - node: The AST node to evaluate
//   - scp: The scope in which to evaluate it
//
// Returns:
//   - objects.MonkeyObject: The node's value or an error value
func (e *Evaluator) evalNode(node parser.Node, scp *scope.Scope) objects.MonkeyObject {
	switch node := node.(type) {

	// Statements
	case *parser.DeclarativeStatementNode:
		return e.evalDeclarativeStatement(node, scp)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(node, scp)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(node, scp)

	// Literals
	case *parser.IntegerLiteralExpressionNode:
		return &objects.Integer{Value: node.Value}
	case *parser.BooleanLiteralExpressionNode:
		return &objects.Boolean{Value: node.Value}

	// Expressions
	case *parser.IdentifierExpressionNode:
		return e.evalIdentifierExpression(node, scp)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(node, scp)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(node, scp)
	case *parser.IfExpressionNode:
		return e.evalIfExpression(node, scp)
	case *parser.FunctionLiteralExpressionNode:
		return e.evalFunctionLiteral(node, scp)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(node, scp)

	default:
		return e.CreateError("unknown node: %s", node.Literal())
	}
}

// CreateError builds an evaluation error value with a formatted message.
// Errors are in-band values: they propagate outward through every enclosing
// statement and expression and abort the current top-level evaluation.
//
// Parameters:
//   - format: A fmt-style format string
//   - a: Format arguments
//
// Returns:
//   - *objects.Error: The error value
func (e *Evaluator) CreateError(format string, a ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, a...)}
}

// isError reports whether a value is an evaluation error.
// Used after every sub-evaluation to short-circuit error propagation.
func isError(obj objects.MonkeyObject) bool {
	if obj != nil {
		return obj.GetType() == objects.ErrorType
	}
	return false
}

// isTruthy decides whether a value satisfies an if condition.
// Null is falsy, booleans are themselves, and every other value - including
// the integer zero - is truthy.
func isTruthy(obj objects.MonkeyObject) bool {
	switch obj := obj.(type) {
	case *objects.Null:
		return false
	case *objects.Boolean:
		return obj.Value
	default:
		return true
	}
}
