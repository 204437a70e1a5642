/*
File    : return-to-monk/eval/eval_statements.go
*/
package eval

import (
	"github.com/stijnVanHorenbeek/return-to-monk/objects"
	"github.com/stijnVanHorenbeek/return-to-monk/parser"
	"github.com/stijnVanHorenbeek/return-to-monk/scope"
)

// evalDeclarativeStatement evaluates a let binding.
// The value expression is evaluated in the current scope first; the name is
// then bound in the innermost scope. The statement yields the bound value,
// which is observable as a block's trailing value.
func (e *Evaluator) evalDeclarativeStatement(node *parser.DeclarativeStatementNode, scp *scope.Scope) objects.MonkeyObject {
	value := e.evalNode(node.Expr, scp)
	if isError(value) {
		return value
	}

	scp.Bind(node.Identifier.Name, value)
	return value
}

// evalReturnStatement evaluates a return statement.
// The value expression is evaluated and wrapped in a ReturnValue marker.
// The marker is how the evaluator short-circuits out of nested blocks: every
// enclosing block propagates it unchanged, and the nearest function or
// program boundary strips it.
func (e *Evaluator) evalReturnStatement(node *parser.ReturnStatementNode, scp *scope.Scope) objects.MonkeyObject {
	value := e.evalNode(node.Expr, scp)
	if isError(value) {
		return value
	}

	return &objects.ReturnValue{Value: value}
}

// evalBlockStatement evaluates the statements of a block in source order.
//
// When a statement yields a ReturnValue, evaluation stops and the wrapper is
// propagated as-is - deliberately not unwrapped - so that outer blocks also
// short-circuit until a function or program boundary strips it. Errors stop
// the block the same way. Otherwise the block's value is the last
// statement's value, or Null for an empty block.
func (e *Evaluator) evalBlockStatement(node *parser.BlockStatementNode, scp *scope.Scope) objects.MonkeyObject {
	var result objects.MonkeyObject = &objects.Null{}

	for _, stmt := range node.Statements {
		result = e.evalNode(stmt, scp)

		if result != nil {
			resultType := result.GetType()
			if resultType == objects.ReturnValueType || resultType == objects.ErrorType {
				return result
			}
		}
	}

	return result
}
