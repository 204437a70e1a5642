/*
File    : return-to-monk/eval/eval_conditionals.go
*/
package eval

import (
	"github.com/stijnVanHorenbeek/return-to-monk/objects"
	"github.com/stijnVanHorenbeek/return-to-monk/parser"
	"github.com/stijnVanHorenbeek/return-to-monk/scope"
)

// evalIfExpression evaluates a conditional expression.
// The condition is evaluated first; an error in it propagates unchanged.
// A truthy condition evaluates the consequence block, a falsy one evaluates
// the alternative when present, and a falsy condition with no alternative
// yields Null. Truthiness: Null and false are falsy, everything else -
// including the integer zero - is truthy.
func (e *Evaluator) evalIfExpression(node *parser.IfExpressionNode, scp *scope.Scope) objects.MonkeyObject {
	condition := e.evalNode(node.Condition, scp)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.evalBlockStatement(node.ThenBlock, scp)
	}
	if node.ElseBlock != nil {
		return e.evalBlockStatement(node.ElseBlock, scp)
	}
	return &objects.Null{}
}
