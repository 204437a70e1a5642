/*
File    : return-to-monk/eval/eval_functions.go
*/
package eval

import (
	"github.com/stijnVanHorenbeek/return-to-monk/function"
	"github.com/stijnVanHorenbeek/return-to-monk/objects"
	"github.com/stijnVanHorenbeek/return-to-monk/parser"
	"github.com/stijnVanHorenbeek/return-to-monk/scope"
)

// evalFunctionLiteral evaluates a function literal into a function value.
// The value captures the current scope by shared reference - not by copy -
// which is what makes closures work: functions created in the same scope
// observe each other's earlier bindings, and the captured scope stays alive
// for as long as any capturing function does.
func (e *Evaluator) evalFunctionLiteral(node *parser.FunctionLiteralExpressionNode, scp *scope.Scope) objects.MonkeyObject {
	return &function.Function{
		Params: node.Params,
		Body:   node.Body,
		Scp:    scp,
	}
}

// evalCallExpression evaluates a function call.
// The callee expression is evaluated first, then the arguments left to
// right; an error anywhere stops the call and the remaining arguments are
// not evaluated. The call then:
//  1. Rejects any callee that is not a function value.
//  2. Builds a fresh scope whose parent is the function's CAPTURED scope
//     (not the caller's) - lexical, not dynamic, scoping.
//  3. Binds parameters to arguments positionally. Arity is not checked:
//     extra arguments are ignored, and a missing parameter surfaces later
//     as an unresolved identifier.
//  4. Evaluates the body and unwraps a ReturnValue before handing the
//     result back to the caller.
func (e *Evaluator) evalCallExpression(node *parser.CallExpressionNode, scp *scope.Scope) objects.MonkeyObject {
	callee := e.evalNode(node.Function, scp)
	if isError(callee) {
		return callee
	}

	args := make([]objects.MonkeyObject, 0, len(node.Arguments))
	for _, argNode := range node.Arguments {
		arg := e.evalNode(argNode, scp)
		if isError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	fn, ok := callee.(*function.Function)
	if !ok {
		return e.CreateError("not a function: %s", callee.ToString())
	}

	// Fresh invocation frame chained to the captured scope
	callScope := scope.NewScope(fn.Scp)
	for i, param := range fn.Params {
		if i < len(args) {
			callScope.Bind(param.Name, args[i])
		}
	}

	result := e.evalBlockStatement(fn.Body, callScope)

	// The function boundary strips the control-flow wrapper
	if returnValue, ok := result.(*objects.ReturnValue); ok {
		return returnValue.Value
	}
	return result
}
