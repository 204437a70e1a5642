/*
File    : return-to-monk/eval/eval_expressions.go
*/
package eval

import (
	"github.com/stijnVanHorenbeek/return-to-monk/lexer"
	"github.com/stijnVanHorenbeek/return-to-monk/objects"
	"github.com/stijnVanHorenbeek/return-to-monk/parser"
	"github.com/stijnVanHorenbeek/return-to-monk/scope"
)

// evalIdentifierExpression resolves an identifier through the scope chain.
// Lookup walks outward until a binding is found; an unbound name is an
// evaluation error.
func (e *Evaluator) evalIdentifierExpression(node *parser.IdentifierExpressionNode, scp *scope.Scope) objects.MonkeyObject {
	if value, ok := scp.LookUp(node.Name); ok {
		return value
	}
	return e.CreateError("identifier not found: %s", node.Name)
}

// evalUnaryExpression evaluates a prefix operation.
// The operand is evaluated first; an error in the operand propagates
// unchanged. Then the operator dispatches:
//   - '!' projects the operand to its truthiness and negates it
//   - '-' negates an integer; any other operand type is an error
func (e *Evaluator) evalUnaryExpression(node *parser.UnaryExpressionNode, scp *scope.Scope) objects.MonkeyObject {
	right := e.evalNode(node.Right, scp)
	if isError(right) {
		return right
	}

	switch node.Operation.Type {
	case lexer.NOT_OP:
		return evalNotOperation(right)
	case lexer.MINUS_OP:
		return e.evalNegateOperation(right)
	default:
		return e.CreateError("unknown operator: %s%s", node.Operation.Literal, right.GetType())
	}
}

// evalNotOperation implements the '!' operator.
// Null is falsy and booleans are themselves; every other value - including
// zero - is truthy, so '!' on it yields false. Applying '!' twice therefore
// projects any value onto its truthiness.
func evalNotOperation(right objects.MonkeyObject) objects.MonkeyObject {
	switch right := right.(type) {
	case *objects.Null:
		return &objects.Boolean{Value: true}
	case *objects.Boolean:
		return &objects.Boolean{Value: !right.Value}
	default:
		return &objects.Boolean{Value: false}
	}
}

// evalNegateOperation implements the '-' prefix operator.
// Only integers can be negated; anything else is an unknown-operator error.
func (e *Evaluator) evalNegateOperation(right objects.MonkeyObject) objects.MonkeyObject {
	integer, ok := right.(*objects.Integer)
	if !ok {
		return e.CreateError("unknown operator: -%s", right.GetType())
	}
	return &objects.Integer{Value: -integer.Value}
}

// evalBinaryExpression evaluates an infix operation.
// The left operand is evaluated first, then the right; an error in either
// aborts the expression. Operands whose type tags differ are a type
// mismatch. Matching types dispatch on the operand kind:
//   - two integers support the full operator set
//   - other same-type pairs support structural == and != only
func (e *Evaluator) evalBinaryExpression(node *parser.BinaryExpressionNode, scp *scope.Scope) objects.MonkeyObject {
	left := e.evalNode(node.Left, scp)
	if isError(left) {
		return left
	}

	right := e.evalNode(node.Right, scp)
	if isError(right) {
		return right
	}

	if left.GetType() != right.GetType() {
		return e.CreateError("type mismatch: %s %s %s", left.GetType(), node.Operation.Literal, right.GetType())
	}

	if left.GetType() == objects.IntegerType {
		return e.evalIntegerBinaryOperation(node.Operation, left.(*objects.Integer), right.(*objects.Integer))
	}

	return e.evalComparisonOperation(node.Operation, left, right)
}

// evalIntegerBinaryOperation dispatches an infix operator over two integers.
// Arithmetic wraps on overflow (native int64 semantics); division truncates
// toward zero, and dividing by zero is an evaluation error.
func (e *Evaluator) evalIntegerBinaryOperation(op lexer.Token, left *objects.Integer, right *objects.Integer) objects.MonkeyObject {
	switch op.Type {
	case lexer.PLUS_OP:
		return &objects.Integer{Value: left.Value + right.Value}
	case lexer.MINUS_OP:
		return &objects.Integer{Value: left.Value - right.Value}
	case lexer.MUL_OP:
		return &objects.Integer{Value: left.Value * right.Value}
	case lexer.DIV_OP:
		if right.Value == 0 {
			return e.CreateError("division by zero")
		}
		return &objects.Integer{Value: left.Value / right.Value}
	case lexer.LT_OP:
		return &objects.Boolean{Value: left.Value < right.Value}
	case lexer.GT_OP:
		return &objects.Boolean{Value: left.Value > right.Value}
	case lexer.EQ_OP:
		return &objects.Boolean{Value: left.Value == right.Value}
	case lexer.NE_OP:
		return &objects.Boolean{Value: left.Value != right.Value}
	default:
		return e.CreateError("unknown operator: %s %s %s", left.GetType(), op.Literal, right.GetType())
	}
}

// evalComparisonOperation handles == and != for same-type non-integer
// operands using structural comparison. Booleans compare by value and nulls
// are always equal to each other. Any other operator, and equality over
// function values, is an unknown-operator error.
func (e *Evaluator) evalComparisonOperation(op lexer.Token, left objects.MonkeyObject, right objects.MonkeyObject) objects.MonkeyObject {
	if op.Type != lexer.EQ_OP && op.Type != lexer.NE_OP {
		return e.CreateError("unknown operator: %s %s %s", left.GetType(), op.Literal, right.GetType())
	}

	var equal bool
	switch left := left.(type) {
	case *objects.Boolean:
		equal = left.Value == right.(*objects.Boolean).Value
	case *objects.Null:
		equal = true
	default:
		return e.CreateError("unknown operator: %s %s %s", left.GetType(), op.Literal, right.GetType())
	}

	if op.Type == lexer.NE_OP {
		equal = !equal
	}
	return &objects.Boolean{Value: equal}
}
