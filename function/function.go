/*
File    : return-to-monk/function/function.go
*/
package function

import (
	"github.com/stijnVanHorenbeek/return-to-monk/objects"
	"github.com/stijnVanHorenbeek/return-to-monk/parser"
	"github.com/stijnVanHorenbeek/return-to-monk/scope"
)

// Function represents a function value in Monkey.
// It captures the function's parameters, body, and the scope in which the
// literal was evaluated (for closure support). The captured scope is held by
// reference: every function created in the same scope shares it, and the
// scope outlives its block for as long as any capturing function does.
//
// Fields:
//   - Params: The ordered parameter identifiers. These are bound to argument
//     values in a fresh scope when the function is called.
//   - Body: The block statement evaluated on invocation.
//   - Scp: The scope the function closed over. Call scopes chain to this
//     scope, not to the caller's, which is what makes scoping lexical.
type Function struct {
	Params []*parser.IdentifierExpressionNode // Function parameter names
	Body   *parser.BlockStatementNode         // Function body (statements to evaluate)
	Scp    *scope.Scope                       // Captured scope for closures
}

// GetType returns the type identifier for this Function value.
// This implements the objects.MonkeyObject interface.
//
// Returns:
//   - objects.MonkeyType: The FUNCTION type tag
func (f *Function) GetType() objects.MonkeyType {
	return objects.FunctionType
}

// ToString returns the source-like rendering of the function, which is the
// canonical display form for function values.
//
// Example:
//
//	For fn(x, y) { return x + y; } this returns: "fn(x, y) {return (x + y);}"
//
// Returns:
//   - string: The source-like representation of the function
func (f *Function) ToString() string {
	params := ""
	for i, param := range f.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Name
	}
	return "fn(" + params + ") " + f.Body.Literal()
}

// ToObject returns a detailed representation of the function, showing its
// parameter list without the body. Useful for debugging and inspection.
//
// Example:
//
//	For fn(a, b) { ... } this returns: "<FUNCTION(a, b)>"
//
// Returns:
//   - string: A compact representation including the parameter names
func (f *Function) ToObject() string {
	params := ""
	for i, param := range f.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Name
	}
	return "<FUNCTION(" + params + ")>"
}
