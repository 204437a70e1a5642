/*
File    : return-to-monk/scope/scope.go
*/
package scope

import "github.com/stijnVanHorenbeek/return-to-monk/objects"

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping and
// closures. Each scope maintains its own variable bindings and can access
// variables from parent scopes. This structure supports:
// - Variable shadowing: inner scopes can redefine names from outer scopes
// - Closures: functions capture their defining scope and keep accessing it
// - Function invocation frames: each call gets a fresh scope whose parent is
//   the function's captured scope, not the caller's
//
// The scope chain is traversed upward (from child to parent) during variable
// lookup, implementing standard lexical scoping rules. Scopes are shared by
// reference: every function that closes over a scope holds the same pointer,
// so closures over the same scope observe each other's earlier bindings, and
// a child's Parent link keeps the parent reachable for as long as any
// capturing function lives.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.MonkeyObject

	// Parent points to the enclosing scope, forming a scope chain
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent scope.
//
// The parent parameter determines the scope's position in the hierarchy:
// - parent == nil: Creates a global (root) scope with no parent
// - parent != nil: Creates a nested scope that can access parent variables
//
// Each new scope starts with empty variable bindings but inherits access to
// all variables in parent scopes through the lookup chain.
//
// Parameters:
//   - parent: The enclosing scope, or nil for a global scope
//
// Returns:
//   - *Scope: A fully initialized scope ready for variable bindings
//
// Example usage:
//
//	globalScope := NewScope(nil)           // Create global scope
//	callScope := NewScope(capturedScope)   // Create function invocation scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.MonkeyObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent scopes.
//
// This method implements the core variable resolution algorithm for lexical
// scoping:
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches the parent
// 3. Continues up the scope chain until the variable is found or the root is reached
//
// This traversal order ensures that:
// - Variables in inner scopes shadow those in outer scopes
// - All variables in the scope chain are accessible
//
// The method is safe to call even if Variables map is nil (lazy initialization).
//
// Parameters:
//   - varName: The name of the variable to look up
//
// Returns:
//   - objects.MonkeyObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent
//
// Example:
//
//	let x = 10;                     // Bound in global scope
//	let f = fn(y) { x + y; };       // LookUp finds y in the call scope
//	f(5);                           // and x through the captured parent
func (s *Scope) LookUp(varName string) (objects.MonkeyObject, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.MonkeyObject)
	}
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates a new variable binding in the current scope.
//
// This method adds or updates a binding in the current scope only, without
// affecting parent scopes. New bindings always land in the innermost scope;
// binding a name that exists in a parent shadows it rather than updating it.
//
// Parameters:
//   - varName: The name of the variable to bind
//   - obj: The value to bind to the variable
//
// Returns:
//   - string: The variable name (echoed back)
//   - bool: true if the variable already existed in the current scope
//
// Example:
//
//	scope.Bind("x", &objects.Integer{Value: 10})  // New binding, returns ("x", false)
//	scope.Bind("x", &objects.Integer{Value: 20})  // Rebinding, returns ("x", true)
func (s *Scope) Bind(varName string, obj objects.MonkeyObject) (string, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.MonkeyObject)
	}
	_, has := s.Variables[varName]
	s.Variables[varName] = obj
	return varName, has
}
