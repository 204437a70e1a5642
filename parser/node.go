/*
File    : return-to-monk/parser/node.go
*/
package parser

import (
	"github.com/stijnVanHorenbeek/return-to-monk/lexer"
)

// NodeVisitor: implements the Visitor design pattern for traversing the Abstract Syntax Tree (AST)
// Each Visit method processes a specific node type, enabling operations like printing or transformation
type NodeVisitor interface {
	VisitRootNode(node RootNode) // Entry point for visiting the entire program

	// Literal value visitors - handle primitive data types
	VisitIntegerLiteralExpressionNode(node IntegerLiteralExpressionNode) // Integer literals: 42, 0, 15
	VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode) // Boolean literals: true, false

	// Expression visitors - handle operations and computations
	VisitBinaryExpressionNode(node BinaryExpressionNode)         // Infix operations: +, -, *, /, ==, !=, <, >
	VisitUnaryExpressionNode(node UnaryExpressionNode)           // Prefix operations: -, !
	VisitIdentifierExpressionNode(node IdentifierExpressionNode) // Variable/function identifiers: x, myVar
	VisitIfExpressionNode(node IfExpressionNode)                 // If-else conditionals: if (cond) { ... } else { ... }

	// Function-related visitors
	VisitFunctionLiteralExpressionNode(node FunctionLiteralExpressionNode) // Function literals: fn(params) { body }
	VisitCallExpressionNode(node CallExpressionNode)                       // Function calls: f(arg1, arg2)

	// Statement visitors
	VisitDeclarativeStatementNode(node DeclarativeStatementNode) // Bindings: let x = 10
	VisitReturnStatementNode(node ReturnStatementNode)           // Return statements: return expr
	VisitBlockStatementNode(node BlockStatementNode)             // Code blocks: { stmt1; stmt2; }
}

// Node: base interface for all nodes of the AST
// Literal(): returns the canonical string representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
// Node: every statement node is a node
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Node: every expression node is a node
// StatementNode: every expression is also a statement (an expression statement)
type ExpressionNode interface {
	Node
	StatementNode
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: ordered list of statements in the program
type RootNode struct {
	Statements []StatementNode // every top-level item of the program is a statement
}

// RootNode.Literal(): string representation of the whole program.
// Statement renderings are concatenated with no separator; let and return
// statements carry their own trailing semicolon.
func (root *RootNode) Literal() string {
	res := ""
	for _, stmt := range root.Statements {
		res += stmt.Literal()
	}
	return res
}

// RootNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(*root)
}

// There can be many types of ExpressionNodes
// IntegerLiteralExpressionNode: represents an integer number literal
// Example: 42, 0, 15
type IntegerLiteralExpressionNode struct {
	Token lexer.Token // The integer token with its literal text
	Value int64       // The parsed integer value
}

// IntegerLiteralExpressionNode.Literal(): string representation of the node
func (node *IntegerLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// IntegerLiteralExpressionNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (node *IntegerLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIntegerLiteralExpressionNode(*node)
}

// IntegerLiteralExpressionNode.Statement(): every expression is also a statement
func (node *IntegerLiteralExpressionNode) Statement() {

}

// IntegerLiteralExpressionNode.Expression(): marker method for expression nodes
func (node *IntegerLiteralExpressionNode) Expression() {

}

// BooleanLiteralExpressionNode: represents a boolean literal value
// Example: true or false
type BooleanLiteralExpressionNode struct {
	Token lexer.Token // The boolean token (true/false)
	Value bool        // The boolean value
}

// BooleanLiteralExpressionNode.Literal(): string representation of the node
func (node *BooleanLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// BooleanLiteralExpressionNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (node *BooleanLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBooleanLiteralExpressionNode(*node)
}

// BooleanLiteralExpressionNode.Statement(): every expression is also a statement
func (node *BooleanLiteralExpressionNode) Statement() {

}

// BooleanLiteralExpressionNode.Expression(): marker method for expression nodes
func (node *BooleanLiteralExpressionNode) Expression() {

}

// IdentifierExpressionNode: represents a variable or function identifier
// Example: x, myVar, add
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The identifier name
}

// IdentifierExpressionNode.Literal(): string representation of the node
func (node *IdentifierExpressionNode) Literal() string {
	return node.Name
}

// IdentifierExpressionNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (node *IdentifierExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIdentifierExpressionNode(*node)
}

// IdentifierExpressionNode.Statement(): every expression is also a statement
func (node *IdentifierExpressionNode) Statement() {

}

// IdentifierExpressionNode.Expression(): marker method for expression nodes
func (node *IdentifierExpressionNode) Expression() {

}

// UnaryExpressionNode: represents a prefix operation expression with one operand
// Example: -x, !flag
type UnaryExpressionNode struct {
	Operation lexer.Token    // The prefix operator token (-, !)
	Right     ExpressionNode // The operand expression
}

// UnaryExpressionNode.Literal(): fully parenthesised rendering, e.g. (-a)
func (node *UnaryExpressionNode) Literal() string {
	return "(" + node.Operation.Literal + node.Right.Literal() + ")"
}

// UnaryExpressionNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(*node)
}

// UnaryExpressionNode.Statement(): every expression is also a statement
func (node *UnaryExpressionNode) Statement() {

}

// UnaryExpressionNode.Expression(): marker method for expression nodes
func (node *UnaryExpressionNode) Expression() {

}

// BinaryExpressionNode: represents an infix operation expression with two operands
// Example: 2 + 3, x * y, a == b
type BinaryExpressionNode struct {
	Operation lexer.Token    // The infix operator token (+, -, *, /, ==, !=, <, >)
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

// BinaryExpressionNode.Literal(): fully parenthesised rendering, e.g. (a + b).
// Re-parsing the rendering yields a structurally equal tree.
func (node *BinaryExpressionNode) Literal() string {
	return "(" + node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal() + ")"
}

// BinaryExpressionNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(*node)
}

// BinaryExpressionNode.Statement(): every expression is also a statement
func (node *BinaryExpressionNode) Statement() {

}

// BinaryExpressionNode.Expression(): marker method for expression nodes
func (node *BinaryExpressionNode) Expression() {

}

// DeclarativeStatementNode: represents a let binding statement
// Example: let x = 10
type DeclarativeStatementNode struct {
	LetToken   lexer.Token              // The 'let' keyword token
	Identifier IdentifierExpressionNode // The name being bound
	Expr       ExpressionNode           // The value expression
}

// DeclarativeStatementNode.Literal(): string representation of the node
func (node *DeclarativeStatementNode) Literal() string {
	return node.LetToken.Literal + " " + node.Identifier.Name + " = " + node.Expr.Literal() + ";"
}

// DeclarativeStatementNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (node *DeclarativeStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitDeclarativeStatementNode(*node)
}

// DeclarativeStatementNode.Statement(): marker method for statement nodes
func (node *DeclarativeStatementNode) Statement() {

}

// ReturnStatementNode: represents a return statement in a function
// Example: return x + 5
type ReturnStatementNode struct {
	ReturnToken lexer.Token    // The 'return' keyword token
	Expr        ExpressionNode // The expression to return
}

// ReturnStatementNode.Literal(): string representation of the node
func (node *ReturnStatementNode) Literal() string {
	return node.ReturnToken.Literal + " " + node.Expr.Literal() + ";"
}

// ReturnStatementNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(*node)
}

// ReturnStatementNode.Statement(): marker method for statement nodes
func (node *ReturnStatementNode) Statement() {

}

// BlockStatementNode: represents a block of statements enclosed in braces
// Example: { stmt1; stmt2; }
type BlockStatementNode struct {
	BraceToken lexer.Token     // The opening '{' token
	Statements []StatementNode // List of statements in the block
}

// BlockStatementNode.Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	str := "{"
	for _, stmt := range node.Statements {
		str += stmt.Literal()
	}
	str += "}"
	return str
}

// BlockStatementNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(*node)
}

// BlockStatementNode.Statement(): marker method for statement nodes
func (node *BlockStatementNode) Statement() {

}

// IfExpressionNode: represents an if-else conditional expression
// Example: if (x > 0) { ... } else { ... }
// The else block is optional; ElseBlock is nil when absent.
type IfExpressionNode struct {
	IfToken   lexer.Token         // The 'if' keyword token
	Condition ExpressionNode      // The condition expression to evaluate
	ThenBlock *BlockStatementNode // Block to evaluate when the condition is truthy
	ElseBlock *BlockStatementNode // Block to evaluate otherwise (nil when absent)
}

// IfExpressionNode.Literal(): string representation of the node
func (node *IfExpressionNode) Literal() string {
	res := node.IfToken.Literal + " (" + node.Condition.Literal() + ") " + node.ThenBlock.Literal()
	if node.ElseBlock != nil {
		res += " else " + node.ElseBlock.Literal()
	}
	return res
}

// IfExpressionNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (node *IfExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfExpressionNode(*node)
}

// IfExpressionNode.Statement(): every expression is also a statement
func (node *IfExpressionNode) Statement() {

}

// IfExpressionNode.Expression(): marker method for expression nodes
func (node *IfExpressionNode) Expression() {

}

// FunctionLiteralExpressionNode: represents an anonymous function literal
// Example: fn(x, y) { return x + y; }
type FunctionLiteralExpressionNode struct {
	FuncToken lexer.Token                 // The 'fn' keyword token
	Params    []*IdentifierExpressionNode // Ordered parameter names
	Body      *BlockStatementNode         // The function body block
}

// FunctionLiteralExpressionNode.Literal(): string representation of the node
func (node *FunctionLiteralExpressionNode) Literal() string {
	params := ""
	for i, param := range node.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Literal()
	}
	return node.FuncToken.Literal + "(" + params + ") " + node.Body.Literal()
}

// FunctionLiteralExpressionNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (node *FunctionLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionLiteralExpressionNode(*node)
}

// FunctionLiteralExpressionNode.Statement(): every expression is also a statement
func (node *FunctionLiteralExpressionNode) Statement() {

}

// FunctionLiteralExpressionNode.Expression(): marker method for expression nodes
func (node *FunctionLiteralExpressionNode) Expression() {

}

// CallExpressionNode: represents a function call expression.
// The callee is a full expression so both named and immediately-invoked
// function literals are callable.
// Example: add(2, 3) or fn(x) { x; }(5)
type CallExpressionNode struct {
	ParenToken lexer.Token      // The '(' token that opened the argument list
	Function   ExpressionNode   // The expression evaluating to the callee
	Arguments  []ExpressionNode // List of argument expressions, in source order
}

// CallExpressionNode.Literal(): string representation of the node
func (node *CallExpressionNode) Literal() string {
	args := ""
	for i, arg := range node.Arguments {
		if i > 0 {
			args += ", "
		}
		args += arg.Literal()
	}
	return node.Function.Literal() + "(" + args + ")"
}

// CallExpressionNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(*node)
}

// CallExpressionNode.Statement(): every expression is also a statement
func (node *CallExpressionNode) Statement() {

}

// CallExpressionNode.Expression(): marker method for expression nodes
func (node *CallExpressionNode) Expression() {

}
