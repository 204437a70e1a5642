/*
File    : return-to-monk/print_visitor.go
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/stijnVanHorenbeek/return-to-monk/parser"
)

const INDENT_SIZE = 4

// PrintingVisitor is a visitor that renders the AST as an indented tree.
// Each node prints one line with its canonical rendering; child nodes are
// indented one level deeper. It backs the `ast` debug command.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent indents the buffer by the current indent size
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// VisitRootNode visits the root node
func (p *PrintingVisitor) VisitRootNode(node parser.RootNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Program (%s)\n", node.Literal()))
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitIntegerLiteralExpressionNode visits the integer literal expression node
func (p *PrintingVisitor) VisitIntegerLiteralExpressionNode(node parser.IntegerLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Integer (%s => %d)\n", node.Literal(), node.Value))
}

// VisitBooleanLiteralExpressionNode visits the boolean literal expression node
func (p *PrintingVisitor) VisitBooleanLiteralExpressionNode(node parser.BooleanLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Boolean (%s => %t)\n", node.Literal(), node.Value))
}

// VisitIdentifierExpressionNode visits the identifier expression node
func (p *PrintingVisitor) VisitIdentifierExpressionNode(node parser.IdentifierExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Identifier (%s)\n", node.Name))
}

// VisitBinaryExpressionNode visits the infix expression node
func (p *PrintingVisitor) VisitBinaryExpressionNode(node parser.BinaryExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Infix [%s] (%s)\n", node.Operation.Literal, node.Literal()))
	p.Indent += INDENT_SIZE
	node.Left.Accept(p)
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitUnaryExpressionNode visits the prefix expression node
func (p *PrintingVisitor) VisitUnaryExpressionNode(node parser.UnaryExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Prefix [%s] (%s)\n", node.Operation.Literal, node.Literal()))
	p.Indent += INDENT_SIZE
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitIfExpressionNode visits the conditional expression node
func (p *PrintingVisitor) VisitIfExpressionNode(node parser.IfExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("If (%s)\n", node.Literal()))
	p.Indent += INDENT_SIZE
	node.Condition.Accept(p)
	node.ThenBlock.Accept(p)
	if node.ElseBlock != nil {
		node.ElseBlock.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitFunctionLiteralExpressionNode visits the function literal node
func (p *PrintingVisitor) VisitFunctionLiteralExpressionNode(node parser.FunctionLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Function (%s)\n", node.Literal()))
	p.Indent += INDENT_SIZE
	for _, param := range node.Params {
		param.Accept(p)
	}
	node.Body.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitCallExpressionNode visits the call expression node
func (p *PrintingVisitor) VisitCallExpressionNode(node parser.CallExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Call (%s)\n", node.Literal()))
	p.Indent += INDENT_SIZE
	node.Function.Accept(p)
	for _, arg := range node.Arguments {
		arg.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitDeclarativeStatementNode visits the let statement node
func (p *PrintingVisitor) VisitDeclarativeStatementNode(node parser.DeclarativeStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Let [%s] (%s)\n", node.Identifier.Name, node.Literal()))
	p.Indent += INDENT_SIZE
	node.Expr.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitReturnStatementNode visits the return statement node
func (p *PrintingVisitor) VisitReturnStatementNode(node parser.ReturnStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Return (%s)\n", node.Literal()))
	p.Indent += INDENT_SIZE
	node.Expr.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitBlockStatementNode visits the block statement node
func (p *PrintingVisitor) VisitBlockStatementNode(node parser.BlockStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Block (%s)\n", node.Literal()))
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// String returns the string representation of the visitor
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}
