// Package backend declares the contract a code-emission module
// implements to walk an analyzed AST. No concrete emitter
// lives here: this is the seam, not a backend. The core guarantees,
// before handing a Program to a Visitor, that:
//
//   - every WordDefinition reachable from the program appears in the
//     dictionary before any WordCall targeting it is visited;
//   - every WordCall name either resolves in the dictionary or has
//     already produced an analyzer error.
//
// A Visitor must not mutate the AST or the dictionary it is given.
package backend

import "github.com/kdriscoll/forthc/internal/ast"

// Visitor is one callback per AST variant. Walk starts a traversal by
// handing a Program to the Visitor; a generator package (out of
// scope here) implements Visitor to emit a target-language artifact.
type Visitor interface {
	VisitProgram(*ast.Program)
	VisitWordDefinition(*ast.WordDefinition)
	VisitWordCall(*ast.WordCall)
	VisitNumberLiteral(*ast.NumberLiteral)
	VisitStringLiteral(*ast.StringLiteral)
	VisitIfStatement(*ast.IfStatement)
	VisitBeginUntilLoop(*ast.BeginUntilLoop)
	VisitMathOperation(*ast.MathOperation)
	VisitVariableDeclaration(*ast.VariableDeclaration)
}

// Walk hands program to v.VisitProgram and does nothing else: it does
// not dispatch the program's statements. The Visitor's own VisitProgram
// walks program.Statements (and any IfStatement/BeginUntilLoop/
// WordDefinition bodies it chooses to enter) through WalkStatement.
func Walk(v Visitor, program *ast.Program) {
	v.VisitProgram(program)
}

// WalkStatement dispatches a single statement to the matching callback.
// Backends call this themselves when they choose to recurse into a
// compound node's body, keeping the recursion policy in the backend
// rather than in this contract.
func WalkStatement(v Visitor, stmt ast.Statement) {
	switch n := stmt.(type) {
	case *ast.WordDefinition:
		v.VisitWordDefinition(n)
	case *ast.WordCall:
		v.VisitWordCall(n)
	case *ast.NumberLiteral:
		v.VisitNumberLiteral(n)
	case *ast.StringLiteral:
		v.VisitStringLiteral(n)
	case *ast.IfStatement:
		v.VisitIfStatement(n)
	case *ast.BeginUntilLoop:
		v.VisitBeginUntilLoop(n)
	case *ast.MathOperation:
		v.VisitMathOperation(n)
	case *ast.VariableDeclaration:
		v.VisitVariableDeclaration(n)
	}
}
