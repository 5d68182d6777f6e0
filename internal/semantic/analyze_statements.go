package semantic

import "github.com/kdriscoll/forthc/internal/ast"

// analyzeBody analyzes a sequence of statements in order, threading a
// single abstractState through them — the shared traversal every
// analyzeDefinition/analyzeIf/analyzeBeginUntil call relies on.
func (a *Analyzer) analyzeBody(body []ast.Statement, state *abstractState, enclosingName string, programLevel bool) {
	for _, stmt := range body {
		a.analyzeStatement(stmt, state, enclosingName, programLevel)
	}
}

// analyzeStatement dispatches one AST node to its per-variant rule.
// The variant set is closed, so a type switch stands in for
// the Visitor the backend package formalizes for emission.
func (a *Analyzer) analyzeStatement(stmt ast.Statement, state *abstractState, enclosingName string, programLevel bool) {
	switch n := stmt.(type) {
	case *ast.NumberLiteral:
		a.analyzeLiteral(n, state)
	case *ast.StringLiteral:
		a.analyzeLiteral(n, state)
	case *ast.MathOperation:
		a.applyEffect(state, n.Effect(), n.Pos(), programLevel)
	case *ast.WordCall:
		a.analyzeCall(n, state, enclosingName, programLevel)
	case *ast.VariableDeclaration:
		a.applyEffect(state, n.Effect(), n.Pos(), programLevel)
	case *ast.IfStatement:
		a.analyzeIf(n, state, enclosingName, programLevel)
	case *ast.BeginUntilLoop:
		a.analyzeBeginUntil(n, state, enclosingName, programLevel)
	case *ast.WordDefinition:
		// Nested colon definitions are not executable statements; the
		// grammar allows them syntactically but a well-formed
		// definition body never contains one, so this case is
		// unreachable in practice. Skip rather than panic so a
		// malformed nested definition doesn't crash analysis of the
		// rest of the body.
	}
}
