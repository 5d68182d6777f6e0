package semantic

import "github.com/kdriscoll/forthc/internal/ast"

// analyzeLiteral applies a NumberLiteral's or StringLiteral's already-
// known effect to state: push 1 for a number, push 2 for a literal
// string (address + length), push 0 for a print string.
func (a *Analyzer) analyzeLiteral(node ast.Node, state *abstractState) {
	state.push(node.Effect().Produced)
}
