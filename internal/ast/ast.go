// Package ast defines the typed syntax tree produced by the parser:
// a closed set of node variants, each exposing a declared or
// computed stack effect. The variant set is closed, so handling is done
// with a type switch (a small Visitor interface, one callback per
// variant) rather than open inheritance.
package ast

import (
	"strings"

	"github.com/kdriscoll/forthc/internal/effect"
	"github.com/kdriscoll/forthc/internal/lexer"
)

// Node is the base interface every AST variant implements.
type Node interface {
	// Pos returns the node's source position for diagnostics.
	Pos() lexer.Position
	// String renders the node for debugging/printing.
	String() string
	// Effect returns the node's declared or computed stack effect.
	// Effect() is unknown (Known == false) until the analyzer resolves
	// call/definition effects; literal and math nodes know their effect
	// immediately from the grammar.
	Effect() effect.StackEffect
	// SetEffect stores a computed effect on the node; used by the
	// analyzer to annotate WordCall and WordDefinition nodes in place.
	SetEffect(effect.StackEffect)
}

// Statement is any node that may appear directly inside a Program or a
// definition/branch/loop body.
type Statement interface {
	Node
	statementNode()
}

// base carries the fields and Effect/SetEffect plumbing shared by every
// node variant via embedding, so each concrete node only adds its own
// fields.
type base struct {
	pos Position
	eff effect.StackEffect
}

// Position is a re-export of lexer.Position so ast callers don't need to
// import the lexer package just to build a node.
type Position = lexer.Position

func (b *base) Pos() lexer.Position          { return b.pos }
func (b *base) Effect() effect.StackEffect   { return b.eff }
func (b *base) SetEffect(e effect.StackEffect) { b.eff = e }

// Program is the root node: an ordered sequence of top-level
// statements.
type Program struct {
	base
	Statements []Statement
}

func NewProgram(stmts []Statement) *Program {
	pos := lexer.Position{Line: 1, Column: 1}
	if len(stmts) > 0 {
		pos = stmts[0].Pos()
	}
	return &Program{base: base{pos: pos}, Statements: stmts}
}

func (p *Program) statementNode() {}
func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}
