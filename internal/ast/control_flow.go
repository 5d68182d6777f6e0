package ast

import (
	"strings"

	"github.com/kdriscoll/forthc/internal/effect"
)

// IfStatement is `cond IF thenBranch (ELSE elseBranch)? THEN`. The
// condition itself is implicit (it is whatever the stack holds when
// this node runs); ElseBranch is nil when no ELSE was written, which
// the analyzer treats as an empty branch.
type IfStatement struct {
	base
	ThenBranch []Statement
	ElseBranch []Statement // nil if absent
}

func NewIfStatement(pos Position, thenBranch, elseBranch []Statement) *IfStatement {
	return &IfStatement{base: base{pos: pos, eff: effect.Unknown}, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (i *IfStatement) statementNode() {}
func (i *IfStatement) String() string {
	var sb strings.Builder
	sb.WriteString("IF ")
	for _, s := range i.ThenBranch {
		sb.WriteString(s.String())
		sb.WriteString(" ")
	}
	if i.ElseBranch != nil {
		sb.WriteString("ELSE ")
		for _, s := range i.ElseBranch {
			sb.WriteString(s.String())
			sb.WriteString(" ")
		}
	}
	sb.WriteString("THEN")
	return sb.String()
}

// BeginUntilLoop is `BEGIN body UNTIL`. UNTIL's condition is implicit,
// the same way IF's condition is.
type BeginUntilLoop struct {
	base
	Body []Statement
}

func NewBeginUntilLoop(pos Position, body []Statement) *BeginUntilLoop {
	return &BeginUntilLoop{base: base{pos: pos, eff: effect.Unknown}, Body: body}
}

func (b *BeginUntilLoop) statementNode() {}
func (b *BeginUntilLoop) String() string {
	var sb strings.Builder
	sb.WriteString("BEGIN ")
	for _, s := range b.Body {
		sb.WriteString(s.String())
		sb.WriteString(" ")
	}
	sb.WriteString("UNTIL")
	return sb.String()
}
