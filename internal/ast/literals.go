package ast

import (
	"fmt"

	"github.com/kdriscoll/forthc/internal/effect"
)

// NumberLiteral is a numeric literal token turned into a node.
// IsFloat is true iff the source lexeme contained a '.'.
// Pushing a number always has effect (0, 1): it produces one value and
// consumes nothing from the pre-existing stack.
type NumberLiteral struct {
	base
	Text    string
	IsFloat bool
}

func NewNumberLiteral(pos Position, text string, isFloat bool) *NumberLiteral {
	n := &NumberLiteral{base: base{pos: pos}, Text: text, IsFloat: isFloat}
	n.eff = effect.StackEffect{Consumed: 0, Produced: 1, Known: true}
	return n
}

func (n *NumberLiteral) statementNode() {}
func (n *NumberLiteral) String() string { return n.Text }

// StringLiteral distinguishes the print-string form (`."..."`, no stack
// effect, just emits text) from the literal-string form (`"..."`, which
// pushes an address and a length: effect (0, 2)).
type StringLiteral struct {
	base
	Text    string
	IsPrint bool
}

func NewStringLiteral(pos Position, text string, isPrint bool) *StringLiteral {
	s := &StringLiteral{base: base{pos: pos}, Text: text, IsPrint: isPrint}
	if isPrint {
		s.eff = effect.StackEffect{Consumed: 0, Produced: 0, Known: true}
	} else {
		s.eff = effect.StackEffect{Consumed: 0, Produced: 2, Known: true}
	}
	return s
}

func (s *StringLiteral) statementNode() {}
func (s *StringLiteral) String() string {
	if s.IsPrint {
		return fmt.Sprintf(`."%s"`, s.Text)
	}
	return fmt.Sprintf(`"%s"`, s.Text)
}
