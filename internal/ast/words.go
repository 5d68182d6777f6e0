package ast

import (
	"fmt"
	"strings"

	"github.com/kdriscoll/forthc/internal/effect"
)

// WordDefinition is a colon definition: `: NAME body ;`. Its effect
// starts unknown and is filled in by the semantic analyzer's fixpoint
// phase.
type WordDefinition struct {
	base
	Name string
	Body []Statement
}

func NewWordDefinition(pos Position, name string, body []Statement) *WordDefinition {
	return &WordDefinition{base: base{pos: pos, eff: effect.Unknown}, Name: name, Body: body}
}

func (w *WordDefinition) statementNode() {}
func (w *WordDefinition) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, ": %s ", w.Name)
	for _, s := range w.Body {
		sb.WriteString(s.String())
		sb.WriteString(" ")
	}
	sb.WriteString(";")
	return sb.String()
}

// WordCall invokes a dictionary entry by name (user word, variable, or
// constant use). Its effect is unknown until the analyzer resolves the
// name against the dictionary.
type WordCall struct {
	base
	Name string
}

func NewWordCall(pos Position, name string) *WordCall {
	return &WordCall{base: base{pos: pos, eff: effect.Unknown}, Name: name}
}

func (w *WordCall) statementNode() {}
func (w *WordCall) String() string { return w.Name }

// MathOperation is an arithmetic/comparison/bitwise word recognized by
// the lexer and treated as a primitive with a fixed, table-driven effect
// rather than a dictionary lookup.
type MathOperation struct {
	base
	Op string
}

func NewMathOperation(pos Position, op string, eff effect.StackEffect) *MathOperation {
	return &MathOperation{base: base{pos: pos, eff: eff}, Op: op}
}

func (m *MathOperation) statementNode() {}
func (m *MathOperation) String() string { return m.Op }

// VariableDeclaration is `VARIABLE name` or `CONSTANT name`. A variable
// declaration has no stack effect of its own (the effect belongs to a
// later use, which pushes an address: (0,1)); a constant declaration
// consumes one value from the stack at the point of declaration.
type VariableDeclaration struct {
	base
	Name       string
	IsConstant bool
}

func NewVariableDeclaration(pos Position, name string, isConstant bool) *VariableDeclaration {
	v := &VariableDeclaration{base: base{pos: pos}, Name: name, IsConstant: isConstant}
	if isConstant {
		v.eff = effect.StackEffect{Consumed: 1, Produced: 0, Known: true}
	} else {
		v.eff = effect.StackEffect{Consumed: 0, Produced: 0, Known: true}
	}
	return v
}

func (v *VariableDeclaration) statementNode() {}
func (v *VariableDeclaration) String() string {
	if v.IsConstant {
		return fmt.Sprintf("CONSTANT %s", v.Name)
	}
	return fmt.Sprintf("VARIABLE %s", v.Name)
}
