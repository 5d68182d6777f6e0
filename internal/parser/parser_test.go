package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdriscoll/forthc/internal/ast"
	"github.com/kdriscoll/forthc/internal/dictionary"
)

func TestParseProgram_ColonDefinition(t *testing.T) {
	p := New(": SQUARE DUP * ;", nil)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors())
	require.Len(t, prog.Statements, 1)

	def, ok := prog.Statements[0].(*ast.WordDefinition)
	require.True(t, ok, "expected a WordDefinition, got %T", prog.Statements[0])
	assert.Equal(t, "SQUARE", def.Name)
	require.Len(t, def.Body, 2)

	call, ok := def.Body[0].(*ast.WordCall)
	require.True(t, ok)
	assert.Equal(t, "DUP", call.Name)

	mathOp, ok := def.Body[1].(*ast.MathOperation)
	require.True(t, ok)
	assert.Equal(t, "*", mathOp.Op)
}

func TestParseProgram_RegistersDefinitionBeforeBody(t *testing.T) {
	p := New(": COUNTDOWN DUP 0 > IF 1 - COUNTDOWN THEN ;", nil)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors())
	require.Len(t, prog.Statements, 1)

	entry := p.Dictionary().Lookup("COUNTDOWN")
	require.NotNil(t, entry, "recursive self-call must resolve in the dictionary")
}

func TestParseProgram_IfElseThen(t *testing.T) {
	p := New("1 IF 2 ELSE 3 THEN", nil)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors())
	require.Len(t, prog.Statements, 2)

	ifStmt, ok := prog.Statements[1].(*ast.IfStatement)
	require.True(t, ok)
	require.Len(t, ifStmt.ThenBranch, 1)
	require.Len(t, ifStmt.ElseBranch, 1)
}

func TestParseProgram_IfWithoutElse(t *testing.T) {
	p := New("1 IF 2 THEN", nil)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors())

	ifStmt, ok := prog.Statements[1].(*ast.IfStatement)
	require.True(t, ok)
	assert.Nil(t, ifStmt.ElseBranch)
}

func TestParseProgram_BeginUntil(t *testing.T) {
	p := New("BEGIN 1 UNTIL", nil)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors())
	require.Len(t, prog.Statements, 1)

	loop, ok := prog.Statements[0].(*ast.BeginUntilLoop)
	require.True(t, ok)
	require.Len(t, loop.Body, 1)
}

func TestParseProgram_VariableAndConstant(t *testing.T) {
	p := New("VARIABLE COUNTER CONSTANT LIMIT", nil)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors())
	require.Len(t, prog.Statements, 2)

	v, ok := prog.Statements[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "COUNTER", v.Name)
	assert.False(t, v.IsConstant)

	c, ok := prog.Statements[1].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "LIMIT", c.Name)
	assert.True(t, c.IsConstant)

	assert.NotNil(t, p.Dictionary().Lookup("COUNTER"))
	assert.NotNil(t, p.Dictionary().Lookup("LIMIT"))
}

func TestParseProgram_UnclosedDefinitionReportsError(t *testing.T) {
	p := New(": BROKEN 1 2 +", nil)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
}

func TestParseProgram_StrayThenReportsErrorAndRecovers(t *testing.T) {
	p := New("THEN 1 2 +", nil)
	prog := p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	// recovery should still surface the rest of the program
	require.NotEmpty(t, prog.Statements)
}

func TestParseProgram_NumberAndStringLiterals(t *testing.T) {
	p := New(`42 3.14 "hi" ." printed"`, nil)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors())
	require.Len(t, prog.Statements, 4)

	num, ok := prog.Statements[0].(*ast.NumberLiteral)
	require.True(t, ok)
	assert.False(t, num.IsFloat)

	flt, ok := prog.Statements[1].(*ast.NumberLiteral)
	require.True(t, ok)
	assert.True(t, flt.IsFloat)

	str, ok := prog.Statements[2].(*ast.StringLiteral)
	require.True(t, ok)
	assert.False(t, str.IsPrint)

	printStr, ok := prog.Statements[3].(*ast.StringLiteral)
	require.True(t, ok)
	assert.True(t, printStr.IsPrint)
}

func TestNew_NilDictionaryDefaultsToStandard(t *testing.T) {
	p := New("DUP", nil)
	require.NotNil(t, p.Dictionary())
	assert.Equal(t, dictionary.Standard, p.Dictionary().Config())
}
