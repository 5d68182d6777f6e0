package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextToken_ColonDefinition(t *testing.T) {
	l := New(": SQUARE DUP * ;")

	kinds := []TokenKind{COLON, WORD, WORD, MATHWORD, SEMICOLON, EOF}
	literals := []string{":", "SQUARE", "DUP", "*", ";", ""}

	for i, want := range kinds {
		tok := l.NextToken()
		assert.Equalf(t, want, tok.Kind, "token %d kind", i)
		assert.Equalf(t, literals[i], tok.Literal, "token %d literal", i)
	}
}

func TestNextToken_PreservesOriginalCase(t *testing.T) {
	l := New("If Then")
	tok := l.NextToken()
	require.Equal(t, IF, tok.Kind)
	assert.Equal(t, "If", tok.Literal, "original case must survive classification")

	tok = l.NextToken()
	require.Equal(t, THEN, tok.Kind)
	assert.Equal(t, "Then", tok.Literal)
}

func TestNextToken_Numbers(t *testing.T) {
	tests := []struct {
		input   string
		literal string
		isFloat bool
	}{
		{"42", "42", false},
		{"-17", "-17", false},
		{"3.14", "3.14", true},
		{"+5", "+5", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			tok := l.NextToken()
			require.Equal(t, NUMBER, tok.Kind)
			assert.Equal(t, tt.literal, tok.Literal)
			assert.Equal(t, tt.isFloat, tok.IsFloat())
		})
	}
}

func TestNextToken_Strings(t *testing.T) {
	l := New(`"hello world" ." printed text"`)

	lit := l.NextToken()
	require.Equal(t, STRING, lit.Kind)
	assert.Equal(t, "hello world", lit.StringText())
	assert.False(t, lit.IsPrintString())

	printTok := l.NextToken()
	require.Equal(t, STRING, printTok.Kind)
	assert.Equal(t, "printed text", printTok.StringText())
	assert.True(t, printTok.IsPrintString())
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New(`"never closed`)
	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Kind)
	require.Len(t, l.Errors(), 1)
	assert.Contains(t, l.Errors()[0].Message, "unterminated string")
}

func TestNextToken_LineComment(t *testing.T) {
	l := New("1 \\ this is a comment\n2")
	first := l.NextToken()
	second := l.NextToken()
	assert.Equal(t, "1", first.Literal)
	assert.Equal(t, "2", second.Literal)
}

func TestNextToken_BlockComment(t *testing.T) {
	l := New("1 ( a block comment ) 2")
	first := l.NextToken()
	second := l.NextToken()
	assert.Equal(t, "1", first.Literal)
	assert.Equal(t, "2", second.Literal)
}

func TestNextToken_ParenWithoutSpaceIsAWord(t *testing.T) {
	l := New("(not-a-comment)")
	tok := l.NextToken()
	assert.Equal(t, WORD, tok.Kind)
	assert.Equal(t, "(not-a-comment)", tok.Literal)
}

func TestNextToken_InvalidNumericLiteral(t *testing.T) {
	l := New("3.1.4")
	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Kind)
	require.Len(t, l.Errors(), 1)
}

func TestNextToken_ReservedWordsClassifyAsWord(t *testing.T) {
	for _, lexeme := range []string{"VARIABLE", "CONSTANT", "WHILE", "REPEAT"} {
		l := New(lexeme)
		tok := l.NextToken()
		assert.Equalf(t, WORD, tok.Kind, "%s should classify as a generic word", lexeme)
	}
}

func TestNextToken_MathWords(t *testing.T) {
	for _, lexeme := range []string{"+", "-", "*", "/", "MOD", "SQRT", "AND"} {
		l := New(lexeme)
		tok := l.NextToken()
		assert.Equalf(t, MATHWORD, tok.Kind, "%s should classify as a math word", lexeme)
	}
}

func TestNextToken_Positions(t *testing.T) {
	l := New("1\n2")
	first := l.NextToken()
	second := l.NextToken()
	assert.Equal(t, Position{Line: 1, Column: 1}, first.Pos)
	assert.Equal(t, Position{Line: 2, Column: 1}, second.Pos)
}
