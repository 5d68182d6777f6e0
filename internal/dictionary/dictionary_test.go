package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdriscoll/forthc/internal/ast"
	"github.com/kdriscoll/forthc/internal/effect"
)

func TestNew_SeedsStandardVocabulary(t *testing.T) {
	d := New()
	assert.Equal(t, Standard, d.Config())

	dup := d.Lookup("DUP")
	require.NotNil(t, dup)
	assert.Equal(t, effect.StackEffect{Consumed: 1, Produced: 2, Known: true}, dup.Effect)

	// standard includes minimal's words too
	assert.NotNil(t, d.Lookup("+"))
	assert.NotNil(t, d.Lookup("."))

	// math_enhanced-only words are absent from standard
	assert.Nil(t, d.Lookup("SIN"))
}

func TestNewWithConfig_Minimal(t *testing.T) {
	d := NewWithConfig(Minimal)
	assert.NotNil(t, d.Lookup("DUP"))
	assert.Nil(t, d.Lookup("."), "standard-only word must not appear in minimal")
}

func TestNewWithConfig_Extended_IncludesWholeChain(t *testing.T) {
	d := NewWithConfig(Extended)
	assert.NotNil(t, d.Lookup("DUP"))   // minimal
	assert.NotNil(t, d.Lookup("."))     // standard
	assert.NotNil(t, d.Lookup("SIN"))   // math_enhanced
	assert.NotNil(t, d.Lookup("DELAY_MS")) // extended
}

func TestLookup_CaseInsensitive(t *testing.T) {
	d := New()
	assert.Same(t, d.Lookup("dup"), d.Lookup("DUP"))
	assert.Same(t, d.Lookup("Dup"), d.Lookup("DUP"))
}

func TestDefineUser_ResolvesBeforeBodyIsSet(t *testing.T) {
	d := New()
	def := d.DefineUser("square", nil)
	assert.Equal(t, "SQUARE", def.Name)
	assert.Equal(t, KindUserDefined, def.Kind)
	assert.Equal(t, effect.Unknown, def.Effect)
	assert.NotNil(t, d.Lookup("SQUARE"))
}

func TestDefineVariable_PushesOneAddress(t *testing.T) {
	d := New()
	e := d.DefineVariable("counter")
	assert.Equal(t, KindVariable, e.Kind)
	assert.Equal(t, effect.StackEffect{Consumed: 0, Produced: 1, Known: true}, e.Effect)
}

func TestDefineConstant_UseEffectPushesOne(t *testing.T) {
	d := New()
	e := d.DefineConstant("limit")
	assert.Equal(t, KindConstant, e.Kind)
	assert.Equal(t, effect.StackEffect{Consumed: 0, Produced: 1, Known: true}, e.Effect)
}

func TestMarkForwardThenResolveForward(t *testing.T) {
	d := New()
	placeholder := d.MarkForward("later")
	assert.Equal(t, effect.Unknown, placeholder.Effect)

	body := &ast.WordDefinition{}
	d.ResolveForward("LATER", body)
	assert.Same(t, body, d.Lookup("later").BodyAST)
}

func TestSetEffect_UpdatesExistingEntry(t *testing.T) {
	d := New()
	d.DefineUser("square", nil)
	d.SetEffect("SQUARE", effect.StackEffect{Consumed: 1, Produced: 1, Known: true})
	assert.Equal(t, effect.StackEffect{Consumed: 1, Produced: 1, Known: true}, d.EffectOf("square"))
}

func TestEffectOf_UndefinedNameIsUnknown(t *testing.T) {
	d := New()
	assert.Equal(t, effect.Unknown, d.EffectOf("NOPE"))
}

func TestClone_SharesBodyButNotEntries(t *testing.T) {
	d := New()
	body := &ast.WordDefinition{}
	d.DefineUser("square", body)

	clone := d.Clone()
	cloneEntry := clone.Lookup("SQUARE")
	require.NotNil(t, cloneEntry)
	assert.Same(t, body, cloneEntry.BodyAST, "clone must share the body pointer, not deep-copy it")

	clone.SetEffect("SQUARE", effect.StackEffect{Consumed: 1, Produced: 1, Known: true})
	assert.NotEqual(t, clone.EffectOf("SQUARE"), d.EffectOf("SQUARE"),
		"mutating the clone's entry must not affect the original dictionary")
}

func TestClear_ReseedsOriginalConfig(t *testing.T) {
	d := NewWithConfig(Minimal)
	d.DefineUser("square", nil)
	require.NotNil(t, d.Lookup("SQUARE"))

	d.Clear()
	assert.Nil(t, d.Lookup("SQUARE"))
	assert.NotNil(t, d.Lookup("DUP"))
	assert.Equal(t, Minimal, d.Config())
}
