// Package dictionary implements the name → entry map that is
// the authoritative source of built-in stack effects and the place
// user-defined words, variables, and constants register as the parser
// encounters them.
package dictionary

import (
	"strings"

	"github.com/kdriscoll/forthc/internal/ast"
	"github.com/kdriscoll/forthc/internal/effect"
)

// Kind classifies a dictionary entry.
type Kind string

const (
	KindBuiltin     Kind = "built-in"
	KindUserDefined Kind = "user-defined"
	KindMathBuiltin Kind = "math-built-in"
	KindControlFlow Kind = "control-flow"
	KindVariable    Kind = "variable"
	KindConstant    Kind = "constant"
	KindImmediate   Kind = "immediate"
)

// Entry is one dictionary record. BodyAST is set only for
// KindUserDefined and holds a non-owning reference into the program
// AST: the dictionary never owns definition bodies.
type Entry struct {
	Name            string
	Kind            Kind
	Immediate       bool
	BodyAST         *ast.WordDefinition
	BuiltinTemplate string
	Effect          effect.StackEffect
	Compiled        bool
	CompiledText    string
}

// normalize applies the single uppercase-ASCII normalization function
// used uniformly at parse time and at lookup time.
func normalize(name string) string {
	return strings.ToUpper(name)
}

// Dictionary is the name → entry map. The zero value is not usable;
// construct with New or NewWithConfig.
type Dictionary struct {
	entries map[string]*Entry
	config  Config
}

// New creates an empty dictionary seeded with the STANDARD vocabulary,
// the configuration a bare compile unit expects by default.
func New() *Dictionary {
	return NewWithConfig(Standard)
}

// NewWithConfig creates a dictionary seeded from the named builtin
// configuration: MINIMAL, STANDARD, MATH_ENHANCED, or the
// hardware-facing EXTENDED tier.
func NewWithConfig(cfg Config) *Dictionary {
	d := &Dictionary{entries: make(map[string]*Entry), config: cfg}
	d.seed()
	return d
}

func (d *Dictionary) seed() {
	for _, w := range resolveVocabulary(d.config) {
		name := normalize(w.Name)
		d.entries[name] = &Entry{
			Name:            name,
			Kind:            w.Kind,
			Effect:          effect.StackEffect{Consumed: w.Consumed, Produced: w.Produced, Known: true},
			BuiltinTemplate: w.Template,
		}
	}
}

// DefineUser registers a user-defined word with a provisional, unknown
// effect so that later calls to the same name in the same compile unit
// resolve immediately.
// Re-defining an existing name overwrites the prior entry, the same way
// FORTH-family dictionaries shadow rather than reject redefinitions.
func (d *Dictionary) DefineUser(name string, body *ast.WordDefinition) *Entry {
	e := &Entry{
		Name:    normalize(name),
		Kind:    KindUserDefined,
		BodyAST: body,
		Effect:  effect.Unknown,
	}
	d.entries[e.Name] = e
	return e
}

// DefineBuiltin registers a built-in with a fully known effect.
func (d *Dictionary) DefineBuiltin(name, template string, eff effect.StackEffect) *Entry {
	e := &Entry{Name: normalize(name), Kind: KindBuiltin, BuiltinTemplate: template, Effect: eff}
	e.Effect.Known = true
	d.entries[e.Name] = e
	return e
}

// DefineVariable registers a variable: using it later pushes its
// address, effect (0, 1).
func (d *Dictionary) DefineVariable(name string) *Entry {
	e := &Entry{Name: normalize(name), Kind: KindVariable, Effect: effect.StackEffect{Consumed: 0, Produced: 1, Known: true}}
	d.entries[e.Name] = e
	return e
}

// DefineConstant registers a constant: using it later pushes its value,
// effect (0, 1). The *declaration* itself consumes one stack item,
// which is modeled on the VariableDeclaration AST node, not here.
func (d *Dictionary) DefineConstant(name string) *Entry {
	e := &Entry{Name: normalize(name), Kind: KindConstant, Effect: effect.StackEffect{Consumed: 0, Produced: 1, Known: true}}
	d.entries[e.Name] = e
	return e
}

// MarkForward creates a placeholder entry for a name that is called
// before its definition is seen. ResolveForward later attaches the
// body once the definition is parsed.
func (d *Dictionary) MarkForward(name string) *Entry {
	norm := normalize(name)
	if e, ok := d.entries[norm]; ok {
		return e
	}
	e := &Entry{Name: norm, Kind: KindUserDefined, Effect: effect.Unknown}
	d.entries[norm] = e
	return e
}

// ResolveForward attaches a body to a previously forward-marked name.
func (d *Dictionary) ResolveForward(name string, body *ast.WordDefinition) {
	norm := normalize(name)
	e, ok := d.entries[norm]
	if !ok {
		d.DefineUser(name, body)
		return
	}
	e.BodyAST = body
}

// Lookup returns the entry for name (case-insensitive), or nil if
// undefined.
func (d *Dictionary) Lookup(name string) *Entry {
	return d.entries[normalize(name)]
}

// EffectOf returns the entry's stack effect, or effect.Unknown if name
// is not defined.
func (d *Dictionary) EffectOf(name string) effect.StackEffect {
	if e := d.Lookup(name); e != nil {
		return e.Effect
	}
	return effect.Unknown
}

// SetEffect updates an existing entry's effect in place; used by the
// analyzer's fixpoint phase each time it recomputes a user word's
// effect.
func (d *Dictionary) SetEffect(name string, eff effect.StackEffect) {
	if e := d.Lookup(name); e != nil {
		e.Effect = eff
	}
}

// Names returns every defined name, for diagnostics and the CLI's
// --stats flag. Order is unspecified.
func (d *Dictionary) Names() []string {
	names := make([]string, 0, len(d.entries))
	for n := range d.entries {
		names = append(names, n)
	}
	return names
}

// Clone returns a deep copy of the dictionary's entries. Bodies are
// shared by reference — the analyzer never mutates bodies, only the
// Entry wrapper around them — so a cloned dictionary must be treated as
// read-only with respect to definition bodies.
func (d *Dictionary) Clone() *Dictionary {
	clone := &Dictionary{entries: make(map[string]*Entry, len(d.entries)), config: d.config}
	for name, e := range d.entries {
		copyEntry := *e // shallow copy; BodyAST pointer is shared intentionally
		clone.entries[name] = &copyEntry
	}
	return clone
}

// Clear resets the dictionary and reseeds it with its original builtin
// configuration.
func (d *Dictionary) Clear() {
	d.entries = make(map[string]*Entry)
	d.seed()
}

// Config returns which builtin vocabulary this dictionary was seeded
// with.
func (d *Dictionary) Config() Config {
	return d.config
}
