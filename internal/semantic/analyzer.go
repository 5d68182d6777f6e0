// Package semantic implements abstract stack
// interpretation that infers every user word's stack effect, validates
// IF/ELSE branch agreement and BEGIN/UNTIL loop balance, and checks the
// top-level program for non-underflow.
package semantic

import (
	"github.com/kdriscoll/forthc/internal/ast"
	"github.com/kdriscoll/forthc/internal/ccerrors"
	"github.com/kdriscoll/forthc/internal/dictionary"
	"github.com/kdriscoll/forthc/internal/effect"
)

// Stats summarizes one analysis run, surfaced to the CLI's --stats flag.
// It carries no semantics of its own.
type Stats struct {
	WordCount        int
	FixpointPasses   int
	MaxNestingDepth  int
	UndefinedWords   int
}

// Analyzer performs semantic analysis over a parsed program using a
// three-phase structure: collect, fixpoint, program.
type Analyzer struct {
	dict     *dictionary.Dictionary
	errors   ccerrors.List
	warnings ccerrors.List
	source   string
	file     string
	stats    Stats
	nesting  int
}

// New creates an Analyzer over dict, the dictionary the parser
// populated. The analyzer mutates dict in place: every user word's
// provisional effect is replaced by its inferred one.
func New(dict *dictionary.Dictionary) *Analyzer {
	return &Analyzer{dict: dict}
}

// WithSource attaches source text and a filename for diagnostic
// formatting.
func (a *Analyzer) WithSource(source, file string) *Analyzer {
	a.source = source
	a.file = file
	return a
}

// Dictionary returns the (mutated) dictionary.
func (a *Analyzer) Dictionary() *dictionary.Dictionary { return a.dict }

// Errors returns analysis errors.
func (a *Analyzer) Errors() ccerrors.List { return a.errors }

// Warnings returns analysis warnings.
func (a *Analyzer) Warnings() ccerrors.List { return a.warnings }

// Stats returns the summary collected during the last Analyze call.
func (a *Analyzer) Stats() Stats { return a.stats }

func (a *Analyzer) errorf(pos ast.Position, kind ccerrors.Kind, format string, args ...any) {
	a.errors = append(a.errors, ccerrors.New(kind, pos, format, args...).WithSource(a.source, a.file))
}

func (a *Analyzer) warnf(pos ast.Position, kind ccerrors.Kind, format string, args ...any) {
	a.warnings = append(a.warnings, ccerrors.New(kind, pos, format, args...).WithSource(a.source, a.file))
}

// enterNesting/exitNesting track control-flow nesting (IF and BEGIN/
// UNTIL bodies) as analyzeIf/analyzeBeginUntil recurse, so
// Stats.MaxNestingDepth reports the deepest nesting seen across the
// whole analysis run.
func (a *Analyzer) enterNesting() {
	a.nesting++
	if a.nesting > a.stats.MaxNestingDepth {
		a.stats.MaxNestingDepth = a.nesting
	}
}

func (a *Analyzer) exitNesting() {
	a.nesting--
}

// Analyze runs all three phases over prog and returns the mutated
// dictionary. Errors/Warnings/Stats accumulate on the Analyzer and are
// read back via their accessors.
func (a *Analyzer) Analyze(prog *ast.Program) *dictionary.Dictionary {
	defs := topLevelDefinitions(prog)
	a.collectPhase(defs)
	a.fixpointPhase(defs)
	a.programPhase(prog)
	a.checkUndefinedWords(prog)
	a.stats.WordCount = len(a.dict.Names())
	return a.dict
}

func topLevelDefinitions(prog *ast.Program) []*ast.WordDefinition {
	var defs []*ast.WordDefinition
	for _, stmt := range prog.Statements {
		if def, ok := stmt.(*ast.WordDefinition); ok {
			defs = append(defs, def)
		}
	}
	return defs
}

// collectPhase registers every top-level definition's name with the
// provisional effect (1,1,known=false), so forward and mutual
// references resolve during the fixpoint phase.
func (a *Analyzer) collectPhase(defs []*ast.WordDefinition) {
	provisional := effect.StackEffect{Consumed: 1, Produced: 1, Known: false}
	for _, def := range defs {
		a.dict.SetEffect(def.Name, provisional)
		def.SetEffect(provisional)
	}
}

// fixpointPhase re-analyzes every definition's body until a full pass
// produces no changes, bounded at maxFixpointIterations. Non-convergence
// within the bound is a warning, and the last computed effect is kept.
func (a *Analyzer) fixpointPhase(defs []*ast.WordDefinition) {
	for pass := 1; pass <= maxFixpointIterations; pass++ {
		changed := false
		for _, def := range defs {
			newEff := a.analyzeDefinition(def)
			old := a.dict.EffectOf(def.Name)
			if newEff != old {
				changed = true
			}
			a.dict.SetEffect(def.Name, newEff)
			def.SetEffect(newEff)
		}
		a.stats.FixpointPasses = pass
		if !changed {
			return
		}
		if pass == maxFixpointIterations {
			a.warnf(ast.Position{Line: 1, Column: 1}, ccerrors.KindNonConvergence,
				"stack-effect fixpoint did not converge within %d iterations; using last computed effects", maxFixpointIterations)
		}
	}
}

// analyzeDefinition abstractly interprets def's body starting at the
// synthetic high-water depth H, then derives the definition's net
// consumed/produced pair from how far below H the body ever reached.
func (a *Analyzer) analyzeDefinition(def *ast.WordDefinition) effect.StackEffect {
	a.nesting = 0
	state := newAbstractState(highWaterDepth)
	a.analyzeBody(def.Body, &state, def.Name, false)

	consumed := highWaterDepth - state.minDepth
	if consumed < 0 {
		consumed = 0
	}
	produced := consumed + (state.depth - highWaterDepth)
	return effect.StackEffect{Consumed: consumed, Produced: produced, Known: state.valid}
}

// programPhase traverses top-level statements that are not definitions,
// starting at depth 0, enforcing non-underflow.
func (a *Analyzer) programPhase(prog *ast.Program) {
	a.nesting = 0
	state := newAbstractState(0)
	for _, stmt := range prog.Statements {
		if _, ok := stmt.(*ast.WordDefinition); ok {
			continue
		}
		a.analyzeStatement(stmt, &state, "", true)
	}
}
