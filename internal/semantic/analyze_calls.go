package semantic

import (
	"github.com/kdriscoll/forthc/internal/ast"
	"github.com/kdriscoll/forthc/internal/ccerrors"
	"github.com/kdriscoll/forthc/internal/effect"
)

// assumedRecursiveEffect is the fixed assumption made for a
// word calling itself before its own effect has stabilized: (1, 1,
// known). Using a fixed assumption (rather than whatever the
// dictionary currently holds) is what lets direct recursion converge in
// a single fixpoint pass instead of chasing its own tail.
var assumedRecursiveEffect = effect.StackEffect{Consumed: 1, Produced: 1, Known: true}

// analyzeCall resolves a WordCall's effect and applies it to state:
//
//   - self-recursive occurrence (name matches the enclosing
//     definition): assumedRecursiveEffect;
//   - otherwise, whatever the dictionary currently holds for name
//     (which may itself still be Known==false mid-fixpoint);
//   - unresolved (no dictionary entry at all): effect.Unknown. The
//     undefined name itself is reported once, later, by
//     checkUndefinedWords — not here, to avoid one error per call site.
//
// An effect with Known==false is never applied to the
// abstract stack: state.valid is simply marked false and push/pop are
// skipped, so an unresolved or not-yet-stable callee never corrupts the
// caller's depth bookkeeping.
func (a *Analyzer) analyzeCall(call *ast.WordCall, state *abstractState, enclosingName string, programLevel bool) {
	var eff effect.StackEffect
	switch {
	case enclosingName != "" && call.Name == enclosingName:
		eff = assumedRecursiveEffect
	default:
		if entry := a.dict.Lookup(call.Name); entry != nil {
			eff = entry.Effect
		} else {
			eff = effect.Unknown
		}
	}

	call.SetEffect(eff)
	a.applyEffect(state, eff, call.Pos(), programLevel)
}

// applyEffect is the shared "apply this effect to the abstract stack"
// step used by calls and math operations. At program level, a pop that
// drives depth below zero is a hard stack-underflow error; inside a
// definition body it is not.
func (a *Analyzer) applyEffect(state *abstractState, eff effect.StackEffect, pos ast.Position, programLevel bool) {
	if !eff.Known {
		state.valid = false
		return
	}
	state.pop(eff.Consumed)
	if programLevel && state.depth < 0 {
		a.errorf(pos, ccerrors.KindStackUnderflow, "stack underflow")
		state.valid = false
	}
	state.push(eff.Produced)
}

// checkUndefinedWords walks the whole program once, after the fixpoint
// phase, reporting each name that never resolved in the dictionary once,
// at its first call site. The parser records calls without resolving
// them, so the deferred check is necessarily performed here, once the
// dictionary is final.
func (a *Analyzer) checkUndefinedWords(prog *ast.Program) {
	a.checkUndefinedIn(prog.Statements, "", map[string]bool{})
}

func (a *Analyzer) checkUndefinedIn(stmts []ast.Statement, enclosingName string, reported map[string]bool) {
	for _, stmt := range stmts {
		a.checkUndefinedStmt(stmt, enclosingName, reported)
	}
}

func (a *Analyzer) checkUndefinedStmt(stmt ast.Statement, enclosingName string, reported map[string]bool) {
	switch n := stmt.(type) {
	case *ast.WordCall:
		if enclosingName != "" && n.Name == enclosingName {
			return
		}
		if a.dict.Lookup(n.Name) == nil && !reported[n.Name] {
			reported[n.Name] = true
			a.stats.UndefinedWords++
			a.errorf(n.Pos(), ccerrors.KindUndefinedWord, "undefined word %q", n.Name)
		}
	case *ast.WordDefinition:
		a.checkUndefinedIn(n.Body, n.Name, reported)
	case *ast.IfStatement:
		a.checkUndefinedIn(n.ThenBranch, enclosingName, reported)
		a.checkUndefinedIn(n.ElseBranch, enclosingName, reported)
	case *ast.BeginUntilLoop:
		a.checkUndefinedIn(n.Body, enclosingName, reported)
	}
}
