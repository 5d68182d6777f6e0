package semantic

import (
	"github.com/kdriscoll/forthc/internal/ast"
	"github.com/kdriscoll/forthc/internal/ccerrors"
)

// analyzeIf implements the IfStatement rule: pop the implicit
// condition, analyze THEN and ELSE from the same post-pop state (an
// absent ELSE behaves as empty), and require both branches to leave the
// stack at the same depth. A mismatch is a hard error and the merged
// effect is marked unknown; min/max reach from both branches folds into
// the enclosing state either way. Tracks nesting depth into
// Stats.MaxNestingDepth for the duration of both branches.
func (a *Analyzer) analyzeIf(node *ast.IfStatement, state *abstractState, enclosingName string, programLevel bool) {
	a.popCondition(state, node.Pos(), programLevel)

	a.enterNesting()
	defer a.exitNesting()

	preBranch := *state
	thenState := preBranch
	a.analyzeBody(node.ThenBranch, &thenState, enclosingName, programLevel)

	elseState := preBranch
	if node.ElseBranch != nil {
		a.analyzeBody(node.ElseBranch, &elseState, enclosingName, programLevel)
	}

	state.mergeExtremes(thenState)
	state.mergeExtremes(elseState)

	if thenState.depth != elseState.depth {
		a.errorf(node.Pos(), ccerrors.KindBranchMismatch, "inconsistent stack effects in IF/ELSE")
		state.valid = false
		state.depth = thenState.depth
		return
	}
	state.depth = thenState.depth
}

// analyzeBeginUntil implements the BeginUntilLoop rule: analyze
// the body from the current state, pop the implicit UNTIL condition,
// and compare the resulting depth to the entry depth. An unbalanced
// body is a warning (not an error) and marks the effect unknown; either
// way, the state restores to its entry depth for whatever follows the
// loop, since BEGIN/UNTIL's whole point is looping back to the same
// point on the stack. Tracks nesting depth into Stats.MaxNestingDepth
// for the duration of the body.
func (a *Analyzer) analyzeBeginUntil(node *ast.BeginUntilLoop, state *abstractState, enclosingName string, programLevel bool) {
	entryDepth := state.depth

	a.enterNesting()
	defer a.exitNesting()

	bodyState := *state
	a.analyzeBody(node.Body, &bodyState, enclosingName, programLevel)
	a.popCondition(&bodyState, node.Pos(), programLevel)

	state.mergeExtremes(bodyState)

	if bodyState.depth != entryDepth {
		a.warnf(node.Pos(), ccerrors.KindUnbalancedLoop, "unbalanced loop body in BEGIN/UNTIL")
		state.valid = false
	}
	state.depth = entryDepth
}

// popCondition applies the implicit condition pop shared by IF and
// UNTIL. At program level, a pop that drives depth below zero is a hard
// stack-underflow error; inside a definition body, depth may go transiently
// negative relative to H without any error (that negative excursion is
// exactly how the analyzer discovers how much the word consumes).
func (a *Analyzer) popCondition(state *abstractState, pos ast.Position, programLevel bool) {
	state.pop(1)
	if programLevel && state.depth < 0 {
		a.errorf(pos, ccerrors.KindStackUnderflow, "stack underflow")
		state.valid = false
	}
}
