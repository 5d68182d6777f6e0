package compiler

import (
	"fmt"
	"sort"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// fixture is one canonical program exercised end to end through Compile.
// Each fixture snapshots a deterministic summary of the result rather
// than the raw Result struct, since dictionaries iterate in unspecified
// order and AST nodes carry unexported fields go-snaps can't render.
type fixture struct {
	name   string
	source string
}

var fixtures = []fixture{
	{name: "square", source: ": SQUARE DUP * ;"},
	{name: "double_quadruple", source: ": DOUBLE DUP + ; : QUADRUPLE DOUBLE DOUBLE ;"},
	{name: "countdown_recursive", source: ": COUNTDOWN DUP 0 > IF 1 - COUNTDOWN THEN ;"},
	{name: "unbalanced_loop_warning", source: "1 BEGIN DUP 1 - DUP 0 = UNTIL"},
	{name: "branch_mismatch_error", source: "1 IF 2 3 ELSE 4 THEN"},
	{name: "undefined_word_error", source: "1 2 NOSUCHWORD"},
}

// TestCompileFixtures runs every fixture program through the full
// lex-parse-analyze pipeline and snapshots a summary: user-word effects,
// error kinds, and warning kinds. A fixture whose summary changes is
// either a regression or an intentional analyzer behavior change — the
// snapshot diff makes that distinction visible at review time.
func TestCompileFixtures(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			result := Compile(fx.source, WithFile(fx.name+".fs"))
			snaps.MatchSnapshot(t, fx.name, summarize(result))
		})
	}
}

func summarize(r *Result) string {
	var userWords []string
	for _, name := range r.Dictionary.Names() {
		if e := r.Dictionary.Lookup(name); e != nil && e.BodyAST != nil {
			userWords = append(userWords, fmt.Sprintf("%s %s", name, e.Effect))
		}
	}
	sort.Strings(userWords)

	out := fmt.Sprintf("emittable=%v words=%v errors=%d warnings=%d\n",
		r.Emittable(), userWords, len(r.Errors), len(r.Warnings))
	for _, e := range r.Errors {
		out += fmt.Sprintf("error: %s\n", e.Kind)
	}
	for _, w := range r.Warnings {
		out += fmt.Sprintf("warning: %s\n", w.Kind)
	}
	return out
}
