// Package effect implements the stack-effect algebra: the
// small arithmetic used to combine, sequence, and merge the
// (consumed, produced, known) triples that describe how much of the
// data stack a construct touches.
package effect

import "fmt"

// StackEffect is the triple from the glossary: how many items a
// construct pops from and pushes onto the data stack, and whether that
// pair was statically determined.
type StackEffect struct {
	Consumed int
	Produced int
	Known    bool
}

// Unknown is the zero-information effect used whenever analysis cannot
// determine a construct's effect (e.g. an unresolved call).
var Unknown = StackEffect{Consumed: 0, Produced: 0, Known: false}

// Net returns Produced - Consumed, the effect's contribution to overall
// stack depth.
func (e StackEffect) Net() int {
	return e.Produced - e.Consumed
}

func (e StackEffect) String() string {
	if !e.Known {
		return "(?, ?)"
	}
	return fmt.Sprintf("(%d, %d)", e.Consumed, e.Produced)
}

// Combine sequences effect b after effect a:
//
//	if a.Produced >= b.Consumed:
//	    (a.Consumed, a.Produced - b.Consumed + b.Produced, a.Known && b.Known)
//	else:
//	    consumption rolls back into a: a.Consumed + (b.Consumed - a.Produced), known=false
//
// Combine is used both by the analyzer's per-statement folding and by
// callers outside the analyzer (tests, tooling) that want to reason
// about effect composition directly.
func Combine(a, b StackEffect) StackEffect {
	if a.Produced >= b.Consumed {
		return StackEffect{
			Consumed: a.Consumed,
			Produced: a.Produced - b.Consumed + b.Produced,
			Known:    a.Known && b.Known,
		}
	}
	return StackEffect{
		Consumed: a.Consumed + (b.Consumed - a.Produced),
		Produced: b.Produced,
		Known:    false,
	}
}

// Sequence left-folds Combine over a list of effects, representing the
// net effect of executing them one after another starting from an empty
// abstract stack.
func Sequence(effects []StackEffect) StackEffect {
	if len(effects) == 0 {
		return StackEffect{Consumed: 0, Produced: 0, Known: true}
	}
	acc := effects[0]
	for _, e := range effects[1:] {
		acc = Combine(acc, e)
	}
	return acc
}

// Conditional computes the effect of `c IF t ELSE e THEN`: the
// condition's consumption plus the larger of the two branches'
// consumption, producing the common net effect when both branches agree
// and Unknown otherwise.
func Conditional(c, t, e StackEffect) StackEffect {
	consumed := c.Consumed
	if t.Consumed > e.Consumed {
		consumed += t.Consumed
	} else {
		consumed += e.Consumed
	}
	if t.Net() != e.Net() || !t.Known || !e.Known {
		return StackEffect{Consumed: consumed, Produced: 0, Known: false}
	}
	return StackEffect{Consumed: consumed, Produced: consumed + t.Net(), Known: c.Known}
}

// Loop computes the effect of `BEGIN body UNTIL`: unknown unless the
// loop body is balanced (net effect zero), in which case consumption is
// the larger of the body's and the condition's consumption.
func Loop(body, cond StackEffect) StackEffect {
	if !body.Known || body.Net() != 0 {
		consumed := body.Consumed
		if cond.Consumed > consumed {
			consumed = cond.Consumed
		}
		return StackEffect{Consumed: consumed, Produced: 0, Known: false}
	}
	consumed := body.Consumed
	if cond.Consumed > consumed {
		consumed = cond.Consumed
	}
	return StackEffect{Consumed: consumed, Produced: consumed, Known: true}
}
