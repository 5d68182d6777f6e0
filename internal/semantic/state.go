package semantic

// highWaterDepth is the synthetic starting depth used
// when analyzing a definition body, chosen to exceed the deepest
// Consumed value any single built-in declares (the deepest is 4, for
// 2SWAP); 10 leaves comfortable headroom.
const highWaterDepth = 10

// maxFixpointIterations bounds the analyzer's re-analysis loop.
const maxFixpointIterations = 5

// abstractState is the analyzer's numeric depth model with min/max
// tracking described in the glossary: not a real stack of values, just
// bookkeeping for how far a construct's net effect reaches in either
// direction.
type abstractState struct {
	depth    int
	minDepth int
	maxDepth int
	valid    bool
}

func newAbstractState(start int) abstractState {
	return abstractState{depth: start, minDepth: start, maxDepth: start, valid: true}
}

func (s *abstractState) push(n int) {
	s.depth += n
	if s.depth > s.maxDepth {
		s.maxDepth = s.depth
	}
}

func (s *abstractState) pop(n int) {
	s.depth -= n
	if s.depth < s.minDepth {
		s.minDepth = s.depth
	}
}

// mergeExtremes folds another state's min/max reach into this one,
// without touching depth — used after analyzing a branch or loop body
// so the enclosing definition's consumed/produced derivation sees the
// full reach of everything it contains.
func (s *abstractState) mergeExtremes(other abstractState) {
	if other.minDepth < s.minDepth {
		s.minDepth = other.minDepth
	}
	if other.maxDepth > s.maxDepth {
		s.maxDepth = other.maxDepth
	}
	if !other.valid {
		s.valid = false
	}
}
