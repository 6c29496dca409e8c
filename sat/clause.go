package sat

import "strings"

// Origin tags where a clause came from. FORMULA clauses were supplied by
// the caller through Add; LEARNED clauses were derived by conflict
// analysis.
type Origin uint8

const (
	FormulaOrigin Origin = iota
	LearnedOrigin
)

// Clause is an ordered, owned sequence of at least two literals. The first
// two positions are the watched slots and are mutated in place during
// propagation. Literals exposes the clause's own storage, not a copy, so a
// slice obtained from it reflects those in-place reorderings.
type Clause struct {
	literals []Literal
	origin   Origin
	activity float64

	// prevPos caches the position at which the last watch-replacement
	// search succeeded, so the next search for this clause resumes there
	// instead of rescanning from position 2 every time. Reset to 2
	// whenever it falls outside the (possibly shrunk) literal slice.
	prevPos int
}

// Literals returns the clause's current literal sequence. The slice must
// not be mutated by the caller; it aliases the clause's internal storage.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Origin reports whether c is an original formula clause or one learned by
// conflict analysis.
func (c *Clause) Origin() Origin {
	return c.origin
}

// Len returns the number of literals currently in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// valid reports whether the clause-validity predicate holds: size >=
// 2, every literal valid, no duplicates, not a tautology. Used by tests only;
// never called on the hot path.
func (c *Clause) valid() bool {
	if len(c.literals) < 2 {
		return false
	}
	seen := map[int]Literal{}
	for _, l := range c.literals {
		if !l.IsValid() {
			return false
		}
		if other, ok := seen[l.VarID()]; ok {
			if other != l {
				return false // tautology: both polarities present
			}
			return false // duplicate literal
		}
		seen[l.VarID()] = l
	}
	return true
}

// remove detaches c from both of its watch lists. Called once a clause is
// dropped by Simplify; never called on live constraints/learnts that are
// still reachable from the solver's clause slices.
func (c *Clause) remove(s *Solver) {
	s.unwatch(c, c.literals[0].Opposite())
	s.unwatch(c, c.literals[1].Opposite())
	c.literals = nil
}

// simplify removes literals that are false at the current (root) level and
// reports whether the clause is already satisfied. Only ever invoked at
// decision level 0 (see Solver.Simplify).
func (c *Clause) simplify(s *Solver) bool {
	j := 0
	for _, l := range c.literals {
		switch s.LitValue(l) {
		case True:
			return true
		case False:
			// drop
		default:
			c.literals[j] = l
			j++
		}
	}
	c.literals = c.literals[:j]
	return false
}

// propagate is invoked when literal l (one of the clause's two watched
// negations) has just become true, i.e. the watched literal ~l is now
// false. It restores
// the watch invariant, either by finding a replacement watch, confirming
// the clause is already satisfied, or enqueuing/flagging the remaining
// literal. Returns false on conflict (the clause's first literal is false
// and no replacement was found).
func (c *Clause) propagate(s *Solver, l Literal) bool {
	opp := l.Opposite()
	if c.literals[0] == opp {
		c.literals[0] = c.literals[1]
		c.literals[1] = opp
	}

	if s.LitValue(c.literals[0]) == True {
		s.watch(c, l, c.literals[0])
		return true
	}

	if c.prevPos >= len(c.literals) {
		c.prevPos = 2
	}
	if c.findReplacement(s, c.prevPos, len(c.literals), l) {
		return true
	}
	if c.findReplacement(s, 2, c.prevPos, l) {
		return true
	}

	// No replacement: literals[1:] are all false, so literals[0] must be
	// true for the clause to hold.
	s.watch(c, l, c.literals[0])
	return s.enqueue(c.literals[0], c)
}

// findReplacement scans literals[from:to] for a non-false literal to adopt
// as the new second watch, swapping it into position 1 and the falsified
// literal into its place. Reports whether a replacement was installed.
func (c *Clause) findReplacement(s *Solver, from, to int, l Literal) bool {
	for i := from; i < to; i++ {
		if s.LitValue(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], l.Opposite()
			s.watch(c, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}
	return false
}

// explainConflict returns the negation of every literal in c, used when c
// is itself the conflicting clause (all its literals are false).
func (c *Clause) explainConflict(out []Literal) []Literal {
	out = out[:0]
	for _, l := range c.literals {
		out = append(out, l.Opposite())
	}
	return out
}

// explainAssign returns the negation of every literal but the first, used
// when c is the reason a propagated literal (c.literals[0]) was assigned.
func (c *Clause) explainAssign(out []Literal) []Literal {
	out = out[:0]
	for _, l := range c.literals[1:] {
		out = append(out, l.Opposite())
	}
	return out
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	var sb strings.Builder
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// newClause installs a validated, already-simplified literal sequence as a
// live clause: it allocates the Clause, and (for learned clauses) moves the
// literal with the highest decision level into the second watched slot so
// that backjumping immediately exposes the asserting unit. It then
// registers both initial watches. Callers must have already reduced lits to
// size >= 2.
func newClause(s *Solver, lits []Literal, origin Origin) *Clause {
	c := &Clause{
		literals: append([]Literal(nil), lits...),
		origin:   origin,
		prevPos:  2,
	}

	if origin == LearnedOrigin {
		maxLevel, at := -1, -1
		for i := 1; i < len(c.literals); i++ {
			if lv := s.level[c.literals[i].VarID()]; lv > maxLevel {
				maxLevel, at = lv, i
			}
		}
		if at >= 0 {
			c.literals[at], c.literals[1] = c.literals[1], c.literals[at]
		}
	}

	s.watch(c, c.literals[0].Opposite(), c.literals[1])
	s.watch(c, c.literals[1].Opposite(), c.literals[0])
	return c
}
