package sat

// explain returns the literals that imply l was assigned, suitable for
// resolution: for a conflicting clause (l == InvalidLiteral) this is the
// negation of every literal in c; for an implied literal, the negation of
// every literal but the clause's first (the implied one itself).
func (s *Solver) explain(c *Clause, l Literal) []Literal {
	if l == InvalidLiteral {
		s.tmpReason = c.explainConflict(s.tmpReason)
	} else {
		s.tmpReason = c.explainAssign(s.tmpReason)
	}
	if c.origin == LearnedOrigin {
		s.bumpClauseActivity(c)
	}
	return s.tmpReason
}

// analyze performs First-UIP resolution starting from conflicting clause
// confl. It returns the learned clause (with the asserting First-UIP
// literal in position 0) and the backjump level, or (nil, -1) if the
// conflict cannot be resolved below decision level 0 (UNSAT).
func (s *Solver) analyze(confl *Clause) ([]Literal, int) {
	if s.level[confl.Literals()[0].VarID()] <= 0 {
		return nil, -1
	}

	// nPaths counts literals at the current decision level that still need
	// to be resolved away before a single implication point remains.
	nPaths := 0

	s.tmpLearnts = append(s.tmpLearnts[:0], InvalidLiteral) // reserve slot 0 for the FUIP
	s.seen.Clear()

	index := len(s.trail) - 1
	pivot := InvalidLiteral

	for {
		for _, q := range s.explain(confl, pivot) {
			v := q.VarID()
			if s.seen.Contains(v) {
				continue
			}
			s.seen.Add(v)
			s.order.bump(v)
			if s.level[v] == s.decisionLevel() {
				nPaths++
				continue
			}
			s.tmpLearnts = append(s.tmpLearnts, q.Opposite())
		}

		// Walk the trail backwards to the next literal whose variable was
		// marked seen; that literal's reason is resolved against next.
		for {
			pivot = s.trail[index]
			index--
			if s.seen.Contains(pivot.VarID()) {
				break
			}
		}
		confl = s.reason[pivot.VarID()]

		nPaths--
		if nPaths <= 0 {
			break
		}
	}

	s.tmpLearnts[0] = pivot.Opposite()

	backjumpLevel := 0
	for _, q := range s.tmpLearnts[1:] {
		if lv := s.level[q.VarID()]; lv > backjumpLevel {
			backjumpLevel = lv
		}
	}

	return s.tmpLearnts, backjumpLevel
}
