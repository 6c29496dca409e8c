package sat

// Propagate runs Boolean constraint propagation to fixpoint: it
// repeatedly pops the next unpropagated trail literal and walks its watch
// list with two-cursor in-place compaction, relocating watches as needed.
// Returns the conflicting clause if propagation derives a contradiction, or
// nil once the trail is fully propagated.
func (s *Solver) Propagate() *Clause {
	for s.propQueue.Size() > 0 {
		l := s.propQueue.Pop()

		s.tmpWatchers = append(s.tmpWatchers[:0], s.watchers[l]...)
		s.watchers[l] = s.watchers[l][:0]

		for i, w := range s.tmpWatchers {
			// The guard shortcut: if the cached literal is already true the
			// clause is satisfied and does not need to be examined at all.
			// This changes the order in which clauses are visited (and
			// hence which clauses get learned) but never propagation
			// correctness.
			if s.LitValue(w.guard) == True {
				s.watchers[l] = append(s.watchers[l], w)
				continue
			}

			if w.clause.propagate(s, l) {
				continue
			}

			// Conflict: keep the remaining, not-yet-examined watchers
			// verbatim so the watch list stays well-formed, halt
			// propagation, and report the conflicting clause.
			s.watchers[l] = append(s.watchers[l], s.tmpWatchers[i+1:]...)
			s.propQueue.Clear()
			s.trailHead = len(s.trail)
			return s.tmpWatchers[i].clause
		}
	}

	s.trailHead = len(s.trail)
	return nil
}
