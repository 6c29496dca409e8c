package sat

// watcher attaches a clause to one literal's watch list. guard is another
// literal of the same clause kept as a cheap satisfaction hint: if guard is
// already true there is no need to even look at the clause.
type watcher struct {
	clause *Clause
	guard  Literal
}

// watch registers c to be re-examined when the given watched literal
// becomes true (i.e. its negation becomes false). guard is the sibling
// literal cached alongside it.
func (s *Solver) watch(c *Clause, watched Literal, guard Literal) {
	s.watchers[watched] = append(s.watchers[watched], watcher{clause: c, guard: guard})
}

// unwatch removes every watcher referencing c from the given literal's
// list, compacting in place.
func (s *Solver) unwatch(c *Clause, watched Literal) {
	list := s.watchers[watched]
	j := 0
	for i := 0; i < len(list); i++ {
		if list[i].clause != c {
			list[j] = list[i]
			j++
		}
	}
	s.watchers[watched] = list[:j]
}
