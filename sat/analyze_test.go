package sat

import "testing"

// TestProperty_learnedClauseAssertion checks that right after analyze
// returns (learned, bl) with bl >= 0, exactly one literal of learned sits at
// the current decision level (position 0), and after cancelUntil(bl) every
// other literal of learned is false.
func TestProperty_learnedClauseAssertion(t *testing.T) {
	a := PositiveLiteral(0)

	s := NewDefaultSolver()
	s.Add(PositiveLiteral(0), PositiveLiteral(1))
	s.Add(PositiveLiteral(0), NegativeLiteral(1))
	s.Add(NegativeLiteral(0), PositiveLiteral(2))
	s.Add(NegativeLiteral(0), NegativeLiteral(2))

	if conflict := s.Propagate(); conflict != nil {
		t.Fatalf("unexpected conflict at decision level 0")
	}

	s.assume(a)
	conflict := s.Propagate()
	if conflict == nil {
		t.Fatalf("expected a conflict once %v is assumed", a)
	}

	learned, bl := s.analyze(conflict)
	if bl < 0 {
		t.Fatalf("analyze() returned bl = %d, want >= 0", bl)
	}

	atCurrentLevel := 0
	currentLevel := s.decisionLevel()
	for i, l := range learned {
		if s.level[l.VarID()] == currentLevel {
			atCurrentLevel++
			if i != 0 {
				t.Errorf("literal %v at the current decision level is at position %d, want 0", l, i)
			}
		}
	}
	if atCurrentLevel != 1 {
		t.Fatalf("learned clause %v has %d literals at the current decision level, want exactly 1", learned, atCurrentLevel)
	}

	s.cancelUntil(bl)
	for _, l := range learned[1:] {
		if s.LitValue(l) != False {
			t.Errorf("after cancelUntil(%d), literal %v of the learned clause is %v, want False", bl, l, s.LitValue(l))
		}
	}
}
