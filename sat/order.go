package sat

import (
	"math/rand"

	"github.com/rhartert/yagh"
)

// decisionOrder maintains the pool of candidate branching variables, ordered
// by a VSIDS-style activity score rather than plain insertion order so that
// variables implicated in recent conflicts are tried first.
type decisionOrder struct {
	heap *yagh.IntMap[float64]

	scores     []float64
	scoreInc   float64
	scoreDecay float64

	// phases remembers the last value each variable was assigned, used for
	// phase-saving polarity choice.
	phases      []LBool
	phaseSaving bool

	rng *rand.Rand
}

func newDecisionOrder(decay float64, phaseSaving bool, seed int64) *decisionOrder {
	return &decisionOrder{
		heap:        yagh.New[float64](0),
		scoreInc:    1,
		scoreDecay:  decay,
		phaseSaving: phaseSaving,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// addVar registers a freshly introduced variable as a branching candidate.
func (o *decisionOrder) addVar() {
	v := len(o.phases)
	o.scores = append(o.scores, 0)
	o.phases = append(o.phases, Unknown)
	o.heap.GrowBy(1)
	o.heap.Put(v, 0)
}

// reinsert returns variable v to the candidate pool, recording val as its
// saved phase if phase saving is on. Called by the backjumper for
// every variable un-assigned during cancelUntil.
func (o *decisionOrder) reinsert(v int, val LBool) {
	if o.phaseSaving {
		o.phases[v] = val
	}
	o.heap.Put(v, -o.scores[v])
}

// bump increases v's activity score, periodically rescaling every score to
// avoid floating-point overflow while preserving relative order.
func (o *decisionOrder) bump(v int) {
	o.scores[v] += o.scoreInc
	if o.heap.Contains(v) {
		o.heap.Put(v, -o.scores[v])
	}
	if o.scores[v] > 1e100 {
		o.rescale()
	}
}

// decay widens the gap future bumps have over past ones, giving recent
// conflicts more weight than old ones.
func (o *decisionOrder) decay() {
	o.scoreInc /= o.scoreDecay
	if o.scoreInc > 1e100 {
		o.rescale()
	}
}

func (o *decisionOrder) rescale() {
	o.scoreInc *= 1e-100
	for v, sc := range o.scores {
		o.scores[v] = sc * 1e-100
		if o.heap.Contains(v) {
			o.heap.Put(v, -o.scores[v])
		}
	}
}

// next pops the candidate pool until it finds an unassigned variable and
// returns a literal for it, choosing polarity by phase saving when
// available and a seeded coin flip otherwise. Returns InvalidLiteral once no
// unassigned variable remains, signaling SAT.
func (o *decisionOrder) next(s *Solver) Literal {
	for {
		item, ok := o.heap.Pop()
		if !ok {
			return InvalidLiteral
		}
		v := item.Elem
		if s.VarValue(v) != Unknown {
			continue // stale entry: already assigned, discard
		}

		switch o.phases[v] {
		case True:
			return PositiveLiteral(v)
		case False:
			return NegativeLiteral(v)
		default:
			return NewLiteral(v, o.rng.Intn(2) == 1)
		}
	}
}
