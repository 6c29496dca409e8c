package sat

import "fmt"

// Literal represents a propositional literal: either a boolean variable or
// its negation. The underlying value is a dense index (2*var for the
// positive literal, 2*var+1 for the negative one) so that literals can key
// flat slices directly (watch lists, assignments, reasons).
type Literal int

// InvalidLiteral is the sentinel returned when no literal is available, for
// example when the decision heuristic finds every variable assigned.
const InvalidLiteral Literal = -1

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v int) Literal {
	return Literal(v * 2)
}

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v int) Literal {
	return Literal(v*2 + 1)
}

// NewLiteral returns the literal of variable v with the given sign. sign
// false yields the positive literal, matching the "false = positive"
// convention used throughout this package.
func NewLiteral(v int, sign bool) Literal {
	if sign {
		return NegativeLiteral(v)
	}
	return PositiveLiteral(v)
}

// IsValid reports whether l refers to an actual variable.
func (l Literal) IsValid() bool {
	return l >= 0
}

// VarID returns the id of the literal's variable. Only meaningful when
// l.IsValid().
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive returns true if and only if l represents the value of its
// variable (as opposed to its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the negation of l. Opposite is involutive and undefined
// (returns garbage) on InvalidLiteral, matching the reference's treatment of
// negation as a pure bit-flip.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

// value returns the LBool that l evaluates to when its variable is bound to
// the given LBool.
func (l Literal) value(varValue LBool) LBool {
	if l.IsPositive() {
		return varValue
	}
	return varValue.Opposite()
}

func (l Literal) String() string {
	if !l.IsValid() {
		return "<invalid>"
	}
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("-%d", l.VarID())
}
