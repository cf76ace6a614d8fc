package contract

// Variance is the direction in which same-kind contract fragments
// collected from a class and its supertypes combine.
type Variance int

const (
	// Contravariant fragments fold with a logical OR: an overriding
	// method may weaken its effective precondition but never
	// strengthen it, or the override would reject calls its
	// ancestors accept.
	Contravariant Variance = iota
	// Covariant fragments fold with a logical AND: an overriding
	// method may strengthen its effective postconditions and
	// invariants but never weaken them, or the override would break
	// guarantees callers of the ancestor rely on.
	Covariant
)

func (v Variance) String() string {
	if v == Contravariant {
		return "contravariant"
	}
	return "covariant"
}

// Operator returns the logical operator that folds fragments merged
// with variance v.
func (v Variance) Operator() string {
	if v == Contravariant {
		return "||"
	}
	return "&&"
}

var variances = map[Kind]Variance{
	Precondition:             Contravariant,
	Postcondition:            Covariant,
	ExceptionalPostcondition: Covariant,
	Invariant:                Covariant,
}

// Variance returns the merge direction for contracts of kind k. The
// second result is false for kinds that never merge across the
// hierarchy: old-value and helper methods always belong to exactly
// one class.
func (k Kind) Variance() (Variance, bool) {
	v, ok := variances[k]
	return v, ok
}
