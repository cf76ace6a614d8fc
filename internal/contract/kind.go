// Package contract classifies the methods synthesized by the weaver:
// the kinds such a method can have, the reserved namespace tokens its
// name is built from, and the direction in which same-kind contracts
// merge across an inheritance chain.
package contract

import "fmt"

// Kind is the role of a synthesized contract method. There are more
// kinds than there are source annotations: the old-value kinds and
// the helper kinds exist only for the weaver's internal bookkeeping.
type Kind int

const (
	// Precondition evaluates the direct (non-inherited)
	// preconditions of the target method.
	Precondition Kind = iota
	// Postcondition evaluates the direct postconditions of the
	// target method.
	Postcondition
	// ExceptionalPostcondition evaluates the direct exceptional
	// postconditions of the target method.
	ExceptionalPostcondition
	// Invariant evaluates the direct invariants of the target class.
	Invariant
	// OldValue computes one old-value expression for the
	// corresponding Postcondition method.
	OldValue
	// ExceptionalOldValue computes one old-value expression for the
	// corresponding ExceptionalPostcondition method.
	ExceptionalOldValue
	// AccessHelper is a compiler-synthesized access method
	// referenced from contract methods.
	AccessHelper
	// LambdaHelper is a compiler-synthesized lambda body referenced
	// from contract methods.
	LambdaHelper
	// Helper evaluates a contract indirectly on behalf of another
	// contract method.
	Helper

	// kindCount bounds the enumeration; every table in this package
	// must cover exactly the kinds below it.
	kindCount
)

func (k Kind) String() string {
	switch k {
	case Precondition:
		return "precondition"
	case Postcondition:
		return "postcondition"
	case ExceptionalPostcondition:
		return "exceptional postcondition"
	case Invariant:
		return "invariant"
	case OldValue:
		return "old value"
	case ExceptionalOldValue:
		return "exceptional old value"
	case AccessHelper:
		return "access helper"
	case LambdaHelper:
		return "lambda helper"
	case Helper:
		return "helper"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsClassContract reports whether k denotes a contract method that
// applies to a class.
func (k Kind) IsClassContract() bool {
	return k == Invariant
}

// IsMethodContract reports whether k denotes a contract method that
// applies to a method.
func (k Kind) IsMethodContract() bool {
	switch k {
	case Precondition, Postcondition, ExceptionalPostcondition,
		OldValue, ExceptionalOldValue:
		return true
	default:
		return false
	}
}

// IsHelperContract reports whether k denotes a helper method called
// by other contract methods. A kind is a helper exactly when it is
// neither a class nor a method contract.
func (k Kind) IsHelperContract() bool {
	return !k.IsClassContract() && !k.IsMethodContract()
}

// IsPostcondition reports whether k denotes a postcondition, normal
// or exceptional.
func (k Kind) IsPostcondition() bool {
	return k == Postcondition || k == ExceptionalPostcondition
}

// IsOld reports whether k denotes a method computing old values for
// a postcondition.
func (k Kind) IsOld() bool {
	return k == OldValue || k == ExceptionalOldValue
}

// OldKind returns the kind of the old-value methods that feed
// contract methods of kind k. It panics unless k.IsPostcondition():
// a caller asking for old values of anything else has built an
// inconsistent kind assignment.
func (k Kind) OldKind() Kind {
	switch k {
	case Postcondition:
		return OldValue
	case ExceptionalPostcondition:
		return ExceptionalOldValue
	default:
		panic(fmt.Sprintf("contract: no old-value kind for %s", k))
	}
}
