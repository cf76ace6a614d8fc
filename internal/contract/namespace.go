package contract

import "fmt"

// The namespace tables are a compatibility surface: the tokens below
// are embedded in the names of woven methods, so changing any entry
// invalidates previously instrumented class files. Keep them in sync
// with the helper table, which appends an H to the final segment.
var nameSpaces = map[Kind]string{
	Precondition:             "com$google$java$contract$P",
	Postcondition:            "com$google$java$contract$Q",
	ExceptionalPostcondition: "com$google$java$contract$E",
	Invariant:                "com$google$java$contract$I",
	OldValue:                 "com$google$java$contract$QO",
	ExceptionalOldValue:      "com$google$java$contract$EO",
	AccessHelper:             "access",
	LambdaHelper:             "lambda",
}

var helperNameSpaces = map[Kind]string{
	Precondition:             "com$google$java$contract$PH",
	Postcondition:            "com$google$java$contract$QH",
	ExceptionalPostcondition: "com$google$java$contract$EH",
	Invariant:                "com$google$java$contract$IH",
	OldValue:                 "com$google$java$contract$QOH",
	ExceptionalOldValue:      "com$google$java$contract$EOH",
}

// HasNameSpace reports whether methods of kind k carry a reserved
// namespace token in their names. Only Helper methods do not: they
// are named under the helper namespace of the kind they evaluate.
func (k Kind) HasNameSpace() bool {
	_, ok := nameSpaces[k]
	return ok
}

// NameSpace returns the reserved token embedded in the names of
// synthesized methods of kind k. It panics unless k.HasNameSpace().
func (k Kind) NameSpace() string {
	ns, ok := nameSpaces[k]
	if !ok {
		panic(fmt.Sprintf("contract: no name space for %s", k))
	}
	return ns
}

// HelperNameSpace returns the reserved token embedded in the names
// of helper methods evaluating contracts of kind k. It panics when k
// is itself a helper kind: helpers never get helpers of their own.
func (k Kind) HelperNameSpace() string {
	ns, ok := helperNameSpaces[k]
	if !ok {
		panic(fmt.Sprintf("contract: no helper name space for %s", k))
	}
	return ns
}
