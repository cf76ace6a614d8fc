package contract

import "unicode"

// Separator joins namespace tokens and target-specific fragments
// inside synthesized method names.
const Separator = "$"

// MangledName returns the name of the synthesized method of kind k
// for the target named base, e.g. "com$google$java$contract$P$push"
// for the precondition method of push. It panics unless
// k.HasNameSpace().
func (k Kind) MangledName(base string) string {
	return k.NameSpace() + Separator + base
}

// MangledHelperName returns the name of the helper method evaluating
// contracts of kind k for the target named base. It panics when k is
// itself a helper kind.
func (k Kind) MangledHelperName(base string) string {
	return k.HelperNameSpace() + Separator + base
}

// IsSimpleName reports whether s is a valid unqualified JVM
// identifier. Every namespace token, and every name mangled from
// one, must satisfy this or the woven class file is malformed.
func IsSimpleName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentifierStart(r) {
				return false
			}
		} else if !isIdentifierPart(r) {
			return false
		}
	}
	return true
}

func isIdentifierStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r)
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r)
}
