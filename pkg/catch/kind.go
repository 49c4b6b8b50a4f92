// Package catch implements C++ exception catchpoints: `catch throw`,
// `catch rethrow` and `catch catch`, and their temporary `tcatch` forms.
//
// A catchpoint is an ordinary breakpoint on the runtime hook the exception
// ABI calls for the event, bound to ExceptionOps so that it reports, lists,
// announces and saves itself as a catchpoint.
package catch

import (
	"strings"

	"github.com/arthur-debert/ddbg/pkg/breakpoint"
)

// Kind is the exception event a catchpoint stops on.
type Kind int

const (
	KindThrow Kind = iota
	KindRethrow
	KindCatch
)

// String returns the command keyword of the kind.
func (k Kind) String() string {
	switch k {
	case KindThrow:
		return "throw"
	case KindRethrow:
		return "rethrow"
	case KindCatch:
		return "catch"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= KindThrow && k <= KindCatch
}

// Classify derives the kind from a catchpoint's location text. "catch"
// wins over "rethrow"; anything else is a throw.
func Classify(addrString string) Kind {
	switch {
	case strings.Contains(addrString, "catch"):
		return KindCatch
	case strings.Contains(addrString, "rethrow"):
		return KindRethrow
	default:
		return KindThrow
	}
}

// kindOf returns the kind recorded on b at creation, or derives it from
// its location text when none was recorded.
func kindOf(b *breakpoint.Breakpoint) Kind {
	if k, ok := b.Extra.(Kind); ok && k.Valid() {
		return k
	}
	return Classify(b.AddrString)
}
