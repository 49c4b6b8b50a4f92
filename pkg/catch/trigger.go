package catch

import "github.com/arthur-debert/ddbg/pkg/target"

// Runtime hooks of the GNU v3 (Itanium) C++ ABI.
const (
	SymbolThrow      = "__cxa_throw"
	SymbolRethrow    = "__cxa_rethrow"
	SymbolBeginCatch = "__cxa_begin_catch"
)

// TriggerSymbol returns the runtime function called for kind events under
// abi. It returns false when abi has no hook for the kind.
func TriggerSymbol(kind Kind, abi target.ExceptionABI) (string, bool) {
	if abi != target.ABIGNUv3 {
		return "", false
	}
	switch kind {
	case KindCatch:
		return SymbolBeginCatch, true
	case KindRethrow:
		return SymbolRethrow, true
	case KindThrow:
		return SymbolThrow, true
	default:
		return "", false
	}
}
