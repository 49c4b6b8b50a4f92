// Package breakpoint is the generic breakpoint manager. It owns numbering,
// location resolution, hit detection, listing and persistence, and hands
// every kind-specific decision to the Ops table bound to each breakpoint.
package breakpoint

import (
	"context"

	"github.com/arthur-debert/ddbg/pkg/target"
)

// Type is the generic kind tag shown in listings.
type Type string

const TypeBreakpoint Type = "breakpoint"

// Disposition tells the manager what to do with a breakpoint once it is hit.
type Disposition int

const (
	// DispDelete deletes the breakpoint after its first hit.
	DispDelete Disposition = iota
	// DispDisable disables the breakpoint after its next hit.
	DispDisable
	// DispKeep leaves the breakpoint in place.
	DispKeep
)

func (d Disposition) String() string {
	switch d {
	case DispDelete:
		return "del"
	case DispDisable:
		return "dis"
	default:
		return "keep"
	}
}

// Location is one resolved code address of a breakpoint.
type Location struct {
	Address uint64
	Symbol  string
	// ShlibDisabled marks a location whose module has been unloaded.
	ShlibDisabled bool
}

// Breakpoint is a user or internal breakpoint.
type Breakpoint struct {
	Number      int
	Type        Type
	Disposition Disposition
	Enabled     bool
	// AddrString is the location text the breakpoint was created from.
	AddrString string
	Condition  string
	// Thread restricts the breakpoint to one thread; -1 means any thread.
	Thread    int
	Locations []Location
	Arch      target.Arch
	Ops       Ops
	// Extra carries data owned by the Ops implementation.
	Extra    any
	HitCount int
	Internal bool
}

// Pending reports whether the breakpoint has no resolved location.
func (b *Breakpoint) Pending() bool {
	return len(b.Locations) == 0
}

// Temporary reports whether the breakpoint is deleted after its first hit.
func (b *Breakpoint) Temporary() bool {
	return b.Disposition == DispDelete
}

func (b *Breakpoint) locationAt(pc uint64) *Location {
	for i := range b.Locations {
		loc := &b.Locations[i]
		if loc.Address == pc && !loc.ShlibDisabled {
			return loc
		}
	}
	return nil
}

// Stop describes the inferior stopping at PC.
type Stop struct {
	PC     uint64
	Thread int
	// Vars are the values condition expressions may reference.
	Vars map[string]any
}

// Hit is one breakpoint that explains a stop.
type Hit struct {
	Breakpoint *Breakpoint
	Location   *Location
	Stop       Stop
}

// PrintAction is what the manager should print after an Ops has reported a hit.
type PrintAction int

const (
	PrintUnknown PrintAction = iota
	PrintSrcAndLoc
	PrintSrcOnly
	PrintNothing
)

// PrintOptions are the user print settings that affect listings.
type PrintOptions struct {
	AddressPrint bool
}

// Evaluator evaluates condition expressions.
type Evaluator interface {
	Evaluate(ctx context.Context, expr string, vars map[string]any) (bool, error)
}

// SymbolResolver looks up code symbols. target.Program satisfies it.
type SymbolResolver interface {
	LookupSymbol(name string) (target.Symbol, bool)
}
