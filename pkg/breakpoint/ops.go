package breakpoint

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/ddbg/pkg/uiout"
)

// Ops is the capability table the manager calls for every breakpoint.
// Families of breakpoints customise behaviour by providing their own Ops,
// usually by embedding CodeOps and overriding what differs.
type Ops interface {
	// ResolveLocations maps the breakpoint's AddrString to code locations.
	// A nil resolver or an unknown symbol yields no locations.
	ResolveLocations(b *Breakpoint, syms SymbolResolver) []Location
	// CheckStatus decides whether a hit actually stops the inferior.
	CheckStatus(ctx context.Context, hit *Hit, eval Evaluator) (bool, error)
	// PrintIt reports a hit and tells the manager what else to print.
	PrintIt(out uiout.Out, hit *Hit) PrintAction
	// PrintOne fills the address and what columns of a listing row and
	// returns the location the listing should remember, if any.
	PrintOne(out uiout.Out, b *Breakpoint, opts PrintOptions) *Location
	// PrintMention confirms creation in one line.
	PrintMention(out uiout.Out, b *Breakpoint)
	// PrintRecreate writes commands that recreate b.
	PrintRecreate(w io.Writer, b *Breakpoint) error
}

// PendingAddr is shown in place of an address for unresolved breakpoints.
const PendingAddr = "<PENDING>"

// CodeOps implements Ops for plain code breakpoints on a symbol.
type CodeOps struct{}

var _ Ops = CodeOps{}

func (CodeOps) ResolveLocations(b *Breakpoint, syms SymbolResolver) []Location {
	if syms == nil {
		return nil
	}
	sym, ok := syms.LookupSymbol(b.AddrString)
	if !ok {
		return nil
	}
	return []Location{{Address: sym.Addr, Symbol: sym.Name}}
}

func (CodeOps) CheckStatus(ctx context.Context, hit *Hit, eval Evaluator) (bool, error) {
	b := hit.Breakpoint
	if b.Condition == "" || eval == nil {
		return true, nil
	}
	return eval.Evaluate(ctx, b.Condition, hit.Stop.Vars)
}

func (CodeOps) PrintIt(out uiout.Out, hit *Hit) PrintAction {
	b := hit.Breakpoint

	out.Annotate("breakpoint", fmt.Sprint(b.Number))
	if b.Temporary() {
		out.Text("Temporary breakpoint ")
	} else {
		out.Text("Breakpoint ")
	}
	if out.IsMILike() {
		out.FieldString("reason", ReasonBreakpointHit)
		out.FieldString("disp", b.Disposition.String())
	}
	out.FieldInt("bkptno", b.Number)
	out.Text(", ")

	return PrintSrcAndLoc
}

func (CodeOps) PrintOne(out uiout.Out, b *Breakpoint, opts PrintOptions) *Location {
	if opts.AddressPrint {
		out.Annotate("field", "4")
		if b.Pending() || b.Locations[0].ShlibDisabled {
			out.FieldString("addr", PendingAddr)
		} else {
			out.FieldCoreAddr("addr", b.Locations[0].Address, b.Arch.PtrBits)
		}
	}
	out.Annotate("field", "5")
	if b.Pending() {
		out.FieldString("pending", b.AddrString)
		return nil
	}
	if out.IsMILike() {
		out.FieldString("func", b.Locations[0].Symbol)
	} else {
		out.FieldString("what", "in "+b.Locations[0].Symbol)
	}
	return &b.Locations[0]
}

func (CodeOps) PrintMention(out uiout.Out, b *Breakpoint) {
	if b.Temporary() {
		out.Text("Temporary breakpoint ")
	} else {
		out.Text("Breakpoint ")
	}
	out.FieldInt("bkptno", b.Number)
	if b.Pending() {
		out.Text(" (")
		out.FieldString("pending", b.AddrString)
		out.Text(") pending.")
		return
	}
	out.Text(" at ")
	out.FieldCoreAddr("addr", b.Locations[0].Address, b.Arch.PtrBits)
}

func (CodeOps) PrintRecreate(w io.Writer, b *Breakpoint) error {
	verb := "break"
	if b.Temporary() {
		verb = "tbreak"
	}
	if _, err := fmt.Fprintf(w, "%s %s", verb, b.AddrString); err != nil {
		return err
	}
	return RecreateThread(w, b)
}

// ReasonBreakpointHit is the machine-readable stop reason for breakpoint hits.
const ReasonBreakpointHit = "breakpoint-hit"

// RecreateThread finishes a recreate command with the thread restriction
// of b, if any, and a newline.
func RecreateThread(w io.Writer, b *Breakpoint) error {
	if b.Thread != -1 {
		if _, err := fmt.Fprintf(w, " thread %d", b.Thread); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
