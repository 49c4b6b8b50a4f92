package catch

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/ddbg/pkg/breakpoint"
	"github.com/arthur-debert/ddbg/pkg/command"
	"github.com/arthur-debert/ddbg/pkg/uiout"
)

// ExceptionOps is the operations table shared by every exception
// catchpoint. Location resolution and condition checks are those of code
// breakpoints; reporting, listing, announcing and saving are its own.
type ExceptionOps struct {
	breakpoint.CodeOps
}

var _ breakpoint.Ops = (*ExceptionOps)(nil)

func (ExceptionOps) PrintIt(out uiout.Out, hit *breakpoint.Hit) breakpoint.PrintAction {
	b := hit.Breakpoint
	kind := kindOf(b)

	out.Annotate("catchpoint", strconv.Itoa(b.Number))
	if b.Temporary() {
		out.Text("Temporary catchpoint ")
	} else {
		out.Text("Catchpoint ")
	}
	if !out.IsMILike() {
		out.FieldInt("bkptno", b.Number)
	}
	switch kind {
	case KindCatch:
		out.Text(" (exception caught), ")
	case KindRethrow:
		out.Text(" (exception rethrown), ")
	default:
		out.Text(" (exception thrown), ")
	}
	if out.IsMILike() {
		out.FieldString("reason", breakpoint.ReasonBreakpointHit)
		out.FieldString("disp", b.Disposition.String())
		out.FieldInt("bkptno", b.Number)
	}

	return breakpoint.PrintSrcAndLoc
}

func (ExceptionOps) PrintOne(out uiout.Out, b *breakpoint.Breakpoint, opts breakpoint.PrintOptions) *breakpoint.Location {
	kind := kindOf(b)

	if opts.AddressPrint {
		out.Annotate("field", "4")
		if b.Pending() || b.Locations[0].ShlibDisabled {
			out.FieldString("addr", breakpoint.PendingAddr)
		} else {
			out.FieldCoreAddr("addr", b.Locations[0].Address, b.Arch.PtrBits)
		}
	}
	out.Annotate("field", "5")

	out.FieldString("what", "exception "+kind.String())
	if out.IsMILike() {
		out.FieldString("catch-type", kind.String())
	}

	if b.Pending() {
		return nil
	}
	return &b.Locations[0]
}

func (ExceptionOps) PrintMention(out uiout.Out, b *breakpoint.Breakpoint) {
	if b.Temporary() {
		out.Text("Temporary catchpoint ")
	} else {
		out.Text("Catchpoint ")
	}
	out.FieldInt("bkptno", b.Number)
	out.Text(fmt.Sprintf(" (%s)", kindOf(b)))
}

func (ExceptionOps) PrintRecreate(w io.Writer, b *breakpoint.Breakpoint) error {
	disp := command.CatchPermanent
	if b.Temporary() {
		disp = command.CatchTemporary
	}
	if _, err := fmt.Fprintf(w, "%s %s", disp.Command(), kindOf(b)); err != nil {
		return err
	}
	return breakpoint.RecreateThread(w, b)
}
