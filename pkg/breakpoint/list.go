package breakpoint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/ddbg/pkg/uiout"
)

// List prints the breakpoint table. When numbers are given only those
// breakpoints are listed.
func (m *Manager) List(opts PrintOptions, numbers ...int) {
	var bps []*Breakpoint
	for _, b := range m.User() {
		if len(numbers) == 0 || containsInt(numbers, b.Number) {
			bps = append(bps, b)
		}
	}

	if len(bps) == 0 {
		if len(numbers) == 0 {
			m.out.Text("No breakpoints or watchpoints.\n")
		} else {
			m.out.Text(fmt.Sprintf("No breakpoint or watchpoint matching '%s'.\n", joinInts(numbers)))
		}
		return
	}

	cols := []uiout.Column{
		{Name: "number", Header: "Num", Width: 3},
		{Name: "type", Header: "Type", Width: 14},
		{Name: "disp", Header: "Disp", Width: 4},
		{Name: "enabled", Header: "Enb", Width: 3},
	}
	if opts.AddressPrint {
		addrWidth := 18
		if m.Arch().PtrBits <= 32 {
			addrWidth = 10
		}
		cols = append(cols, uiout.Column{Name: "addr", Header: "Address", Width: addrWidth})
	}
	cols = append(cols, uiout.Column{Name: "what", Header: "What", Width: 32})

	m.out.BeginTable("BreakpointTable", cols)
	for _, b := range bps {
		m.printRow(b, opts)
	}
	m.out.EndTable()
}

func (m *Manager) printRow(b *Breakpoint, opts PrintOptions) {
	out := m.out

	out.BeginRow("bkpt")
	out.Annotate("field", "0")
	out.FieldInt("number", b.Number)
	out.Annotate("field", "1")
	out.FieldString("type", string(b.Type))
	out.Annotate("field", "2")
	out.FieldString("disp", b.Disposition.String())
	out.Annotate("field", "3")
	if b.Enabled {
		out.FieldString("enabled", "y")
	} else {
		out.FieldString("enabled", "n")
	}

	if loc := b.Ops.PrintOne(out, b, opts); loc != nil {
		m.lastListed = loc
	}

	if b.Condition != "" {
		out.Text("\n\tstop only if ")
		out.FieldString("cond", b.Condition)
	}
	if b.Thread != -1 {
		out.Text("\n\tstop only in thread ")
		out.FieldInt("thread", b.Thread)
	}
	if b.HitCount > 0 || out.IsMILike() {
		out.Text("\n\tbreakpoint already hit ")
		out.FieldInt("times", b.HitCount)
		if b.HitCount == 1 {
			out.Text(" time")
		} else {
			out.Text(" times")
		}
	}
	out.EndRow()
}

func containsInt(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}

func joinInts(list []int) string {
	parts := make([]string, len(list))
	for i, n := range list {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
