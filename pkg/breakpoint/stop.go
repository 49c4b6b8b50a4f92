package breakpoint

import (
	"context"
	"fmt"

	"github.com/arthur-debert/ddbg/pkg/errors"
)

// StopResult reports which breakpoints explained a stop.
type StopResult struct {
	Hits   []*Hit
	Action PrintAction
}

// Stopped reports whether any breakpoint stops the inferior.
func (r *StopResult) Stopped() bool {
	return len(r.Hits) > 0
}

// ReportStop processes the inferior stopping at stop.PC. Every enabled,
// resolved breakpoint at that address whose thread and condition match is
// hit: its count is incremented, the first one that knows how to describe
// the stop prints it, and dispositions are applied afterwards.
func (m *Manager) ReportStop(ctx context.Context, stop Stop) (*StopResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &StopResult{Action: PrintUnknown}
	for _, b := range m.All() {
		if !b.Enabled || b.Pending() {
			continue
		}
		loc := b.locationAt(stop.PC)
		if loc == nil {
			continue
		}
		if b.Thread != -1 && b.Thread != stop.Thread {
			continue
		}

		hit := &Hit{Breakpoint: b, Location: loc, Stop: stop}
		ok, err := b.Ops.CheckStatus(ctx, hit, m.eval)
		if err != nil {
			// A condition that cannot be evaluated stops the inferior so the
			// user can look at it.
			m.out.Error(fmt.Sprintf("Error in testing condition for breakpoint %d:\n%s",
				b.Number, errors.UserMessage(err)))
			ok = true
		}
		if !ok {
			m.logger.Debug().Int("number", b.Number).Msg("Condition false, not stopping")
			continue
		}

		b.HitCount++
		result.Hits = append(result.Hits, hit)
	}

	if !result.Stopped() {
		m.logger.Debug().Uint64("pc", stop.PC).Msg("No breakpoint at stop address")
		return result, nil
	}

	for _, hit := range result.Hits {
		result.Action = hit.Breakpoint.Ops.PrintIt(m.out, hit)
		if result.Action != PrintUnknown {
			break
		}
	}
	if result.Action == PrintSrcAndLoc || result.Action == PrintUnknown {
		m.printFrame(stop, result.Hits[0].Location)
	}

	for _, hit := range result.Hits {
		b := hit.Breakpoint
		m.logger.Debug().
			Int("number", b.Number).
			Int("hits", b.HitCount).
			Uint64("pc", stop.PC).
			Msg("Breakpoint hit")

		switch b.Disposition {
		case DispDelete:
			_ = m.remove(b.Number)
		case DispDisable:
			b.Enabled = false
		}
	}

	return result, nil
}

func (m *Manager) printFrame(stop Stop, loc *Location) {
	m.out.BeginTuple("frame")
	m.out.FieldCoreAddr("addr", stop.PC, m.Arch().PtrBits)
	m.out.Text(" in ")
	m.out.FieldString("func", loc.Symbol)
	m.out.Text(" ()\n")
	m.out.EndTuple()
	if m.out.IsMILike() {
		m.out.FieldInt("thread-id", stop.Thread)
	}
}
