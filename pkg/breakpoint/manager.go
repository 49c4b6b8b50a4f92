package breakpoint

import (
	"fmt"

	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/arthur-debert/ddbg/pkg/logging"
	"github.com/arthur-debert/ddbg/pkg/target"
	"github.com/arthur-debert/ddbg/pkg/uiout"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// PendingPolicy controls what Create does when a location does not resolve.
type PendingPolicy int

const (
	// PendingAuto creates a pending breakpoint and tells an interactive user
	// that the location is not defined yet.
	PendingAuto PendingPolicy = iota
	// PendingOn creates a pending breakpoint silently.
	PendingOn
	// PendingOff refuses to create unresolved breakpoints.
	PendingOff
)

func (p PendingPolicy) String() string {
	switch p {
	case PendingOn:
		return "on"
	case PendingOff:
		return "off"
	default:
		return "auto"
	}
}

// ParsePendingPolicy parses "on", "off" or "auto".
func ParsePendingPolicy(s string) (PendingPolicy, error) {
	switch s {
	case "auto", "":
		return PendingAuto, nil
	case "on":
		return PendingOn, nil
	case "off":
		return PendingOff, nil
	default:
		return PendingAuto, errors.Newf(errors.ErrInvalidInput, "\"on\", \"off\" or \"auto\" expected, got %q", s)
	}
}

// CreateSpec holds everything needed to create a breakpoint.
type CreateSpec struct {
	Arch      target.Arch
	Location  string
	Condition string
	// Thread is the only thread the breakpoint stops; -1 means any.
	Thread    int
	Temporary bool
	Type      Type
	Pending   PendingPolicy
	Ops       Ops
	FromTTY   bool
	Enabled   bool
	Internal  bool
	Extra     any
}

// Manager owns the breakpoint table. It is used from the single command
// loop and is not safe for concurrent use.
type Manager struct {
	out          uiout.Out
	program      target.Program
	eval         Evaluator
	breakpoints  []*Breakpoint
	lastNumber   int
	lastInternal int
	lastListed   *Location
	logger       zerolog.Logger
}

// NewManager creates an empty manager printing to out and evaluating
// conditions with eval. eval may be nil, in which case every condition holds.
func NewManager(out uiout.Out, eval Evaluator) *Manager {
	return &Manager{
		out:    out,
		eval:   eval,
		logger: logging.GetLogger("breakpoint"),
	}
}

// Out returns the output the manager prints to.
func (m *Manager) Out() uiout.Out {
	return m.out
}

// SetOut changes the output the manager prints to.
func (m *Manager) SetOut(out uiout.Out) {
	m.out = out
}

// Program returns the loaded program, or nil.
func (m *Manager) Program() target.Program {
	return m.program
}

// SetProgram replaces the loaded program and re-resolves every breakpoint.
func (m *Manager) SetProgram(p target.Program) int {
	m.program = p
	return m.ReResolve()
}

// Arch returns the architecture of the loaded program, or the default one.
func (m *Manager) Arch() target.Arch {
	if m.program == nil {
		return target.DefaultArch
	}
	return m.program.Arch()
}

// LastNumber returns the number of the most recently created user
// breakpoint, or 0 when none was created.
func (m *Manager) LastNumber() int {
	return m.lastNumber
}

// LastListed returns the location shown last by List, or nil.
func (m *Manager) LastListed() *Location {
	return m.lastListed
}

// Create creates a breakpoint described by spec and announces it.
func (m *Manager) Create(spec CreateSpec) (*Breakpoint, error) {
	if spec.Ops == nil {
		return nil, errors.New(errors.ErrInternal, "breakpoint has no operations")
	}
	if spec.Location == "" {
		return nil, errors.New(errors.ErrInvalidInput, "Argument required (location).")
	}
	if spec.Type == "" {
		spec.Type = TypeBreakpoint
	}
	if spec.Arch.PtrBits == 0 {
		spec.Arch = m.Arch()
	}

	b := &Breakpoint{
		Type:        spec.Type,
		Disposition: DispKeep,
		Enabled:     spec.Enabled,
		AddrString:  spec.Location,
		Condition:   spec.Condition,
		Thread:      spec.Thread,
		Arch:        spec.Arch,
		Ops:         spec.Ops,
		Extra:       spec.Extra,
		Internal:    spec.Internal,
	}
	if spec.Temporary {
		b.Disposition = DispDelete
	}

	var resolver SymbolResolver
	if m.program != nil {
		resolver = m.program
	}
	b.Locations = b.Ops.ResolveLocations(b, resolver)

	if b.Pending() {
		switch spec.Pending {
		case PendingOff:
			return nil, errors.Newf(errors.ErrNotFound, "Function \"%s\" not defined.", spec.Location).
				WithDetail("location", spec.Location)
		case PendingAuto:
			if spec.FromTTY && !spec.Internal {
				m.out.Text(fmt.Sprintf("Function \"%s\" not defined.\n", spec.Location))
			}
		}
	}

	if spec.Internal {
		m.lastInternal--
		b.Number = m.lastInternal
	} else {
		m.lastNumber++
		b.Number = m.lastNumber
	}
	m.breakpoints = append(m.breakpoints, b)

	m.logger.Debug().
		Int("number", b.Number).
		Str("location", b.AddrString).
		Str("disp", b.Disposition.String()).
		Bool("pending", b.Pending()).
		Msg("Breakpoint created")

	if !b.Internal {
		b.Ops.PrintMention(m.out, b)
		if !m.out.IsMILike() {
			m.out.Text("\n")
		}
	}
	return b, nil
}

// Get returns breakpoint n.
func (m *Manager) Get(n int) (*Breakpoint, error) {
	for _, b := range m.breakpoints {
		if b.Number == n {
			return b, nil
		}
	}
	return nil, errors.Newf(errors.ErrNotFound, "No breakpoint number %d.", n).
		WithDetail("number", n)
}

// All returns every breakpoint in creation order, internal ones included.
func (m *Manager) All() []*Breakpoint {
	out := make([]*Breakpoint, len(m.breakpoints))
	copy(out, m.breakpoints)
	return out
}

// User returns the non-internal breakpoints in creation order.
func (m *Manager) User() []*Breakpoint {
	var out []*Breakpoint
	for _, b := range m.breakpoints {
		if !b.Internal {
			out = append(out, b)
		}
	}
	return out
}

// Delete deletes the given breakpoints. Every number is attempted; the
// numbers that do not exist are reported together.
func (m *Manager) Delete(numbers ...int) error {
	var result *multierror.Error
	for _, n := range numbers {
		if err := m.remove(n); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// DeleteAll deletes every user breakpoint.
func (m *Manager) DeleteAll() int {
	kept := m.breakpoints[:0]
	deleted := 0
	for _, b := range m.breakpoints {
		if b.Internal {
			kept = append(kept, b)
			continue
		}
		deleted++
	}
	m.breakpoints = kept
	m.logger.Debug().Int("count", deleted).Msg("All breakpoints deleted")
	return deleted
}

func (m *Manager) remove(n int) error {
	for i, b := range m.breakpoints {
		if b.Number == n {
			m.breakpoints = append(m.breakpoints[:i], m.breakpoints[i+1:]...)
			m.logger.Debug().Int("number", n).Msg("Breakpoint deleted")
			return nil
		}
	}
	return errors.Newf(errors.ErrNotFound, "No breakpoint number %d.", n).
		WithDetail("number", n)
}

// Enable enables the given breakpoints. With once set they are disabled
// again after their next hit.
func (m *Manager) Enable(once bool, numbers ...int) error {
	return m.each(numbers, func(b *Breakpoint) {
		b.Enabled = true
		if once {
			b.Disposition = DispDisable
		}
	})
}

// Disable disables the given breakpoints.
func (m *Manager) Disable(numbers ...int) error {
	return m.each(numbers, func(b *Breakpoint) {
		b.Enabled = false
	})
}

// SetCondition replaces the condition of breakpoint n. An empty condition
// makes the breakpoint unconditional.
func (m *Manager) SetCondition(n int, condition string) error {
	b, err := m.Get(n)
	if err != nil {
		return err
	}
	b.Condition = condition
	if condition == "" {
		m.out.Text(fmt.Sprintf("Breakpoint %d now unconditional.\n", n))
	}
	return nil
}

func (m *Manager) each(numbers []int, fn func(*Breakpoint)) error {
	if len(numbers) == 0 {
		for _, b := range m.breakpoints {
			if !b.Internal {
				fn(b)
			}
		}
		return nil
	}
	var result *multierror.Error
	for _, n := range numbers {
		b, err := m.Get(n)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		fn(b)
	}
	return result.ErrorOrNil()
}

// ReResolve resolves every breakpoint again against the loaded program, as
// after a module was loaded. Pending breakpoints whose location now exists
// gain it; resolved ones whose symbol disappeared become pending. It
// returns the number of breakpoints that changed state.
func (m *Manager) ReResolve() int {
	var resolver SymbolResolver
	if m.program != nil {
		resolver = m.program
	}

	changed := 0
	for _, b := range m.breakpoints {
		wasPending := b.Pending()
		b.Locations = b.Ops.ResolveLocations(b, resolver)
		if wasPending != b.Pending() {
			changed++
			m.logger.Debug().
				Int("number", b.Number).
				Str("location", b.AddrString).
				Bool("pending", b.Pending()).
				Msg("Breakpoint re-resolved")
		}
	}
	return changed
}
