package command

import (
	"context"

	"github.com/arthur-debert/ddbg/pkg/breakpoint"
	"github.com/arthur-debert/ddbg/pkg/target"
	"github.com/arthur-debert/ddbg/pkg/uiout"
	"github.com/spf13/afero"
)

// CatchDisposition tells a catch handler whether it was invoked through the
// catch list or the tcatch list.
type CatchDisposition int

const (
	CatchPermanent CatchDisposition = iota
	CatchTemporary
)

// Temporary reports whether the catchpoint should be deleted after one hit.
func (d CatchDisposition) Temporary() bool {
	return d == CatchTemporary
}

// Command returns the prefix command a user types for d.
func (d CatchDisposition) Command() string {
	if d == CatchTemporary {
		return "tcatch"
	}
	return "catch"
}

// CatchFunc handles `catch NAME ARG` and `tcatch NAME ARG`. arg is the raw
// text after the sub-command name.
type CatchFunc func(env *Env, arg string, disp CatchDisposition) error

// CPABIAuto selects the exception ABI of the loaded program.
const CPABIAuto = "auto"

// Settings are the user settings commands consult.
type Settings struct {
	AddressPrint bool
	Pending      breakpoint.PendingPolicy
	// CPABI is "auto" or an exception ABI name.
	CPABI string
}

// DefaultSettings returns the settings of a fresh session.
func DefaultSettings() Settings {
	return Settings{
		AddressPrint: true,
		Pending:      breakpoint.PendingAuto,
		CPABI:        CPABIAuto,
	}
}

// Env is what command handlers operate on.
type Env struct {
	Manager  *breakpoint.Manager
	Settings *Settings
	Fs       afero.Fs
	// FromTTY is true while commands come from an interactive user.
	FromTTY bool
}

// Out returns the output commands print to.
func (e *Env) Out() uiout.Out {
	return e.Manager.Out()
}

// Program returns the loaded program, or nil.
func (e *Env) Program() target.Program {
	return e.Manager.Program()
}

// ExceptionABI returns the exception ABI breakpoints should assume: the
// one selected with `set cp-abi`, or the loaded program's. With neither,
// GNU v3 is assumed.
func (e *Env) ExceptionABI() target.ExceptionABI {
	if e.Settings.CPABI != "" && e.Settings.CPABI != CPABIAuto {
		abi, err := target.ParseExceptionABI(e.Settings.CPABI)
		if err != nil {
			return target.ABINone
		}
		return abi
	}
	if p := e.Program(); p != nil {
		return p.ExceptionABI()
	}
	return target.ABIGNUv3
}

// PrintOptions returns the listing options derived from the settings.
func (e *Env) PrintOptions() breakpoint.PrintOptions {
	return breakpoint.PrintOptions{AddressPrint: e.Settings.AddressPrint}
}

type argTextKey struct{}

func withArgText(ctx context.Context, arg string) context.Context {
	return context.WithValue(ctx, argTextKey{}, arg)
}

// ArgText returns the unsplit argument text of the command being run.
func ArgText(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	arg, _ := ctx.Value(argTextKey{}).(string)
	return arg
}
