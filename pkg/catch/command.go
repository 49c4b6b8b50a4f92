package catch

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/ddbg/pkg/breakpoint"
	"github.com/arthur-debert/ddbg/pkg/command"
	"github.com/arthur-debert/ddbg/pkg/errors"
)

const (
	MsgJunk         = "Junk at end of arguments."
	MsgUnknownEvent = "Unsupported or unknown exception event; cannot catch it"
	MsgUnsupported  = "Unsupported with this platform/compiler combination."
)

// CatchCommand handles `catch catch` and `tcatch catch`.
func (ops *ExceptionOps) CatchCommand(env *command.Env, arg string, disp command.CatchDisposition) error {
	return ops.catchException(env, KindCatch, arg, disp)
}

// ThrowCommand handles `catch throw` and `tcatch throw`.
func (ops *ExceptionOps) ThrowCommand(env *command.Env, arg string, disp command.CatchDisposition) error {
	return ops.catchException(env, KindThrow, arg, disp)
}

// RethrowCommand handles `catch rethrow` and `tcatch rethrow`.
func (ops *ExceptionOps) RethrowCommand(env *command.Env, arg string, disp command.CatchDisposition) error {
	return ops.catchException(env, KindRethrow, arg, disp)
}

// parseIfClause splits an optional `if COND` clause off arg. The keyword
// must be followed by whitespace; the condition is the rest of the text.
func parseIfClause(arg string) (cond string, rest string) {
	if len(arg) < 3 || !strings.HasPrefix(arg, "if") || !unicode.IsSpace(rune(arg[2])) {
		return "", arg
	}
	return strings.TrimRightFunc(strings.TrimLeftFunc(arg[2:], unicode.IsSpace), unicode.IsSpace), ""
}

func (ops *ExceptionOps) catchException(env *command.Env, kind Kind, arg string, disp command.CatchDisposition) error {
	arg = strings.TrimLeftFunc(arg, unicode.IsSpace)
	cond, rest := parseIfClause(arg)
	if rest != "" {
		return errors.New(errors.ErrJunkArguments, MsgJunk)
	}
	if !kind.Valid() {
		return errors.New(errors.ErrUnknownEvent, MsgUnknownEvent).WithDetail("kind", int(kind))
	}

	symbol, ok := TriggerSymbol(kind, env.ExceptionABI())
	if !ok {
		env.Out().Warning(MsgUnsupported)
		return nil
	}

	_, err := env.Manager.Create(breakpoint.CreateSpec{
		Arch:      env.Manager.Arch(),
		Location:  symbol,
		Condition: cond,
		Thread:    -1,
		Temporary: disp.Temporary(),
		Type:      breakpoint.TypeBreakpoint,
		Pending:   breakpoint.PendingOn,
		Ops:       ops,
		FromTTY:   env.FromTTY,
		Enabled:   true,
		Internal:  false,
		Extra:     kind,
	})
	return err
}
