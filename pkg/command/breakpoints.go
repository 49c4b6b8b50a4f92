package command

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/ddbg/pkg/breakpoint"
	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/spf13/afero"
)

func (i *Interpreter) addBreakpointCommands() {
	info := i.prefix("info", MsgInfoShort, "i")
	info.AddCommand(i.command("breakpoints [N...]", MsgInfoBpShort, runInfoBreakpoints, "b", "br", "break"))

	save := i.prefix("save", MsgSaveShort)
	save.AddCommand(i.command("breakpoints FILE", MsgSaveBpShort, runSaveBreakpoints))

	i.root.AddCommand(
		i.command("break LOCATION [thread N] [if COND]", MsgBreakShort, breakCommand(false), "b", "br"),
		i.command("tbreak LOCATION [thread N] [if COND]", MsgTbreakShort, breakCommand(true)),
		i.command("delete [breakpoints] [N...]", MsgDeleteShort, runDelete, "d"),
		i.command("enable [once] [N...]", MsgEnableShort, runEnable),
		i.command("disable [N...]", MsgDisableShort, runDisable),
		i.command("condition N [COND]", MsgCondShort, runCondition),
		info,
		save,
	)
}

// breakArgs is the parsed argument of break and tbreak.
type breakArgs struct {
	location  string
	thread    int
	condition string
}

func parseBreakArgs(arg string) (breakArgs, error) {
	args := breakArgs{thread: -1}
	args.location, arg = nextWord(arg)

	for arg != "" {
		if rest, ok := hasKeyword(arg, "thread"); ok {
			var word string
			word, arg = nextWord(rest)
			n, err := strconv.Atoi(word)
			if err != nil || n <= 0 {
				return args, errors.Newf(errors.ErrInvalidInput, MsgInvalidThread, word)
			}
			args.thread = n
			continue
		}
		if rest, ok := hasKeyword(arg, "if"); ok {
			args.condition = strings.TrimSpace(rest)
			if args.condition == "" {
				return args, errors.New(errors.ErrInvalidInput, MsgArgBoolExpr)
			}
			return args, nil
		}
		return args, errors.New(errors.ErrJunkArguments, MsgJunk)
	}
	return args, nil
}

func breakCommand(temporary bool) RunFunc {
	return func(_ context.Context, env *Env, arg string) error {
		args, err := parseBreakArgs(arg)
		if err != nil {
			return err
		}
		if args.location == "" {
			return errors.New(errors.ErrInvalidInput, MsgArgLocation)
		}
		_, err = env.Manager.Create(breakpoint.CreateSpec{
			Location:  args.location,
			Condition: args.condition,
			Thread:    args.thread,
			Temporary: temporary,
			Type:      breakpoint.TypeBreakpoint,
			Pending:   env.Settings.Pending,
			Ops:       breakpoint.CodeOps{},
			FromTTY:   env.FromTTY,
			Enabled:   true,
		})
		return err
	}
}

func runInfoBreakpoints(_ context.Context, env *Env, arg string) error {
	numbers, err := parseBreakpointNumbers(env, arg)
	if err != nil {
		return err
	}
	env.Manager.List(env.PrintOptions(), numbers...)
	return nil
}

func runDelete(_ context.Context, env *Env, arg string) error {
	if rest, ok := hasKeyword(arg, "breakpoints"); ok {
		arg = rest
	}
	if strings.TrimSpace(arg) == "" {
		env.Manager.DeleteAll()
		return nil
	}
	numbers, err := parseBreakpointNumbers(env, arg)
	if err != nil {
		return err
	}
	return env.Manager.Delete(numbers...)
}

func runEnable(_ context.Context, env *Env, arg string) error {
	once := false
	if rest, ok := hasKeyword(arg, "once"); ok {
		once = true
		arg = rest
	}
	numbers, err := parseBreakpointNumbers(env, arg)
	if err != nil {
		return err
	}
	return env.Manager.Enable(once, numbers...)
}

func runDisable(_ context.Context, env *Env, arg string) error {
	numbers, err := parseBreakpointNumbers(env, arg)
	if err != nil {
		return err
	}
	return env.Manager.Disable(numbers...)
}

func runCondition(_ context.Context, env *Env, arg string) error {
	word, rest := nextWord(arg)
	if word == "" {
		return errors.New(errors.ErrInvalidInput, MsgArgBpNumber)
	}
	n, err := parseBreakpointNumber(env, word)
	if err != nil {
		return err
	}
	return env.Manager.SetCondition(n, strings.TrimSpace(rest))
}

func runSaveBreakpoints(_ context.Context, env *Env, arg string) error {
	path := strings.TrimSpace(arg)
	if path == "" {
		return errors.New(errors.ErrInvalidInput, MsgArgSaveFile)
	}

	var buf bytes.Buffer
	if err := env.Manager.Save(&buf); err != nil {
		return err
	}
	if err := afero.WriteFile(env.Fs, path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot write \"%s\"", path)
	}
	env.Out().Text(fmt.Sprintf(MsgSavedTo, path))
	return nil
}
