package command

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/ddbg/pkg/breakpoint"
	"github.com/arthur-debert/ddbg/pkg/cond"
	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/arthur-debert/ddbg/pkg/logging"
	"github.com/arthur-debert/ddbg/pkg/target"
	"github.com/spf13/afero"
)

func (i *Interpreter) addProgramCommands() {
	i.root.AddCommand(
		i.command("file [FILE]", MsgFileShort, runFile),
		i.command("add-symbol-file FILE", MsgAddSymShort, runAddSymbolFile),
		i.command("source FILE", MsgSourceShort, i.runSource),
		i.command("stop [LOCATION] [thread N] [NAME=VALUE...]", MsgStopShort, runStop),
	)
}

// Source runs every command in path. It stops at the first command that
// fails and reports the file and line of the failure.
func (i *Interpreter) Source(ctx context.Context, path string) error {
	data, err := afero.ReadFile(i.env.Fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrFileAccess, MsgNoSuchFile, path)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read \"%s\"", path)
	}

	done := logging.LogOperationStart(i.logger, "source "+path)
	defer done()

	fromTTY := i.env.FromTTY
	i.env.FromTTY = false
	defer func() { i.env.FromTTY = fromTTY }()

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := i.Execute(ctx, scanner.Text()); err != nil {
			return errors.Wrapf(err, errors.GetErrorCode(err), MsgSourceError, path, lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read \"%s\"", path)
	}
	return nil
}

func (i *Interpreter) runSource(ctx context.Context, _ *Env, arg string) error {
	path := strings.TrimSpace(arg)
	if path == "" {
		return errors.New(errors.ErrInvalidInput, MsgArgFileName)
	}
	return i.Source(ctx, path)
}

// LoadProgram reads the ELF image at path from the environment's file
// system.
func LoadProgram(env *Env, path string) (*target.Static, error) {
	f, err := env.Fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileAccess, MsgNoSuchFile, path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot open \"%s\"", path)
	}
	defer f.Close()
	return target.ReadELF(f, path, target.ABIGNUv3)
}

func runFile(_ context.Context, env *Env, arg string) error {
	path := strings.TrimSpace(arg)
	if path == "" {
		env.Manager.SetProgram(nil)
		env.Out().Text(MsgNoExecutable)
		return nil
	}

	env.Out().Text(fmt.Sprintf(MsgReadingSymbols, path))
	prog, err := LoadProgram(env, path)
	if err != nil {
		return err
	}
	env.Manager.SetProgram(prog)
	return nil
}

func runAddSymbolFile(_ context.Context, env *Env, arg string) error {
	path, rest := nextWord(arg)
	if path == "" {
		return errors.New(errors.ErrInvalidInput, MsgArgFileName)
	}
	if rest != "" {
		return errors.New(errors.ErrJunkArguments, MsgJunk)
	}

	env.Out().Text(fmt.Sprintf(MsgReadingSymbols, path))
	lib, err := LoadProgram(env, path)
	if err != nil {
		return err
	}

	prog, ok := env.Program().(*target.Static)
	if !ok {
		env.Manager.SetProgram(lib)
		return nil
	}
	prog.Merge(lib)
	env.Manager.ReResolve()
	return nil
}

// stopArgs is the parsed argument of stop.
type stopArgs struct {
	location string
	thread   int
	vars     map[string]any
}

func parseStopArgs(arg string) (stopArgs, error) {
	args := stopArgs{thread: 1, vars: map[string]any{}}
	for arg != "" {
		var word string
		if rest, ok := hasKeyword(arg, "thread"); ok {
			word, arg = nextWord(rest)
			n, err := strconv.Atoi(word)
			if err != nil || n <= 0 {
				return args, errors.Newf(errors.ErrInvalidInput, MsgInvalidThread, word)
			}
			args.thread = n
			continue
		}

		word, arg = nextWord(arg)
		if name, value, ok := strings.Cut(word, "="); ok {
			if name == "" {
				return args, errors.Newf(errors.ErrInvalidInput, MsgBadAssignment, word)
			}
			args.vars[name] = cond.ParseValue(value)
			continue
		}
		if args.location != "" {
			return args, errors.New(errors.ErrJunkArguments, MsgJunk)
		}
		args.location = word
	}
	return args, nil
}

func resolveStopAddress(env *Env, location string) (uint64, error) {
	if location == "" {
		if loc := env.Manager.LastListed(); loc != nil {
			return loc.Address, nil
		}
		return 0, errors.New(errors.ErrInvalidInput, MsgArgLocation)
	}
	if addr, err := strconv.ParseUint(location, 0, 64); err == nil {
		return addr, nil
	}

	prog := env.Program()
	if prog == nil {
		return 0, errors.New(errors.ErrNotFound, MsgNoSymbolTable)
	}
	sym, ok := prog.LookupSymbol(location)
	if !ok {
		return 0, errors.Newf(errors.ErrNotFound, MsgFunctionNotDefined, location)
	}
	return sym.Addr, nil
}

// runStop reports the program stopping at an address, as the inferior
// would, so breakpoints at that address are hit.
func runStop(ctx context.Context, env *Env, arg string) error {
	args, err := parseStopArgs(arg)
	if err != nil {
		return err
	}
	pc, err := resolveStopAddress(env, args.location)
	if err != nil {
		return err
	}

	_, err = env.Manager.ReportStop(ctx, breakpoint.Stop{
		PC:     pc,
		Thread: args.thread,
		Vars:   args.vars,
	})
	return err
}
