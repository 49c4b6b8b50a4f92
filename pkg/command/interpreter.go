// Package command is the debugger's command interpreter. Commands are
// organised as a cobra tree, but handlers receive the raw text that follows
// the command words so that expressions reach them verbatim.
package command

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"unicode"

	"github.com/arthur-debert/ddbg/pkg/cobrax/topics"
	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/arthur-debert/ddbg/pkg/logging"
	"github.com/arthur-debert/ddbg/pkg/registry"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// RunFunc is the handler of a generic command.
type RunFunc func(ctx context.Context, env *Env, arg string) error

// Interpreter parses and runs command lines.
type Interpreter struct {
	root     *cobra.Command
	catch    *cobra.Command
	tcatch   *cobra.Command
	catchers *registry.List[CatchFunc]
	topics   *topics.Manager
	env      *Env
	logger   zerolog.Logger
}

// New creates an interpreter operating on env with the built-in commands
// installed. renderer formats help topics; nil shows them as written.
func New(env *Env, renderer topics.Renderer) (*Interpreter, error) {
	i := &Interpreter{
		env:      env,
		catchers: registry.New[CatchFunc](),
		logger:   logging.GetLogger("command"),
	}

	i.root = &cobra.Command{
		Use:           "ddbg",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	i.root.SetOut(outWriter{env: env})
	i.root.SetErr(outWriter{env: env})
	i.root.SetHelpFunc(i.help)

	i.catch = i.prefix("catch", MsgCatchShort)
	i.catch.RunE = i.runCatchAbbrev(CatchPermanent)
	i.tcatch = i.prefix("tcatch", MsgTcatchShort)
	i.tcatch.RunE = i.runCatchAbbrev(CatchTemporary)
	i.root.AddCommand(i.catch, i.tcatch)
	i.addBreakpointCommands()
	i.addProgramCommands()
	i.addSettingCommands()

	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot open help topics")
	}
	i.topics, err = topics.Install(i.root, sub, topics.Options{Renderer: renderer})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot install help topics")
	}

	return i, nil
}

// Env returns the environment commands run in.
func (i *Interpreter) Env() *Env {
	return i.env
}

// AddCatchCommand adds `catch NAME` and `tcatch NAME`, both running fn.
// Names are unique across the catch lists and may be abbreviated.
func (i *Interpreter) AddCatchCommand(name, doc string, fn CatchFunc) error {
	if fn == nil {
		return errors.Newf(errors.ErrInvalidInput, "catch command %q has no handler", name)
	}
	if err := i.catchers.Add(registry.Entry[CatchFunc]{Name: name, Doc: doc, Item: fn}); err != nil {
		return err
	}

	for _, list := range []struct {
		cmd  *cobra.Command
		disp CatchDisposition
	}{
		{i.catch, CatchPermanent},
		{i.tcatch, CatchTemporary},
	} {
		disp := list.disp
		list.cmd.AddCommand(&cobra.Command{
			Use:                name,
			Short:              doc,
			Args:               cobra.ArbitraryArgs,
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return fn(i.env, ArgText(cmd.Context()), disp)
			},
		})
	}

	i.logger.Debug().Str("name", name).Msg("Catch command registered")
	return nil
}

// CatchCommands returns the names registered with AddCatchCommand.
func (i *Interpreter) CatchCommands() []string {
	return i.catchers.Names()
}

// Execute runs one command line. Blank lines and comments do nothing.
// The output is flushed once the command has finished.
func (i *Interpreter) Execute(ctx context.Context, line string) (err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	logging.LogCommand(i.logger, line)
	defer func() {
		if ferr := i.env.Out().Flush(); err == nil {
			err = ferr
		}
	}()

	words := strings.Fields(line)
	cmd, rest, ferr := i.root.Find(words)
	if ferr != nil || cmd == i.root {
		return errors.Newf(errors.ErrInvalidInput, MsgUndefinedCommand, words[0])
	}

	arg := skipWords(line, len(words)-len(rest))
	cmd.SetContext(withArgText(ctx, arg))

	switch {
	case cmd.RunE != nil:
		return cmd.RunE(cmd, rest)
	case cmd.Run != nil:
		cmd.Run(cmd, rest)
		return nil
	default:
		return cmd.Help()
	}
}

// runCatchAbbrev runs a catch sub-command named by an unambiguous
// abbreviation, as in `catch thr`.
func (i *Interpreter) runCatchAbbrev(disp CatchDisposition) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return i.prefixHelp(cmd)
		}

		path := i.path(cmd)
		matches := i.catchers.Match(args[0])
		switch len(matches) {
		case 0:
			return errors.Newf(errors.ErrInvalidInput, MsgUndefinedSubcommand, path, args[0], path)
		case 1:
			arg := skipWords(ArgText(cmd.Context()), 1)
			return matches[0].Item(i.env, arg, disp)
		default:
			names := make([]string, len(matches))
			for n, m := range matches {
				names[n] = m.Name
			}
			return errors.Newf(errors.ErrInvalidInput, MsgAmbiguousSubcommand, path, args[0], strings.Join(names, ", "))
		}
	}
}

// command builds a leaf command running fn with the raw argument text.
func (i *Interpreter) command(use, short string, fn RunFunc, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		Aliases:            aliases,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return fn(cmd.Context(), i.env, ArgText(cmd.Context()))
		},
	}
}

// prefix builds a command that only groups sub-commands.
func (i *Interpreter) prefix(name, short string, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:                name,
		Short:              short,
		Aliases:            aliases,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path := i.path(cmd)
				return errors.Newf(errors.ErrInvalidInput, MsgUndefinedSubcommand, path, args[0], path)
			}
			return i.prefixHelp(cmd)
		},
	}
}

// prefixHelp lists the sub-commands of a prefix typed on its own.
func (i *Interpreter) prefixHelp(cmd *cobra.Command) error {
	i.env.Out().Text(fmt.Sprintf(MsgPrefixRequiresSub, i.path(cmd), cmd.Name()))
	i.help(cmd, nil)
	return nil
}

func (i *Interpreter) help(cmd *cobra.Command, _ []string) {
	out := i.env.Out()
	if cmd != i.root {
		doc := cmd.Long
		if doc == "" {
			doc = cmd.Short
		}
		out.Text(doc + "\n")
	}
	if !cmd.HasAvailableSubCommands() {
		return
	}

	if cmd == i.root {
		out.Text(MsgCommandList)
	} else {
		out.Text(fmt.Sprintf(MsgSubcommandList, i.path(cmd)))
	}
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			out.Text(fmt.Sprintf(MsgCommandItem, i.path(sub), sub.Short))
		}
	}
	if cmd == i.root {
		out.Text(MsgHelpTopicsHint)
	}
}

// path is the command path as typed in the interpreter.
func (i *Interpreter) path(cmd *cobra.Command) string {
	return strings.TrimPrefix(cmd.CommandPath(), i.root.Name()+" ")
}

// skipWords returns line without its first n words.
func skipWords(line string, n int) string {
	rest := line
	for ; n > 0; n-- {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			return ""
		}
		rest = rest[end:]
	}
	return strings.TrimLeftFunc(rest, unicode.IsSpace)
}

// outWriter sends cobra's output through the interpreter output.
type outWriter struct {
	env *Env
}

func (w outWriter) Write(p []byte) (int, error) {
	w.env.Out().Text(string(p))
	return len(p), nil
}
