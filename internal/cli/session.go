package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/ddbg/pkg/breakpoint"
	"github.com/arthur-debert/ddbg/pkg/catch"
	"github.com/arthur-debert/ddbg/pkg/cobrax/topics"
	"github.com/arthur-debert/ddbg/pkg/command"
	"github.com/arthur-debert/ddbg/pkg/cond"
	"github.com/arthur-debert/ddbg/pkg/config"
	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/arthur-debert/ddbg/pkg/logging"
	"github.com/arthur-debert/ddbg/pkg/uiout"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Streams are the session's standard streams.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Session is one debugging session: a breakpoint manager, the command
// interpreter driving it, and the streams it talks over.
type Session struct {
	streams Streams
	format  uiout.Format
	out     uiout.Out
	interp  *command.Interpreter
	logger  zerolog.Logger
}

// NewSession builds a session from cfg. Files named in commands are
// resolved in fsys.
func NewSession(cfg *config.Config, streams Streams, fsys afero.Fs) (*Session, error) {
	format := cfg.Format()
	if format == uiout.FormatAuto {
		format = uiout.FormatText
		if f, ok := streams.Out.(*os.File); ok {
			format = uiout.DetectFormat(f)
		}
	}

	out, err := uiout.New(format, streams.Out, uiout.Options{
		Err:             streams.Err,
		AnnotationLevel: cfg.UI.Annotate,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot create output")
	}

	settings := command.Settings{
		AddressPrint: cfg.Print.Address,
		Pending:      cfg.PendingPolicy(),
		CPABI:        cfg.Target.ABI,
	}
	env := &command.Env{
		Manager:  breakpoint.NewManager(out, cond.NewRisor()),
		Settings: &settings,
		Fs:       fsys,
		FromTTY:  true,
	}

	var renderer topics.Renderer
	if format == uiout.FormatTerminal {
		renderer = topics.NewMarkdownRenderer("auto", 0)
	}
	interp, err := command.New(env, renderer)
	if err != nil {
		return nil, err
	}
	if err := catch.Register(interp, catch.NewOps()); err != nil {
		return nil, err
	}

	s := &Session{
		streams: streams,
		format:  format,
		out:     out,
		interp:  interp,
		logger:  logging.GetLogger("session"),
	}
	s.logger.Debug().Str("format", format.String()).Msg("Session created")
	return s, nil
}

// Interpreter returns the session's command interpreter.
func (s *Session) Interpreter() *command.Interpreter {
	return s.interp
}

// Start loads the configured program and runs the startup commands.
// Failures are reported and do not stop the session.
func (s *Session) Start(ctx context.Context, cfg *config.Config) {
	if cfg.Target.Program != "" {
		s.exec(ctx, "file "+cfg.Target.Program)
	}
	for _, line := range cfg.Startup.Commands {
		s.exec(ctx, line)
	}
}

// RunScripts sources each script in turn. An error in a script is
// reported and the remaining scripts still run.
func (s *Session) RunScripts(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := s.interp.Source(ctx, path); err != nil {
			s.report(err)
		}
	}
}

// Run reads commands from the input stream until it ends, ctx is done or
// the user quits.
func (s *Session) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.streams.In)
	for {
		s.prompt()
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "q" {
			s.logger.Debug().Msg("Quit requested")
			return nil
		}
		s.exec(ctx, line)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot read commands")
	}
	return nil
}

func (s *Session) exec(ctx context.Context, line string) {
	if err := s.interp.Execute(ctx, line); err != nil {
		s.report(err)
	}
}

func (s *Session) report(err error) {
	s.logger.Debug().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Command failed")
	s.out.Error(errors.UserMessage(err))
	_ = s.out.Flush()
}

func (s *Session) prompt() {
	if s.format == uiout.FormatJSON {
		return
	}
	_, _ = io.WriteString(s.streams.Out, MsgPrompt)
}
