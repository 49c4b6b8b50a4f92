// internal/cli/session_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: in-memory afero fs
// PURPOSE: Test interactive sessions, scripts and the root command

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/arthur-debert/ddbg/pkg/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	fs      afero.Fs
	session *Session
}

func newHarness(t *testing.T, input string, mutate func(*config.Config)) *harness {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.UI.Format = "text"
	if mutate != nil {
		mutate(cfg)
	}

	h := &harness{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}, fs: afero.NewMemMapFs()}
	h.session, err = NewSession(cfg, Streams{
		In:  strings.NewReader(input),
		Out: h.out,
		Err: h.errOut,
	}, h.fs)
	require.NoError(t, err)
	return h
}

func TestSessionRun(t *testing.T) {
	h := newHarness(t, "catch catch\nbogus\ntcatch throw junk\nquit\ncatch throw\n", nil)

	require.NoError(t, h.session.Run(context.Background()))

	assert.Equal(t, "(ddbg) Catchpoint 1 (catch)\n(ddbg) (ddbg) (ddbg) ", h.out.String())
	assert.Equal(t,
		"Undefined command: \"bogus\".  Try \"help\".\nJunk at end of arguments.\n",
		h.errOut.String())
	assert.Len(t, h.session.Interpreter().Env().Manager.All(), 1)
}

func TestSessionRunEndsAtEOF(t *testing.T) {
	h := newHarness(t, "tcatch rethrow", nil)
	require.NoError(t, h.session.Run(context.Background()))
	assert.Equal(t, "(ddbg) Temporary catchpoint 1 (rethrow)\n(ddbg) ", h.out.String())
}

func TestSessionRunHonoursContext(t *testing.T) {
	h := newHarness(t, "catch throw\n", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.session.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, h.session.Interpreter().Env().Manager.All())
}

func TestSessionJSON(t *testing.T) {
	h := newHarness(t, "catch rethrow\ncatch nothing\n", func(c *config.Config) {
		c.UI.Format = "json"
	})

	require.NoError(t, h.session.Run(context.Background()))

	assert.Equal(t,
		`{"bkptno":1}`+"\n"+`{"error":"Undefined catch command: \"nothing\".  Try \"help catch\"."}`+"\n",
		h.out.String())
}

func TestSessionStart(t *testing.T) {
	t.Run("startup commands use configured settings", func(t *testing.T) {
		h := newHarness(t, "", func(c *config.Config) {
			c.Target.ABI = "none"
			c.Startup.Commands = []string{"catch throw", "show cp-abi"}
		})

		h.session.Start(context.Background(), &config.Config{
			Target:  config.Target{ABI: "none"},
			Startup: config.Startup{Commands: []string{"catch throw", "show cp-abi"}},
		})

		assert.Equal(t, "The currently selected C++ ABI is \"none\".\n", h.out.String())
		assert.Equal(t, "warning: Unsupported with this platform/compiler combination.\n", h.errOut.String())
		assert.Empty(t, h.session.Interpreter().Env().Manager.All())
	})

	t.Run("missing program is reported", func(t *testing.T) {
		h := newHarness(t, "", nil)

		h.session.Start(context.Background(), &config.Config{Target: config.Target{Program: "/missing"}})

		assert.Equal(t, "Reading symbols from /missing...\n", h.out.String())
		assert.Equal(t, "/missing: No such file or directory.\n", h.errOut.String())
	})
}

func TestSessionRunScripts(t *testing.T) {
	h := newHarness(t, "", nil)
	require.NoError(t, afero.WriteFile(h.fs, "/one.ddbg", []byte("catch throw\ncatch bogus\ncatch catch\n"), 0644))
	require.NoError(t, afero.WriteFile(h.fs, "/two.ddbg", []byte("# comment\n\ntcatch rethrow\n"), 0644))

	h.session.RunScripts(context.Background(), []string{"/one.ddbg", "/absent.ddbg", "/two.ddbg"})

	bps := h.session.Interpreter().Env().Manager.All()
	require.Len(t, bps, 2)
	assert.Equal(t, "__cxa_throw", bps[0].AddrString)
	assert.Equal(t, "__cxa_rethrow", bps[1].AddrString)

	errs := h.errOut.String()
	assert.Contains(t, errs, "/one.ddbg:2: Error in sourced command file")
	assert.Contains(t, errs, "/absent.ddbg: No such file or directory.")
}

func TestRootCommand(t *testing.T) {
	t.Run("batch scripts", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/s.ddbg", []byte("catch throw\nset print address off\ninfo breakpoints\n"), 0644))

		var out, errOut bytes.Buffer
		root := NewRootCmd(fs)
		root.SetOut(&out)
		root.SetErr(&errOut)
		root.SetIn(strings.NewReader("catch catch\n"))
		root.SetArgs([]string{"--batch", "--format", "text", "-x", "/s.ddbg"})

		require.NoError(t, root.Execute())

		want := "Catchpoint 1 (throw)\n" +
			"Num Type           Disp Enb What\n" +
			"1   breakpoint     keep y   exception throw\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("version", func(t *testing.T) {
		var out bytes.Buffer
		root := NewRootCmd(afero.NewMemMapFs())
		root.SetOut(&out)
		root.SetArgs([]string{"version"})

		require.NoError(t, root.Execute())
		assert.True(t, strings.HasPrefix(out.String(), "ddbg version "))
	})

	t.Run("genconfig", func(t *testing.T) {
		var out bytes.Buffer
		root := NewRootCmd(afero.NewMemMapFs())
		root.SetOut(&out)
		root.SetArgs([]string{"genconfig"})

		require.NoError(t, root.Execute())
		assert.Equal(t, config.GenerateTemplate(), out.String())
	})

	t.Run("genconfig write", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		var out bytes.Buffer
		root := NewRootCmd(fs)
		root.SetOut(&out)
		root.SetArgs([]string{"genconfig", "-w"})

		require.NoError(t, root.Execute())
		data, err := afero.ReadFile(fs, config.UserConfigPath())
		require.NoError(t, err)
		assert.Equal(t, config.GenerateTemplate(), string(data))
		assert.Contains(t, out.String(), config.UserConfigPath())
	})

	t.Run("genconfig written config is loaded", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/ddbg.toml", []byte("[ui]\nformat = \"json\"\n"), 0644))

		root := NewRootCmd(fs)
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"genconfig", "-w", "--effective", "--config", "/ddbg.toml"})
		require.NoError(t, root.Execute())

		cfg, err := config.Load(config.LoadOptions{SkipEnv: true, Fs: fs})
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.UI.Format)
	})

	t.Run("completion", func(t *testing.T) {
		var out bytes.Buffer
		root := NewRootCmd(afero.NewMemMapFs())
		root.SetOut(&out)
		root.SetArgs([]string{"completion", "bash"})

		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "ddbg")
	})

	t.Run("too many arguments", func(t *testing.T) {
		root := NewRootCmd(afero.NewMemMapFs())
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"a.out", "core"})
		assert.Error(t, root.Execute())
	})
}
