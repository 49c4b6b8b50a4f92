package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"catchpoints.md": {Data: []byte("# Catchpoints\n\nStop on exceptions.\n")},
		"pending.txt":    {Data: []byte("Pending breakpoints wait for a module.\n")},
		"nested/save.md": {Data: []byte("Saving breakpoints.\n")},
		"ignore.json":    {Data: []byte("{}")},
	}
}

func TestNewScansTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		m, err := New(testFS(), Options{})
		require.NoError(t, err)

		assert.Equal(t, []string{"catchpoints", "pending", "save"}, m.List())
		topic, ok := m.Get("pending")
		require.True(t, ok)
		assert.Equal(t, "Pending breakpoints wait for a module.\n", topic.Content)
		assert.Equal(t, "pending.txt", topic.FilePath)

		_, ok = m.Get("ignore")
		assert.False(t, ok)
	})

	t.Run("custom extensions", func(t *testing.T) {
		m, err := New(testFS(), Options{Extensions: []string{".json"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"ignore"}, m.List())
	})

	t.Run("nil file system", func(t *testing.T) {
		m, err := New(nil, Options{})
		require.NoError(t, err)
		assert.Empty(t, m.List())
	})
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	root := &cobra.Command{Use: "ddbg", Short: "debugger"}
	root.AddCommand(&cobra.Command{
		Use:   "break",
		Short: "Set breakpoint at specified location.",
		Run:   func(*cobra.Command, []string) {},
	})
	root.SetOut(&buf)
	root.SetErr(&buf)
	_, err := Install(root, testFS(), Options{})
	require.NoError(t, err)
	return root, &buf
}

func run(t *testing.T, root *cobra.Command, args ...string) {
	t.Helper()
	root.SetArgs(args)
	require.NoError(t, root.Execute())
}

func TestHelpCommand(t *testing.T) {
	t.Run("lists topics", func(t *testing.T) {
		root, buf := newRoot(t)
		run(t, root, "help", "topics")

		out := buf.String()
		assert.Contains(t, out, "Help topics:")
		assert.Contains(t, out, "  catchpoints\n")
		assert.Contains(t, out, "  save\n")
	})

	t.Run("shows a topic", func(t *testing.T) {
		root, buf := newRoot(t)
		run(t, root, "help", "pending")
		assert.Equal(t, "Pending breakpoints wait for a module.\n", buf.String())
	})

	t.Run("falls back to command help", func(t *testing.T) {
		root, buf := newRoot(t)
		run(t, root, "help", "break")
		assert.Contains(t, buf.String(), "Set breakpoint at specified location.")
	})

	t.Run("unknown name", func(t *testing.T) {
		root, buf := newRoot(t)
		run(t, root, "help", "frobnicate")
		assert.Equal(t, "Undefined command: \"frobnicate\".  Try \"help\".\n", buf.String())
	})
}

func TestRenderers(t *testing.T) {
	plain := PlainRenderer{}
	assert.Equal(t, "# Title\n", plain.Render("# Title\n", ".md"))

	md := NewMarkdownRenderer("notty", 60)
	assert.Equal(t, "plain text", md.Render("plain text", ".txt"))

	rendered := md.Render("# Catchpoints\n\nStop on exceptions.\n", ".md")
	assert.Contains(t, rendered, "Catchpoints")
	assert.Contains(t, rendered, "Stop on exceptions.")
	assert.Equal(t, rendered, md.Render("# Catchpoints\n\nStop on exceptions.\n", ".md"), "renderer is reused")

	broken := NewMarkdownRenderer("/nonexistent/style.json", 0)
	assert.Equal(t, "# Raw\n", broken.Render("# Raw\n", ".md"))
}
