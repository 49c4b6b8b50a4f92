package uiout

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// CLI is the interactive Out. Text and field values are written in the
// order they are emitted; table cells are padded to their column width.
type CLI struct {
	w          io.Writer
	errW       io.Writer
	styles     Styles
	annotation int
	table      *cliTable
	err        error
}

type cliTable struct {
	cols  []Column
	col   int
	inRow bool
}

// NewCLI creates an interactive Out. A nil styles map produces plain text.
func NewCLI(w io.Writer, opts Options, styles Styles) *CLI {
	errW := opts.Err
	if errW == nil {
		errW = w
	}
	return &CLI{
		w:          w,
		errW:       errW,
		styles:     styles,
		annotation: opts.AnnotationLevel,
	}
}

func (c *CLI) Text(s string) {
	c.write(c.w, s)
}

func (c *CLI) FieldString(name, value string) {
	c.field(name, value)
}

func (c *CLI) FieldInt(name string, value int) {
	c.field(name, strconv.Itoa(value))
}

func (c *CLI) FieldCoreAddr(name string, addr uint64, ptrBits int) {
	c.field(name, FormatCoreAddr(addr, ptrBits))
}

func (c *CLI) Annotate(name string, args ...string) {
	if c.annotation < 2 {
		return
	}
	parts := append([]string{name}, args...)
	c.write(c.w, "\n\x1a\x1a"+strings.Join(parts, " ")+"\n")
}

func (c *CLI) BeginTable(_ string, cols []Column) {
	c.table = &cliTable{cols: cols, inRow: true}
	for _, col := range cols {
		c.cell("", col.Header, "Header")
	}
	c.EndRow()
}

func (c *CLI) BeginRow(string) {
	if c.table == nil {
		return
	}
	c.table.inRow = true
	c.table.col = 0
}

func (c *CLI) EndRow() {
	if c.table == nil || !c.table.inRow {
		return
	}
	c.write(c.w, "\n")
	c.table.inRow = false
	c.table.col = 0
}

func (c *CLI) EndTable() {
	c.table = nil
}

func (c *CLI) BeginTuple(string) {}

func (c *CLI) EndTuple() {}

func (c *CLI) Warning(msg string) {
	c.write(c.errW, c.styles.Render("Warning", "warning: ")+msg+"\n")
}

func (c *CLI) Error(msg string) {
	c.write(c.errW, c.styles.Render("Error", msg)+"\n")
}

func (c *CLI) IsMILike() bool {
	return false
}

// Flush reports the first write error since the previous Flush.
func (c *CLI) Flush() error {
	err := c.err
	c.err = nil
	return err
}

func (c *CLI) field(name, value string) {
	if c.table != nil && c.table.inRow {
		c.cell(name, value, "")
		return
	}
	c.write(c.w, c.styles.RenderField(name, value))
}

// cell writes one padded table cell. The last column is never padded and
// fields past the last column are written as they are.
func (c *CLI) cell(name, value, style string) {
	t := c.table
	if t.col >= len(t.cols) {
		c.write(c.w, c.styles.RenderField(name, value))
		return
	}
	if t.col > 0 {
		c.write(c.w, " ")
	}

	col := t.cols[t.col]
	last := t.col >= len(t.cols)-1
	t.col++

	styled := c.styles.RenderField(name, value)
	if style != "" {
		styled = c.styles.Render(style, value)
	}

	pad := ""
	if n := col.Width - utf8.RuneCountInString(value); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	if last {
		c.write(c.w, styled)
		return
	}
	c.write(c.w, styled+pad)
}

func (c *CLI) write(w io.Writer, s string) {
	if c.err != nil || s == "" {
		return
	}
	_, c.err = io.WriteString(w, s)
}
