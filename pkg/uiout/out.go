// Package uiout is the dual-mode output abstraction used by the debugger.
//
// Producers emit a mix of free text and named fields. An interactive
// consumer (FormatText, FormatTerminal) shows the text and the field values
// in order; a machine consumer (FormatJSON) drops the text and collects the
// fields into one JSON record per command. Producers always emit both
// forms and let the Out decide what a consumer sees.
package uiout

import (
	"fmt"
	"io"
	"os"
)

// Column describes one column of a table.
type Column struct {
	Name   string
	Header string
	Width  int
}

// Out receives everything a command prints.
type Out interface {
	// Text emits prose for interactive consumers.
	Text(s string)
	FieldString(name, value string)
	FieldInt(name string, value int)
	// FieldCoreAddr emits a target address formatted for ptrBits wide pointers.
	FieldCoreAddr(name string, addr uint64, ptrBits int)

	// Annotate emits a level-2 annotation marker.
	Annotate(name string, args ...string)

	BeginTable(id string, cols []Column)
	BeginRow(name string)
	EndRow()
	EndTable()
	BeginTuple(name string)
	EndTuple()

	Warning(msg string)
	Error(msg string)

	// IsMILike reports whether the consumer is a machine.
	IsMILike() bool

	// Flush completes the current record.
	Flush() error
}

// Options tune an Out.
type Options struct {
	// Err receives warnings and errors for interactive formats. Defaults
	// to the main writer.
	Err io.Writer
	// AnnotationLevel enables annotation markers when greater than 1.
	AnnotationLevel int
}

// New creates an Out for format writing to w.
// FormatAuto detects terminal capabilities when w is a file.
func New(format Format, w io.Writer, opts Options) (Out, error) {
	switch format {
	case FormatAuto:
		if file, ok := w.(*os.File); ok {
			return New(DetectFormat(file), w, opts)
		}
		return New(FormatText, w, opts)
	case FormatTerminal:
		styles, err := DefaultStyles(w)
		if err != nil {
			return nil, fmt.Errorf("failed to load styles: %w", err)
		}
		return NewCLI(w, opts, styles), nil
	case FormatText:
		return NewCLI(w, opts, nil), nil
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// FormatCoreAddr renders addr as a zero-padded hex string sized for the
// pointer width of the target.
func FormatCoreAddr(addr uint64, ptrBits int) string {
	if ptrBits > 0 && ptrBits <= 32 {
		return fmt.Sprintf("0x%08x", addr)
	}
	return fmt.Sprintf("0x%016x", addr)
}
