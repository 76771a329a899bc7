// Package lineio formats decompiled source tokens into wrapped lines.
package lineio

import (
	"io"
	"strings"
)

// DefaultWidth is the line width used when none is given.
const DefaultWidth = 80

// Formatter writes tokens separated by single spaces, starting a new line
// before any token that would run past Width columns. Tokens that carry a
// newline end the current line where they stand; the text after a token's
// last newline starts the next line.
//
// Write errors are sticky: after the first one, Add does nothing and Flush
// returns it.
type Formatter struct {
	// Width is the wrapping column; zero or less disables wrapping.
	Width int

	out WriteFlusher
	buf strings.Builder
	err error
}

// NewFormatter returns a formatter writing to w.
func NewFormatter(w io.Writer, width int) *Formatter {
	return &Formatter{Width: width, out: NewWriteFlusher(w)}
}

// Add appends one token, followed by a space.
func (f *Formatter) Add(tok string) {
	if f.err != nil {
		return
	}
	n := len(tok) + 1
	if f.Width > 0 && f.buf.Len()+n > f.Width {
		f.buf.WriteByte('\n')
		f.emit()
	}
	f.buf.WriteString(tok)
	f.buf.WriteByte(' ')
	if strings.IndexByte(tok, '\n') >= 0 {
		f.emit()
	}
}

// Flush writes any partial line and flushes the underlying writer.
func (f *Formatter) Flush() error {
	if f.buf.Len() > 0 {
		f.emit()
	}
	if f.err == nil {
		f.err = f.out.Flush()
	}
	return f.err
}

// WriteTokens adds all tokens and flushes.
func (f *Formatter) WriteTokens(toks []string) error {
	for _, tok := range toks {
		f.Add(tok)
	}
	return f.Flush()
}

func (f *Formatter) emit() {
	if f.err == nil {
		_, f.err = io.WriteString(f.out, f.buf.String())
	}
	f.buf.Reset()
}
