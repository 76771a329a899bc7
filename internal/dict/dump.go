package dict

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

type fmtBuf interface {
	Len() int
	Write(p []byte) (n int, err error)
	WriteByte(c byte) error
	WriteRune(r rune) (n int, err error)
	WriteString(s string) (n int, err error)
}

// Dumper writes a listing of walked records, one line per record, naming
// each record's defining behavior as resolved through Vocab.
type Dumper struct {
	Out   io.Writer
	Vocab *Vocabulary

	// RawParams adds a hex line of parameter bytes after each record.
	RawParams bool

	nameWidth int
}

// Dump writes the listing for recs.
func (dump Dumper) Dump(recs []Record) error {
	for _, rec := range recs {
		if n := len(rec.Name); n > dump.nameWidth {
			dump.nameWidth = n
		}
	}

	var buf bytes.Buffer
	for _, rec := range recs {
		dump.formatRecord(&buf, rec)
		buf.WriteByte('\n')
		if dump.RawParams && len(rec.Params) > 0 {
			fmt.Fprintf(&buf, "    % x\n", rec.Params)
		}
		if _, err := buf.WriteTo(dump.Out); err != nil {
			return err
		}
	}
	return nil
}

func (dump Dumper) formatRecord(buf fmtBuf, rec Record) {
	fmt.Fprintf(buf, "@0x%04x +%-5v %-*v cfa:0x%04x ", rec.Start, rec.Offset, dump.nameWidth, rec.Name, rec.Addr)

	buf.WriteString("code:")
	dump.formatCode(buf, rec.CodeField)

	buf.WriteString(" params:")
	buf.WriteString(strconv.Itoa(len(rec.Params)))

	if rec.Immediate() {
		buf.WriteString(" immediate")
	}
}

func (dump Dumper) formatCode(buf fmtBuf, addr uint16) {
	var entry Entry
	var known bool
	if dump.Vocab != nil {
		entry, known = dump.Vocab.Lookup(addr)
	}
	switch {
	case !known:
		fmt.Fprintf(buf, "0x%04x?", addr)
	case entry.Kind == KindDefined:
		buf.WriteString(entry.Name)
	default:
		buf.WriteString(entry.Kind.String())
	}
}
