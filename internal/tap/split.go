package tap

import (
	"fmt"
	"io"
)

// Split calls emit with a unique file name for every program on the tape.
// Checksums are not verified; a program is copied as found.
func Split(r io.Reader, emit func(name string, p Pair) error) error {
	var names Namer
	return Scan(r, func(p Pair) error {
		return emit(names.FileName(p.Name()), p)
	})
}

// List writes a description of every program on the tape to w.
func List(w io.Writer, r io.Reader) error {
	return Scan(r, func(p Pair) error {
		v2 := p.V2()
		_, err := fmt.Fprintf(w, "\t%s\n\t\tHeader Block: %d bytes%s\n\t\t  Data Block: %d bytes%s\n",
			p.Name(),
			len(p.Header), crcNote(p.Header, v2),
			len(p.Data), crcNote(p.Data, v2))
		return err
	})
}

func crcNote(blk Block, flagged bool) string {
	if err := blk.Verify(flagged); err != nil {
		return ", CRC ERROR"
	}
	return ""
}
