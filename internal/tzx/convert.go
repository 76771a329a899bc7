package tzx

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/acetap/internal/tap"
)

// DefaultPause is the silence written after each data block, in
// milliseconds.
const DefaultPause = 100

// DataBlockCountError reports an image whose data blocks do not pair up
// into headers and bodies.
type DataBlockCountError struct {
	Count int
}

func (err DataBlockCountError) Error() string {
	return fmt.Sprintf("unexpected number of standard speed data blocks [count = %d]", err.Count)
}

// ToTAP calls emit with a unique TAP file name for every header and data
// block pair in img.
func ToTAP(img Image, emit func(name string, p tap.Pair) error) error {
	dbs := img.DataBlocks()
	if len(dbs)%2 != 0 {
		return DataBlockCountError{len(dbs)}
	}
	var names tap.Namer
	for i := 0; i+1 < len(dbs); i += 2 {
		p := tap.Pair{
			Header: tap.Block(dbs[i].Data),
			Data:   tap.Block(dbs[i+1].Data),
		}
		var name string
		if len(p.Header) >= 12 {
			name = strings.TrimSpace(string(p.Header[2:12]))
		}
		if err := emit(names.FileName(name), p); err != nil {
			return err
		}
	}
	return nil
}

// Writer writes a TZX image.
type Writer struct {
	w io.Writer
}

// NewWriter writes the image header to w.
func NewWriter(w io.Writer) (*Writer, error) {
	head := append([]byte(signature), eofMarker, MajorVersion, MinorVersion)
	if _, err := w.Write(head); err != nil {
		return nil, err
	}
	return &Writer{w}, nil
}

// WriteData writes one standard speed data block.
func (tw *Writer) WriteData(pause uint16, data ...[]byte) error {
	n := 0
	for _, part := range data {
		n += len(part)
	}
	if n > 0xffff {
		return fmt.Errorf("data block of %v bytes is too large", n)
	}
	var head [5]byte
	head[0] = IDStandardSpeed
	binary.LittleEndian.PutUint16(head[1:], pause)
	binary.LittleEndian.PutUint16(head[3:], uint16(n))
	if _, err := tw.w.Write(head[:]); err != nil {
		return err
	}
	for _, part := range data {
		if _, err := tw.w.Write(part); err != nil {
			return err
		}
	}
	return nil
}

// WritePair writes a TAP program as two data blocks. Flag bytes are added
// to blocks from tapes that lack them.
func (tw *Writer) WritePair(p tap.Pair, pause uint16) error {
	var hflag, dflag []byte
	if !p.V2() {
		hflag, dflag = []byte{0x00}, []byte{0xff}
	}
	if err := tw.WriteData(pause, hflag, p.Header); err != nil {
		return err
	}
	return tw.WriteData(pause, dflag, p.Data)
}
