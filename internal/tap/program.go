package tap

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Pair is a header block and the data block that follows it.
type Pair struct {
	Header Block
	Data   Block
}

// ReadPair reads the next header and data block from r. A tape that ends
// cleanly before the header returns ErrExhausted; one that ends before the
// data block returns ErrTruncated.
func ReadPair(r io.Reader) (Pair, error) {
	var p Pair
	var err error
	if p.Header, err = ReadBlock(r); err != nil {
		return Pair{}, err
	}
	p.Data, err = ReadBlock(r)
	if errors.Is(err, ErrExhausted) {
		err = fmt.Errorf("missing data block: %w", ErrTruncated)
	}
	if err != nil {
		return Pair{}, err
	}
	return p, nil
}

// Scan calls fn with every pair on the tape until it is exhausted.
func Scan(r io.Reader, fn func(Pair) error) error {
	for {
		p, err := ReadPair(r)
		if errors.Is(err, ErrExhausted) {
			return nil
		} else if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
	}
}

// V2 returns true if both blocks carry a leading flag byte.
func (p Pair) V2() bool { return p.Header.IsV2Header() }

// Name returns the program name stored in the header, with trailing spaces
// trimmed.
func (p Pair) Name() string {
	start := 1
	if p.V2() {
		start = 2
	}
	end := start + 10
	if end > len(p.Header) {
		end = len(p.Header)
	}
	if start > end {
		return ""
	}
	return strings.TrimSpace(string(p.Header[start:end]))
}

// Verify checks both block checksums.
func (p Pair) Verify() error {
	v2 := p.V2()
	if err := p.Header.Verify(v2); err != nil {
		return fmt.Errorf("header block: %w", err)
	}
	if err := p.Data.Verify(v2); err != nil {
		return fmt.Errorf("data block: %w", err)
	}
	return nil
}

// WriteTo writes both blocks.
func (p Pair) WriteTo(w io.Writer) (int64, error) {
	n, err := p.Header.WriteTo(w)
	if err == nil {
		var m int64
		m, err = p.Data.WriteTo(w)
		n += m
	}
	return n, err
}

// Program is a dictionary ready to decompile.
type Program struct {
	Header
	Data Block
}

// ReadProgram reads a verified dictionary program from the start of r.
func ReadProgram(r io.Reader) (Program, error) {
	hb, err := ReadBlock(r)
	if err != nil {
		return Program{}, fmt.Errorf("header block: %w", err)
	}
	if err := hb.Verify(true); err != nil {
		return Program{}, fmt.Errorf("header block: %w", err)
	}
	hdr, err := ParseHeader(hb)
	if err != nil {
		return Program{}, err
	}
	if hdr.Type != TypeDictionary {
		return Program{}, UnsupportedTypeError{hdr.Type}
	}

	db, err := ReadBlock(r)
	if errors.Is(err, ErrExhausted) {
		err = ErrTruncated
	}
	if err != nil {
		return Program{}, fmt.Errorf("data block: %w", err)
	}
	if err := db.Verify(true); err != nil {
		return Program{}, fmt.Errorf("data block: %w", err)
	}
	return Program{hdr, db}, nil
}
