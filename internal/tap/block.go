// Package tap reads and writes Jupiter Ace tape images.
//
// A TAP file is a sequence of blocks, each a little-endian 16-bit length
// followed by that many payload bytes. The last payload byte is a checksum.
// Programs are stored as a header block followed by a data block.
package tap

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrExhausted is returned when a tape ends cleanly between blocks.
	ErrExhausted = errors.New("tape exhausted")

	// ErrTruncated is returned when a tape ends inside a block, or between
	// the header and data blocks of a program.
	ErrTruncated = errors.New("tape truncated")
)

// CorruptError reports a block whose stored checksum does not match.
type CorruptError struct {
	Have byte // stored in the block
	Want byte // computed from the payload
}

func (err CorruptError) Error() string {
	return fmt.Sprintf("block checksum 0x%02x, expected 0x%02x", err.Have, err.Want)
}

// Block is the payload of one tape block, without its length prefix.
type Block []byte

// ReadBlock reads one length-prefixed block from r.
func ReadBlock(r io.Reader) (Block, error) {
	var hdr [2]byte
	switch _, err := io.ReadFull(r, hdr[:]); err {
	case nil:
	case io.EOF:
		return nil, ErrExhausted
	case io.ErrUnexpectedEOF:
		return nil, fmt.Errorf("block length: %w", ErrTruncated)
	default:
		return nil, err
	}

	n := binary.LittleEndian.Uint16(hdr[:])
	if n == 0 {
		return nil, fmt.Errorf("empty block: %w", ErrTruncated)
	}
	blk := make(Block, n)
	switch _, err := io.ReadFull(r, blk); err {
	case nil:
		return blk, nil
	case io.EOF, io.ErrUnexpectedEOF:
		return nil, fmt.Errorf("block of %v bytes: %w", n, ErrTruncated)
	default:
		return nil, err
	}
}

// Checksum computes the XOR checksum of the block. A flagged block starts
// with a flag byte which is left out of the sum.
func (blk Block) Checksum(flagged bool) byte {
	if len(blk) == 0 {
		return 0
	}
	p := blk[:len(blk)-1]
	if flagged && len(p) > 0 {
		p = p[1:]
	}
	var sum byte
	for _, b := range p {
		sum ^= b
	}
	return sum
}

// Sum returns the checksum stored in the block.
func (blk Block) Sum() byte {
	if len(blk) == 0 {
		return 0
	}
	return blk[len(blk)-1]
}

// Verify returns a CorruptError if the stored checksum is wrong.
func (blk Block) Verify(flagged bool) error {
	if have, want := blk.Sum(), blk.Checksum(flagged); have != want {
		return CorruptError{have, want}
	}
	return nil
}

// IsV2Header returns true if the block is a header block carrying a leading
// flag byte, as written by newer emulators.
func (blk Block) IsV2Header() bool { return len(blk) == 27 && blk[0] == 0x00 }

// WriteTo writes the block with its length prefix.
func (blk Block) WriteTo(w io.Writer) (int64, error) {
	if len(blk) > 0xffff {
		return 0, fmt.Errorf("block of %v bytes is too large", len(blk))
	}
	var hdr [2]byte
	binary.LittleEndian.PutUint16(hdr[:], uint16(len(blk)))
	n, err := w.Write(hdr[:])
	if err == nil {
		var m int
		m, err = w.Write(blk)
		n += m
	}
	return int64(n), err
}

// seal returns payload with its flagged checksum appended.
func seal(payload []byte) Block {
	blk := append(Block(payload), 0)
	blk[len(blk)-1] = blk.Checksum(true)
	return blk
}
