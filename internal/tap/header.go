package tap

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Program types stored in header blocks.
const (
	TypeDictionary = 0x00
	TypeBytes      = 0x20
)

const headerSize = 16

// UnsupportedTypeError reports a header whose program type cannot be decoded.
type UnsupportedTypeError struct {
	Type byte
}

func (err UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported program type [0x%x]", err.Type)
}

// Header is the metadata carried by a flagged header block.
type Header struct {
	Flag   byte
	Type   byte
	Name   string
	Length uint16
	Origin uint16 // load address of the data block
}

// ParseHeader decodes a flagged header block.
func ParseHeader(blk Block) (Header, error) {
	if len(blk) < headerSize {
		return Header{}, fmt.Errorf("header block of %v bytes: %w", len(blk), ErrTruncated)
	}
	return Header{
		Flag:   blk[0],
		Type:   blk[1],
		Name:   strings.TrimRight(string(blk[2:12]), " "),
		Length: binary.LittleEndian.Uint16(blk[12:14]),
		Origin: binary.LittleEndian.Uint16(blk[14:16]),
	}, nil
}
