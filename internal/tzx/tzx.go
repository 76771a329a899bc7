// Package tzx reads and writes the subset of TZX tape images that carry
// Jupiter Ace programs, and converts them to and from TAP images.
package tzx

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	signature = "ZXTape!"
	eofMarker = 0x1a

	// MajorVersion and MinorVersion are written into new images.
	MajorVersion = 1
	MinorVersion = 20

	maxCustomInfo = 1 << 24
)

// ErrNotTZX is returned when an image lacks the TZX signature.
var ErrNotTZX = errors.New("not a valid TZX file")

// UnsupportedBlockError reports a block id that cannot be parsed.
type UnsupportedBlockError struct {
	ID     byte
	Offset int64
}

func (err UnsupportedBlockError) Error() string {
	return fmt.Sprintf("unsupported TZX block [ID = %02X] at offset %v", err.ID, err.Offset)
}

// Block ids.
const (
	IDStandardSpeed = 0x10
	IDText          = 0x30
	IDMessage       = 0x31
	IDArchiveInfo   = 0x32
	IDHardwareType  = 0x33
	IDCustomInfo    = 0x35
	IDGlue          = 0x5a
)

// Block is one parsed TZX block.
type Block interface {
	ID() byte
}

// DataBlock is a standard speed data block, holding one TAP block payload.
type DataBlock struct {
	Pause uint16 // milliseconds of silence after the block
	Data  []byte
}

// TextBlock is a text description.
type TextBlock struct{ Text string }

// MessageBlock is a message shown for Time seconds.
type MessageBlock struct {
	Time    byte
	Message string
}

// ArchiveText is one archive info entry.
type ArchiveText struct {
	Kind byte
	Text string
}

// ArchiveInfo describes the tape contents.
type ArchiveInfo struct{ Entries []ArchiveText }

// HardwareInfo is one hardware type entry.
type HardwareInfo struct{ Type, Ident, Info byte }

// HardwareType lists hardware the tape runs on.
type HardwareType struct{ Entries []HardwareInfo }

// CustomInfo carries opaque identified data.
type CustomInfo struct {
	Ident string
	Info  []byte
}

// Glue marks where two images were concatenated.
type Glue struct{ Major, Minor byte }

func (DataBlock) ID() byte    { return IDStandardSpeed }
func (TextBlock) ID() byte    { return IDText }
func (MessageBlock) ID() byte { return IDMessage }
func (ArchiveInfo) ID() byte  { return IDArchiveInfo }
func (HardwareType) ID() byte { return IDHardwareType }
func (CustomInfo) ID() byte   { return IDCustomInfo }
func (Glue) ID() byte         { return IDGlue }

// Image is a parsed TZX image.
type Image struct {
	Major, Minor byte
	Blocks       []Block
}

// DataBlocks returns every standard speed data block, in order.
func (img Image) DataBlocks() []DataBlock {
	var dbs []DataBlock
	for _, blk := range img.Blocks {
		if db, ok := blk.(DataBlock); ok {
			dbs = append(dbs, db)
		}
	}
	return dbs
}

type reader struct {
	*bufio.Reader
	off int64
}

func (r *reader) read(n int) ([]byte, error) {
	buf := make([]byte, n)
	m, err := io.ReadFull(r.Reader, buf)
	r.off += int64(m)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = fmt.Errorf("block truncated at offset %v: %w", r.off, io.ErrUnexpectedEOF)
	}
	return buf, err
}

func (r *reader) u8() (byte, error) {
	b, err := r.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) u16() (uint16, error) {
	b, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) u32() (uint32, error) {
	b, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) counted() (string, error) {
	n, err := r.u8()
	if err != nil {
		return "", err
	}
	b, err := r.read(int(n))
	return string(b), err
}

// Read parses a TZX image.
func Read(rd io.Reader) (Image, error) {
	r := reader{Reader: bufio.NewReader(rd)}

	var img Image
	head, err := r.read(len(signature) + 3)
	if err != nil || string(head[:len(signature)]) != signature || head[len(signature)] != eofMarker {
		return Image{}, ErrNotTZX
	}
	img.Major, img.Minor = head[len(signature)+1], head[len(signature)+2]

	for {
		off := r.off
		id, err := r.ReadByte()
		if err == io.EOF {
			return img, nil
		} else if err != nil {
			return Image{}, err
		}
		r.off++

		blk, err := r.block(id)
		if err != nil {
			if errors.Is(err, errUnsupported) {
				err = UnsupportedBlockError{id, off}
			}
			return Image{}, err
		}
		img.Blocks = append(img.Blocks, blk)
	}
}

var errUnsupported = errors.New("unsupported block")

func (r *reader) block(id byte) (Block, error) {
	switch id {
	case IDStandardSpeed:
		var db DataBlock
		pause, err := r.u16()
		if err != nil {
			return nil, err
		}
		n, err := r.u16()
		if err != nil {
			return nil, err
		}
		db.Pause = pause
		db.Data, err = r.read(int(n))
		return db, err

	case IDText:
		s, err := r.counted()
		return TextBlock{s}, err

	case IDMessage:
		t, err := r.u8()
		if err != nil {
			return nil, err
		}
		s, err := r.counted()
		return MessageBlock{t, s}, err

	case IDArchiveInfo:
		if _, err := r.u16(); err != nil {
			return nil, err
		}
		n, err := r.u8()
		if err != nil {
			return nil, err
		}
		var info ArchiveInfo
		for i := 0; i < int(n); i++ {
			kind, err := r.u8()
			if err != nil {
				return nil, err
			}
			s, err := r.counted()
			if err != nil {
				return nil, err
			}
			info.Entries = append(info.Entries, ArchiveText{kind, s})
		}
		return info, nil

	case IDHardwareType:
		n, err := r.u8()
		if err != nil {
			return nil, err
		}
		var hw HardwareType
		for i := 0; i < int(n); i++ {
			b, err := r.read(3)
			if err != nil {
				return nil, err
			}
			hw.Entries = append(hw.Entries, HardwareInfo{b[0], b[1], b[2]})
		}
		return hw, nil

	case IDCustomInfo:
		ident, err := r.read(10)
		if err != nil {
			return nil, err
		}
		n, err := r.u32()
		if err != nil {
			return nil, err
		}
		if n > maxCustomInfo {
			return nil, fmt.Errorf("custom info block of %v bytes is too large", n)
		}
		info, err := r.read(int(n))
		return CustomInfo{string(ident), info}, err

	case IDGlue:
		b, err := r.read(9)
		if err != nil {
			return nil, err
		}
		return Glue{b[7], b[8]}, nil
	}
	return nil, errUnsupported
}
