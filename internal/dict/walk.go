package dict

import (
	"strings"
)

// Record is one word record split out of a dictionary payload.
//
// In memory a record is laid out as:
//
//	name   n bytes, bit 7 set on the last
//	length 2 bytes, counting from here to the end of the record
//	link   2 bytes, address of the previous record's length field
//	flags  1 byte, name length; bit 6 marks IMMEDIATE
//	code   2 bytes, the code field
//	params length-7 bytes
type Record struct {
	Name      string
	Flags     byte
	Length    int
	Link      uint16
	CodeField uint16
	Params    []byte

	Index  int    // payload index of the first name byte
	Start  int    // address of the first name byte
	Offset int    // Start relative to the dictionary origin
	Addr   uint16 // address of the code field; other words refer to this
}

const headerSize = 7

// Immediate returns true if the word runs during compilation.
func (rec Record) Immediate() bool { return rec.Flags&0x40 != 0 }

// Walk splits payload into records. The payload is a data block as stored
// on tape: a leading flag byte, the dictionary bytes, and a trailing
// checksum byte.
//
// Every record's code field address is registered into the vocabulary as
// soon as it is found, so that once Walk returns any record may refer to any
// other, including itself.
func (dc *Decompiler) Walk(payload []byte) ([]Record, error) {
	var recs []Record
	addr := int(dc.Origin)
	end := len(payload) - 1
	for idx := 1; idx < end; {
		rec, next, err := splitRecord(payload, idx, end)
		if err != nil {
			return nil, err
		}
		cfa := addr + len(rec.Name) + headerSize - 2
		if cfa > 0xffff {
			return nil, MalformedError{rec.Index, "word [" + rec.Name + "] lies past the end of memory"}
		}
		rec.Start = addr
		rec.Offset = addr - int(dc.Origin)
		rec.Addr = uint16(cfa)
		addr += rec.Length + len(rec.Name)

		dc.Vocab.Register(rec.Addr, Entry{Kind: KindWord, Name: rec.Name})
		dc.logf("+", "%v @0x%04x cfa:0x%04x code:0x%04x params:%v",
			rec.Name, rec.Start, rec.Addr, rec.CodeField, len(rec.Params))

		recs = append(recs, rec)
		idx = next
	}
	return recs, nil
}

func splitRecord(p []byte, idx, end int) (rec Record, next int, err error) {
	rec.Index = idx

	var name strings.Builder
	for {
		if idx >= end {
			return rec, 0, MalformedError{rec.Index, "unterminated name"}
		}
		b := p[idx]
		idx++
		name.WriteRune(rune(b & 0x7f))
		if b&0x80 != 0 {
			break
		}
	}
	rec.Name = name.String()

	if idx+headerSize > end {
		return rec, 0, MalformedError{rec.Index, "truncated header for word [" + rec.Name + "]"}
	}
	rec.Length = int(le16(p, idx))
	rec.Link = le16(p, idx+2)
	rec.Flags = p[idx+4]
	rec.CodeField = le16(p, idx+5)
	idx += headerSize

	if rec.Length < headerSize {
		return rec, 0, MalformedError{rec.Index, "record length shorter than header for word [" + rec.Name + "]"}
	}
	n := rec.Length - headerSize
	if idx+n > end {
		return rec, 0, MalformedError{rec.Index, "parameters of word [" + rec.Name + "] run past the end of the payload"}
	}
	rec.Params = p[idx : idx+n : idx+n]
	return rec, idx + n, nil
}

// le16 reads a little-endian cell at p[i:i+2]; missing bytes read as zero.
func le16(p []byte, i int) uint16 {
	var v uint16
	if i >= 0 && i < len(p) {
		v = uint16(p[i])
	}
	if i+1 >= 0 && i+1 < len(p) {
		v |= uint16(p[i+1]) << 8
	}
	return v
}
