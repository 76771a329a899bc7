package dict

import (
	"testing"
)

const testOrigin = 0x3c51

// testWord builds one in-memory word record.
type testWord struct {
	name   string
	flags  byte
	link   uint16
	code   uint16
	params []byte
}

func (w testWord) appendTo(buf []byte) []byte {
	for i := 0; i < len(w.name); i++ {
		b := w.name[i] & 0x7f
		if i == len(w.name)-1 {
			b |= 0x80
		}
		buf = append(buf, b)
	}
	n := len(w.params) + headerSize
	buf = append(buf, byte(n), byte(n>>8))
	buf = append(buf, byte(w.link), byte(w.link>>8))
	buf = append(buf, w.flags)
	buf = append(buf, byte(w.code), byte(w.code>>8))
	return append(buf, w.params...)
}

// testPayload wraps word records as a tape data block payload.
func testPayload(words ...testWord) []byte {
	buf := []byte{0xff}
	for _, w := range words {
		buf = w.appendTo(buf)
	}
	var sum byte
	for _, b := range buf[1:] {
		sum ^= b
	}
	return append(buf, sum)
}

// cells encodes a sequence of code addresses.
func cells(addrs ...uint16) []byte {
	buf := make([]byte, 0, 2*len(addrs))
	for _, addr := range addrs {
		buf = append(buf, byte(addr), byte(addr>>8))
	}
	return buf
}

func concat(parts ...[]byte) []byte {
	var buf []byte
	for _, part := range parts {
		buf = append(buf, part...)
	}
	return buf
}

const (
	codeColon    = 0x0ec3
	codeCreate   = 0x0fec
	codeVariable = 0x0ff0
	codeConstant = 0x0ff5
	codeDefiner  = 0x1085
	codeCompiler = 0x1108

	wordDUP   = 0x086b
	wordMul   = 0x0d6d
	wordSemi  = 0x04b6
	wordLit   = 0x1011
	wordASCII = 0x104b
	wordFloat = 0x1064
	wordParen = 0x1379
	wordDotQ  = 0x1396
	wordIF    = 0x1283
	wordTHEN  = 0x12a4
	wordDOES  = 0x10e8
)

func testLogf(t *testing.T) Option {
	return WithLogf(func(mess string, args ...interface{}) {
		t.Logf(mess, args...)
	})
}
