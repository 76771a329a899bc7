// Package acechar renders bytes of the Jupiter Ace character set as source
// text.
//
// The Ace uses 7-bit ASCII for printable characters. Bit 7 selects inverse
// video, two short runs of codes select block graphics, and the remaining
// low codes are terminal controls that have no textual form.
package acechar

import (
	"fmt"
	"strings"
)

// Class names how a raw character byte renders in source text.
type Class uint8

const (
	// Control codes are dropped.
	Control Class = iota
	// Graphic codes render as _GR(0x..) escapes.
	Graphic
	// Inverse video codes render as _INV(c) escapes.
	Inverse
	// Plain codes render as their ASCII character.
	Plain
)

var classNames = [...]string{"control", "graphic", "inverse", "plain"}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Span is an inclusive range of character codes.
type Span struct{ Lo, Hi byte }

// ControlSpans lists the codes that have no textual form.
var ControlSpans = [...]Span{
	{0x01, 0x0c},
	{0x0e, 0x0f},
	{0x19, 0x1f},
	{0x80, 0x8f},
	{0x98, 0x9f},
}

// GraphicSpans lists the block graphic codes, normal and inverse.
var GraphicSpans = [...]Span{
	{0x10, 0x17},
	{0x90, 0x97},
}

var classes [256]Class

func init() {
	for i := range classes {
		b := byte(i)
		switch {
		case inSpans(b, ControlSpans[:]):
			classes[i] = Control
		case inSpans(b, GraphicSpans[:]):
			classes[i] = Graphic
		case b&0x80 != 0:
			classes[i] = Inverse
		default:
			classes[i] = Plain
		}
	}
}

func inSpans(b byte, spans []Span) bool {
	for _, sp := range spans {
		if sp.Lo <= b && b <= sp.Hi {
			return true
		}
	}
	return false
}

// Classify returns the rendering class of b.
func Classify(b byte) Class { return classes[b] }

// Decode renders one character code; control codes render as "".
func Decode(b byte) string {
	switch classes[b] {
	case Control:
		return ""
	case Graphic:
		return fmt.Sprintf("_GR(0x%x)", b)
	case Inverse:
		return "_INV(" + string(rune(b&0x7f)) + ")"
	default:
		return string(rune(b & 0x7f))
	}
}

// DecodeString renders each byte of p with Decode.
func DecodeString(p []byte) string {
	var sb strings.Builder
	for _, b := range p {
		sb.WriteString(Decode(b))
	}
	return sb.String()
}

// Strip renders p by clearing bit 7 of every byte, as comment text is
// stored.
func Strip(p []byte) string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, b := range p {
		sb.WriteRune(rune(b & 0x7f))
	}
	return sb.String()
}
