package dict

//go:generate go run ../../scripts/gen_builtins.go -- builtins.txt builtins_gen.go

import (
	"fmt"
	"sort"
)

// Kind selects how a vocabulary entry decodes.
//
// Kinds before KindColon are threaded references found in word bodies; the
// rest are defining behaviors found in code fields.
type Kind uint8

const (
	KindWord    Kind = iota // named reference, one cell
	KindSkip                // named marker followed by Entry.Size-2 bytes of host padding
	KindLiteral             // 16-bit number in the next cell
	KindChar                // ASCII followed by one character byte
	KindFloat               // floating point number in the next two cells
	KindString              // ." followed by a counted string
	KindComment             // ( followed by counted comment text

	KindColon    // : NAME
	KindCreate   // CREATE NAME n ALLOT
	KindVariable // n VARIABLE NAME
	KindConstant // n CONSTANT NAME
	KindDefiner  // DEFINER NAME
	KindCompiler // n COMPILER NAME
	KindDefined  // instance of a word made by DEFINER

	kindMax
)

var kindNames = [kindMax]string{
	"word",
	"skip",
	"literal",
	"char",
	"float",
	"string",
	"comment",

	"colon",
	"create",
	"variable",
	"constant",
	"definer",
	"compiler",
	"defined",
}

func (k Kind) String() string {
	if k < kindMax {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Defining returns true if entries of this kind may appear in a code field.
func (k Kind) Defining() bool { return k >= KindColon && k < kindMax }

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown entry kind %q", s)
}

// Entry describes the behavior behind one code address.
type Entry struct {
	Kind Kind

	// Name is the token emitted for threaded references. For KindDefined it
	// is instead the name of the DEFINER word that created the entry.
	Name string

	// Size is the number of bytes a KindSkip reference occupies, including
	// its own address cell.
	Size int
}

func (e Entry) String() string {
	switch {
	case e.Kind == KindSkip:
		return fmt.Sprintf("%v/%d %q", e.Kind, e.Size, e.Name)
	case e.Name != "":
		return fmt.Sprintf("%v %q", e.Kind, e.Name)
	default:
		return e.Kind.String()
	}
}

// Registration pairs an entry with the address it is keyed by.
type Registration struct {
	Addr  uint16
	Entry Entry
}

func (reg Registration) String() string { return fmt.Sprintf("0x%04x %v", reg.Addr, reg.Entry) }

// Vocabulary maps code addresses to entries for a single decompile run.
// It starts as a copy of the built-in ROM vocabulary and only ever grows.
type Vocabulary struct {
	entries map[uint16]Entry
	added   []Registration
}

// NewVocabulary returns a vocabulary seeded with the built-in entries.
func NewVocabulary() *Vocabulary {
	voc := &Vocabulary{entries: make(map[uint16]Entry, len(builtins)+64)}
	for _, reg := range builtins {
		voc.entries[reg.Addr] = reg.Entry
	}
	return voc
}

// Lookup returns the entry keyed by addr.
func (voc *Vocabulary) Lookup(addr uint16) (Entry, bool) {
	e, ok := voc.entries[addr]
	return e, ok
}

// Register adds or replaces the entry at addr, and records it in Added.
func (voc *Vocabulary) Register(addr uint16, e Entry) {
	if voc.entries == nil {
		voc.entries = make(map[uint16]Entry)
	}
	voc.entries[addr] = e
	voc.added = append(voc.added, Registration{addr, e})
}

// Added returns every registration made since the vocabulary was created,
// in order.
func (voc *Vocabulary) Added() []Registration { return voc.added }

// Len returns the number of addresses with an entry.
func (voc *Vocabulary) Len() int { return len(voc.entries) }

// Builtins returns the ROM vocabulary sorted by address.
func Builtins() []Registration {
	regs := make([]Registration, len(builtins))
	copy(regs, builtins[:])
	sort.Slice(regs, func(i, j int) bool { return regs[i].Addr < regs[j].Addr })
	return regs
}
