package dict

import (
	"strings"
)

// Decompiler turns the records of one dictionary back into source tokens.
//
// A Decompiler owns its vocabulary for the whole run: walking registers every
// word, and decoding DEFINER words registers new defining behaviors that later
// records depend on. Records must therefore be decoded in dictionary order,
// and a Decompiler must not be shared between goroutines.
type Decompiler struct {
	logging

	Vocab  *Vocabulary
	Origin uint16
}

// New returns a Decompiler for a dictionary loaded at origin.
func New(origin uint16, opts ...Option) *Decompiler {
	dc := &Decompiler{Origin: origin}
	Options(opts...).apply(dc)
	if dc.Vocab == nil {
		dc.Vocab = NewVocabulary()
	}
	return dc
}

// Decompile walks payload and decodes all of its records.
func (dc *Decompiler) Decompile(payload []byte) ([]string, error) {
	recs, err := dc.Walk(payload)
	if err != nil {
		return nil, err
	}
	return dc.Decode(recs)
}

// Decode renders records, in order, into source tokens. Tokens are meant to
// be written separated by single spaces; any line structure is carried by
// newlines embedded in the tokens themselves.
func (dc *Decompiler) Decode(recs []Record) (tokens []string, err error) {
	for _, rec := range recs {
		if tokens, err = dc.decodeRecord(tokens, rec); err != nil {
			return nil, err
		}
	}
	return tokens, nil
}

func (dc *Decompiler) decodeRecord(tokens []string, rec Record) ([]string, error) {
	definer, ok := dc.Vocab.Lookup(rec.CodeField)
	if !ok {
		return nil, UnknownDefinerError{rec.CodeField, rec.Name, rec.Offset}
	}
	if !definer.Kind.Defining() {
		return nil, DefinerMismatchError{rec.CodeField, rec.Name, rec.Offset, definer}
	}

	def, err := definer.Define(rec)
	if err != nil {
		return nil, err
	}
	for _, reg := range def.Adds {
		dc.logf("*", "%v registers %v", rec.Name, reg)
		dc.Vocab.Register(reg.Addr, reg.Entry)
	}
	dc.logf("=", "%q via %v", def.Header, definer.Kind)
	tokens = append(tokens, "\n"+def.Header+"\n")

	defer dc.withLogPrefix("\t")()
	for i := def.Body; i < len(rec.Params); {
		addr := le16(rec.Params, i)
		ref, ok := dc.Vocab.Lookup(addr)
		if !ok {
			return nil, UnknownWordError{addr, rec.Name, rec.Offset, i}
		}
		if ref.Name != "" && !ref.Kind.Defining() {
			tokens = append(tokens, ref.Name)
		}
		text, ok, err := ref.Render(rec, i)
		if err != nil {
			return nil, err
		}
		if ok {
			tokens = append(tokens, text)
		}
		next := ref.Advance(rec.Params, i)
		dc.logf("-", "+%v 0x%04x %v", i, addr, ref)
		i = next
	}

	if rec.Immediate() && strings.HasPrefix(def.Header, ":") {
		tokens = append(tokens, "IMMEDIATE\n")
	}
	return tokens, nil
}
