package dict

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jcorbin/acetap/internal/acechar"
)

// maxInlineCreate is the largest CREATE body rendered as byte literals;
// anything larger is rendered as a bare ALLOT.
const maxInlineCreate = 152

// Definition is the rendered header of one record.
type Definition struct {
	Header string
	Body   int            // parameter offset where threaded decoding resumes
	Adds   []Registration // entries the definition adds to the vocabulary
}

// Define renders the header of rec, which has e as its code field entry.
// The vocabulary is never modified directly; any new entries are returned in
// Definition.Adds for the caller to register.
func (e Entry) Define(rec Record) (Definition, error) {
	p := rec.Params
	switch e.Kind {
	case KindColon:
		return Definition{Header: ": " + rec.Name}, nil

	case KindCreate:
		if len(p) > maxInlineCreate {
			return Definition{
				Header: fmt.Sprintf("CREATE %v %d ALLOT", rec.Name, len(p)),
				Body:   len(p),
			}, nil
		}
		return Definition{
			Header: fmt.Sprintf("( May be CREATE %v %d ALLOT )\nCREATE %v %v",
				rec.Name, len(p), rec.Name, byteLiterals(p)),
			Body: len(p),
		}, nil

	case KindVariable:
		return Definition{
			Header: fmt.Sprintf("%d VARIABLE %v", le16(p, 0), rec.Name),
			Body:   len(p),
		}, nil

	case KindConstant:
		return Definition{
			Header: fmt.Sprintf("%d CONSTANT %v", le16(p, 0), rec.Name),
			Body:   len(p),
		}, nil

	case KindDefiner:
		return Definition{
			Header: "DEFINER " + rec.Name,
			Body:   2,
			Adds: []Registration{{
				Addr:  le16(p, 0),
				Entry: Entry{Kind: KindDefined, Name: rec.Name},
			}},
		}, nil

	case KindCompiler:
		runs := int(le16(p, 0))
		at := runs - (rec.Start + len(rec.Name) + 10)
		if at < 0 || at >= len(p) {
			return Definition{}, TruncatedError{
				Word:        rec.Name,
				Offset:      rec.Offset,
				ParamOffset: at,
				Need:        1,
				Have:        0,
			}
		}
		return Definition{
			Header: fmt.Sprintf("%d COMPILER %v", p[at], rec.Name),
			Body:   2,
		}, nil

	case KindDefined:
		return Definition{
			Header: fmt.Sprintf("%v %v %v", e.Name, rec.Name, byteLiterals(p)),
			Body:   len(p),
		}, nil
	}
	return Definition{}, fmt.Errorf("%v entry cannot define word [%v]", e.Kind, rec.Name)
}

// Render returns any text decoded from the inline data that follows a
// reference to e at parameter offset i of rec.
func (e Entry) Render(rec Record, i int) (string, bool, error) {
	p := rec.Params
	need := func(n int) error {
		if have := len(p) - i; have < n {
			return TruncatedError{rec.Name, rec.Offset, i, n, have}
		}
		return nil
	}

	switch e.Kind {
	case KindLiteral:
		return strconv.Itoa(int(le16(p, i+2))), true, nil

	case KindChar:
		if err := need(3); err != nil {
			return "", false, err
		}
		return acechar.Decode(p[i+2]), true, nil

	case KindFloat:
		if err := need(6); err != nil {
			return "", false, err
		}
		return FormatFloat(p[i+2], p[i+3], p[i+4], p[i+5]), true, nil

	case KindString:
		return acechar.DecodeString(counted(p, i)) + `"`, true, nil

	case KindComment:
		return "( " + acechar.Strip(counted(p, i)) + " )\n", true, nil
	}
	return "", false, nil
}

// Advance returns the parameter offset following a reference to e at offset i.
func (e Entry) Advance(p []byte, i int) int {
	switch e.Kind {
	case KindSkip:
		return i + e.Size
	case KindLiteral:
		return i + 4
	case KindChar:
		return i + 3
	case KindFloat:
		return i + 6
	case KindString, KindComment:
		return i + 4 + int(le16(p, i+2))
	}
	return i + 2
}

// counted returns the bytes of a counted payload at p[i+2:], clipped to the
// end of p.
func counted(p []byte, i int) []byte {
	lo := i + 4
	hi := lo + int(le16(p, i+2))
	if lo > len(p) {
		lo = len(p)
	}
	if hi > len(p) {
		hi = len(p)
	}
	return p[lo:hi]
}

func byteLiterals(p []byte) string {
	parts := make([]string, len(p))
	for i, b := range p {
		parts[i] = strconv.Itoa(int(b)) + " c,"
	}
	return strings.Join(parts, " ")
}
