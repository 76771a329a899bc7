package dict

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompile(t *testing.T) {
	sq := testWord{name: "SQ", code: codeColon, params: cells(wordDUP, wordMul, wordSemi)}
	definer := testWord{name: "D", code: codeDefiner, params: cells(0x3d00, wordDUP, wordSemi)}
	defined := testWord{name: "W", code: 0x3d00, params: []byte{1, 2}}

	for _, tc := range []struct {
		name   string
		words  []testWord
		expect []string
	}{
		{
			name:   "constant",
			words:  []testWord{{name: "X", code: codeConstant, params: []byte{0x2a, 0x00}}},
			expect: []string{"\n42 CONSTANT X\n"},
		},
		{
			name:   "variable",
			words:  []testWord{{name: "V", code: codeVariable, params: []byte{0x05, 0x01}}},
			expect: []string{"\n261 VARIABLE V\n"},
		},
		{
			name:   "colon",
			words:  []testWord{sq},
			expect: []string{"\n: SQ\n", "DUP", "*", "\n;\n"},
		},
		{
			name: "immediate",
			words: []testWord{{name: "SQ", flags: 0x42, code: codeColon,
				params: cells(wordDUP, wordMul, wordSemi)}},
			expect: []string{"\n: SQ\n", "DUP", "*", "\n;\n", "IMMEDIATE\n"},
		},
		{
			name: "immediate constant",
			words: []testWord{{name: "X", flags: 0x41, code: codeConstant,
				params: []byte{0x07, 0x00}}},
			expect: []string{"\n7 CONSTANT X\n"},
		},
		{
			name: "comment",
			words: []testWord{{name: "C", code: codeColon, params: concat(
				cells(wordParen), []byte{5, 0}, []byte("HELLO"),
				cells(wordSemi))}},
			expect: []string{"\n: C\n", "( HELLO )\n", "\n;\n"},
		},
		{
			name: "literal",
			words: []testWord{{name: "L", code: codeColon,
				params: cells(wordLit, 1234, wordSemi)}},
			expect: []string{"\n: L\n", "1234", "\n;\n"},
		},
		{
			name: "ascii",
			words: []testWord{{name: "A", code: codeColon, params: concat(
				cells(wordASCII), []byte{'Z'}, cells(0x0aa3, wordSemi))}},
			expect: []string{"\n: A\n", "ASCII", "Z", "EMIT", "\n;\n"},
		},
		{
			name: "string",
			words: []testWord{{name: "P", code: codeColon, params: concat(
				cells(wordDotQ), []byte{2, 0}, []byte("HI"), cells(wordSemi))}},
			expect: []string{"\n: P\n", `."`, `HI"`, "\n;\n"},
		},
		{
			name: "float",
			words: []testWord{{name: "F", code: codeColon, params: concat(
				cells(wordFloat), []byte{0x56, 0x34, 0x12, 0x41}, cells(wordSemi))}},
			expect: []string{"\n: F\n", "1.23456", "\n;\n"},
		},
		{
			name: "if then",
			words: []testWord{{name: "Q", code: codeColon,
				params: cells(wordIF, 0x0002, wordDUP, wordTHEN, wordSemi)}},
			expect: []string{"\n: Q\n", "IF\n", "DUP", "\nTHEN\n", "\n;\n"},
		},
		{
			name:   "create inline",
			words:  []testWord{{name: "B", code: codeCreate, params: []byte{1, 2, 3}}},
			expect: []string{"\n( May be CREATE B 3 ALLOT )\nCREATE B 1 c, 2 c, 3 c,\n"},
		},
		{
			name:  "create inline limit",
			words: []testWord{{name: "B", code: codeCreate, params: make([]byte, 152)}},
			expect: []string{"\n( May be CREATE B 152 ALLOT )\nCREATE B " +
				strings.TrimSuffix(strings.Repeat("0 c, ", 152), " ") + "\n"},
		},
		{
			name:   "create allot",
			words:  []testWord{{name: "B", code: codeCreate, params: make([]byte, 153)}},
			expect: []string{"\nCREATE B 153 ALLOT\n"},
		},
		{
			name:  "definer",
			words: []testWord{definer, defined},
			expect: []string{
				"\nDEFINER D\n", "DUP", "\n;\n",
				"\nD W 1 c, 2 c,\n",
			},
		},
		{
			name: "definer does",
			words: []testWord{{name: "D", code: codeDefiner, params: concat(
				cells(0x3d00, wordDUP, wordDOES),
				[]byte{0xcd, 0x2b, 0x0f, 0xe9, 0x00},
				cells(wordMul, wordSemi))}},
			expect: []string{"\nDEFINER D\n", "DUP", "DOES>\n", "*", "\n;\n"},
		},
		{
			name: "compiler",
			words: []testWord{{name: "K", code: codeCompiler,
				params: cells(testOrigin+1+10+2, wordDUP, wordSemi)}},
			expect: []string{"\n107 COMPILER K\n", "DUP", "\n;\n"},
		},
		{
			name: "user words",
			words: []testWord{sq, {name: "Q4", code: codeColon,
				params: cells(0x3c58, 0x3c58, wordSemi)}},
			expect: []string{
				"\n: SQ\n", "DUP", "*", "\n;\n",
				"\n: Q4\n", "SQ", "SQ", "\n;\n",
			},
		},
		{
			name: "recursion",
			words: []testWord{{name: "R", code: codeColon,
				params: cells(0x3c57, wordSemi)}},
			expect: []string{"\n: R\n", "R", "\n;\n"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := New(testOrigin, testLogf(t)).Decompile(testPayload(tc.words...))
			require.NoError(t, err)
			assert.Equal(t, tc.expect, tokens)
		})
	}
}

func TestDecompile_errors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		words []testWord
		err   error
	}{
		{
			name: "defined before definer",
			words: []testWord{
				{name: "W", code: 0x3d00, params: []byte{1, 2}},
				{name: "D", code: codeDefiner, params: cells(0x3d00, wordSemi)},
			},
			err: UnknownDefinerError{Addr: 0x3d00, Word: "W", Offset: 0},
		},
		{
			name:  "word as definer",
			words: []testWord{{name: "X", code: wordDUP, params: []byte{1, 0}}},
			err: DefinerMismatchError{Addr: wordDUP, Word: "X", Offset: 0,
				Entry: Entry{Kind: KindWord, Name: "DUP"}},
		},
		{
			name: "unknown word",
			words: []testWord{
				{name: "SQ", code: codeColon, params: cells(wordDUP, wordMul, wordSemi)},
				{name: "Z", code: codeColon, params: cells(wordDUP, 0x0001, wordSemi)},
			},
			err: UnknownWordError{Addr: 0x0001, Word: "Z", Offset: 15, ParamOffset: 2},
		},
		{
			name:  "compiler out of range",
			words: []testWord{{name: "K", code: codeCompiler, params: cells(0x0000, wordSemi)}},
			err: TruncatedError{Word: "K", Offset: 0,
				ParamOffset: -(testOrigin + 11), Need: 1, Have: 0},
		},
		{
			name: "truncated float",
			words: []testWord{{name: "F", code: codeColon,
				params: concat(cells(wordFloat), []byte{1, 2})}},
			err: TruncatedError{Word: "F", Offset: 0, ParamOffset: 0, Need: 6, Have: 4},
		},
		{
			name: "truncated ascii",
			words: []testWord{{name: "A", code: codeColon,
				params: cells(wordASCII)}},
			err: TruncatedError{Word: "A", Offset: 0, ParamOffset: 0, Need: 3, Have: 2},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := New(testOrigin, testLogf(t)).Decompile(testPayload(tc.words...))
			assert.Equal(t, tc.err, err)
			assert.Nil(t, tokens, "expected no partial output")
		})
	}
}

func TestUnknownWordError_message(t *testing.T) {
	err := UnknownWordError{Addr: 0x1234, Word: "FOO", Offset: 17, ParamOffset: 4}
	assert.Equal(t, "unknown word 0x1234 in word [FOO], word offset 17, at parameter offset 4", err.Error())
}

func TestDecompiler_registrations(t *testing.T) {
	dc := New(testOrigin, testLogf(t))
	builtins := dc.Vocab.Len()
	require.Equal(t, len(Builtins()), builtins)

	_, err := dc.Decompile(testPayload(
		testWord{name: "D", code: codeDefiner, params: cells(0x3d00, wordDUP, wordSemi)},
		testWord{name: "W", code: 0x3d00, params: []byte{1, 2}},
	))
	require.NoError(t, err)

	assert.Equal(t, []Registration{
		{0x3c57, Entry{Kind: KindWord, Name: "D"}},
		{0x3c65, Entry{Kind: KindWord, Name: "W"}},
		{0x3d00, Entry{Kind: KindDefined, Name: "D"}},
	}, dc.Vocab.Added())
	assert.Equal(t, builtins+3, dc.Vocab.Len())
}

func TestDecompiler_isolated(t *testing.T) {
	definer := testWord{name: "D", code: codeDefiner, params: cells(0x3d00, wordSemi)}
	defined := testWord{name: "W", code: 0x3d00, params: []byte{1, 2}}

	first, err := New(testOrigin).Decompile(testPayload(definer, defined))
	require.NoError(t, err)

	again, err := New(testOrigin).Decompile(testPayload(definer, defined))
	require.NoError(t, err)
	assert.Equal(t, first, again, "expected identical output from fresh decompilers")

	_, err = New(testOrigin).Decompile(testPayload(defined))
	assert.Equal(t, UnknownDefinerError{Addr: 0x3d00, Word: "W", Offset: 0}, err,
		"expected no vocabulary to leak between runs")
}

func TestDecompiler_sharedVocabulary(t *testing.T) {
	voc := NewVocabulary()
	_, err := New(testOrigin, WithVocabulary(voc)).Decompile(testPayload(
		testWord{name: "D", code: codeDefiner, params: cells(0x3d00, wordSemi)}))
	require.NoError(t, err)

	tokens, err := New(0x4000, WithVocabulary(voc)).Decompile(testPayload(
		testWord{name: "W", code: 0x3d00, params: []byte{9}}))
	require.NoError(t, err)
	assert.Equal(t, []string{"\nD W 9 c,\n"}, tokens)
}

func TestDumper(t *testing.T) {
	dc := New(testOrigin)
	recs, err := dc.Walk(testPayload(
		testWord{name: "D", code: codeDefiner, params: cells(0x3d00, wordSemi)},
		testWord{name: "WORD", flags: 0x44, code: 0x3d00, params: []byte{9}},
	))
	require.NoError(t, err)
	_, err = dc.Decode(recs)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Dumper{Out: &out, Vocab: dc.Vocab, RawParams: true}.Dump(recs))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4, "expected a record and params line per record")
	assert.Equal(t, "@0x3c51 +0     D    cfa:0x3c57 code:definer params:4", lines[0])
	assert.Equal(t, "    00 3d b6 04", lines[1])
	assert.Equal(t, "@0x3c5d +12    WORD cfa:0x3c66 code:D params:1 immediate", lines[2])
	assert.Equal(t, "    09", lines[3])
}
