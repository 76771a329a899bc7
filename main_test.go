package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/acetap/internal/logio"
	"github.com/jcorbin/acetap/internal/tap"
)

// sqDict is a one word dictionary holding ": SQ DUP * ;".
var sqDict = []byte{
	'S', 'Q' | 0x80,
	0x0d, 0x00, // length
	0x00, 0x00, // link
	0x02,       // flags
	0xc3, 0x0e, // colon
	0x6b, 0x08, // DUP
	0x6d, 0x0d, // *
	0xb6, 0x04, // ;
}

const sqSource = "\n: SQ\n DUP * \n;\n "

// constDict is a one word dictionary holding "42 CONSTANT X".
var constDict = []byte{
	'X' | 0x80,
	0x09, 0x00, // length
	0x00, 0x00, // link
	0x01,       // flags
	0xf5, 0x0f, // constant
	0x2a, 0x00, // 42
}

const constSource = "\n42 CONSTANT X\n "

func sealed(payload ...byte) tap.Block {
	var sum byte
	for _, b := range payload[1:] {
		sum ^= b
	}
	return append(tap.Block(payload), sum)
}

func testTape(name string, origin uint16, typ byte, body []byte) []byte {
	hdr := []byte{0x00, typ}
	hdr = append(hdr, []byte(name + strings.Repeat(" ", 10))[:10]...)
	hdr = append(hdr, byte(len(body)), byte(len(body)>>8), byte(origin), byte(origin>>8))
	hdr = append(hdr, []byte(strings.Repeat(" ", 10))...)

	var buf bytes.Buffer
	sealed(hdr...).WriteTo(&buf)
	sealed(append([]byte{0xff}, body...)...).WriteTo(&buf)
	return buf.Bytes()
}

func writeTestFile(t *testing.T, path string, data []byte) string {
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func readTestFile(t *testing.T, path string) string {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	good := writeTestFile(t, filepath.Join(dir, "SQ.TAP"), testTape("SQ", 0x3c51, tap.TypeDictionary, sqDict))
	corrupt := testTape("BAD", 0x3c51, tap.TypeDictionary, sqDict)
	corrupt[len(corrupt)-1] ^= 0xff
	bad := writeTestFile(t, filepath.Join(dir, "BAD.TAP"), corrupt)
	code := writeTestFile(t, filepath.Join(dir, "CODE.TAP"), testTape("CODE", 0x4000, tap.TypeBytes, []byte{0xc9}))

	var logs strings.Builder
	log := logio.New(&logs)
	results, err := NewBatch(WithLogger(log), WithDir(dir)).Run(context.Background(), []string{bad, good, code})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Error(t, results[2].Err)
	assert.Equal(t, filepath.Join(dir, "sq.fs"), results[1].Path)

	assert.Equal(t, sqSource, readTestFile(t, filepath.Join(dir, "sq.fs")))
	assert.NoFileExists(t, filepath.Join(dir, "bad.fs"), "expected no partial output")
	assert.NoFileExists(t, filepath.Join(dir, "code.fs"), "expected no partial output")

	assert.Equal(t, 2, log.Count("ERROR"))
	assert.Equal(t, 1, log.ExitCode())
	assert.Contains(t, logs.String(), "unsupported program type [0x20]")
}

func TestBatch_existing(t *testing.T) {
	dir := t.TempDir()
	good := writeTestFile(t, filepath.Join(dir, "SQ.TAP"), testTape("SQ", 0x3c51, tap.TypeDictionary, sqDict))
	writeTestFile(t, filepath.Join(dir, "sq.fs"), []byte("keep"))

	log := logio.New(&logio.Writer{Logf: t.Logf})
	results, err := NewBatch(WithLogger(log), WithDir(dir)).Run(context.Background(), []string{good})
	require.NoError(t, err)
	assert.True(t, IsSkipped(results[0].Err), "unexpected error %v", results[0].Err)
	assert.Equal(t, "keep", readTestFile(t, filepath.Join(dir, "sq.fs")))
	assert.Equal(t, 0, log.ExitCode())
	assert.Equal(t, 1, log.Count("WARN"))

	_, err = NewBatch(WithLogger(log), WithDir(dir), WithForce(true)).Run(context.Background(), []string{good})
	require.NoError(t, err)
	assert.Equal(t, sqSource, readTestFile(t, filepath.Join(dir, "sq.fs")))
}

func TestBatch_collision(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"a", "b", "out"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, sub), 0o755))
	}
	files := []string{
		writeTestFile(t, filepath.Join(dir, "a", "GAME.tap"), testTape("GAME", 0x3c51, tap.TypeDictionary, sqDict)),
		writeTestFile(t, filepath.Join(dir, "b", "game.TAP"), testTape("GAME", 0x3c51, tap.TypeDictionary, constDict)),
	}
	out := filepath.Join(dir, "out")
	game := filepath.Join(out, "game.fs")

	for _, tc := range []struct {
		name    string
		force   bool
		written int
		source  string
	}{
		{name: "first file writes", written: 0, source: sqSource},
		{name: "forced last file writes", force: true, written: 1, source: constSource},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for n := 0; n < 50; n++ {
				require.NoError(t, os.RemoveAll(game))
				log := logio.New(nil)
				results, err := NewBatch(
					WithLogger(log),
					WithDir(out),
					WithParallel(2),
					WithForce(tc.force),
				).Run(context.Background(), files)
				require.NoError(t, err)
				for i, res := range results {
					assert.Equal(t, game, res.Path)
					if i == tc.written {
						require.NoError(t, res.Err)
					} else {
						require.True(t, IsSkipped(res.Err), "unexpected error %v", res.Err)
					}
				}
				require.Equal(t, tc.source, readTestFile(t, game))
				require.Equal(t, 1, log.Count("WARN"))
				require.Equal(t, 0, log.ExitCode())
			}
		})
	}
}

func TestBatch_stdout(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"A", "B", "C", "D"} {
		files = append(files, writeTestFile(t, filepath.Join(dir, name+".TAP"),
			testTape(name, 0x3c51, tap.TypeDictionary, sqDict)))
	}

	var out bytes.Buffer
	log := logio.New(&logio.Writer{Logf: t.Logf})
	_, err := NewBatch(
		WithLogger(log),
		WithDir(StdoutDir),
		WithOutput(&out),
		WithParallel(4),
		WithTracef(t.Logf),
	).Run(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat(sqSource, 4), out.String())
	assert.Equal(t, 0, log.ExitCode())
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "demo.fs"), OutputPath("out", filepath.Join("tapes", "DEMO.TAP")))
	assert.Equal(t, "game.v2.fs", OutputPath("", "Game.V2.tap"))
}

func runTest(t *testing.T, args ...string) (string, string, int) {
	var out, logs strings.Builder
	code := run(context.Background(), logio.New(&logs), &out, args)
	if logs.Len() > 0 {
		t.Logf("acetap %v logs:\n%s", strings.Join(args, " "), logs.String())
	}
	return out.String(), logs.String(), code
}

func TestRun_decompile(t *testing.T) {
	dir := t.TempDir()
	good := writeTestFile(t, filepath.Join(dir, "SQ.TAP"), testTape("SQ", 0x3c51, tap.TypeDictionary, sqDict))

	out, _, code := runTest(t, "decompile", "-d", "-", good)
	assert.Equal(t, 0, code)
	assert.Equal(t, sqSource, out)

	_, logs, code := runTest(t, "decompile", "-d", filepath.Join(dir, "nope"), good)
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "does not exist")

	_, _, code = runTest(t, "decompile")
	assert.Equal(t, 2, code)
}

func TestRun_records(t *testing.T) {
	dir := t.TempDir()
	good := writeTestFile(t, filepath.Join(dir, "SQ.TAP"), testTape("SQ", 0x3c51, tap.TypeDictionary, sqDict))

	out, _, code := runTest(t, "records", good)
	assert.Equal(t, 0, code)
	assert.Equal(t, "# "+good+" [SQ] origin:0x3c51 words:1\n"+
		"@0x3c51 +0     SQ cfa:0x3c58 code:colon params:6\n", out)
}

func TestRun_unknownCommand(t *testing.T) {
	_, logs, code := runTest(t, "decompiel")
	assert.Equal(t, 2, code)
	assert.Contains(t, logs, `did you mean "decompile"?`)

	_, logs, _ = runTest(t, "rec")
	assert.Contains(t, logs, `did you mean "records"?`)

	_, logs, _ = runTest(t, "xyzzy-nothing")
	assert.NotContains(t, logs, "did you mean")
}

func TestRun_words(t *testing.T) {
	out, _, code := runTest(t, "words")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "0x0099 word \"QUIT\"\n")
	assert.Contains(t, out, "0x0ec3 colon\n")
	assert.Contains(t, out, "0x1283 skip/4 \"IF\\n\"\n")
}

func TestRun_tapes(t *testing.T) {
	dir := t.TempDir()
	multi := writeTestFile(t, filepath.Join(dir, "multi.tap"), append(
		testTape("SQ", 0x3c51, tap.TypeDictionary, sqDict),
		testTape("SQ", 0x3c51, tap.TypeDictionary, sqDict)...))

	out, _, code := runTest(t, "ls", multi)
	assert.Equal(t, 0, code)
	assert.Equal(t, relPath(multi)+"\n"+strings.Repeat("\tSQ\n\t\tHeader Block: 27 bytes\n\t\t  Data Block: 17 bytes\n", 2), out)

	_, _, code = runTest(t, "split", "-d", dir, multi)
	require.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(dir, "MULTI", "SQ.TAP"))
	assert.FileExists(t, filepath.Join(dir, "MULTI", "SQ_2.TAP"))

	_, logs, code := runTest(t, "split", "-d", dir, multi)
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "exists")

	image := filepath.Join(dir, "multi.tzx")
	_, _, code = runTest(t, "tap2tzx", "-o", image, multi)
	require.Equal(t, 0, code)

	tzxDir := filepath.Join(dir, "fromtzx")
	require.NoError(t, os.Mkdir(tzxDir, 0o755))
	_, _, code = runTest(t, "tzx2tap", "-d", tzxDir, image)
	require.Equal(t, 0, code)
	assert.Equal(t,
		readTestFile(t, filepath.Join(dir, "MULTI", "SQ_2.TAP")),
		readTestFile(t, filepath.Join(tzxDir, "MULTI", "SQ_2.TAP")))

	out, _, code = runTest(t, "decompile", "-d", "-", filepath.Join(tzxDir, "MULTI", "SQ.TAP"))
	assert.Equal(t, 0, code)
	assert.Equal(t, sqSource, out)
}

func TestRun_autorun(t *testing.T) {
	dir := t.TempDir()
	_, _, code := runTest(t, "autorun", "-d", dir, "-t", "boot", "LOAD", "GAME")
	require.Equal(t, 0, code)

	data, err := os.ReadFile(filepath.Join(dir, "boot.tap"))
	require.NoError(t, err)
	require.NoError(t, tap.Scan(bytes.NewReader(data), func(p tap.Pair) error {
		assert.Equal(t, "boot", p.Name())
		assert.Equal(t, tap.Block{0xff, 0x00, 'L', 'O', 'A', 'D', ' ', 'G', 'A', 'M', 'E'}, p.Data[:len(p.Data)-1])
		return p.Verify()
	}))

	_, logs, code := runTest(t, "autorun", "-d", dir, "-t", "boot", "LOAD")
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "exists")

	_, logs, code = runTest(t, "autorun", "-d", dir, "-t", "long", strings.Repeat("X", 32))
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "too long")
}

func TestRun_environment(t *testing.T) {
	dir := t.TempDir()
	good := writeTestFile(t, filepath.Join(dir, "SQ.TAP"), testTape("SQ", 0x3c51, tap.TypeDictionary, sqDict))

	t.Setenv("ACETAP_WIDTH", "4")
	t.Setenv("ACETAP_TRACE", "true")

	out, logs, code := runTest(t, "decompile", "-d", "-", good)
	assert.Equal(t, 0, code)
	assert.Equal(t, "\n\n: SQ\n DUP \n* \n\n;\n ", out)
	assert.Contains(t, logs, "TRACE: ")

	out, _, code = runTest(t, "decompile", "-d", "-", "-m", "80", good)
	assert.Equal(t, 0, code)
	assert.Equal(t, sqSource, out, "flags override the environment")
}
