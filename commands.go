package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	envvar "github.com/xyproto/env/v2"
	"golang.org/x/term"

	"github.com/jcorbin/acetap/internal/dict"
	"github.com/jcorbin/acetap/internal/lineio"
	"github.com/jcorbin/acetap/internal/tap"
	"github.com/jcorbin/acetap/internal/tzx"
)

var commands = []command{
	{
		name:  "decompile",
		args:  "TAP_FILE...",
		short: "Decompile Forth dictionary tapes into source files.",
		flags: decompileCommand,
	},
	{
		name:  "records",
		args:  "TAP_FILE...",
		short: "List the word records of Forth dictionary tapes.",
		flags: recordsCommand,
	},
	{
		name:  "words",
		short: "List the built-in vocabulary.",
		flags: wordsCommand,
	},
	{
		name:  "ls",
		args:  "TAP_FILE...",
		short: "List the contents of TAP files.",
		flags: lsCommand,
	},
	{
		name:  "split",
		args:  "TAP_FILE...",
		short: "Create separate TAP files from multi-program TAP files.",
		flags: splitCommand,
	},
	{
		name:  "tzx2tap",
		args:  "TZX_FILE...",
		short: "Convert TZX files to TAP files.",
		flags: tzx2tapCommand,
	},
	{
		name:  "tap2tzx",
		args:  "TAP_FILE...",
		short: "Convert TAP files into one TZX file.",
		flags: tap2tzxCommand,
	},
	{
		name:  "autorun",
		args:  "COMMAND...",
		short: "Create a TAP file that runs a command once loaded.",
		flags: autorunCommand,
	},
	{
		name:  "bin2forth",
		args:  "BIN_FILE...",
		short: "Create Forth words from machine code binary files.",
		flags: bin2forthCommand,
	},
}

type runFunc = func(ctx context.Context, e *env, args []string) error

func decompileCommand(flags *flag.FlagSet) runFunc {
	dir := flags.String("d", ".", "directory to which Forth files are written, or - for standard output")
	force := flags.Bool("f", false, "overwrite existing Forth files")
	width := flags.Int("m", envvar.Int("ACETAP_WIDTH", lineio.DefaultWidth),
		"maximum number of characters per Forth line, 0 for the terminal width")
	parallel := flags.Int("j", envvar.Int("ACETAP_JOBS", runtime.GOMAXPROCS(0)),
		"number of files decompiled at once")
	return func(ctx context.Context, e *env, args []string) error {
		if len(args) == 0 {
			return errUsage
		}
		if *dir != StdoutDir {
			if err := requireDir(*dir); err != nil {
				return err
			}
		}
		w := *width
		if w == 0 {
			w = terminalWidth(e.stdout)
		}
		_, err := NewBatch(
			WithLogger(e.log),
			WithTracef(e.tracef()),
			WithOutput(e.stdout),
			WithDir(*dir),
			WithLineWidth(w),
			WithForce(*force),
			WithParallel(*parallel),
		).Run(ctx, args)
		return err
	}
}

func recordsCommand(flags *flag.FlagSet) runFunc {
	raw := flags.Bool("x", false, "dump raw parameter bytes")
	return func(ctx context.Context, e *env, args []string) error {
		if len(args) == 0 {
			return errUsage
		}
		out := bufio.NewWriter(e.stdout)
		defer out.Flush()
		for _, name := range args {
			if err := dumpRecords(out, name, *raw, e.tracef()); err != nil {
				e.log.Errorf("%v: %v", name, err)
			}
		}
		return nil
	}
}

func dumpRecords(out io.Writer, name string, raw bool, tracef func(string, ...interface{})) error {
	prog, err := readProgram(name)
	if err != nil {
		return err
	}
	dc := dict.New(prog.Origin, dict.WithLogf(tracef))
	recs, err := dc.Walk(prog.Data)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# %v [%v] origin:0x%04x words:%v\n", name, prog.Name, prog.Origin, len(recs))
	_, decodeErr := dc.Decode(recs)
	if err := (dict.Dumper{Out: out, Vocab: dc.Vocab, RawParams: raw}).Dump(recs); err != nil {
		return err
	}
	return decodeErr
}

func wordsCommand(flags *flag.FlagSet) runFunc {
	return func(ctx context.Context, e *env, args []string) error {
		if len(args) != 0 {
			return errUsage
		}
		out := bufio.NewWriter(e.stdout)
		for _, reg := range dict.Builtins() {
			fmt.Fprintln(out, reg)
		}
		return out.Flush()
	}
}

func lsCommand(flags *flag.FlagSet) runFunc {
	return func(ctx context.Context, e *env, args []string) error {
		if len(args) == 0 {
			return errUsage
		}
		for _, name := range args {
			fmt.Fprintln(e.stdout, relPath(name))
			if err := withFile(name, func(r io.Reader) error {
				return tap.List(e.stdout, r)
			}); err != nil {
				e.log.Errorf("%v: %v", name, err)
			}
		}
		return nil
	}
}

func splitCommand(flags *flag.FlagSet) runFunc {
	root := flags.String("d", ".", "directory to which the TAP directory structure is written")
	force := flags.Bool("f", false, "split even if the TAP directory exists")
	return func(ctx context.Context, e *env, args []string) error {
		if len(args) == 0 {
			return errUsage
		}
		for _, name := range args {
			fmt.Fprintln(e.stdout, name)
			if err := intoTapDir(*root, name, *force, func(dir string) error {
				return withFile(name, func(r io.Reader) error {
					return tap.Split(r, func(fn string, p tap.Pair) error {
						fmt.Fprintf(e.stdout, "\tFound program [%s] (%d:%d), writing split file to [%s]...\n",
							p.Name(), len(p.Header), len(p.Data), fn)
						return writePair(filepath.Join(dir, fn), p)
					})
				})
			}); err != nil {
				e.log.Errorf("%v: %v", name, err)
			}
		}
		return nil
	}
}

func tzx2tapCommand(flags *flag.FlagSet) runFunc {
	root := flags.String("d", ".", "directory to which the TAP directory structure is written")
	force := flags.Bool("f", false, "convert even if the TAP directory exists")
	return func(ctx context.Context, e *env, args []string) error {
		if len(args) == 0 {
			return errUsage
		}
		for _, name := range args {
			if err := intoTapDir(*root, name, *force, func(dir string) error {
				return withFile(name, func(r io.Reader) error {
					img, err := tzx.Read(r)
					if err != nil {
						return err
					}
					return tzx.ToTAP(img, func(fn string, p tap.Pair) error {
						fmt.Fprintf(e.stdout, "%v\n  +--> Found header block of length %d bytes\n  +--> Found data block of length %d bytes\n",
							filepath.Base(name), len(p.Header), len(p.Data))
						return writePair(filepath.Join(dir, fn), p)
					})
				})
			}); err != nil {
				e.log.Errorf("%v: %v", name, err)
			}
		}
		return nil
	}
}

func tap2tzxCommand(flags *flag.FlagSet) runFunc {
	output := flags.String("o", "", "output TZX file (required)")
	delay := flags.Uint("delay", tzx.DefaultPause, "delay, in ms, between TZX data blocks")
	return func(ctx context.Context, e *env, args []string) (rerr error) {
		if len(args) == 0 || *output == "" {
			return errUsage
		}
		if *delay > 0xffff {
			return fmt.Errorf("delay of %vms is too long", *delay)
		}
		pause := uint16(*delay)

		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); rerr == nil {
				rerr = err
			}
		}()
		out := bufio.NewWriter(f)
		defer func() {
			if err := out.Flush(); rerr == nil {
				rerr = err
			}
		}()

		tw, err := tzx.NewWriter(out)
		if err != nil {
			return err
		}
		for _, name := range args {
			fmt.Fprintln(e.stdout, filepath.Base(name))
			if err := withFile(name, func(r io.Reader) error {
				return tap.Scan(r, func(p tap.Pair) error {
					fmt.Fprintf(e.stdout, "  +--> Found %v with blocks of %d and %d bytes\n",
						p.Name(), len(p.Header), len(p.Data))
					if err := p.Verify(); err != nil {
						e.log.Printf("WARN", "%v: %v: %v", name, p.Name(), err)
					}
					return tw.WritePair(p, pause)
				})
			}); err != nil {
				e.log.Errorf("%v: %v", name, err)
			}
		}
		return nil
	}
}

func autorunCommand(flags *flag.FlagSet) runFunc {
	name := flags.String("t", "exec", "name of the generated TAP file")
	dir := flags.String("d", ".", "directory to which the TAP file is written")
	force := flags.Bool("f", false, "overwrite the TAP file if it exists")
	return func(ctx context.Context, e *env, args []string) error {
		if len(args) == 0 {
			return errUsage
		}
		if err := requireDir(*dir); err != nil {
			return err
		}
		path := filepath.Join(*dir, *name+".tap")
		if !*force {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("TAP file [%s] exists", path)
			}
		}
		p, err := tap.Autorun(*name, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return writePair(path, p)
	}
}

func bin2forthCommand(flags *flag.FlagSet) runFunc {
	var cfg byteWordConfig
	flags.StringVar(&cfg.codeWord, "c", "CODE", "name of the DEFINER word used to execute the machine code")
	flags.BoolVar(&cfg.decimal, "decimal", false, "output machine code in decimal, instead of hexadecimal")
	flags.BoolVar(&cfg.executable, "x", false, "create executable words, ignoring -c")
	flags.BoolVar(&cfg.definer, "o", false, "output the DEFINER code word")
	return func(ctx context.Context, e *env, args []string) error {
		if len(args) == 0 {
			return errUsage
		}
		words, err := readByteWords(args)
		if err != nil {
			return err
		}
		return writeByteWords(e.stdout, cfg, words)
	}
}

func readProgram(name string) (prog tap.Program, err error) {
	err = withFile(name, func(r io.Reader) error {
		prog, err = tap.ReadProgram(r)
		return err
	})
	return prog, err
}

func withFile(name string, f func(r io.Reader) error) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return f(bufio.NewReader(file))
}

func writePair(path string, p tap.Pair) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := p.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// intoTapDir runs f with the directory that programs from the tape file name
// are written into. A directory created here is removed again if f fails.
func intoTapDir(root, name string, force bool, f func(dir string) error) error {
	dir := filepath.Join(root, tap.DirName(filepath.Base(name)))
	if _, err := os.Stat(dir); err == nil {
		if !force {
			return fmt.Errorf("TAP directory [%s] exists", dir)
		}
		return f(dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := f(dir); err != nil {
		os.RemoveAll(dir)
		return err
	}
	return nil
}

func requireDir(dir string) error {
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return fmt.Errorf("directory [%s] does not exist", dir)
	}
	return nil
}

func relPath(name string) string {
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, name); err == nil {
			return rel
		}
	}
	return name
}

// terminalWidth returns the column count of w if it is a terminal.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if fd := int(f.Fd()); term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				return cols
			}
		}
	}
	return lineio.DefaultWidth
}
