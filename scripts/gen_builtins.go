package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

// The generator reads builtins.txt and writes builtins_gen.go. parseFlags and
// main only plumb that input and output, piping the output through gofmt;
// everything specific to the builtins.txt format is in run and parseLine.

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		args = args[1:]
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		gofmt := exec.CommandContext(ctx, "gofmt")
		fmtPipe, err := gofmt.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := gofmt.Run(); err != nil {
			return fmt.Errorf("gofmt run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

// kindConsts maps the kind column of builtins.txt to dict.Kind constants.
var kindConsts = map[string]string{
	"word":     "KindWord",
	"skip":     "KindSkip",
	"literal":  "KindLiteral",
	"char":     "KindChar",
	"float":    "KindFloat",
	"string":   "KindString",
	"comment":  "KindComment",
	"colon":    "KindColon",
	"create":   "KindCreate",
	"variable": "KindVariable",
	"constant": "KindConstant",
	"definer":  "KindDefiner",
	"compiler": "KindCompiler",
}

// run translates each "addr kind [size] [name]" line of builtins.txt into one
// dict.Registration literal, rejecting duplicate addresses.
func run(ctx context.Context) error {
	var buf bytes.Buffer
	buf.Grow(4096)
	buf.WriteString("// Code generated by scripts/gen_builtins.go from ")
	buf.WriteString(in.Name())
	buf.WriteString("; DO NOT EDIT.\n\n")
	buf.WriteString("package dict\n\n")
	buf.WriteString("var builtins = [...]Registration{\n")

	seen := make(map[uint64]int)
	sc := bufio.NewScanner(in)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		addr, kind, size, name, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("%v:%v: %w", in.Name(), lineno, err)
		}
		if prior, dup := seen[addr]; dup {
			return fmt.Errorf("%v:%v: address 0x%04x already defined on line %v", in.Name(), lineno, addr, prior)
		}
		seen[addr] = lineno

		fmt.Fprintf(&buf, "{0x%04x, Entry{Kind: %v", addr, kind)
		if name != "" {
			fmt.Fprintf(&buf, ", Name: %q", name)
		}
		if size != 0 {
			fmt.Fprintf(&buf, ", Size: %d", size)
		}
		buf.WriteString("}},\n")

		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	buf.WriteString("}\n")
	_, err := buf.WriteTo(out)
	return err
}

func parseLine(line string) (addr uint64, kind string, size int, name string, err error) {
	fields := strings.SplitN(line, " ", 3)
	if len(fields) < 2 {
		return 0, "", 0, "", fmt.Errorf("expected address and kind, got %q", line)
	}

	if addr, err = strconv.ParseUint(fields[0], 0, 16); err != nil {
		return 0, "", 0, "", err
	}

	kind, ok := kindConsts[fields[1]]
	if !ok {
		return 0, "", 0, "", fmt.Errorf("unknown kind %q", fields[1])
	}

	rest := ""
	if len(fields) > 2 {
		rest = fields[2]
	}
	if kind == "KindSkip" {
		parts := strings.SplitN(rest, " ", 2)
		if size, err = strconv.Atoi(parts[0]); err != nil {
			return 0, "", 0, "", fmt.Errorf("invalid skip size: %w", err)
		}
		rest = ""
		if len(parts) > 1 {
			rest = parts[1]
		}
	}

	name = rest
	if strings.HasPrefix(name, `"`) {
		if name, err = strconv.Unquote(name); err != nil {
			return 0, "", 0, "", fmt.Errorf("invalid quoted name %s: %w", rest, err)
		}
	}
	return addr, kind, size, name, nil
}
