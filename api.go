package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/acetap/internal/dict"
	"github.com/jcorbin/acetap/internal/lineio"
	"github.com/jcorbin/acetap/internal/logio"
	"github.com/jcorbin/acetap/internal/panicerr"
	"github.com/jcorbin/acetap/internal/tap"
)

// StdoutDir is the output directory name that sends decompiled source to
// the batch output stream instead of files.
const StdoutDir = "-"

// Batch decompiles tape files into Forth source files.
//
// Every file is decoded against its own fresh vocabulary, so files are
// processed concurrently. A failing file is reported through the error log
// and never affects any other file; nothing is written for it.
type Batch struct {
	log     *logio.Logger
	tracefn func(mess string, args ...interface{})

	out      io.Writer
	dir      string
	width    int
	parallel int
	force    bool
}

// NewBatch creates a batch decompiler.
func NewBatch(opts ...BatchOption) *Batch {
	var b Batch
	b.apply(opts...)
	return &b
}

// WithLogger reports failed and skipped files to log.
func WithLogger(log *logio.Logger) BatchOption { return loggerOption{log} }

// WithTracef enables decompiler trace logging.
func WithTracef(logfn func(mess string, args ...interface{})) BatchOption { return withTracefn(logfn) }

// WithOutput sets where source goes when the output directory is StdoutDir.
func WithOutput(w io.Writer) BatchOption { return withOutput(w) }

// WithDir sets the directory Forth files are written into.
func WithDir(dir string) BatchOption { return withDir(dir) }

// WithLineWidth sets the wrapping column of decompiled source.
func WithLineWidth(width int) BatchOption { return withLineWidth(width) }

// WithParallel limits how many files are decompiled at once.
func WithParallel(n int) BatchOption { return withParallel(n) }

// WithForce overwrites existing Forth files instead of skipping them.
func WithForce(force bool) BatchOption { return withForce(force) }

// Result is the outcome of decompiling one file.
type Result struct {
	Name   string
	Path   string // output file, empty when writing to the batch output
	Source []byte
	Err    error
}

// Run decompiles all files, returning their results in the same order.
// Only context cancellation is returned as an error; per-file failures are
// carried in each Result, and reported through the error log.
func (b *Batch) Run(ctx context.Context, files []string) ([]Result, error) {
	results := make([]Result, len(files))
	owners := b.claimOutputs(files)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(b.parallel)
	for i, name := range files {
		i, name := i, name
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := &results[i]
			res.Name = name
			if owner := owners[i]; owner != i {
				res.Path = OutputPath(b.dir, name)
				res.Err = fmt.Errorf("Forth file [%s] is written from [%s], ignoring: %w",
					res.Path, files[owner], errSkipped)
			} else {
				res.Err = panicerr.Recover(name, func() error {
					return b.decompileFile(res)
				})
			}
			b.report(res)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}

	if b.dir == StdoutDir {
		for _, res := range results {
			if res.Err == nil && res.Source != nil {
				if _, err := b.out.Write(res.Source); err != nil {
					return results, err
				}
			}
		}
	}
	return results, nil
}

// claimOutputs returns, for every file, the index of the file that writes
// its output path. Without force the first file naming a path writes it, and
// any later one would find it existing; with force the last one does, since
// it would overwrite the others.
func (b *Batch) claimOutputs(files []string) []int {
	owners := make([]int, len(files))
	for i := range owners {
		owners[i] = i
	}
	if b.dir == StdoutDir {
		return owners
	}

	claims := make(map[string]int, len(files))
	for i, name := range files {
		path := OutputPath(b.dir, name)
		if _, claimed := claims[path]; !claimed || b.force {
			claims[path] = i
		}
	}
	for i, name := range files {
		owners[i] = claims[OutputPath(b.dir, name)]
	}
	return owners
}

func (b *Batch) report(res *Result) {
	switch {
	case b.log == nil || res.Err == nil:
	case IsSkipped(res.Err):
		b.log.Printf("WARN", "%v: %v", res.Name, res.Err)
	default:
		b.log.Errorf("%v: %v", res.Name, res.Err)
	}
}

var errSkipped = errors.New("output exists")

func (b *Batch) decompileFile(res *Result) error {
	if b.dir != StdoutDir {
		res.Path = OutputPath(b.dir, res.Name)
		if !b.force {
			if _, err := os.Stat(res.Path); err == nil {
				return fmt.Errorf("Forth file [%s] exists, ignoring: %w", res.Path, errSkipped)
			}
		}
	}

	f, err := os.Open(res.Name)
	if err != nil {
		return err
	}
	defer f.Close()

	prog, err := tap.ReadProgram(bufio.NewReader(f))
	if err != nil {
		return err
	}

	var opts []dict.Option
	if b.tracefn != nil {
		name := res.Name
		opts = append(opts, dict.WithLogf(func(mess string, args ...interface{}) {
			b.tracefn("%v: %v", name, fmt.Sprintf(mess, args...))
		}))
	}
	tokens, err := dict.New(prog.Origin, opts...).Decompile(prog.Data)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := lineio.NewFormatter(&buf, b.width).WriteTokens(tokens); err != nil {
		return err
	}
	res.Source = buf.Bytes()

	if res.Path != "" {
		return os.WriteFile(res.Path, res.Source, 0o644)
	}
	return nil
}

// IsSkipped returns true if err reports a file left alone because its output
// already exists.
func IsSkipped(err error) bool { return errors.Is(err, errSkipped) }

// OutputPath returns the Forth source file written for the tape file name.
func OutputPath(dir, name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, strings.ToLower(base)+".fs")
}
