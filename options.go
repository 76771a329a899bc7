package main

import (
	"io"
	"runtime"

	"github.com/jcorbin/acetap/internal/lineio"
	"github.com/jcorbin/acetap/internal/logio"
)

// BatchOption customizes a Batch.
type BatchOption interface{ apply(b *Batch) }

var defaults = []BatchOption{
	withOutput(io.Discard),
	withDir("."),
	withLineWidth(lineio.DefaultWidth),
	withParallel(runtime.GOMAXPROCS(0)),
}

func (b *Batch) apply(opts ...BatchOption) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(b)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(b)
		}
	}
}

type loggerOption struct{ *logio.Logger }

func (o loggerOption) apply(b *Batch) {
	b.log = o.Logger
}

type withTracefn func(mess string, args ...interface{})

func (logfn withTracefn) apply(b *Batch) {
	b.tracefn = logfn
}

type outputOption struct{ io.Writer }
type dirOption string
type lineWidthOption int
type parallelOption int
type forceOption bool

func withOutput(w io.Writer) outputOption     { return outputOption{w} }
func withDir(dir string) dirOption            { return dirOption(dir) }
func withLineWidth(width int) lineWidthOption { return lineWidthOption(width) }
func withParallel(n int) parallelOption       { return parallelOption(n) }
func withForce(force bool) forceOption        { return forceOption(force) }

func (o outputOption) apply(b *Batch)    { b.out = o.Writer }
func (dir dirOption) apply(b *Batch)     { b.dir = string(dir) }
func (w lineWidthOption) apply(b *Batch) { b.width = int(w) }
func (f forceOption) apply(b *Batch)     { b.force = bool(f) }

func (n parallelOption) apply(b *Batch) {
	if n < 1 {
		n = 1
	}
	b.parallel = int(n)
}
