package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	envvar "github.com/xyproto/env/v2"

	"github.com/jcorbin/acetap/internal/logio"
)

func main() {
	log := logio.New(os.Stderr)
	os.Exit(run(context.Background(), log, os.Stdout, os.Args[1:]))
}

// env is shared by every command of one invocation.
type env struct {
	log    *logio.Logger
	stdout io.Writer
	trace  bool
}

func (e *env) tracef() func(mess string, args ...interface{}) {
	if !e.trace {
		return nil
	}
	return e.log.Leveledf("TRACE")
}

type command struct {
	name  string
	args  string
	short string
	flags func(flags *flag.FlagSet) func(ctx context.Context, e *env, args []string) error
}

func run(ctx context.Context, log *logio.Logger, stdout io.Writer, args []string) int {
	e := env{log: log, stdout: stdout}

	top := flag.NewFlagSet("acetap", flag.ContinueOnError)
	top.SetOutput(io.Discard)
	top.BoolVar(&e.trace, "trace", envvar.Bool("ACETAP_TRACE"), "enable trace logging")
	if err := top.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(stdout)
			return 0
		}
		log.Errorf("%v", err)
		return 2
	}

	args = top.Args()
	if len(args) == 0 {
		usage(stdout)
		return 2
	}

	cmd, ok := lookupCommand(args[0])
	if !ok {
		if match := suggestCommand(args[0]); match != "" {
			log.Errorf("unknown command %q, did you mean %q?", args[0], match)
		} else {
			log.Errorf("unknown command %q", args[0])
		}
		return 2
	}

	flags := flag.NewFlagSet("acetap "+cmd.name, flag.ContinueOnError)
	flags.SetOutput(stdout)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: acetap %v [flags] %v\n\n%v\n\n", cmd.name, cmd.args, cmd.short)
		flags.PrintDefaults()
	}
	runCmd := cmd.flags(flags)
	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := runCmd(ctx, &e, flags.Args()); err != nil {
		if errors.Is(err, errUsage) {
			flags.Usage()
			return 2
		}
		log.Errorf("%v: %+v", cmd.name, err)
	}
	return log.ExitCode()
}

var errUsage = errors.New("invalid usage")

func lookupCommand(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

func commandNames() []string {
	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.name
	}
	return names
}

// suggestCommand returns the closest command name to a mistyped one.
func suggestCommand(name string) string {
	names := commandNames()
	if ranks := fuzzy.RankFindFold(name, names); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, bestDist := "", 4
	for _, cand := range names {
		if d := fuzzy.LevenshteinDistance(strings.ToLower(name), cand); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: acetap [-trace] <command> [flags] args...\n\nCommands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10v %v\n", cmd.name, cmd.short)
	}
}
