package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type byteWordConfig struct {
	codeWord   string
	decimal    bool
	executable bool
	definer    bool
}

// byteWord is machine code to be compiled into a word of its own.
type byteWord struct {
	name string
	code []byte
}

func readByteWords(files []string) ([]byteWord, error) {
	names := byteWordNames(files)
	words := make([]byteWord, len(files))
	for i, file := range files {
		code, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		words[i] = byteWord{names[i], code}
	}
	return words, nil
}

// byteWordNames derives word names from file names: the upper case base
// name, numbered from 2 when repeated.
func byteWordNames(files []string) []string {
	seen := make(map[string]int, len(files))
	names := make([]string, len(files))
	for i, file := range files {
		base := filepath.Base(file)
		name := strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))
		seen[name]++
		if n := seen[name]; n > 1 {
			name += strconv.Itoa(n)
		}
		names[i] = name
	}
	return names
}

func writeByteWords(w io.Writer, cfg byteWordConfig, words []byteWord) error {
	out := bufio.NewWriter(w)

	if cfg.definer && !cfg.executable {
		fmt.Fprintf(out, "DEFINER %s\nDOES>\n\tCALL\n;\n\n", cfg.codeWord)
	}
	if !cfg.decimal {
		out.WriteString("16 BASE C!\n\n")
	}

	format := "%02X C,"
	if cfg.decimal {
		format = "%d C,"
	}
	for _, word := range words {
		if cfg.executable {
			fmt.Fprintf(out, "CREATE %s ", word.name)
		} else {
			fmt.Fprintf(out, "%s %s ", cfg.codeWord, word.name)
		}
		for i, b := range word.code {
			if i > 0 {
				out.WriteByte(' ')
			}
			fmt.Fprintf(out, format, b)
		}
		if cfg.executable {
			fmt.Fprintf(out, " %s DUP 2- !", word.name)
		}
		out.WriteString("\n\n")
	}

	if !cfg.decimal {
		out.WriteString("DECIMAL\n\n")
	}
	return out.Flush()
}
