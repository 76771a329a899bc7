package tap

import (
	"strconv"
	"strings"
)

// MaxFileName is the longest base file name written for a program.
const MaxFileName = 8

var fileNameReplacer = strings.NewReplacer(
	`\`, "_", "/", "_", ":", "_", "*", "_", `"`, "_",
	"<", "_", ">", "_", "|", "_", "?", "_", ".", "_",
)

// Namer hands out unique upper case file names for programs. The second
// and later uses of a name get a "_N" suffix, shortening the name to stay
// within MaxFileName characters.
type Namer struct {
	seen map[string]int
}

// Name returns the next unique base name for the program name.
func (nm *Namer) Name(name string) string {
	if nm.seen == nil {
		nm.seen = make(map[string]int)
	}
	base := strings.ToUpper(strings.TrimSpace(name))
	if len(base) > MaxFileName {
		base = base[:MaxFileName]
	}
	n := nm.seen[base] + 1
	nm.seen[base] = n
	if n > 1 {
		suffix := "_" + strconv.Itoa(n)
		if keep := MaxFileName - len(suffix); len(base) > keep {
			base = base[:keep]
		}
		base += suffix
	}
	return fileNameReplacer.Replace(base)
}

// FileName returns the next unique tape file name for the program name.
func (nm *Namer) FileName(name string) string { return nm.Name(name) + ".TAP" }

// DirName returns the name of the directory that programs split out of the
// tape file named base are written into.
func DirName(base string) string {
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	if len(base) > MaxFileName {
		base = base[:MaxFileName]
	}
	return strings.ToUpper(base)
}
