package tap

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	// MaxAutorunCommand is the longest command an autorun tape may carry.
	MaxAutorunCommand = 31

	autorunOrigin = 0x22e0
)

// CommandTooLongError reports an autorun command past MaxAutorunCommand.
type CommandTooLongError struct {
	Command string
}

func (err CommandTooLongError) Error() string {
	return fmt.Sprintf("command, of length %d, [%s] is too long, %d characters maximum",
		len(err.Command), err.Command, MaxAutorunCommand)
}

// Autorun builds a bytes tape that, once loaded into the input buffer, runs
// command.
func Autorun(name, command string) (Pair, error) {
	if len(command) > MaxAutorunCommand {
		return Pair{}, CommandTooLongError{command}
	}
	if len(name) > 10 {
		name = name[:10]
	}

	data := make([]byte, 0, len(command)+3)
	data = append(data, 0xff, 0x00)
	data = append(data, command...)

	hdr := make([]byte, 0, 27)
	hdr = append(hdr, 0x00, TypeBytes)
	hdr = append(hdr, fmt.Sprintf("%-10s", name)...)
	hdr = binary.LittleEndian.AppendUint16(hdr, uint16(len(data)-1))
	hdr = binary.LittleEndian.AppendUint16(hdr, autorunOrigin)
	hdr = append(hdr, strings.Repeat(" ", 10)...)

	return Pair{seal(hdr), seal(data)}, nil
}
