package dict

import "fmt"

// UnknownDefinerError reports a code field address with no vocabulary entry.
type UnknownDefinerError struct {
	Addr   uint16
	Word   string
	Offset int // record offset from the dictionary origin
}

func (err UnknownDefinerError) Error() string {
	return fmt.Sprintf("unknown definer 0x%04x for word [%v] at offset %v", err.Addr, err.Word, err.Offset)
}

// DefinerMismatchError reports a code field address whose entry is not a
// defining behavior.
type DefinerMismatchError struct {
	Addr   uint16
	Word   string
	Offset int
	Entry  Entry
}

func (err DefinerMismatchError) Error() string {
	return fmt.Sprintf("code field 0x%04x of word [%v] at offset %v is not a definer: %v",
		err.Addr, err.Word, err.Offset, err.Entry)
}

// UnknownWordError reports a threaded reference with no vocabulary entry.
type UnknownWordError struct {
	Addr        uint16
	Word        string
	Offset      int
	ParamOffset int
}

func (err UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word 0x%04x in word [%v], word offset %v, at parameter offset %v",
		err.Addr, err.Word, err.Offset, err.ParamOffset)
}

// TruncatedError reports inline data that runs past the end of a word's
// parameter bytes.
type TruncatedError struct {
	Word        string
	Offset      int
	ParamOffset int
	Need        int
	Have        int
}

func (err TruncatedError) Error() string {
	return fmt.Sprintf("word [%v] at offset %v truncated at parameter offset %v: need %v bytes, have %v",
		err.Word, err.Offset, err.ParamOffset, err.Need, err.Have)
}

// MalformedError reports a dictionary record that cannot be split out of the
// data payload.
type MalformedError struct {
	Index  int // payload index where the record starts
	Reason string
}

func (err MalformedError) Error() string {
	return fmt.Sprintf("malformed record at payload index %v: %v", err.Index, err.Reason)
}
