// Package panicerr runs functions in isolated goroutines, returning any panic
// or runtime.Goexit as an ordinary error.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f in a new goroutine wrapped in a defer logic to recover any
// abnormal exits or panics as non-nil error returns.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExit(name, errch)
		defer recoverPanic(name, errch)
		errch <- f()
	}()
	return <-errch
}

// PanicError is a recovered goroutine panic.
type PanicError struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (pe PanicError) Error() string {
	return fmt.Sprint(pe)
}

// Format prints the panic stack when formatted with "%+v".
func (pe PanicError) Format(f fmt.State, c rune) {
	if pe.Name == "" {
		fmt.Fprintf(f, "panic: %v", pe.Value)
	} else {
		fmt.Fprintf(f, "%v panic: %v", pe.Name, pe.Value)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.Stack)
	}
}

func (pe PanicError) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

// ExitError is a recovered runtime.Goexit.
type ExitError struct {
	Name string
}

func (xe ExitError) Error() string {
	if xe.Name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", xe.Name)
}

// IsPanic returns true if err indicates a recovered goroutine panic.
func IsPanic(err error) bool {
	var pe PanicError
	return errors.As(err, &pe)
}

// PanicStack returns a non-empty stacktrace string if err is a recovered
// goroutine panic.
func PanicStack(err error) string {
	var pe PanicError
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}

// IsExit returns true if err indicates a recovered goroutine exit.
func IsExit(err error) bool {
	var xe ExitError
	return errors.As(err, &xe)
}

func recoverPanic(name string, errch chan<- error) {
	if e := recover(); e != nil {
		select {
		case errch <- PanicError{name, e, debug.Stack()}:
		default:
		}
	}
}

func recoverExit(name string, errch chan<- error) {
	select {
	case errch <- ExitError{name}:
	default:
		// the happy path has already sent a (maybe nil) error
	}
}
