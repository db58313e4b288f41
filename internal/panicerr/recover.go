package panicerr

import (
	"errors"
	"fmt"
)

// Recover runs f in a new goroutine wrapped in defer logic to recover any
// abnormal exits or panics as non-nil error returns. A Halt within f ends it
// early, with Recover returning the halt error as-is.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExitError(name, errch)
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}

// Halt stops the function running under Recover, which then returns err.
func Halt(err error) {
	panic(haltError{err})
}

type haltError struct{ error }

// IsExit returns true if err indicates that the function running under
// Recover called runtime.Goexit.
func IsExit(err error) bool {
	var xe exitError
	return errors.As(err, &xe)
}

// recoverExitError only sends if nothing else has; a normal return, a halt,
// or a panic all send first.
func recoverExitError(name string, errch chan<- error) {
	select {
	case errch <- exitError(name):
	default:
	}
}

type exitError string

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}
