package soft

import (
	"fmt"
	"runtime/debug"
)

// PanicError is returned by Catch when the operation panicked.
type PanicError struct {
	Value any
	Stack []byte
}

// Error reports the panic value. An error value keeps its own message
// so message checks see what the code actually raised.
func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Catch runs fn and returns what it raised: its returned error, or
// a *PanicError if it panicked. A nil result means fn succeeded.
func Catch(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}
