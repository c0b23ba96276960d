package errs

import (
	"errors"
	"runtime"
)

const (
	traceSkip     = 3
	tracePrealloc = 50
)

type sFrame struct {
	filename string
	method   string
	line     int
}

type stack []sFrame

type errorWithTrace struct {
	err   error
	trace stack
}

func (e *errorWithTrace) Error() string { return e.err.Error() }

func (e *errorWithTrace) Unwrap() error { return e.err }

// NewStack wraps err with the stack captured at the call site. Wrapping an
// already wrapped error returns it unchanged, so the trace points at the
// deepest failure.
func NewStack(err error) error {
	if err == nil {
		return nil
	}

	var errWT *errorWithTrace
	if errors.As(err, &errWT) {
		return err
	}

	return &errorWithTrace{
		err:   err,
		trace: stackTrace(traceSkip),
	}
}

func stackTrace(skip int) stack {
	pc := make([]uintptr, tracePrealloc)
	n := runtime.Callers(skip, pc)
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	stack := make(stack, 0, n)

	for {
		frame, more := frames.Next()

		stack = append(stack, sFrame{filename: frame.File, method: frame.Function, line: frame.Line})

		if !more {
			break
		}
	}

	return stack
}
