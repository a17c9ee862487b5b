// Package errors extends the standard library errors with slog
// annotations and source locations so that errors carry enough context
// to be logged once at the top of the call stack.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// annotatedError is an error with optional slog attributes and the
// program counter of the site that created it.
type annotatedError struct {
	msg   string
	cause error
	attrs []slog.Attr
	pc    uintptr
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// caller returns the program counter skip levels above the caller of
// caller itself.
func caller(skip int) uintptr {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return 0
	}
	return pcs[0]
}

// NewSentinel creates an error intended to be declared as a
// package-level sentinel and matched with Is.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg, pc: caller(1)}
}

// Wrap adds context and optional slog attributes to err. The resulting
// message reads "msg: err".
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{msg: msg, cause: err, attrs: attrs, pc: caller(1)}
}

// SlogError converts err into a slog.Attr under the "error" key. It
// collects the annotations attached anywhere in the error tree and the
// source location of the outermost annotated error.
func SlogError(err error) slog.Attr {
	msg := "<nil>"
	if err != nil {
		msg = err.Error()
	}
	attrs := []slog.Attr{slog.String("message", msg)}

	var (
		annotations []slog.Attr
		pc          uintptr
	)
	stack := []error{err}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == nil {
			continue
		}
		if annotated, ok := current.(*annotatedError); ok {
			annotations = append(annotations, annotated.attrs...)
			if pc == 0 {
				pc = annotated.pc
			}
		}
		switch unwrappable := current.(type) {
		case interface{ Unwrap() error }:
			stack = append(stack, unwrappable.Unwrap())
		case interface{ Unwrap() []error }:
			stack = append(stack, unwrappable.Unwrap()...)
		}
	}

	if len(annotations) > 0 {
		attrs = append(attrs, slog.Attr{Key: "annotations", Value: slog.GroupValue(annotations...)})
	}
	if source := sourceLocation(pc); source != "" {
		attrs = append(attrs, slog.String("source", source))
	}

	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

func sourceLocation(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", frame.File, frame.Line)
}

// DecoratePanic converts a recovered panic value into an error whose
// source location points at the panic site. Returns nil when recovered
// is nil.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:]) //nolint:mnd // skip Callers and DecoratePanic.
	frames := runtime.CallersFrames(pcs[:n])
	var (
		pc        uintptr
		seenPanic bool
	)
	for {
		frame, more := frames.Next()
		if seenPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			pc = frame.PC
			break
		}
		if frame.Function == "runtime.gopanic" {
			seenPanic = true
		}
		if !more {
			break
		}
	}
	return &annotatedError{msg: fmt.Sprintf("panic: %v", recovered), pc: pc}
}

// New mirrors errors.New from the standard library.
func New(text string) error {
	return stderrors.New(text)
}

// Is mirrors errors.Is from the standard library.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As mirrors errors.As from the standard library.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap mirrors errors.Unwrap from the standard library.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join mirrors errors.Join from the standard library.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
