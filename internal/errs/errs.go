// Package errs implements the four-kind error taxonomy of the core:
// DOMAIN, OVERFLOW, UNABLE and INTERNAL. It is the one place failures
// are constructed so that every layer reports faithfully instead of
// reinterpreting a lower layer's failure.
package errs

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Kind classifies why an operation failed.
type Kind string

const (
	// Domain means the inputs are well-formed but the operation is
	// undefined on them (division by zero, non-invertible modulus,
	// non-exact divexact, reversion of an invalid series, ...).
	Domain Kind = "DOMAIN"
	// Overflow means a size bound was exceeded (an allocation or an
	// exponent too large to represent).
	Overflow Kind = "OVERFLOW"
	// Unable means a probabilistic or heuristic algorithm did not
	// reach a definite answer within its effort budget.
	Unable Kind = "UNABLE"
	// Internal means an invariant of the core itself was violated.
	// Reaching this indicates a bug, not a bad input.
	Internal Kind = "INTERNAL"
)

// Op names the operation context surrounding a failure: the function
// that failed and a short description of the operands involved.
type Op struct {
	Name     string
	Operands string
}

func (o Op) String() string {
	if o.Operands == "" {
		return o.Name
	}
	return fmt.Sprintf("%s(%s)", o.Name, o.Operands)
}

// Error is the core's error type. It carries a Kind, the operation
// context, a human message, and — for Internal errors only — a
// correlation ID so that two aborts from independent threads are
// never confused when triaged from captured output (core values are
// not shared across threads per the concurrency model, but logs are).
type Error struct {
	Kind    Kind
	Op      Op
	Message string
	ID      string
	cause   error
}

func (e *Error) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s in %s: %s [%s]", e.Kind, e.Op, e.Message, e.ID)
	}
	return fmt.Sprintf("%s in %s: %s", e.Kind, e.Op, e.Message)
}

// Unwrap returns nil: an Error wraps no other error. Its cause field
// holds only the Error itself with the stack captured at construction
// (rendered by Abort), and exposing it here would make errors.Is loop.
func (e *Error) Unwrap() error { return nil }

func newError(kind Kind, op Op, format string, args ...interface{}) *Error {
	e := &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
	if kind == Internal {
		e.ID = uuid.NewString()
	}
	e.cause = errors.WithStack(e)
	return e
}

// NewDomain reports a DOMAIN error: the operation is undefined on
// otherwise well-formed inputs.
func NewDomain(op Op, format string, args ...interface{}) *Error {
	return newError(Domain, op, format, args...)
}

// NewOverflow reports an OVERFLOW error. sizeBits is the offending
// bit-length or byte-count, rendered human-readable in the message.
func NewOverflow(op Op, sizeBits uint64, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return newError(Overflow, op, "%s (size %s bits)", msg, humanize.Comma(int64(sizeBits)))
}

// NewUnable reports an UNABLE error: a probabilistic/heuristic
// algorithm exhausted its effort budget without a definite answer.
func NewUnable(op Op, format string, args ...interface{}) *Error {
	return newError(Unable, op, format, args...)
}

// NewInternal reports an INTERNAL error: a core invariant was
// violated. Callers that detect this should generally call Abort
// rather than propagate it further, since it indicates the core's own
// state can no longer be trusted.
func NewInternal(op Op, format string, args ...interface{}) *Error {
	return newError(Internal, op, format, args...)
}

// Is reports whether err is an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Abort renders err (with its stack trace, if any) to stderr and
// terminates the process. It is the single diagnostic-print routine
// required by spec §6.4 for fatal self-inconsistency; nothing else in
// the core calls os.Exit.
func Abort(err error) {
	tag := "INTERNAL"
	if isatty.IsTerminal(os.Stderr.Fd()) {
		tag = "\x1b[1;31mINTERNAL\x1b[0m"
	}
	var e *Error
	if errors.As(err, &e) && e.cause != nil {
		err = e.cause
	}
	fmt.Fprintf(os.Stderr, "%s: fatal invariant violation\n%+v\n", tag, err)
	os.Exit(2)
}
