package fastfile

import (
	"errors"
	"fmt"
	"syscall"
)

// Kind classifies a fastfile error.
type Kind int

const (
	// KindMemOp indicates a buffer-sizing or allocation invariant was violated.
	KindMemOp Kind = iota + 1

	// KindFileOp indicates an open, stat, mmap, munmap or advisory operation failed.
	KindFileOp

	// KindLibc indicates a specific low-level system call returned a failure.
	KindLibc
)

func (k Kind) String() string {
	switch k {
	case KindMemOp:
		return "memory operation failed"
	case KindFileOp:
		return "file operation failed"
	case KindLibc:
		return "libc function failed"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by fastfile operations.
//
// Op holds the failure reason for KindMemOp, the operation name for
// KindFileOp (open, stat, mmap, ...) and the system call name for KindLibc.
// Err is the underlying cause, if any; syscall failures are captured as
// KindLibc errors and wrapped in a KindFileOp error by the operation that
// issued them.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fastfile: %s: %s: %v", e.Kind, e.Op, e.Err)
	}
	return fmt.Sprintf("fastfile: %s: %s", e.Kind, e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MemOpFailed creates a KindMemOp error with the given reason.
func MemOpFailed(reason string) *Error {
	return &Error{Kind: KindMemOp, Op: reason}
}

// FileOpFailed wraps err as a failure of the file operation op.
func FileOpFailed(op string, err error) *Error {
	return &Error{Kind: KindFileOp, Op: op, Err: err}
}

// LibcFailed records the failure of the named system call.
func LibcFailed(syscallName string, err error) *Error {
	return &Error{Kind: KindLibc, Op: syscallName, Err: err}
}

// Sentinel errors
var (
	// ErrMixedDrain is returned when Next and ReadToEnd are used on the same Reader.
	ErrMixedDrain = errors.New("fastfile: read and read-to-end must not be mixed on one reader")

	// ErrReaderClosed is returned by operations on a closed Reader.
	ErrReaderClosed = errors.New("fastfile: reader is closed")

	// ErrEmptyMapping is returned when a zero-length file is opened with the mapped backend.
	ErrEmptyMapping = errors.New("fastfile: cannot map an empty file")
)

// KindOf returns the kind of the outermost fastfile error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// HasKind reports whether any fastfile error in err's chain has the given kind.
func HasKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}

// IsInterrupted reports whether err was caused by an interrupted system call.
// Readers never retry on their own; callers driving a read loop should retry
// when IsInterrupted returns true.
func IsInterrupted(err error) bool {
	return errors.Is(err, syscall.EINTR)
}
