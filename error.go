package transmute

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/transmute/internal/rawspan"
)

// ErrInvalidValue reports that the bytes hold a bit pattern which is not
// a legal value of the target type. Returned by value-predicate layers
// such as the bool surface; plain reinterpretation never produces it.
var ErrInvalidValue = errors.New("invalid value for target type")

// ErrorReason says how a buffer length failed a boundary guard.
type ErrorReason int

const (
	// NotEnoughBytes: too few bytes to fill even one instance of the type.
	NotEnoughBytes ErrorReason = iota
	// TooManyBytes: too many bytes for the type. Currently unused,
	// reserved for guards that cap the element count.
	TooManyBytes
	// InexactByteCount: the byte count is not the one the guard demands
	// (not equal to, or not a multiple of, the element size).
	InexactByteCount
)

func (r ErrorReason) String() string {
	switch r {
	case NotEnoughBytes:
		return "not enough bytes to fill type"
	case TooManyBytes:
		return "too many bytes for type"
	case InexactByteCount:
		return "not exactly the amount of bytes for type"
	default:
		return "unknown guard failure"
	}
}

// GuardError is a boundary-length violation produced by a Guard.
// Required and Actual are byte counts; Required is always the target
// element size. It carries no buffer and no recovery path: pick a
// different guard or fix the length.
type GuardError struct {
	Required int
	Actual   int
	Reason   ErrorReason
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("%s (required: %d, actual: %d)", e.Reason, e.Required, e.Actual)
}

// UnalignedError reports that a byte buffer does not start on an address
// usable for reading values of T. Offset is the number of leading bytes
// to discard for the remainder to be aligned; it is always in
// [1, alignof(T)). Bytes is the rejected buffer, kept so the access can
// be retried by copying.
type UnalignedError[T any] struct {
	Offset int
	Bytes  []byte
}

func (e *UnalignedError[T]) Error() string {
	return fmt.Sprintf("data is unaligned (off by %d bytes)", e.Offset)
}

// Copy duplicates the rejected bytes into a freshly allocated []T, which
// is aligned by construction, so it always succeeds. The element count
// is floor(len(Bytes)/sizeof(T)). T must carry the trivial-transmute
// capability; Copy panics otherwise.
func (e *UnalignedError[T]) Copy() []T {
	assertTrivial[T]()
	return e.CopyUnchecked()
}

// CopyUnchecked is Copy without the capability check. The caller takes
// on the obligation that every copied bit pattern is a valid T.
func (e *UnalignedError[T]) CopyUnchecked() []T {
	return copyBytesTo[T](e.Bytes)
}

// IncompatibleVecTargetError reports that an owned buffer of S cannot
// have its allocation reused as a buffer of T because the two layouts
// differ in size or alignment. It takes the original buffer with it, so
// recovery does not need to re-acquire the data.
type IncompatibleVecTargetError[S, T any] struct {
	Vec []S
}

func (e *IncompatibleVecTargetError[S, T]) Error() string {
	return fmt.Sprintf("incompatible target type (size: %d, align: %d) for transmutation from source (size: %d, align: %d)",
		rawspan.SizeOf[T](), rawspan.AlignOf[T](), rawspan.SizeOf[S](), rawspan.AlignOf[S]())
}

// Copy duplicates the buffer's bytes into a freshly allocated []T of
// floor(len(Vec)*sizeof(S)/sizeof(T)) elements. Always succeeds; T must
// carry the trivial-transmute capability.
func (e *IncompatibleVecTargetError[S, T]) Copy() []T {
	assertTrivial[T]()
	return e.CopyUnchecked()
}

// CopyUnchecked is Copy without the capability check.
func (e *IncompatibleVecTargetError[S, T]) CopyUnchecked() []T {
	return copyBytesTo[T](rawspan.Bytes(e.Vec))
}

// UnalignedVecError reports that an owned byte buffer's backing array is
// not aligned for reuse as a buffer of T. Like
// IncompatibleVecTargetError it carries the original buffer back to the
// caller; Offset is the misalignment as in UnalignedError.
type UnalignedVecError[T any] struct {
	Offset int
	Vec    []byte
}

func (e *UnalignedVecError[T]) Error() string {
	return fmt.Sprintf("vector data is unaligned (off by %d bytes)", e.Offset)
}

// Copy duplicates the buffer into a freshly allocated []T. Always
// succeeds; T must carry the trivial-transmute capability.
func (e *UnalignedVecError[T]) Copy() []T {
	assertTrivial[T]()
	return e.CopyUnchecked()
}

// CopyUnchecked is Copy without the capability check.
func (e *UnalignedVecError[T]) CopyUnchecked() []T {
	return copyBytesTo[T](e.Vec)
}

// copyBytesTo copies floor(len(b)/sizeof(T)) whole elements worth of
// bytes into a new []T. The destination never overlaps b.
func copyBytesTo[T any](b []byte) []T {
	size := rawspan.SizeOf[T]()
	if size == 0 {
		return make([]T, 0)
	}
	out := make([]T, len(b)/size)
	copy(rawspan.Bytes(out), b)
	return out
}
