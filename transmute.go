// Package transmute reinterprets byte buffers as buffers of other
// element types without copying, behind checks that make the operation
// recoverable instead of undefined: a boundary guard validates the
// length, an alignment check validates the start address, and a
// capability registry restricts targets to types for which any bit
// pattern is a valid value. Byte order is whatever the platform uses;
// this is not a serialization format.
//
// Failures come back as typed errors. Alignment and owned-buffer
// failures carry the rejected data and offer a Copy method that always
// succeeds, so the zero-copy fast path degrades to one allocation
// instead of an abort. See TryCopy for the usual calling pattern.
//
// Functions with an Unchecked suffix skip the alignment and capability
// checks. They are the escape hatch for callers that have established
// those preconditions elsewhere.
package transmute

import "github.com/rawbytedev/transmute/internal/rawspan"

// One reads a single T out of the leading sizeof(T) bytes. Extraneous
// trailing bytes are ignored. The value is copied out of the buffer;
// there is no allocation.
func One[T any](bytes []byte) (T, error) {
	return one[T](bytes, SingleManyGuard{})
}

// OnePedantic is One but the buffer must hold exactly sizeof(T) bytes.
func OnePedantic[T any](bytes []byte) (T, error) {
	return one[T](bytes, SingleValueGuard{})
}

func one[T any](bytes []byte, g Guard) (T, error) {
	assertTrivial[T]()
	var zero T
	if err := g.Check(len(bytes), rawspan.SizeOf[T]()); err != nil {
		return zero, err
	}
	if err := CheckAlignment[T](bytes); err != nil {
		return zero, err
	}
	return rawspan.One[T](bytes), nil
}

// Many views bytes as a []T over the same memory, with
// floor(len(bytes)/sizeof(T)) elements. The guard decides which lengths
// are acceptable; the view is only produced once guard, alignment and
// capability checks have all passed. The result aliases bytes and must
// not outlive it.
func Many[T any](bytes []byte, g Guard) ([]T, error) {
	assertTrivial[T]()
	if err := g.Check(len(bytes), rawspan.SizeOf[T]()); err != nil {
		return nil, err
	}
	if err := CheckAlignment[T](bytes); err != nil {
		return nil, err
	}
	return rawspan.View[T](bytes), nil
}

// ManyPermissive is Many under PermissiveGuard: any length is accepted
// and leftover bytes are silently dropped from the view.
func ManyPermissive[T any](bytes []byte) ([]T, error) {
	return Many[T](bytes, PermissiveGuard{})
}

// ManyPedantic is Many under PedanticGuard: at least one element and no
// leftover bytes.
func ManyPedantic[T any](bytes []byte) ([]T, error) {
	return Many[T](bytes, PedanticGuard{})
}

// OneUnchecked reads a single T after only a length check. The caller
// must ensure the buffer is aligned for T and that the bytes form a
// valid T.
func OneUnchecked[T any](bytes []byte) (T, error) {
	var zero T
	if err := (SingleManyGuard{}).Check(len(bytes), rawspan.SizeOf[T]()); err != nil {
		return zero, err
	}
	return rawspan.One[T](bytes), nil
}

// ManyUnchecked views bytes as []T after only the guard's length check.
// The caller must ensure alignment and value validity.
func ManyUnchecked[T any](bytes []byte, g Guard) ([]T, error) {
	if err := g.Check(len(bytes), rawspan.SizeOf[T]()); err != nil {
		return nil, err
	}
	return rawspan.View[T](bytes), nil
}
