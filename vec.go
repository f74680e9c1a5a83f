package transmute

import "github.com/rawbytedev/transmute/internal/rawspan"

// Vec converts an owned buffer of S elements into an owned buffer of T
// elements by relabeling the backing array, without copying. Reuse is
// legal only when S and T have identical size and alignment; element
// count and capacity carry over unchanged. On success the input slice
// must be treated as dead: exactly one handle to the allocation should
// stay live, and it is the returned one.
//
// On a layout mismatch the original buffer comes back inside
// *IncompatibleVecTargetError, whose Copy method performs the always-
// successful recovery into a fresh allocation.
func Vec[S, T any](vec []S) ([]T, error) {
	assertTrivial[T]()
	if rawspan.SizeOf[S]() != rawspan.SizeOf[T]() || rawspan.AlignOf[S]() != rawspan.AlignOf[T]() {
		return nil, &IncompatibleVecTargetError[S, T]{Vec: vec}
	}
	return rawspan.Reinterpret[T](vec), nil
}

// VecFromBytes converts an owned byte buffer into an owned []T by
// reusing the backing array, rescaling both length and capacity to
// whole elements. The guard validates the length first; then the
// backing array's address is checked against T's alignment, since Go
// does not promise byte allocations any particular alignment. A
// misaligned buffer comes back inside *UnalignedVecError for recovery
// by copy. As with Vec, the input must be treated as dead on success.
func VecFromBytes[T any](vec []byte, g Guard) ([]T, error) {
	assertTrivial[T]()
	if err := g.Check(len(vec), rawspan.SizeOf[T]()); err != nil {
		return nil, err
	}
	if err := CheckAlignment[T](vec); err != nil {
		ue := err.(*UnalignedError[T])
		return nil, &UnalignedVecError[T]{Offset: ue.Offset, Vec: vec}
	}
	return rawspan.Reinterpret[T](vec), nil
}

// VecFromBytesPermissive is VecFromBytes under PermissiveGuard.
func VecFromBytesPermissive[T any](vec []byte) ([]T, error) {
	return VecFromBytes[T](vec, PermissiveGuard{})
}

// VecFromBytesPedantic is VecFromBytes under PedanticGuard.
func VecFromBytesPedantic[T any](vec []byte) ([]T, error) {
	return VecFromBytes[T](vec, PedanticGuard{})
}
