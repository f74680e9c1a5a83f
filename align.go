package transmute

import "github.com/rawbytedev/transmute/internal/rawspan"

// CheckAlignment reports whether bytes starts on an address usable for
// reading values of T. On failure the returned *UnalignedError carries
// the number of leading bytes to discard, computed against T's
// alignment (not its size; the two differ for composite types), and a
// view of the rejected data for recovery by copy.
//
// A buffer with no backing array has no address and is trivially
// aligned; an empty slice with capacity is judged on its backing array.
func CheckAlignment[T any](bytes []byte) error {
	align := uintptr(rawspan.AlignOf[T]())
	off := rawspan.Addr(bytes) % align
	if off != 0 {
		return &UnalignedError[T]{Offset: int(align - off), Bytes: bytes}
	}
	return nil
}
