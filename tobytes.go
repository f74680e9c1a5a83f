package transmute

import "github.com/rawbytedev/transmute/internal/rawspan"

// The bytes direction is always legal: byte alignment is 1, which
// divides every alignment, and byte granularity divides every size.
// None of these functions can fail and none allocate.

// ToBytes views a single value as its sizeof(T) underlying bytes. The
// view aliases v; mutating it mutates the value, bit for bit.
func ToBytes[T any](v *T) []byte {
	return rawspan.BytesOne(v)
}

// ToBytesMany views a slice of T as its underlying len(s)*sizeof(T)
// bytes. The view aliases s and must not outlive it.
func ToBytesMany[T any](s []T) []byte {
	return rawspan.Bytes(s)
}

// ToBytesVec converts an owned []T into an owned []byte reusing the
// backing array, with length and capacity scaled to bytes. The input
// must be treated as dead on return.
func ToBytesVec[T any](s []T) []byte {
	return rawspan.Reinterpret[byte](s)
}
