package rawspan

import "unsafe"

// Package rawspan holds the raw pointer-reinterpretation primitives that
// the checked transmute API is built on. Nothing in here validates
// length, alignment or element values; callers must have run the guard
// and alignment checks first. Keep this package internal.

// SizeOf returns the size of T in bytes.
func SizeOf[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// AlignOf returns the minimum alignment of T in bytes.
func AlignOf[T any]() int {
	var v T
	return int(unsafe.Alignof(v))
}

// Reinterpret aliases the backing array of in as a slice of Out.
// Length and capacity are rescaled from In elements to Out elements,
// rounding down. The result shares memory with in.
func Reinterpret[Out, In any](in []In) []Out {
	if cap(in) == 0 {
		return nil
	}
	outSize := SizeOf[Out]()
	if outSize == 0 {
		return make([]Out, 0)
	}
	ptr := (*Out)(unsafe.Pointer(unsafe.SliceData(in[:cap(in)])))
	inSize := SizeOf[In]()
	lenOut := len(in) * inSize / outSize
	capOut := cap(in) * inSize / outSize
	return unsafe.Slice(ptr, capOut)[:lenOut]
}

// View aliases the leading floor(len(b)/sizeof(T)) elements of b as []T.
// Unlike Reinterpret it ignores spare capacity, so the result is a plain
// window over the bytes passed in.
func View[T any](b []byte) []T {
	size := SizeOf[T]()
	if size == 0 || len(b) < size {
		return make([]T, 0)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/size)
}

// One reads a single T out of the leading sizeof(T) bytes of b.
// b must hold at least sizeof(T) bytes and be aligned for T.
func One[T any](b []byte) T {
	var v T
	if unsafe.Sizeof(v) == 0 {
		return v
	}
	return *(*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Bytes aliases a slice of T as its underlying bytes, len(s)*sizeof(T)
// long. Capacity is not carried over; use Reinterpret for vec reuse.
func Bytes[T any](s []T) []byte {
	if len(s) == 0 {
		return make([]byte, 0)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*SizeOf[T]())
}

// BytesOne aliases a single value as its sizeof(T) underlying bytes.
func BytesOne[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), SizeOf[T]())
}

// Addr returns the backing array address of b, or 0 when b has no
// backing array. A zero-length slice with capacity still has an
// address, and that address is judged, not the (empty) window.
func Addr(b []byte) uintptr {
	if cap(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}
