package transmute

import "github.com/rawbytedev/transmute/internal/rawspan"

// bool is deliberately outside the trivial-transmute capability: its
// values are restricted to 0 and 1, so an explicit per-byte predicate
// runs before any aliasing. Alignment is trivially satisfied (bool has
// size and alignment 1), leaving guard and value checks as the only
// failure modes.

// BytesAreBool reports whether every byte is a valid bool bit pattern.
func BytesAreBool(v []byte) bool {
	for _, b := range v {
		if b > 1 {
			return false
		}
	}
	return true
}

// Bools views bytes as a []bool over the same memory once the guard and
// the per-byte value predicate both pass. A byte outside {0, 1} yields
// ErrInvalidValue; there is no recovery short of rewriting the data.
func Bools(bytes []byte, g Guard) ([]bool, error) {
	if err := g.Check(len(bytes), 1); err != nil {
		return nil, err
	}
	if !BytesAreBool(bytes) {
		return nil, ErrInvalidValue
	}
	return rawspan.View[bool](bytes), nil
}

// BoolsPermissive is Bools under PermissiveGuard.
func BoolsPermissive(bytes []byte) ([]bool, error) {
	return Bools(bytes, PermissiveGuard{})
}

// BoolsPedantic is Bools under PedanticGuard: at least one byte.
func BoolsPedantic(bytes []byte) ([]bool, error) {
	return Bools(bytes, PedanticGuard{})
}

// BoolVec converts an owned byte buffer into an owned []bool reusing
// the backing array. Size and alignment match exactly, so reuse never
// fails for layout reasons; only the guard and the value predicate can
// reject. The input must be treated as dead on success.
func BoolVec(vec []byte, g Guard) ([]bool, error) {
	if err := g.Check(len(vec), 1); err != nil {
		return nil, err
	}
	if !BytesAreBool(vec) {
		return nil, ErrInvalidValue
	}
	return rawspan.Reinterpret[bool](vec), nil
}

// BoolVecPermissive is BoolVec under PermissiveGuard.
func BoolVecPermissive(vec []byte) ([]bool, error) {
	return BoolVec(vec, PermissiveGuard{})
}

// BoolVecPedantic is BoolVec under PedanticGuard.
func BoolVecPedantic(vec []byte) ([]bool, error) {
	return BoolVec(vec, PedanticGuard{})
}
