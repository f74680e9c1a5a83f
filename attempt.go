package transmute

import "errors"

// Recovery combinators: wrap a checked call and fall back to the
// error's built-in copy when the failure is recoverable. Guard and
// invalid-value failures propagate untouched, since no copy can fix a
// wrong length or a bad bit pattern.

// TryCopy unwraps a borrowed-view result such as Many's. On an
// alignment failure the rejected bytes are copied into a fresh,
// aligned buffer; the result is then owned rather than borrowed, which
// is the price of recovery.
//
//	words, err := transmute.TryCopy(transmute.ManyPermissive[uint16](bytes))
func TryCopy[T any](view []T, err error) ([]T, error) {
	if err == nil {
		return view, nil
	}
	var ue *UnalignedError[T]
	if errors.As(err, &ue) {
		return ue.Copy(), nil
	}
	return nil, err
}

// TryCopyVec unwraps an owned-buffer result such as Vec's or
// VecFromBytes's, recovering from layout-incompatible and unaligned
// buffer failures by copying.
func TryCopyVec[S, T any](out []T, err error) ([]T, error) {
	if err == nil {
		return out, nil
	}
	var ive *IncompatibleVecTargetError[S, T]
	if errors.As(err, &ive) {
		return ive.Copy(), nil
	}
	var uve *UnalignedVecError[T]
	if errors.As(err, &uve) {
		return uve.Copy(), nil
	}
	return nil, err
}
