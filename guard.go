package transmute

// A Guard decides whether a buffer of length bytes may be reinterpreted
// as elements of the given size. Guards are pure length arithmetic: they
// never look at the data and never allocate. The checked entry points
// take a Guard per call, so the policy is a call-site choice.
//
// Every policy must handle size 0 without dividing: zero-sized element
// types satisfy "at least one" and "a whole number of elements" for any
// length.
type Guard interface {
	Check(length, size int) error
}

// PermissiveGuard accepts any length. The resulting view holds as many
// elements as fit, rounded down; leftover bytes are silently ignored.
type PermissiveGuard struct{}

func (PermissiveGuard) Check(length, size int) error {
	return nil
}

// SingleValueGuard accepts only a length exactly equal to the element
// size: one value, no trailing space.
type SingleValueGuard struct{}

func (SingleValueGuard) Check(length, size int) error {
	if length != size {
		return &GuardError{Required: size, Actual: length, Reason: InexactByteCount}
	}
	return nil
}

// SingleManyGuard accepts any length that fits at least one element,
// ignoring extraneous trailing bytes.
type SingleManyGuard struct{}

func (SingleManyGuard) Check(length, size int) error {
	if length < size {
		return &GuardError{Required: size, Actual: length, Reason: NotEnoughBytes}
	}
	return nil
}

// PedanticGuard accepts a length that fits at least one element and is
// an exact multiple of the element size.
type PedanticGuard struct{}

func (PedanticGuard) Check(length, size int) error {
	if length < size {
		return &GuardError{Required: size, Actual: length, Reason: NotEnoughBytes}
	}
	if size != 0 && length%size != 0 {
		return &GuardError{Required: size, Actual: length, Reason: InexactByteCount}
	}
	return nil
}

// AllOrNothingGuard accepts any exact multiple of the element size,
// including zero.
type AllOrNothingGuard struct{}

func (AllOrNothingGuard) Check(length, size int) error {
	if size != 0 && length%size != 0 {
		return &GuardError{Required: size, Actual: length, Reason: InexactByteCount}
	}
	return nil
}
