package transmute

import (
	"fmt"
	"reflect"
	"sync"
)

// The trivial-transmute capability: a type carries it when every bit
// pattern of the type's size is a legal value of that type. Primitive
// numeric types and fixed-size arrays of capable element types qualify
// automatically. Custom struct types must be admitted explicitly with
// RegisterTrivial; the registry defaults closed.
//
// bool never qualifies (values are restricted to 0 and 1); the bool
// surface in this package layers an explicit value predicate on top of
// the core instead.

var (
	trivialMu  sync.RWMutex
	trivialReg = make(map[reflect.Type]struct{})
)

// RegisterTrivial asserts that any sizeof(T) bytes form a valid T, and
// admits T to the checked transmutation entry points. The assertion
// itself cannot be verified here and stays the caller's obligation;
// kinds that can never qualify (pointers, slices, maps, strings, bools,
// chans, funcs, interfaces, anywhere in the type) are rejected with a
// panic. Meant to be called from init.
func RegisterTrivial[T any]() {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if !registrable(t) {
		panic(fmt.Sprintf("transmute: %v cannot be trivially transmutable", t))
	}
	trivialMu.Lock()
	trivialReg[t] = struct{}{}
	trivialMu.Unlock()
}

// IsTriviallyTransmutable reports whether T carries the capability,
// either automatically or through registration.
func IsTriviallyTransmutable[T any]() bool {
	return isTrivial(reflect.TypeOf((*T)(nil)).Elem())
}

func isTrivial(t reflect.Type) bool {
	if numericKind(t.Kind()) {
		return true
	}
	if t.Kind() == reflect.Array {
		return isTrivial(t.Elem())
	}
	trivialMu.RLock()
	_, ok := trivialReg[t]
	trivialMu.RUnlock()
	return ok
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// registrable walks t rejecting any kind whose value domain is
// restricted or whose representation holds references.
func registrable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return registrable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !registrable(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return numericKind(t.Kind())
	}
}

// assertTrivial panics when T lacks the capability. Checked entry
// points call it up front: using them with an unregistered custom type
// is API misuse, not a data-dependent failure, so it does not get an
// error value.
func assertTrivial[T any]() {
	if !IsTriviallyTransmutable[T]() {
		panic(fmt.Sprintf("transmute: %v is not trivially transmutable; use RegisterTrivial or an Unchecked variant", reflect.TypeOf((*T)(nil)).Elem()))
	}
}
