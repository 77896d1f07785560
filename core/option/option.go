package option

import "errors"

// ErrCannotMatchUnsetValue is returned by MatchE for unset values without
// a None-branch.
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")

// Maybe is a type for optional values of type T. The zero value is unset.
type Maybe[T any] struct {
	value T
	set   bool
}

// Some wraps a value.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, set: true}
}

// None returns an unset optional value.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsNone is true if m is unset.
func (m Maybe[T]) IsNone() bool {
	return !m.set
}

// Unwrap returns the wrapped value, or the zero value of T if m is unset.
func (m Maybe[T]) Unwrap() T {
	return m.value
}

// Get returns the wrapped value and a flag telling if m is set.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.set
}

// OrElse returns the wrapped value or a default if m is unset.
func (m Maybe[T]) OrElse(dflt T) T {
	if m.set {
		return m.value
	}
	return dflt
}

// Set sets the wrapped value.
func (m *Maybe[T]) Set(v T) {
	m.value = v
	m.set = true
}

// Reset clears m.
func (m *Maybe[T]) Reset() {
	var zero T
	m.value = zero
	m.set = false
}

// Lazy returns the value of m. If m is unset, compute is called and its
// result is stored in m before returning it.
func (m *Maybe[T]) Lazy(compute func() T) T {
	if !m.set {
		m.Set(compute())
	}
	return m.value
}

func (m Maybe[T]) String() string {
	if !m.set {
		return "None"
	}
	return "Some"
}

// Match calls none if m is unset, some with the wrapped value otherwise.
func Match[T, R any](m Maybe[T], none func() R, some func(T) R) R {
	if !m.set {
		return none()
	}
	return some(m.value)
}

// MatchE matches like Match, but none may be nil. If it is nil and m is
// unset, ErrCannotMatchUnsetValue is returned.
func MatchE[T, R any](m Maybe[T], none func() R, some func(T) R) (R, error) {
	if !m.set {
		if none == nil {
			tracer().Debugf("match on unset value without None-branch")
			var zero R
			return zero, ErrCannotMatchUnsetValue
		}
		return none(), nil
	}
	return some(m.value), nil
}
