// Package optional provides a small two-variant value type used by lookup
// operations in the collections package.
//
// An Optional[T] is either present (it wraps a value of type T) or absent.
// It replaces the (value, ok) comma-ok pair in APIs where absence is a
// normal, expected outcome that should travel as a single value — most
// notably Sequence.Find and Mapping.Get. Absence is never an error.
package optional

import "fmt"

// Optional holds either a present value of type T or nothing.
// The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional wrapping v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether o wraps a value.
func (o Optional[T]) IsPresent() bool { return o.present }

// IsAbsent reports whether o is empty.
func (o Optional[T]) IsAbsent() bool { return !o.present }

// Get returns the wrapped value and a presence flag, mirroring the comma-ok
// idiom for callers that prefer it.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the wrapped value.
// It panics when o is absent; callers should test IsPresent first or use
// [Optional.OrElse].
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("optional: MustGet on absent value")
	}
	return o.value
}

// OrElse returns the wrapped value when present, def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// String returns "Some(v)" or "None".
// It implements [fmt.Stringer].
func (o Optional[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies fn to the wrapped value when present and returns the result
// as an Optional[U]. An absent input yields an absent output.
//
// Go methods cannot introduce new type parameters, so Map is a package-level
// function.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.value))
}
