package collections

import "github.com/hasbyte1/go-lazy-collections/optional"

// Container is the contract shared by the element-oriented shapes,
// [Sequence] and [UniqueSet]. ([Mapping] exposes the analogous surface over
// key-value pairs and is not element-oriented, so it stays outside this
// interface.)
//
// Accept Container in your own functions so that consumers can pass either
// shape; the package-level aggregations ([Sum], [Average]) work this way.
//
// Every method except IsRealized and Implode forces realization of a lazy
// instance; see the package documentation for the realization rules.
type Container[T comparable] interface {
	// All returns a copy of every element as a plain Go slice, in the
	// container's iteration order.
	All() []T

	// ToSlice is an alias for All.
	ToSlice() []T

	// Len returns the number of elements.
	Len() int

	// IsEmpty reports whether the container has no elements.
	IsEmpty() bool

	// IsNotEmpty reports whether the container has at least one element.
	IsNotEmpty() bool

	// IsRealized reports whether the container holds concrete structure.
	// It never forces realization.
	IsRealized() bool

	// Contains reports whether the container holds value.
	Contains(value T) bool

	// CountBy returns the number of elements satisfying fn.
	CountBy(fn func(T) bool) int

	// Find returns the first element (in iteration order) satisfying fn,
	// or an absent Optional when none does.
	Find(fn func(T) bool) optional.Optional[T]

	// ForAll reports whether every element satisfies fn.
	// fn is applied to every element, even after a failure.
	ForAll(fn func(T) bool) bool

	// Each calls fn on every element, in iteration order, for side effects.
	Each(fn func(T))

	// Implode joins the string forms of all elements with sep.
	// On an unrealized container it returns a diagnostic naming the deferred
	// source instead, without forcing realization.
	Implode(sep string) string
}

// Number constrains the element types accepted by [Sum] and [Average].
// Restricting aggregation to numeric types at compile time replaces the
// runtime "not a number" failure mode entirely.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum returns the sum of all elements of c. An empty container sums to the
// zero value.
func Sum[T Number](c Container[T]) T {
	var sum T
	for _, v := range c.All() {
		sum += v
	}
	return sum
}

// Average returns the arithmetic mean of all elements of c, or 0 for an
// empty container.
func Average[T Number](c Container[T]) float64 {
	n := c.Len()
	if n == 0 {
		return 0
	}
	return float64(Sum(c)) / float64(n)
}
