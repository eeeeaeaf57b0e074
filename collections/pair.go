package collections

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip], [ZipWithIndex] and their Mapping
// and UniqueSet counterparts, and the entry type exposed by Mapping lookups.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// PairOf returns a Pair of a and b.
func PairOf[A, B comparable](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
