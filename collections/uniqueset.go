package collections

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hasbyte1/go-lazy-collections/arr"
	"github.com/hasbyte1/go-lazy-collections/hashing"
	"github.com/hasbyte1/go-lazy-collections/optional"
	"github.com/hasbyte1/go-lazy-collections/source"
)

// UniqueSet is an immutable container of unique elements with no positional
// meaning.
//
// Realization collapses duplicates, keeping the first occurrence. Iteration
// order is the first-insertion order of the realized instance: it carries no
// semantic weight and does not participate in equality, but it is stable —
// repeated iteration of the same instance always yields the same order.
//
// A UniqueSet follows the same two-state lifecycle as [Sequence]; Map and
// Filter never force realization of the receiver.
//
// All transformation methods return a new UniqueSet, leaving the receiver
// unchanged.
type UniqueSet[T comparable] struct {
	src      *source.Source[T]
	order    []T
	index    map[T]struct{}
	realized bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewUniqueSet creates a realized UniqueSet from a variadic list of
// elements. Duplicates collapse, keeping the first occurrence.
func NewUniqueSet[T comparable](items ...T) *UniqueSet[T] {
	return UniqueSetFrom(items)
}

// UniqueSetFrom creates a realized UniqueSet from a slice (the slice is
// copied; duplicates collapse).
func UniqueSetFrom[T comparable](items []T) *UniqueSet[T] {
	s := &UniqueSet[T]{realized: true}
	s.build(items)
	return s
}

// EmptyUniqueSet creates an empty realized UniqueSet of type T.
func EmptyUniqueSet[T comparable]() *UniqueSet[T] {
	return UniqueSetFrom[T](nil)
}

// UniqueSetFromSource creates an unrealized UniqueSet over a deferred
// source. The source becomes the exclusive property of the UniqueSet.
func UniqueSetFromSource[T comparable](src *source.Source[T]) *UniqueSet[T] {
	if src == nil {
		return EmptyUniqueSet[T]()
	}
	return &UniqueSet[T]{src: src}
}

// ─────────────────────────────────────────────────────────────────────────────
// Realization
// ─────────────────────────────────────────────────────────────────────────────

// build installs the concrete unique structure from raw items.
func (s *UniqueSet[T]) build(items []T) {
	order := arr.Unique(items)
	index := make(map[T]struct{}, len(order))
	for _, item := range order {
		index[item] = struct{}{}
	}
	s.order = order
	s.index = index
}

// realize converts the UniqueSet to its concrete form. Idempotent; the
// source reference is held until the content is fully built, then released.
func (s *UniqueSet[T]) realize() {
	if s.realized {
		return
	}
	s.build(s.src.Drain())
	s.src = nil
	s.realized = true
}

// IsRealized reports whether the UniqueSet holds concrete structure.
// It never forces realization.
func (s *UniqueSet[T]) IsRealized() bool { return s.realized }

// upstream exposes the UniqueSet's current contents as a source without
// forcing realization.
func (s *UniqueSet[T]) upstream() *source.Source[T] {
	if s.realized {
		return source.FromSlice(s.order)
	}
	return s.src
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of unique elements, forcing realization.
func (s *UniqueSet[T]) Len() int {
	s.realize()
	return len(s.order)
}

// IsEmpty reports whether the UniqueSet has no elements.
func (s *UniqueSet[T]) IsEmpty() bool { return s.Len() == 0 }

// IsNotEmpty reports whether the UniqueSet has at least one element.
func (s *UniqueSet[T]) IsNotEmpty() bool { return s.Len() > 0 }

// Contains reports whether the UniqueSet holds value.
func (s *UniqueSet[T]) Contains(value T) bool {
	s.realize()
	_, ok := s.index[value]
	return ok
}

// All returns a copy of the elements as a plain Go slice, in the stable
// iteration order of this realized instance.
func (s *UniqueSet[T]) All() []T {
	s.realize()
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

// ToSlice is an alias for [UniqueSet.All].
func (s *UniqueSet[T]) ToSlice() []T { return s.All() }

// ToJSON serialises the elements to a JSON array in iteration order,
// forcing realization.
func (s *UniqueSet[T]) ToJSON() ([]byte, error) {
	s.realize()
	return json.Marshal(s.order)
}

// String returns a JSON representation of a realized UniqueSet, or a
// diagnostic naming the deferred source on an unrealized one (never forcing
// realization). It implements [fmt.Stringer].
func (s *UniqueSet[T]) String() string {
	if !s.realized {
		return fmt.Sprintf("UniqueSet(<deferred %s>)", s.src.Name())
	}
	b, err := json.Marshal(s.order)
	if err != nil {
		return fmt.Sprintf("%v", s.order)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Scanning
// ─────────────────────────────────────────────────────────────────────────────

// CountBy returns the number of elements satisfying fn.
func (s *UniqueSet[T]) CountBy(fn func(T) bool) int {
	s.realize()
	return arr.CountBy(s.order, fn)
}

// Find returns the first element (in iteration order) satisfying fn, or an
// absent Optional when none does.
func (s *UniqueSet[T]) Find(fn func(T) bool) optional.Optional[T] {
	s.realize()
	if v, ok := arr.First(s.order, fn); ok {
		return optional.Some(v)
	}
	return optional.None[T]()
}

// ForAll reports whether every element satisfies fn. fn is applied to every
// element even after a failure.
func (s *UniqueSet[T]) ForAll(fn func(T) bool) bool {
	s.realize()
	return arr.ForAll(s.order, fn)
}

// Each calls fn on every element, in iteration order, for side effects.
func (s *UniqueSet[T]) Each(fn func(T)) {
	s.realize()
	for _, item := range s.order {
		fn(item)
	}
}

// Fold left-folds the elements (in iteration order) with initial as the
// seed. Returns [ErrEmptyCollection] on an empty UniqueSet.
func (s *UniqueSet[T]) Fold(initial T, fn func(acc, item T) T) (T, error) {
	s.realize()
	if len(s.order) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return arr.FoldLeft(s.order, initial, fn), nil
}

// Reduce left-folds the elements using the first element (in iteration
// order) as the seed. Returns [ErrEmptyCollection] on an empty UniqueSet.
func (s *UniqueSet[T]) Reduce(fn func(acc, item T) T) (T, error) {
	s.realize()
	if v, ok := arr.ReduceLeft(s.order, fn); ok {
		return v, nil
	}
	var zero T
	return zero, ErrEmptyCollection
}

// Implode joins the string forms of all elements with sep, in iteration
// order. On an unrealized UniqueSet it returns the deferred-source
// diagnostic without forcing realization.
func (s *UniqueSet[T]) Implode(sep string) string {
	if !s.realized {
		return fmt.Sprintf("UniqueSet(<deferred %s>)", s.src.Name())
	}
	parts := make([]string, len(s.order))
	for i, item := range s.order {
		parts[i] = fmt.Sprintf("%v", item)
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Set algebra
// ─────────────────────────────────────────────────────────────────────────────

// Union returns a new UniqueSet holding every element of s and other.
// Both operands are realized; the result iterates s's elements first.
func (s *UniqueSet[T]) Union(other *UniqueSet[T]) *UniqueSet[T] {
	s.realize()
	other.realize()
	merged := make([]T, 0, len(s.order)+len(other.order))
	merged = append(merged, s.order...)
	merged = append(merged, other.order...)
	return UniqueSetFrom(merged)
}

// Intersect returns a new UniqueSet holding the elements present in both s
// and other. Both operands are realized.
func (s *UniqueSet[T]) Intersect(other *UniqueSet[T]) *UniqueSet[T] {
	s.realize()
	other.realize()
	out := make([]T, 0, len(s.order))
	for _, item := range s.order {
		if _, ok := other.index[item]; ok {
			out = append(out, item)
		}
	}
	return UniqueSetFrom(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Lazy transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new unrealized UniqueSet that will hold fn(item) for every
// element; duplicates produced by fn collapse at realization. The receiver
// is not realized by this call.
// For type-changing maps, use the package-level [MapSetTo].
func (s *UniqueSet[T]) Map(fn func(T) T) *UniqueSet[T] {
	return UniqueSetFromSource(source.Map(s.upstream(), fn))
}

// Filter returns a new unrealized UniqueSet that will hold only the
// elements for which fn returns true. The receiver is not realized by this
// call.
func (s *UniqueSet[T]) Filter(fn func(T) bool) *UniqueSet[T] {
	return UniqueSetFromSource(source.Filter(s.upstream(), fn))
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality & hashing
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether s and other hold the same elements. Iteration order
// does not participate. Both operands are realized.
func (s *UniqueSet[T]) Equal(other *UniqueSet[T]) bool {
	s.realize()
	other.realize()
	if len(s.order) != len(other.order) {
		return false
	}
	for _, item := range s.order {
		if _, ok := other.index[item]; !ok {
			return false
		}
	}
	return true
}

// Digest returns a stable, order-free content digest of the realized
// elements. UniqueSets for which Equal is true produce equal digests.
func (s *UniqueSet[T]) Digest() hashing.Digest {
	s.realize()
	return hashing.SumUnordered(anySlice(s.order))
}

// ─────────────────────────────────────────────────────────────────────────────
// Package-level operations
// ─────────────────────────────────────────────────────────────────────────────

// MapSetTo returns a new unrealized UniqueSet[U] that will hold fn(item)
// for every element of s. Lazy, like [UniqueSet.Map].
func MapSetTo[T, U comparable](s *UniqueSet[T], fn func(T) U) *UniqueSet[U] {
	return UniqueSetFromSource(source.Map(s.upstream(), fn))
}

// FlatMapSetTo applies fn to every element (producing a []U per element)
// and collects the union of the results into a new realized UniqueSet[U].
// Forces realization of s.
func FlatMapSetTo[T, U comparable](s *UniqueSet[T], fn func(T) []U) *UniqueSet[U] {
	s.realize()
	chunks := make([][]U, len(s.order))
	for i, item := range s.order {
		chunks[i] = fn(item)
	}
	return UniqueSetFrom(arr.Flatten(chunks))
}

// FlattenSets collapses one level of nested UniqueSets into the union of
// the inner sets. Nil inner sets are skipped; non-nil inner sets are
// realized.
func FlattenSets[T comparable](s *UniqueSet[*UniqueSet[T]]) *UniqueSet[T] {
	s.realize()
	chunks := make([][]T, 0, len(s.order))
	for _, inner := range s.order {
		if inner == nil {
			continue
		}
		inner.realize()
		chunks = append(chunks, inner.order)
	}
	return UniqueSetFrom(arr.Flatten(chunks))
}

// ZipSets pairs the elements of a and b by iteration order into a new
// realized UniqueSet of Pairs, truncating to the shorter input. Both
// operands are realized.
func ZipSets[A, B comparable](a *UniqueSet[A], b *UniqueSet[B]) *UniqueSet[Pair[A, B]] {
	a.realize()
	b.realize()
	n := min(len(a.order), len(b.order))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a.order[i], Second: b.order[i]}
	}
	return UniqueSetFrom(out)
}

// ZipSetWithIndex pairs every element with its position in the iteration
// order of this realized instance, producing a new realized UniqueSet of
// (element, index) Pairs.
func ZipSetWithIndex[T comparable](s *UniqueSet[T]) *UniqueSet[Pair[T, int]] {
	s.realize()
	out := make([]Pair[T, int], len(s.order))
	for i, item := range s.order {
		out[i] = Pair[T, int]{First: item, Second: i}
	}
	return UniqueSetFrom(out)
}
