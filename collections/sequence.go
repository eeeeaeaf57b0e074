package collections

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hasbyte1/go-lazy-collections/arr"
	"github.com/hasbyte1/go-lazy-collections/hashing"
	"github.com/hasbyte1/go-lazy-collections/optional"
	"github.com/hasbyte1/go-lazy-collections/source"
)

// Sequence is an immutable ordered container that permits duplicates and
// supports 0-based positional access.
//
// A Sequence is in one of two states. Built from concrete elements ([NewSequence],
// [SequenceFrom]) it is realized immediately: it holds an immutable slice.
// Built from a deferred source ([SequenceFromSource]) it stays unrealized —
// no element is produced — until the first operation that needs concrete
// structure (length, indexing, equality, folding). Realization happens at
// most once; afterwards the source reference is dropped and the instance is
// a plain immutable value.
//
// Map, Filter and TakeWhile never force realization of the receiver: they
// return a new unrealized Sequence over a derived source. If the receiver
// itself is unrealized, the derived Sequence reads the receiver's one-shot
// source when it realizes — see the source package for the exclusive-
// ownership rules.
//
// All transformation methods return a new Sequence, leaving the receiver
// unchanged.
type Sequence[T comparable] struct {
	src      *source.Source[T]
	items    []T
	realized bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewSequence creates a realized Sequence from a variadic list of elements
// (copied).
func NewSequence[T comparable](items ...T) *Sequence[T] {
	return SequenceFrom(items)
}

// SequenceFrom creates a realized Sequence from a slice (the slice is
// copied).
func SequenceFrom[T comparable](items []T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst, realized: true}
}

// EmptySequence creates an empty realized Sequence of type T.
func EmptySequence[T comparable]() *Sequence[T] {
	return &Sequence[T]{items: []T{}, realized: true}
}

// SequenceFromSource creates an unrealized Sequence over a deferred source.
// The source becomes the exclusive property of the Sequence: draining it
// elsewhere leaves the Sequence to realize empty.
func SequenceFromSource[T comparable](src *source.Source[T]) *Sequence[T] {
	if src == nil {
		return EmptySequence[T]()
	}
	return &Sequence[T]{src: src}
}

// ─────────────────────────────────────────────────────────────────────────────
// Realization
// ─────────────────────────────────────────────────────────────────────────────

// realize converts the Sequence to its concrete form. Idempotent; the source
// reference is held until the content is fully built, then released.
func (s *Sequence[T]) realize() {
	if s.realized {
		return
	}
	items := s.src.Drain()
	s.items = items
	s.src = nil
	s.realized = true
}

// IsRealized reports whether the Sequence holds concrete structure.
// It never forces realization.
func (s *Sequence[T]) IsRealized() bool { return s.realized }

// upstream exposes the Sequence's current contents as a source without
// forcing realization: the realized slice when present, the deferred source
// otherwise.
func (s *Sequence[T]) upstream() *source.Source[T] {
	if s.realized {
		return source.FromSlice(s.items)
	}
	return s.src
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements, forcing realization.
// There is no way to count a possibly one-shot source without draining it.
func (s *Sequence[T]) Len() int {
	s.realize()
	return len(s.items)
}

// IsEmpty reports whether the Sequence has no elements.
func (s *Sequence[T]) IsEmpty() bool { return s.Len() == 0 }

// IsNotEmpty reports whether the Sequence has at least one element.
func (s *Sequence[T]) IsNotEmpty() bool { return s.Len() > 0 }

// Get returns the element at index i.
// Returns [ErrIndexOutOfRange] when i is outside [0, Len()-1]; negative
// indices are out of range.
func (s *Sequence[T]) Get(i int) (T, error) {
	s.realize()
	var zero T
	if i < 0 || i >= len(s.items) {
		return zero, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, len(s.items))
	}
	return s.items[i], nil
}

// Head returns the first element, or [ErrEmptyCollection].
func (s *Sequence[T]) Head() (T, error) {
	s.realize()
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmptyCollection
	}
	return s.items[0], nil
}

// Last returns the last element, or [ErrEmptyCollection].
func (s *Sequence[T]) Last() (T, error) {
	s.realize()
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmptyCollection
	}
	return s.items[len(s.items)-1], nil
}

// Tail returns a new Sequence with all elements but the first, or
// [ErrEmptyCollection].
func (s *Sequence[T]) Tail() (*Sequence[T], error) {
	s.realize()
	if len(s.items) == 0 {
		return nil, ErrEmptyCollection
	}
	return SequenceFrom(s.items[1:]), nil
}

// All returns a copy of the elements as a plain Go slice.
func (s *Sequence[T]) All() []T {
	s.realize()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// ToSlice is an alias for [Sequence.All].
func (s *Sequence[T]) ToSlice() []T { return s.All() }

// ToJSON serialises the elements to a JSON array, forcing realization.
func (s *Sequence[T]) ToJSON() ([]byte, error) {
	s.realize()
	return json.Marshal(s.items)
}

// String returns a JSON representation of a realized Sequence. On an
// unrealized Sequence it returns a diagnostic naming the deferred source
// instead, so printing never consumes a one-shot source.
// It implements [fmt.Stringer].
func (s *Sequence[T]) String() string {
	if !s.realized {
		return fmt.Sprintf("Sequence(<deferred %s>)", s.src.Name())
	}
	b, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & scanning
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether the Sequence holds value.
func (s *Sequence[T]) Contains(value T) bool {
	s.realize()
	return arr.Contains(s.items, value)
}

// CountBy returns the number of elements satisfying fn.
func (s *Sequence[T]) CountBy(fn func(T) bool) int {
	s.realize()
	return arr.CountBy(s.items, fn)
}

// Find returns the first element satisfying fn, or an absent Optional when
// none does.
func (s *Sequence[T]) Find(fn func(T) bool) optional.Optional[T] {
	s.realize()
	if v, ok := arr.First(s.items, fn); ok {
		return optional.Some(v)
	}
	return optional.None[T]()
}

// ForAll reports whether every element satisfies fn. fn is applied to every
// element even after a failure, so predicates with side effects see the
// whole Sequence.
func (s *Sequence[T]) ForAll(fn func(T) bool) bool {
	s.realize()
	return arr.ForAll(s.items, fn)
}

// Each calls fn on every element in order, for side effects.
func (s *Sequence[T]) Each(fn func(T)) {
	s.realize()
	for _, item := range s.items {
		fn(item)
	}
}

// IndexOf returns the index of the first occurrence of value, or -1.
// An optional from index starts the scan further in; negative from is
// treated as 0. The -1 sentinel follows the Go convention of
// strings.Index / slices.Index rather than the Optional used by [Sequence.Find].
func (s *Sequence[T]) IndexOf(value T, from ...int) int {
	s.realize()
	start := 0
	if len(from) > 0 {
		start = from[0]
	}
	return arr.IndexOf(s.items, value, start)
}

// IndexWhere returns the index of the first element satisfying fn, or -1.
// An optional from index starts the scan further in.
func (s *Sequence[T]) IndexWhere(fn func(T) bool, from ...int) int {
	s.realize()
	start := 0
	if len(from) > 0 {
		start = from[0]
	}
	return arr.IndexWhere(s.items, fn, start)
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Fold left-folds the Sequence with initial as the seed.
// Returns [ErrEmptyCollection] on an empty Sequence.
// For folds that change the element type, use the package-level [FoldTo].
func (s *Sequence[T]) Fold(initial T, fn func(acc, item T) T) (T, error) {
	s.realize()
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return arr.FoldLeft(s.items, initial, fn), nil
}

// Reduce left-folds the Sequence using the first element as the seed.
// Returns [ErrEmptyCollection] on an empty Sequence.
func (s *Sequence[T]) Reduce(fn func(acc, item T) T) (T, error) {
	s.realize()
	if v, ok := arr.ReduceLeft(s.items, fn); ok {
		return v, nil
	}
	var zero T
	return zero, ErrEmptyCollection
}

// Implode joins the string forms of all elements with sep.
// On an unrealized Sequence it returns the same deferred-source diagnostic
// as [Sequence.String] without forcing realization — a debugging escape
// hatch that never consumes a one-shot source.
func (s *Sequence[T]) Implode(sep string) string {
	if !s.realized {
		return fmt.Sprintf("Sequence(<deferred %s>)", s.src.Name())
	}
	parts := make([]string, len(s.items))
	for i, item := range s.items {
		parts[i] = fmt.Sprintf("%v", item)
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Lazy transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new unrealized Sequence that will hold fn(item) for every
// element. The receiver is not realized by this call.
// For type-changing maps, use the package-level [MapTo].
func (s *Sequence[T]) Map(fn func(T) T) *Sequence[T] {
	return SequenceFromSource(source.Map(s.upstream(), fn))
}

// Filter returns a new unrealized Sequence that will hold only the elements
// for which fn returns true. The receiver is not realized by this call.
func (s *Sequence[T]) Filter(fn func(T) bool) *Sequence[T] {
	return SequenceFromSource(source.Filter(s.upstream(), fn))
}

// TakeWhile returns a new unrealized Sequence that will hold the longest
// prefix of elements satisfying fn. The receiver is not realized by this
// call, and realizing the result reads the underlying source only up to the
// first failing element.
func (s *Sequence[T]) TakeWhile(fn func(T) bool) *Sequence[T] {
	return SequenceFromSource(source.TakeWhile(s.upstream(), fn))
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & reordering (realizing)
// ─────────────────────────────────────────────────────────────────────────────

// Take returns a new Sequence with at most the first n elements.
// n is clamped to [0, Len()]: n <= 0 yields an empty Sequence, n >= Len()
// the whole Sequence.
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	s.realize()
	return &Sequence[T]{items: arr.TakeClamped(s.items, n), realized: true}
}

// TakeRight returns a new Sequence with at most the last n elements, with
// the same clamping rule as [Sequence.Take].
func (s *Sequence[T]) TakeRight(n int) *Sequence[T] {
	s.realize()
	return &Sequence[T]{items: arr.TakeRightClamped(s.items, n), realized: true}
}

// Skip returns a new Sequence without the first n elements, with the same
// clamping rule as [Sequence.Take].
func (s *Sequence[T]) Skip(n int) *Sequence[T] {
	s.realize()
	return &Sequence[T]{items: arr.DropClamped(s.items, n), realized: true}
}

// Sort returns a new Sequence sorted by the given less function.
// The sort is stable: equal elements preserve their original order.
func (s *Sequence[T]) Sort(less func(a, b T) bool) *Sequence[T] {
	s.realize()
	return &Sequence[T]{items: arr.SortStable(s.items, less), realized: true}
}

// SortBy returns a new Sequence sorted in ascending order by the float64
// key extracted by fn. The sort is stable.
func (s *Sequence[T]) SortBy(fn func(T) float64) *Sequence[T] {
	s.realize()
	return &Sequence[T]{items: arr.SortByStable(s.items, fn), realized: true}
}

// Reverse returns a new Sequence with the elements in reversed order.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	s.realize()
	return &Sequence[T]{items: arr.Reverse(s.items), realized: true}
}

// Concat returns a new Sequence with all elements of other appended.
// Both operands are realized.
func (s *Sequence[T]) Concat(other *Sequence[T]) *Sequence[T] {
	s.realize()
	other.realize()
	out := make([]T, 0, len(s.items)+len(other.items))
	out = append(out, s.items...)
	out = append(out, other.items...)
	return &Sequence[T]{items: out, realized: true}
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality & hashing
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether s and other hold equal elements in the same order.
// Both operands are realized; two unrealized instances are never compared
// by source.
func (s *Sequence[T]) Equal(other *Sequence[T]) bool {
	s.realize()
	other.realize()
	if len(s.items) != len(other.items) {
		return false
	}
	for i := range s.items {
		if s.items[i] != other.items[i] {
			return false
		}
	}
	return true
}

// Digest returns a stable, order-sensitive content digest of the realized
// elements. Sequences for which Equal is true produce equal digests.
func (s *Sequence[T]) Digest() hashing.Digest {
	s.realize()
	return hashing.SumOrdered(anySlice(s.items))
}

// anySlice widens a typed slice for the hashing package.
func anySlice[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Package-level operations (type-changing or constrained)
// ─────────────────────────────────────────────────────────────────────────────

// MapTo returns a new unrealized Sequence[U] that will hold fn(item) for
// every element of s. Lazy, like [Sequence.Map].
//
// Go methods cannot introduce new type parameters, so type-changing
// operations are package-level functions.
func MapTo[T, U comparable](s *Sequence[T], fn func(T) U) *Sequence[U] {
	return SequenceFromSource(source.Map(s.upstream(), fn))
}

// FlatMapTo applies fn to every element (producing a []U per element) and
// concatenates the results into a new realized Sequence[U].
// Unlike [MapTo] this forces realization of s, since flattening needs the
// complete structure.
func FlatMapTo[T, U comparable](s *Sequence[T], fn func(T) []U) *Sequence[U] {
	s.realize()
	chunks := make([][]U, len(s.items))
	for i, item := range s.items {
		chunks[i] = fn(item)
	}
	return &Sequence[U]{items: arr.Flatten(chunks), realized: true}
}

// Flatten concatenates one level of nested Sequences into a single realized
// Sequence. Nil inner Sequences are skipped; non-nil inner Sequences are
// realized.
func Flatten[T comparable](s *Sequence[*Sequence[T]]) *Sequence[T] {
	s.realize()
	chunks := make([][]T, 0, len(s.items))
	for _, inner := range s.items {
		if inner == nil {
			continue
		}
		inner.realize()
		chunks = append(chunks, inner.items)
	}
	return &Sequence[T]{items: arr.Flatten(chunks), realized: true}
}

// Sorted returns a new Sequence sorted in the natural ascending order of its
// elements. The sort is stable.
func Sorted[T cmp.Ordered](s *Sequence[T]) *Sequence[T] {
	return s.Sort(func(a, b T) bool { return a < b })
}

// Zip pairs the elements of a and b positionally into a new realized
// Sequence of Pairs. The result's length is the shorter of the two inputs.
func Zip[A, B comparable](a *Sequence[A], b *Sequence[B]) *Sequence[Pair[A, B]] {
	a.realize()
	b.realize()
	n := min(len(a.items), len(b.items))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a.items[i], Second: b.items[i]}
	}
	return &Sequence[Pair[A, B]]{items: out, realized: true}
}

// ZipWithIndex pairs every element with its position, producing a new
// realized Sequence of (element, index) Pairs.
func ZipWithIndex[T comparable](s *Sequence[T]) *Sequence[Pair[T, int]] {
	s.realize()
	out := make([]Pair[T, int], len(s.items))
	for i, item := range s.items {
		out[i] = Pair[T, int]{First: item, Second: i}
	}
	return &Sequence[Pair[T, int]]{items: out, realized: true}
}

// FoldTo left-folds s into a value of type U with initial as the seed.
// Returns [ErrEmptyCollection] on an empty Sequence.
func FoldTo[T comparable, U any](s *Sequence[T], initial U, fn func(U, T) U) (U, error) {
	s.realize()
	if len(s.items) == 0 {
		var zero U
		return zero, ErrEmptyCollection
	}
	return arr.FoldLeft(s.items, initial, fn), nil
}
