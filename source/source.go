// Package source models the deferred data sources that the collections
// package realizes containers from.
//
// A Source[T] is a named, possibly one-shot producer of elements. One-shot
// sources (anything built from a live iterator) can be drained exactly once:
// the first drain yields the data, every later drain yields nothing.
// Replayable sources (slices, Go maps) can be drained any number of times.
//
// Sources are exclusively owned by the container they are handed to. Passing
// the same one-shot Source to two containers means only the first container
// to realize sees the data — the consume-once state makes the second drain a
// defined, empty result instead of undefined behaviour.
//
// Derived sources ([Map], [Filter], [TakeWhile]) are lazy: building one
// touches nothing; the upstream source is consumed only when the derived
// source itself is drained.
package source

import (
	"fmt"
	"iter"
)

// Source is a named producer of elements of type T.
// The zero value is not usable; use one of the constructors.
type Source[T any] struct {
	name       string
	seq        iter.Seq[T]
	replayable bool
	consumed   bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of returns a replayable source over the given items.
func Of[T any](items ...T) *Source[T] {
	return FromSlice(items)
}

// FromSlice returns a replayable source over a slice.
// The slice is not copied; callers must not mutate it afterwards.
func FromSlice[T any](items []T) *Source[T] {
	return &Source[T]{
		name:       "slice",
		replayable: true,
		seq: func(yield func(T) bool) {
			for _, item := range items {
				if !yield(item) {
					return
				}
			}
		},
	}
}

// FromSeq returns a one-shot source over an iterator.
// The name appears in diagnostics (e.g. Sequence.String on an unrealized
// instance) and should describe where the data comes from.
func FromSeq[T any](name string, seq iter.Seq[T]) *Source[T] {
	return &Source[T]{name: name, seq: seq}
}

// Replayable returns a source over an iterator that is safe to iterate more
// than once (for example, a function ranging over captured immutable data).
func Replayable[T any](name string, seq iter.Seq[T]) *Source[T] {
	return &Source[T]{name: name, seq: seq, replayable: true}
}

// ─────────────────────────────────────────────────────────────────────────────
// Consumption
// ─────────────────────────────────────────────────────────────────────────────

// Name returns the diagnostic name of the source.
func (s *Source[T]) Name() string { return s.name }

// Replayable reports whether the source can be drained more than once.
func (s *Source[T]) Replayable() bool { return s.replayable }

// Consumed reports whether a one-shot source has already been drained.
// Always false for replayable sources.
func (s *Source[T]) Consumed() bool { return s.consumed }

// Seq returns an iterator over the source's elements.
// Iterating it counts as consumption: a one-shot source yields its data to
// the first iteration only; later iterations yield nothing. Consumption is
// committed before the first element is produced, so a panic escaping
// mid-iteration still leaves a one-shot source consumed — a half-read live
// iterator cannot be rewound, and retrying it would surface partial data as
// if it were complete.
func (s *Source[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.consumed {
			return
		}
		if !s.replayable {
			s.consumed = true
		}
		s.seq(yield)
	}
}

// Drain materializes the remaining elements into a slice.
// A consumed one-shot source drains to an empty slice.
func (s *Source[T]) Drain() []T {
	out := []T{}
	for item := range s.Seq() {
		out = append(out, item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Lazy derivation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a derived source that yields fn(item) for every item of src.
// Nothing is consumed until the derived source is drained.
func Map[T, U any](src *Source[T], fn func(T) U) *Source[U] {
	return &Source[U]{
		name:       fmt.Sprintf("map(%s)", src.name),
		replayable: src.replayable,
		seq: func(yield func(U) bool) {
			for item := range src.Seq() {
				if !yield(fn(item)) {
					return
				}
			}
		},
	}
}

// Filter returns a derived source that yields only the items of src for
// which fn returns true.
func Filter[T any](src *Source[T], fn func(T) bool) *Source[T] {
	return &Source[T]{
		name:       fmt.Sprintf("filter(%s)", src.name),
		replayable: src.replayable,
		seq: func(yield func(T) bool) {
			for item := range src.Seq() {
				if fn(item) && !yield(item) {
					return
				}
			}
		},
	}
}

// TakeWhile returns a derived source that yields items of src until the
// first item for which fn returns false, then stops without reading further.
func TakeWhile[T any](src *Source[T], fn func(T) bool) *Source[T] {
	return &Source[T]{
		name:       fmt.Sprintf("takeWhile(%s)", src.name),
		replayable: src.replayable,
		seq: func(yield func(T) bool) {
			for item := range src.Seq() {
				if !fn(item) || !yield(item) {
					return
				}
			}
		},
	}
}
