package source

import (
	"fmt"
	"iter"
)

// PairSource is the key-value counterpart of [Source], used to realize the
// Mapping container shape. It carries the same consume-once semantics.
type PairSource[K, V any] struct {
	name       string
	seq        iter.Seq2[K, V]
	replayable bool
	consumed   bool
}

// FromMap returns a replayable pair source over a Go map.
// The map is not copied; callers must not mutate it afterwards.
// Entry order follows Go map iteration and is therefore unspecified.
func FromMap[K comparable, V any](m map[K]V) *PairSource[K, V] {
	return &PairSource[K, V]{
		name:       "map",
		replayable: true,
		seq: func(yield func(K, V) bool) {
			for k, v := range m {
				if !yield(k, v) {
					return
				}
			}
		},
	}
}

// FromSeq2 returns a one-shot pair source over an iterator.
func FromSeq2[K, V any](name string, seq iter.Seq2[K, V]) *PairSource[K, V] {
	return &PairSource[K, V]{name: name, seq: seq}
}

// ReplayablePairs returns a pair source over an iterator that is safe to
// iterate more than once.
func ReplayablePairs[K, V any](name string, seq iter.Seq2[K, V]) *PairSource[K, V] {
	return &PairSource[K, V]{name: name, seq: seq, replayable: true}
}

// Name returns the diagnostic name of the source.
func (s *PairSource[K, V]) Name() string { return s.name }

// Replayable reports whether the source can be drained more than once.
func (s *PairSource[K, V]) Replayable() bool { return s.replayable }

// Consumed reports whether a one-shot source has already been drained.
func (s *PairSource[K, V]) Consumed() bool { return s.consumed }

// Seq returns an iterator over the source's entries.
// Iterating it counts as consumption, exactly as for [Source.Seq].
func (s *PairSource[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if s.consumed {
			return
		}
		if !s.replayable {
			s.consumed = true
		}
		s.seq(yield)
	}
}

// Drain materializes the remaining entries into parallel key and value
// slices. A consumed one-shot source drains to empty slices.
func (s *PairSource[K, V]) Drain() ([]K, []V) {
	keys := []K{}
	vals := []V{}
	for k, v := range s.Seq() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	return keys, vals
}

// MapPairs returns a derived pair source that yields fn(k, v) for every
// entry of src. fn may change both the key and the value (re-keying).
func MapPairs[K, V, K2, V2 any](src *PairSource[K, V], fn func(K, V) (K2, V2)) *PairSource[K2, V2] {
	return &PairSource[K2, V2]{
		name:       fmt.Sprintf("map(%s)", src.name),
		replayable: src.replayable,
		seq: func(yield func(K2, V2) bool) {
			for k, v := range src.Seq() {
				if !yield(fn(k, v)) {
					return
				}
			}
		},
	}
}

// FilterPairs returns a derived pair source that yields only the entries of
// src for which fn returns true.
func FilterPairs[K, V any](src *PairSource[K, V], fn func(K, V) bool) *PairSource[K, V] {
	return &PairSource[K, V]{
		name:       fmt.Sprintf("filter(%s)", src.name),
		replayable: src.replayable,
		seq: func(yield func(K, V) bool) {
			for k, v := range src.Seq() {
				if fn(k, v) && !yield(k, v) {
					return
				}
			}
		},
	}
}
