// Package arr provides the package-level slice scans shared by every
// container shape in the collections package.
//
// All container operations that need concrete structure (counting, folding,
// index scans, slicing) funnel through these functions once the container is
// realized. Every function is pure: input slices are never mutated, and any
// returned slice is freshly allocated.
package arr

import "sort"

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally the first matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element, optionally the last matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		var found T
		matched := false
		for _, item := range items {
			if fns[0](item) {
				found = item
				matched = true
			}
		}
		return found, matched
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Contains reports whether items contains value.
func Contains[T comparable](items []T, value T) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first occurrence of value at or after
// from, or -1 when there is none. A negative from is treated as 0.
func IndexOf[T comparable](items []T, value T, from int) int {
	return IndexWhere(items, func(item T) bool { return item == value }, from)
}

// IndexWhere returns the index of the first element at or after from that
// satisfies fn, or -1 when there is none. A negative from is treated as 0.
func IndexWhere[T any](items []T, fn func(T) bool, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(items); i++ {
		if fn(items[i]) {
			return i
		}
	}
	return -1
}

// CountBy returns the number of elements satisfying fn.
func CountBy[T any](items []T, fn func(T) bool) int {
	n := 0
	for _, item := range items {
		if fn(item) {
			n++
		}
	}
	return n
}

// ForAll reports whether every element satisfies fn.
// The scan is deliberately exhaustive — fn is applied to every element even
// after a failure, so predicates with side effects see the whole slice.
func ForAll[T any](items []T, fn func(T) bool) bool {
	return CountBy(items, fn) == len(items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// FoldLeft folds items from the left with initial as the seed.
// The empty-slice case is the caller's to handle; on an empty slice FoldLeft
// simply returns initial.
func FoldLeft[T, U any](items []T, initial U, fn func(U, T) U) U {
	acc := initial
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// ReduceLeft folds items from the left using the first element as the seed.
// Returns the zero value and false when items is empty.
func ReduceLeft[T any](items []T, fn func(T, T) T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return FoldLeft(items[1:], items[0], fn), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// TakeClamped returns a copy of the first n elements.
// n is clamped to [0, len(items)]: n <= 0 yields an empty slice, n >=
// len(items) yields a full copy.
func TakeClamped[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// TakeRightClamped returns a copy of the last n elements, with the same
// clamping rule as [TakeClamped].
func TakeRightClamped[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[len(items)-n:])
	return out
}

// DropClamped returns a copy of items without its first n elements, with the
// same clamping rule as [TakeClamped].
func DropClamped[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, len(items)-n)
	copy(out, items[n:])
	return out
}

// TakeWhile returns a copy of the longest prefix of items whose elements all
// satisfy fn.
func TakeWhile[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !fn(item) {
			break
		}
		out = append(out, item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Reordering
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns a copy of items in reversed order.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// SortStable returns a copy of items sorted by less.
// The sort is stable: equal elements preserve their original order.
func SortStable[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortByStable returns a copy of items sorted in ascending order by the
// float64 key extracted by fn. The sort is stable.
func SortByStable[T any](items []T, fn func(T) float64) []T {
	return SortStable(items, func(a, b T) bool { return fn(a) < fn(b) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Flatten concatenates one level of nesting into a single flat slice.
func Flatten[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// Unique returns a new slice with duplicates removed, preserving the first
// occurrence of each element.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}
