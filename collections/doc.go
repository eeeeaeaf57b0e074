// Package collections provides three immutable, functional-style container
// shapes — [Sequence] (ordered, duplicates allowed), [Mapping] (unique keys
// to values, insertion-ordered) and [UniqueSet] (unique elements, unordered)
// — with a uniform combinator API and deferred construction from arbitrary
// data sources.
//
// # Lazy realization
//
// Every container is in exactly one of two states. Built from concrete
// elements it is realized immediately:
//
//	s := collections.NewSequence(1, 2, 3)
//
// Built over a deferred source it stays unrealized until the first operation
// that needs concrete structure (length, indexing, equality, folding):
//
//	s := collections.SequenceFromSource(source.FromSeq("lines", readLines(f)))
//	n := s.Len() // drains the source, realizes the Sequence
//
// The transition happens at most once and is one-way: afterwards the source
// reference is released and the container is a plain immutable value, safe
// to share read-only across goroutines. A one-shot source (a live iterator)
// belongs exclusively to the container it was passed to — realizing two
// containers over the same one-shot source leaves the data in whichever
// realized first; see the source package.
//
// Map, Filter and Sequence.TakeWhile are the lazy combinators: they never
// realize the receiver and instead return a new unrealized container over a
// derived source. Everything else that needs structure realizes first.
//
// # Immutability
//
// Realized structure is never mutated. All transformation methods return a
// new container, leaving the receiver unchanged, so pipelines cannot alias:
//
//	result := collections.NewSequence(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Take(2).
//	    Implode(", ") // → "2, 4"
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
//
//	// Method-based (type-preserving, lazy):
//	s.Map(func(n int) int { return n * 2 })
//
//	// Package-level (type-changing, lazy):
//	collections.MapTo(s, func(n int) string { return strconv.Itoa(n) })
//
// Package-level functions: [MapTo], [FlatMapTo], [Flatten], [FoldTo],
// [Sorted], [Sum], [Average], [Zip], [ZipWithIndex], [MapEntries],
// [FoldEntries], [ReduceEntries], [ZipEntries], [ZipEntriesWithIndex],
// [MapSetTo], [FlatMapSetTo], [FlattenSets], [ZipSets], [ZipSetWithIndex].
//
// # Lookups and errors
//
// Absence is a normal outcome: Find and Mapping.Get return an
// optional.Optional rather than an error. Precondition violations are
// errors: Head, Tail, Last, Fold and Reduce return [ErrEmptyCollection] on
// an empty container, and Sequence.Get returns [ErrIndexOutOfRange] outside
// [0, Len()-1]. IndexOf and IndexWhere follow the Go convention of a -1
// sentinel, like strings.Index.
//
// # Element types
//
// Element and key types are constrained to comparable: membership tests,
// set algebra and container equality all delegate to Go's structural
// equality. Numeric aggregation ([Sum], [Average]) is further constrained
// to [Number], so summing non-numeric elements is a compile error rather
// than a runtime one.
package collections
