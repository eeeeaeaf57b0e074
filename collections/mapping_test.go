package collections_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-lazy-collections/collections"
	"github.com/hasbyte1/go-lazy-collections/source"
)

func pairsAB() *collections.Mapping[string, int] {
	return collections.NewMapping(
		collections.PairOf("a", 1),
		collections.PairOf("b", 2),
		collections.PairOf("c", 3),
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors & realization
// ─────────────────────────────────────────────────────────────────────────────

func TestNewMappingIsRealized(t *testing.T) {
	m := pairsAB()
	if !m.IsRealized() {
		t.Fatal("mapping built from concrete pairs should realize immediately")
	}
	if m.Len() != 3 {
		t.Fatalf("Len = %d, want 3", m.Len())
	}
}

func TestMappingFromMapIsDeferred(t *testing.T) {
	m := collections.MappingFromMap(map[string]int{"a": 1, "b": 2})
	if m.IsRealized() {
		t.Fatal("a raw map is a deferred source; the mapping should start unrealized")
	}
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	if !m.IsRealized() {
		t.Fatal("Len should force realization")
	}
}

func TestMappingFromPairsIsDeferred(t *testing.T) {
	m := collections.MappingFromPairs([]collections.Pair[string, int]{
		{First: "x", Second: 10},
		{First: "y", Second: 20},
	})
	if m.IsRealized() {
		t.Fatal("a raw pair slice is a deferred source")
	}
	if got := m.GetOrElse("y", 0); got != 20 {
		t.Fatalf("GetOrElse(y) = %d, want 20", got)
	}
}

func TestDuplicateKeyKeepsPositionTakesLastValue(t *testing.T) {
	m := collections.NewMapping(
		collections.PairOf("a", 1),
		collections.PairOf("b", 2),
		collections.PairOf("a", 9),
	)
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	if got := m.GetOrElse("a", 0); got != 9 {
		t.Fatalf("value for repeated key = %d, want 9", got)
	}
	head, _ := m.Head()
	if head.First != "a" {
		t.Fatalf("repeated key should keep its first position; head = %v", head)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Lookup
// ─────────────────────────────────────────────────────────────────────────────

func TestGetPresentAndAbsent(t *testing.T) {
	m := pairsAB()
	if v, ok := m.Get("a").Get(); !ok || v != 1 {
		t.Fatalf("Get(a) = %v, %v", v, ok)
	}
	if m.Get("z").IsPresent() {
		t.Fatal("Get(z) should be absent")
	}
	if got := m.GetOrElse("z", 0); got != 0 {
		t.Fatalf("GetOrElse(z, 0) = %d", got)
	}
}

func TestIsDefinedAt(t *testing.T) {
	m := pairsAB()
	if !m.IsDefinedAt("b") || m.IsDefinedAt("z") {
		t.Fatal("IsDefinedAt gave wrong answers")
	}
}

func TestMappingContains(t *testing.T) {
	m := pairsAB()
	if !m.Contains(collections.PairOf("a", 1)) {
		t.Fatal("Contains should accept a present entry")
	}
	if m.Contains(collections.PairOf("a", 2)) {
		t.Fatal("Contains must match the value, not just the key")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Order-dependent accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestHeadLastInsertionOrder(t *testing.T) {
	m := pairsAB()
	head, err := m.Head()
	if err != nil || head != collections.PairOf("a", 1) {
		t.Fatalf("Head = %v, %v", head, err)
	}
	last, err := m.Last()
	if err != nil || last != collections.PairOf("c", 3) {
		t.Fatalf("Last = %v, %v", last, err)
	}
}

func TestEmptyMappingLaws(t *testing.T) {
	m := collections.EmptyMapping[string, int]()
	if !m.IsEmpty() || m.Len() != 0 {
		t.Fatal("empty mapping should be empty with length 0")
	}
	if _, err := m.Head(); !errors.Is(err, collections.ErrEmptyCollection) {
		t.Fatalf("Head on empty: %v", err)
	}
	if _, err := m.Last(); !errors.Is(err, collections.ErrEmptyCollection) {
		t.Fatalf("Last on empty: %v", err)
	}
	if _, err := collections.FoldEntries(m, 0, func(a int, _ string, v int) int { return a + v }); !errors.Is(err, collections.ErrEmptyCollection) {
		t.Fatalf("FoldEntries on empty: %v", err)
	}
	if _, err := collections.ReduceEntries(m, func(a, p collections.Pair[string, int]) collections.Pair[string, int] { return a }); !errors.Is(err, collections.ErrEmptyCollection) {
		t.Fatalf("ReduceEntries on empty: %v", err)
	}
}

func TestKeysValuesPairs(t *testing.T) {
	m := pairsAB()
	assertSlice(t, m.Keys(), []string{"a", "b", "c"})
	assertSlice(t, m.Values(), []int{1, 2, 3})
	assertSlice(t, m.Pairs(), []collections.Pair[string, int]{
		{First: "a", Second: 1}, {First: "b", Second: 2}, {First: "c", Second: 3},
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Scanning & folding
// ─────────────────────────────────────────────────────────────────────────────

func TestMappingFindAndCountBy(t *testing.T) {
	m := pairsAB()
	found := m.Find(func(_ string, v int) bool { return v > 1 })
	if p, ok := found.Get(); !ok || p != collections.PairOf("b", 2) {
		t.Fatalf("Find = %v", found)
	}
	if m.Find(func(_ string, v int) bool { return v > 9 }).IsPresent() {
		t.Fatal("Find with no match should be absent")
	}
	if got := m.CountBy(func(_ string, v int) bool { return v%2 == 1 }); got != 2 {
		t.Fatalf("CountBy = %d, want 2", got)
	}
}

func TestMappingForAll(t *testing.T) {
	m := pairsAB()
	seen := 0
	ok := m.ForAll(func(_ string, v int) bool {
		seen++
		return v < 2
	})
	if ok || seen != 3 {
		t.Fatalf("ForAll = %v after %d entries, want false after 3", ok, seen)
	}
}

func TestFoldEntries(t *testing.T) {
	sum, err := collections.FoldEntries(pairsAB(), 0, func(acc int, _ string, v int) int {
		return acc + v
	})
	if err != nil || sum != 6 {
		t.Fatalf("FoldEntries = %d, %v", sum, err)
	}
}

func TestReduceEntries(t *testing.T) {
	got, err := collections.ReduceEntries(pairsAB(), func(acc, p collections.Pair[string, int]) collections.Pair[string, int] {
		return collections.PairOf(acc.First+p.First, acc.Second+p.Second)
	})
	if err != nil || got != collections.PairOf("abc", 6) {
		t.Fatalf("ReduceEntries = %v, %v", got, err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

func TestMappingFilterIsLazy(t *testing.T) {
	m := collections.MappingFromMap(map[string]int{"a": 1, "b": 2, "c": 3})
	odd := m.Filter(func(_ string, v int) bool { return v%2 == 1 })
	if m.IsRealized() || odd.IsRealized() {
		t.Fatal("Filter must not realize the receiver or its result")
	}
	if odd.Len() != 2 {
		t.Fatalf("filtered Len = %d, want 2", odd.Len())
	}
	if !odd.IsDefinedAt("a") || !odd.IsDefinedAt("c") || odd.IsDefinedAt("b") {
		t.Fatal("Filter kept the wrong entries")
	}
}

func TestMapEntriesReKeying(t *testing.T) {
	m := collections.MappingFromPairs([]collections.Pair[string, int]{
		{First: "a", Second: 1}, {First: "b", Second: 2}, {First: "c", Second: 3},
	})
	flipped := collections.MapEntries(m, func(k string, v int) (int, string) { return v, k })
	if m.IsRealized() || flipped.IsRealized() {
		t.Fatal("MapEntries must not realize the receiver or its result")
	}
	if got := flipped.GetOrElse(2, ""); got != "b" {
		t.Fatalf("re-keyed lookup = %q, want b", got)
	}
	if flipped.Len() != 3 {
		t.Fatalf("re-keyed Len = %d, want 3", flipped.Len())
	}
}

func TestMappingTakeWhileIsPrefixCut(t *testing.T) {
	m := collections.NewMapping(
		collections.PairOf("a", 1),
		collections.PairOf("b", 9),
		collections.PairOf("c", 1),
	)
	prefix := m.TakeWhile(func(_ string, v int) bool { return v < 5 })
	// "c" satisfies the predicate but sits after the first failure.
	if prefix.Len() != 1 || !prefix.IsDefinedAt("a") {
		t.Fatalf("TakeWhile = %v, want only the leading entry", prefix.Pairs())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping, equality, hashing, diagnostics
// ─────────────────────────────────────────────────────────────────────────────

func TestZipEntriesTruncates(t *testing.T) {
	a := pairsAB()
	b := collections.NewMapping(collections.PairOf(10, "x"), collections.PairOf(20, "y"))
	zipped := collections.ZipEntries(a, b)
	if zipped.Len() != 2 {
		t.Fatalf("ZipEntries length = %d, want 2", zipped.Len())
	}
	head, _ := zipped.Head()
	if head.First != collections.PairOf("a", 10) || head.Second != collections.PairOf(1, "x") {
		t.Fatalf("ZipEntries head = %v", head)
	}
}

func TestZipEntriesWithIndex(t *testing.T) {
	indexed := collections.ZipEntriesWithIndex(pairsAB())
	if got := indexed.GetOrElse(1, collections.Pair[string, int]{}); got != collections.PairOf("b", 2) {
		t.Fatalf("entry at position 1 = %v", got)
	}
}

func TestMappingEqualIgnoresOrder(t *testing.T) {
	a := collections.NewMapping(collections.PairOf("a", 1), collections.PairOf("b", 2))
	b := collections.NewMapping(collections.PairOf("b", 2), collections.PairOf("a", 1))
	if !a.Equal(b) {
		t.Fatal("mappings with the same entries must be equal regardless of order")
	}
	c := collections.NewMapping(collections.PairOf("a", 1), collections.PairOf("b", 3))
	if a.Equal(c) {
		t.Fatal("mappings with different values must not be equal")
	}
}

func TestMappingDigestOrderFree(t *testing.T) {
	a := collections.NewMapping(collections.PairOf("a", 1), collections.PairOf("b", 2))
	b := collections.NewMapping(collections.PairOf("b", 2), collections.PairOf("a", 1))
	if a.Digest() != b.Digest() {
		t.Fatal("mapping digests must not depend on entry order")
	}
	c := collections.NewMapping(collections.PairOf("a", 2), collections.PairOf("b", 1))
	if a.Digest() == c.Digest() {
		t.Fatal("swapping values across keys must change the digest")
	}
}

func TestMappingImplodeDeferred(t *testing.T) {
	m := collections.MappingFromMap(map[string]int{"a": 1})
	if got := m.Implode(", "); got != "Mapping(<deferred map>)" {
		t.Fatalf("Implode on deferred = %q", got)
	}
	if m.IsRealized() {
		t.Fatal("Implode must not force realization")
	}
}

func TestMappingOneShotDoubleConsumption(t *testing.T) {
	src := source.FromSeq2("pairs-gen", func(yield func(string, int) bool) {
		yield("a", 1)
	})
	first := collections.MappingFromSource(src)
	second := collections.MappingFromSource(src)
	if first.Len() != 1 {
		t.Fatalf("first consumer Len = %d, want 1", first.Len())
	}
	if second.Len() != 0 {
		t.Fatalf("second consumer Len = %d, want 0", second.Len())
	}
}
