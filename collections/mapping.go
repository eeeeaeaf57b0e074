package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hasbyte1/go-lazy-collections/hashing"
	"github.com/hasbyte1/go-lazy-collections/optional"
	"github.com/hasbyte1/go-lazy-collections/source"
)

// Mapping is an immutable key-to-value container with unique keys.
//
// The realized structure preserves insertion order: iteration, Head and Last
// follow the order in which keys first arrived from the constructor or the
// deferred source. When a key repeats, the value is replaced but the key
// keeps its original position.
//
// A Mapping follows the same two-state lifecycle as [Sequence]: concrete
// constructors realize immediately, and [MappingFromMap] /
// [MappingFromPairs] / [MappingFromSource] defer realization until an
// operation needs concrete structure. A raw structure passed whole (a Go map
// or a pair slice) is treated as a deferred source.
//
// All transformation methods return a new Mapping, leaving the receiver
// unchanged.
type Mapping[K, V comparable] struct {
	src      *source.PairSource[K, V]
	entries  *orderedmap.OrderedMap[K, V]
	realized bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewMapping creates a realized Mapping from a variadic list of pairs.
// A repeated key keeps its first position and takes the last value.
func NewMapping[K, V comparable](pairs ...Pair[K, V]) *Mapping[K, V] {
	entries := orderedmap.New[K, V]()
	for _, p := range pairs {
		entries.Set(p.First, p.Second)
	}
	return &Mapping[K, V]{entries: entries, realized: true}
}

// EmptyMapping creates an empty realized Mapping.
func EmptyMapping[K, V comparable]() *Mapping[K, V] {
	return &Mapping[K, V]{entries: orderedmap.New[K, V](), realized: true}
}

// MappingFromMap creates an unrealized Mapping deferring over a Go map.
// The map is a single raw structure, so it is treated as a deferred source;
// it must not be mutated afterwards. Entry order follows Go map iteration
// and is therefore unspecified (but fixed once realized).
func MappingFromMap[K, V comparable](m map[K]V) *Mapping[K, V] {
	return MappingFromSource(source.FromMap(m))
}

// MappingFromPairs creates an unrealized Mapping deferring over a slice of
// pairs. The slice must not be mutated afterwards.
func MappingFromPairs[K, V comparable](pairs []Pair[K, V]) *Mapping[K, V] {
	seq := func(yield func(K, V) bool) {
		for _, p := range pairs {
			if !yield(p.First, p.Second) {
				return
			}
		}
	}
	return MappingFromSource(source.ReplayablePairs("pairs", seq))
}

// MappingFromSource creates an unrealized Mapping over a deferred pair
// source. The source becomes the exclusive property of the Mapping.
func MappingFromSource[K, V comparable](src *source.PairSource[K, V]) *Mapping[K, V] {
	if src == nil {
		return EmptyMapping[K, V]()
	}
	return &Mapping[K, V]{src: src}
}

// ─────────────────────────────────────────────────────────────────────────────
// Realization
// ─────────────────────────────────────────────────────────────────────────────

// realize converts the Mapping to its concrete ordered form. Idempotent; the
// source reference is held until the content is fully built, then released.
func (m *Mapping[K, V]) realize() {
	if m.realized {
		return
	}
	keys, vals := m.src.Drain()
	entries := orderedmap.New[K, V]()
	for i, k := range keys {
		entries.Set(k, vals[i])
	}
	m.entries = entries
	m.src = nil
	m.realized = true
}

// IsRealized reports whether the Mapping holds concrete structure.
// It never forces realization.
func (m *Mapping[K, V]) IsRealized() bool { return m.realized }

// upstream exposes the Mapping's current contents as a pair source without
// forcing realization.
func (m *Mapping[K, V]) upstream() *source.PairSource[K, V] {
	if m.realized {
		return source.ReplayablePairs("mapping", m.seq())
	}
	return m.src
}

// seq iterates the realized entries in insertion order.
func (m *Mapping[K, V]) seq() iter.Seq2[K, V] {
	entries := m.entries
	return func(yield func(K, V) bool) {
		for p := entries.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors & lookup
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of entries, forcing realization.
func (m *Mapping[K, V]) Len() int {
	m.realize()
	return m.entries.Len()
}

// IsEmpty reports whether the Mapping has no entries.
func (m *Mapping[K, V]) IsEmpty() bool { return m.Len() == 0 }

// IsNotEmpty reports whether the Mapping has at least one entry.
func (m *Mapping[K, V]) IsNotEmpty() bool { return m.Len() > 0 }

// Get returns the value for key as an Optional; absent when the key is not
// defined. A missing key is a normal outcome, not an error.
func (m *Mapping[K, V]) Get(key K) optional.Optional[V] {
	m.realize()
	if v, ok := m.entries.Get(key); ok {
		return optional.Some(v)
	}
	return optional.None[V]()
}

// GetOrElse returns the value for key, or def when the key is not defined.
func (m *Mapping[K, V]) GetOrElse(key K, def V) V {
	return m.Get(key).OrElse(def)
}

// IsDefinedAt reports whether key is present.
func (m *Mapping[K, V]) IsDefinedAt(key K) bool {
	m.realize()
	_, ok := m.entries.Get(key)
	return ok
}

// Contains reports whether the Mapping holds exactly the given entry: the
// key is defined and mapped to the pair's value.
func (m *Mapping[K, V]) Contains(entry Pair[K, V]) bool {
	m.realize()
	v, ok := m.entries.Get(entry.First)
	return ok && v == entry.Second
}

// Head returns the first entry in insertion order, or [ErrEmptyCollection].
func (m *Mapping[K, V]) Head() (Pair[K, V], error) {
	m.realize()
	p := m.entries.Oldest()
	if p == nil {
		return Pair[K, V]{}, ErrEmptyCollection
	}
	return Pair[K, V]{First: p.Key, Second: p.Value}, nil
}

// Last returns the last entry in insertion order, or [ErrEmptyCollection].
func (m *Mapping[K, V]) Last() (Pair[K, V], error) {
	m.realize()
	p := m.entries.Newest()
	if p == nil {
		return Pair[K, V]{}, ErrEmptyCollection
	}
	return Pair[K, V]{First: p.Key, Second: p.Value}, nil
}

// Keys returns the keys in insertion order.
func (m *Mapping[K, V]) Keys() []K {
	m.realize()
	out := make([]K, 0, m.entries.Len())
	for k := range m.seq() {
		out = append(out, k)
	}
	return out
}

// Values returns the values in insertion order.
func (m *Mapping[K, V]) Values() []V {
	m.realize()
	out := make([]V, 0, m.entries.Len())
	for _, v := range m.seq() {
		out = append(out, v)
	}
	return out
}

// Pairs returns the entries as Pairs in insertion order.
func (m *Mapping[K, V]) Pairs() []Pair[K, V] {
	m.realize()
	out := make([]Pair[K, V], 0, m.entries.Len())
	for k, v := range m.seq() {
		out = append(out, Pair[K, V]{First: k, Second: v})
	}
	return out
}

// ToMap returns the entries as a plain Go map (insertion order is lost).
func (m *Mapping[K, V]) ToMap() map[K]V {
	m.realize()
	out := make(map[K]V, m.entries.Len())
	for k, v := range m.seq() {
		out[k] = v
	}
	return out
}

// ToJSON serialises the Mapping to a JSON object preserving entry order,
// forcing realization.
func (m *Mapping[K, V]) ToJSON() ([]byte, error) {
	m.realize()
	return json.Marshal(m.entries)
}

// String returns a JSON representation of a realized Mapping, or a
// diagnostic naming the deferred source on an unrealized one (never forcing
// realization). It implements [fmt.Stringer].
func (m *Mapping[K, V]) String() string {
	if !m.realized {
		return fmt.Sprintf("Mapping(<deferred %s>)", m.src.Name())
	}
	b, err := json.Marshal(m.entries)
	if err != nil {
		return "Mapping(" + m.Implode(", ") + ")"
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Scanning
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn on every entry in insertion order, for side effects.
func (m *Mapping[K, V]) Each(fn func(K, V)) {
	m.realize()
	for k, v := range m.seq() {
		fn(k, v)
	}
}

// Find returns the first entry (in insertion order) satisfying fn, or an
// absent Optional when none does.
func (m *Mapping[K, V]) Find(fn func(K, V) bool) optional.Optional[Pair[K, V]] {
	m.realize()
	for k, v := range m.seq() {
		if fn(k, v) {
			return optional.Some(Pair[K, V]{First: k, Second: v})
		}
	}
	return optional.None[Pair[K, V]]()
}

// CountBy returns the number of entries satisfying fn.
func (m *Mapping[K, V]) CountBy(fn func(K, V) bool) int {
	m.realize()
	n := 0
	for k, v := range m.seq() {
		if fn(k, v) {
			n++
		}
	}
	return n
}

// ForAll reports whether every entry satisfies fn. fn is applied to every
// entry even after a failure.
func (m *Mapping[K, V]) ForAll(fn func(K, V) bool) bool {
	m.realize()
	return m.CountBy(fn) == m.entries.Len()
}

// Implode joins the string forms of all entries ("(key, value)") with sep.
// On an unrealized Mapping it returns the deferred-source diagnostic without
// forcing realization.
func (m *Mapping[K, V]) Implode(sep string) string {
	if !m.realized {
		return fmt.Sprintf("Mapping(<deferred %s>)", m.src.Name())
	}
	parts := make([]string, 0, m.entries.Len())
	for k, v := range m.seq() {
		parts = append(parts, Pair[K, V]{First: k, Second: v}.String())
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new unrealized Mapping that will hold only the entries
// for which fn returns true. The receiver is not realized by this call.
func (m *Mapping[K, V]) Filter(fn func(K, V) bool) *Mapping[K, V] {
	return MappingFromSource(source.FilterPairs(m.upstream(), fn))
}

// TakeWhile returns a new realized Mapping holding the prefix of entries
// (in insertion order) that satisfy fn, stopping at the first entry that
// does not. This is a prefix cut, not a filter: entries after the first
// failure are excluded even if they would satisfy fn.
func (m *Mapping[K, V]) TakeWhile(fn func(K, V) bool) *Mapping[K, V] {
	m.realize()
	entries := orderedmap.New[K, V]()
	for k, v := range m.seq() {
		if !fn(k, v) {
			break
		}
		entries.Set(k, v)
	}
	return &Mapping[K, V]{entries: entries, realized: true}
}

// MapEntries returns a new unrealized Mapping that will hold fn(key, value)
// for every entry. fn may replace the key as well as the value (re-keying);
// when two transformed entries collide on a key, the later one wins the
// value and the earlier one keeps the position. The receiver is not realized
// by this call.
func MapEntries[K, V, K2, V2 comparable](m *Mapping[K, V], fn func(K, V) (K2, V2)) *Mapping[K2, V2] {
	return MappingFromSource(source.MapPairs(m.upstream(), fn))
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// FoldEntries left-folds the entries of m (in insertion order) into a value
// of type A with initial as the seed. Returns [ErrEmptyCollection] on an
// empty Mapping.
func FoldEntries[K, V comparable, A any](m *Mapping[K, V], initial A, fn func(A, K, V) A) (A, error) {
	m.realize()
	if m.entries.Len() == 0 {
		var zero A
		return zero, ErrEmptyCollection
	}
	acc := initial
	for k, v := range m.seq() {
		acc = fn(acc, k, v)
	}
	return acc, nil
}

// ReduceEntries left-folds the entries of m using the first entry as the
// seed. Returns [ErrEmptyCollection] on an empty Mapping.
func ReduceEntries[K, V comparable](m *Mapping[K, V], fn func(acc, entry Pair[K, V]) Pair[K, V]) (Pair[K, V], error) {
	m.realize()
	pairs := m.Pairs()
	if len(pairs) == 0 {
		return Pair[K, V]{}, ErrEmptyCollection
	}
	acc := pairs[0]
	for _, p := range pairs[1:] {
		acc = fn(acc, p)
	}
	return acc, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping
// ─────────────────────────────────────────────────────────────────────────────

// ZipEntries pairs the i-th entries of a and b into a new realized Mapping
// whose keys are key pairs and whose values are value pairs. The result's
// length is the shorter of the two inputs. Both operands are realized.
func ZipEntries[Ka, Va, Kb, Vb comparable](a *Mapping[Ka, Va], b *Mapping[Kb, Vb]) *Mapping[Pair[Ka, Kb], Pair[Va, Vb]] {
	pa := a.Pairs()
	pb := b.Pairs()
	n := min(len(pa), len(pb))
	out := orderedmap.New[Pair[Ka, Kb], Pair[Va, Vb]]()
	for i := 0; i < n; i++ {
		out.Set(
			Pair[Ka, Kb]{First: pa[i].First, Second: pb[i].First},
			Pair[Va, Vb]{First: pa[i].Second, Second: pb[i].Second},
		)
	}
	return &Mapping[Pair[Ka, Kb], Pair[Va, Vb]]{entries: out, realized: true}
}

// ZipEntriesWithIndex pairs every entry with its position, producing a new
// realized Mapping from position to entry.
func ZipEntriesWithIndex[K, V comparable](m *Mapping[K, V]) *Mapping[int, Pair[K, V]] {
	out := orderedmap.New[int, Pair[K, V]]()
	for i, p := range m.Pairs() {
		out.Set(i, p)
	}
	return &Mapping[int, Pair[K, V]]{entries: out, realized: true}
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality & hashing
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether m and other hold the same entries. Entry order does
// not participate: content equality for unique-key mappings is set equality
// over (key, value) pairs. Both operands are realized.
func (m *Mapping[K, V]) Equal(other *Mapping[K, V]) bool {
	m.realize()
	other.realize()
	if m.entries.Len() != other.entries.Len() {
		return false
	}
	for k, v := range m.seq() {
		ov, ok := other.entries.Get(k)
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Digest returns a stable, order-free content digest of the realized
// entries. Mappings for which Equal is true produce equal digests.
func (m *Mapping[K, V]) Digest() hashing.Digest {
	m.realize()
	var out hashing.Digest
	for k, v := range m.seq() {
		out = hashing.Combine(out, hashing.SumEntry(k, v))
	}
	return out
}
