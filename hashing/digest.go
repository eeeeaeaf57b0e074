// Package hashing computes stable content digests for realized containers.
//
// The collections package uses these digests as the hash counterpart of
// structural equality: two containers of the same shape with equal realized
// content produce the same digest. Digests are BLAKE2b-256 over a canonical
// element encoding and are deterministic across processes — unlike Go's
// per-process map hashing, a digest can be stored or compared out of band.
//
// Two combination modes cover the three container shapes:
//
//   - [SumOrdered] — element order contributes to the digest (Sequence).
//   - [SumUnordered] — order-free, elements combine by XOR of their
//     individual digests (Mapping entries, UniqueSet elements).
package hashing

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Size is the digest length in bytes.
const Size = blake2b.Size256

// Digest is a fixed-size content digest.
type Digest [Size]byte

// String returns the digest as a hexadecimal string.
func (d Digest) String() string {
	return fmt.Sprintf("%x", d[:])
}

// encode renders an element into its canonical byte form.
// Elements are framed by length before being fed into an ordered stream, so
// adjacent elements cannot run together.
func encode(item any) []byte {
	return []byte(fmt.Sprintf("%v", item))
}

// SumOrdered digests items in order. Each element is length-framed, so
// ["ab", "c"] and ["a", "bc"] produce different digests.
func SumOrdered(items []any) Digest {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 fails only for oversized keys; we pass none.
		panic("hashing: " + err.Error())
	}
	var frame [8]byte
	for _, item := range items {
		b := encode(item)
		binary.BigEndian.PutUint64(frame[:], uint64(len(b)))
		h.Write(frame[:])
		h.Write(b)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// SumUnordered digests items independently and combines the per-element
// digests by XOR, so the result does not depend on element order.
//
// Callers must guarantee element uniqueness (a duplicated element cancels
// itself out under XOR); both container shapes that use this mode — unique
// sets and unique-key mappings — do.
func SumUnordered(items []any) Digest {
	var out Digest
	for _, item := range items {
		d := blake2b.Sum256(encode(item))
		for i := range out {
			out[i] ^= d[i]
		}
	}
	return out
}

// SumEntry digests a single key-value entry. Mapping digests are built by
// XOR-combining entry digests via the same rule as [SumUnordered].
func SumEntry(key, value any) Digest {
	return SumOrdered([]any{key, value})
}

// Combine XORs two digests. XOR is associative and commutative, which is
// what makes the unordered mode order-free.
func Combine(a, b Digest) Digest {
	var out Digest
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}
