package trie

import "github.com/dolthub/maphash"

// Digest computes a structural fingerprint of the trie by folding every
// (key, cell) pair reachable via Strt/Nxt through a maphash.Hasher. Two
// tries built from the same key/value population hash identically
// regardless of insertion order, since it is the sorted traversal order
// that is folded in, not the physical node layout — useful for tests and
// callers that want a cheap "did anything change" check without keeping
// a full snapshot around.
//
// Digest positions the trie's own cursor as a side effect, exactly like
// any other traversal operation; callers that need their cursor
// preserved across a Digest call should take a Clone first.
func (t *Trie) Digest() uint64 {
	h := maphash.NewHasher[string]()
	buf := make([]byte, t.maxKeyLen+1)

	const fnvOffset = 1469598103934665603
	const fnvPrime = 1099511628211

	acc := uint64(fnvOffset)

	for cell := t.Strt(nil); cell != nil; cell = t.Nxt() {
		n := t.Key(buf)
		acc ^= h.Hash(string(buf[:n]))
		acc *= fnvPrime
		acc ^= *cell
		acc *= fnvPrime
	}

	return acc
}
