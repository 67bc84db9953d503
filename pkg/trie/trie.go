// Package trie implements an ordered associative container mapping
// byte-string keys to single-word payload cells, backed by an adaptive
// radix trie (a Judy-array variant) with six linear node sizes, a
// two-level 16x16 radix fan-out node, and a path-compressed span node.
//
// A Trie is not safe for concurrent use: every public method reads or
// mutates the trie's own cursor, so callers must serialize access
// exactly as described in the concurrency design notes. Build with
// -tags debug and WithOwnerCheck(true) to get an early diagnostic if two
// goroutines drive the same Trie without synchronization.
package trie

// Trie is an ordered byte-string-keyed map from keys to uint64 cells.
// The zero value is not usable; construct one with Open.
type Trie struct {
	arena *allocator // always non-nil: backs every read
	owner *allocator // non-nil only on a trie allowed to mutate

	root ref
	cur  *cursor

	maxKeyLen int
	owns      ownerCheck
	lastErr   error
}

// Err returns the error from the most recent cursor-mutating call, or
// nil if it succeeded. Only Cell and Del set it; other operations
// signal failure solely via a nil return (per the contract-violation
// design: a miss or an unpositioned cursor is not an error).
func (t *Trie) Err() error { return t.lastErr }

// Open allocates a new, empty Trie whose cursor stack is sized to
// accommodate keys up to maxKeyLen bytes (plus the implicit terminator).
// Open itself cannot fail: node storage is carved lazily as Cell needs
// it, so there is nothing yet to exhaust at construction time. Open
// still returns an error for interface symmetry with the rest of this
// package's fallible constructors, and always returns nil; the
// WithMaxNodes bound it accepts governs failures from later Cell calls.
func Open(maxKeyLen int, opts ...OpenOption) (*Trie, error) {
	o := options{segSize: 0}
	for _, fn := range opts {
		fn(&o)
	}

	a := newAllocator(o.segSize, o.maxNodes)

	t := &Trie{
		arena:     a,
		owner:     a,
		maxKeyLen: maxKeyLen,
		cur:       newCursor(maxKeyLen + 1),
	}
	t.owns.enabled = o.ownerCheck

	return t, nil
}

// Close releases the trie's arena. Clones taken before Close remain
// valid read-only views of the node graph they captured (the node graph
// is ordinary Go memory kept alive by the GC as long as any clone
// references it; this is a deliberate, safe deviation from the
// original's "closing invalidates every clone" contract).
func (t *Trie) Close() {
	t.arena = nil
	t.owner = nil
	t.root = 0
	t.cur = nil
	t.owns.release()
}

// Clone returns a read-only view sharing the same node graph and an
// independent cursor. Every mutating operation on the result returns
// ErrReadOnlyClone.
func (t *Trie) Clone() *Trie {
	clone := &Trie{
		arena:     t.arena,
		owner:     nil,
		root:      t.root,
		maxKeyLen: t.maxKeyLen,
		cur:       t.cur.clone(t.maxKeyLen + 1),
	}
	return clone
}

// Data allocates n zeroed bytes of scratch memory from the trie's
// arena, for the caller's own auxiliary use. Returns nil on a clone or
// on resource exhaustion.
func (t *Trie) Data(n int) []byte {
	if t.owner == nil || t.arena == nil {
		return nil
	}
	return t.arena.data(n)
}

// isReadOnly reports whether mutating operations must be refused.
func (t *Trie) isReadOnly() bool {
	return t.owner == nil
}

func (t *Trie) checkKeyLen(key []byte) error {
	if len(key) > t.maxKeyLen {
		return ErrKeyTooLong
	}
	return nil
}
