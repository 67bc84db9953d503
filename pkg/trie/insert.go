package trie

import "github.com/flier/juditrie/internal/debug"

// Cell performs insert-or-locate: it returns a writable pointer to key's
// payload cell, creating whatever nodes are necessary along the way.
// The caller must store a non-zero value into the returned cell: a
// freshly created cell reads as zero, which a subsequent lookup treats
// as "absent".
//
// Cell returns nil if key exceeds the trie's declared maximum length,
// this Trie is a read-only clone, or a WithMaxNodes bound configured at
// Open has been reached and no further node storage can be carved;
// t.Err reports which. The cursor's position after a nil return from
// resource exhaustion is unspecified; reposition with Strt or Slot
// before calling Key.
func (t *Trie) Cell(key []byte) *uint64 {
	t.owns.touch("Cell")
	t.lastErr = nil

	if t.isReadOnly() {
		t.lastErr = ErrReadOnlyClone
		return nil
	}
	if err := t.checkKeyLen(key); err != nil {
		t.lastErr = err
		return nil
	}

	for {
		if p, ok := t.locate(key); ok {
			return p
		}
		if p, done := t.insertAtDivergence(key); done {
			return p
		}
		// else: a structural change (promote / split) happened; retry
		// the whole walk, which is now guaranteed to make progress.
	}
}

// insertAtDivergence handles the cursor position locate left behind
// after a miss: either the trie was entirely empty, or the top cursor
// frame names the node and position at which the new key diverges.
func (t *Trie) insertAtDivergence(key []byte) (*uint64, bool) {
	top, ok := t.cur.top()
	if !ok {
		// Empty trie: synthesize a brand new chain for the whole key.
		child, cellPtr := t.buildChain(key, 0)
		if cellPtr == nil {
			t.lastErr = errResourceExhausted("initial chain")
			return nil, true
		}
		t.root = child
		return cellPtr, true
	}

	f := *top

	// locate already confirmed f as an exact structural match; a miss
	// here only means the cell at that position still reads as its zero
	// value (never written), not that the key is absent. Recompute and
	// return that same cell instead of falling into the insert paths
	// below, which assume f names an insertion point, not a hit.
	if f.visited {
		return t.existingCell(f), true
	}

	switch f.node.tag() {
	case tagSpan:
		if !t.splitSpan(t.cur.level) {
			t.lastErr = errResourceExhausted("span split")
			return nil, true
		}
		return nil, false

	case tagRadix:
		return t.insertRadix(top, key), true

	default:
		return t.insertLinear(top, key)
	}
}

// existingCell recomputes the payload-cell pointer for a cursor frame
// locate already walked to an exact match on, for the case where the
// cell there is still unwritten (reads as zero). Mirrors the leaf
// branches in descend, node kind for node kind.
func (t *Trie) existingCell(f frame) *uint64 {
	switch f.node.tag() {
	case tagSpan:
		return &t.owner.spanAt(f.node).child

	case tagRadix:
		hi, lo := f.slot/16, f.slot%16
		outer := t.owner.radixAt(f.node)
		inner := t.owner.radixAt(ref(outer.get(hi)))
		return inner.ptr(lo)

	default:
		lin := t.owner.lin(f.node)
		return lin.childPtr(f.slot)
	}
}

// insertRadix fills in a radix miss: either the terminal leaf slot
// (key byte 0) or a brand new subtree continuing the key. Sets t.lastErr
// and leaves the node graph exactly as it found it if an allocation
// along the way fails.
func (t *Trie) insertRadix(top *frame, key []byte) *uint64 {
	f := *top
	hi, lo := f.slot/16, f.slot%16

	outer := t.owner.radixAt(f.node)
	innerWord := outer.get(hi)
	allocatedInner := false
	if innerWord == 0 {
		ir := t.owner.alloc(tagRadix)
		if ir.isZero() {
			t.lastErr = errResourceExhausted("radix inner table")
			return nil
		}
		outer.set(hi, uint64(ir))
		innerWord = uint64(ir)
		allocatedInner = true
	}
	inner := t.owner.radixAt(ref(innerWord))

	*top = frame{node: f.node, off: f.off, slot: hi*16 + lo, visited: true}

	var b byte
	if f.off < len(key) {
		b = key[f.off]
	}
	if b == 0 {
		return inner.ptr(0)
	}

	child, cellPtr := t.buildChain(key, f.off+1)
	if cellPtr == nil {
		if allocatedInner {
			outer.set(hi, 0)
			t.owner.free(ref(innerWord))
		}
		t.lastErr = errResourceExhausted("radix subtree")
		return nil
	}
	inner.set(lo, uint64(child))
	return cellPtr
}

// insertLinear handles a miss recorded inside a linear node: either a
// direct placement (room available), a promotion to the next size, or
// (at LIN32) a split into a radix node. done is false exactly when a
// structural change occurred and the caller must retry from the root;
// it is true with a nil cell on resource exhaustion, at which point
// t.lastErr is set and no structural change survives.
func (t *Trie) insertLinear(top *frame, key []byte) (*uint64, bool) {
	f := *top
	lin := t.owner.lin(f.node)

	if lin.count() < lin.capacity() {
		target := loadStride(key, f.off)
		idx := f.slot

		linInsertAt(lin, idx, target, 0)
		*top = frame{node: f.node, off: f.off, slot: idx, visited: true}

		if lowByte(target) == 0 {
			return lin.childPtr(idx), true
		}

		child, cellPtr := t.buildChain(key, f.off+stride(f.off))
		if cellPtr == nil {
			linRemoveAt(lin, idx)
			t.lastErr = errResourceExhausted("linear node child chain")
			return nil, true
		}
		lin.setChild(idx, uint64(child))
		return cellPtr, true
	}

	if f.node.tag() != tagLin32 {
		if !t.promote(t.cur.level) {
			t.lastErr = errResourceExhausted("linear node promotion")
			return nil, true
		}
		return nil, false
	}

	if !t.splitToRadix(t.cur.level) {
		t.lastErr = errResourceExhausted("radix split")
		return nil, true
	}
	return nil, false
}

// buildChain synthesizes brand-new infrastructure for the remainder of
// key starting at offset off, pushing cursor frames as it goes so the
// cursor is left correctly positioned on the new leaf. Used both to
// populate an empty trie and to extend a fresh branch off an existing
// node.
//
// On resource exhaustion partway through, buildChain returns (0, nil):
// the caller must treat that as total failure and not link the zero ref
// anywhere. Nodes already carved earlier in the chain before the
// failure are simply left unlinked; they are never reachable from the
// trie and so never corrupt it, at the cost of not being returned to
// their pool's free list until the arena itself is discarded.
func (t *Trie) buildChain(key []byte, off int) (ref, *uint64) {
	if off%wordSize != 0 {
		r := t.owner.alloc(tagLin1)
		if r.isZero() {
			return 0, nil
		}
		lin := t.owner.lin(r)
		t.cur.push(frame{node: r, off: off, slot: 0, visited: true})

		target := loadStride(key, off)
		lin.setCount(1)
		lin.setKey(0, target)

		if lowByte(target) == 0 {
			return r, lin.childPtr(0)
		}

		child, cellPtr := t.buildChain(key, off+stride(off))
		if cellPtr == nil {
			return 0, nil
		}
		lin.setChild(0, uint64(child))
		return r, cellPtr
	}

	return t.buildSpanSegment(key, off)
}

// buildSpanSegment emits one SPAN node (and, transitively, further SPAN
// nodes) covering the key starting at the word-aligned offset off. See
// buildChain's doc comment for the resource-exhaustion contract.
func (t *Trie) buildSpanSegment(key []byte, off int) (ref, *uint64) {
	r := t.owner.alloc(tagSpan)
	if r.isZero() {
		return 0, nil
	}
	s := t.owner.spanAt(r)
	t.cur.push(frame{node: r, off: off, slot: 0, visited: true})

	n := 0
	for n < spanCapacity {
		var b byte
		if off+n < len(key) {
			b = key[off+n]
		}
		s.buf[n] = b
		n++
		if b == 0 {
			break
		}
	}
	s.n = uint8(n)

	if s.buf[n-1] == 0 {
		return r, &s.child
	}

	child, cellPtr := t.buildSpanSegment(key, off+spanCapacity)
	if cellPtr == nil {
		return 0, nil
	}
	s.child = uint64(child)
	return r, cellPtr
}

// setChildRef rewrites whatever storage pointed at the node being
// replaced (the frame at parentIdx+1) to point at newRef instead. A
// negative parentIdx means the node being replaced was the root.
func (t *Trie) setChildRef(parentIdx int, newRef ref) {
	if parentIdx < 0 {
		t.root = newRef
		return
	}

	p := t.cur.frames[parentIdx]

	switch p.node.tag() {
	case tagRadix:
		hi, lo := p.slot/16, p.slot%16
		outer := t.owner.radixAt(p.node)
		inner := t.owner.radixAt(ref(outer.get(hi)))
		inner.set(lo, uint64(newRef))

	case tagSpan:
		s := t.owner.spanAt(p.node)
		s.child = uint64(newRef)

	default:
		lin := t.owner.lin(p.node)
		lin.setChild(p.slot, uint64(newRef))
	}
}

// promote grows the full linear node named by the frame at level-1 to
// the next larger class, preserving its entries in order. Reports
// whether it succeeded; on failure the original node is left untouched
// (the new class is allocated and populated before anything about the
// old node is changed).
func (t *Trie) promote(level int) bool {
	f := t.cur.frames[level-1]
	lin := t.owner.lin(f.node)

	newTag := nextLinTag(f.node.tag())
	newRef := t.owner.alloc(newTag)
	if newRef.isZero() {
		return false
	}
	newLin := t.owner.lin(newRef)

	n := lin.count()
	for i := 0; i < n; i++ {
		newLin.setKey(i, lin.key(i))
		newLin.setChild(i, lin.child(i))
	}
	newLin.setCount(n)

	debug.Log(nil, "promote", "%v", debug.Dict(nil, "from", f.node.tag(), "to", newTag, "count", n))

	t.owner.free(f.node)
	t.setChildRef(level-2, newRef)
	return true
}

// splitToRadix converts a full LIN32 node into a radix node, grouping
// its entries by their first significant byte. Reports whether it
// succeeded; the original LIN32 node is only freed and unlinked once
// every node the replacement needs has been carved and populated, so a
// failure partway through leaves the trie exactly as it was (at the
// cost of leaking whatever partial replacement nodes were already
// allocated — they are never linked in, so they cannot corrupt
// anything, only waste a few handles until the arena is closed).
func (t *Trie) splitToRadix(level int) bool {
	f := t.cur.frames[level-1]
	lin := t.owner.lin(f.node)
	s := stride(f.off)

	outerRef := t.owner.alloc(tagRadix)
	if outerRef.isZero() {
		return false
	}
	outer := t.owner.radixAt(outerRef)

	cnt := lin.count()
	shift := uint(8 * (s - 1))

	for i := 0; i < cnt; {
		b := byte(lin.key(i) >> shift)
		j := i + 1
		for j < cnt && byte(lin.key(j)>>shift) == b {
			j++
		}
		groupLen := j - i

		hi, lo := nibbles(b)
		innerWord := outer.get(hi)
		if innerWord == 0 {
			ir := t.owner.alloc(tagRadix)
			if ir.isZero() {
				return false
			}
			outer.set(hi, uint64(ir))
			innerWord = uint64(ir)
		}
		inner := t.owner.radixAt(ref(innerWord))

		// With a one-byte stride there is nothing left to strip, and a
		// leading byte of 0 ends the key: in both cases the entry's child
		// goes straight into the inner slot, which for byte 0 is the leaf
		// cell that descend and firstFrom read there.
		if s == 1 || b == 0 {
			inner.set(lo, lin.child(i))
		} else {
			mask := uint64(1)<<shift - 1
			newTag := smallestLinTagFor(groupLen)
			newRef := t.owner.alloc(newTag)
			if newRef.isZero() {
				return false
			}
			newLin := t.owner.lin(newRef)
			for k := 0; k < groupLen; k++ {
				newLin.setKey(k, lin.key(i+k)&mask)
				newLin.setChild(k, lin.child(i+k))
			}
			newLin.setCount(groupLen)
			inner.set(lo, uint64(newRef))
		}

		i = j
	}

	debug.Log(nil, "splitToRadix", "%v", debug.Dict(nil, "from", f.node.tag(), "count", cnt))

	t.owner.free(f.node)
	t.setChildRef(level-2, outerRef)
	return true
}

// splitSpan replaces a diverging span node with a chain of LIN1 nodes,
// one per word-width stride of the original span content, preserving
// whatever the span's own child pointed at (a leaf cell or a
// continuation) as the tail of the new chain. Reports whether it
// succeeded; the span being split is only freed and unlinked once the
// whole replacement chain exists.
func (t *Trie) splitSpan(level int) bool {
	f := t.cur.frames[level-1]
	s := t.owner.spanAt(f.node)

	buf := make([]byte, s.n)
	copy(buf, s.buf[:s.n])
	tail := s.child

	headRef, ok := t.buildLin1Chain(buf, 0, f.off, tail)
	if !ok {
		return false
	}

	debug.Log(nil, "splitSpan", "%v", debug.Dict(nil, "spanLen", s.n, "off", f.off))

	t.owner.free(f.node)
	t.setChildRef(level-2, headRef)
	return true
}

// buildLin1Chain builds a chain of LIN1 nodes covering buf[pos:],
// threading the final node's child to tailChild. ok is false on
// resource exhaustion, matching buildChain's contract.
func (t *Trie) buildLin1Chain(buf []byte, pos int, off int, tailChild uint64) (r ref, ok bool) {
	r = t.owner.alloc(tagLin1)
	if r.isZero() {
		return 0, false
	}
	lin := t.owner.lin(r)

	w := stride(off)
	var v uint64
	for i := 0; i < w; i++ {
		v <<= 8
		if pos+i < len(buf) {
			v |= uint64(buf[pos+i])
		}
	}
	lin.setCount(1)
	lin.setKey(0, v)

	if pos+w >= len(buf) {
		lin.setChild(0, tailChild)
	} else {
		child, ok := t.buildLin1Chain(buf, pos+w, off+w, tailChild)
		if !ok {
			return 0, false
		}
		lin.setChild(0, uint64(child))
	}

	return r, true
}
