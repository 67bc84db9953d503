package trie

// firstFrom descends from node (at key offset off) to the leftmost
// populated leaf, pushing a cursor frame at every step.
func (t *Trie) firstFrom(node ref, off int) (*uint64, bool) {
	for {
		if node.isZero() {
			return nil, false
		}

		switch node.tag() {
		case tagRadix:
			outer := t.arena.radixAt(node)
			slot, w, ok := radixFirst(t.arena, outer)
			if !ok {
				return nil, false
			}
			t.cur.push(frame{node: node, off: off, slot: slot, visited: true})
			if slot == 0 {
				inner := t.arena.radixAt(ref(outer.get(0)))
				return inner.ptr(0), true
			}
			node, off = ref(w), off+1

		case tagSpan:
			s := t.arena.spanAt(node)
			t.cur.push(frame{node: node, off: off, slot: 0, visited: true})
			if zi := s.zeroIndex(); zi >= 0 {
				return &s.child, true
			}
			node, off = ref(s.child), off+int(s.n)

		default:
			lin := t.arena.lin(node)
			idx := linFirst(lin)
			if idx < 0 {
				return nil, false
			}
			t.cur.push(frame{node: node, off: off, slot: idx, visited: true})
			if lowByte(lin.key(idx)) == 0 {
				return lin.childPtr(idx), true
			}
			node, off = ref(lin.child(idx)), off+stride(off)
		}
	}
}

// lastFrom descends from node (at key offset off) to the rightmost
// populated leaf, pushing a cursor frame at every step.
func (t *Trie) lastFrom(node ref, off int) (*uint64, bool) {
	for {
		if node.isZero() {
			return nil, false
		}

		switch node.tag() {
		case tagRadix:
			outer := t.arena.radixAt(node)
			slot, w, ok := radixLast(t.arena, outer)
			if !ok {
				return nil, false
			}
			t.cur.push(frame{node: node, off: off, slot: slot, visited: true})
			if slot == 0 {
				inner := t.arena.radixAt(ref(outer.get(0)))
				return inner.ptr(0), true
			}
			node, off = ref(w), off+1

		case tagSpan:
			s := t.arena.spanAt(node)
			t.cur.push(frame{node: node, off: off, slot: 0, visited: true})
			if zi := s.zeroIndex(); zi >= 0 {
				return &s.child, true
			}
			node, off = ref(s.child), off+int(s.n)

		default:
			lin := t.arena.lin(node)
			idx := linLast(lin)
			if idx < 0 {
				return nil, false
			}
			t.cur.push(frame{node: node, off: off, slot: idx, visited: true})
			if lowByte(lin.key(idx)) == 0 {
				return lin.childPtr(idx), true
			}
			node, off = ref(lin.child(idx)), off+stride(off)
		}
	}
}

// next resumes traversal from the cursor's current position and returns
// the next entry in lexicographic order, or nil if there is none. A
// cursor that is empty on entry restarts the search from the root, per
// the original contract; a search that pops every frame without finding
// a successor returns nil and leaves the cursor empty.
func (t *Trie) next() *uint64 {
	if t.cur.level == 0 {
		p, _ := t.firstFrom(t.root, 0)
		return p
	}
	for {
		f, ok := t.cur.top()
		if !ok {
			return nil
		}

		switch f.node.tag() {
		case tagRadix:
			start := f.slot
			if f.visited {
				start++
			}
			outer := t.arena.radixAt(f.node)
			slot, w, found := radixSuccessor(t.arena, outer, start)
			if !found {
				t.cur.pop()
				continue
			}
			node, off := f.node, f.off
			*f = frame{node: node, off: off, slot: slot, visited: true}
			if slot == 0 {
				inner := t.arena.radixAt(ref(outer.get(0)))
				return inner.ptr(0)
			}
			if p, found2 := t.firstFrom(ref(w), off+1); found2 {
				return p
			}
			t.cur.pop()

		case tagSpan:
			if !f.visited && f.spanLow {
				node, off := f.node, f.off
				t.cur.pop()
				if p, found2 := t.firstFrom(node, off); found2 {
					return p
				}
				continue
			}
			t.cur.pop()

		default:
			lin := t.arena.lin(f.node)
			start := f.slot
			if f.visited {
				start++
			}
			if start >= lin.count() {
				t.cur.pop()
				continue
			}
			node, off := f.node, f.off
			*f = frame{node: node, off: off, slot: start, visited: true}
			if lowByte(lin.key(start)) == 0 {
				return lin.childPtr(start)
			}
			if p, found2 := t.firstFrom(ref(lin.child(start)), off+stride(off)); found2 {
				return p
			}
			t.cur.pop()
		}
	}
}

// prev is the mirror of next, descending via lastFrom and scanning
// downward.
func (t *Trie) prev() *uint64 {
	if t.cur.level == 0 {
		p, _ := t.lastFrom(t.root, 0)
		return p
	}
	for {
		f, ok := t.cur.top()
		if !ok {
			return nil
		}

		switch f.node.tag() {
		case tagRadix:
			start := f.slot - 1
			outer := t.arena.radixAt(f.node)
			if start < 0 {
				t.cur.pop()
				continue
			}
			slot, w, found := radixPredecessor(t.arena, outer, start)
			if !found {
				t.cur.pop()
				continue
			}
			node, off := f.node, f.off
			*f = frame{node: node, off: off, slot: slot, visited: true}
			if slot == 0 {
				inner := t.arena.radixAt(ref(outer.get(0)))
				return inner.ptr(0)
			}
			if p, found2 := t.lastFrom(ref(w), off+1); found2 {
				return p
			}
			t.cur.pop()

		case tagSpan:
			if !f.visited && !f.spanLow {
				node, off := f.node, f.off
				t.cur.pop()
				if p, found2 := t.lastFrom(node, off); found2 {
					return p
				}
				continue
			}
			t.cur.pop()

		default:
			lin := t.arena.lin(f.node)
			start := f.slot - 1
			if start < 0 {
				t.cur.pop()
				continue
			}
			node, off := f.node, f.off
			*f = frame{node: node, off: off, slot: start, visited: true}
			if lowByte(lin.key(start)) == 0 {
				return lin.childPtr(start)
			}
			if p, found2 := t.lastFrom(ref(lin.child(start)), off+stride(off)); found2 {
				return p
			}
			t.cur.pop()
		}
	}
}
