package trie

// Del removes the entry at the cursor's current position (as left by the
// most recent Slot, Strt, Cell, Nxt or Prv call) and returns the
// predecessor's cell, or nil if the deleted entry was the smallest one
// (in particular when the trie is now empty). A cursor that has
// never been positioned is a no-op: Del returns nil without touching the
// trie, matching the "unpositioned cursor is not an error" contract.
//
// Del walks the cursor frames upward from the leaf exactly as insert
// walks them downward: it unlinks the leaf's own entry, and if that
// empties the node holding it, frees the node and repeats one level up,
// continuing until it reaches a node that still has other entries (at
// which point it stops and resumes the predecessor search from there)
// or falls off the root (at which point the trie is empty). Deletion
// never demotes a linear node to a smaller class; this is a deliberate
// asymmetry carried over unchanged (see DESIGN.md).
func (t *Trie) Del() *uint64 {
	t.owns.touch("Del")
	t.lastErr = nil

	if t.isReadOnly() {
		t.lastErr = ErrReadOnlyClone
		return nil
	}
	if t.cur.level == 0 {
		return nil
	}

	idx := t.cur.level - 1

	for {
		f := t.cur.frames[idx]

		switch f.node.tag() {
		case tagSpan:
			// A span leaf has no sibling slots: the whole node is the
			// entry, so it is unconditionally consumed.
			t.owner.free(f.node)

		case tagRadix:
			hi, lo := f.slot/16, f.slot%16
			outer := t.owner.radixAt(f.node)
			innerRef := ref(outer.get(hi))
			inner := t.owner.radixAt(innerRef)
			inner.set(lo, 0)

			if inner.count() > 0 {
				t.cur.truncate(idx + 1)
				return t.prev()
			}
			t.owner.free(innerRef)
			outer.set(hi, 0)

			if outer.count() > 0 {
				t.cur.truncate(idx + 1)
				return t.prev()
			}
			t.owner.free(f.node)

		default: // linear
			lin := t.owner.lin(f.node)
			linRemoveAt(lin, f.slot)

			if lin.count() > 0 {
				t.cur.truncate(idx + 1)
				return t.prev()
			}
			t.owner.free(f.node)
		}

		if idx == 0 {
			t.root = 0
			t.cur.truncate(0)
			return nil
		}
		idx--
	}
}
