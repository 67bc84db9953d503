package trie

// Slot performs a point lookup and repositions the cursor there. It
// returns nil if key is not present.
func (t *Trie) Slot(key []byte) *uint64 {
	t.owns.touch("Slot")
	if err := t.checkKeyLen(key); err != nil {
		return nil
	}
	p, ok := t.locate(key)
	if !ok {
		return nil
	}
	return p
}

// Strt performs a ceil lookup: the smallest entry >= key. An empty key
// returns the first entry. It repositions the cursor at the result.
func (t *Trie) Strt(key []byte) *uint64 {
	t.owns.touch("Strt")
	if err := t.checkKeyLen(key); err != nil {
		return nil
	}
	if len(key) == 0 {
		t.cur.reset()
		p, _ := t.firstFrom(t.root, 0)
		return p
	}
	if p, ok := t.locate(key); ok {
		return p
	}
	return t.next()
}

// End repositions the cursor at the last entry and returns its cell, or
// nil if the trie is empty.
func (t *Trie) End() *uint64 {
	t.owns.touch("End")
	t.cur.reset()
	p, _ := t.lastFrom(t.root, 0)
	return p
}

// Nxt advances the cursor to the next entry in lexicographic order.
func (t *Trie) Nxt() *uint64 {
	t.owns.touch("Nxt")
	return t.next()
}

// Prv moves the cursor to the previous entry in lexicographic order.
func (t *Trie) Prv() *uint64 {
	t.owns.touch("Prv")
	return t.prev()
}
