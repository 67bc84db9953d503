package trie

// A linear node holds up to cap() (key, child) pairs sorted ascending by
// key, packed starting at slot 0; slots [count, cap) are unused and read
// as zero. Six concrete sizes exist (1, 2, 4, 8, 16, 32) so that growth
// only ever copies into a node of the next size up, never reallocates
// in place.
//
// A slot's child word is polymorphic: for an interior slot it is a
// tagged ref to the next node; for a leaf slot (reached when the key's
// terminating zero byte is the low byte of that slot's key) it is the
// caller's own cell value instead, never interpreted as a ref.
type linNode interface {
	count() int
	setCount(n int)
	capacity() int
	key(i int) uint64
	setKey(i int, v uint64)
	child(i int) uint64
	setChild(i int, v uint64)
	childPtr(i int) *uint64
}

// linFind returns the index of the largest populated slot whose key is
// <= target, and whether that slot's key equals target exactly. If no
// slot qualifies (target is smaller than every populated key), it
// returns (-1, false).
func linFind(n linNode, target uint64) (idx int, exact bool) {
	lo, hi := 0, n.count()-1
	best := -1
	for lo <= hi {
		mid := (lo + hi) / 2
		k := n.key(mid)
		switch {
		case k == target:
			return mid, true
		case k < target:
			best = mid
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return best, false
}

// linInsertionPoint returns the index at which target would be inserted
// to keep the node's populated prefix sorted ascending.
func linInsertionPoint(n linNode, target uint64) int {
	lo, hi := 0, n.count()
	for lo < hi {
		mid := (lo + hi) / 2
		if n.key(mid) < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// linInsertAt shifts slots [idx, count) up by one and writes (k, c) at
// idx. The caller must have already verified count() < capacity().
func linInsertAt(n linNode, idx int, k uint64, c uint64) {
	cnt := n.count()
	for i := cnt; i > idx; i-- {
		n.setKey(i, n.key(i-1))
		n.setChild(i, n.child(i-1))
	}
	n.setKey(idx, k)
	n.setChild(idx, c)
	n.setCount(cnt + 1)
}

// linRemoveAt shifts slots (idx, count) down by one, dropping the entry
// at idx, and clears the now-vacated trailing slot.
func linRemoveAt(n linNode, idx int) {
	cnt := n.count()
	for i := idx; i < cnt-1; i++ {
		n.setKey(i, n.key(i+1))
		n.setChild(i, n.child(i+1))
	}
	n.setKey(cnt-1, 0)
	n.setChild(cnt-1, 0)
	n.setCount(cnt - 1)
}

// linFirst returns the index of the lowest populated slot, or -1 if the
// node is empty.
func linFirst(n linNode) int {
	if n.count() == 0 {
		return -1
	}
	return 0
}

// linLast returns the index of the highest populated slot, or -1 if the
// node is empty.
func linLast(n linNode) int {
	if n.count() == 0 {
		return -1
	}
	return n.count() - 1
}

// --- concrete node sizes ---

type lin1Node struct {
	n        uint8
	keys     [1]uint64
	children [1]uint64
}

type lin2Node struct {
	n        uint8
	keys     [2]uint64
	children [2]uint64
}

type lin4Node struct {
	n        uint8
	keys     [4]uint64
	children [4]uint64
}

type lin8Node struct {
	n        uint8
	keys     [8]uint64
	children [8]uint64
}

type lin16Node struct {
	n        uint8
	keys     [16]uint64
	children [16]uint64
}

type lin32Node struct {
	n        uint8
	keys     [32]uint64
	children [32]uint64
}

func (l *lin1Node) count() int             { return int(l.n) }
func (l *lin1Node) setCount(n int)         { l.n = uint8(n) }
func (l *lin1Node) capacity() int          { return 1 }
func (l *lin1Node) key(i int) uint64       { return l.keys[i] }
func (l *lin1Node) setKey(i int, v uint64) { l.keys[i] = v }
func (l *lin1Node) child(i int) uint64     { return l.children[i] }
func (l *lin1Node) setChild(i int, v uint64) { l.children[i] = v }
func (l *lin1Node) childPtr(i int) *uint64  { return &l.children[i] }

func (l *lin2Node) count() int             { return int(l.n) }
func (l *lin2Node) setCount(n int)         { l.n = uint8(n) }
func (l *lin2Node) capacity() int          { return 2 }
func (l *lin2Node) key(i int) uint64       { return l.keys[i] }
func (l *lin2Node) setKey(i int, v uint64) { l.keys[i] = v }
func (l *lin2Node) child(i int) uint64     { return l.children[i] }
func (l *lin2Node) setChild(i int, v uint64) { l.children[i] = v }
func (l *lin2Node) childPtr(i int) *uint64  { return &l.children[i] }

func (l *lin4Node) count() int             { return int(l.n) }
func (l *lin4Node) setCount(n int)         { l.n = uint8(n) }
func (l *lin4Node) capacity() int          { return 4 }
func (l *lin4Node) key(i int) uint64       { return l.keys[i] }
func (l *lin4Node) setKey(i int, v uint64) { l.keys[i] = v }
func (l *lin4Node) child(i int) uint64     { return l.children[i] }
func (l *lin4Node) setChild(i int, v uint64) { l.children[i] = v }
func (l *lin4Node) childPtr(i int) *uint64  { return &l.children[i] }

func (l *lin8Node) count() int             { return int(l.n) }
func (l *lin8Node) setCount(n int)         { l.n = uint8(n) }
func (l *lin8Node) capacity() int          { return 8 }
func (l *lin8Node) key(i int) uint64       { return l.keys[i] }
func (l *lin8Node) setKey(i int, v uint64) { l.keys[i] = v }
func (l *lin8Node) child(i int) uint64     { return l.children[i] }
func (l *lin8Node) setChild(i int, v uint64) { l.children[i] = v }
func (l *lin8Node) childPtr(i int) *uint64  { return &l.children[i] }

func (l *lin16Node) count() int             { return int(l.n) }
func (l *lin16Node) setCount(n int)         { l.n = uint8(n) }
func (l *lin16Node) capacity() int          { return 16 }
func (l *lin16Node) key(i int) uint64       { return l.keys[i] }
func (l *lin16Node) setKey(i int, v uint64) { l.keys[i] = v }
func (l *lin16Node) child(i int) uint64     { return l.children[i] }
func (l *lin16Node) setChild(i int, v uint64) { l.children[i] = v }
func (l *lin16Node) childPtr(i int) *uint64  { return &l.children[i] }

func (l *lin32Node) count() int             { return int(l.n) }
func (l *lin32Node) setCount(n int)         { l.n = uint8(n) }
func (l *lin32Node) capacity() int          { return 32 }
func (l *lin32Node) key(i int) uint64       { return l.keys[i] }
func (l *lin32Node) setKey(i int, v uint64) { l.keys[i] = v }
func (l *lin32Node) child(i int) uint64     { return l.children[i] }
func (l *lin32Node) setChild(i int, v uint64) { l.children[i] = v }
func (l *lin32Node) childPtr(i int) *uint64  { return &l.children[i] }
