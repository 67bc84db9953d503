package trie

import "github.com/flier/juditrie/pkg/arena"

// allocator owns one arena.Pool per node type, plus a byte arena for
// auxiliary caller scratch (Trie.Data). It is the Go-safe replacement
// for the original's segmented bump allocator with per-size free lists;
// see the arena design note in SPEC_FULL.md.
type allocator struct {
	lin1  *arena.Pool[lin1Node]
	lin2  *arena.Pool[lin2Node]
	lin4  *arena.Pool[lin4Node]
	lin8  *arena.Pool[lin8Node]
	lin16 *arena.Pool[lin16Node]
	lin32 *arena.Pool[lin32Node]
	radix *arena.Pool[radixNode]
	span  *arena.Pool[spanNode]
	bytes *arena.Bytes
}

func newAllocator(segSize, maxNodes int) *allocator {
	return &allocator{
		lin1:  arena.NewPool[lin1Node](segSize, maxNodes),
		lin2:  arena.NewPool[lin2Node](segSize, maxNodes),
		lin4:  arena.NewPool[lin4Node](segSize, maxNodes),
		lin8:  arena.NewPool[lin8Node](segSize, maxNodes),
		lin16: arena.NewPool[lin16Node](segSize, maxNodes),
		lin32: arena.NewPool[lin32Node](segSize, maxNodes),
		radix: arena.NewPool[radixNode](segSize, maxNodes),
		span:  arena.NewPool[spanNode](segSize, maxNodes),
		bytes: arena.NewBytes(0),
	}
}

// alloc returns a fresh, zeroed node of the given tag, tagged and ready
// to be stored in a parent slot, or the zero ref if the backing pool is
// bounded and already at capacity. Callers must check r.isZero() before
// linking the result into the trie.
func (a *allocator) alloc(tag ref) ref {
	var h uint32
	switch tag {
	case tagLin1:
		h, _ = a.lin1.Alloc()
	case tagLin2:
		h, _ = a.lin2.Alloc()
	case tagLin4:
		h, _ = a.lin4.Alloc()
	case tagLin8:
		h, _ = a.lin8.Alloc()
	case tagLin16:
		h, _ = a.lin16.Alloc()
	case tagLin32:
		h, _ = a.lin32.Alloc()
	case tagRadix:
		h, _ = a.radix.Alloc()
	case tagSpan:
		h, _ = a.span.Alloc()
	default:
		return 0
	}
	if h == 0 {
		return 0
	}
	return makeRef(h, tag)
}

// free returns a node's storage to its pool. r must not be the empty
// reference.
func (a *allocator) free(r ref) {
	switch r.tag() {
	case tagLin1:
		a.lin1.Free(r.handle())
	case tagLin2:
		a.lin2.Free(r.handle())
	case tagLin4:
		a.lin4.Free(r.handle())
	case tagLin8:
		a.lin8.Free(r.handle())
	case tagLin16:
		a.lin16.Free(r.handle())
	case tagLin32:
		a.lin32.Free(r.handle())
	case tagRadix:
		a.radix.Free(r.handle())
	case tagSpan:
		a.span.Free(r.handle())
	}
}

// lin resolves r (which must name a linear node) to its linNode view.
func (a *allocator) lin(r ref) linNode {
	switch r.tag() {
	case tagLin1:
		return a.lin1.Get(r.handle())
	case tagLin2:
		return a.lin2.Get(r.handle())
	case tagLin4:
		return a.lin4.Get(r.handle())
	case tagLin8:
		return a.lin8.Get(r.handle())
	case tagLin16:
		return a.lin16.Get(r.handle())
	case tagLin32:
		return a.lin32.Get(r.handle())
	default:
		return nil
	}
}

// radixAt resolves r (which must be tagRadix) to its backing node.
func (a *allocator) radixAt(r ref) *radixNode {
	return a.radix.Get(r.handle())
}

// spanAt resolves r (which must be tagSpan) to its backing node.
func (a *allocator) spanAt(r ref) *spanNode {
	return a.span.Get(r.handle())
}

// data allocates n zeroed bytes of caller scratch memory.
func (a *allocator) data(n int) []byte {
	return a.bytes.Alloc(n)
}
