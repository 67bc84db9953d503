// Package arena implements a segmented, handle-based allocator for the
// trie's node types and a bump allocator for caller scratch memory.
//
// This replaces the raw-pointer, tagged-address arena design of the
// original data structure with slices indexed by integer handles: there
// is no unsafe.Pointer arithmetic anywhere in this package, and the Go
// garbage collector keeps every segment alive for as long as the owning
// Pool is reachable.
package arena

// DefaultSegmentSize is the number of elements carved out each time a
// Pool grows. It mirrors the fixed-size-segment design of the original
// allocator, but the size here bounds a slice of T, not a byte count.
const DefaultSegmentSize = 4096

// Pool is a segmented, free-listed allocator for a single node type T.
// Handles returned by Alloc remain valid (and Get-able) until the
// corresponding Free call; handle 0 is never issued, so the zero value
// of a handle can double as a "no node" marker by the caller.
type Pool[T any] struct {
	segments   [][]T
	segSize    int
	next       uint32 // 1-based index of the next never-allocated slot
	free       []uint32
	maxHandles uint32 // 0 means unbounded
}

// NewPool creates an empty Pool that grows segSize elements at a time.
// A non-positive segSize falls back to DefaultSegmentSize. An optional
// maxHandles caps the number of live handles the pool will ever hand
// out at once (0, or omitted, means unbounded); once that many handles
// are outstanding, Alloc reports failure instead of growing further.
func NewPool[T any](segSize int, maxHandles ...int) *Pool[T] {
	if segSize <= 0 {
		segSize = DefaultSegmentSize
	}
	p := &Pool[T]{segSize: segSize, next: 1}
	if len(maxHandles) > 0 && maxHandles[0] > 0 {
		p.maxHandles = uint32(maxHandles[0])
	}
	return p
}

// Alloc returns a fresh, zeroed handle and a pointer to its backing
// storage. Recycled handles (from Free) are reused before any new
// storage is carved. If the pool is bounded and already at capacity, it
// returns (0, nil): handle 0 is never issued otherwise, so the caller
// can use it as a failure signal without a separate bool.
func (p *Pool[T]) Alloc() (uint32, *T) {
	if n := len(p.free); n > 0 {
		h := p.free[n-1]
		p.free = p.free[:n-1]
		v := p.Get(h)
		*v = *new(T)
		return h, v
	}

	if p.maxHandles > 0 && p.next > p.maxHandles {
		return 0, nil
	}

	h := p.next
	p.next++

	segIdx := int(h-1) / p.segSize
	offset := int(h-1) % p.segSize

	if segIdx >= len(p.segments) {
		p.segments = append(p.segments, make([]T, p.segSize))
	}

	return h, &p.segments[segIdx][offset]
}

// Free returns a handle to the pool. The caller must not use the handle
// or any pointer obtained from it afterwards.
func (p *Pool[T]) Free(h uint32) {
	p.free = append(p.free, h)
}

// Get resolves a handle to a pointer to its backing storage. h must have
// been returned by Alloc and not yet Free'd.
func (p *Pool[T]) Get(h uint32) *T {
	idx := int(h - 1)
	return &p.segments[idx/p.segSize][idx%p.segSize]
}

// Len reports the number of handles ever issued, including freed ones;
// it is exposed for tests that want to assert on allocator growth.
func (p *Pool[T]) Len() int { return int(p.next - 1) }
