package trie

import (
	"github.com/timandy/routine"

	"github.com/flier/juditrie/internal/debug"
)

// ownerCheck implements the optional single-goroutine-ownership
// diagnostic described in the concurrency design notes: it records
// which goroutine last drove a cursor-mutating call and flags a second
// goroutine doing so without an intervening reset, in debug builds only.
// This exists because the trie keeps no internal lock by design (see
// the concurrency & resource model) and a caller violating that contract
// otherwise fails silently with corrupted cursor state far from the
// actual mistake.
type ownerCheck struct {
	enabled bool
	goid    int64
	armed   bool
}

func (o *ownerCheck) touch(op string) {
	if !o.enabled {
		return
	}

	id := routine.Goid()
	if !o.armed {
		o.goid = id
		o.armed = true
		return
	}

	debug.Assert(o.goid == id,
		"%s called from goroutine %d, but this trie was last driven from goroutine %d", op, id, o.goid)
}

// release clears ownership, e.g. when a Trie is closed.
func (o *ownerCheck) release() {
	o.armed = false
}
