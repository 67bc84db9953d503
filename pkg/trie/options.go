package trie

// OpenOption configures a Trie at construction time. The zero value of
// every option is conservative, so Open(maxKeyLen) alone is always a
// valid call.
type OpenOption func(*options)

type options struct {
	segSize    int
	maxNodes   int
	ownerCheck bool
}

// WithSegmentSize sets the number of nodes carved per arena segment
// growth step. The original's 64 KiB figure was explicitly called out
// as non-semantic; this exposes it as a tunable instead of a constant.
func WithSegmentSize(n int) OpenOption {
	return func(o *options) { o.segSize = n }
}

// WithMaxNodes bounds each per-tag node pool to n live handles. Once a
// pool reaches that bound, the allocation that would have grown it past
// it fails: the mutating call that triggered it returns nil and
// Trie.Err reports a wrapped ErrResourceExhausted. The zero value (the
// default) leaves every pool unbounded, growing for as long as the Go
// runtime can satisfy it.
func WithMaxNodes(n int) OpenOption {
	return func(o *options) { o.maxNodes = n }
}

// WithOwnerCheck enables the goroutine-ownership diagnostic described in
// the concurrency design notes. It only has an effect in binaries built
// with the debug build tag; in release builds it is a no-op so the
// single-goroutine contract costs nothing at runtime.
func WithOwnerCheck(enabled bool) OpenOption {
	return func(o *options) { o.ownerCheck = enabled }
}
