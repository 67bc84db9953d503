package trie_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/juditrie/pkg/trie"
)

// TestOwnerCheckNoOpWithoutDebugTag exercises the other half of the
// owner-check diagnostic in a release build (no "debug" build tag):
// WithOwnerCheck(true) still does nothing to release-build performance
// or correctness, so driving a trie from two goroutines without the
// debug tag compiled in succeeds rather than asserting.
func TestOwnerCheckNoOpWithoutDebugTag(t *testing.T) {
	tr, err := trie.Open(16, trie.WithOwnerCheck(true))
	require.NoError(t, err)
	defer tr.Close()

	tr.Cell([]byte("first"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		tr.Cell([]byte("second"))
	}()
	<-done

	require.NotNil(t, tr.Slot([]byte("first")))
	require.NotNil(t, tr.Slot([]byte("second")))
}
