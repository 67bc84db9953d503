package trie_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/juditrie/pkg/trie"
)

func TestOrderInvariant(t *testing.T) {
	tr, err := trie.Open(16)
	require.NoError(t, err)
	defer tr.Close()

	words := []string{"fig", "date", "apple", "banana", "cherry", "elderberry"}
	for _, w := range words {
		p := tr.Cell([]byte(w))
		require.NotNil(t, p)
		*p = 1
	}

	want := append([]string(nil), words...)
	sort.Strings(want)

	var got []string
	buf := make([]byte, 17)
	for p := tr.Strt(nil); p != nil; p = tr.Nxt() {
		n := tr.Key(buf)
		got = append(got, string(buf[:n]))
	}

	require.Equal(t, want, got)
}

func TestDeleteRestoresLookupMiss(t *testing.T) {
	tr, err := trie.Open(16)
	require.NoError(t, err)
	defer tr.Close()

	for _, k := range []string{"a", "m", "z"} {
		p := tr.Cell([]byte(k))
		*p = 1
	}

	p := tr.Slot([]byte("m"))
	require.NotNil(t, p)
	tr.Del()

	require.Nil(t, tr.Slot([]byte("m")))

	ceil := tr.Strt([]byte("m"))
	require.NotNil(t, ceil)

	buf := make([]byte, 17)
	n := tr.Key(buf)
	require.Equal(t, "z", string(buf[:n]), "strt(m) after deleting m should land on the next key, z")
}

func TestEmptyInvariant(t *testing.T) {
	tr, err := trie.Open(16)
	require.NoError(t, err)
	defer tr.Close()

	keys := []string{"one", "two", "three", "four", "five"}
	for _, k := range keys {
		p := tr.Cell([]byte(k))
		*p = 1
	}

	for i, k := range keys {
		p := tr.Slot([]byte(k))
		require.NotNil(t, p, "expected %q present before deleting it", k)
		if i < len(keys)-1 {
			require.NotNil(t, tr.Del(), "deleting %q leaves a smaller key as its predecessor", k)
		} else {
			require.Nil(t, tr.Del(), "deleting the last remaining key empties the trie")
		}
	}

	require.Nil(t, tr.Strt(nil))
	require.Nil(t, tr.End())
}

func TestDeleteOfLastKeyReturnsNil(t *testing.T) {
	tr, err := trie.Open(16)
	require.NoError(t, err)
	defer tr.Close()

	p := tr.Cell([]byte("only"))
	*p = 1

	require.NotNil(t, tr.Slot([]byte("only")))
	require.Nil(t, tr.Del())
	require.Nil(t, tr.Strt(nil))
}

func TestDeleteThenReinsertRoundTrips(t *testing.T) {
	tr, err := trie.Open(16)
	require.NoError(t, err)
	defer tr.Close()

	for _, k := range []string{"aa", "ab", "ac", "ad"} {
		p := tr.Cell([]byte(k))
		*p = 1
	}

	tr.Slot([]byte("ab"))
	tr.Del()
	require.Nil(t, tr.Slot([]byte("ab")))

	p := tr.Cell([]byte("ab"))
	require.NotNil(t, p)
	*p = 42

	got := tr.Slot([]byte("ab"))
	require.NotNil(t, got)
	require.EqualValues(t, 42, *got)

	var keys []string
	buf := make([]byte, 17)
	for p := tr.Strt(nil); p != nil; p = tr.Nxt() {
		n := tr.Key(buf)
		keys = append(keys, string(buf[:n]))
	}
	require.Equal(t, []string{"aa", "ab", "ac", "ad"}, keys)
}

func TestPrevMirrorsNext(t *testing.T) {
	tr, err := trie.Open(16)
	require.NoError(t, err)
	defer tr.Close()

	words := []string{"one", "two", "three", "four", "five"}
	for _, w := range words {
		p := tr.Cell([]byte(w))
		*p = 1
	}

	var forward []string
	buf := make([]byte, 17)
	for p := tr.Strt(nil); p != nil; p = tr.Nxt() {
		n := tr.Key(buf)
		forward = append(forward, string(buf[:n]))
	}

	var backward []string
	for p := tr.End(); p != nil; p = tr.Prv() {
		n := tr.Key(buf)
		backward = append(backward, string(buf[:n]))
	}

	reversed := make([]string, len(forward))
	for i, k := range forward {
		reversed[len(forward)-1-i] = k
	}

	require.Equal(t, reversed, backward)
}

func TestStrtOnMissReturnsCeiling(t *testing.T) {
	tr, err := trie.Open(16)
	require.NoError(t, err)
	defer tr.Close()

	for _, k := range []string{"b", "d", "f"} {
		p := tr.Cell([]byte(k))
		*p = 1
	}

	buf := make([]byte, 17)

	p := tr.Strt([]byte("c"))
	require.NotNil(t, p)
	n := tr.Key(buf)
	require.Equal(t, "d", string(buf[:n]))

	require.Nil(t, tr.Strt([]byte("g")))
}

func byteKeysSorted(keys [][]byte) bool {
	for i := 1; i < len(keys); i++ {
		if bytes.Compare(keys[i-1], keys[i]) >= 0 {
			return false
		}
	}
	return true
}

func TestCursorReconstructionIsConsistent(t *testing.T) {
	tr, err := trie.Open(20)
	require.NoError(t, err)
	defer tr.Close()

	raw := [][]byte{
		[]byte("x"), []byte("xy"), []byte("xyz"), []byte("a/b/c"), []byte("a/b/d"),
	}
	for _, k := range raw {
		p := tr.Cell(k)
		*p = 1
	}

	var seen [][]byte
	buf := make([]byte, 21)
	for p := tr.Strt(nil); p != nil; p = tr.Nxt() {
		n := tr.Key(buf)
		cp := make([]byte, n)
		copy(cp, buf[:n])
		seen = append(seen, cp)
	}

	require.Len(t, seen, len(raw))
	require.True(t, byteKeysSorted(seen))
}
