package bytekey_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/flier/juditrie/pkg/bytekey"
)

func TestFromStringNormalizes(t *testing.T) {
	// "é" as a single precomposed rune vs "e" + combining acute accent:
	// byte-distinct, canonically equivalent.
	precomposed := "café"
	decomposed := "café"
	require.NotEqual(t, []byte(precomposed), []byte(decomposed))

	require.Equal(t, bytekey.FromString(precomposed), bytekey.FromString(decomposed))
	require.True(t, norm.NFC.IsNormal([]byte(bytekey.FromString(decomposed))))
}

func TestFromBytesNilIsEmptyNotNil(t *testing.T) {
	k := bytekey.FromBytes(nil)
	require.NotNil(t, k)
	require.Empty(t, k)
}

func TestFromBytesCopies(t *testing.T) {
	src := []byte("hello")
	k := bytekey.FromBytes(src)
	src[0] = 'H'
	require.Equal(t, "hello", string(k))
}

func TestIntegerOrderPreserving(t *testing.T) {
	values := []int64{
		-9223372036854775808, -1000, -1, 0, 1, 1000, 9223372036854775807,
	}

	keys := make([][]byte, len(values))
	for i, v := range values {
		keys[i] = bytekey.FromInt64(v)
	}

	sorted := append([][]byte(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool { return bytes.Compare(sorted[i], sorted[j]) < 0 })

	require.Equal(t, keys, sorted, "keys should already be in ascending byte order matching numeric order")
}

func TestCrossWidthComparable(t *testing.T) {
	// Every signed width shares FromInt64's offset encoding, so they stay
	// comparable with each other; same for the unsigned widths against
	// FromUint64. The two families are no longer interleaved with one
	// another (see FromUint64's doc comment), so this only checks
	// within-family agreement.
	require.Equal(t, bytekey.FromInt64(42), bytekey.FromInt32(42))
	require.Equal(t, bytekey.FromInt64(42), bytekey.FromInt16(42))
	require.Equal(t, bytekey.FromInt64(42), bytekey.FromInt8(42))
	require.Equal(t, bytekey.FromUint64(42), bytekey.FromUint32(42))
	require.Equal(t, bytekey.FromUint64(42), bytekey.FromUint16(42))
	require.Equal(t, bytekey.FromUint64(42), bytekey.FromUint8(42))
}

func TestUint64OrderPreservingAcrossFullRange(t *testing.T) {
	values := []uint64{
		0, 1, 1000, 1<<63 - 1, 1 << 63, 1<<63 + 1, 18446744073709551615,
	}

	keys := make([][]byte, len(values))
	for i, v := range values {
		keys[i] = bytekey.FromUint64(v)
	}

	sorted := append([][]byte(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool { return bytes.Compare(sorted[i], sorted[j]) < 0 })

	require.Equal(t, keys, sorted, "unsigned keys must stay ordered even past 2^63, unlike the old offset encoding")
}
