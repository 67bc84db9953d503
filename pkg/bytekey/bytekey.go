// Package bytekey builds the byte-string keys a Trie expects out of Go's
// ordinary value types, so callers are not left hand-rolling big-endian
// encodings themselves.
//
// Every constructor produces a []byte whose lexicographic order matches
// the numeric or textual order of the source value, which is exactly
// what pkg/trie's ordered traversal (Strt/Nxt/Prv) relies on.
package bytekey

import (
	"encoding/binary"

	"golang.org/x/text/unicode/norm"
)

// signedOffset shifts a signed 64-bit range so that its big-endian byte
// encoding sorts the same way the numeric values do: the most negative
// int64 maps to all-zero bytes, zero maps to the midpoint, and the most
// positive int64 maps to all-ones.
const signedOffset = uint64(1) << 63

// FromBytes copies b into a new key. A nil b produces an empty, non-nil
// key, so two callers passing nil and []byte{} always build the same key.
func FromBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// FromString returns the UTF-8 encoding of s after normalizing it to
// Unicode NFC, so that byte-distinct but canonically equivalent strings
// (e.g. "é" vs "é") collapse onto the same trie key. It does
// not alter case or trim whitespace.
func FromString(s string) []byte {
	return FromBytes([]byte(norm.NFC.String(s)))
}

// FromInt64 encodes i as an order-preserving 8-byte big-endian key.
func FromInt64(i int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(i)+signedOffset)
	return b[:]
}

// FromInt32 encodes i as an order-preserving 8-byte big-endian key,
// comparable against keys produced by FromInt64 for the same value.
func FromInt32(i int32) []byte { return FromInt64(int64(i)) }

// FromInt16 encodes i as an order-preserving 8-byte big-endian key,
// comparable against keys produced by FromInt64 for the same value.
func FromInt16(i int16) []byte { return FromInt64(int64(i)) }

// FromInt8 encodes i as an order-preserving 8-byte big-endian key,
// comparable against keys produced by FromInt64 for the same value.
func FromInt8(i int8) []byte { return FromInt64(int64(i)) }

// FromInt encodes i as an order-preserving 8-byte big-endian key.
func FromInt(i int) []byte { return FromInt64(int64(i)) }

// FromUint64 encodes u as an order-preserving 8-byte big-endian key. Plain
// big-endian encoding already preserves unsigned order across the full
// uint64 range, so unlike the signed encoders this applies no offset: a
// signedOffset shift would wrap for u >= 2^63 and reverse the order of
// the top half of the range. One consequence is that FromUint64 keys are
// not interleaved with FromInt64 keys the way the signed family is with
// itself; compare values within one family or the other, not across.
func FromUint64(u uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u)
	return b[:]
}

// FromUint32 encodes u as an order-preserving 8-byte big-endian key,
// comparable against keys produced by FromUint64 for the same value.
func FromUint32(u uint32) []byte { return FromUint64(uint64(u)) }

// FromUint16 encodes u as an order-preserving 8-byte big-endian key,
// comparable against keys produced by FromUint64 for the same value.
func FromUint16(u uint16) []byte { return FromUint64(uint64(u)) }

// FromUint8 encodes u as an order-preserving 8-byte big-endian key,
// comparable against keys produced by FromUint64 for the same value.
func FromUint8(u uint8) []byte { return FromUint64(uint64(u)) }

// FromUint encodes u as an order-preserving 8-byte big-endian key.
func FromUint(u uint) []byte { return FromUint64(uint64(u)) }
