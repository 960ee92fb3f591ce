package buffer

import "bytes"

// Equals reports whether the remaining regions of b and other hold the same
// bytes. Capacities, cursors outside the region and byte order are ignored.
//
// Use ContentEquals to compare whole buffers.
func (b *ByteBuffer) Equals(other *ByteBuffer) bool {
	if other == nil {
		return false
	}

	return bytes.Equal(b.RemainingBytes(), other.RemainingBytes())
}

// CompareTo compares the remaining regions of b and other lexicographically.
// A region that is a prefix of the other sorts first.
//
// Returns:
//   - int: -1, 0 or +1 as b's region is less than, equal to or greater than other's
func (b *ByteBuffer) CompareTo(other *ByteBuffer) int {
	return bytes.Compare(b.RemainingBytes(), other.RemainingBytes())
}

// ContentEquals reports whether the entire capacity windows of b and other
// hold the same bytes, regardless of position and limit. Buffers of
// different capacity are never content-equal.
func (b *ByteBuffer) ContentEquals(other *ByteBuffer) bool {
	if other == nil {
		return false
	}

	return bytes.Equal(b.data, other.data)
}

// ContentCompare compares the entire capacity windows of b and other
// lexicographically, regardless of position and limit.
func (b *ByteBuffer) ContentCompare(other *ByteBuffer) int {
	return bytes.Compare(b.data, other.data)
}
