// Package buffer provides ByteBuffer, the cursor based binary I/O primitive that
// every reader and writer in this module is built on.
//
// # Model
//
// A ByteBuffer is a fixed-capacity window of bytes with three cursors:
//
//	0 <= position <= limit <= capacity
//
// Relative operations (PutUint32, GetUint16, PutBytes, ...) start at position
// and advance it by the width they touch. Absolute operations (the ...At
// variants) take an explicit index and leave position untouched. Both kinds
// fail with errs.ErrBufferOverflow when the affected range would cross limit;
// nothing is ever silently truncated or wrapped.
//
// Multi-byte values are encoded with the buffer's byte order, big-endian by
// default because every format handled by this module is big-endian:
//
//	buf, _ := buffer.New(8)
//	_ = buf.PutUint32(0x59617A30) // "Yaz0"
//	_ = buf.PutUint32(42)
//	buf.Flip()
//	magic, _ := buf.GetUint32()
//
// # Views
//
// Duplicate and Slice return views that share storage with their source but
// carry their own position, limit and byte order. Writes through one view are
// visible through the other; cursor changes are not. Resize and Truncate move
// a buffer onto new storage, detaching it from any views.
//
// # Comparison
//
// Equals and CompareTo look only at the remaining region [position, limit).
// ContentEquals and ContentCompare look at the whole capacity window and
// ignore the cursors. Header checks use the former, whole-buffer round-trip
// checks use the latter.
//
// # Floating point
//
// Float32 and Float64 values are stored as their IEEE-754 bit patterns via
// math.Float32bits and math.Float64bits. Go defines float32
// and float64 as IEEE-754 binary32 and binary64, so no host check is made.
//
// # Thread Safety
//
// A ByteBuffer is not safe for concurrent use. Views sharing storage need
// external synchronisation if they are used from different goroutines.
package buffer
