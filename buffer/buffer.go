package buffer

import (
	"fmt"

	"github.com/narahiero/CTLib-sub000/endian"
	"github.com/narahiero/CTLib-sub000/errs"
)

// ByteBuffer is a position/limit bounded cursor over a contiguous byte region.
//
// The zero value is an empty, unusable buffer: every access fails with
// errs.ErrBufferOverflow. Use New or Wrap to create a usable buffer.
type ByteBuffer struct {
	// data is the capacity window; len(data) is the capacity.
	data     []byte
	offset   int
	position int
	limit    int
	engine   endian.EndianEngine
}

// New allocates a zeroed ByteBuffer of the given capacity.
//
// The buffer starts with position 0, limit equal to capacity and big-endian
// byte order.
//
// Parameters:
//   - capacity: Number of bytes to allocate, must be greater than zero
//
// Returns:
//   - *ByteBuffer: The new buffer
//   - error: errs.ErrBufferAllocation if capacity is zero or negative
func New(capacity int) (*ByteBuffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: requested %d bytes", errs.ErrBufferAllocation, capacity)
	}

	return &ByteBuffer{
		data:   make([]byte, capacity),
		limit:  capacity,
		engine: endian.GetBigEndianEngine(),
	}, nil
}

// Wrap creates a ByteBuffer backed by data without copying it.
//
// Writes through the buffer are visible in data and vice versa.
//
// Parameters:
//   - data: Backing storage, must not be empty
//
// Returns:
//   - *ByteBuffer: Buffer with position 0 and limit len(data)
//   - error: errs.ErrBufferAllocation if data is empty
func Wrap(data []byte) (*ByteBuffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: cannot wrap empty slice", errs.ErrBufferAllocation)
	}

	return &ByteBuffer{
		data:   data[:len(data):len(data)],
		limit:  len(data),
		engine: endian.GetBigEndianEngine(),
	}, nil
}

// Clone returns a deep copy of b, including its position, limit and byte order.
// The copy owns its storage and is fully independent of b.
func (b *ByteBuffer) Clone() *ByteBuffer {
	c := *b
	c.data = make([]byte, len(b.data))
	copy(c.data, b.data)
	c.offset = 0

	return &c
}

// Move transfers b's storage and state to a new ByteBuffer without copying.
//
// Afterwards b has zero capacity and every access through it fails.
func (b *ByteBuffer) Move() *ByteBuffer {
	moved := *b
	*b = ByteBuffer{engine: endian.GetBigEndianEngine()}

	return &moved
}

// Resize moves the buffer onto new storage of newCapacity bytes.
//
// The first min(old, new) bytes are preserved and any growth is zero filled.
// Limit and position are clamped down if they exceed the new capacity.
// Views created before the call keep the old storage.
//
// Parameters:
//   - newCapacity: New capacity in bytes, must be greater than zero
//
// Returns:
//   - error: errs.ErrBufferAllocation if newCapacity is zero or negative
func (b *ByteBuffer) Resize(newCapacity int) error {
	if newCapacity <= 0 {
		return fmt.Errorf("%w: resize to %d bytes", errs.ErrBufferAllocation, newCapacity)
	}

	data := make([]byte, newCapacity)
	copy(data, b.data)
	b.data = data
	b.offset = 0

	if b.limit > newCapacity {
		b.limit = newCapacity
	}
	if b.position > b.limit {
		b.position = b.limit
	}

	return nil
}

// Truncate shrinks the capacity to the current position and sets the limit to
// the new capacity, keeping only the bytes written so far.
//
// Returns:
//   - error: errs.ErrBufferAllocation if position is 0
func (b *ByteBuffer) Truncate() error {
	if b.position == 0 {
		return fmt.Errorf("%w: truncate at position 0", errs.ErrBufferAllocation)
	}

	if err := b.Resize(b.position); err != nil {
		return err
	}
	b.limit = len(b.data)

	return nil
}

// Duplicate returns a view sharing b's storage with its own copy of the
// position, limit and byte order.
func (b *ByteBuffer) Duplicate() *ByteBuffer {
	d := *b
	return &d
}

// Slice returns a view over b's remaining region [position, limit).
//
// The view's capacity and limit equal b.Remaining() and its position is 0.
// Slicing a buffer with nothing remaining yields a zero-capacity view on
// which every access fails.
func (b *ByteBuffer) Slice() *ByteBuffer {
	n := b.limit - b.position

	return &ByteBuffer{
		data:   b.data[b.position:b.limit:b.limit],
		offset: b.offset + b.position,
		limit:  n,
		engine: b.engine,
	}
}

// Capacity returns the size of the buffer's window in bytes.
func (b *ByteBuffer) Capacity() int {
	return len(b.data)
}

// Offset returns the displacement of this buffer's window into the storage it
// shares with its source. It is 0 for buffers that own their storage.
func (b *ByteBuffer) Offset() int {
	return b.offset
}

// Position returns the index of the next relative read or write.
func (b *ByteBuffer) Position() int {
	return b.position
}

// SetPosition moves the cursor to n.
//
// Returns:
//   - error: errs.ErrInvalidPosition if n is negative or greater than the limit
func (b *ByteBuffer) SetPosition(n int) error {
	if n < 0 || n > b.limit {
		return fmt.Errorf("%w: position %d outside [0, %d]", errs.ErrInvalidPosition, n, b.limit)
	}
	b.position = n

	return nil
}

// Skip advances the position by n bytes.
func (b *ByteBuffer) Skip(n int) error {
	if n < 0 || n > b.limit-b.position {
		return fmt.Errorf("%w: skip %d bytes with %d remaining", errs.ErrBufferOverflow, n, b.Remaining())
	}
	b.position += n

	return nil
}

// Limit returns the end of the valid region.
func (b *ByteBuffer) Limit() int {
	return b.limit
}

// SetLimit sets the end of the valid region to n, clamping the position down
// to n if it lies beyond it.
//
// Returns:
//   - error: errs.ErrInvalidLimit if n is negative or greater than the capacity
func (b *ByteBuffer) SetLimit(n int) error {
	if n < 0 || n > len(b.data) {
		return fmt.Errorf("%w: limit %d outside [0, %d]", errs.ErrInvalidLimit, n, len(b.data))
	}
	b.limit = n
	if b.position > n {
		b.position = n
	}

	return nil
}

// Remaining returns limit - position.
func (b *ByteBuffer) Remaining() int {
	return b.limit - b.position
}

// HasRemaining reports whether any bytes remain between position and limit.
func (b *ByteBuffer) HasRemaining() bool {
	return b.position < b.limit
}

// Clear prepares the buffer for writing from scratch: position 0, limit capacity.
func (b *ByteBuffer) Clear() {
	b.position = 0
	b.limit = len(b.data)
}

// Flip prepares the written region for reading: limit = position, position = 0.
func (b *ByteBuffer) Flip() {
	b.limit = b.position
	b.position = 0
}

// Rewind resets the position to 0 and leaves the limit alone.
func (b *ByteBuffer) Rewind() {
	b.position = 0
}

// Compact moves the remaining bytes to the start of the buffer, sets the
// position just past them and the limit to the capacity.
func (b *ByteBuffer) Compact() {
	n := copy(b.data, b.data[b.position:b.limit])
	b.position = n
	b.limit = len(b.data)
}

// Order returns the engine used for multi-byte values.
func (b *ByteBuffer) Order() endian.EndianEngine {
	if b.engine == nil {
		return endian.GetBigEndianEngine()
	}

	return b.engine
}

// SetOrder sets the engine used for subsequent multi-byte operations.
// A nil engine selects big-endian.
func (b *ByteBuffer) SetOrder(engine endian.EndianEngine) {
	if engine == nil {
		engine = endian.GetBigEndianEngine()
	}
	b.engine = engine
}

// IsBigEndian reports whether multi-byte values are encoded big-endian.
func (b *ByteBuffer) IsBigEndian() bool {
	return endian.IsBigEndian(b.engine)
}

// SetBigEndian selects big-endian (true) or little-endian (false) byte order.
// Data already in the buffer is not rewritten.
func (b *ByteBuffer) SetBigEndian(bigEndian bool) {
	b.engine = endian.GetEngine(bigEndian)
}

// Bytes returns the whole capacity window. The slice shares storage with b.
func (b *ByteBuffer) Bytes() []byte {
	return b.data
}

// RemainingBytes returns the region [position, limit). The slice shares
// storage with b and is not consumed.
func (b *ByteBuffer) RemainingBytes() []byte {
	return b.data[b.position:b.limit]
}

func (b *ByteBuffer) String() string {
	return fmt.Sprintf("ByteBuffer[pos=%d lim=%d cap=%d order=%s]",
		b.position, b.limit, len(b.data), endian.Name(b.engine))
}
