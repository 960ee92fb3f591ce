package buffer

import (
	"fmt"
	"math"

	"github.com/narahiero/CTLib-sub000/errs"
)

// checkIndex validates that [index, index+width) lies within the limit.
func (b *ByteBuffer) checkIndex(index, width int) error {
	if index < 0 || width > b.limit || index > b.limit-width {
		return fmt.Errorf("%w: %d bytes at index %d exceed limit %d",
			errs.ErrBufferOverflow, width, index, b.limit)
	}

	return nil
}

// next reserves width bytes at the position and advances past them.
func (b *ByteBuffer) next(width int) (int, error) {
	index := b.position
	if width > b.limit-index {
		return 0, fmt.Errorf("%w: %d bytes requested, %d remaining",
			errs.ErrBufferOverflow, width, b.limit-index)
	}
	b.position += width

	return index, nil
}

// PutByte writes v at the position and advances it by one.
func (b *ByteBuffer) PutByte(v byte) error {
	i, err := b.next(1)
	if err != nil {
		return err
	}
	b.data[i] = v

	return nil
}

// PutByteAt writes v at index.
func (b *ByteBuffer) PutByteAt(index int, v byte) error {
	if err := b.checkIndex(index, 1); err != nil {
		return err
	}
	b.data[index] = v

	return nil
}

// GetByte reads the byte at the position and advances it by one.
func (b *ByteBuffer) GetByte() (byte, error) {
	i, err := b.next(1)
	if err != nil {
		return 0, err
	}

	return b.data[i], nil
}

// GetByteAt reads the byte at index.
func (b *ByteBuffer) GetByteAt(index int) (byte, error) {
	if err := b.checkIndex(index, 1); err != nil {
		return 0, err
	}

	return b.data[index], nil
}

func (b *ByteBuffer) PutUint16(v uint16) error {
	i, err := b.next(2)
	if err != nil {
		return err
	}
	b.Order().PutUint16(b.data[i:], v)

	return nil
}

func (b *ByteBuffer) PutUint16At(index int, v uint16) error {
	if err := b.checkIndex(index, 2); err != nil {
		return err
	}
	b.Order().PutUint16(b.data[index:], v)

	return nil
}

func (b *ByteBuffer) GetUint16() (uint16, error) {
	i, err := b.next(2)
	if err != nil {
		return 0, err
	}

	return b.Order().Uint16(b.data[i:]), nil
}

func (b *ByteBuffer) GetUint16At(index int) (uint16, error) {
	if err := b.checkIndex(index, 2); err != nil {
		return 0, err
	}

	return b.Order().Uint16(b.data[index:]), nil
}

func (b *ByteBuffer) PutUint32(v uint32) error {
	i, err := b.next(4)
	if err != nil {
		return err
	}
	b.Order().PutUint32(b.data[i:], v)

	return nil
}

func (b *ByteBuffer) PutUint32At(index int, v uint32) error {
	if err := b.checkIndex(index, 4); err != nil {
		return err
	}
	b.Order().PutUint32(b.data[index:], v)

	return nil
}

func (b *ByteBuffer) GetUint32() (uint32, error) {
	i, err := b.next(4)
	if err != nil {
		return 0, err
	}

	return b.Order().Uint32(b.data[i:]), nil
}

func (b *ByteBuffer) GetUint32At(index int) (uint32, error) {
	if err := b.checkIndex(index, 4); err != nil {
		return 0, err
	}

	return b.Order().Uint32(b.data[index:]), nil
}

func (b *ByteBuffer) PutUint64(v uint64) error {
	i, err := b.next(8)
	if err != nil {
		return err
	}
	b.Order().PutUint64(b.data[i:], v)

	return nil
}

func (b *ByteBuffer) PutUint64At(index int, v uint64) error {
	if err := b.checkIndex(index, 8); err != nil {
		return err
	}
	b.Order().PutUint64(b.data[index:], v)

	return nil
}

func (b *ByteBuffer) GetUint64() (uint64, error) {
	i, err := b.next(8)
	if err != nil {
		return 0, err
	}

	return b.Order().Uint64(b.data[i:]), nil
}

func (b *ByteBuffer) GetUint64At(index int) (uint64, error) {
	if err := b.checkIndex(index, 8); err != nil {
		return 0, err
	}

	return b.Order().Uint64(b.data[index:]), nil
}

// PutFloat32 stores the IEEE-754 bit pattern of v as a uint32.
func (b *ByteBuffer) PutFloat32(v float32) error {
	return b.PutUint32(math.Float32bits(v))
}

func (b *ByteBuffer) PutFloat32At(index int, v float32) error {
	return b.PutUint32At(index, math.Float32bits(v))
}

func (b *ByteBuffer) GetFloat32() (float32, error) {
	bits, err := b.GetUint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bits), nil
}

func (b *ByteBuffer) GetFloat32At(index int) (float32, error) {
	bits, err := b.GetUint32At(index)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bits), nil
}

// PutFloat64 stores the IEEE-754 bit pattern of v as a uint64.
func (b *ByteBuffer) PutFloat64(v float64) error {
	return b.PutUint64(math.Float64bits(v))
}

func (b *ByteBuffer) PutFloat64At(index int, v float64) error {
	return b.PutUint64At(index, math.Float64bits(v))
}

func (b *ByteBuffer) GetFloat64() (float64, error) {
	bits, err := b.GetUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

func (b *ByteBuffer) GetFloat64At(index int) (float64, error) {
	bits, err := b.GetUint64At(index)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

// PutBytes copies src to the position and advances it by len(src).
// Nothing is written if src does not fit.
func (b *ByteBuffer) PutBytes(src []byte) error {
	i, err := b.next(len(src))
	if err != nil {
		return err
	}
	copy(b.data[i:], src)

	return nil
}

// PutBytesAt copies src to index.
func (b *ByteBuffer) PutBytesAt(index int, src []byte) error {
	if err := b.checkIndex(index, len(src)); err != nil {
		return err
	}
	copy(b.data[index:], src)

	return nil
}

// GetBytes fills dst from the position and advances it by len(dst).
func (b *ByteBuffer) GetBytes(dst []byte) error {
	i, err := b.next(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b.data[i:])

	return nil
}

// GetBytesAt fills dst from index.
func (b *ByteBuffer) GetBytesAt(index int, dst []byte) error {
	if err := b.checkIndex(index, len(dst)); err != nil {
		return err
	}
	copy(dst, b.data[index:])

	return nil
}

// PutBuffer copies the remaining region of src to the position of b.
//
// On success b's position advances by the number of bytes copied and src's
// position moves to its limit. src's limit is not changed. If the bytes do
// not fit, neither buffer is modified.
func (b *ByteBuffer) PutBuffer(src *ByteBuffer) error {
	n := src.Remaining()
	i, err := b.next(n)
	if err != nil {
		return err
	}
	copy(b.data[i:i+n], src.data[src.position:src.limit])
	src.position = src.limit

	return nil
}

// PutBufferAt copies the remaining region of src to index without moving b's
// position. src's position moves to its limit.
func (b *ByteBuffer) PutBufferAt(index int, src *ByteBuffer) error {
	n := src.Remaining()
	if err := b.checkIndex(index, n); err != nil {
		return err
	}
	copy(b.data[index:index+n], src.data[src.position:src.limit])
	src.position = src.limit

	return nil
}
