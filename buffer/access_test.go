package buffer

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/narahiero/CTLib-sub000/errs"
	"github.com/stretchr/testify/require"
)

func TestPutGet_BigEndianDefault(t *testing.T) {
	b := mustNew(t, 27)

	require.NoError(t, b.PutByte(0x01))
	require.NoError(t, b.PutUint16(0x0203))
	require.NoError(t, b.PutUint32(0x04050607))
	require.NoError(t, b.PutUint64(0x08090A0B0C0D0E0F))
	require.NoError(t, b.PutFloat32(1.5))
	require.NoError(t, b.PutFloat64(-2.25))
	require.Equal(t, 27, b.Position())

	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F}, b.Bytes()[:15])
	require.Equal(t, []byte{0x3F, 0xC0, 0x00, 0x00}, b.Bytes()[15:19])

	b.Flip()
	v8, err := b.GetByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x01), v8)

	v16, err := b.GetUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0203), v16)

	v32, err := b.GetUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x04050607), v32)

	v64, err := b.GetUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x08090A0B0C0D0E0F), v64)

	f32, err := b.GetFloat32()
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f32)

	f64, err := b.GetFloat64()
	require.NoError(t, err)
	require.Equal(t, -2.25, f64)

	require.False(t, b.HasRemaining())
}

func TestPutGet_LittleEndian(t *testing.T) {
	b := mustNew(t, 14)
	b.SetBigEndian(false)

	require.NoError(t, b.PutUint16(0x0102))
	require.NoError(t, b.PutUint32(0x03040506))
	require.NoError(t, b.PutUint64(0x0708090A0B0C0D0E))
	require.Equal(t, []byte{0x02, 0x01, 0x06, 0x05, 0x04, 0x03,
		0x0E, 0x0D, 0x0C, 0x0B, 0x0A, 0x09, 0x08, 0x07}, b.Bytes())

	// Switching order does not rewrite stored data.
	b.SetBigEndian(true)
	v, err := b.GetUint16At(0)
	require.NoError(t, err)
	require.Equal(t, uint16(0x0201), v)
}

func TestAbsoluteAccess(t *testing.T) {
	b := mustNew(t, 16)

	require.NoError(t, b.PutUint32At(4, 0xCAFEBABE))
	require.NoError(t, b.PutUint16At(14, 0xBEEF))
	require.NoError(t, b.PutByteAt(0, 0x7F))
	require.NoError(t, b.PutUint64At(8, 0))
	require.NoError(t, b.PutFloat32At(0, float32(math.Pi)))
	require.NoError(t, b.PutFloat64At(8, math.E))
	require.Equal(t, 0, b.Position(), "absolute access must not move the cursor")

	v32, err := b.GetUint32At(4)
	require.NoError(t, err)
	require.Equal(t, uint32(0xCAFEBABE), v32)

	f32, err := b.GetFloat32At(0)
	require.NoError(t, err)
	require.Equal(t, float32(math.Pi), f32)

	f64, err := b.GetFloat64At(8)
	require.NoError(t, err)
	require.Equal(t, math.E, f64)

	v64, err := b.GetUint64At(8)
	require.NoError(t, err)
	require.Equal(t, math.Float64bits(math.E), v64)

	v8, err := b.GetByteAt(15)
	require.NoError(t, err)
	require.Equal(t, byte(math.Float64bits(math.E)), v8)
}

func TestFloatSpecialValues(t *testing.T) {
	b := mustNew(t, 12)

	require.NoError(t, b.PutFloat32(float32(math.Inf(-1))))
	require.NoError(t, b.PutFloat64(math.NaN()))
	b.Flip()

	f32, err := b.GetFloat32()
	require.NoError(t, err)
	require.True(t, math.IsInf(float64(f32), -1))

	f64, err := b.GetFloat64()
	require.NoError(t, err)
	require.True(t, math.IsNaN(f64))
}

func TestOverflowBoundary(t *testing.T) {
	t.Run("relative bytes", func(t *testing.T) {
		b := mustNew(t, 10)
		require.NoError(t, b.SetPosition(3))

		require.NoError(t, b.Duplicate().PutBytes(make([]byte, b.Remaining())))
		require.ErrorIs(t, b.PutBytes(make([]byte, b.Remaining()+1)), errs.ErrBufferOverflow)
		require.Equal(t, 3, b.Position(), "failed put must not move the cursor")
	})

	t.Run("relative widths against limit", func(t *testing.T) {
		b := mustNew(t, 16)
		require.NoError(t, b.SetLimit(3))

		require.NoError(t, b.PutUint16(1))
		require.ErrorIs(t, b.PutUint16(1), errs.ErrBufferOverflow)
		require.ErrorIs(t, b.PutUint32(1), errs.ErrBufferOverflow)
		require.NoError(t, b.PutByte(1))
		require.ErrorIs(t, b.PutByte(1), errs.ErrBufferOverflow)

		b.Rewind()
		_, err := b.GetUint32()
		require.ErrorIs(t, err, errs.ErrBufferOverflow)
		_, err = b.GetUint64()
		require.ErrorIs(t, err, errs.ErrBufferOverflow)
		_, err = b.GetFloat32()
		require.ErrorIs(t, err, errs.ErrBufferOverflow)
		_, err = b.GetFloat64()
		require.ErrorIs(t, err, errs.ErrBufferOverflow)
	})

	t.Run("absolute", func(t *testing.T) {
		b := mustNew(t, 16)
		require.NoError(t, b.SetLimit(8))

		require.NoError(t, b.PutUint32At(4, 1))
		require.ErrorIs(t, b.PutUint32At(5, 1), errs.ErrBufferOverflow)
		require.ErrorIs(t, b.PutUint64At(1, 1), errs.ErrBufferOverflow)
		require.ErrorIs(t, b.PutByteAt(8, 1), errs.ErrBufferOverflow)
		require.ErrorIs(t, b.PutByteAt(-1, 1), errs.ErrBufferOverflow)
		require.ErrorIs(t, b.PutBytesAt(6, []byte{1, 2, 3}), errs.ErrBufferOverflow)
		require.NoError(t, b.PutBytesAt(5, []byte{1, 2, 3}))

		_, err := b.GetUint16At(7)
		require.ErrorIs(t, err, errs.ErrBufferOverflow)
		require.ErrorIs(t, b.GetBytesAt(7, make([]byte, 2)), errs.ErrBufferOverflow)
	})
}

func TestBulkBytes(t *testing.T) {
	b := mustNew(t, 8)
	require.NoError(t, b.PutBytes([]byte("Yaz0")))
	require.NoError(t, b.PutBytesAt(4, []byte("tail")))
	require.Equal(t, 4, b.Position())

	dst := make([]byte, 4)
	require.NoError(t, b.GetBytes(dst))
	require.Equal(t, []byte("tail"), dst)

	require.NoError(t, b.GetBytesAt(0, dst))
	require.Equal(t, []byte("Yaz0"), dst)

	require.ErrorIs(t, b.GetBytes(dst), errs.ErrBufferOverflow)
}

func TestPutBuffer(t *testing.T) {
	src, err := Wrap([]byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	require.NoError(t, src.SetPosition(2))
	require.NoError(t, src.SetLimit(5))

	dst := mustNew(t, 8)
	require.NoError(t, dst.PutByte(0xAA))
	require.NoError(t, dst.PutBuffer(src))

	require.Equal(t, 4, dst.Position())
	require.Equal(t, []byte{0xAA, 3, 4, 5}, dst.Bytes()[:4])
	require.Equal(t, 5, src.Position(), "source is consumed")
	require.Equal(t, 5, src.Limit(), "source limit is untouched")

	// Nothing left to copy is a no-op.
	require.NoError(t, dst.PutBuffer(src))
	require.Equal(t, 4, dst.Position())
}

func TestPutBuffer_Overflow(t *testing.T) {
	src, err := Wrap([]byte{1, 2, 3, 4})
	require.NoError(t, err)

	dst := mustNew(t, 3)
	require.ErrorIs(t, dst.PutBuffer(src), errs.ErrBufferOverflow)
	require.Equal(t, 0, src.Position())
	require.Equal(t, 0, dst.Position())

	require.ErrorIs(t, dst.PutBufferAt(0, src), errs.ErrBufferOverflow)
	require.Equal(t, 0, src.Position())
}

func TestPutBufferAt(t *testing.T) {
	src, err := Wrap([]byte{7, 8})
	require.NoError(t, err)

	dst := mustNew(t, 4)
	require.NoError(t, dst.PutBufferAt(2, src))
	require.Equal(t, []byte{0, 0, 7, 8}, dst.Bytes())
	require.Equal(t, 0, dst.Position())
	require.Equal(t, 2, src.Position())
}

func TestEqualsVersusContentEquals(t *testing.T) {
	a := mustNew(t, 8)
	require.NoError(t, a.PutBytes([]byte("headDATA")))
	require.NoError(t, a.SetPosition(4))

	b := mustNew(t, 6)
	require.NoError(t, b.PutBytes([]byte("xxDATA")))
	require.NoError(t, b.SetPosition(2))

	require.True(t, a.Equals(b))
	require.True(t, b.Equals(a))
	require.Equal(t, 0, a.CompareTo(b))

	require.False(t, a.ContentEquals(b))
	require.NotEqual(t, 0, a.ContentCompare(b))

	require.False(t, a.Equals(nil))
	require.False(t, a.ContentEquals(nil))
}

func TestContentEqualsIgnoresCursors(t *testing.T) {
	a := mustNew(t, 4)
	b := mustNew(t, 4)
	require.NoError(t, a.PutUint32(0x01020304))
	require.NoError(t, b.PutUint32At(0, 0x01020304))

	require.True(t, a.ContentEquals(b))
	require.Equal(t, 0, a.ContentCompare(b))
	require.False(t, a.Equals(b), "a has nothing remaining, b has four bytes")
}

func TestCompareTo(t *testing.T) {
	wrap := func(s string) *ByteBuffer {
		b, err := Wrap([]byte(s))
		require.NoError(t, err)
		return b
	}

	require.Equal(t, -1, wrap("abc").CompareTo(wrap("abd")))
	require.Equal(t, 1, wrap("b").CompareTo(wrap("abc")))
	require.Equal(t, -1, wrap("ab").CompareTo(wrap("abc")), "prefix sorts first")
	require.Equal(t, 1, wrap("abc").CompareTo(wrap("ab")))
	require.Equal(t, 0, wrap("same").CompareTo(wrap("same")))

	require.Equal(t, -1, wrap("ab").ContentCompare(wrap("abc")))
}

func TestReaderWriter(t *testing.T) {
	b := mustNew(t, 5)

	n, err := b.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = b.Write([]byte("!"))
	require.ErrorIs(t, err, errs.ErrBufferOverflow)
	require.Equal(t, 0, n)
	require.ErrorIs(t, b.WriteByte('!'), errs.ErrBufferOverflow)

	b.Flip()
	c, err := b.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('h'), c)

	rest, err := io.ReadAll(b)
	require.NoError(t, err)
	require.Equal(t, []byte("ello"), rest)

	_, err = b.ReadByte()
	require.ErrorIs(t, err, io.EOF)

	b.Rewind()
	var out bytes.Buffer
	written, err := b.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(5), written)
	require.Equal(t, "hello", out.String())
	require.False(t, b.HasRemaining())
}
