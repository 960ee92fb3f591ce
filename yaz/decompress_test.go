package yaz

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/narahiero/CTLib-sub000/buffer"
	"github.com/narahiero/CTLib-sub000/errs"
	"github.com/narahiero/CTLib-sub000/format"
	"github.com/stretchr/testify/require"
)

func header(magic string, size uint32) []byte {
	h := []byte(magic)
	h = append(h, byte(size>>24), byte(size>>16), byte(size>>8), byte(size))

	return append(h, make([]byte, 8)...)
}

func stream(magic string, size uint32, payload ...byte) []byte {
	return append(header(magic, size), payload...)
}

func wrap(t *testing.T, data []byte) *buffer.ByteBuffer {
	t.Helper()

	b, err := buffer.Wrap(data)
	require.NoError(t, err)

	return b
}

// longReferenceStream decodes to "abc" repeated ten times: three literals and
// one back-reference using the length extension byte.
func longReferenceStream(magic string) []byte {
	return stream(magic, 0x1E,
		0xE0, // literal, literal, literal, reference
		'a', 'b', 'c',
		0x00, 0x02, 0x09, // distance 3, length 9+18
		0x00, // padding
	)
}

func TestDecompress_LongReference(t *testing.T) {
	in := wrap(t, longReferenceStream("Yaz0"))

	out, err := Decompress(in)
	require.NoError(t, err)

	want := bytes.Repeat([]byte("abc"), 10)
	if diff := cmp.Diff(want, out.Bytes()); diff != "" {
		t.Fatalf("decoded bytes mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 0x1E, out.Capacity())
	require.Equal(t, 0, out.Position())
	require.Equal(t, 23, in.Position(), "padding is not consumed")
}

func TestDecompress_OverlappingReference(t *testing.T) {
	in := wrap(t, stream("Yaz0", 18,
		0x80, // literal, reference
		'x',
		0xF0, 0x00, // length 15+2, distance 1
	))

	out, err := Decompress(in)
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte("x"), 18), out.Bytes())
}

func TestDecompress_OverlappingPattern(t *testing.T) {
	// distance 2, length 10 over "ab" replays the pair five times.
	in := wrap(t, stream("Yaz1", 12,
		0xC0,
		'a', 'b',
		0x80, 0x01,
	))

	out, err := Decompress(in)
	require.NoError(t, err)
	require.Equal(t, []byte("abababababab"), out.Bytes())
}

func TestDecompress_AllLiteralsAcrossGroups(t *testing.T) {
	payload := []byte{0xFF}
	payload = append(payload, []byte("01234567")...)
	payload = append(payload, 0xC0)
	payload = append(payload, []byte("89")...)

	out, err := Decompress(wrap(t, stream("Yaz0", 10, payload...)))
	require.NoError(t, err)
	require.Equal(t, []byte("0123456789"), out.Bytes())
}

func TestDecompressAs(t *testing.T) {
	t.Run("matching variant", func(t *testing.T) {
		out, err := DecompressAs(wrap(t, longReferenceStream("Yaz1")), format.VariantYaz1)
		require.NoError(t, err)
		require.Equal(t, 30, out.Capacity())
	})

	t.Run("mismatching variant", func(t *testing.T) {
		in := wrap(t, longReferenceStream("Yaz1"))

		_, err := DecompressAs(in, format.VariantYaz0)
		require.ErrorIs(t, err, errs.ErrInvalidFormat)
		require.Contains(t, err.Error(), "Yaz1")
		require.Equal(t, 0, in.Position(), "failed decode must not consume input")

		// The same stream is fine when any variant is accepted.
		_, err = Decompress(in)
		require.NoError(t, err)
	})

	t.Run("invalid requested variant", func(t *testing.T) {
		_, err := DecompressAs(wrap(t, longReferenceStream("Yaz0")), format.Variant(7))
		require.ErrorIs(t, err, errs.ErrInvalidFormat)
	})
}

func TestDecompress_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
		message string
	}{
		{
			name:    "unknown magic",
			data:    stream("Yaz9", 4, 0xFF, 1, 2, 3, 4),
			wantErr: errs.ErrInvalidFormat,
			message: "59 61 7A 39",
		},
		{
			name:    "zero declared size",
			data:    stream("Yaz0", 0, 0xFF, 1),
			wantErr: errs.ErrCorruptedData,
			message: "zero",
		},
		{
			name:    "magic only",
			data:    []byte("Yaz0"),
			wantErr: errs.ErrCorruptedData,
			message: "truncated header",
		},
		{
			name:    "short magic",
			data:    []byte("Ya"),
			wantErr: errs.ErrCorruptedData,
			message: "truncated header",
		},
		{
			name:    "no payload",
			data:    header("Yaz0", 4),
			wantErr: errs.ErrCorruptedData,
			message: "input exhausted",
		},
		{
			name:    "missing literal",
			data:    stream("Yaz0", 4, 0xFF, 'a', 'b'),
			wantErr: errs.ErrCorruptedData,
			message: "input exhausted with 2 of 4",
		},
		{
			name:    "half a reference",
			data:    stream("Yaz0", 4, 0x80, 'a', 0x10),
			wantErr: errs.ErrCorruptedData,
			message: "input exhausted",
		},
		{
			name:    "missing length extension",
			data:    stream("Yaz0", 40, 0x80, 'a', 0x00, 0x00),
			wantErr: errs.ErrCorruptedData,
			message: "input exhausted",
		},
		{
			name:    "reference overflows output",
			data:    stream("Yaz0", 4, 0x80, 'x', 0xF0, 0x00),
			wantErr: errs.ErrCorruptedData,
			message: "output overflow",
		},
		{
			name:    "reference before start",
			data:    stream("Yaz0", 4, 0x80, 'x', 0x10, 0x01),
			wantErr: errs.ErrCorruptedData,
			message: "distance 2 exceeds 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := wrap(t, tt.data)

			out, err := Decompress(in)
			require.ErrorIs(t, err, tt.wantErr)
			require.Contains(t, err.Error(), tt.message)
			require.Nil(t, out, "no partial output on failure")
			require.Equal(t, 0, in.Position())
		})
	}
}

func TestDecompress_RespectsInputCursor(t *testing.T) {
	data := append([]byte("junk"), longReferenceStream("Yaz0")...)
	in := wrap(t, data)
	require.NoError(t, in.SetPosition(4))
	in.SetBigEndian(false)

	out, err := Decompress(in)
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte("abc"), 10), out.Bytes())
	require.Equal(t, 27, in.Position())
	require.False(t, in.IsBigEndian(), "input byte order is left alone")
}

func TestReadHeader(t *testing.T) {
	in := wrap(t, stream("Yaz1", 0x01020304, 0xFF))
	in.SetBigEndian(false)

	h, err := ReadHeader(in)
	require.NoError(t, err)
	require.Equal(t, format.VariantYaz1, h.Variant)
	require.Equal(t, uint32(0x01020304), h.UncompressedSize)
	require.Equal(t, [2]uint32{}, h.Reserved)
	require.Equal(t, format.HeaderSize, in.Position())

	_, err = ReadHeader(wrap(t, stream("ABCD", 1)))
	require.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestPeek(t *testing.T) {
	in := wrap(t, longReferenceStream("Yaz1"))

	v, ok := Peek(in)
	require.True(t, ok)
	require.Equal(t, format.VariantYaz1, v)
	require.Equal(t, 0, in.Position())

	_, ok = Peek(wrap(t, []byte("PNG\x00")))
	require.False(t, ok)
}
