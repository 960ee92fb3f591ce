package yaz

import (
	"fmt"

	"github.com/narahiero/CTLib-sub000/buffer"
	"github.com/narahiero/CTLib-sub000/errs"
	"github.com/narahiero/CTLib-sub000/format"
)

// Decompress decodes the stream at in's position, accepting either variant.
//
// The returned buffer has exactly the declared uncompressed size and is
// positioned at 0. in is advanced past the last byte the decoder consumed;
// trailing padding is left unread.
//
// Parameters:
//   - in: Compressed stream, starting at its position
//
// Returns:
//   - *buffer.ByteBuffer: Decoded data
//   - error: errs.ErrInvalidFormat or errs.ErrCorruptedData; no partial output is returned
func Decompress(in *buffer.ByteBuffer) (*buffer.ByteBuffer, error) {
	return decompress(in, 0)
}

// DecompressAs decodes the stream at in's position and fails with
// errs.ErrInvalidFormat unless its magic is exactly that of variant.
func DecompressAs(in *buffer.ByteBuffer, variant format.Variant) (*buffer.ByteBuffer, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: unsupported variant %d", errs.ErrInvalidFormat, variant)
	}

	return decompress(in, variant)
}

// decompress decodes in; a zero want accepts any variant.
func decompress(in *buffer.ByteBuffer, want format.Variant) (*buffer.ByteBuffer, error) {
	src := in.Duplicate()
	src.SetBigEndian(true)

	h, err := readHeader(src)
	if err != nil {
		return nil, err
	}

	if want != 0 && h.Variant != want {
		return nil, fmt.Errorf("%w: expected %s stream, found %s", errs.ErrInvalidFormat, want, h.Variant)
	}

	out, err := buffer.New(int(h.UncompressedSize))
	if err != nil {
		return nil, err
	}

	if err := decode(src, out); err != nil {
		return nil, err
	}

	out.Rewind()

	return out, in.SetPosition(src.Position())
}

// decode fills out from the chunk groups in src.
func decode(src, out *buffer.ByteBuffer) error {
	var control byte
	chunks := 0

	for out.HasRemaining() {
		if chunks == 0 {
			c, err := src.GetByte()
			if err != nil {
				return inputExhausted(out)
			}
			control = c
			chunks = 8
		}

		if control&0x80 != 0 {
			c, err := src.GetByte()
			if err != nil {
				return inputExhausted(out)
			}
			if err := out.PutByte(c); err != nil {
				return err
			}
		} else if err := copyReference(src, out); err != nil {
			return err
		}

		control <<= 1
		chunks--
	}

	return nil
}

// copyReference reads one back-reference chunk from src and replays it into out.
func copyReference(src, out *buffer.ByteBuffer) error {
	ref, err := src.GetUint16()
	if err != nil {
		return inputExhausted(out)
	}

	distance := int(ref&0x0FFF) + 1
	length := int(ref >> 12)
	if length == 0 {
		ext, err := src.GetByte()
		if err != nil {
			return inputExhausted(out)
		}
		length = int(ext) + 0x12
	} else {
		length += 2
	}

	start := out.Position() - distance
	if start < 0 {
		return fmt.Errorf("%w: back-reference distance %d exceeds %d decoded bytes",
			errs.ErrCorruptedData, distance, out.Position())
	}
	if length > out.Remaining() {
		return fmt.Errorf("%w: output overflow, back-reference of %d bytes with %d bytes left",
			errs.ErrCorruptedData, length, out.Remaining())
	}

	// The source may overlap the bytes being written, so copy one at a time.
	for i := 0; i < length; i++ {
		c, err := out.GetByteAt(start + i)
		if err != nil {
			return err
		}
		if err := out.PutByte(c); err != nil {
			return err
		}
	}

	return nil
}

func inputExhausted(out *buffer.ByteBuffer) error {
	return fmt.Errorf("%w: input exhausted with %d of %d bytes decoded",
		errs.ErrCorruptedData, out.Position(), out.Capacity())
}
