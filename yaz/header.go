package yaz

import (
	"fmt"

	"github.com/narahiero/CTLib-sub000/buffer"
	"github.com/narahiero/CTLib-sub000/errs"
	"github.com/narahiero/CTLib-sub000/format"
)

// Header is the fixed 16-byte preamble of a compressed stream.
type Header struct {
	Variant          format.Variant
	UncompressedSize uint32
	// Reserved holds the two words after the size. They are ignored on read
	// and written as zero.
	Reserved [2]uint32
}

// Peek reports the variant whose magic starts the remaining region of in,
// without consuming anything.
func Peek(in *buffer.ByteBuffer) (format.Variant, bool) {
	return format.VariantFromMagic(in.RemainingBytes())
}

// ReadHeader parses the stream header at in's position and advances past it.
//
// Header fields are always big-endian; in's byte order is not consulted or
// modified. On error in's position is unchanged.
//
// Returns:
//   - Header: The parsed header
//   - error: errs.ErrInvalidFormat for an unknown magic, errs.ErrCorruptedData
//     for a truncated header or a zero uncompressed size
func ReadHeader(in *buffer.ByteBuffer) (Header, error) {
	src := in.Duplicate()
	src.SetBigEndian(true)

	h, err := readHeader(src)
	if err != nil {
		return Header{}, err
	}

	return h, in.SetPosition(src.Position())
}

func readHeader(src *buffer.ByteBuffer) (Header, error) {
	var magic [format.MagicSize]byte
	if err := src.GetBytes(magic[:]); err != nil {
		return Header{}, truncatedHeader(src.Remaining())
	}

	variant, ok := format.VariantFromMagic(magic[:])
	if !ok {
		return Header{}, fmt.Errorf("%w: unrecognized magic %q (% X)", errs.ErrInvalidFormat, magic[:], magic[:])
	}

	if src.Remaining() < format.HeaderSize-format.MagicSize {
		return Header{}, truncatedHeader(format.MagicSize + src.Remaining())
	}

	h := Header{Variant: variant}

	var err error
	if h.UncompressedSize, err = src.GetUint32(); err != nil {
		return Header{}, err
	}
	if h.Reserved[0], err = src.GetUint32(); err != nil {
		return Header{}, err
	}
	if h.Reserved[1], err = src.GetUint32(); err != nil {
		return Header{}, err
	}

	if h.UncompressedSize == 0 {
		return Header{}, fmt.Errorf("%w: declared uncompressed size is zero", errs.ErrCorruptedData)
	}

	return h, nil
}

func truncatedHeader(have int) error {
	return fmt.Errorf("%w: truncated header, %d of %d bytes", errs.ErrCorruptedData, have, format.HeaderSize)
}

// put writes the header at out's position. Reserved words are written as zero.
func (h Header) put(out *buffer.ByteBuffer) error {
	magic := h.Variant.Magic()
	if err := out.PutBytes(magic[:]); err != nil {
		return err
	}
	if err := out.PutUint32(h.UncompressedSize); err != nil {
		return err
	}
	if err := out.PutUint32(0); err != nil {
		return err
	}

	return out.PutUint32(0)
}
