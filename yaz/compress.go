package yaz

import (
	"fmt"
	"math"

	"github.com/narahiero/CTLib-sub000/buffer"
	"github.com/narahiero/CTLib-sub000/errs"
	"github.com/narahiero/CTLib-sub000/format"
	"github.com/narahiero/CTLib-sub000/internal/options"
)

// WorstCaseSize returns the output capacity Compress reserves for n input
// bytes: every byte as a literal plus one control byte per eight, the header
// and padding, rounded up to a multiple of eight.
func WorstCaseSize(n int) int {
	size := n + (n+7)/8 + 24
	return (size + 7) &^ 7
}

// Compress encodes the remaining region of in as a stream of the given variant.
//
// The match search is a greedy scan of the preceding window, nearest
// candidate first. Matches may overlap the bytes being encoded.
//
// in is consumed: its position moves to its limit. The returned buffer holds
// exactly the padded stream and is positioned at 0, ready for Decompress.
//
// An empty input produces a bare header declaring size zero, which Decompress
// rejects.
//
// Parameters:
//   - in: Data to compress, from its position to its limit
//   - variant: Magic to write
//   - opts: Optional match search settings
//
// Returns:
//   - *buffer.ByteBuffer: The compressed stream
//   - error: errs.ErrInvalidFormat for an unknown variant, errs.ErrInvalidOption,
//     or errs.ErrInputTooLarge if the input exceeds the 32-bit size field
func Compress(in *buffer.ByteBuffer, variant format.Variant, opts ...EncoderOption) (*buffer.ByteBuffer, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: unsupported variant %d", errs.ErrInvalidFormat, variant)
	}

	cfg := defaultEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	src := in.RemainingBytes()
	if uint64(len(src)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInputTooLarge, len(src))
	}

	out, err := buffer.New(WorstCaseSize(len(src)))
	if err != nil {
		return nil, err
	}

	h := Header{Variant: variant, UncompressedSize: uint32(len(src))}
	if err := h.put(out); err != nil {
		return nil, err
	}

	if err := encode(src, out, cfg); err != nil {
		return nil, err
	}

	for out.Position()%format.Alignment != 0 {
		if err := out.PutByte(0); err != nil {
			return nil, err
		}
	}

	if err := out.Truncate(); err != nil {
		return nil, err
	}
	out.Rewind()

	if err := in.SetPosition(in.Limit()); err != nil {
		return nil, err
	}

	return out, nil
}

func encode(src []byte, out *buffer.ByteBuffer, cfg *EncoderConfig) error {
	g := newGroupWriter(out)

	for pos := 0; pos < len(src); {
		distance, length := findMatch(src, pos, cfg)

		if length < format.MinMatchLength {
			if err := g.literal(src[pos]); err != nil {
				return err
			}
			pos++

			continue
		}

		if err := g.reference(distance, length); err != nil {
			return err
		}
		pos += length
	}

	return g.flush()
}

// findMatch returns the longest run in the window behind pos that matches the
// bytes at pos. The candidate run may extend past pos into the bytes it
// describes. Ties keep the nearest candidate.
func findMatch(src []byte, pos int, cfg *EncoderConfig) (distance, length int) {
	maxLen := min(cfg.maxMatch, len(src)-pos)
	if maxLen < format.MinMatchLength {
		return 0, 0
	}

	window := min(cfg.windowSize, pos)
	for d := 1; d <= window; d++ {
		s := pos - d
		// A candidate can only win if it also matches at the current best length.
		if src[s+length] != src[pos+length] {
			continue
		}

		n := 0
		for n < maxLen && src[s+n] == src[pos+n] {
			n++
		}

		if n > length {
			distance, length = d, n
			if n == maxLen {
				break
			}
		}
	}

	return distance, length
}

// groupWriter stages one control byte and its chunks, writing them to out
// once eight chunks are collected.
type groupWriter struct {
	out   *buffer.ByteBuffer
	group [1 + 8*3]byte
	n     int
	mask  byte
}

func newGroupWriter(out *buffer.ByteBuffer) *groupWriter {
	g := &groupWriter{out: out}
	g.reset()

	return g
}

func (g *groupWriter) reset() {
	g.group[0] = 0
	g.n = 1
	g.mask = 0x80
}

func (g *groupWriter) literal(c byte) error {
	g.group[0] |= g.mask
	g.group[g.n] = c
	g.n++

	return g.advance()
}

func (g *groupWriter) reference(distance, length int) error {
	d := distance - 1

	if length <= format.MaxShortLength {
		g.group[g.n] = byte(length-2)<<4 | byte(d>>8)
		g.group[g.n+1] = byte(d)
		g.n += 2
	} else {
		g.group[g.n] = byte(d >> 8)
		g.group[g.n+1] = byte(d)
		g.group[g.n+2] = byte(length - 0x12)
		g.n += 3
	}

	return g.advance()
}

func (g *groupWriter) advance() error {
	g.mask >>= 1
	if g.mask == 0 {
		return g.flush()
	}

	return nil
}

// flush writes the staged group. Unused control bits of a partial group
// stay zero.
func (g *groupWriter) flush() error {
	if g.n == 1 {
		return nil
	}
	if err := g.out.PutBytes(g.group[:g.n]); err != nil {
		return err
	}
	g.reset()

	return nil
}
