package buffer

import "io"

var (
	_ io.Reader     = (*ByteBuffer)(nil)
	_ io.Writer     = (*ByteBuffer)(nil)
	_ io.ByteReader = (*ByteBuffer)(nil)
	_ io.ByteWriter = (*ByteBuffer)(nil)
	_ io.WriterTo   = (*ByteBuffer)(nil)
)

// Read copies up to len(p) remaining bytes into p and advances the position.
// It returns io.EOF once the position has reached the limit.
func (b *ByteBuffer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if !b.HasRemaining() {
		return 0, io.EOF
	}

	n := copy(p, b.data[b.position:b.limit])
	b.position += n

	return n, nil
}

// ReadByte reads one byte, returning io.EOF at the limit.
func (b *ByteBuffer) ReadByte() (byte, error) {
	if !b.HasRemaining() {
		return 0, io.EOF
	}
	c := b.data[b.position]
	b.position++

	return c, nil
}

// Write copies p to the position. Unlike a growable writer it never
// reallocates: if p does not fit, nothing is written and the error wraps
// errs.ErrBufferOverflow.
func (b *ByteBuffer) Write(p []byte) (int, error) {
	if err := b.PutBytes(p); err != nil {
		return 0, err
	}

	return len(p), nil
}

// WriteByte writes one byte at the position.
func (b *ByteBuffer) WriteByte(c byte) error {
	return b.PutByte(c)
}

// WriteTo writes the remaining region to w and advances the position past
// the bytes written.
func (b *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data[b.position:b.limit])
	b.position += n
	if err == nil && b.HasRemaining() {
		err = io.ErrShortWrite
	}

	return int64(n), err
}
