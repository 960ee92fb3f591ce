package format

import (
	"fmt"
	"strings"
)

// Variant identifies one of the two Yaz stream flavours. Both share the same
// layout and differ only in their magic tag.
type Variant uint8

const (
	VariantYaz0 Variant = 0x1 // VariantYaz0 is the "Yaz0" tagged stream.
	VariantYaz1 Variant = 0x2 // VariantYaz1 is the "Yaz1" tagged stream.
)

// Stream layout constants.
const (
	MagicSize      = 4
	HeaderSize     = 16 // magic + length + two reserved words
	Alignment      = 4  // compressed streams are zero padded to this boundary
	WindowSize     = 4096
	MinMatchLength = 3
	MaxShortLength = 0xF + 2    // longest length encodable in the 2-byte chunk
	MaxMatchLength = 0xFF + 0x12 // longest length encodable with the extension byte
)

var (
	magicYaz0 = [MagicSize]byte{'Y', 'a', 'z', '0'}
	magicYaz1 = [MagicSize]byte{'Y', 'a', 'z', '1'}
)

// Variants lists the recognised variants in detection order.
func Variants() []Variant {
	return []Variant{VariantYaz0, VariantYaz1}
}

// Magic returns the four byte tag written at the start of a stream.
func (v Variant) Magic() [MagicSize]byte {
	switch v {
	case VariantYaz0:
		return magicYaz0
	case VariantYaz1:
		return magicYaz1
	default:
		return [MagicSize]byte{}
	}
}

// Valid reports whether v is a recognised variant.
func (v Variant) Valid() bool {
	return v == VariantYaz0 || v == VariantYaz1
}

func (v Variant) String() string {
	switch v {
	case VariantYaz0:
		return "Yaz0"
	case VariantYaz1:
		return "Yaz1"
	default:
		return "Unknown"
	}
}

// VariantFromMagic maps a magic tag to its variant.
func VariantFromMagic(magic []byte) (Variant, bool) {
	if len(magic) < MagicSize {
		return 0, false
	}

	for _, v := range Variants() {
		m := v.Magic()
		if string(magic[:MagicSize]) == string(m[:]) {
			return v, true
		}
	}

	return 0, false
}

// ParseVariant parses a case-insensitive variant name such as "yaz0".
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if strings.EqualFold(name, v.String()) {
			return v, nil
		}
	}

	return 0, fmt.Errorf("unknown variant %q", name)
}
