// Package endian provides the byte order engines used by buffer.ByteBuffer.
//
// An EndianEngine joins the ByteOrder and AppendByteOrder interfaces of
// encoding/binary, so a single value can both patch fixed offsets and append
// to a growing slice.
//
// Every format handled by this module stores its multi-byte fields in
// big-endian order, which is why BigEndian is the default everywhere:
//
//	engine := endian.GetEngine(true)   // binary.BigEndian
//	v := engine.Uint32(header[4:8])
//
// Little-endian access exists for the few host-side tools that need it.
//
// All functions in this package are safe for concurrent use; the engines are
// stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
//
// binary.BigEndian and binary.LittleEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the byte order of the host.
func CheckEndianness() binary.ByteOrder {
	var probe uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&probe))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeBigEndian reports whether the host stores integers big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetBigEndianEngine returns the big-endian engine, the default for all buffers.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetEngine returns the big-endian engine when bigEndian is true and the
// little-endian engine otherwise.
func GetEngine(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsBigEndian reports whether engine encodes most significant byte first.
// A nil engine is treated as big-endian.
func IsBigEndian(engine EndianEngine) bool {
	if engine == nil {
		return true
	}

	var probe [2]byte
	engine.PutUint16(probe[:], 0x0102)

	return probe[0] == 0x01
}

// Name returns "big-endian" or "little-endian" for engine.
func Name(engine EndianEngine) string {
	if IsBigEndian(engine) {
		return "big-endian"
	}

	return "little-endian"
}
