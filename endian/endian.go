// Package endian is a thin façade over the core engine's Take primitive:
// each decoder here is exactly "take k >>| decode" for some fixed-width
// numeric layout, grounded on the same encoding/binary calls the teacher's
// internal/uapi package uses to marshal its C-compatible wire structs.
// Concrete variable-width or struct-level decoding belongs in a grammar
// built from these and the root package's combinators, not in here.
package endian

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/ehrlich-b/parsec"
)

// IsLittleEndian reports the host's native byte order.
func IsLittleEndian() bool {
	var x uint16 = 1
	return *(*byte)(unsafe.Pointer(&x)) == 1
}

var nativeOrder binary.ByteOrder = func() binary.ByteOrder {
	if IsLittleEndian() {
		return binary.LittleEndian
	}
	return binary.BigEndian
}()

func decodeUint16(order binary.ByteOrder) parsec.Parser[uint16] {
	return parsec.Map(parsec.Take(2), order.Uint16)
}

func decodeUint32(order binary.ByteOrder) parsec.Parser[uint32] {
	return parsec.Map(parsec.Take(4), order.Uint32)
}

func decodeUint64(order binary.ByteOrder) parsec.Parser[uint64] {
	return parsec.Map(parsec.Take(8), order.Uint64)
}

// Uint8 reads a single byte. Byte order is irrelevant at one byte, so there
// is only one variant.
func Uint8() parsec.Parser[uint8] {
	return parsec.Map(parsec.Take(1), func(b []byte) uint8 { return b[0] })
}

// Int8 reads a single signed byte.
func Int8() parsec.Parser[int8] {
	return parsec.Map(Uint8(), func(u uint8) int8 { return int8(u) })
}

func LittleEndianUint16() parsec.Parser[uint16] { return decodeUint16(binary.LittleEndian) }
func BigEndianUint16() parsec.Parser[uint16]    { return decodeUint16(binary.BigEndian) }
func NativeEndianUint16() parsec.Parser[uint16] { return decodeUint16(nativeOrder) }

func LittleEndianInt16() parsec.Parser[int16] {
	return parsec.Map(LittleEndianUint16(), func(u uint16) int16 { return int16(u) })
}
func BigEndianInt16() parsec.Parser[int16] {
	return parsec.Map(BigEndianUint16(), func(u uint16) int16 { return int16(u) })
}
func NativeEndianInt16() parsec.Parser[int16] {
	return parsec.Map(NativeEndianUint16(), func(u uint16) int16 { return int16(u) })
}

func LittleEndianUint32() parsec.Parser[uint32] { return decodeUint32(binary.LittleEndian) }
func BigEndianUint32() parsec.Parser[uint32]    { return decodeUint32(binary.BigEndian) }
func NativeEndianUint32() parsec.Parser[uint32] { return decodeUint32(nativeOrder) }

func LittleEndianInt32() parsec.Parser[int32] {
	return parsec.Map(LittleEndianUint32(), func(u uint32) int32 { return int32(u) })
}
func BigEndianInt32() parsec.Parser[int32] {
	return parsec.Map(BigEndianUint32(), func(u uint32) int32 { return int32(u) })
}
func NativeEndianInt32() parsec.Parser[int32] {
	return parsec.Map(NativeEndianUint32(), func(u uint32) int32 { return int32(u) })
}

func LittleEndianUint64() parsec.Parser[uint64] { return decodeUint64(binary.LittleEndian) }
func BigEndianUint64() parsec.Parser[uint64]    { return decodeUint64(binary.BigEndian) }
func NativeEndianUint64() parsec.Parser[uint64] { return decodeUint64(nativeOrder) }

func LittleEndianInt64() parsec.Parser[int64] {
	return parsec.Map(LittleEndianUint64(), func(u uint64) int64 { return int64(u) })
}
func BigEndianInt64() parsec.Parser[int64] {
	return parsec.Map(BigEndianUint64(), func(u uint64) int64 { return int64(u) })
}
func NativeEndianInt64() parsec.Parser[int64] {
	return parsec.Map(NativeEndianUint64(), func(u uint64) int64 { return int64(u) })
}

func LittleEndianFloat32() parsec.Parser[float32] {
	return parsec.Map(LittleEndianUint32(), math.Float32frombits)
}
func BigEndianFloat32() parsec.Parser[float32] {
	return parsec.Map(BigEndianUint32(), math.Float32frombits)
}
func NativeEndianFloat32() parsec.Parser[float32] {
	return parsec.Map(NativeEndianUint32(), math.Float32frombits)
}

func LittleEndianFloat64() parsec.Parser[float64] {
	return parsec.Map(LittleEndianUint64(), math.Float64frombits)
}
func BigEndianFloat64() parsec.Parser[float64] {
	return parsec.Map(BigEndianUint64(), math.Float64frombits)
}
func NativeEndianFloat64() parsec.Parser[float64] {
	return parsec.Map(NativeEndianUint64(), math.Float64frombits)
}
