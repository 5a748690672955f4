// Package pack converts fixed-width integers and booleans to and from
// big-endian byte sequences.
package pack

// EncodeBool packs v into a single byte: 1 for true, 0 for false.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// DecodeBool unpacks a single-byte boolean. An empty buffer or any byte
// other than 1 decodes to false.
func DecodeBool(b []byte) bool {
	return len(b) > 0 && b[0] == 1
}

// EncodeInt16 packs v into 2 bytes, most-significant byte first.
func EncodeInt16(v int16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

// DecodeInt16 unpacks a 2-byte big-endian int16.
// The buffer must hold at least 2 bytes; a shorter buffer is a caller
// contract violation and panics.
func DecodeInt16(b []byte) int16 {
	return int16(b[0])<<8 | int16(b[1])
}

// EncodeInt32 packs v into 4 bytes, most-significant byte first.
func EncodeInt32(v int32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// DecodeInt32 unpacks a 4-byte big-endian int32.
// The buffer must hold at least 4 bytes; a shorter buffer is a caller
// contract violation and panics.
func DecodeInt32(b []byte) int32 {
	return int32(b[0])<<24 | int32(b[1])<<16 | int32(b[2])<<8 | int32(b[3])
}

// EncodeInt64 packs v into 8 bytes, most-significant byte first.
func EncodeInt64(v int64) []byte {
	return []byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	}
}

// DecodeInt64 unpacks an 8-byte big-endian int64.
// The buffer must hold at least 8 bytes; a shorter buffer is a caller
// contract violation and panics.
func DecodeInt64(b []byte) int64 {
	return int64(b[0])<<56 | int64(b[1])<<48 | int64(b[2])<<40 | int64(b[3])<<32 |
		int64(b[4])<<24 | int64(b[5])<<16 | int64(b[6])<<8 | int64(b[7])
}
