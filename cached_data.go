// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// cached_data.go — the CachedData wire unit (flags word + byte payload)
// exchanged with the cache-client layer, and the flags tag convention.

package shade

// DefaultMaxSize is the system-wide payload ceiling shared by all
// transcoders. The cache-client layer enforces it; transcoders only
// report it.
const DefaultMaxSize uint32 = 1 << 20 // 1 MiB

// Attribute bits occupy the low byte of the flags word and are orthogonal
// to the type tag.
const (
	FlagSerialized uint32 = 1 << 0
	FlagCompressed uint32 = 1 << 1
	FlagEncrypted  uint32 = 1 << 2
)

// Type tags are small integers shifted into the second byte of the flags
// word, leaving the low byte free for attribute bits. Strings carry no
// type tag (tag range is zero).
const (
	FlagBoolean uint32 = 1 << 8
	FlagInt32   uint32 = 2 << 8
	FlagInt64   uint32 = 3 << 8
	FlagTime    uint32 = 4 << 8
	FlagInt8    uint32 = 5 << 8
	FlagFloat32 uint32 = 6 << 8
	FlagFloat64 uint32 = 7 << 8
	FlagBytes   uint32 = 8 << 8
	FlagInt16   uint32 = 9 << 8
	FlagRune    uint32 = 10 << 8
)

// CachedData is the tagged wire unit exchanged with the cache-client layer.
// Flags identifies the logical encoding, Data is the encoded payload, and
// MaxSize is the ceiling the cache client enforces on payload size.
//
// Treat values as immutable once constructed: the same CachedData may be
// read concurrently, and Data must not be mutated after Encode returns it.
type CachedData struct {
	Flags   uint32
	Data    []byte
	MaxSize uint32
}

// Compressed reports whether the payload carries the compressed bit.
func (d CachedData) Compressed() bool { return d.Flags&FlagCompressed != 0 }

// Encrypted reports whether the payload carries the encrypted bit.
func (d CachedData) Encrypted() bool { return d.Flags&FlagEncrypted != 0 }
