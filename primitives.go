// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// primitives.go — fixed-width scalar transcoders (bool, integers, floats,
// rune, time) built from the internal/pack big-endian packing helpers.

package shade

import (
	"math"
	"time"

	"github.com/bionicspirit/shade/internal/pack"
)

// Every primitive transcoder follows the same contract: Encode packs the
// value into its canonical width and tags it with a fixed flag; Decode of
// an empty payload returns the type's zero value (a defined fallback, not
// an error); DecodeIsCostly is always false; MaxSize is the shared ceiling.

// BoolTranscoder encodes booleans as a single byte (1 = true, 0 = false).
type BoolTranscoder struct{}

func (BoolTranscoder) Encode(v bool) (CachedData, error) {
	return CachedData{Flags: FlagBoolean, Data: pack.EncodeBool(v), MaxSize: DefaultMaxSize}, nil
}

func (BoolTranscoder) Decode(d CachedData) (bool, error) {
	if len(d.Data) == 0 {
		return false, nil
	}
	return pack.DecodeBool(d.Data), nil
}

func (BoolTranscoder) DecodeIsCostly(CachedData) bool { return false }
func (BoolTranscoder) MaxSize() uint32                { return DefaultMaxSize }

// Int8Transcoder encodes 8-bit integers as a single byte.
type Int8Transcoder struct{}

func (Int8Transcoder) Encode(v int8) (CachedData, error) {
	return CachedData{Flags: FlagInt8, Data: []byte{byte(v)}, MaxSize: DefaultMaxSize}, nil
}

func (Int8Transcoder) Decode(d CachedData) (int8, error) {
	if len(d.Data) == 0 {
		return 0, nil
	}
	return int8(d.Data[0]), nil
}

func (Int8Transcoder) DecodeIsCostly(CachedData) bool { return false }
func (Int8Transcoder) MaxSize() uint32                { return DefaultMaxSize }

// Int16Transcoder encodes 16-bit integers as 2 big-endian bytes.
type Int16Transcoder struct{}

func (Int16Transcoder) Encode(v int16) (CachedData, error) {
	return CachedData{Flags: FlagInt16, Data: pack.EncodeInt16(v), MaxSize: DefaultMaxSize}, nil
}

func (Int16Transcoder) Decode(d CachedData) (int16, error) {
	if len(d.Data) == 0 {
		return 0, nil
	}
	return pack.DecodeInt16(d.Data), nil
}

func (Int16Transcoder) DecodeIsCostly(CachedData) bool { return false }
func (Int16Transcoder) MaxSize() uint32                { return DefaultMaxSize }

// Int32Transcoder encodes 32-bit integers as 4 big-endian bytes.
type Int32Transcoder struct{}

func (Int32Transcoder) Encode(v int32) (CachedData, error) {
	return CachedData{Flags: FlagInt32, Data: pack.EncodeInt32(v), MaxSize: DefaultMaxSize}, nil
}

func (Int32Transcoder) Decode(d CachedData) (int32, error) {
	if len(d.Data) == 0 {
		return 0, nil
	}
	return pack.DecodeInt32(d.Data), nil
}

func (Int32Transcoder) DecodeIsCostly(CachedData) bool { return false }
func (Int32Transcoder) MaxSize() uint32                { return DefaultMaxSize }

// Int64Transcoder encodes 64-bit integers as 8 big-endian bytes.
type Int64Transcoder struct{}

func (Int64Transcoder) Encode(v int64) (CachedData, error) {
	return CachedData{Flags: FlagInt64, Data: pack.EncodeInt64(v), MaxSize: DefaultMaxSize}, nil
}

func (Int64Transcoder) Decode(d CachedData) (int64, error) {
	if len(d.Data) == 0 {
		return 0, nil
	}
	return pack.DecodeInt64(d.Data), nil
}

func (Int64Transcoder) DecodeIsCostly(CachedData) bool { return false }
func (Int64Transcoder) MaxSize() uint32                { return DefaultMaxSize }

// Float32Transcoder encodes 32-bit floats via their IEEE-754 bit pattern,
// so round-trips are bit-exact including NaN payloads and signed zero.
type Float32Transcoder struct{}

func (Float32Transcoder) Encode(v float32) (CachedData, error) {
	bits := int32(math.Float32bits(v))
	return CachedData{Flags: FlagFloat32, Data: pack.EncodeInt32(bits), MaxSize: DefaultMaxSize}, nil
}

func (Float32Transcoder) Decode(d CachedData) (float32, error) {
	if len(d.Data) == 0 {
		return 0, nil
	}
	return math.Float32frombits(uint32(pack.DecodeInt32(d.Data))), nil
}

func (Float32Transcoder) DecodeIsCostly(CachedData) bool { return false }
func (Float32Transcoder) MaxSize() uint32                { return DefaultMaxSize }

// Float64Transcoder encodes 64-bit floats via their IEEE-754 bit pattern.
type Float64Transcoder struct{}

func (Float64Transcoder) Encode(v float64) (CachedData, error) {
	bits := int64(math.Float64bits(v))
	return CachedData{Flags: FlagFloat64, Data: pack.EncodeInt64(bits), MaxSize: DefaultMaxSize}, nil
}

func (Float64Transcoder) Decode(d CachedData) (float64, error) {
	if len(d.Data) == 0 {
		return 0, nil
	}
	return math.Float64frombits(uint64(pack.DecodeInt64(d.Data))), nil
}

func (Float64Transcoder) DecodeIsCostly(CachedData) bool { return false }
func (Float64Transcoder) MaxSize() uint32                { return DefaultMaxSize }

// RuneTranscoder encodes a rune as a 2-byte big-endian code unit.
// Only Basic Multilingual Plane code points (<= U+FFFF) are representable;
// encoding a higher code point truncates to the low 16 bits.
type RuneTranscoder struct{}

func (RuneTranscoder) Encode(v rune) (CachedData, error) {
	return CachedData{Flags: FlagRune, Data: pack.EncodeInt16(int16(v)), MaxSize: DefaultMaxSize}, nil
}

func (RuneTranscoder) Decode(d CachedData) (rune, error) {
	if len(d.Data) == 0 {
		return 0, nil
	}
	return rune(uint16(pack.DecodeInt16(d.Data))), nil
}

func (RuneTranscoder) DecodeIsCostly(CachedData) bool { return false }
func (RuneTranscoder) MaxSize() uint32                { return DefaultMaxSize }

// TimeTranscoder encodes a time.Time as its Unix-nanosecond instant in
// 8 big-endian bytes. The zero time encodes to an empty payload, matching
// the zero-value decode fallback. Decoded times are in UTC; monotonic
// clock readings and locations do not survive the round trip.
type TimeTranscoder struct{}

func (TimeTranscoder) Encode(v time.Time) (CachedData, error) {
	d := CachedData{Flags: FlagTime, MaxSize: DefaultMaxSize}
	if !v.IsZero() {
		d.Data = pack.EncodeInt64(v.UnixNano())
	}
	return d, nil
}

func (TimeTranscoder) Decode(d CachedData) (time.Time, error) {
	if len(d.Data) == 0 {
		return time.Time{}, nil
	}
	return time.Unix(0, pack.DecodeInt64(d.Data)).UTC(), nil
}

func (TimeTranscoder) DecodeIsCostly(CachedData) bool { return false }
func (TimeTranscoder) MaxSize() uint32                { return DefaultMaxSize }
