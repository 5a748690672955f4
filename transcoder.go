// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// transcoder.go — the Transcoder capability interface and the Options
// shared by the opaque and serializing transcoders.

package shade

// DefaultCompressionThreshold is the payload size, in bytes, at and above
// which the opaque transcoders attempt transparent compression.
const DefaultCompressionThreshold = 16 * 1024

// Transcoder converts values of one static type to and from CachedData.
//
// The cache-client layer resolves a Transcoder from the value's static
// type, calls Encode before transmitting, and hands the retrieved payload
// back to the same instance for Decode. DecodeIsCostly is advisory: when
// true, Decode is CPU-bound (decompression, object reconstruction) and may
// be worth scheduling off a latency-sensitive path — see DecodeService.
//
// Implementations are stateless apart from fixed configuration and safe
// for unsynchronized concurrent use.
type Transcoder[T any] interface {
	Encode(v T) (CachedData, error)
	Decode(d CachedData) (T, error)
	DecodeIsCostly(d CachedData) bool
	MaxSize() uint32
}

// Options configures the opaque and serializing transcoders.
// The zero value selects all defaults.
type Options struct {
	// CompressionThreshold is the minimum payload size eligible for
	// transparent compression. <= 0 selects DefaultCompressionThreshold.
	CompressionThreshold int

	// MaxSize overrides the payload ceiling reported by MaxSize().
	// 0 selects DefaultMaxSize.
	MaxSize uint32
}

func (o Options) threshold() int {
	if o.CompressionThreshold <= 0 {
		return DefaultCompressionThreshold
	}
	return o.CompressionThreshold
}

func (o Options) maxSize() uint32 {
	if o.MaxSize == 0 {
		return DefaultMaxSize
	}
	return o.MaxSize
}
