// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// serializing.go — fallback transcoder for arbitrary serializable values,
// built on MessagePack with decoding restricted to the expected type.

package shade

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
)

// SerializingTranscoder is the fallback for values with no dedicated
// transcoder. Encode marshals the value with MessagePack and wraps the
// bytes through the opaque byte path, inheriting its compression policy.
//
// Decode reconstructs strictly into the type parameter T: the decoder can
// only ever produce a T, and unknown fields are rejected, so a payload
// carrying a different object graph fails with ErrDecodeFailed instead of
// materializing an unexpected type. Payloads from a shared cache are
// untrusted input; the type restriction is the boundary that keeps a
// crafted payload from steering what gets constructed.
type SerializingTranscoder[T any] struct {
	opts Options
}

// NewSerializingTranscoder returns a SerializingTranscoder for T with the
// given options. The zero value is also usable and selects all defaults.
func NewSerializingTranscoder[T any](opts Options) SerializingTranscoder[T] {
	return SerializingTranscoder[T]{opts: opts}
}

// Encode marshals v. A nil value (nil pointer, map, slice, interface, or
// untyped nil) is rejected with ErrNilValue before any byte is produced.
func (t SerializingTranscoder[T]) Encode(v T) (CachedData, error) {
	if isNilValue(any(v)) {
		return CachedData{}, ErrNilValue
	}
	b, err := msgpack.Marshal(v)
	if err != nil {
		return CachedData{}, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return encodeBytes(b, FlagSerialized, t.opts)
}

// Decode reverses the opaque byte path and unmarshals into T. An absent
// payload or a structural mismatch fails with ErrDecodeFailed; decode
// never falls back to a zero value on bad input.
func (t SerializingTranscoder[T]) Decode(d CachedData) (T, error) {
	var zero T
	b, err := decodeBytes(d)
	if err != nil {
		return zero, err
	}
	if len(b) == 0 {
		return zero, fmt.Errorf("%w: empty serialized payload", ErrDecodeFailed)
	}

	dec := msgpack.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields(true)
	var out T
	if err := dec.Decode(&out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	return out, nil
}

// DecodeIsCostly reports true for compressed payloads, where object
// reconstruction compounds with decompression cost.
func (t SerializingTranscoder[T]) DecodeIsCostly(d CachedData) bool { return d.Compressed() }

func (t SerializingTranscoder[T]) MaxSize() uint32 { return t.opts.maxSize() }

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
