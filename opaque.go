// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// opaque.go — byte-slice and string transcoders plus the shared byte-payload
// step that applies the transparent gzip compression policy.

package shade

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// BytesTranscoder passes byte slices through unchanged, subject to the
// compression policy in Options.
type BytesTranscoder struct {
	opts Options
}

// NewBytesTranscoder returns a BytesTranscoder with the given options.
// The zero value is also usable and selects all defaults.
func NewBytesTranscoder(opts Options) BytesTranscoder {
	return BytesTranscoder{opts: opts}
}

func (t BytesTranscoder) Encode(v []byte) (CachedData, error) {
	return encodeBytes(v, FlagBytes, t.opts)
}

func (t BytesTranscoder) Decode(d CachedData) ([]byte, error) {
	return decodeBytes(d)
}

func (t BytesTranscoder) DecodeIsCostly(d CachedData) bool { return d.Compressed() }
func (t BytesTranscoder) MaxSize() uint32                  { return t.opts.maxSize() }

// StringTranscoder encodes strings as UTF-8 bytes, subject to the
// compression policy in Options. Strings carry no type tag in the flags
// word, only attribute bits.
type StringTranscoder struct {
	opts Options
}

// NewStringTranscoder returns a StringTranscoder with the given options.
// The zero value is also usable and selects all defaults.
func NewStringTranscoder(opts Options) StringTranscoder {
	return StringTranscoder{opts: opts}
}

func (t StringTranscoder) Encode(v string) (CachedData, error) {
	return encodeBytes([]byte(v), 0, t.opts)
}

func (t StringTranscoder) Decode(d CachedData) (string, error) {
	b, err := decodeBytes(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (t StringTranscoder) DecodeIsCostly(d CachedData) bool { return d.Compressed() }
func (t StringTranscoder) MaxSize() uint32                  { return t.opts.maxSize() }

// encodeBytes wraps raw bytes in CachedData under the given base flags.
// Payloads at or above the compression threshold are gzip-compressed and
// tagged FlagCompressed, but only when compression actually shrinks them.
func encodeBytes(b []byte, base uint32, o Options) (CachedData, error) {
	flags := base
	if len(b) >= o.threshold() {
		c, err := compress(b)
		if err != nil {
			return CachedData{}, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
		}
		if len(c) < len(b) {
			b = c
			flags |= FlagCompressed
		}
	}
	return CachedData{Flags: flags, Data: b, MaxSize: o.maxSize()}, nil
}

// decodeBytes reverses encodeBytes, decompressing when the compressed bit
// is set.
func decodeBytes(d CachedData) ([]byte, error) {
	if !d.Compressed() {
		return d.Data, nil
	}
	b, err := decompress(d.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	return b, nil
}

func compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		_ = zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return out, nil
}
