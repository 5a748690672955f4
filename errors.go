// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the public Shade API,
// covering nil-value rejection, encode/decode failures, and decode-service
// lifecycle.

// Package shade implements a typed binary codec layer for cache values:
// transcoders convert Go values of fixed and variable-width types into
// flag-tagged byte payloads and back, for storage inside a key-value cache.
package shade

import "errors"

// Encode errors
var (
	ErrNilValue     = errors.New("shade: cannot encode nil value")
	ErrEncodeFailed = errors.New("shade: failed to encode value")
)

// Decode errors
var (
	ErrDecodeFailed = errors.New("shade: failed to decode payload")
)

// Decode-service errors
var (
	ErrServiceClosed = errors.New("shade: decode service closed")
)
