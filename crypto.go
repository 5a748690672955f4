// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// crypto.go — AES-256-GCM payload encryption and the EncryptingTranscoder
// wrapper that protects cached values at rest in a shared store.

package shade

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// Encryptor encrypts and decrypts payload bytes for transcoders wrapped
// with NewEncryptingTranscoder.
type Encryptor interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// AES256GCM implements AES-256-GCM authenticated encryption.
type AES256GCM struct {
	block cipher.Block
}

// NewAES256GCM creates an AES-256-GCM encryptor from a 32-byte key.
func NewAES256GCM(key []byte) (*AES256GCM, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("shade: encryption key must be exactly 32 bytes (got %d)", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &AES256GCM{block: block}, nil
}

// Encrypt encrypts plaintext using AES-256-GCM with a random nonce.
// Output: nonce (12 bytes) || ciphertext.
func (e *AES256GCM) Encrypt(plaintext []byte) ([]byte, error) {
	gcm, err := cipher.NewGCM(e.block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	// io.ReadFull on rand.Reader (backed by /dev/urandom on Linux) never
	// returns an error in practice.  The branch exists for correctness on
	// exotic platforms or future OS changes.
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt decrypts ciphertext produced by Encrypt.
func (e *AES256GCM) Decrypt(ciphertext []byte) ([]byte, error) {
	gcm, err := cipher.NewGCM(e.block)
	if err != nil {
		return nil, err
	}
	nsize := gcm.NonceSize()
	if len(ciphertext) < nsize {
		return nil, fmt.Errorf("shade: ciphertext too short")
	}
	return gcm.Open(nil, ciphertext[:nsize], ciphertext[nsize:], nil)
}

// EncryptingTranscoder wraps another Transcoder and encrypts its payload
// bytes, tagging the result with FlagEncrypted. Flags stay in the clear
// (they are metadata, not payload); Data is ciphertext.
type EncryptingTranscoder[T any] struct {
	inner Transcoder[T]
	enc   Encryptor
}

// NewEncryptingTranscoder wraps inner so its payloads are encrypted with
// enc before they reach the cache and decrypted on the way back.
func NewEncryptingTranscoder[T any](inner Transcoder[T], enc Encryptor) EncryptingTranscoder[T] {
	return EncryptingTranscoder[T]{inner: inner, enc: enc}
}

func (t EncryptingTranscoder[T]) Encode(v T) (CachedData, error) {
	d, err := t.inner.Encode(v)
	if err != nil {
		return CachedData{}, err
	}
	ct, err := t.enc.Encrypt(d.Data)
	if err != nil {
		return CachedData{}, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	d.Data = ct
	d.Flags |= FlagEncrypted
	return d, nil
}

func (t EncryptingTranscoder[T]) Decode(d CachedData) (T, error) {
	var zero T
	if !d.Encrypted() {
		return zero, fmt.Errorf("%w: payload is not encrypted", ErrDecodeFailed)
	}
	pt, err := t.enc.Decrypt(d.Data)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	d.Data = pt
	d.Flags &^= FlagEncrypted
	return t.inner.Decode(d)
}

// DecodeIsCostly reports true for encrypted payloads, since decryption
// and authentication run before the inner decode.
func (t EncryptingTranscoder[T]) DecodeIsCostly(d CachedData) bool {
	if d.Encrypted() {
		return true
	}
	return t.inner.DecodeIsCostly(d)
}

func (t EncryptingTranscoder[T]) MaxSize() uint32 { return t.inner.MaxSize() }
