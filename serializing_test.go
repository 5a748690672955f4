package shade_test

import (
	"strings"
	"testing"

	"github.com/bionicspirit/shade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type session struct {
	ID      string   `msgpack:"id"`
	UserID  int64    `msgpack:"user_id"`
	Roles   []string `msgpack:"roles"`
	Premium bool     `msgpack:"premium"`
}

func TestSerializingTranscoder_RoundTrip(t *testing.T) {
	tc := shade.NewSerializingTranscoder[session](shade.Options{})
	orig := session{ID: "s-1", UserID: 42, Roles: []string{"admin", "ops"}, Premium: true}

	d, err := tc.Encode(orig)
	require.NoError(t, err)
	assert.Equal(t, shade.FlagSerialized, d.Flags)

	got, err := tc.Decode(d)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestSerializingTranscoder_PointerRoundTrip(t *testing.T) {
	tc := shade.NewSerializingTranscoder[*session](shade.Options{})
	orig := &session{ID: "s-2", UserID: 7}

	d, err := tc.Encode(orig)
	require.NoError(t, err)

	got, err := tc.Decode(d)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestSerializingTranscoder_NilRejected(t *testing.T) {
	ptc := shade.NewSerializingTranscoder[*session](shade.Options{})
	d, err := ptc.Encode(nil)
	require.ErrorIs(t, err, shade.ErrNilValue)
	assert.Empty(t, d.Data)

	mtc := shade.NewSerializingTranscoder[map[string]int](shade.Options{})
	_, err = mtc.Encode(nil)
	require.ErrorIs(t, err, shade.ErrNilValue)

	atc := shade.NewSerializingTranscoder[any](shade.Options{})
	_, err = atc.Encode(nil)
	require.ErrorIs(t, err, shade.ErrNilValue)
}

func TestSerializingTranscoder_TypeMismatch(t *testing.T) {
	// A payload carrying a different object graph must fail the decode,
	// never materialize as the expected type.
	type wallet struct {
		Currency string `msgpack:"currency"`
		Cents    int64  `msgpack:"cents"`
	}
	enc := shade.NewSerializingTranscoder[wallet](shade.Options{})
	d, err := enc.Encode(wallet{Currency: "EUR", Cents: 1299})
	require.NoError(t, err)

	dec := shade.NewSerializingTranscoder[session](shade.Options{})
	_, err = dec.Decode(d)
	require.ErrorIs(t, err, shade.ErrDecodeFailed)
}

func TestSerializingTranscoder_EmptyPayload(t *testing.T) {
	tc := shade.NewSerializingTranscoder[session](shade.Options{})
	_, err := tc.Decode(shade.CachedData{Flags: shade.FlagSerialized})
	require.ErrorIs(t, err, shade.ErrDecodeFailed)
}

func TestSerializingTranscoder_GarbagePayload(t *testing.T) {
	tc := shade.NewSerializingTranscoder[session](shade.Options{})
	_, err := tc.Decode(shade.CachedData{
		Flags: shade.FlagSerialized,
		Data:  []byte{0xc1, 0xff, 0x00}, // 0xc1 is never valid msgpack
	})
	require.ErrorIs(t, err, shade.ErrDecodeFailed)
}

func TestSerializingTranscoder_CompressesLargeGraphs(t *testing.T) {
	tc := shade.NewSerializingTranscoder[session](shade.Options{CompressionThreshold: 64})
	orig := session{ID: strings.Repeat("x", 512), UserID: 1}

	d, err := tc.Encode(orig)
	require.NoError(t, err)
	assert.True(t, d.Compressed())
	assert.Equal(t, shade.FlagSerialized|shade.FlagCompressed, d.Flags)
	assert.True(t, tc.DecodeIsCostly(d))

	got, err := tc.Decode(d)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestSerializingTranscoder_DecodeIsCostly(t *testing.T) {
	tc := shade.NewSerializingTranscoder[session](shade.Options{})
	assert.False(t, tc.DecodeIsCostly(shade.CachedData{Flags: shade.FlagSerialized}))
	assert.True(t, tc.DecodeIsCostly(shade.CachedData{Flags: shade.FlagSerialized | shade.FlagCompressed}))
}
