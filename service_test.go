package shade_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bionicspirit/shade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureRecorder struct {
	mu        sync.Mutex
	latencies int
	errors    int
	bytes     int
}

func (r *captureRecorder) RecordLatency(op string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latencies++
}

func (r *captureRecorder) RecordError(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors++
}

func (r *captureRecorder) RecordBytes(op string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bytes += n
}

func (r *captureRecorder) snapshot() (int, int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latencies, r.errors, r.bytes
}

func newCompressedString(t *testing.T) (shade.StringTranscoder, shade.CachedData, string) {
	t.Helper()
	tc := shade.NewStringTranscoder(shade.Options{CompressionThreshold: 32})
	v := strings.Repeat("costly payload ", 64)
	d, err := tc.Encode(v)
	require.NoError(t, err)
	require.True(t, d.Compressed())
	return tc, d, v
}

func TestDecodeService_InlinePath(t *testing.T) {
	svc := shade.NewDecodeService(shade.ServiceOptions{Workers: 1})
	defer svc.Close()

	tc := shade.Int32Transcoder{}
	d, err := tc.Encode(99)
	require.NoError(t, err)

	f := shade.Submit[int32](svc, tc, d)
	got, err := f.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(99), got)
}

func TestDecodeService_AsyncPath(t *testing.T) {
	rec := &captureRecorder{}
	svc := shade.NewDecodeService(shade.ServiceOptions{Workers: 2, Metrics: rec})
	defer svc.Close()

	tc, d, want := newCompressedString(t)
	f := shade.Submit[string](svc, tc, d)
	got, err := f.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	lat, errs, n := rec.snapshot()
	assert.Equal(t, 1, lat)
	assert.Zero(t, errs)
	assert.Equal(t, len(d.Data), n)
}

func TestDecodeService_AsyncFailure_Recorded(t *testing.T) {
	rec := &captureRecorder{}
	svc := shade.NewDecodeService(shade.ServiceOptions{Workers: 1, Metrics: rec})
	defer svc.Close()

	tc := shade.NewBytesTranscoder(shade.Options{})
	d := shade.CachedData{Flags: shade.FlagBytes | shade.FlagCompressed, Data: []byte("junk")}

	f := shade.Submit[[]byte](svc, tc, d)
	_, err := f.Get(context.Background())
	require.ErrorIs(t, err, shade.ErrDecodeFailed)

	_, errs, _ := rec.snapshot()
	assert.Equal(t, 1, errs)
}

func TestDecodeService_ContextCancel(t *testing.T) {
	svc := shade.NewDecodeService(shade.ServiceOptions{Workers: 1})
	defer svc.Close()

	tc, d, _ := newCompressedString(t)
	f := shade.Submit[string](svc, tc, d)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Get(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// The result is still available to a later Get.
	got, err := f.Get(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestDecodeService_SubmitAfterClose(t *testing.T) {
	svc := shade.NewDecodeService(shade.ServiceOptions{Workers: 1})
	require.NoError(t, svc.Close())

	tc, d, _ := newCompressedString(t)
	f := shade.Submit[string](svc, tc, d)
	_, err := f.Get(context.Background())
	require.ErrorIs(t, err, shade.ErrServiceClosed)
}

func TestDecodeService_CloseIdempotent(t *testing.T) {
	svc := shade.NewDecodeService(shade.ServiceOptions{})
	require.NoError(t, svc.Close())
	require.NoError(t, svc.Close())
}

func TestDecodeService_QueuedWorkResolvesOnClose(t *testing.T) {
	svc := shade.NewDecodeService(shade.ServiceOptions{Workers: 1, QueueSize: 8})

	tc, d, want := newCompressedString(t)
	futures := make([]*shade.Future[string], 0, 8)
	for i := 0; i < 8; i++ {
		futures = append(futures, shade.Submit[string](svc, tc, d))
	}
	require.NoError(t, svc.Close())

	for _, f := range futures {
		got, err := f.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDecodeService_ConcurrentSubmit(t *testing.T) {
	svc := shade.NewDecodeService(shade.ServiceOptions{Workers: 4})
	defer svc.Close()

	tc, d, want := newCompressedString(t)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := shade.Submit[string](svc, tc, d).Get(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
