// Package metrics provides the Recorder interface and a noop implementation.
package metrics

import "time"

// Recorder is the interface for recording codec operational metrics.
type Recorder interface {
	RecordLatency(op string, d time.Duration)
	RecordError(op string)
	RecordBytes(op string, n int)
}

// Noop is a Recorder that discards all data.
type Noop struct{}

func (Noop) RecordLatency(op string, d time.Duration) {}
func (Noop) RecordError(op string)                    {}
func (Noop) RecordBytes(op string, n int)             {}
