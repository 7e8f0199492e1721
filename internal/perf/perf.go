// Package perf is a small per-call instrumentation helper used by the
// graphalgo benchmarks to record wall-clock duration and allocation counts
// per algorithm call, adapted from internal/performance/monitor.go's
// sampling Monitor (config + metrics + callback list). This package drops
// the teacher's background sampling goroutine and GC-forcing behavior:
// nothing in this library allocates at a scale that warrants it, and the
// core's concurrency model (spec.md §5) forbids background work.
package perf

import (
	"runtime"
	"sync"
	"time"
)

// Sample is a single measured call: wall-clock duration and the delta in
// bytes allocated by the Go runtime across the call.
type Sample struct {
	Label       string
	Duration    time.Duration
	AllocBytes  uint64
	AllocObjects uint64
}

// Recorder accumulates Samples under a mutex; safe for concurrent Measure
// calls even though the core itself never calls it off the caller's thread.
type Recorder struct {
	mu      sync.Mutex
	samples []Sample
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Measure runs fn, recording its wall-clock duration and allocation delta
// under label, and returns fn's own return value unchanged.
func Measure[T any](r *Recorder, label string, fn func() T) T {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()

	result := fn()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	r.mu.Lock()
	r.samples = append(r.samples, Sample{
		Label:        label,
		Duration:     elapsed,
		AllocBytes:   after.TotalAlloc - before.TotalAlloc,
		AllocObjects: after.Mallocs - before.Mallocs,
	})
	r.mu.Unlock()

	return result
}

// Samples returns a copy of every recorded sample, in recording order.
func (r *Recorder) Samples() []Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Sample, len(r.samples))
	copy(out, r.samples)
	return out
}

// Reset discards every recorded sample.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.samples = nil
	r.mu.Unlock()
}
