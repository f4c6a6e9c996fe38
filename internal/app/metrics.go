package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks frame production.
type Metrics struct {
	// Frame timing, from scheduler step to present
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64

	// Output volume
	cellsPresented atomic.Uint64
	fullRepaints   atomic.Uint64
	idleFrames     atomic.Uint64

	// Input and tasks
	eventCount   atomic.Uint64
	eventHandled atomic.Uint64
	taskFaults   atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	m.frameMinNs.Store(1<<63 - 1)
	return m
}

// RecordFrame records one presented frame.
func (m *Metrics) RecordFrame(duration time.Duration, cells int, full bool) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)
	m.cellsPresented.Add(uint64(cells))
	if full {
		m.fullRepaints.Add(1)
	}
	if cells == 0 {
		m.idleFrames.Add(1)
	}

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent records a dispatched input event.
func (m *Metrics) RecordEvent(handled bool) {
	m.eventCount.Add(1)
	if handled {
		m.eventHandled.Add(1)
	}
}

// RecordFault records a task fault.
func (m *Metrics) RecordFault() {
	m.taskFaults.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()

	var avgFrameNs int64
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}
	minFrameNs := m.frameMinNs.Load()
	if minFrameNs == 1<<63-1 {
		minFrameNs = 0
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     frameCount,
		AvgFrameTimeNs: avgFrameNs,
		MinFrameTimeNs: minFrameNs,
		MaxFrameTimeNs: m.frameMaxNs.Load(),
		LastFrameNs:    m.lastFrameNs.Load(),
		CellsPresented: m.cellsPresented.Load(),
		FullRepaints:   m.fullRepaints.Load(),
		IdleFrames:     m.idleFrames.Load(),
		EventCount:     m.eventCount.Load(),
		EventsHandled:  m.eventHandled.Load(),
		TaskFaults:     m.taskFaults.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	MinFrameTimeNs int64
	MaxFrameTimeNs int64
	LastFrameNs    int64
	CellsPresented uint64
	FullRepaints   uint64
	IdleFrames     uint64
	EventCount     uint64
	EventsHandled  uint64
	TaskFaults     uint64
}

// AvgFPS returns the throughput the frame pipeline could sustain.
func (s MetricsSnapshot) AvgFPS() float64 {
	if s.AvgFrameTimeNs == 0 {
		return 0
	}
	return 1e9 / float64(s.AvgFrameTimeNs)
}

// AvgCellsPerFrame returns the mean number of cells written per frame.
func (s MetricsSnapshot) AvgCellsPerFrame() float64 {
	if s.FrameCount == 0 {
		return 0
	}
	return float64(s.CellsPresented) / float64(s.FrameCount)
}
