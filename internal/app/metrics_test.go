package app

import (
	"testing"
	"time"
)

func TestMetricsFrames(t *testing.T) {
	m := NewMetrics()

	snap := m.Snapshot()
	if snap.MinFrameTimeNs != 0 || snap.AvgFPS() != 0 || snap.AvgCellsPerFrame() != 0 {
		t.Errorf("empty snapshot = %+v", snap)
	}

	m.RecordFrame(2*time.Millisecond, 100, true)
	m.RecordFrame(4*time.Millisecond, 0, false)
	m.RecordFrame(6*time.Millisecond, 20, false)

	snap = m.Snapshot()
	tests := []struct {
		name      string
		got, want int64
	}{
		{"frames", int64(snap.FrameCount), 3},
		{"min", snap.MinFrameTimeNs, int64(2 * time.Millisecond)},
		{"max", snap.MaxFrameTimeNs, int64(6 * time.Millisecond)},
		{"avg", snap.AvgFrameTimeNs, int64(4 * time.Millisecond)},
		{"last", snap.LastFrameNs, int64(6 * time.Millisecond)},
		{"cells", int64(snap.CellsPresented), 120},
		{"full", int64(snap.FullRepaints), 1},
		{"idle", int64(snap.IdleFrames), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if got := snap.AvgFPS(); got != 250 {
		t.Errorf("AvgFPS() = %v, want 250", got)
	}
	if got := snap.AvgCellsPerFrame(); got != 40 {
		t.Errorf("AvgCellsPerFrame() = %v, want 40", got)
	}
}

func TestMetricsEventsAndFaults(t *testing.T) {
	m := NewMetrics()
	m.RecordEvent(true)
	m.RecordEvent(false)
	m.RecordFault()

	snap := m.Snapshot()
	if snap.EventCount != 2 || snap.EventsHandled != 1 {
		t.Errorf("events = %d/%d, want 2/1", snap.EventsHandled, snap.EventCount)
	}
	if snap.TaskFaults != 1 {
		t.Errorf("TaskFaults = %d, want 1", snap.TaskFaults)
	}
}
