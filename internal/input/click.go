package input

import "time"

// Click detection defaults.
const (
	DefaultClickInterval = 500 * time.Millisecond
	DefaultClickDistance = 1
)

// ClickTracker counts consecutive presses for double/triple click detection.
// It is not safe for concurrent use.
type ClickTracker struct {
	maxTime     time.Duration
	maxDistance int

	lastRow, lastCol int
	lastButton       Button
	lastTime         time.Time
	lastCount        int
}

// NewClickTracker creates a tracker. Presses within maxTime of each other
// and within maxDistance cells (Manhattan) continue a sequence.
func NewClickTracker(maxTime time.Duration, maxDistance int) *ClickTracker {
	return &ClickTracker{maxTime: maxTime, maxDistance: maxDistance}
}

// Record registers a press and returns the click count (1, 2, or 3).
// The count wraps back to 1 after 3. A zero timestamp uses time.Now().
func (t *ClickTracker) Record(row, col int, button Button, at time.Time) int {
	if at.IsZero() {
		at = time.Now()
	}

	if t.continues(row, col, button, at) {
		t.lastCount++
		if t.lastCount > 3 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastRow, t.lastCol = row, col
	t.lastButton = button
	t.lastTime = at
	return t.lastCount
}

func (t *ClickTracker) continues(row, col int, button Button, at time.Time) bool {
	if t.lastCount == 0 || button != t.lastButton {
		return false
	}
	// Negative elapsed means clock skew; start over.
	elapsed := at.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}
	return abs(row-t.lastRow)+abs(col-t.lastCol) <= t.maxDistance
}

// Stamp sets Clicks on press events and returns the event.
func (t *ClickTracker) Stamp(ev MouseEvent, at time.Time) MouseEvent {
	if ev.Action == ActionPress && !ev.Button.IsScroll() && ev.Button != ButtonNone {
		ev.Clicks = t.Record(ev.Row, ev.Col, ev.Button, at)
	}
	return ev
}

// Reset clears the tracking state.
func (t *ClickTracker) Reset() {
	*t = ClickTracker{maxTime: t.maxTime, maxDistance: t.maxDistance}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
