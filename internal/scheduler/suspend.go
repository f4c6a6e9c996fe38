package scheduler

import "time"

type suspendKind uint8

const (
	suspendTicks suspendKind = iota
	suspendSleep
	suspendDone
	suspendFail
)

// Suspend tells the scheduler when to resume a task.
type Suspend struct {
	kind  suspendKind
	ticks int
	dur   time.Duration
	err   error
}

// NextTick resumes the task on the next tick.
func NextTick() Suspend {
	return Suspend{kind: suspendTicks, ticks: 1}
}

// Wait resumes the task n ticks from now. Values below 1 mean 1.
func Wait(n int) Suspend {
	return Suspend{kind: suspendTicks, ticks: max(n, 1)}
}

// Sleep resumes the task once d has elapsed on the tick clock. The
// duration is rounded up to whole ticks, with a minimum of one.
func Sleep(d time.Duration) Suspend {
	return Suspend{kind: suspendSleep, dur: d}
}

// Done finishes the task.
func Done() Suspend {
	return Suspend{kind: suspendDone}
}

// Fail finishes the task and reports err as a fault. A nil err is
// equivalent to Done.
func Fail(err error) Suspend {
	if err == nil {
		return Done()
	}
	return Suspend{kind: suspendFail, err: err}
}

// Finished reports whether the task will not be resumed.
func (s Suspend) Finished() bool {
	return s.kind == suspendDone || s.kind == suspendFail
}

// ticksFor converts a suspension into a tick delay at the given interval.
func (s Suspend) ticksFor(interval time.Duration) uint64 {
	switch s.kind {
	case suspendTicks:
		return uint64(s.ticks)
	case suspendSleep:
		if s.dur <= 0 || interval <= 0 {
			return 1
		}
		n := (s.dur + interval - 1) / interval
		return uint64(max(n, 1))
	default:
		return 0
	}
}
