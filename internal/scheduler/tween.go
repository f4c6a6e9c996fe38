package scheduler

import "time"

type tween struct {
	duration time.Duration
	easing   Easing
	apply    func(float64)
	total    uint64
	step     uint64
}

// Tween returns a task that calls apply once per tick with eased progress
// rising to exactly 1 over duration, then finishes. A cancelled tween stops
// without a final update.
func Tween(duration time.Duration, easing Easing, apply func(progress float64)) Task {
	return &tween{duration: duration, easing: easing, apply: apply}
}

func (t *tween) Step(ctx *Context) Suspend {
	if ctx.Cancelled() {
		return Done()
	}
	if t.total == 0 {
		t.total = Sleep(t.duration).ticksFor(ctx.Interval)
	}
	t.step++
	if t.step >= t.total {
		t.apply(1)
		return Done()
	}
	t.apply(t.easing.Apply(float64(t.step) / float64(t.total)))
	return NextTick()
}
