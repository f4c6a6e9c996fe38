package scheduler

import (
	"context"
	"time"

	"github.com/dshills/termweave/internal/input"
)

// Hooks are the loop's collaborators.
type Hooks struct {
	// Deliver routes an input event. Called between ticks, never while a
	// task is running.
	Deliver func(input.Event)
	// Render composes and presents a frame after every tick.
	Render func()
}

// Run drives the loop until ctx is done: queued posts and input events are
// handled as they arrive and every interval the scheduler steps once and
// renders. A closed events channel is ignored.
func (s *Scheduler) Run(ctx context.Context, events <-chan input.Event, hooks Hooks) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.intervalChanged = false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if hooks.Deliver != nil {
				hooks.Deliver(ev)
			}

		case <-s.wakeup:
			s.Drain()

		case <-ticker.C:
			s.Drain()
			s.Step()
			if hooks.Render != nil {
				hooks.Render()
			}
		}

		if s.intervalChanged {
			ticker.Reset(s.interval)
			s.intervalChanged = false
		}
	}
}
