package scheduler

import (
	"errors"
	"runtime"
	"runtime/debug"
	"sync"
	"time"
)

// Yielder is handed to a routine body to suspend it.
type Yielder struct {
	in   chan *Context
	out  chan Suspend
	quit chan struct{}
	ctx  *Context
}

// Context returns the context of the current resumption.
func (y *Yielder) Context() *Context {
	return y.ctx
}

// Next suspends until the next tick.
func (y *Yielder) Next() error {
	return y.yield(NextTick())
}

// Wait suspends for n ticks.
func (y *Yielder) Wait(n int) error {
	return y.yield(Wait(n))
}

// Sleep suspends for d on the tick clock.
func (y *Yielder) Sleep(d time.Duration) error {
	return y.yield(Sleep(d))
}

// yield hands control back to the scheduler and blocks until resumed. It
// returns ErrCancelled on the final resumption of a cancelled task; the
// body should then return promptly. Once the task has been released the
// goroutine exits from inside yield, running only the body's deferred calls.
func (y *Yielder) yield(s Suspend) error {
	select {
	case y.out <- s:
	case <-y.quit:
		runtime.Goexit()
	}
	select {
	case ctx := <-y.in:
		y.ctx = ctx
		if ctx.Cancelled() {
			return ErrCancelled
		}
		return nil
	case <-y.quit:
		runtime.Goexit()
	}
	return nil
}

type routine struct {
	body    func(*Yielder) error
	y       *Yielder
	once    sync.Once
	started bool
}

// Routine turns a straight-line body into a Task. The body runs on its own
// goroutine, but control is handed over explicitly so it never runs at the
// same time as the loop or another task. Returning nil or ErrCancelled
// finishes the task; any other error is reported as a fault, as is a panic.
func Routine(body func(y *Yielder) error) Task {
	return &routine{body: body}
}

func (r *routine) Step(ctx *Context) Suspend {
	if !r.started {
		if ctx.Cancelled() {
			return Done()
		}
		r.started = true
		r.y = &Yielder{
			in:   make(chan *Context),
			out:  make(chan Suspend),
			quit: make(chan struct{}),
		}
		go r.run()
	}
	r.y.in <- ctx
	return <-r.y.out
}

func (r *routine) run() {
	y := r.y
	select {
	case y.ctx = <-y.in:
	case <-y.quit:
		return
	}

	result := func() (s Suspend) {
		defer func() {
			if p := recover(); p != nil {
				s = Fail(&panicError{value: p, stack: debug.Stack()})
			}
		}()
		err := r.body(y)
		if err == nil || errors.Is(err, ErrCancelled) {
			return Done()
		}
		return Fail(err)
	}()

	select {
	case y.out <- result:
	case <-y.quit:
	}
}

func (r *routine) Release() {
	if r.y != nil {
		r.once.Do(func() { close(r.y.quit) })
	}
}
