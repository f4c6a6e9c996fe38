package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutineStraightLine(t *testing.T) {
	s := New(WithInterval(10 * time.Millisecond))
	var ticks []uint64
	h := s.Spawn(nil, "r", Routine(func(y *Yielder) error {
		ticks = append(ticks, y.Context().Tick)
		if err := y.Next(); err != nil {
			return err
		}
		ticks = append(ticks, y.Context().Tick)
		if err := y.Sleep(30 * time.Millisecond); err != nil {
			return err
		}
		ticks = append(ticks, y.Context().Tick)
		if err := y.Wait(2); err != nil {
			return err
		}
		ticks = append(ticks, y.Context().Tick)
		return nil
	}))

	for i := 0; i < 10; i++ {
		s.Step()
	}
	<-h.Done()
	assert.Nil(t, h.Fault())
	assert.Equal(t, []uint64{1, 2, 5, 7}, ticks)
}

func TestRoutineCancel(t *testing.T) {
	s := New()
	var got error
	h := s.Spawn(nil, "r", Routine(func(y *Yielder) error {
		for {
			if err := y.Next(); err != nil {
				got = err
				return err
			}
		}
	}))

	s.Step()
	s.Step()
	h.Cancel()
	s.Step()

	<-h.Done()
	assert.ErrorIs(t, got, ErrCancelled)
	assert.Nil(t, h.Fault())
	assert.Zero(t, s.Len())
}

func TestRoutineCancelledBeforeStart(t *testing.T) {
	s := New()
	started := false
	h := s.Spawn(nil, "r", Routine(func(y *Yielder) error {
		started = true
		return nil
	}))
	h.Cancel()
	s.Step()
	<-h.Done()
	assert.False(t, started)
}

func TestRoutineErrorAndPanic(t *testing.T) {
	var faults []*TaskFault
	s := New(WithFaultHandler(func(f *TaskFault) { faults = append(faults, f) }))
	bad := errors.New("bad")

	s.Spawn(nil, "err", Routine(func(y *Yielder) error {
		if err := y.Next(); err != nil {
			return err
		}
		return bad
	}))
	s.Spawn(nil, "panic", Routine(func(y *Yielder) error {
		panic("routine boom")
	}))

	s.Step()
	s.Step()

	require.Len(t, faults, 2)
	assert.Equal(t, "panic", faults[0].Task)
	assert.True(t, faults[0].Panicked())
	assert.Equal(t, "routine boom", faults[0].PanicValue)
	assert.Equal(t, "err", faults[1].Task)
	assert.ErrorIs(t, faults[1], bad)
}

func TestRoutineReleasedOnShutdown(t *testing.T) {
	s := New()
	exited := make(chan struct{})
	resumed := false
	s.Spawn(nil, "r", Routine(func(y *Yielder) error {
		defer close(exited)
		err := y.Wait(100)
		resumed = true
		return err
	}))
	s.Step()
	s.Shutdown()

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("routine goroutine did not exit")
	}
	assert.False(t, resumed)
}

func TestRoutineIgnoringCancelStops(t *testing.T) {
	s := New()
	var steps atomic.Int64
	var cancels atomic.Int64
	exited := make(chan struct{})
	h := s.Spawn(nil, "stubborn", Routine(func(y *Yielder) error {
		defer close(exited)
		for {
			if err := y.Next(); errors.Is(err, ErrCancelled) {
				cancels.Add(1)
			}
			steps.Add(1)
		}
	}))

	s.Step()
	s.Step()
	h.Cancel()
	s.Step()
	<-h.Done()
	require.Zero(t, s.Len())

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("routine body kept running after the task was dropped")
	}
	after := steps.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, steps.Load())
	assert.Equal(t, int64(1), cancels.Load())
}
