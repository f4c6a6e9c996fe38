// Package scheduler drives per-widget update tasks on a single tick clock.
//
// Each tick the scheduler resumes every ready task, in spawn order, until
// it reaches its next suspension point. Only after all ready tasks have
// suspended does the render hook run, so a rendered frame always reflects
// every mutation made during that tick.
//
// A task suspends by returning a Suspend value:
//
//	scheduler.NextTick()      // resume on the next tick
//	scheduler.Wait(5)         // resume five ticks from now
//	scheduler.Sleep(d)        // resume after d, rounded up to whole ticks
//	scheduler.Done()          // finished
//	scheduler.Fail(err)       // finished with an error, reported as a fault
//
// Straight-line task bodies can be written with Routine, which runs the
// body on its own goroutine but hands control back and forth so that only
// one body ever runs at a time and never concurrently with the loop.
//
// Cancellation is cooperative. A cancelled task is resumed exactly once
// more with Context.Cancelled reporting true, then dropped. Panics and
// errors are isolated to the failing task and reported as *TaskFault.
package scheduler
