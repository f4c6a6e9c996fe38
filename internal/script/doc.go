// Package script runs Lua-scripted widget tasks on the scheduler.
//
// A script is a Lua chunk that defines a global update function. The
// function runs as a coroutine; each coroutine.yield suspends the task
// until a later tick:
//
//	function update()
//	  local top, left = pos()
//	  while left < 40 do
//	    left = left + 1
//	    move(top, left)
//	    coroutine.yield()    -- next tick
//	  end
//	  coroutine.yield(10)    -- ten ticks
//	  text(0, 0, "done")
//	end
//
// The functions bound for the owning widget are pos, move, size, text and
// tick. Only the base, table, string, math and coroutine libraries are
// opened.
package script
