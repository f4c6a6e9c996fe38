package script

import (
	"context"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/termweave/internal/layout"
	"github.com/dshills/termweave/internal/renderer/core"
	"github.com/dshills/termweave/internal/scheduler"
	"github.com/dshills/termweave/internal/widget"
)

// Task is a scheduler task driven by a Lua coroutine.
//
// gopher-lua states are not goroutine-safe; a Task must only be stepped by
// the scheduler that owns it.
type Task struct {
	name   string
	owner  *widget.Widget
	L      *lua.LState
	co     *lua.LState
	cancel context.CancelFunc
	update *lua.LFunction
	ctx    *scheduler.Context
	closed bool
}

// NewTask compiles source for the widget w. The returned task owns a Lua
// state that is closed when the task finishes.
func NewTask(w *widget.Widget, name, source string) (*Task, error) {
	if w == nil {
		return nil, ErrNoOwner
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openLibraries(L)

	t := &Task{name: name, owner: w, L: L}
	t.bind()

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, &Error{Name: name, Err: err}
	}
	fn, ok := L.GetGlobal("update").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, &Error{Name: name, Err: ErrNoUpdate}
	}
	t.update = fn
	t.co, t.cancel = L.NewThread()
	return t, nil
}

// openLibraries opens the libraries scripts may use. io, os, debug and
// package stay closed.
func openLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
		{lua.CoroutineLibName, lua.OpenCoroutine},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Name returns the script name.
func (t *Task) Name() string {
	return t.name
}

// Step resumes the coroutine once.
func (t *Task) Step(ctx *scheduler.Context) scheduler.Suspend {
	if t.closed {
		return scheduler.Done()
	}
	if ctx.Cancelled() {
		t.Release()
		return scheduler.Done()
	}

	t.ctx = ctx
	st, err, values := t.L.Resume(t.co, t.update)
	t.ctx = nil

	switch st {
	case lua.ResumeError:
		t.Release()
		return scheduler.Fail(&Error{Name: t.name, Tick: ctx.Tick, Err: err})
	case lua.ResumeOK:
		t.Release()
		return scheduler.Done()
	}

	if len(values) > 0 {
		if n, ok := values[0].(lua.LNumber); ok {
			return scheduler.Wait(int(n))
		}
	}
	return scheduler.NextTick()
}

// Release closes the Lua state.
func (t *Task) Release() {
	if t.closed {
		return
	}
	t.closed = true
	if t.cancel != nil {
		t.cancel()
	}
	t.L.Close()
}

func (t *Task) bind() {
	t.L.SetGlobal("pos", t.L.NewFunction(t.luaPos))
	t.L.SetGlobal("move", t.L.NewFunction(t.luaMove))
	t.L.SetGlobal("size", t.L.NewFunction(t.luaSize))
	t.L.SetGlobal("text", t.L.NewFunction(t.luaText))
	t.L.SetGlobal("tick", t.L.NewFunction(t.luaTick))
}

// pos() -> top, left
func (t *Task) luaPos(L *lua.LState) int {
	b := t.owner.Bounds()
	L.Push(lua.LNumber(b.Top))
	L.Push(lua.LNumber(b.Left))
	return 2
}

// move(top, left)
func (t *Task) luaMove(L *lua.LState) int {
	top := L.CheckInt(1)
	left := L.CheckInt(2)
	if err := t.owner.SetPosSpec(layout.At(top, left)); err != nil {
		L.RaiseError("move: %v", err)
	}
	return 0
}

// size() -> height, width
func (t *Task) luaSize(L *lua.LState) int {
	h, w := t.owner.Size()
	L.Push(lua.LNumber(h))
	L.Push(lua.LNumber(w))
	return 2
}

// text(row, col, s) -> columns written
func (t *Task) luaText(L *lua.LState) int {
	row := L.CheckInt(1)
	col := L.CheckInt(2)
	s := L.CheckString(3)

	c := t.owner.Canvas()
	if c == nil {
		L.Push(lua.LNumber(0))
		return 1
	}
	n := c.SetText(row, col, s, t.owner.Background().Colors, core.AttrNone)
	L.Push(lua.LNumber(n))
	return 1
}

// tick() -> current tick
func (t *Task) luaTick(L *lua.LState) int {
	var n uint64
	if t.ctx != nil {
		n = t.ctx.Tick
	}
	L.Push(lua.LNumber(n))
	return 1
}
