package widget

import "errors"

// Tree mutation errors.
var (
	// ErrAlreadyAttached indicates the child already has a parent.
	ErrAlreadyAttached = errors.New("widget already attached")

	// ErrCycle indicates the child is the parent or one of its ancestors.
	ErrCycle = errors.New("attach would create a cycle")
)
