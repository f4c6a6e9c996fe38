// Package widget implements the retained widget tree.
//
// Each widget owns its children in paint order (later children are drawn on
// top) and holds a non-owning reference to its parent. Geometry is resolved
// through the layout package whenever a widget's own spec changes or its
// parent's resolved size changes; resolution always runs parent before
// children and only descends when a widget's size actually changed.
//
// Content is produced by a Painter, run lazily before composition whenever
// a widget is invalidated. Widgets without a painter keep whatever was last
// written to their canvas, which lets tasks draw directly.
//
// The tree is not safe for concurrent use. All mutation must happen on the
// scheduler's loop.
package widget
