// Package core provides the value types shared by every stage of the
// rendering pipeline: colors, color pairs, cells and screen geometry.
//
// The package has no dependencies on the widget tree so that canvases,
// frames, the differ and the backends can all speak the same types
// without import cycles.
package core
