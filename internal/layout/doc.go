// Package layout resolves widget geometry from absolute or hinted
// specifications.
//
// A hint is a fraction of the parent's resolved dimension. Size hints scale
// directly; position hints name a target point inside the parent which the
// widget's Anchor is aligned to. Hints outside [0, 1] are legal and place
// the widget partly or wholly outside its parent.
//
// Resolution is a pure function of a widget's own specs and its parent's
// last resolved size:
//
//	rect, err := layout.Resolve(size, pos, parentHeight, parentWidth)
package layout
