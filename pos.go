package vista

import "fmt"

// Pos describes a coordinate along one axis, resolved lazily against a
// container's extent. Expressions are small immutable values rather than
// callbacks so the layout engine can introspect them (see refs) and build a
// dependency graph without evaluating anything.
type Pos interface {
	// Resolve computes the coordinate inside a container of the given
	// extent for a view whose size along the same axis is already known.
	Resolve(extent, size int) int

	// refs appends every view whose frame this expression reads.
	refs(dst []*View) []*View

	fmt.Stringer
}

// Edge identifies one side of a view's frame for relative positioning.
type Edge uint8

const (
	// EdgeLeft is the x-coordinate of the left side.
	EdgeLeft Edge = iota
	// EdgeTop is the y-coordinate of the top side.
	EdgeTop
	// EdgeRight is the x-coordinate one past the right side.
	EdgeRight
	// EdgeBottom is the y-coordinate one past the bottom side.
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	}
	return "edge?"
}

type posAbsolute int

// At returns a Pos fixed at the given coordinate.
func At(n int) Pos { return posAbsolute(n) }

func (p posAbsolute) Resolve(extent, size int) int { return int(p) }
func (p posAbsolute) refs(dst []*View) []*View     { return dst }
func (p posAbsolute) String() string               { return fmt.Sprintf("At(%d)", int(p)) }

type posPercent float64

// PercentPos returns a Pos at the given percentage of the container extent.
// Panics with *InvalidPercentError if the fraction is outside [0, 100].
func PercentPos(fraction float64) Pos {
	if fraction < 0 || fraction > 100 {
		panic(&InvalidPercentError{Fraction: fraction})
	}
	return posPercent(fraction)
}

func (p posPercent) Resolve(extent, size int) int {
	return int(float64(extent) * float64(p) / 100)
}
func (p posPercent) refs(dst []*View) []*View { return dst }
func (p posPercent) String() string           { return fmt.Sprintf("PercentPos(%v)", float64(p)) }

type posCenter struct{}

// Center returns a Pos that centers the view within the container. The
// view's size along the axis is resolved before the position, so a view
// without an explicit dimension centers at zero (its size defaults to the
// full container extent).
func Center() Pos { return posCenter{} }

func (posCenter) Resolve(extent, size int) int { return (extent - size) / 2 }
func (posCenter) refs(dst []*View) []*View     { return dst }
func (posCenter) String() string               { return "Center()" }

type posAnchorEnd int

// AnchorEnd returns a Pos that places the view's far edge the given margin
// from the end of the container.
func AnchorEnd(margin int) Pos { return posAnchorEnd(margin) }

func (p posAnchorEnd) Resolve(extent, size int) int { return extent - size - int(p) }
func (p posAnchorEnd) refs(dst []*View) []*View     { return dst }
func (p posAnchorEnd) String() string               { return fmt.Sprintf("AnchorEnd(%d)", int(p)) }

type posView struct {
	view *View
	edge Edge
}

// Left returns a Pos at the left edge of another view's frame.
// The referenced view must share a superview with the view being positioned
// for the layout engine to order the two; referencing any other view reads
// whatever frame it currently has.
func Left(v *View) Pos { return posView{view: v, edge: EdgeLeft} }

// Top returns a Pos at the top edge of another view's frame.
func Top(v *View) Pos { return posView{view: v, edge: EdgeTop} }

// Right returns a Pos at the right edge (exclusive) of another view's frame.
func Right(v *View) Pos { return posView{view: v, edge: EdgeRight} }

// Bottom returns a Pos at the bottom edge (exclusive) of another view's frame.
func Bottom(v *View) Pos { return posView{view: v, edge: EdgeBottom} }

func (p posView) Resolve(extent, size int) int {
	f := p.view.frame
	switch p.edge {
	case EdgeLeft:
		return f.X
	case EdgeTop:
		return f.Y
	case EdgeRight:
		return f.Right()
	case EdgeBottom:
		return f.Bottom()
	}
	return 0
}

func (p posView) refs(dst []*View) []*View { return append(dst, p.view) }
func (p posView) String() string           { return fmt.Sprintf("%s(%s)", p.edge, viewLabel(p.view)) }

type posOp uint8

const (
	posAdd posOp = iota
	posSub
)

type posCombine struct {
	op   posOp
	l, r Pos
}

// AddPos returns a Pos that sums two position expressions.
func AddPos(l, r Pos) Pos { return posCombine{op: posAdd, l: l, r: r} }

// SubPos returns a Pos that subtracts the right expression from the left.
func SubPos(l, r Pos) Pos { return posCombine{op: posSub, l: l, r: r} }

func (p posCombine) Resolve(extent, size int) int {
	lv := p.l.Resolve(extent, size)
	rv := p.r.Resolve(extent, size)
	if p.op == posSub {
		return lv - rv
	}
	return lv + rv
}

func (p posCombine) refs(dst []*View) []*View {
	dst = p.l.refs(dst)
	return p.r.refs(dst)
}

func (p posCombine) String() string {
	op := "+"
	if p.op == posSub {
		op = "-"
	}
	return fmt.Sprintf("(%s %s %s)", p.l, op, p.r)
}
