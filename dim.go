package vista

import "fmt"

// Dim describes a length along one axis, resolved lazily against a
// container's extent. Like Pos, implementations are immutable values the
// layout engine can introspect for view references.
type Dim interface {
	// Resolve computes the length inside a container of the given extent.
	Resolve(extent int) int

	// refs appends every view whose frame this expression reads.
	refs(dst []*View) []*View

	fmt.Stringer
}

type dimAbsolute int

// Sized returns a Dim fixed at the given number of cells.
func Sized(n int) Dim { return dimAbsolute(n) }

func (d dimAbsolute) Resolve(extent int) int   { return int(d) }
func (d dimAbsolute) refs(dst []*View) []*View { return dst }
func (d dimAbsolute) String() string           { return fmt.Sprintf("Sized(%d)", int(d)) }

type dimPercent float64

// PercentDim returns a Dim at the given percentage of the container extent.
// Panics with *InvalidPercentError if the fraction is outside [0, 100].
func PercentDim(fraction float64) Dim {
	if fraction < 0 || fraction > 100 {
		panic(&InvalidPercentError{Fraction: fraction})
	}
	return dimPercent(fraction)
}

func (d dimPercent) Resolve(extent int) int {
	return int(float64(extent) * float64(d) / 100)
}
func (d dimPercent) refs(dst []*View) []*View { return dst }
func (d dimPercent) String() string           { return fmt.Sprintf("PercentDim(%v)", float64(d)) }

type dimFill int

// Fill returns a Dim spanning the container extent minus the given margin.
func Fill(margin int) Dim { return dimFill(margin) }

func (d dimFill) Resolve(extent int) int   { return extent - int(d) }
func (d dimFill) refs(dst []*View) []*View { return dst }
func (d dimFill) String() string           { return fmt.Sprintf("Fill(%d)", int(d)) }

type dimAxis uint8

const (
	axisWidth dimAxis = iota
	axisHeight
)

type dimView struct {
	view *View
	axis dimAxis
}

// WidthOf returns a Dim equal to another view's resolved frame width.
func WidthOf(v *View) Dim { return dimView{view: v, axis: axisWidth} }

// HeightOf returns a Dim equal to another view's resolved frame height.
func HeightOf(v *View) Dim { return dimView{view: v, axis: axisHeight} }

func (d dimView) Resolve(extent int) int {
	if d.axis == axisWidth {
		return d.view.frame.Width
	}
	return d.view.frame.Height
}

func (d dimView) refs(dst []*View) []*View { return append(dst, d.view) }

func (d dimView) String() string {
	if d.axis == axisWidth {
		return fmt.Sprintf("WidthOf(%s)", viewLabel(d.view))
	}
	return fmt.Sprintf("HeightOf(%s)", viewLabel(d.view))
}

type dimCombine struct {
	op   posOp
	l, r Dim
}

// AddDim returns a Dim that sums two length expressions.
func AddDim(l, r Dim) Dim { return dimCombine{op: posAdd, l: l, r: r} }

// SubDim returns a Dim that subtracts the right expression from the left.
func SubDim(l, r Dim) Dim { return dimCombine{op: posSub, l: l, r: r} }

func (d dimCombine) Resolve(extent int) int {
	lv := d.l.Resolve(extent)
	rv := d.r.Resolve(extent)
	if d.op == posSub {
		return lv - rv
	}
	return lv + rv
}

func (d dimCombine) refs(dst []*View) []*View {
	dst = d.l.refs(dst)
	return d.r.refs(dst)
}

func (d dimCombine) String() string {
	op := "+"
	if d.op == posSub {
		op = "-"
	}
	return fmt.Sprintf("(%s %s %s)", d.l, op, d.r)
}
