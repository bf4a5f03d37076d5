package widgets

import (
	"github.com/cindertui/cinder/render"
	"github.com/cindertui/cinder/ui"
)

// DecoratedBox paints a background fill and/or a single-line border
// behind its child, then paints the child unchanged on top.
type DecoratedBox struct {
	Child       ui.Component
	Background  render.Style
	Border      bool
	BorderStyle render.Style
	WidgetKey   ui.Key
}

func (d DecoratedBox) RuntimeKind() string { return "widgets.DecoratedBox" }
func (d DecoratedBox) Key() ui.Key         { return d.WidgetKey }

func (d DecoratedBox) ChildComponents() []ui.Component {
	if d.Child == nil {
		return nil
	}
	return []ui.Component{d.Child}
}

func (d DecoratedBox) CreateRenderObject() ui.RenderObject {
	ro := &decoratedBoxRenderObject{}
	ro.SetSelf(ro)
	d.applyTo(ro)
	return ro
}

func (d DecoratedBox) UpdateRenderObject(ro ui.RenderObject) {
	d.applyTo(ro.(*decoratedBoxRenderObject))
}

func (d DecoratedBox) applyTo(ro *decoratedBoxRenderObject) {
	ro.background = d.Background
	ro.border = d.Border
	ro.borderStyle = d.BorderStyle
}

type decoratedBoxRenderObject struct {
	ui.BaseRenderObject
	background  render.Style
	border      bool
	borderStyle render.Style
	child       ui.RenderObject
}

func (d *decoratedBoxRenderObject) SetChildren(children []ui.RenderObject) {
	if len(children) == 0 {
		d.child = nil
		return
	}
	d.child = children[0]
}

func (d *decoratedBoxRenderObject) Children() []ui.RenderObject {
	if d.child == nil {
		return nil
	}
	return []ui.RenderObject{d.child}
}

func (d *decoratedBoxRenderObject) Layout(constraints ui.Constraints) ui.Size {
	own := constraints.Constrain(ui.Size{
		Width:  boundedOr(constraints.MaxWidth, 0),
		Height: boundedOr(constraints.MaxHeight, 0),
	})

	inset := 0
	if d.border {
		inset = 1
	}

	if d.child != nil {
		innerWidth := max0(own.Width - 2*inset)
		innerHeight := max0(own.Height - 2*inset)
		inner := ui.Constraints{MinWidth: 0, MaxWidth: innerWidth, MinHeight: 0, MaxHeight: innerHeight}
		d.child.Layout(inner)
		d.child.SetParentData(&ui.ParentData{Offset: render.Offset{X: inset, Y: inset}})
	}

	d.SetSize(own)
	return own
}

func (d *decoratedBoxRenderObject) Paint(canvas *render.Canvas, offset render.Offset) {
	size := d.Size()
	rect := render.Rect{X: offset.X, Y: offset.Y, Width: size.Width, Height: size.Height}

	if !d.background.IsEmpty() {
		canvas.DrawRect(rect, d.background)
	}
	if d.border {
		canvas.DrawBorder(rect, d.borderStyle)
	}

	if d.child != nil {
		childOffset := offset
		if pd := d.child.ParentData(); pd != nil {
			childOffset = render.Offset{X: offset.X + pd.Offset.X, Y: offset.Y + pd.Offset.Y}
		}
		d.child.Paint(canvas, childOffset)
	}
}
