package widgets

import (
	"github.com/cindertui/cinder/render"
	"github.com/cindertui/cinder/ui"
)

// EdgeInsets is padding/margin on each side, in cells.
type EdgeInsets struct {
	Top, Right, Bottom, Left int
}

// All returns an EdgeInsets with the same inset on all four sides.
func All(n int) EdgeInsets { return EdgeInsets{Top: n, Right: n, Bottom: n, Left: n} }

// Container applies padding around a single child and otherwise expands
// to fill its constraints.
type Container struct {
	Child     ui.Component
	Padding   EdgeInsets
	WidgetKey ui.Key
}

func (c Container) RuntimeKind() string { return "widgets.Container" }
func (c Container) Key() ui.Key         { return c.WidgetKey }

func (c Container) ChildComponents() []ui.Component {
	if c.Child == nil {
		return nil
	}
	return []ui.Component{c.Child}
}

func (c Container) CreateRenderObject() ui.RenderObject {
	ro := &containerRenderObject{}
	ro.SetSelf(ro)
	ro.padding = c.Padding
	return ro
}

func (c Container) UpdateRenderObject(ro ui.RenderObject) {
	ro.(*containerRenderObject).padding = c.Padding
}

type containerRenderObject struct {
	ui.BaseRenderObject
	padding EdgeInsets
	child   ui.RenderObject
}

func (c *containerRenderObject) SetChildren(children []ui.RenderObject) {
	if len(children) == 0 {
		c.child = nil
		return
	}
	c.child = children[0]
}

func (c *containerRenderObject) Children() []ui.RenderObject {
	if c.child == nil {
		return nil
	}
	return []ui.RenderObject{c.child}
}

func (c *containerRenderObject) Layout(constraints ui.Constraints) ui.Size {
	own := constraints.Constrain(ui.Size{
		Width:  boundedOr(constraints.MaxWidth, 0),
		Height: boundedOr(constraints.MaxHeight, 0),
	})

	if c.child != nil {
		innerWidth := max0(own.Width - c.padding.Left - c.padding.Right)
		innerHeight := max0(own.Height - c.padding.Top - c.padding.Bottom)
		inner := ui.Constraints{MinWidth: 0, MaxWidth: innerWidth, MinHeight: 0, MaxHeight: innerHeight}
		c.child.Layout(inner)
		c.child.SetParentData(&ui.ParentData{Offset: render.Offset{X: c.padding.Left, Y: c.padding.Top}})
	}

	c.SetSize(own)
	return own
}

func (c *containerRenderObject) Paint(canvas *render.Canvas, offset render.Offset) {
	if c.child == nil {
		return
	}
	childOffset := offset
	if pd := c.child.ParentData(); pd != nil {
		childOffset = render.Offset{X: offset.X + pd.Offset.X, Y: offset.Y + pd.Offset.Y}
	}
	c.child.Paint(canvas, childOffset)
}
