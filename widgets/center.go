package widgets

import (
	"github.com/cindertui/cinder/render"
	"github.com/cindertui/cinder/ui"
)

// Center sizes itself to fill its constraints and centers its single
// child within that space.
type Center struct {
	Child     ui.Component
	WidgetKey ui.Key
}

func (c Center) RuntimeKind() string { return "widgets.Center" }
func (c Center) Key() ui.Key         { return c.WidgetKey }

func (c Center) ChildComponents() []ui.Component {
	if c.Child == nil {
		return nil
	}
	return []ui.Component{c.Child}
}

func (c Center) CreateRenderObject() ui.RenderObject {
	ro := &centerRenderObject{}
	ro.SetSelf(ro)
	return ro
}

func (c Center) UpdateRenderObject(ui.RenderObject) {}

type centerRenderObject struct {
	ui.BaseRenderObject
	child ui.RenderObject
}

func (c *centerRenderObject) SetChildren(children []ui.RenderObject) {
	if len(children) == 0 {
		c.child = nil
		return
	}
	c.child = children[0]
}

func (c *centerRenderObject) Children() []ui.RenderObject {
	if c.child == nil {
		return nil
	}
	return []ui.RenderObject{c.child}
}

func (c *centerRenderObject) Layout(constraints ui.Constraints) ui.Size {
	own := constraints.Constrain(ui.Size{
		Width:  boundedOr(constraints.MaxWidth, 0),
		Height: boundedOr(constraints.MaxHeight, 0),
	})

	if c.child != nil {
		loose := ui.Constraints{MinWidth: 0, MaxWidth: own.Width, MinHeight: 0, MaxHeight: own.Height}
		childSize := c.child.Layout(loose)
		offset := render.Offset{
			X: max0((own.Width - childSize.Width) / 2),
			Y: max0((own.Height - childSize.Height) / 2),
		}
		c.child.SetParentData(&ui.ParentData{Offset: offset})
	}

	c.SetSize(own)
	return own
}

func (c *centerRenderObject) Paint(canvas *render.Canvas, offset render.Offset) {
	if c.child == nil {
		return
	}
	childOffset := offset
	if pd := c.child.ParentData(); pd != nil {
		childOffset = render.Offset{X: offset.X + pd.Offset.X, Y: offset.Y + pd.Offset.Y}
	}
	c.child.Paint(canvas, childOffset)
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
