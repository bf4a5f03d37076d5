package widgets

import (
	"github.com/cindertui/cinder/render"
	"github.com/cindertui/cinder/ui"
)

// SizedBox forces its single child (if any) to an exact width/height,
// or simply reserves that space if it has no child.
type SizedBox struct {
	Width, Height int
	Child         ui.Component
	WidgetKey     ui.Key
}

func (s SizedBox) RuntimeKind() string { return "widgets.SizedBox" }
func (s SizedBox) Key() ui.Key         { return s.WidgetKey }

func (s SizedBox) ChildComponents() []ui.Component {
	if s.Child == nil {
		return nil
	}
	return []ui.Component{s.Child}
}

func (s SizedBox) CreateRenderObject() ui.RenderObject {
	ro := &sizedBoxRenderObject{}
	ro.SetSelf(ro)
	s.applyTo(ro)
	return ro
}

func (s SizedBox) UpdateRenderObject(ro ui.RenderObject) {
	s.applyTo(ro.(*sizedBoxRenderObject))
}

func (s SizedBox) applyTo(ro *sizedBoxRenderObject) {
	ro.width, ro.height = s.Width, s.Height
}

type sizedBoxRenderObject struct {
	ui.BaseRenderObject
	width, height int
	child         ui.RenderObject
}

func (s *sizedBoxRenderObject) SetChildren(children []ui.RenderObject) {
	if len(children) == 0 {
		s.child = nil
		return
	}
	s.child = children[0]
}

func (s *sizedBoxRenderObject) Children() []ui.RenderObject {
	if s.child == nil {
		return nil
	}
	return []ui.RenderObject{s.child}
}

func (s *sizedBoxRenderObject) Layout(constraints ui.Constraints) ui.Size {
	size := constraints.Constrain(ui.Size{Width: s.width, Height: s.height})
	if s.child != nil {
		s.child.Layout(ui.Tight(size))
		s.child.SetParentData(&ui.ParentData{})
	}
	s.SetSize(size)
	return size
}

func (s *sizedBoxRenderObject) Paint(canvas *render.Canvas, offset render.Offset) {
	if s.child != nil {
		s.child.Paint(canvas, offset)
	}
}
