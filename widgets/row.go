package widgets

import "github.com/cindertui/cinder/ui"

// Row lays out its children left-to-right along the horizontal axis.
type Row struct {
	Children  []ui.Component
	Justify   JustifyContent
	Align     AlignItems
	Gap       int
	WidgetKey ui.Key
}

func (r Row) RuntimeKind() string { return "widgets.Row" }
func (r Row) Key() ui.Key         { return r.WidgetKey }

func (r Row) CreateRenderObject() ui.RenderObject {
	ro := newFlexRenderObject(true)
	r.applyTo(ro)
	return ro
}

func (r Row) UpdateRenderObject(ro ui.RenderObject) {
	r.applyTo(ro.(*flexRenderObject))
}

func (r Row) applyTo(ro *flexRenderObject) {
	ro.justify = r.Justify
	ro.align = r.Align
	ro.gap = r.Gap
}

func (r Row) ChildComponents() []ui.Component { return r.Children }
