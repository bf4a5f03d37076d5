package widgets

import "github.com/cindertui/cinder/ui"

// Column lays out its children top-to-bottom along the vertical axis.
type Column struct {
	Children  []ui.Component
	Justify   JustifyContent
	Align     AlignItems
	Gap       int
	WidgetKey ui.Key
}

func (c Column) RuntimeKind() string { return "widgets.Column" }
func (c Column) Key() ui.Key         { return c.WidgetKey }

func (c Column) CreateRenderObject() ui.RenderObject {
	ro := newFlexRenderObject(false)
	c.applyTo(ro)
	return ro
}

func (c Column) UpdateRenderObject(ro ui.RenderObject) {
	c.applyTo(ro.(*flexRenderObject))
}

func (c Column) applyTo(ro *flexRenderObject) {
	ro.justify = c.Justify
	ro.align = c.Align
	ro.gap = c.Gap
}

func (c Column) ChildComponents() []ui.Component { return c.Children }
