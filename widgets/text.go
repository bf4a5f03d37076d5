package widgets

import (
	"strings"

	"github.com/cindertui/cinder/render"
	"github.com/cindertui/cinder/ui"
	"github.com/cindertui/cinder/unicodewidth"
)

// Text paints a single line of styled text, clipped to (and measured as)
// its display width.
type Text struct {
	Content   string
	Style     render.Style
	WidgetKey ui.Key
}

func (t Text) RuntimeKind() string             { return "widgets.Text" }
func (t Text) Key() ui.Key                     { return t.WidgetKey }
func (t Text) ChildComponents() []ui.Component { return nil }

func (t Text) CreateRenderObject() ui.RenderObject {
	ro := &textRenderObject{}
	ro.SetSelf(ro)
	t.applyTo(ro)
	return ro
}

func (t Text) UpdateRenderObject(ro ui.RenderObject) {
	t.applyTo(ro.(*textRenderObject))
}

func (t Text) applyTo(ro *textRenderObject) {
	ro.content = t.Content
	ro.style = t.Style
}

type textRenderObject struct {
	ui.BaseRenderObject
	content string
	style   render.Style
}

func (t *textRenderObject) Children() []ui.RenderObject { return nil }

func (t *textRenderObject) Layout(constraints ui.Constraints) ui.Size {
	width := unicodewidth.StringWidth(t.content)
	height := 1
	if t.content == "" {
		height = 1
	}
	if strings.Contains(t.content, "\n") {
		lines := strings.Split(t.content, "\n")
		height = len(lines)
		width = 0
		for _, line := range lines {
			if w := unicodewidth.StringWidth(line); w > width {
				width = w
			}
		}
	}
	size := constraints.Constrain(ui.Size{Width: width, Height: height})
	t.SetSize(size)
	return size
}

func (t *textRenderObject) Paint(canvas *render.Canvas, offset render.Offset) {
	lines := strings.Split(t.content, "\n")
	for i, line := range lines {
		canvas.DrawText(render.Offset{X: offset.X, Y: offset.Y + i}, line, t.style)
	}
}
