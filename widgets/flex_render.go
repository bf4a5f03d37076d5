package widgets

import (
	"github.com/cindertui/cinder/render"
	"github.com/cindertui/cinder/ui"
)

// flexRenderObject lays out its children along one axis (horizontal for
// Row, vertical for Column) using the two-pass measure-then-position
// algorithm: every child is measured at its natural size first, then
// justify-content distributes main-axis position and align-items
// distributes cross-axis position, with gap added between items.
type flexRenderObject struct {
	ui.BaseRenderObject
	horizontal bool
	justify    JustifyContent
	align      AlignItems
	gap        int
	children   []ui.RenderObject
}

func newFlexRenderObject(horizontal bool) *flexRenderObject {
	f := &flexRenderObject{horizontal: horizontal}
	f.SetSelf(f)
	return f
}

func (f *flexRenderObject) SetChildren(children []ui.RenderObject) { f.children = children }

func (f *flexRenderObject) Children() []ui.RenderObject { return f.children }

func (f *flexRenderObject) Layout(constraints ui.Constraints) ui.Size {
	own := constraints.Constrain(ui.Size{
		Width:  boundedOr(constraints.MaxWidth, 0),
		Height: boundedOr(constraints.MaxHeight, 0),
	})

	mainSize, crossSize := f.mainCross(own)

	sizes := make([]ui.Size, len(f.children))
	for i, child := range f.children {
		childConstraints := f.childConstraints(crossSize)
		sizes[i] = child.Layout(childConstraints)
	}

	mainPositions := f.mainAxisPositions(sizes, mainSize)
	crossPositions := f.crossAxisPositions(sizes, crossSize)

	for i, child := range f.children {
		var x, y int
		if f.horizontal {
			x, y = mainPositions[i], crossPositions[i]
		} else {
			x, y = crossPositions[i], mainPositions[i]
		}
		child.SetParentData(&ui.ParentData{Offset: render.Offset{X: x, Y: y}})
	}

	f.SetSize(own)
	return own
}

// childConstraints bounds the cross axis to crossSize (tight when
// align-items is Stretch, loose otherwise) and leaves the main axis
// unbounded so each child reports its natural extent.
func (f *flexRenderObject) childConstraints(crossSize int) ui.Constraints {
	tightCross := f.align == AlignStretch

	if f.horizontal {
		c := ui.Constraints{MinWidth: 0, MaxWidth: ui.Unbounded, MinHeight: 0, MaxHeight: crossSize}
		if tightCross {
			c.MinHeight = crossSize
		}
		return c
	}
	c := ui.Constraints{MinWidth: 0, MaxWidth: crossSize, MinHeight: 0, MaxHeight: ui.Unbounded}
	if tightCross {
		c.MinWidth = crossSize
	}
	return c
}

func (f *flexRenderObject) mainCross(size ui.Size) (main, cross int) {
	if f.horizontal {
		return size.Width, size.Height
	}
	return size.Height, size.Width
}

func (f *flexRenderObject) itemMain(s ui.Size) int {
	if f.horizontal {
		return s.Width
	}
	return s.Height
}

func (f *flexRenderObject) itemCross(s ui.Size) int {
	if f.horizontal {
		return s.Height
	}
	return s.Width
}

// mainAxisPositions implements justify-content: start packs from zero,
// end packs against the far edge, center splits the remaining space in
// half, space-between spreads it evenly across the gaps.
func (f *flexRenderObject) mainAxisPositions(sizes []ui.Size, mainSize int) []int {
	positions := make([]int, len(sizes))
	if len(sizes) == 0 {
		return positions
	}

	total := f.gap * (len(sizes) - 1)
	for _, s := range sizes {
		total += f.itemMain(s)
	}
	remaining := mainSize - total
	if remaining < 0 {
		remaining = 0
	}

	switch f.justify {
	case JustifyEnd:
		pos := remaining
		for i, s := range sizes {
			positions[i] = pos
			pos += f.itemMain(s) + f.gap
		}
	case JustifyCenter:
		pos := remaining / 2
		for i, s := range sizes {
			positions[i] = pos
			pos += f.itemMain(s) + f.gap
		}
	case JustifySpaceBetween:
		if len(sizes) == 1 {
			positions[0] = 0
			break
		}
		extra := remaining / (len(sizes) - 1)
		pos := 0
		for i, s := range sizes {
			positions[i] = pos
			pos += f.itemMain(s) + f.gap + extra
		}
	default: // JustifyStart
		pos := 0
		for i, s := range sizes {
			positions[i] = pos
			pos += f.itemMain(s) + f.gap
		}
	}

	return positions
}

// crossAxisPositions implements align-items: start/stretch both anchor at
// zero (stretch already forced the child's cross extent to fill crossSize
// during measurement), end anchors against the far edge, center splits
// the remainder.
func (f *flexRenderObject) crossAxisPositions(sizes []ui.Size, crossSize int) []int {
	positions := make([]int, len(sizes))
	for i, s := range sizes {
		itemCross := f.itemCross(s)
		switch f.align {
		case AlignEnd:
			positions[i] = crossSize - itemCross
		case AlignCenter:
			positions[i] = (crossSize - itemCross) / 2
		default: // AlignStart, AlignStretch
			positions[i] = 0
		}
		if positions[i] < 0 {
			positions[i] = 0
		}
	}
	return positions
}

func (f *flexRenderObject) Paint(canvas *render.Canvas, offset render.Offset) {
	for _, child := range f.children {
		childOffset := offset
		if pd := child.ParentData(); pd != nil {
			childOffset = render.Offset{X: offset.X + pd.Offset.X, Y: offset.Y + pd.Offset.Y}
		}
		child.Paint(canvas, childOffset)
	}
}

func boundedOr(v, fallback int) int {
	if v == ui.Unbounded {
		return fallback
	}
	return v
}
