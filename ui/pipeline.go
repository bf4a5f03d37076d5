package ui

import (
	"github.com/cindertui/cinder/render"
	"github.com/cindertui/cinder/terminal"
)

// PipelineOwner tracks the render objects that need relayout or repaint
// and flushes them in the order the frame scheduler requires: layout
// completes entirely before paint begins.
type PipelineOwner struct {
	layoutDirty []RenderObject
	paintDirty  []RenderObject

	// OnNeedsVisualUpdate is called whenever a node is added to either
	// dirty set, so the binding's scheduler can coalesce a frame request.
	OnNeedsVisualUpdate func()

	// Capabilities is handed to every BuildContext derived from this
	// owner, so a widget can decide whether to reach for a truecolor
	// style without probing the environment itself.
	Capabilities terminal.Capabilities
}

// NewPipelineOwner returns an empty PipelineOwner.
func NewPipelineOwner() *PipelineOwner {
	return &PipelineOwner{}
}

func (p *PipelineOwner) requestLayout(ro RenderObject) {
	p.layoutDirty = append(p.layoutDirty, ro)
	if p.OnNeedsVisualUpdate != nil {
		p.OnNeedsVisualUpdate()
	}
}

func (p *PipelineOwner) requestPaint(ro RenderObject) {
	p.paintDirty = append(p.paintDirty, ro)
	if p.OnNeedsVisualUpdate != nil {
		p.OnNeedsVisualUpdate()
	}
}

// FlushLayout lays out the whole tree from root under rootConstraints and
// then clears the dirty-layout set. Individual dirty nodes are not laid
// out on their own; nodes queued during the flush are cleared with the
// rest rather than deferred to the next frame.
func (p *PipelineOwner) FlushLayout(rootConstraints Constraints, root RenderObject) {
	if root != nil {
		root.Layout(rootConstraints)
	}
	p.layoutDirty = p.layoutDirty[:0]
}

// FlushPaint paints the whole tree from root into canvas at the zero
// offset and then clears the dirty-paint set. Individual dirty nodes are
// not painted on their own.
func (p *PipelineOwner) FlushPaint(canvas *render.Canvas, root RenderObject) {
	if root != nil {
		root.Paint(canvas, render.Offset{})
	}
	p.paintDirty = p.paintDirty[:0]
}

// HasDirtyLayout reports whether any node is queued for relayout.
func (p *PipelineOwner) HasDirtyLayout() bool { return len(p.layoutDirty) > 0 }

// HasDirtyPaint reports whether any node is queued for repaint.
func (p *PipelineOwner) HasDirtyPaint() bool { return len(p.paintDirty) > 0 }
