package ui

import "github.com/cindertui/cinder/render"

// ParentData is state a parent attaches to a child render object, notably
// the child's paint offset relative to the parent. Concrete render objects
// may embed this to track more (flex factors, alignment, etc.).
type ParentData struct {
	Offset render.Offset
}

// RenderObject is a node in the render tree: it measures itself given
// Constraints and paints itself onto a Canvas at an offset.
//
// Layout contract: Layout returns a Size satisfying the given Constraints.
// The caller (parent) assigns the returned size and sets the child's
// ParentData.Offset before calling FlushPaint.
//
// Paint contract: Paint draws into canvas at offset, then calls
// child.Paint(canvas, offset + child's ParentData.Offset) for each child,
// in child order.
type RenderObject interface {
	// Layout computes this object's size under constraints, recursively
	// laying out children as needed.
	Layout(constraints Constraints) Size

	// Paint draws this object (and its children) into canvas at offset.
	Paint(canvas *render.Canvas, offset render.Offset)

	// Children returns this object's render-tree children, in paint order.
	Children() []RenderObject

	// Size returns the size computed by the most recent Layout call.
	Size() Size

	// ParentData returns the data this object's parent has attached to it.
	ParentData() *ParentData
	// SetParentData installs parent data on this object (called by the
	// parent during its own Layout).
	SetParentData(*ParentData)

	// IsRelayoutBoundary reports whether dirty-layout propagation should
	// stop at this node: true when its constraints are tight, or when it
	// does not depend on a child's size to determine its own.
	IsRelayoutBoundary() bool

	// MarkNeedsLayout notifies the owning PipelineOwner (if attached)
	// that this subtree needs relayout.
	MarkNeedsLayout()
	// MarkNeedsPaint notifies the owning PipelineOwner (if attached)
	// that this subtree needs repaint.
	MarkNeedsPaint()

	// Attach registers this object (and its children) with owner so
	// MarkNeedsLayout/MarkNeedsPaint have somewhere to report to.
	Attach(owner *PipelineOwner)
	// Detach unregisters this object from its owner.
	Detach()
}

// BaseRenderObject gives a concrete RenderObject its Attach/Detach and
// dirty-marking plumbing; embed it and implement Layout/Paint/Children.
type BaseRenderObject struct {
	owner      *PipelineOwner
	parentData *ParentData
	size       Size
	selfRef    RenderObject
}

// Owner returns the pipeline owner this object is attached to, nil if none.
func (b *BaseRenderObject) Owner() *PipelineOwner { return b.owner }

// Size returns the size computed by the most recent Layout call.
func (b *BaseRenderObject) Size() Size { return b.size }

// SetSize records the size computed by Layout; embedding types call this
// at the end of their own Layout implementation.
func (b *BaseRenderObject) SetSize(s Size) { b.size = s }

func (b *BaseRenderObject) ParentData() *ParentData { return b.parentData }

func (b *BaseRenderObject) SetParentData(pd *ParentData) { b.parentData = pd }

// IsRelayoutBoundary defaults to false: a relayout of this node is assumed
// to require relaying out its parent too. Embedding types that are laid
// out under tight constraints, or whose size does not depend on a child's
// measured size, may override this to true.
func (b *BaseRenderObject) IsRelayoutBoundary() bool { return false }

func (b *BaseRenderObject) MarkNeedsLayout() {
	if b.owner != nil {
		b.owner.requestLayout(b.self())
	}
}

func (b *BaseRenderObject) MarkNeedsPaint() {
	if b.owner != nil {
		b.owner.requestPaint(b.self())
	}
}

// self returns the concrete RenderObject embedding this BaseRenderObject,
// so the owner's dirty sets hold the real node rather than the base.
func (b *BaseRenderObject) self() RenderObject {
	return b.selfRef
}

// SetSelf records the concrete RenderObject that embeds this
// BaseRenderObject, so MarkNeedsLayout/MarkNeedsPaint and Attach register
// the right value with the pipeline owner.
func (b *BaseRenderObject) SetSelf(ro RenderObject) { b.selfRef = ro }

func (b *BaseRenderObject) Attach(owner *PipelineOwner) {
	b.owner = owner
	if b.selfRef != nil {
		for _, child := range b.selfRef.Children() {
			child.Attach(owner)
		}
	}
}

func (b *BaseRenderObject) Detach() {
	if b.selfRef != nil {
		for _, child := range b.selfRef.Children() {
			child.Detach()
		}
	}
	b.owner = nil
}
