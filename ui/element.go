package ui

import "github.com/cindertui/cinder/render"

// Element is a mounted instance of a Component: the live, mutable tree
// the binding drives. Inflate/update/unmount is decided by matching an
// existing Element against a new Component by (RuntimeKind, Key).
type Element interface {
	// Component returns the description this element currently mirrors.
	Component() Component
	// Mount attaches the element to owner and performs its first build.
	Mount(owner *PipelineOwner)
	// Update replaces this element's component with newComponent (of the
	// same RuntimeKind and Key) and rebuilds as needed.
	Update(newComponent Component)
	// Unmount recursively deactivates this element's subtree and detaches
	// any render objects it owns.
	Unmount()
	// Children returns this element's child elements, in order.
	Children() []Element
	// NearestRenderObject returns the RenderObject this element
	// contributes to the render tree: itself if it is a
	// RenderObjectElement, otherwise its single child's (Stateless/
	// Stateful elements are transparent to the render tree).
	NearestRenderObject() RenderObject
	// Dirty reports whether this element needs rebuilding.
	Dirty() bool
	// Rebuild reconciles this element's children against a fresh Build
	// (no-op for RenderObjectElement beyond updating its own children).
	Rebuild(owner *PipelineOwner)
	// Identity returns this element's reconciliation identity: its
	// component's Key if one was set, otherwise a synthetic key assigned
	// at inflate time and held for the element's lifetime. Reconciliation
	// (UpdateChild/UpdateChildren) matches on the component's RuntimeKind
	// and Key and does not read Identity.
	Identity() Key
}

// identitySetter lets inflate stamp a freshly constructed element with its
// reconciliation identity without widening the public Element interface
// with a setter.
type identitySetter interface {
	setIdentity(Key)
}

// UpdateChild implements the single-child inflate/update/unmount
// decision: given the existing child element old (nil if none) and a new
// component description newComponent (nil to remove the child), returns
// the element that should occupy that slot after this call.
func UpdateChild(owner *PipelineOwner, old Element, newComponent Component) Element {
	if newComponent == nil {
		if old != nil {
			old.Unmount()
		}
		return nil
	}

	if old == nil {
		return inflate(owner, newComponent)
	}

	if sameIdentity(old.Component(), newComponent) {
		old.Update(newComponent)
		return old
	}

	old.Unmount()
	return inflate(owner, newComponent)
}

// UpdateChildren implements multi-child reconciliation: it matches each
// new component against the old slice by (RuntimeKind, Key) — first
// trying the element at the same index, then falling back to a keyed
// lookup anywhere in old — before inflating a fresh element. Old elements
// that match nothing in newComponents are unmounted.
//
// Unkeyed components that don't line up positionally (the list shifted
// because something earlier was inserted or removed) get a second,
// deferred pass: each is matched to the first not-yet-used unkeyed old
// element of the same RuntimeKind, in encounter order, reusing that element's
// Identity instead of unmounting it and inflating a replacement. Without
// this, an unkeyed child's mounted state (a StatefulElement's State, a
// RenderObject's layout cache) would be dropped and rebuilt from scratch
// every time a sibling ahead of it came or went, even though the child
// itself didn't change.
func UpdateChildren(owner *PipelineOwner, old []Element, newComponents []Component) []Element {
	used := make([]bool, len(old))
	byKey := make(map[any]int, len(old))
	for i, e := range old {
		if k := e.Component().Key(); !k.IsZero() {
			byKey[k.value] = i
		}
	}

	result := make([]Element, len(newComponents))
	var deferred []int
	for i, nc := range newComponents {
		var matchIdx = -1

		if !nc.Key().IsZero() {
			if j, ok := byKey[nc.Key().value]; ok && !used[j] && old[j].Component().RuntimeKind() == nc.RuntimeKind() {
				matchIdx = j
			}
		} else if i < len(old) && !used[i] && sameIdentity(old[i].Component(), nc) {
			matchIdx = i
		}

		switch {
		case matchIdx >= 0:
			used[matchIdx] = true
			old[matchIdx].Update(nc)
			result[i] = old[matchIdx]
		case nc.Key().IsZero():
			deferred = append(deferred, i)
		default:
			result[i] = inflate(owner, nc)
		}
	}

	for _, i := range deferred {
		nc := newComponents[i]
		matchIdx := -1
		for j, e := range old {
			if !used[j] && e.Component().Key().IsZero() && e.Component().RuntimeKind() == nc.RuntimeKind() {
				matchIdx = j
				break
			}
		}
		if matchIdx >= 0 {
			used[matchIdx] = true
			old[matchIdx].Update(nc)
			result[i] = old[matchIdx]
		} else {
			result[i] = inflate(owner, nc)
		}
	}

	for i, e := range old {
		if !used[i] {
			e.Unmount()
		}
	}

	return result
}

func sameIdentity(old Component, nc Component) bool {
	return old.RuntimeKind() == nc.RuntimeKind() && old.Key().Equals(nc.Key())
}

func inflate(owner *PipelineOwner, c Component) Element {
	var e Element
	switch comp := c.(type) {
	case RenderObjectComponent:
		e = newRenderObjectElement(comp)
	case StatefulComponent:
		e = newStatefulElement(comp)
	case StatelessComponent:
		e = newStatelessElement(comp)
	default:
		panic("ui: component implements none of StatelessComponent, StatefulComponent, RenderObjectComponent")
	}
	if is, ok := e.(identitySetter); ok {
		if k := c.Key(); !k.IsZero() {
			is.setIdentity(k)
		} else {
			is.setIdentity(NewAutoKey())
		}
	}
	e.Mount(owner)
	return e
}

// StatelessElement mirrors a StatelessComponent: it has exactly one
// child, produced by Build, and is transparent to the render tree.
type StatelessElement struct {
	component StatelessComponent
	owner     *PipelineOwner
	child     Element
	dirty     bool
	identity  Key
}

func newStatelessElement(c StatelessComponent) *StatelessElement {
	return &StatelessElement{component: c}
}

func (e *StatelessElement) Component() Component { return e.component }
func (e *StatelessElement) Identity() Key        { return e.identity }
func (e *StatelessElement) setIdentity(k Key)    { e.identity = k }

func (e *StatelessElement) Mount(owner *PipelineOwner) {
	e.owner = owner
	e.child = UpdateChild(owner, nil, e.component.Build(&BuildContext{Pipeline: owner, Capabilities: owner.Capabilities}))
	e.dirty = false
}

func (e *StatelessElement) Update(newComponent Component) {
	e.component = newComponent.(StatelessComponent)
	e.markDirty()
}

func (e *StatelessElement) markDirty() {
	e.dirty = true
	if e.owner != nil && e.owner.OnNeedsVisualUpdate != nil {
		e.owner.OnNeedsVisualUpdate()
	}
}

func (e *StatelessElement) Dirty() bool { return e.dirty }

func (e *StatelessElement) Rebuild(owner *PipelineOwner) {
	e.child = UpdateChild(owner, e.child, e.component.Build(&BuildContext{Pipeline: owner, Capabilities: owner.Capabilities}))
	e.dirty = false
}

func (e *StatelessElement) Unmount() {
	if e.child != nil {
		e.child.Unmount()
	}
}

func (e *StatelessElement) Children() []Element {
	if e.child == nil {
		return nil
	}
	return []Element{e.child}
}

func (e *StatelessElement) NearestRenderObject() RenderObject {
	if e.child == nil {
		return nil
	}
	return e.child.NearestRenderObject()
}

// StatefulElement mirrors a StatefulComponent: its State is created once
// and survives Update, which only swaps the component description and
// notifies State.ComponentChanged.
type StatefulElement struct {
	component StatefulComponent
	state     State
	owner     *PipelineOwner
	child     Element
	dirty     bool
	identity  Key
}

func newStatefulElement(c StatefulComponent) *StatefulElement {
	return &StatefulElement{component: c}
}

func (e *StatefulElement) Component() Component { return e.component }
func (e *StatefulElement) Identity() Key        { return e.identity }
func (e *StatefulElement) setIdentity(k Key)    { e.identity = k }

func (e *StatefulElement) Mount(owner *PipelineOwner) {
	e.owner = owner
	e.state = e.component.CreateState()
	e.state.attachElement(e)
	e.child = UpdateChild(owner, nil, e.state.Build(&BuildContext{Pipeline: owner, Capabilities: owner.Capabilities}))
	e.dirty = false
}

func (e *StatefulElement) Update(newComponent Component) {
	old := e.component
	e.component = newComponent.(StatefulComponent)
	e.state.ComponentChanged(old, e.component)
	e.markDirty()
}

func (e *StatefulElement) markDirty() {
	e.dirty = true
	if e.owner != nil && e.owner.OnNeedsVisualUpdate != nil {
		e.owner.OnNeedsVisualUpdate()
	}
}

func (e *StatefulElement) Dirty() bool { return e.dirty }

func (e *StatefulElement) Rebuild(owner *PipelineOwner) {
	e.child = UpdateChild(owner, e.child, e.state.Build(&BuildContext{Pipeline: owner, Capabilities: owner.Capabilities}))
	e.dirty = false
}

func (e *StatefulElement) Unmount() {
	if e.child != nil {
		e.child.Unmount()
	}
}

func (e *StatefulElement) Children() []Element {
	if e.child == nil {
		return nil
	}
	return []Element{e.child}
}

func (e *StatefulElement) NearestRenderObject() RenderObject {
	if e.child == nil {
		return nil
	}
	return e.child.NearestRenderObject()
}

// RenderObjectElement mirrors a RenderObjectComponent: it owns a
// RenderObject, attaches it to the pipeline owner on mount and detaches on
// unmount, and reconciles one child element per child component.
type RenderObjectElement struct {
	component RenderObjectComponent
	ro        RenderObject
	owner     *PipelineOwner
	children  []Element
	dirty     bool
	identity  Key
}

func newRenderObjectElement(c RenderObjectComponent) *RenderObjectElement {
	return &RenderObjectElement{component: c}
}

func (e *RenderObjectElement) Component() Component { return e.component }
func (e *RenderObjectElement) Identity() Key        { return e.identity }
func (e *RenderObjectElement) setIdentity(k Key)    { e.identity = k }

func (e *RenderObjectElement) Mount(owner *PipelineOwner) {
	e.owner = owner
	e.ro = e.component.CreateRenderObject()
	e.ro.Attach(owner)
	e.reconcileChildren(owner)
	e.syncRenderTree()
	e.dirty = false
}

func (e *RenderObjectElement) Update(newComponent Component) {
	e.component = newComponent.(RenderObjectComponent)
	e.component.UpdateRenderObject(e.ro)
	e.reconcileChildren(e.owner)
	e.syncRenderTree()
	e.ro.MarkNeedsLayout()
	e.dirty = false
}

func (e *RenderObjectElement) markDirty() {
	e.dirty = true
}

func (e *RenderObjectElement) Dirty() bool { return e.dirty }

func (e *RenderObjectElement) Rebuild(owner *PipelineOwner) {
	e.reconcileChildren(owner)
	e.syncRenderTree()
	e.ro.MarkNeedsLayout()
	e.dirty = false
}

func (e *RenderObjectElement) reconcileChildren(owner *PipelineOwner) {
	e.children = UpdateChildren(owner, e.children, e.component.ChildComponents())
}

// syncRenderTree pushes this element's children's render objects onto its
// own RenderObject, for widgets whose render object holds its children
// via a ChildSetter.
func (e *RenderObjectElement) syncRenderTree() {
	setter, ok := e.ro.(ChildSetter)
	if !ok {
		return
	}
	ros := make([]RenderObject, 0, len(e.children))
	for _, c := range e.children {
		if ro := c.NearestRenderObject(); ro != nil {
			ros = append(ros, ro)
		}
	}
	setter.SetChildren(ros)
}

func (e *RenderObjectElement) Unmount() {
	for _, c := range e.children {
		c.Unmount()
	}
	e.ro.Detach()
}

func (e *RenderObjectElement) Children() []Element { return e.children }

func (e *RenderObjectElement) NearestRenderObject() RenderObject { return e.ro }

// RenderObject returns the render object this element owns directly.
func (e *RenderObjectElement) RenderObject() RenderObject { return e.ro }

// ChildSetter is implemented by RenderObject types whose children are
// supplied by the element tree rather than fixed at construction (Row,
// Column, Container, ...).
type ChildSetter interface {
	SetChildren(children []RenderObject)
}

// offsetOf is a small helper used by Paint implementations summing an
// offset with a child's parent-data offset.
func offsetOf(base render.Offset, pd *ParentData) render.Offset {
	if pd == nil {
		return base
	}
	return render.Offset{X: base.X + pd.Offset.X, Y: base.Y + pd.Offset.Y}
}
