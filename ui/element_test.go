package ui

import (
	"testing"

	"github.com/cindertui/cinder/render"
)

// leafRenderObject is a minimal RenderObject for tests: it reports a fixed
// size and paints nothing.
type leafRenderObject struct {
	BaseRenderObject
	tag string
}

func newLeafRenderObject(tag string) *leafRenderObject {
	l := &leafRenderObject{tag: tag}
	l.SetSelf(l)
	return l
}

func (l *leafRenderObject) Layout(c Constraints) Size {
	s := c.Constrain(Size{Width: 1, Height: 1})
	l.SetSize(s)
	return s
}

func (l *leafRenderObject) Paint(canvas *render.Canvas, offset render.Offset) {}

func (l *leafRenderObject) Children() []RenderObject { return nil }

// leafComponent is a RenderObjectComponent wrapping a tag used for leaf
// render objects in tests.
type leafComponent struct {
	tag string
	key Key
}

func (c leafComponent) RuntimeKind() string { return "leaf" }
func (c leafComponent) Key() Key            { return c.key }
func (c leafComponent) CreateRenderObject() RenderObject {
	return newLeafRenderObject(c.tag)
}
func (c leafComponent) UpdateRenderObject(ro RenderObject) {
	ro.(*leafRenderObject).tag = c.tag
}
func (c leafComponent) ChildComponents() []Component { return nil }

// groupComponent is a RenderObjectComponent with children, standing in for
// Row/Column in reconciliation tests.
type groupComponent struct {
	key      Key
	children []Component
}

func (c groupComponent) RuntimeKind() string          { return "group" }
func (c groupComponent) Key() Key                     { return c.key }
func (c groupComponent) ChildComponents() []Component { return c.children }
func (c groupComponent) CreateRenderObject() RenderObject {
	g := &groupRenderObject{}
	g.SetSelf(g)
	return g
}
func (c groupComponent) UpdateRenderObject(ro RenderObject) {}

type groupRenderObject struct {
	BaseRenderObject
	children []RenderObject
}

func (g *groupRenderObject) SetChildren(children []RenderObject) { g.children = children }
func (g *groupRenderObject) Layout(c Constraints) Size {
	s := c.Constrain(Size{Width: len(g.children), Height: 1})
	g.SetSize(s)
	return s
}
func (g *groupRenderObject) Paint(canvas *render.Canvas, offset render.Offset) {}
func (g *groupRenderObject) Children() []RenderObject                         { return g.children }

func TestUpdateChildInflatesOnFirstMount(t *testing.T) {
	owner := NewPipelineOwner()
	el := UpdateChild(owner, nil, leafComponent{tag: "a"})
	if el == nil {
		t.Fatal("expected an inflated element, got nil")
	}
	roe, ok := el.(*RenderObjectElement)
	if !ok {
		t.Fatalf("expected *RenderObjectElement, got %T", el)
	}
	if roe.RenderObject().(*leafRenderObject).tag != "a" {
		t.Fatalf("expected tag 'a', got %q", roe.RenderObject().(*leafRenderObject).tag)
	}
}

func TestUpdateChildReusesSameIdentity(t *testing.T) {
	owner := NewPipelineOwner()
	el := UpdateChild(owner, nil, leafComponent{tag: "a"})
	ro := el.(*RenderObjectElement).RenderObject()

	el2 := UpdateChild(owner, el, leafComponent{tag: "b"})
	if el2 != el {
		t.Fatal("expected same element to be reused across update")
	}
	if el2.(*RenderObjectElement).RenderObject() != ro {
		t.Fatal("expected render object to survive update")
	}
	if ro.(*leafRenderObject).tag != "b" {
		t.Fatalf("expected tag updated to 'b', got %q", ro.(*leafRenderObject).tag)
	}
}

func TestUpdateChildRemountsOnKindChange(t *testing.T) {
	owner := NewPipelineOwner()
	el := UpdateChild(owner, nil, leafComponent{tag: "a"})
	el2 := UpdateChild(owner, el, groupComponent{})
	if el2 == el {
		t.Fatal("expected a new element when RuntimeKind changes")
	}
	if _, ok := el2.(*RenderObjectElement).RenderObject().(*groupRenderObject); !ok {
		t.Fatalf("expected groupRenderObject, got %T", el2.(*RenderObjectElement).RenderObject())
	}
}

func TestUpdateChildNilRemovesExisting(t *testing.T) {
	owner := NewPipelineOwner()
	el := UpdateChild(owner, nil, leafComponent{tag: "a"})
	result := UpdateChild(owner, el, nil)
	if result != nil {
		t.Fatal("expected nil result when new component is nil")
	}
}

func TestUpdateChildrenPreservesKeyedIdentityAcrossReorder(t *testing.T) {
	owner := NewPipelineOwner()
	initial := []Component{
		leafComponent{tag: "a", key: NewKey("a")},
		leafComponent{tag: "b", key: NewKey("b")},
		leafComponent{tag: "c", key: NewKey("c")},
	}
	elements := UpdateChildren(owner, nil, initial)
	if len(elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elements))
	}
	roB := elements[1].(*RenderObjectElement).RenderObject()

	reordered := []Component{
		leafComponent{tag: "c", key: NewKey("c")},
		leafComponent{tag: "b", key: NewKey("b")},
		leafComponent{tag: "a", key: NewKey("a")},
	}
	updated := UpdateChildren(owner, elements, reordered)
	if len(updated) != 3 {
		t.Fatalf("expected 3 elements after reorder, got %d", len(updated))
	}
	if updated[1].(*RenderObjectElement).RenderObject() != roB {
		t.Fatal("expected keyed element 'b' to keep its render object across reorder")
	}
}

// TestUpdateChildrenReusesUnkeyedIdentityAcrossShift reproduces the
// ambiguous-order scenario the deferred same-kind matching pass exists
// for: an unkeyed child earlier in the list disappears, shifting every
// unkeyed sibling after it down one slot, so the naive same-index match
// sees a RuntimeKind mismatch at that slot. Without the fallback, the
// shifted siblings would be unmounted and reinflated, losing their
// mounted State.
func TestUpdateChildrenReusesUnkeyedIdentityAcrossShift(t *testing.T) {
	owner := NewPipelineOwner()
	initial := []Component{
		counterComponent{},
		leafComponent{tag: "removed"},
		counterComponent{},
	}
	elements := UpdateChildren(owner, nil, initial)
	if len(elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elements))
	}
	shifted := elements[2].(*StatefulElement)
	shifted.state.(*counterState).SetState(func() { shifted.state.(*counterState).count = 99 })

	reordered := []Component{
		counterComponent{},
		counterComponent{},
	}
	updated := UpdateChildren(owner, elements, reordered)
	if len(updated) != 2 {
		t.Fatalf("expected 2 elements after shift, got %d", len(updated))
	}
	if updated[1] != shifted {
		t.Fatal("expected the shifted counter's element to be reused, not reinflated")
	}
	if updated[1].(*StatefulElement).state.(*counterState).count != 99 {
		t.Fatal("expected the shifted counter's state to survive the reorder")
	}
}

func TestUpdateChildrenUnmountsDroppedChildren(t *testing.T) {
	owner := NewPipelineOwner()
	initial := []Component{
		leafComponent{tag: "a", key: NewKey("a")},
		leafComponent{tag: "b", key: NewKey("b")},
	}
	elements := UpdateChildren(owner, nil, initial)

	shrunk := []Component{
		leafComponent{tag: "a", key: NewKey("a")},
	}
	updated := UpdateChildren(owner, elements, shrunk)
	if len(updated) != 1 {
		t.Fatalf("expected 1 element after shrink, got %d", len(updated))
	}
}

// counterComponent is a StatefulComponent used to test that State survives
// Update and that SetState marks the owning element dirty.
type counterComponent struct {
	key Key
}

func (c counterComponent) RuntimeKind() string { return "counter" }
func (c counterComponent) Key() Key            { return c.key }
func (c counterComponent) CreateState() State  { return &counterState{} }

type counterState struct {
	BaseState
	count int
}

func (s *counterState) Build(ctx *BuildContext) Component {
	return leafComponent{tag: "rendered"}
}

func TestStatefulElementPreservesStateAcrossUpdate(t *testing.T) {
	owner := NewPipelineOwner()
	el := UpdateChild(owner, nil, counterComponent{})
	se := el.(*StatefulElement)
	state := se.state.(*counterState)
	state.SetState(func() { state.count = 5 })

	el2 := UpdateChild(owner, el, counterComponent{})
	if el2 != el {
		t.Fatal("expected stateful element to be reused")
	}
	if el2.(*StatefulElement).state.(*counterState).count != 5 {
		t.Fatal("expected state to survive update")
	}
	if !se.Dirty() {
		t.Fatal("expected SetState to mark the element dirty")
	}
}

func TestRenderObjectElementSyncsChildrenToRenderTree(t *testing.T) {
	owner := NewPipelineOwner()
	group := groupComponent{children: []Component{
		leafComponent{tag: "a"},
		leafComponent{tag: "b"},
	}}
	el := UpdateChild(owner, nil, group).(*RenderObjectElement)
	ro := el.RenderObject().(*groupRenderObject)
	if len(ro.children) != 2 {
		t.Fatalf("expected 2 render children, got %d", len(ro.children))
	}
}

func TestUnmountDetachesRenderObject(t *testing.T) {
	owner := NewPipelineOwner()
	el := UpdateChild(owner, nil, leafComponent{tag: "a"}).(*RenderObjectElement)
	if el.RenderObject().(*leafRenderObject).Owner() != owner {
		t.Fatal("expected render object attached to owner after mount")
	}
	el.Unmount()
	if el.RenderObject().(*leafRenderObject).Owner() != nil {
		t.Fatal("expected render object detached after unmount")
	}
}
