package ui

import "github.com/cindertui/cinder/terminal"

// Component is an immutable description of a piece of UI: what to render,
// not how. Reconciliation matches an old Element against a new Component
// by (RuntimeKind, Key) identity.
type Component interface {
	// RuntimeKind identifies the concrete component type for
	// reconciliation — typically the widget's type name. Two components
	// of different Go types must never return the same RuntimeKind.
	RuntimeKind() string
	// Key returns this component's reconciliation key, or the zero Key
	// if it doesn't need one (most components in a fixed-arity tree
	// don't; list children usually do).
	Key() Key
}

// StatelessComponent builds directly into a child description with no
// persistent state of its own.
type StatelessComponent interface {
	Component
	Build(ctx *BuildContext) Component
}

// StatefulComponent owns a State object that survives update-in-place
// across rebuilds.
type StatefulComponent interface {
	Component
	CreateState() State
}

// State is the mutable, persistent half of a StatefulComponent. It is
// created once on first mount and reused across updates to the component
// description.
type State interface {
	// Build produces this state's child description.
	Build(ctx *BuildContext) Component
	// ComponentChanged is called after Update replaces the owning
	// element's component with a new value of the same kind.
	ComponentChanged(old, new StatefulComponent)
	// attachElement gives State a back-reference so SetState can mark its
	// owning element dirty; called once by StatefulElement on mount.
	attachElement(*StatefulElement)
}

// BaseState gives a State implementation the element back-reference and
// a SetState method; embed it in concrete state types.
type BaseState struct {
	element *StatefulElement
}

func (s *BaseState) attachElement(e *StatefulElement) { s.element = e }

// SetState marks the owning element dirty so its subtree rebuilds on the
// next frame. mutate should apply the state change; it runs synchronously
// before the dirty mark.
func (s *BaseState) SetState(mutate func()) {
	if mutate != nil {
		mutate()
	}
	if s.element != nil {
		s.element.markDirty()
	}
}

// ComponentChanged is a no-op default; states that care override it.
func (s *BaseState) ComponentChanged(StatefulComponent, StatefulComponent) {}

// RenderObjectComponent describes a leaf or branch node that owns a
// RenderObject directly (the widgets package's Text, Row, Column, etc.).
type RenderObjectComponent interface {
	Component
	CreateRenderObject() RenderObject
	UpdateRenderObject(ro RenderObject)
	// ChildComponents returns this component's child descriptions, in
	// order. Leaf components (e.g. Text) return nil.
	ChildComponents() []Component
}

// BuildContext is passed to Build calls; it carries whatever ambient
// services a widget needs: a handle back to the owning pipeline for
// widgets that must request a frame outside SetState, and the detected
// terminal capabilities for widgets that adapt their styling.
type BuildContext struct {
	Pipeline     *PipelineOwner
	Capabilities terminal.Capabilities
}
