package ui

import "github.com/google/uuid"

// Key gives an Element stable identity across reconciliation when sibling
// order is ambiguous (e.g. a reordered list). Two keys are equal when
// their underlying values are equal; the zero Key means "no key".
type Key struct {
	value any
}

// NewKey wraps any comparable value as a Key.
func NewKey(value any) Key {
	return Key{value: value}
}

// NewAutoKey generates a synthetic, globally unique Key for an unkeyed
// child that still needs stable identity across a reconcile — e.g. an
// item inserted into a list whose other children are keyed.
func NewAutoKey() Key {
	return Key{value: uuid.NewString()}
}

// IsZero reports whether k is the empty key.
func (k Key) IsZero() bool { return k.value == nil }

// Equals reports whether two keys refer to the same identity.
func (k Key) Equals(other Key) bool {
	if k.value == nil || other.value == nil {
		return k.value == nil && other.value == nil
	}
	return k.value == other.value
}
