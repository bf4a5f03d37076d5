// Package widgets provides the minimal concrete widget library exercising
// the render-object tree's layout/paint contracts: Text, Row, Column,
// Container, DecoratedBox, SizedBox, Center. The visual repertoire is
// intentionally small — the contracts are what is load-bearing.
package widgets

// JustifyContent controls how a Row/Column distributes items along its
// main axis (horizontal for Row, vertical for Column).
type JustifyContent int

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
)

// AlignItems controls how a Row/Column aligns items along its cross axis.
type AlignItems int

const (
	AlignStretch AlignItems = iota
	AlignStart
	AlignEnd
	AlignCenter
)
