package native

import "fmt"

// Layout arranges the children of a container.
type Layout interface {
	LayoutName() string
}

// Orientation is the direction a StackLayout stacks in.
type Orientation int

const (
	TopToBottom Orientation = iota
	BottomToTop
	LeftToRight
	RightToLeft
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case TopToBottom:
		return "TopToBottom"
	case BottomToTop:
		return "BottomToTop"
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// StackLayout places children one after another.
type StackLayout struct {
	Orientation Orientation
}

// NewStackLayout returns a top-to-bottom stack layout.
func NewStackLayout() *StackLayout { return &StackLayout{Orientation: TopToBottom} }

// LayoutName returns "stack".
func (l *StackLayout) LayoutName() string { return "stack" }

// DockLayout pins each child to an edge, the center, or stretches it,
// according to the child's DockLayoutProperties.
type DockLayout struct{}

// LayoutName returns "dock".
func (l *DockLayout) LayoutName() string { return "dock" }

// HorizontalAlignment positions a docked child horizontally.
type HorizontalAlignment int

const (
	HorizontalLeft HorizontalAlignment = iota
	HorizontalCenter
	HorizontalRight
	HorizontalFill
)

var horizontalNames = [...]string{"Left", "Center", "Right", "Fill"}

// String returns the alignment name.
func (a HorizontalAlignment) String() string {
	if a >= 0 && int(a) < len(horizontalNames) {
		return horizontalNames[a]
	}
	return fmt.Sprintf("HorizontalAlignment(%d)", int(a))
}

// VerticalAlignment positions a docked child vertically.
type VerticalAlignment int

const (
	VerticalTop VerticalAlignment = iota
	VerticalCenter
	VerticalBottom
	VerticalFill
)

var verticalNames = [...]string{"Top", "Center", "Bottom", "Fill"}

// String returns the alignment name.
func (a VerticalAlignment) String() string {
	if a >= 0 && int(a) < len(verticalNames) {
		return verticalNames[a]
	}
	return fmt.Sprintf("VerticalAlignment(%d)", int(a))
}

// DockLayoutProperties are the per-child settings read by a DockLayout.
type DockLayoutProperties struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

// FillBoth makes a child occupy all the space of its docking parent.
func FillBoth() *DockLayoutProperties {
	return &DockLayoutProperties{Horizontal: HorizontalFill, Vertical: VerticalFill}
}
