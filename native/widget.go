package native

import "fmt"

// Kind identifies a widget class of the toolkit.
type Kind int

const (
	KindContainer Kind = iota + 1
	KindLabel
	KindButton
	KindSlider
	KindProgressIndicator
	KindTextField
	KindImageView
)

var kindNames = map[Kind]string{
	KindContainer:         "Container",
	KindLabel:             "Label",
	KindButton:            "Button",
	KindSlider:            "Slider",
	KindProgressIndicator: "ProgressIndicator",
	KindTextField:         "TextField",
	KindImageView:         "ImageView",
}

// String returns the widget class name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Control is an opaque widget handle.
//
// Concrete handles are *Container, *Label, *Button, *Slider,
// *ProgressIndicator, *TextField and *ImageView.
type Control interface {
	ID() uint64
	Kind() Kind
	Parent() *Container
	Freed() bool

	PreferredWidth() float32
	SetPreferredWidth(w float32)
	PreferredHeight() float32
	SetPreferredHeight(h float32)

	LayoutProperties() *DockLayoutProperties
	SetLayoutProperties(p *DockLayoutProperties)

	base() *widget
}

// widget holds the state shared by every control.
type widget struct {
	id      uint64
	kind    Kind
	toolkit *Toolkit
	parent  *Container
	held    bool
	freed   bool

	preferredWidth  float32
	preferredHeight float32
	layoutProps     *DockLayoutProperties
}

func (w *widget) base() *widget { return w }

// ID returns the toolkit-assigned identifier. Ids start at 1 and are never reused.
func (w *widget) ID() uint64 { return w.id }

// Kind returns the widget class.
func (w *widget) Kind() Kind { return w.kind }

// Parent returns the container holding the widget, or nil for a root.
func (w *widget) Parent() *Container { return w.parent }

// Freed reports whether the toolkit has reclaimed the widget.
func (w *widget) Freed() bool { return w.freed }

// PreferredWidth returns the width hint used by layouts.
func (w *widget) PreferredWidth() float32 { return w.preferredWidth }

// SetPreferredWidth sets the width hint.
func (w *widget) SetPreferredWidth(v float32) { w.preferredWidth = v }

// PreferredHeight returns the height hint used by layouts.
func (w *widget) PreferredHeight() float32 { return w.preferredHeight }

// SetPreferredHeight sets the height hint.
func (w *widget) SetPreferredHeight(v float32) { w.preferredHeight = v }

// LayoutProperties returns the docking hints, or nil.
func (w *widget) LayoutProperties() *DockLayoutProperties { return w.layoutProps }

// SetLayoutProperties sets the docking hints read by a parent DockLayout.
func (w *widget) SetLayoutProperties(p *DockLayoutProperties) { w.layoutProps = p }

// Container composes child controls.
type Container struct {
	widget
	children   []Control
	layout     Layout
	background *Color
}

// Add appends child to the container. A child that already has a parent is
// moved. Adding a freed widget fails with ErrFreed. Adding a container to
// itself or to one of its ancestors fails with ErrCycle. On error the tree is
// left unchanged.
func (c *Container) Add(child Control) error {
	if child == nil {
		return fmt.Errorf("%w: nil child", ErrFreed)
	}
	if c.freed {
		return fmt.Errorf("%w: %s#%d", ErrFreed, c.kind, c.id)
	}
	if child.Freed() {
		return fmt.Errorf("%w: %s#%d", ErrFreed, child.Kind(), child.ID())
	}
	if ct, ok := child.(*Container); ok && ct.contains(c) {
		return fmt.Errorf("%w: %s#%d in %s#%d", ErrCycle, ct.kind, ct.id, c.kind, c.id)
	}
	if p := child.Parent(); p != nil {
		p.detach(child)
	}
	child.base().parent = c
	c.children = append(c.children, child)
	return nil
}

// Remove detaches child from the container. The child is freed if nothing
// else holds it.
func (c *Container) Remove(child Control) bool {
	if child == nil || child.Parent() != c {
		return false
	}
	c.detach(child)
	c.toolkit.collect(child)
	return true
}

func (c *Container) detach(child Control) {
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			break
		}
	}
	child.base().parent = nil
}

// contains reports whether target is c or lies below c.
func (c *Container) contains(target *Container) bool {
	for p := target; p != nil; p = p.parent {
		if p == c {
			return true
		}
	}
	return false
}

// Children returns a copy of the child list.
func (c *Container) Children() []Control {
	out := make([]Control, len(c.children))
	copy(out, c.children)
	return out
}

// Layout returns the layout that arranges the children, or nil.
func (c *Container) Layout() Layout { return c.layout }

// SetLayout replaces the container layout.
func (c *Container) SetLayout(l Layout) { c.layout = l }

// Background returns the background color, if one was set.
func (c *Container) Background() (Color, bool) {
	if c.background == nil {
		return Color{}, false
	}
	return *c.background, true
}

// SetBackground sets the background color.
func (c *Container) SetBackground(col Color) { c.background = &col }

// Label displays a line of text.
type Label struct {
	widget
	text string
}

// Text returns the displayed text.
func (l *Label) Text() string { return l.text }

// SetText replaces the displayed text.
func (l *Label) SetText(s string) { l.text = s }

// Button is a pressable control with a title.
type Button struct {
	widget
	text string
}

// Text returns the button title.
func (b *Button) Text() string { return b.text }

// SetText replaces the button title.
func (b *Button) SetText(s string) { b.text = s }

// Slider selects a value within [min, max].
type Slider struct {
	widget
	value, min, max float64
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// Min returns the lower bound.
func (s *Slider) Min() float64 { return s.min }

// Max returns the upper bound.
func (s *Slider) Max() float64 { return s.max }

// SetValue stores v clamped to the slider range.
func (s *Slider) SetValue(v float64) { s.value = clamp(v, s.min, s.max) }

// SetRange changes the bounds and re-clamps the value.
func (s *Slider) SetRange(min, max float64) {
	if min > max {
		min, max = max, min
	}
	s.min, s.max = min, max
	s.value = clamp(s.value, min, max)
}

// ProgressIndicator shows progress within [min, max].
type ProgressIndicator struct {
	widget
	value, min, max float64
}

// Value returns the current progress.
func (p *ProgressIndicator) Value() float64 { return p.value }

// Min returns the lower bound.
func (p *ProgressIndicator) Min() float64 { return p.min }

// Max returns the upper bound.
func (p *ProgressIndicator) Max() float64 { return p.max }

// SetValue stores v clamped to the indicator range.
func (p *ProgressIndicator) SetValue(v float64) { p.value = clamp(v, p.min, p.max) }

// SetRange changes the bounds and re-clamps the value.
func (p *ProgressIndicator) SetRange(min, max float64) {
	if min > max {
		min, max = max, min
	}
	p.min, p.max = min, max
	p.value = clamp(p.value, min, max)
}

// TextField is an editable single line of text.
type TextField struct {
	widget
	text     string
	hintText string
}

// Text returns the edited text.
func (t *TextField) Text() string { return t.text }

// SetText replaces the edited text.
func (t *TextField) SetText(s string) { t.text = s }

// HintText returns the placeholder shown while the field is empty.
func (t *TextField) HintText() string { return t.hintText }

// SetHintText replaces the placeholder.
func (t *TextField) SetHintText(s string) { t.hintText = s }

// ImageView displays an image referenced by path or URL.
type ImageView struct {
	widget
	image string
}

// Image returns the image path or URL.
func (i *ImageView) Image() string { return i.image }

// SetImage replaces the image path or URL.
func (i *ImageView) SetImage(s string) { i.image = s }

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
