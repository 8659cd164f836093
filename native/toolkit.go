// Package native is a headless widget toolkit.
//
// It stands in for a platform UI toolkit: widgets are opaque handles that can
// be created, composed into a tree, laid out and colored. Nothing is rendered.
// The toolkit tracks which widgets are held by a caller and which are parented
// inside another widget, and frees a widget once it is neither.
//
// A Toolkit is not safe for concurrent use.
package native

import (
	"errors"
	"fmt"
)

// ErrAllocation is returned when the toolkit refuses to create a widget.
var ErrAllocation = errors.New("native: widget allocation failed")

// ErrNotHeld is returned by Release for a widget the caller does not hold.
var ErrNotHeld = errors.New("native: widget is not held")

// ErrCycle is returned by Container.Add when the child is the container
// itself or one of its ancestors.
var ErrCycle = errors.New("native: container would contain itself")

// ErrFreed is returned when a freed widget takes part in a tree operation.
var ErrFreed = errors.New("native: widget is freed")

// Allocator decides whether a widget of the given kind may be created.
// Returning a non-nil error makes Create fail with that error wrapped in ErrAllocation.
type Allocator func(kind Kind) error

// Toolkit creates and frees widgets.
type Toolkit struct {
	allocator Allocator
	nextID    uint64
	live      map[uint64]Control
	created   int
	freed     int
}

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithAllocator installs an allocation hook.
func WithAllocator(a Allocator) Option {
	return func(t *Toolkit) {
		t.allocator = a
	}
}

// WithAllocationLimit makes the toolkit fail once n widgets are live.
// A limit of zero or less means unlimited.
func WithAllocationLimit(n int) Option {
	return func(t *Toolkit) {
		if n <= 0 {
			t.allocator = nil
			return
		}
		t.allocator = func(kind Kind) error {
			if len(t.live) >= n {
				return fmt.Errorf("%d live widgets", len(t.live))
			}
			return nil
		}
	}
}

// NewToolkit creates a toolkit.
func NewToolkit(opts ...Option) *Toolkit {
	t := &Toolkit{
		nextID: 1,
		live:   make(map[uint64]Control),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Create allocates a widget of the given kind. The caller holds the returned
// widget until it calls Release.
func (t *Toolkit) Create(kind Kind) (Control, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("native: unknown widget kind %d", int(kind))
	}
	if t.allocator != nil {
		if err := t.allocator(kind); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAllocation, kind, err)
		}
	}

	b := widget{id: t.nextID, kind: kind, held: true, toolkit: t}
	t.nextID++

	var c Control
	switch kind {
	case KindContainer:
		c = &Container{widget: b}
	case KindLabel:
		c = &Label{widget: b}
	case KindButton:
		c = &Button{widget: b}
	case KindSlider:
		c = &Slider{widget: b, max: 1}
	case KindProgressIndicator:
		c = &ProgressIndicator{widget: b, max: 1}
	case KindTextField:
		c = &TextField{widget: b}
	case KindImageView:
		c = &ImageView{widget: b}
	}
	t.live[b.id] = c
	t.created++
	return c, nil
}

// CreateContainer allocates a container widget.
func (t *Toolkit) CreateContainer() (*Container, error) {
	c, err := t.Create(KindContainer)
	if err != nil {
		return nil, err
	}
	return c.(*Container), nil
}

// Release gives up the caller's hold on c. The widget is freed right away
// unless it is parented, in which case it lives as long as its parent keeps it.
func (t *Toolkit) Release(c Control) error {
	w := c.base()
	if !w.held || w.freed {
		return fmt.Errorf("%w: %s#%d", ErrNotHeld, w.kind, w.id)
	}
	w.held = false
	t.collect(c)
	return nil
}

// collect frees c if nothing keeps it alive any more. Children of a freed
// container lose their parent and are collected in turn.
func (t *Toolkit) collect(c Control) {
	w := c.base()
	if w.freed || w.held || w.parent != nil {
		return
	}
	w.freed = true
	delete(t.live, w.id)
	t.freed++

	if ct, ok := c.(*Container); ok {
		children := ct.children
		ct.children = nil
		for _, child := range children {
			child.base().parent = nil
			t.collect(child)
		}
	}
}

// Live reports the number of widgets not yet freed.
func (t *Toolkit) Live() int { return len(t.live) }

// Created reports the total number of widgets ever created.
func (t *Toolkit) Created() int { return t.created }

// Freed reports the total number of widgets freed.
func (t *Toolkit) Freed() int { return t.freed }

// Roots returns the live widgets that have no parent, ordered by id.
func (t *Toolkit) Roots() []Control {
	var roots []Control
	for id := uint64(1); id < t.nextID; id++ {
		if c, ok := t.live[id]; ok && c.Parent() == nil {
			roots = append(roots, c)
		}
	}
	return roots
}
