package nativebridge

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/feather-lang/nativebridge/native"
)

// ContainerObject bridges a composite widget. Windows are containers too and
// use the same implementation with TypeWindow.
type ContainerObject struct {
	nativeObject
}

// CreateContainer returns a container with no native handle yet; call
// Initialize before use. f must outlive the container.
func CreateContainer(f ObjectFactory) NativeObject {
	return newContainer(f, TypeContainer)
}

// CreateWindow returns a window with no native handle yet.
func CreateWindow(f ObjectFactory) NativeObject {
	return newContainer(f, TypeWindow)
}

func newContainer(f ObjectFactory, typ ObjectType) *ContainerObject {
	c := &ContainerObject{}
	c.setup(typ, f)
	return c
}

// wrapContainer adopts an already created native container.
func wrapContainer(f ObjectFactory, h *native.Container) *ContainerObject {
	c := newContainer(f, TypeContainer)
	c.handle = h
	return c
}

// Container returns the typed native handle, or nil before Initialize.
func (c *ContainerObject) Container() *native.Container {
	h, _ := c.handle.(*native.Container)
	return h
}

// AddChild composes child under the container by dispatching on the child's
// ObjectType. Kinds the container cannot hold fail with ErrNotSupported and
// leave the native tree untouched. Adding a container to itself or to one of
// its ancestors fails with ErrCycle.
func (c *ContainerObject) AddChild(child NativeObject) error {
	parent := c.Container()
	if parent == nil {
		return fmt.Errorf("add to %s: %w", c.typ, ErrNotInitialized)
	}
	typ := child.ObjectType()
	attach, ok := attachTable[typ]
	if !ok {
		c.logger.Debug("unsupported child", zap.Stringer("child", typ))
		return fmt.Errorf("%w: cannot add %s to %s", ErrNotSupported, typ, c.typ)
	}
	h := child.NativeHandle()
	if h == nil {
		return fmt.Errorf("add %s to %s: %w", typ, c.typ, ErrNotInitialized)
	}
	if err := attach(parent, h); err != nil {
		c.logger.Debug("child rejected", zap.Stringer("child", typ), zap.Error(err))
		return err
	}
	c.logger.Debug("child added", zap.Stringer("child", typ), zap.Uint64("handle", h.ID()))
	return nil
}

// Open installs the container as the visible root of the application.
//
// A fresh top-level container with a dock layout is created and the receiver
// is placed inside it, filling both axes and stacking its own children. The
// new top-level container is wrapped and handed to the factory. Calling Open
// again replaces the root: the receiver moves into a new top-level container
// and the factory drops the old one.
func (c *ContainerObject) Open() error {
	inner := c.Container()
	if inner == nil {
		return fmt.Errorf("open %s: %w", c.typ, ErrNotInitialized)
	}
	app, err := c.factory.Toolkit().CreateContainer()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	width := c.factory.PreferredWidth()
	app.SetLayout(&native.DockLayout{})
	app.SetPreferredWidth(width)

	inner.SetLayout(native.NewStackLayout())
	inner.SetLayoutProperties(native.FillBoth())
	inner.SetPreferredWidth(width)
	if err := app.Add(inner); err != nil {
		_ = c.factory.Toolkit().Release(app)
		return fmt.Errorf("open %s: %w", c.typ, err)
	}

	root := wrapContainer(c.factory, app)
	c.factory.SetRootContainer(root)
	root.Release()

	c.logger.Debug("opened", zap.Uint64("root", app.ID()), zap.Float32("width", width))
	return nil
}

// SetBackgroundColor reads RGBA channels from src through the factory's
// color extractor and applies them. Extractor errors are returned as is.
func (c *ContainerObject) SetBackgroundColor(src any) error {
	return c.setBackgroundColor(src)
}
