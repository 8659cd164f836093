package nativebridge

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/feather-lang/nativebridge/native"
)

// DefaultPreferredWidth is the width given to an opened root when no
// DisplayMetrics are configured.
const DefaultPreferredWidth float32 = 1024

// ObjectFactory is what bridged objects need from their creator.
//
// Containers keep a reference to the factory that created them and install
// themselves as the application root through SetRootContainer. The factory
// must outlive every object it creates.
type ObjectFactory interface {
	Toolkit() *native.Toolkit
	Colors() ColorExtractor
	PreferredWidth() float32
	Logger() *zap.Logger

	// SetRootContainer installs root as the visible root, replacing any
	// previous root.
	SetRootContainer(root NativeObject)
}

// DisplayMetrics reports the size of the display a root is opened on.
type DisplayMetrics interface {
	DisplayWidth() float32
}

// Factory creates bridged objects and records the application root.
//
// A Factory is not safe for concurrent use; like the objects it creates it
// belongs to the script thread.
type Factory struct {
	toolkit *native.Toolkit
	opts    options
	root    NativeObject
}

// NewFactory creates a factory over tk.
func NewFactory(tk *native.Toolkit, opts ...Option) *Factory {
	return &Factory{
		toolkit: tk,
		opts:    newOptions(opts),
	}
}

// Toolkit returns the native toolkit that backs every created object.
func (f *Factory) Toolkit() *native.Toolkit { return f.toolkit }

// Colors returns the extractor used to parse background colors.
func (f *Factory) Colors() ColorExtractor { return f.opts.colors }

// Logger returns the factory's logger. It is never nil.
func (f *Factory) Logger() *zap.Logger { return f.opts.logger }

// PreferredWidth returns the display width when DisplayMetrics are
// configured and report a positive width, and the configured constant
// otherwise.
func (f *Factory) PreferredWidth() float32 {
	if f.opts.metrics != nil {
		if w := f.opts.metrics.DisplayWidth(); w > 0 {
			return w
		}
	}
	return f.opts.preferredWidth
}

// SetRootContainer retains root and releases the previous root.
// Passing the current root again does nothing.
func (f *Factory) SetRootContainer(root NativeObject) {
	if root == f.root {
		return
	}
	if root != nil {
		root.Retain()
	}
	prev := f.root
	f.root = root
	if prev != nil {
		prev.Release()
	}
	f.opts.logger.Debug("root installed", zap.Bool("replaced", prev != nil))
}

// RootContainer returns the installed root, or nil.
func (f *Factory) RootContainer() NativeObject { return f.root }

// CreateObject returns an initialized object of the given type. When the
// native handle cannot be created the object is released and only the error
// is returned.
func (f *Factory) CreateObject(typ ObjectType) (NativeObject, error) {
	obj := CreateObject(f, typ)
	if err := obj.Initialize(); err != nil {
		obj.Release()
		return nil, fmt.Errorf("create %s: %w", typ, err)
	}
	return obj, nil
}

// Close releases the root container.
func (f *Factory) Close() {
	f.SetRootContainer(nil)
}
