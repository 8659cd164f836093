package nativebridge

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feather-lang/nativebridge/native"
)

// NativeObject is a reference-counted wrapper pairing a native widget handle
// with its ObjectType.
//
// A new object has a reference count of one. Every additional owner calls
// Retain and later Release; the native handle is released when the count
// reaches zero. Composing an object into a container does not retain it.
type NativeObject interface {
	// ObjectType returns the discriminator. It never changes.
	ObjectType() ObjectType

	// Initialize creates the native handle. Calling it again releases the
	// previous handle and creates a fresh one.
	Initialize() error

	// NativeHandle returns the owned handle, or nil before Initialize.
	// Callers borrow it and must not release it.
	NativeHandle() native.Control

	// AddChild composes child under this object.
	AddChild(child NativeObject) error

	// SetProperty writes a named native property.
	SetProperty(name string, value any) error

	// ExposeProperties registers a getter on target for every readable property.
	ExposeProperties(target *Object)

	Retain()
	Release()
	RefCount() int
}

// nativeObject is the state and behavior shared by every bridged object.
type nativeObject struct {
	refCounter
	typ     ObjectType
	factory ObjectFactory
	handle  native.Control
	logger  *zap.Logger
}

func (o *nativeObject) setup(typ ObjectType, f ObjectFactory) {
	o.typ = typ
	o.factory = f
	o.refCounter = newRefCounter(o.destroy)
	o.logger = f.Logger().With(zap.Stringer("type", typ))
}

// ObjectType returns the discriminator fixed at construction.
func (o *nativeObject) ObjectType() ObjectType { return o.typ }

// NativeHandle returns the toolkit widget, or nil before Initialize.
func (o *nativeObject) NativeHandle() native.Control { return o.handle }

// Initialize creates the toolkit widget for the object's type. A second call
// releases the previous widget first.
func (o *nativeObject) Initialize() error {
	kind, ok := o.typ.widgetKind()
	if !ok {
		return fmt.Errorf("%w: no native widget for %s", ErrNotSupported, o.typ)
	}
	if o.handle != nil {
		o.releaseHandle()
	}
	h, err := o.factory.Toolkit().Create(kind)
	if err != nil {
		if errors.Is(err, native.ErrAllocation) {
			return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		return err
	}
	o.handle = h
	o.logger.Debug("initialized", zap.Uint64("handle", h.ID()))
	return nil
}

// AddChild on a non-container always fails.
func (o *nativeObject) AddChild(child NativeObject) error {
	return fmt.Errorf("%w: %s cannot hold children", ErrNotSupported, o.typ)
}

// SetProperty writes a writable property through the type's property table.
func (o *nativeObject) SetProperty(name string, value any) error {
	def, ok := lookupProperty(o.typ, name)
	if !ok || def.set == nil {
		return fmt.Errorf("%w: %s.%s", ErrUnknownProperty, o.typ, name)
	}
	if o.handle == nil {
		return fmt.Errorf("set %s.%s: %w", o.typ, name, ErrNotInitialized)
	}
	return def.set(o, value)
}

// ExposeProperties adds a getter to target for every readable property.
func (o *nativeObject) ExposeProperties(target *Object) {
	for _, def := range propertyTables[o.typ] {
		if def.get == nil {
			continue
		}
		AddPropertyGetter(target, &handleProperty{obj: o, get: def.get}, def.name)
	}
}

func (o *nativeObject) releaseHandle() {
	id := o.handle.ID()
	if err := o.factory.Toolkit().Release(o.handle); err != nil {
		o.logger.Warn("release native handle", zap.Uint64("handle", id), zap.Error(err))
	}
	o.handle = nil
}

func (o *nativeObject) destroy() {
	if o.handle != nil {
		o.releaseHandle()
	}
	o.logger.Debug("destroyed")
}

// ControlObject bridges a leaf widget such as a label, button or slider.
type ControlObject struct {
	nativeObject
}

// CreateControl returns an uninitialized leaf object of the given type.
func CreateControl(f ObjectFactory, typ ObjectType) *ControlObject {
	c := &ControlObject{}
	c.setup(typ, f)
	return c
}

// CreateObject returns an uninitialized object of the given type, a
// ContainerObject for container types and a ControlObject otherwise.
func CreateObject(f ObjectFactory, typ ObjectType) NativeObject {
	if typ.IsContainer() {
		return newContainer(f, typ)
	}
	return CreateControl(f, typ)
}
