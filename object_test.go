package nativebridge_test

import (
	"errors"
	"testing"

	"github.com/feather-lang/nativebridge"
	"github.com/feather-lang/nativebridge/native"
)

func TestObjectType(t *testing.T) {
	for _, typ := range nativebridge.ObjectTypes() {
		parsed, err := nativebridge.ParseObjectType(typ.String())
		if err != nil {
			t.Fatalf("ParseObjectType(%q) failed: %v", typ.String(), err)
		}
		if parsed != typ {
			t.Errorf("expected %v, got %v", typ, parsed)
		}
	}

	if typ, _ := nativebridge.ParseObjectType("ProgressBar"); typ != nativebridge.TypeProgressBar {
		t.Errorf("expected case-insensitive match, got %v", typ)
	}
	if _, err := nativebridge.ParseObjectType("tableview"); err == nil {
		t.Error("expected error for unknown type name")
	}
}

func TestObjectTypeIsImmutable(t *testing.T) {
	f := nativebridge.NewFactory(native.NewToolkit())
	obj := nativebridge.CreateControl(f, nativebridge.TypeSlider)
	obj.Initialize()
	obj.Initialize()
	if obj.ObjectType() != nativebridge.TypeSlider {
		t.Errorf("expected slider, got %v", obj.ObjectType())
	}
}

func TestInitializeTwiceCreatesIndependentHandles(t *testing.T) {
	tk := native.NewToolkit()
	f := nativebridge.NewFactory(tk)
	obj := nativebridge.CreateControl(f, nativebridge.TypeLabel)

	if err := obj.Initialize(); err != nil {
		t.Fatalf("first Initialize failed: %v", err)
	}
	first := obj.NativeHandle()

	if err := obj.Initialize(); err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}
	second := obj.NativeHandle()

	if first == second {
		t.Fatal("expected a new handle")
	}
	if !first.Freed() {
		t.Error("expected the first handle to be released")
	}
	if tk.Live() != 1 {
		t.Errorf("expected 1 live widget, got %d", tk.Live())
	}
}

func TestInitializeOutOfMemory(t *testing.T) {
	errNoMemory := errors.New("no memory")
	tk := native.NewToolkit(native.WithAllocator(func(native.Kind) error { return errNoMemory }))
	f := nativebridge.NewFactory(tk)

	obj := nativebridge.CreateContainer(f)
	err := obj.Initialize()
	if !errors.Is(err, nativebridge.ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if !errors.Is(err, native.ErrAllocation) {
		t.Errorf("expected the toolkit error to be wrapped, got %v", err)
	}
	if obj.NativeHandle() != nil {
		t.Error("expected no handle after failed Initialize")
	}
}

func TestFactoryCreateObjectNeverReturnsFailedObject(t *testing.T) {
	tk := native.NewToolkit(native.WithAllocationLimit(1))
	f := nativebridge.NewFactory(tk)

	first, err := f.CreateObject(nativebridge.TypeButton)
	if err != nil {
		t.Fatalf("CreateObject failed: %v", err)
	}
	if first.NativeHandle() == nil {
		t.Fatal("expected an initialized object")
	}

	second, err := f.CreateObject(nativebridge.TypeButton)
	if !errors.Is(err, nativebridge.ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if second != nil {
		t.Error("expected no object on failure")
	}
}

func TestReleaseDestroysExactlyOnce(t *testing.T) {
	tk := native.NewToolkit()
	f := nativebridge.NewFactory(tk)
	obj, _ := f.CreateObject(nativebridge.TypeSlider)
	h := obj.NativeHandle()

	if obj.RefCount() != 1 {
		t.Fatalf("expected 1 ref, got %d", obj.RefCount())
	}
	obj.Retain()
	obj.Release()
	if h.Freed() {
		t.Fatal("expected handle to survive while referenced")
	}

	obj.Release()
	if !h.Freed() {
		t.Fatal("expected handle to be released at zero refs")
	}
	if obj.NativeHandle() != nil {
		t.Error("expected no handle after destruction")
	}
	if tk.Freed() != 1 {
		t.Errorf("expected 1 freed widget, got %d", tk.Freed())
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on release of destroyed object")
		}
	}()
	obj.Release()
}

func TestReleaseDoesNotDetachComposedChild(t *testing.T) {
	tk := native.NewToolkit()
	f := nativebridge.NewFactory(tk)
	parent := newContainer(t, f)
	child, _ := f.CreateObject(nativebridge.TypeLabel)
	h := child.NativeHandle()

	if err := parent.AddChild(child); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	if child.RefCount() != 1 {
		t.Errorf("expected composition not to retain, got %d refs", child.RefCount())
	}
	child.Release()

	if h.Freed() || h.Parent() != parent.Container() {
		t.Error("expected the toolkit to keep the composed widget")
	}

	parent.Release()
	if !h.Freed() {
		t.Error("expected child widget to go with its parent")
	}
	if tk.Live() != 0 {
		t.Errorf("expected 0 live widgets, got %d", tk.Live())
	}
}

func TestSetProperty(t *testing.T) {
	f := nativebridge.NewFactory(native.NewToolkit())

	label, _ := f.CreateObject(nativebridge.TypeLabel)
	if err := label.SetProperty("text", "Hello"); err != nil {
		t.Fatalf("SetProperty failed: %v", err)
	}
	if got := label.NativeHandle().(*native.Label).Text(); got != "Hello" {
		t.Errorf("expected 'Hello', got %q", got)
	}

	slider, _ := f.CreateObject(nativebridge.TypeSlider)
	if err := slider.SetProperty("max", "10"); err != nil {
		t.Fatalf("SetProperty(max) failed: %v", err)
	}
	if err := slider.SetProperty("value", int64(4)); err != nil {
		t.Fatalf("SetProperty(value) failed: %v", err)
	}
	if got := slider.NativeHandle().(*native.Slider).Value(); got != 4 {
		t.Errorf("expected 4, got %v", got)
	}

	if err := slider.SetProperty("value", []int{1}); !errors.Is(err, nativebridge.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
	if err := slider.SetProperty("text", "x"); !errors.Is(err, nativebridge.ErrUnknownProperty) {
		t.Errorf("expected ErrUnknownProperty, got %v", err)
	}
	if err := label.SetProperty("childCount", 3); !errors.Is(err, nativebridge.ErrUnknownProperty) {
		t.Errorf("expected ErrUnknownProperty, got %v", err)
	}

	unready := nativebridge.CreateControl(f, nativebridge.TypeLabel)
	if err := unready.SetProperty("text", "x"); !errors.Is(err, nativebridge.ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestFactoryRootReplacement(t *testing.T) {
	f := nativebridge.NewFactory(native.NewToolkit())
	a, _ := f.CreateObject(nativebridge.TypeContainer)
	b, _ := f.CreateObject(nativebridge.TypeContainer)

	f.SetRootContainer(a)
	f.SetRootContainer(a)
	if a.RefCount() != 2 {
		t.Errorf("expected reinstalling the same root to be a no-op, got %d refs", a.RefCount())
	}

	f.SetRootContainer(b)
	if a.RefCount() != 1 {
		t.Errorf("expected previous root to be released, got %d refs", a.RefCount())
	}
	if f.RootContainer() != b {
		t.Error("expected b to be the root")
	}

	f.Close()
	if b.RefCount() != 1 {
		t.Errorf("expected Close to release the root, got %d refs", b.RefCount())
	}
	if f.RootContainer() != nil {
		t.Error("expected no root after Close")
	}
}

func TestFactoryAccessors(t *testing.T) {
	tk := native.NewToolkit()
	f := nativebridge.NewFactory(tk, nativebridge.WithLogger(nil))
	defer f.Close()

	if f.Toolkit() != tk {
		t.Error("expected the toolkit passed to NewFactory")
	}
	if f.Logger() == nil {
		t.Error("expected a no-op logger when none is configured")
	}
	if _, ok := f.Colors().(nativebridge.ColorParser); !ok {
		t.Errorf("expected ColorParser as the default extractor, got %T", f.Colors())
	}

	theme := nativebridge.ColorExtractorFunc(func(any) (r, g, b, a float32, err error) { return 0, 0, 0, 1, nil })
	g := nativebridge.NewFactory(tk, nativebridge.WithColorExtractor(theme))
	defer g.Close()
	if _, ok := g.Colors().(nativebridge.ColorExtractorFunc); !ok {
		t.Errorf("expected the configured extractor, got %T", g.Colors())
	}

	if name := nativebridge.NewObject("slider").Name(); name != "slider" {
		t.Errorf("expected name slider, got %q", name)
	}
}
