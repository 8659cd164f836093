package jsbridge_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/feather-lang/nativebridge"
	"github.com/feather-lang/nativebridge/jsbridge"
	"github.com/feather-lang/nativebridge/native"
)

func newRuntime(t *testing.T, opts ...jsbridge.Option) (*jsbridge.Runtime, *nativebridge.Factory) {
	t.Helper()
	f := nativebridge.NewFactory(native.NewToolkit())
	r := jsbridge.New(f, opts...)
	t.Cleanup(func() {
		r.Close()
		f.Close()
	})
	return r, f
}

func TestSliderValueGetter(t *testing.T) {
	r, _ := newRuntime(t)
	v, err := r.RunString(`
		const ui = require("ui");
		const s = ui.createSlider({ value: 0.5 });
		let caught = "";
		try {
			s.value(1);
		} catch (e) {
			caught = (e instanceof TypeError) + ": " + e.message;
		}
		[s.value(), caught];
	`)
	if err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	want := []any{0.5, `true: wrong # args: "value" expected 0, got 1`}
	if diff := cmp.Diff(want, v.Export()); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestGetterSeesNativeChanges(t *testing.T) {
	r, _ := newRuntime(t)
	s, err := r.RunString(`Ti.UI.createSlider()`)
	if err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	obj, ok := r.Lookup(s)
	if !ok {
		t.Fatal("expected Lookup to find the slider")
	}
	obj.NativeHandle().(*native.Slider).SetValue(0.25)

	if err := r.VM().Set("s", s); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := r.RunString(`s.value()`)
	if err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	if got := v.Export(); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}
}

func TestRequireAndGlobalShareModule(t *testing.T) {
	r, _ := newRuntime(t)
	v, err := r.RunString(`require("ui") === Ti.UI`)
	if err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	if !v.ToBoolean() {
		t.Error("expected require(\"ui\") to be Ti.UI")
	}
}

func TestWindowOpen(t *testing.T) {
	r, f := newRuntime(t)
	_, err := r.RunScript("app.js", `
		const ui = require("ui");
		const win = ui.createWindow({ backgroundColor: "#336699" });
		const label = ui.createLabel({ text: "hello" });
		win.add(label);
		win.add(ui.createSlider({ value: 0.5 }));
		win.open();
	`)
	if err != nil {
		t.Fatalf("RunScript failed: %v", err)
	}

	root := f.RootContainer()
	if root == nil {
		t.Fatal("expected a root container after open")
	}
	tree := native.Snapshot(root.NativeHandle())
	if len(tree.Children) != 1 {
		t.Fatalf("expected the window inside the app container, got %d children", len(tree.Children))
	}
	win := tree.Children[0]
	if win.Background != "#FF336699" {
		t.Errorf("expected background #FF336699, got %q", win.Background)
	}
	var kinds []string
	for _, c := range win.Children {
		kinds = append(kinds, c.Kind)
	}
	if diff := cmp.Diff([]string{"Label", "Slider"}, kinds); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestAddUnsupportedThrows(t *testing.T) {
	r, _ := newRuntime(t)
	v, err := r.RunString(`
		const ui = require("ui");
		const c = ui.createContainer();
		let msg = "";
		try {
			c.add(ui.createTextField());
		} catch (e) {
			msg = e.message;
		}
		[msg, c.childCount()];
	`)
	if err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	got := v.Export().([]any)
	if msg, _ := got[0].(string); !strings.Contains(msg, nativebridge.ErrNotSupported.Error()) {
		t.Errorf("expected unsupported error, got %q", msg)
	}
	if got[1] != int64(0) {
		t.Errorf("expected no children, got %v", got[1])
	}
}

func TestAddCycleThrows(t *testing.T) {
	r, _ := newRuntime(t)
	v, err := r.RunString(`
		const ui = require("ui");
		const outer = ui.createContainer();
		const inner = ui.createContainer();
		outer.add(inner);
		let msg = "";
		try {
			inner.add(outer);
		} catch (e) {
			msg = e.message;
		}
		[msg, inner.childCount(), outer.childCount()];
	`)
	if err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	got := v.Export().([]any)
	if msg, _ := got[0].(string); !strings.Contains(msg, nativebridge.ErrCycle.Error()) {
		t.Errorf("expected cycle error, got %q", msg)
	}
	if diff := cmp.Diff([]any{int64(0), int64(1)}, got[1:]); diff != "" {
		t.Errorf("child counts mismatch (-want +got):\n%s", diff)
	}
}

func TestSetters(t *testing.T) {
	r, _ := newRuntime(t)
	v, err := r.RunString(`
		const b = Ti.UI.createButton();
		b.setTitle("OK");
		b.set("width", 120);
		[b.title(), b.width()];
	`)
	if err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	want := []any{"OK", int64(120)}
	if diff := cmp.Diff(want, v.Export()); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestSetterErrors(t *testing.T) {
	r, _ := newRuntime(t)
	for _, src := range []string{
		`Ti.UI.createSlider().setValue()`,
		`Ti.UI.createSlider().setValue("high")`,
		`Ti.UI.createLabel().set("color", "red")`,
		`Ti.UI.createContainer().add({})`,
	} {
		if _, err := r.RunString(src); err == nil {
			t.Errorf("%s: expected an exception", src)
		}
	}
}

func TestConsoleLog(t *testing.T) {
	var out bytes.Buffer
	r, _ := newRuntime(t, jsbridge.WithOutput(&out))
	if _, err := r.RunString(`console.log("value", 1, true)`); err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	if got := out.String(); got != "value 1 true\n" {
		t.Errorf("expected %q, got %q", "value 1 true\n", got)
	}
}

func TestCloseReleasesObjects(t *testing.T) {
	f := nativebridge.NewFactory(native.NewToolkit())
	r := jsbridge.New(f)
	if _, err := r.RunString(`
		const ui = require("ui");
		ui.createLabel();
		ui.createButton();
	`); err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	tk := f.Toolkit()
	if tk.Live() != 2 {
		t.Fatalf("expected 2 live widgets, got %d", tk.Live())
	}
	r.Close()
	if tk.Live() != 0 {
		t.Errorf("expected all widgets freed, got %d live", tk.Live())
	}
}
