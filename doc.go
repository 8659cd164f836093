// Package nativebridge maps script-driven UI declarations onto a native
// widget tree and exposes native state back to scripts.
//
// # Overview
//
// nativebridge sits between an embedded scripting engine and a widget
// toolkit. It provides:
//
//   - Bridged objects that pair a native handle with an [ObjectType]
//   - Reference counting of native handles across the two runtimes
//   - One polymorphic entry point, [NativeObject.AddChild], for composing
//     heterogeneous children into containers
//   - Callable property getters that marshal a single native value to script
//
// Rendering belongs to the toolkit (see package native) and script execution
// to the engine (see packages jsbridge and tclbridge).
//
// # Quick Start
//
//	tk := native.NewToolkit()
//	f := nativebridge.NewFactory(tk)
//	defer f.Close()
//
//	win, _ := f.CreateObject(nativebridge.TypeWindow)
//	defer win.Release()
//
//	label, _ := f.CreateObject(nativebridge.TypeLabel)
//	defer label.Release()
//	label.SetProperty("text", "Hello")
//
//	if err := win.AddChild(label); err != nil {
//	    log.Fatal(err)
//	}
//	win.(*nativebridge.ContainerObject).Open()
//
// # Ownership
//
// Every object starts with one reference. Hand-offs call Retain and owners
// call Release; the native handle is released when the count reaches zero.
// Composition is not ownership: once a child is added to a container the
// toolkit keeps the widget alive for as long as it is parented, and the
// container never releases its children.
//
// # Property Getters
//
// [AddPropertyGetter] registers a zero-argument callable on an [Object]:
//
//	props := nativebridge.NewObject("Slider")
//	slider.ExposeProperties(props)
//
//	m, _ := props.Member("value")
//	v, err := m.Call(nil)        // current slider value
//	_, err = m.Call([]any{1.0})  // *ArityError
//
// A getter does not own its source. The caller keeps the source alive for as
// long as any getter bound to it can be called.
//
// # Errors
//
// Allocation failures wrap [ErrOutOfMemory]. Children a container cannot
// hold fail with [ErrNotSupported] and leave the tree unchanged. Color
// extraction errors are returned exactly as the [ColorExtractor] produced
// them. Wrong argument counts at the script boundary are [*ArityError]
// values, which the engine bindings turn into script exceptions.
package nativebridge
