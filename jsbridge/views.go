package jsbridge

import (
	"strings"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/feather-lang/nativebridge"
)

// constructorNames gives the JS spelling used in createXxx for each type.
var constructorNames = map[nativebridge.ObjectType]string{
	nativebridge.TypeContainer:   "Container",
	nativebridge.TypeWindow:      "Window",
	nativebridge.TypeLabel:       "Label",
	nativebridge.TypeButton:      "Button",
	nativebridge.TypeSlider:      "Slider",
	nativebridge.TypeProgressBar: "ProgressBar",
	nativebridge.TypeTextField:   "TextField",
	nativebridge.TypeImageView:   "ImageView",
}

// proxy ties a JS view object to its bridged object and property table.
// The proxy owns one reference to obj and the whole property table.
type proxy struct {
	obj   nativebridge.NativeObject
	props *nativebridge.Object
	js    *goja.Object
}

func (r *Runtime) newUIModule() *goja.Object {
	ui := r.vm.NewObject()
	for _, typ := range nativebridge.ObjectTypes() {
		_ = ui.Set("create"+constructorNames[typ], r.constructor(typ))
	}
	return ui
}

// constructor returns ui.createXxx. The optional argument is an object of
// initial property values.
func (r *Runtime) constructor(typ nativebridge.ObjectType) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		obj, err := r.factory.CreateObject(typ)
		if err != nil {
			r.throw(err)
		}
		p := r.newProxy(obj)

		if arg := call.Argument(0); !goja.IsUndefined(arg) && !goja.IsNull(arg) {
			initial := arg.ToObject(r.vm)
			for _, key := range initial.Keys() {
				if err := obj.SetProperty(key, initial.Get(key).Export()); err != nil {
					r.throw(err)
				}
			}
		}
		return p.js
	}
}

func (r *Runtime) newProxy(obj nativebridge.NativeObject) *proxy {
	typ := obj.ObjectType()
	p := &proxy{
		obj:   obj,
		props: nativebridge.NewObject(typ.String()),
		js:    r.vm.NewObject(),
	}
	obj.ExposeProperties(p.props)
	if err := r.BindObject(p.js, p.props); err != nil {
		r.logger.Error("bind properties", zap.Stringer("type", typ), zap.Error(err))
	}

	_ = p.js.Set("type", typ.String())
	_ = p.js.Set("set", func(call goja.FunctionCall) goja.Value {
		if err := obj.SetProperty(call.Argument(0).String(), call.Argument(1).Export()); err != nil {
			r.throw(err)
		}
		return goja.Undefined()
	})
	for _, name := range nativebridge.WritablePropertyNames(typ) {
		_ = p.js.Set(setterName(name), r.setter(obj, name))
	}

	if typ.IsContainer() {
		_ = p.js.Set("add", r.add(p))
		_ = p.js.Set("open", r.open(p))
	}

	r.proxies[p.js] = p
	r.order = append(r.order, p)
	return p
}

func (r *Runtime) setter(obj nativebridge.NativeObject, name string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) != 1 {
			r.throw(&nativebridge.ArityError{Name: setterName(name), Expected: 1, Got: len(call.Arguments)})
		}
		if err := obj.SetProperty(name, call.Arguments[0].Export()); err != nil {
			r.throw(err)
		}
		return goja.Undefined()
	}
}

func (r *Runtime) add(p *proxy) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		child, ok := r.proxyOf(call.Argument(0))
		if !ok {
			panic(r.vm.NewTypeError("add: argument is not a view"))
		}
		if err := p.obj.AddChild(child.obj); err != nil {
			r.throw(err)
		}
		return goja.Undefined()
	}
}

func (r *Runtime) open(p *proxy) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		c, ok := p.obj.(*nativebridge.ContainerObject)
		if !ok {
			panic(r.vm.NewTypeError("open: %s cannot be opened", p.obj.ObjectType()))
		}
		if err := c.Open(); err != nil {
			r.throw(err)
		}
		return goja.Undefined()
	}
}

func (r *Runtime) proxyOf(v goja.Value) (*proxy, bool) {
	o, ok := v.(*goja.Object)
	if !ok {
		return nil, false
	}
	p, ok := r.proxies[o]
	return p, ok
}

// setterName turns "backgroundColor" into "setBackgroundColor".
func setterName(prop string) string {
	return "set" + strings.ToUpper(prop[:1]) + prop[1:]
}
