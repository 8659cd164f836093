// Package jsbridge exposes bridged native objects to JavaScript running on goja.
//
// Scripts build UI through the "ui" module, available both as require("ui")
// and as the global Ti.UI:
//
//	const ui = require("ui");
//	const win = ui.createWindow({ backgroundColor: "#336699" });
//	const slider = ui.createSlider({ value: 0.5 });
//	win.add(slider);
//	win.open();
//	slider.value(); // 0.5
//
// Native property getters are plain functions on each view. Passing them
// arguments throws a TypeError.
package jsbridge

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/require"
	"go.uber.org/zap"

	"github.com/feather-lang/nativebridge"
)

// ModuleName is the name scripts pass to require.
const ModuleName = "ui"

// Runtime is a goja VM wired to a nativebridge.Factory.
//
// Like the VM it wraps, a Runtime is not safe for concurrent use.
type Runtime struct {
	vm      *goja.Runtime
	factory *nativebridge.Factory
	logger  *zap.Logger
	out     io.Writer

	ui      *goja.Object
	proxies map[*goja.Object]*proxy
	order   []*proxy
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithOutput sets where console.log writes. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) {
		r.out = w
	}
}

// New creates a VM with the ui module, the Ti global and a console.
func New(f *nativebridge.Factory, opts ...Option) *Runtime {
	r := &Runtime{
		vm:      goja.New(),
		factory: f,
		logger:  f.Logger().Named("js"),
		out:     os.Stdout,
		proxies: make(map[*goja.Object]*proxy),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.ui = r.newUIModule()

	registry := require.NewRegistry()
	registry.RegisterNativeModule(ModuleName, func(vm *goja.Runtime, module *goja.Object) {
		if err := module.Set("exports", r.ui); err != nil {
			r.logger.Error("export ui module", zap.Error(err))
		}
	})
	registry.Enable(r.vm)

	ti := r.vm.NewObject()
	_ = ti.Set("UI", r.ui)
	_ = r.vm.Set("Ti", ti)
	_ = r.vm.Set("console", r.newConsole())
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime { return r.vm }

// RunString evaluates src.
func (r *Runtime) RunString(src string) (goja.Value, error) {
	return r.vm.RunString(src)
}

// RunScript evaluates src, reporting errors against name.
func (r *Runtime) RunScript(name, src string) (goja.Value, error) {
	r.logger.Debug("run script", zap.String("name", name))
	return r.vm.RunScript(name, src)
}

// Lookup returns the bridged object behind a view created by a script.
func (r *Runtime) Lookup(v goja.Value) (nativebridge.NativeObject, bool) {
	p, ok := r.proxyOf(v)
	if !ok {
		return nil, false
	}
	return p.obj, true
}

// Close releases every object created through the runtime.
func (r *Runtime) Close() {
	for _, p := range r.order {
		p.props.Close()
		p.obj.Release()
	}
	r.order = nil
	r.proxies = make(map[*goja.Object]*proxy)
}

// BindObject installs every callable member of o on target.
func (r *Runtime) BindObject(target *goja.Object, o *nativebridge.Object) error {
	for _, m := range o.Members() {
		if !m.IsFunction() {
			continue
		}
		if err := target.Set(m.Name(), r.memberFunc(m)); err != nil {
			return fmt.Errorf("bind %s.%s: %w", o.Name(), m.Name(), err)
		}
	}
	return nil
}

// memberFunc marshals a JS call into m and the result back to JS. This is the
// only place where errors turn into JS exceptions.
func (r *Runtime) memberFunc(m nativebridge.Member) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		args := make([]any, len(call.Arguments))
		for i, a := range call.Arguments {
			args[i] = a.Export()
		}
		v, err := m.Call(args)
		if err != nil {
			r.throw(err)
		}
		return r.vm.ToValue(v)
	}
}

// throw raises err in the VM: arity errors as TypeError, anything else as a
// Go error object whose message is err.Error().
func (r *Runtime) throw(err error) {
	if nativebridge.IsArityError(err) {
		panic(r.vm.NewTypeError("%s", err.Error()))
	}
	panic(r.vm.NewGoError(err))
}

func (r *Runtime) newConsole() *goja.Object {
	console := r.vm.NewObject()
	write := func(level string) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			parts := make([]string, len(call.Arguments))
			for i, a := range call.Arguments {
				parts[i] = a.String()
			}
			line := strings.Join(parts, " ")
			fmt.Fprintln(r.out, line)
			r.logger.Debug("console", zap.String("level", level), zap.String("line", line))
			return goja.Undefined()
		}
	}
	_ = console.Set("log", write("log"))
	_ = console.Set("info", write("info"))
	_ = console.Set("warn", write("warn"))
	_ = console.Set("error", write("error"))
	return console
}
