// Package tclbridge exposes bridged native objects to a feather TCL interpreter.
//
// Objects are created with the ui command and become commands themselves,
// named after their type and a per-type counter:
//
//	set win [ui create window backgroundColor #336699]
//	set s [ui create slider value 0.5]
//	$win add $s
//	$win open
//	$s value        ;# 0.5
//	$s set value 0.25
//	$s destroy
//
// Every readable property is a zero-argument method on the handle. Destroying
// a handle removes its command from the interpreter.
package tclbridge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/feather-lang/feather"
	"go.uber.org/zap"

	"github.com/feather-lang/nativebridge"
)

// CommandName is the TCL command installed by Bind.
const CommandName = "ui"

// Bridge tracks the handles created through one interpreter.
type Bridge struct {
	interp  *feather.Interp
	factory *nativebridge.Factory
	logger  *zap.Logger

	handles  map[string]*handle
	order    []string
	counters map[nativebridge.ObjectType]int
}

// handle owns one reference to obj and the member table of its properties.
type handle struct {
	name  string
	obj   nativebridge.NativeObject
	props *nativebridge.Object
}

// Bind installs the ui command in interp.
func Bind(interp *feather.Interp, f *nativebridge.Factory) *Bridge {
	b := &Bridge{
		interp:   interp,
		factory:  f,
		logger:   f.Logger().Named("tcl"),
		handles:  make(map[string]*handle),
		counters: make(map[nativebridge.ObjectType]int),
	}
	interp.Register(CommandName, b.uiCommand)
	return b
}

// Eval evaluates script and returns its result as a string.
func (b *Bridge) Eval(script string) (string, error) {
	res, err := b.interp.Eval(script)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

// Lookup returns the object behind a handle name.
func (b *Bridge) Lookup(name string) (nativebridge.NativeObject, bool) {
	h, ok := b.handles[name]
	if !ok {
		return nil, false
	}
	return h.obj, true
}

// Handles returns the live handle names in creation order.
func (b *Bridge) Handles() []string {
	names := make([]string, len(b.order))
	copy(names, b.order)
	return names
}

// Close destroys every live handle.
func (b *Bridge) Close() {
	for _, name := range b.Handles() {
		b.destroy(name)
	}
}

// uiCommand implements:
//
//	ui create type ?prop value ...?
//	ui types
//	ui handles
func (b *Bridge) uiCommand(sub string, args ...string) (string, error) {
	switch sub {
	case "create":
		if len(args) < 1 {
			return "", fmt.Errorf("wrong # args: should be \"%s create type ?prop value ...?\"", CommandName)
		}
		return b.create(args[0], args[1:])
	case "types":
		var names []string
		for _, t := range nativebridge.ObjectTypes() {
			names = append(names, t.String())
		}
		return list(names), nil
	case "handles":
		return list(b.order), nil
	default:
		return "", fmt.Errorf("unknown subcommand %q: must be create, handles, or types", sub)
	}
}

func (b *Bridge) create(typeName string, props []string) (string, error) {
	typ, err := nativebridge.ParseObjectType(typeName)
	if err != nil {
		return "", err
	}
	if len(props)%2 != 0 {
		return "", fmt.Errorf("missing value for property %q", props[len(props)-1])
	}

	obj, err := b.factory.CreateObject(typ)
	if err != nil {
		return "", err
	}
	for i := 0; i < len(props); i += 2 {
		if err := obj.SetProperty(strings.TrimPrefix(props[i], "-"), props[i+1]); err != nil {
			obj.Release()
			return "", err
		}
	}

	b.counters[typ]++
	h := &handle{
		name:  typ.String() + strconv.Itoa(b.counters[typ]),
		obj:   obj,
		props: nativebridge.NewObject(typ.String()),
	}
	obj.ExposeProperties(h.props)

	b.handles[h.name] = h
	b.order = append(b.order, h.name)
	b.interp.Register(h.name, func(method string, args ...string) (string, error) {
		return b.invoke(h.name, method, args)
	})
	b.logger.Debug("created handle", zap.String("handle", h.name))
	return h.name, nil
}

// invoke dispatches a method call on a handle command.
func (b *Bridge) invoke(name, method string, args []string) (string, error) {
	h, ok := b.handles[name]
	if !ok {
		return "", fmt.Errorf("invalid command name %q", name)
	}

	switch method {
	case "set":
		if len(args) == 0 || len(args)%2 != 0 {
			return "", fmt.Errorf("wrong # args: should be \"%s set prop value ?prop value ...?\"", name)
		}
		for i := 0; i < len(args); i += 2 {
			if err := h.obj.SetProperty(strings.TrimPrefix(args[i], "-"), args[i+1]); err != nil {
				return "", err
			}
		}
		return "", nil
	case "add":
		if len(args) != 1 {
			return "", fmt.Errorf("wrong # args: should be \"%s add child\"", name)
		}
		child, ok := b.handles[args[0]]
		if !ok {
			return "", fmt.Errorf("unknown handle %q", args[0])
		}
		return "", h.obj.AddChild(child.obj)
	case "open":
		c, ok := h.obj.(*nativebridge.ContainerObject)
		if !ok {
			return "", fmt.Errorf("%s: %w", name, nativebridge.ErrNotSupported)
		}
		return "", c.Open()
	case "background":
		if len(args) != 1 {
			return "", fmt.Errorf("wrong # args: should be \"%s background color\"", name)
		}
		c, ok := h.obj.(*nativebridge.ContainerObject)
		if !ok {
			return "", fmt.Errorf("%s: %w", name, nativebridge.ErrNotSupported)
		}
		return "", c.SetBackgroundColor(args[0])
	case "type":
		return h.obj.ObjectType().String(), nil
	case "properties":
		return list(nativebridge.PropertyNames(h.obj.ObjectType())), nil
	case "destroy":
		b.destroy(name)
		return "", nil
	}

	m, ok := h.props.Member(method)
	if !ok {
		return "", fmt.Errorf("%s: unknown method %q", name, method)
	}
	callArgs := make([]any, len(args))
	for i, a := range args {
		callArgs[i] = a
	}
	v, err := m.Call(callArgs)
	if err != nil {
		return "", err
	}
	return format(v), nil
}

// destroy drops the handle command from the interpreter and releases the
// handle's object and member table.
func (b *Bridge) destroy(name string) {
	h, ok := b.handles[name]
	if !ok {
		return
	}
	delete(b.handles, name)
	b.interp.UnregisterCommand(name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	h.props.Close()
	h.obj.Release()
	b.logger.Debug("destroyed handle", zap.String("handle", name))
}

// format renders a property value as a TCL result.
func format(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		if val {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprint(v)
	}
}

// list joins items into a TCL list.
func list(items []string) string {
	parts := make([]string, len(items))
	for i, s := range items {
		parts[i] = quote(s)
	}
	return strings.Join(parts, " ")
}

// quote adds braces around a string if it contains special characters.
func quote(s string) string {
	if s == "" {
		return "{}"
	}
	if strings.ContainsAny(s, " \t\n{}\"\\$[]") {
		return "{" + s + "}"
	}
	return s
}
