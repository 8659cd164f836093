package nativebridge

import (
	"fmt"
	"strconv"

	"github.com/feather-lang/nativebridge/native"
)

// propertyDef describes one native property of an object type. get reads the
// live handle; set, when present, writes it.
type propertyDef struct {
	name string
	get  func(h native.Control) any
	set  func(o *nativeObject, v any) error
}

var sizeProperties = []propertyDef{
	{
		name: "width",
		get:  func(h native.Control) any { return float64(h.PreferredWidth()) },
		set: func(o *nativeObject, v any) error {
			f, err := toFloat(v)
			if err != nil {
				return err
			}
			o.handle.SetPreferredWidth(float32(f))
			return nil
		},
	},
	{
		name: "height",
		get:  func(h native.Control) any { return float64(h.PreferredHeight()) },
		set: func(o *nativeObject, v any) error {
			f, err := toFloat(v)
			if err != nil {
				return err
			}
			o.handle.SetPreferredHeight(float32(f))
			return nil
		},
	},
}

var containerProperties = withSize(
	propertyDef{
		name: "backgroundColor",
		get: func(h native.Control) any {
			if bg, ok := h.(*native.Container).Background(); ok {
				return bg.Hex()
			}
			return ""
		},
		set: func(o *nativeObject, v any) error { return o.setBackgroundColor(v) },
	},
	propertyDef{
		name: "childCount",
		get:  func(h native.Control) any { return int64(len(h.(*native.Container).Children())) },
	},
)

var propertyTables = map[ObjectType][]propertyDef{
	TypeContainer: containerProperties,
	TypeWindow:    containerProperties,
	TypeLabel: withSize(
		textProperty("text",
			func(h native.Control) string { return h.(*native.Label).Text() },
			func(h native.Control, s string) { h.(*native.Label).SetText(s) }),
	),
	TypeButton: withSize(
		textProperty("title",
			func(h native.Control) string { return h.(*native.Button).Text() },
			func(h native.Control, s string) { h.(*native.Button).SetText(s) }),
	),
	TypeSlider: withSize(
		rangeProperties(func(h native.Control) rangeWidget { return h.(*native.Slider) })...,
	),
	TypeProgressBar: withSize(
		rangeProperties(func(h native.Control) rangeWidget { return h.(*native.ProgressIndicator) })...,
	),
	TypeTextField: withSize(
		textProperty("value",
			func(h native.Control) string { return h.(*native.TextField).Text() },
			func(h native.Control, s string) { h.(*native.TextField).SetText(s) }),
		textProperty("hintText",
			func(h native.Control) string { return h.(*native.TextField).HintText() },
			func(h native.Control, s string) { h.(*native.TextField).SetHintText(s) }),
	),
	TypeImageView: withSize(
		textProperty("image",
			func(h native.Control) string { return h.(*native.ImageView).Image() },
			func(h native.Control, s string) { h.(*native.ImageView).SetImage(s) }),
	),
}

func withSize(defs ...propertyDef) []propertyDef {
	return append(defs, sizeProperties...)
}

func textProperty(name string, get func(native.Control) string, set func(native.Control, string)) propertyDef {
	return propertyDef{
		name: name,
		get:  func(h native.Control) any { return get(h) },
		set: func(o *nativeObject, v any) error {
			s, err := toText(v)
			if err != nil {
				return err
			}
			set(o.handle, s)
			return nil
		},
	}
}

// rangeWidget is satisfied by sliders and progress indicators.
type rangeWidget interface {
	Value() float64
	Min() float64
	Max() float64
	SetValue(v float64)
	SetRange(min, max float64)
}

func rangeProperties(as func(native.Control) rangeWidget) []propertyDef {
	number := func(apply func(w rangeWidget, f float64)) func(o *nativeObject, v any) error {
		return func(o *nativeObject, v any) error {
			f, err := toFloat(v)
			if err != nil {
				return err
			}
			apply(as(o.handle), f)
			return nil
		}
	}
	return []propertyDef{
		{
			name: "value",
			get:  func(h native.Control) any { return as(h).Value() },
			set:  number(func(w rangeWidget, f float64) { w.SetValue(f) }),
		},
		{
			name: "min",
			get:  func(h native.Control) any { return as(h).Min() },
			set:  number(func(w rangeWidget, f float64) { w.SetRange(f, w.Max()) }),
		},
		{
			name: "max",
			get:  func(h native.Control) any { return as(h).Max() },
			set:  number(func(w rangeWidget, f float64) { w.SetRange(w.Min(), f) }),
		},
	}
}

func lookupProperty(typ ObjectType, name string) (propertyDef, bool) {
	for _, def := range propertyTables[typ] {
		if def.name == name {
			return def, true
		}
	}
	return propertyDef{}, false
}

// PropertyNames returns the readable property names of typ.
func PropertyNames(typ ObjectType) []string {
	defs := propertyTables[typ]
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		if def.get != nil {
			names = append(names, def.name)
		}
	}
	return names
}

func (o *nativeObject) setBackgroundColor(src any) error {
	h, ok := o.handle.(*native.Container)
	if !ok || h == nil {
		return fmt.Errorf("set background of %s: %w", o.typ, ErrNotInitialized)
	}
	r, g, b, a, err := o.factory.Colors().ColorComponents(src)
	if err != nil {
		return err
	}
	h.SetBackground(native.ColorFromRGBA(r, g, b, a))
	return nil
}

// handleProperty reads one property of a bridged object's current handle.
// It does not retain the object.
type handleProperty struct {
	obj *nativeObject
	get func(native.Control) any
}

func (p *handleProperty) PropertyValue() any {
	if p.obj.handle == nil {
		return nil
	}
	return p.get(p.obj.handle)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: expected number but got %q", ErrInvalidValue, n)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: expected number but got %T", ErrInvalidValue, v)
}

func toText(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	case nil:
		return "", fmt.Errorf("%w: expected string but got nil", ErrInvalidValue)
	case bool, int, int64, float64:
		return fmt.Sprint(s), nil
	}
	return "", fmt.Errorf("%w: expected string but got %T", ErrInvalidValue, v)
}

// WritablePropertyNames returns the property names of typ that SetProperty accepts.
func WritablePropertyNames(typ ObjectType) []string {
	defs := propertyTables[typ]
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		if def.set != nil {
			names = append(names, def.name)
		}
	}
	return names
}
