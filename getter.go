package nativebridge

// PropertySource supplies the current value of a native property. Values are
// plain Go values: string, float64, int64, bool or nil.
type PropertySource interface {
	PropertyValue() any
}

// PropertyFunc adapts a function to PropertySource.
type PropertyFunc func() any

// PropertyValue calls f.
func (f PropertyFunc) PropertyValue() any { return f() }

// Property is a settable PropertySource.
type Property struct {
	value any
}

// NewProperty returns a property holding v.
func NewProperty(v any) *Property { return &Property{value: v} }

// Set replaces the stored value.
func (p *Property) Set(v any) { p.value = v }

// PropertyValue returns the stored value.
func (p *Property) PropertyValue() any { return p.value }

// GetterState is the lifecycle stage of a PropertyGetter.
type GetterState int

const (
	GetterUnbound GetterState = iota
	GetterBound
	GetterInvoked
)

// String returns the lower-case name of the state.
func (s GetterState) String() string {
	switch s {
	case GetterUnbound:
		return "unbound"
	case GetterBound:
		return "bound"
	case GetterInvoked:
		return "invoked"
	}
	return "invalid"
}

// PropertyGetter is a callable member that returns the current value of one
// native property. It takes no arguments.
//
// The getter does not own its source. Whoever binds it guarantees that the
// source outlives the getter, typically by owning both the source and the
// Object the getter is registered on.
type PropertyGetter struct {
	refCounter
	name   string
	source PropertySource
	state  GetterState
}

// NewPropertyGetter returns an unbound getter with one reference.
func NewPropertyGetter(name string) *PropertyGetter {
	g := &PropertyGetter{name: name}
	g.refCounter = newRefCounter(g.unbind)
	return g
}

// AddPropertyGetter binds a new getter named name to source and registers it
// on parent, which becomes its only owner.
func AddPropertyGetter(parent *Object, source PropertySource, name string) {
	g := NewPropertyGetter(name)
	g.Bind(source)
	parent.AddMember(g)
	g.Release()
}

// Bind attaches the getter to source.
func (g *PropertyGetter) Bind(source PropertySource) {
	g.source = source
	if source == nil {
		g.state = GetterUnbound
		return
	}
	g.state = GetterBound
}

// Name returns the property name the getter reads.
func (g *PropertyGetter) Name() string { return g.name }

// IsFunction reports that a getter is callable. It is always true.
func (g *PropertyGetter) IsFunction() bool { return true }

// State returns the getter's current lifecycle state.
func (g *PropertyGetter) State() GetterState { return g.state }

// Call returns the source's value at the time of the call. Any argument is an
// *ArityError and leaves the source untouched.
func (g *PropertyGetter) Call(args []any) (any, error) {
	if len(args) != 0 {
		return nil, &ArityError{Name: g.name, Expected: 0, Got: len(args)}
	}
	if g.source == nil {
		return nil, ErrUnbound
	}
	g.state = GetterInvoked
	return g.source.PropertyValue(), nil
}

func (g *PropertyGetter) unbind() {
	g.source = nil
	g.state = GetterUnbound
}
