package nativebridge

// Member is a named entry of a script-visible Object.
type Member interface {
	Name() string

	// IsFunction reports whether scripts may call the member.
	IsFunction() bool

	// Call invokes the member with script arguments already converted to Go
	// values.
	Call(args []any) (any, error)

	Retain()
	Release()
}

// Object is a script-visible object: an ordered table of named members.
// The table owns its members; replacing or removing a member, or closing the
// object, releases it.
type Object struct {
	name    string
	members map[string]Member
	order   []string
}

// NewObject creates an empty object.
func NewObject(name string) *Object {
	return &Object{
		name:    name,
		members: make(map[string]Member),
	}
}

// Name returns the name the object was created with.
func (o *Object) Name() string { return o.name }

// AddMember retains m and stores it under m.Name(), releasing any member
// previously stored under that name.
func (o *Object) AddMember(m Member) {
	m.Retain()
	name := m.Name()
	prev, exists := o.members[name]
	o.members[name] = m
	if exists {
		prev.Release()
		return
	}
	o.order = append(o.order, name)
}

// Member looks up a member by name.
func (o *Object) Member(name string) (Member, bool) {
	m, ok := o.members[name]
	return m, ok
}

// Members returns the members in insertion order.
func (o *Object) Members() []Member {
	out := make([]Member, 0, len(o.order))
	for _, name := range o.order {
		out = append(out, o.members[name])
	}
	return out
}

// RemoveMember releases and removes the named member.
func (o *Object) RemoveMember(name string) bool {
	m, ok := o.members[name]
	if !ok {
		return false
	}
	delete(o.members, name)
	for i, n := range o.order {
		if n == name {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	m.Release()
	return true
}

// Close releases every member.
func (o *Object) Close() {
	for _, name := range o.order {
		o.members[name].Release()
	}
	o.members = make(map[string]Member)
	o.order = nil
}
