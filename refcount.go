package nativebridge

// refCounter implements Retain/Release for bridged objects. The count starts
// at one; destroy runs exactly once, when the count drops to zero.
//
// Objects live on the script thread only, so the counter is not atomic.
type refCounter struct {
	refs    int
	destroy func()
}

func newRefCounter(destroy func()) refCounter {
	return refCounter{refs: 1, destroy: destroy}
}

// Retain records another owner.
func (r *refCounter) Retain() {
	if r.refs <= 0 {
		panic("nativebridge: retain of destroyed object")
	}
	r.refs++
}

// Release drops one owner and destroys the object when none remain.
func (r *refCounter) Release() {
	if r.refs <= 0 {
		panic("nativebridge: release of destroyed object")
	}
	r.refs--
	if r.refs == 0 && r.destroy != nil {
		r.destroy()
	}
}

// RefCount returns the current number of owners.
func (r *refCounter) RefCount() int { return r.refs }
