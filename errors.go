package nativebridge

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory reports that the toolkit could not allocate a widget.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrNotSupported reports a child kind the receiver cannot compose.
	ErrNotSupported = errors.New("not supported")

	// ErrCycle reports an attempt to add a container to itself or to one of
	// its ancestors.
	ErrCycle = errors.New("container cannot contain itself")

	// ErrNotInitialized reports use of an object that has no native handle.
	ErrNotInitialized = errors.New("object not initialized")

	// ErrHandleMismatch reports a native handle whose class does not match the
	// object's discriminator.
	ErrHandleMismatch = errors.New("native handle does not match object type")

	// ErrUnknownProperty reports a property name the object does not have.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrInvalidValue reports a property value of the wrong type.
	ErrInvalidValue = errors.New("invalid property value")

	// ErrInvalidColor reports a malformed or unrecognized color specification.
	ErrInvalidColor = errors.New("invalid color")

	// ErrUnbound reports a call on a property getter with no source.
	ErrUnbound = errors.New("property getter is not bound")
)

// ArityError is returned when a script passes the wrong number of arguments
// to a native callable.
type ArityError struct {
	Name     string
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("wrong # args: %q expected %d, got %d", e.Name, e.Expected, e.Got)
}

// IsArityError reports whether err is or wraps an *ArityError.
func IsArityError(err error) bool {
	var ae *ArityError
	return errors.As(err, &ae)
}
