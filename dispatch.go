package nativebridge

import (
	"errors"
	"fmt"

	"github.com/feather-lang/nativebridge/native"
)

// attachFunc downcasts a child handle to the widget class implied by its
// discriminator and composes it under parent.
type attachFunc func(parent *native.Container, child native.Control) error

// attachTable lists the child kinds a container can compose. Kinds missing
// from the table are reported as ErrNotSupported.
var attachTable = map[ObjectType]attachFunc{
	TypeContainer:   attachAs[*native.Container],
	TypeWindow:      attachAs[*native.Container],
	TypeLabel:       attachAs[*native.Label],
	TypeButton:      attachAs[*native.Button],
	TypeSlider:      attachAs[*native.Slider],
	TypeProgressBar: attachAs[*native.ProgressIndicator],
}

func attachAs[T native.Control](parent *native.Container, child native.Control) error {
	w, ok := child.(T)
	if !ok {
		var want T
		return fmt.Errorf("%w: want %T, have %T", ErrHandleMismatch, want, child)
	}
	if err := parent.Add(w); err != nil {
		if errors.Is(err, native.ErrCycle) {
			return fmt.Errorf("%w: %w", ErrCycle, err)
		}
		return fmt.Errorf("%w: %w", ErrNotInitialized, err)
	}
	return nil
}

// CanAttach reports whether containers accept children of type t.
func CanAttach(t ObjectType) bool {
	_, ok := attachTable[t]
	return ok
}
