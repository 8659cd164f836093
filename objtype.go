package nativebridge

import (
	"fmt"
	"strings"

	"github.com/feather-lang/nativebridge/native"
)

// ObjectType is the discriminator carried by every bridged object.
//
// The set is closed: a new widget kind needs a new tag here, a row in
// objectKinds and, if containers may hold it, an entry in the attach table.
type ObjectType int

const (
	TypeUnknown ObjectType = iota
	TypeContainer
	TypeWindow
	TypeLabel
	TypeButton
	TypeSlider
	TypeProgressBar
	TypeTextField
	TypeImageView
)

// objectKind maps a discriminator to its name and the native widget class
// that backs it.
type objectKind struct {
	name   string
	widget native.Kind
}

var objectKinds = map[ObjectType]objectKind{
	TypeContainer:   {"container", native.KindContainer},
	TypeWindow:      {"window", native.KindContainer},
	TypeLabel:       {"label", native.KindLabel},
	TypeButton:      {"button", native.KindButton},
	TypeSlider:      {"slider", native.KindSlider},
	TypeProgressBar: {"progressbar", native.KindProgressIndicator},
	TypeTextField:   {"textfield", native.KindTextField},
	TypeImageView:   {"imageview", native.KindImageView},
}

// String returns the lower-case type name used by the script bridges.
func (t ObjectType) String() string {
	if k, ok := objectKinds[t]; ok {
		return k.name
	}
	return "unknown"
}

// IsContainer reports whether objects of this type compose children.
func (t ObjectType) IsContainer() bool {
	return t == TypeContainer || t == TypeWindow
}

func (t ObjectType) widgetKind() (native.Kind, bool) {
	k, ok := objectKinds[t]
	return k.widget, ok
}

// ObjectTypes returns every known discriminator in declaration order.
func ObjectTypes() []ObjectType {
	types := make([]ObjectType, 0, len(objectKinds))
	for t := TypeContainer; t <= TypeImageView; t++ {
		types = append(types, t)
	}
	return types
}

// ParseObjectType maps a name such as "label" or "ProgressBar" to its discriminator.
func ParseObjectType(name string) (ObjectType, error) {
	lower := strings.ToLower(name)
	for t, k := range objectKinds {
		if k.name == lower {
			return t, nil
		}
	}
	return TypeUnknown, fmt.Errorf("unknown object type %q", name)
}
