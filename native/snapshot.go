package native

// Node is a serializable description of a widget subtree.
type Node struct {
	ID         uint64   `json:"id" yaml:"id"`
	Kind       string   `json:"kind" yaml:"kind"`
	Layout     string   `json:"layout,omitempty" yaml:"layout,omitempty"`
	Dock       string   `json:"dock,omitempty" yaml:"dock,omitempty"`
	Width      float32  `json:"width,omitempty" yaml:"width,omitempty"`
	Height     float32  `json:"height,omitempty" yaml:"height,omitempty"`
	Background string   `json:"background,omitempty" yaml:"background,omitempty"`
	Text       string   `json:"text,omitempty" yaml:"text,omitempty"`
	Value      *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Image      string   `json:"image,omitempty" yaml:"image,omitempty"`
	Children   []Node   `json:"children,omitempty" yaml:"children,omitempty"`
}

// Snapshot describes c and everything below it.
func Snapshot(c Control) Node {
	n := Node{
		ID:     c.ID(),
		Kind:   c.Kind().String(),
		Width:  c.PreferredWidth(),
		Height: c.PreferredHeight(),
	}
	if p := c.LayoutProperties(); p != nil {
		n.Dock = p.Horizontal.String() + "/" + p.Vertical.String()
	}

	switch w := c.(type) {
	case *Container:
		if w.layout != nil {
			n.Layout = w.layout.LayoutName()
		}
		if bg, ok := w.Background(); ok {
			n.Background = bg.Hex()
		}
		for _, child := range w.children {
			n.Children = append(n.Children, Snapshot(child))
		}
	case *Label:
		n.Text = w.text
	case *Button:
		n.Text = w.text
	case *Slider:
		v := w.value
		n.Value = &v
	case *ProgressIndicator:
		v := w.value
		n.Value = &v
	case *TextField:
		n.Text = w.text
	case *ImageView:
		n.Image = w.image
	}
	return n
}
