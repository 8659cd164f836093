package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/feather-lang/nativebridge/config"
	"github.com/feather-lang/nativebridge/native"
)

// tree is the printed result of a script: the opened window, if any, and
// every live widget that is not part of it.
type tree struct {
	Window   *native.Node  `json:"window,omitempty" yaml:"window,omitempty"`
	Detached []native.Node `json:"detached,omitempty" yaml:"detached,omitempty"`
}

func (s *session) tree() tree {
	var t tree
	var window native.Control
	if root := s.factory.RootContainer(); root != nil && root.NativeHandle() != nil {
		window = root.NativeHandle()
		n := native.Snapshot(window)
		t.Window = &n
	}
	for _, c := range s.toolkit.Roots() {
		if c == window {
			continue
		}
		t.Detached = append(t.Detached, native.Snapshot(c))
	}
	return t
}

func writeTree(w io.Writer, t tree, format string) error {
	switch format {
	case config.OutputJSON:
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return fmt.Errorf("encode tree: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encode tree: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
