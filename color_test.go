package nativebridge_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/feather-lang/nativebridge"
)

func TestColorParser(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want [4]float32
	}{
		{"short hex", "#F00", [4]float32{1, 0, 0, 1}},
		{"hex", "#00FF00", [4]float32{0, 1, 0, 1}},
		{"hex with alpha", "#800000FF", [4]float32{0, 0, 1, 128.0 / 255}},
		{"lowercase hex", "#ffffff", [4]float32{1, 1, 1, 1}},
		{"name", "red", [4]float32{1, 0, 0, 1}},
		{"mixed case name", "White", [4]float32{1, 1, 1, 1}},
		{"transparent", "transparent", [4]float32{0, 0, 0, 0}},
		{"image color", color.RGBA{R: 0, G: 0, B: 255, A: 255}, [4]float32{0, 0, 1, 1}},
		{"premultiplied", color.RGBA{R: 64, G: 0, B: 0, A: 128}, [4]float32{0.5, 0, 0, 128.0 / 255}},
	}

	var p nativebridge.ColorParser
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a, err := p.ColorComponents(tt.src)
			if err != nil {
				t.Fatalf("ColorComponents failed: %v", err)
			}
			got := [4]float32{r, g, b, a}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 0.01)); diff != "" {
				t.Errorf("channels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColorParserErrors(t *testing.T) {
	var p nativebridge.ColorParser
	for _, src := range []any{"", "#12", "#GGGGGG", "notacolor", nil, 42} {
		_, _, _, _, err := p.ColorComponents(src)
		if !errors.Is(err, nativebridge.ErrInvalidColor) {
			t.Errorf("ColorComponents(%#v): expected ErrInvalidColor, got %v", src, err)
		}
	}
}
