package nativebridge

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ColorExtractor turns a color-bearing value into normalized RGBA channels.
type ColorExtractor interface {
	ColorComponents(src any) (r, g, b, a float32, err error)
}

// ColorExtractorFunc adapts a function to ColorExtractor.
type ColorExtractorFunc func(src any) (r, g, b, a float32, err error)

// ColorComponents calls f(src).
func (f ColorExtractorFunc) ColorComponents(src any) (r, g, b, a float32, err error) {
	return f(src)
}

// ColorParser is the default ColorExtractor. It accepts:
//
//   - "#RGB", "#RRGGBB" and "#AARRGGBB" hex strings
//   - CSS color names such as "red" or "cornflowerblue", and "transparent"
//   - any image/color.Color
type ColorParser struct{}

// ColorComponents parses src as a color string or an image/color.Color.
func (ColorParser) ColorComponents(src any) (r, g, b, a float32, err error) {
	switch v := src.(type) {
	case string:
		return parseColor(v)
	case color.Color:
		cr, cg, cb, ca := v.RGBA()
		if ca == 0 {
			return 0, 0, 0, 0, nil
		}
		// RGBA is alpha-premultiplied; undo it.
		return float32(cr) / float32(ca), float32(cg) / float32(ca), float32(cb) / float32(ca), float32(ca) / 0xffff, nil
	case nil:
		return 0, 0, 0, 0, fmt.Errorf("%w: missing color", ErrInvalidColor)
	}
	return 0, 0, 0, 0, fmt.Errorf("%w: unsupported color value %T", ErrInvalidColor, src)
}

func parseColor(spec string) (r, g, b, a float32, err error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return 0, 0, 0, 0, fmt.Errorf("%w: empty color", ErrInvalidColor)
	}
	if !strings.HasPrefix(s, "#") {
		name := strings.ToLower(s)
		if name == "transparent" {
			return 0, 0, 0, 0, nil
		}
		c, ok := colornames.Map[name]
		if !ok {
			return 0, 0, 0, 0, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, spec)
		}
		return channel(c.R), channel(c.G), channel(c.B), channel(c.A), nil
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		// #RGB expands each digit: #F80 is #FF8800.
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		fallthrough
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return 0, 0, 0, 0, fmt.Errorf("%w: %q must have 3, 6 or 8 hex digits", ErrInvalidColor, spec)
	}
	v, perr := strconv.ParseUint(hex, 16, 32)
	if perr != nil {
		return 0, 0, 0, 0, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidColor, spec)
	}
	return channel(uint8(v >> 16)), channel(uint8(v >> 8)), channel(uint8(v)), channel(uint8(v >> 24)), nil
}

func channel(v uint8) float32 {
	return float32(v) / 255
}
