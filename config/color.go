package config

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/hcal/render"
)

// Color is a render.Color written as "#rrggbb" or "#rrggbbaa".
type Color render.Color

// ParseColor parses "#rrggbb" or "#rrggbbaa". A missing alpha is opaque.
func ParseColor(s string) (render.Color, error) {
	if len(s) != 7 && len(s) != 9 || s[0] != '#' {
		return render.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return render.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(s) == 7 {
		v = v<<8 | 0xff
	}
	return render.RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// String returns the color in "#rrggbbaa" form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

func to8(v float32) uint8 {
	return uint8(math.Round(float64(max(0, min(v, 1))) * 255))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrInvalidColor, n.Line, err)
	}
	rc, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = Color(rc)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
