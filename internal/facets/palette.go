package facets

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// GrayRGB returns the neutral color with all channels set to v.
func GrayRGB(v uint8) RGB { return RGB{v, v, v} }

// Add is a per channel saturating sum.
func (c RGB) Add(o RGB) RGB {
	return RGB{addByte(c.R, o.R), addByte(c.G, o.G), addByte(c.B, o.B)}
}

// Scale multiplies every channel by v/255.
func (c RGB) Scale(v uint8) RGB {
	sc := func(x uint8) uint8 { return uint8(uint16(x) * uint16(v) / 255) }
	return RGB{sc(c.R), sc(c.G), sc(c.B)}
}

func (c RGB) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

func (c RGB) RGBA() color.RGBA { return color.RGBA{c.R, c.G, c.B, 0xff} }

// ParseRGB accepts "#rrggbb" (or the short "#rgb" form).
func ParseRGB(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, errors.Wrapf(err, "bad color %q", s)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

func (c RGB) MarshalJSON() ([]byte, error) { return json.Marshal(c.Hex()) }

func (c *RGB) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "color must be a hex string")
	}
	v, err := ParseRGB(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// RandomRGB picks a random hue with a bright, moderately saturated tone.
func RandomRGB(rng *rand.Rand) RGB {
	h := rng.Float64() * 360
	s := 0.45 + rng.Float64()*0.5
	v := 0.65 + rng.Float64()*0.35
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return RGB{r, g, b}
}

// Palette colors a frame: lit faces blend Spot by intensity with Ambient by
// the ambient level. Misses take Background.
type Palette struct {
	Spot       RGB
	Ambient    RGB
	Background RGB
}

// RandomPalette draws spot and ambient colors from rng, in that order.
func RandomPalette(rng *rand.Rand) Palette {
	spot := RandomRGB(rng)
	amb := RandomRGB(rng)
	return Palette{Spot: spot, Ambient: amb, Background: GrayRGB(Background)}
}

// Shade returns the color of a hit with the given intensity.
func (p Palette) Shade(intensity, ambient uint8) RGB {
	return p.Spot.Scale(intensity).Add(p.Ambient.Scale(ambient))
}
