package window

import (
	"image/color"

	"github.com/vovakirdan/clipper-arcade/internal/core"
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {0xdd, 0xdd, 0xdd, 0xff},
	core.ColorRed:          {0xc0, 0x30, 0x30, 0xff},
	core.ColorGreen:        {0x3c, 0x9a, 0x3c, 0xff},
	core.ColorYellow:       {0xd8, 0xc0, 0x30, 0xff},
	core.ColorBlue:         {0x34, 0x5c, 0xc8, 0xff},
	core.ColorMagenta:      {0xb0, 0x40, 0xb0, 0xff},
	core.ColorCyan:         {0x30, 0xb0, 0xc0, 0xff},
	core.ColorWhite:        {0xe0, 0xe0, 0xe0, 0xff},
	core.ColorBrightRed:    {0xff, 0x44, 0x44, 0xff},
	core.ColorBrightGreen:  {0x66, 0xdd, 0x55, 0xff},
	core.ColorBrightYellow: {0xff, 0xee, 0x55, 0xff},
	core.ColorBrightBlue:   {0x66, 0x99, 0xff, 0xff},
	core.ColorBrightWhite:  {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:       {0xff, 0x8c, 0x1a, 0xff},
	core.ColorGray:         {0x88, 0x88, 0x88, 0xff},
	core.ColorBrown:        {0x8b, 0x5a, 0x2b, 0xff},
	core.ColorGold:         {0xff, 0xd7, 0x00, 0xff},
	core.ColorSky:          {0x87, 0xce, 0xeb, 0xff},
}

// rgba maps a cell color to a pixel color. Unknown colors fall back to default.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// fade scales a color's alpha by a, clamped to [0, 1]. The result is
// premultiplied as ebiten expects.
func fade(c color.RGBA, a float64) color.RGBA {
	a = core.ClampF(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// lerpColor blends a toward b by t in [0, 1].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = core.ClampF(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
