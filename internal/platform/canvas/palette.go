package canvas

import (
	"image/color"

	"github.com/vovakirdan/party-pascal/internal/core"
)

var background = color.RGBA{R: 0x12, G: 0x12, B: 0x1c, A: 0xff}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
	core.ColorRed:           {R: 0xc0, G: 0x39, B: 0x2b, A: 0xff},
	core.ColorGreen:         {R: 0x27, G: 0xae, B: 0x60, A: 0xff},
	core.ColorYellow:        {R: 0xd4, G: 0xac, B: 0x0d, A: 0xff},
	core.ColorBlue:          {R: 0x34, G: 0x5d, B: 0xc8, A: 0xff},
	core.ColorMagenta:       {R: 0x9b, G: 0x59, B: 0xb6, A: 0xff},
	core.ColorCyan:          {R: 0x16, G: 0xa0, B: 0x85, A: 0xff},
	core.ColorWhite:         {R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
	core.ColorBrightRed:     {R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	core.ColorBrightGreen:   {R: 0x55, G: 0xff, B: 0x55, A: 0xff},
	core.ColorBrightYellow:  {R: 0xff, G: 0xff, B: 0x55, A: 0xff},
	core.ColorBrightBlue:    {R: 0x55, G: 0x88, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xff, G: 0x55, B: 0xff, A: 0xff},
	core.ColorBrightCyan:    {R: 0x55, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0x99, B: 0x33, A: 0xff},
	core.ColorGray:          {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// rgba returns the canvas color for a cell color.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
