// Package canvas runs the snake game in a desktop window through Ebitengine.
package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Debug font glyph size used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {0, 0, 0, 255},
	core.ColorBlack:       {0, 0, 0, 255},
	core.ColorRed:         {255, 0, 0, 255},
	core.ColorGreen:       {0, 128, 0, 255},
	core.ColorYellow:      {255, 255, 0, 255},
	core.ColorBlue:        {0, 0, 255, 255},
	core.ColorMagenta:     {255, 0, 255, 255},
	core.ColorCyan:        {0, 255, 255, 255},
	core.ColorWhite:       {255, 255, 255, 255},
	core.ColorBrightRed:   {255, 85, 85, 255},
	core.ColorBrightGreen: {85, 255, 85, 255},
	core.ColorBrightWhite: {255, 255, 255, 255},
	core.ColorOrange:      {255, 165, 0, 255},
	core.ColorGray:        {128, 128, 128, 255},
	core.ColorDarkBlue:    {0, 0, 139, 255},
}

// RGBA returns the window color for c. Unknown colors render magenta.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return color.RGBA{255, 0, 255, 255}
}

// Images maps image names to the color of the disc drawn in their place.
var Images = map[string]core.Color{
	snake.FoodImage: core.ColorRed,
}

// Surface draws board units 1:1 onto an offscreen Ebitengine image.
type Surface struct {
	img     *ebiten.Image
	scratch *ebiten.Image // text staging, tinted when copied to img
}

// NewSurface allocates a width*height offscreen canvas.
func NewSurface(width, height int) *Surface {
	return &Surface{img: ebiten.NewImage(width, height)}
}

// Image returns the canvas for presenting in Draw.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

func (s *Surface) Clear() {
	s.img.Clear()
}

func (s *Surface) FillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), RGBA(c), false)
}

// DrawImage draws a named image as a filled disc inscribed in r.
func (s *Surface) DrawImage(name string, r core.Rect) {
	c, ok := Images[name]
	if !ok {
		c = core.ColorMagenta
	}
	cx, cy := r.Center()
	s.DrawCircle(cx, cy, core.Min(r.W, r.H)/2, c)
}

func (s *Surface) DrawCircle(cx, cy, radius int, c core.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(radius), RGBA(c), true)
}

// DrawText prints with the debug font. The font is white, so the staged
// glyphs are scaled by c on the way to the canvas.
func (s *Surface) DrawText(x, y int, text string, c core.Color, align core.Align) {
	w := len([]rune(text)) * glyphW
	if w == 0 {
		return
	}
	if s.scratch == nil || s.scratch.Bounds().Dx() < w {
		s.scratch = ebiten.NewImage(w, glyphH)
	}
	s.scratch.Clear()
	ebitenutil.DebugPrint(s.scratch, text)

	tx, ty := textOrigin(x, y, text, align)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(tx), float64(ty))
	op.ColorScale.ScaleWithColor(RGBA(c))
	s.img.DrawImage(s.scratch.SubImage(image.Rect(0, 0, w, glyphH)).(*ebiten.Image), op)
}

// textOrigin returns the top-left corner for text anchored at (x, y).
// Centered text is centered on both axes.
func textOrigin(x, y int, text string, align core.Align) (int, int) {
	if align != core.AlignCenter {
		return x, y
	}
	return x - len([]rune(text))*glyphW/2, y - glyphH/2
}
