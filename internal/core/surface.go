package core

// Align controls horizontal text anchoring for DrawText.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Surface is an abstract 2D drawing target in board units.
// The game emits drawing intents each frame; how they look is up to the implementation.
type Surface interface {
	Clear()
	FillRect(r Rect, c Color)
	DrawImage(name string, r Rect)
	DrawCircle(cx, cy, radius int, c Color)
	DrawText(x, y int, text string, c Color, align Align)
}

// OpKind identifies a recorded drawing intent.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpImage
	OpCircle
	OpText
)

// DrawOp is one recorded drawing intent.
type DrawOp struct {
	Kind   OpKind
	Rect   Rect
	Color  Color
	Name   string // image name (OpImage)
	Text   string // OpText
	Align  Align
	Radius int
}

// DrawList is a Surface that records intents instead of drawing them.
type DrawList struct {
	ops []DrawOp
}

// NewDrawList creates an empty recording surface.
func NewDrawList() *DrawList {
	return &DrawList{}
}

func (d *DrawList) Clear() {
	d.ops = append(d.ops, DrawOp{Kind: OpClear})
}

func (d *DrawList) FillRect(r Rect, c Color) {
	d.ops = append(d.ops, DrawOp{Kind: OpFillRect, Rect: r, Color: c})
}

func (d *DrawList) DrawImage(name string, r Rect) {
	d.ops = append(d.ops, DrawOp{Kind: OpImage, Rect: r, Name: name})
}

func (d *DrawList) DrawCircle(cx, cy, radius int, c Color) {
	d.ops = append(d.ops, DrawOp{
		Kind:   OpCircle,
		Rect:   NewRect(cx-radius, cy-radius, radius*2, radius*2),
		Color:  c,
		Radius: radius,
	})
}

func (d *DrawList) DrawText(x, y int, text string, c Color, align Align) {
	d.ops = append(d.ops, DrawOp{Kind: OpText, Rect: NewRect(x, y, 0, 0), Color: c, Text: text, Align: align})
}

// Ops returns the recorded intents in emission order.
func (d *DrawList) Ops() []DrawOp {
	return d.ops
}

// Texts returns the text of every recorded OpText.
func (d *DrawList) Texts() []string {
	var out []string
	for _, op := range d.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns how many intents of the given kind were recorded.
func (d *DrawList) Count(kind OpKind) int {
	n := 0
	for _, op := range d.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards all recorded intents.
func (d *DrawList) Reset() {
	d.ops = d.ops[:0]
}

// Sprite is the terminal stand-in for a named image.
type Sprite struct {
	Rune  rune
	Color Color
}

// ColsPerCell is how many terminal columns one board cell spans.
// Terminal glyphs are roughly twice as tall as wide.
const ColsPerCell = 2

// Raster is a Surface that rasterizes board units onto a terminal Screen.
// One board cell maps to ColsPerCell columns and one row.
type Raster struct {
	screen   *Screen
	cellSize int
	offX     int
	offY     int
	sprites  map[string]Sprite
}

// NewRaster creates a raster that draws onto screen with the board's top-left
// corner at terminal position (offX, offY).
func NewRaster(screen *Screen, cellSize, offX, offY int) *Raster {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Raster{
		screen:   screen,
		cellSize: cellSize,
		offX:     offX,
		offY:     offY,
		sprites:  make(map[string]Sprite),
	}
}

// SetSprite registers the glyph used for a named image.
func (r *Raster) SetSprite(name string, s Sprite) {
	r.sprites[name] = s
}

// Screen returns the underlying screen buffer.
func (r *Raster) Screen() *Screen {
	return r.screen
}

func (r *Raster) col(x int) int {
	return r.offX + floorDiv(x*ColsPerCell, r.cellSize)
}

func (r *Raster) row(y int) int {
	return r.offY + floorDiv(y, r.cellSize)
}

// span converts a board-unit rect to the terminal cells it covers.
func (r *Raster) span(rect Rect) Rect {
	c0, r0 := r.col(rect.X), r.row(rect.Y)
	c1 := r.offX + ceilDiv(rect.Right()*ColsPerCell, r.cellSize)
	r1 := r.offY + ceilDiv(rect.Bottom(), r.cellSize)
	return NewRect(c0, r0, Max(c1-c0, 1), Max(r1-r0, 1))
}

func (r *Raster) Clear() {
	r.screen.Clear()
}

func (r *Raster) FillRect(rect Rect, c Color) {
	r.screen.DrawRect(r.span(rect), '█', c)
}

func (r *Raster) DrawImage(name string, rect Rect) {
	s, ok := r.sprites[name]
	if !ok {
		s = Sprite{Rune: '?', Color: ColorMagenta}
	}
	r.screen.DrawRect(r.span(rect), s.Rune, s.Color)
}

func (r *Raster) DrawCircle(cx, cy, radius int, c Color) {
	r.screen.DrawRect(r.span(NewRect(cx-radius, cy-radius, radius*2, radius*2)), '●', c)
}

func (r *Raster) DrawText(x, y int, text string, c Color, align Align) {
	col, row := r.col(x), r.row(y)
	if align == AlignCenter {
		n := len([]rune(text))
		col -= n / 2
		// Keep centered text whole when the screen is barely wider than the board.
		col = Max(Min(col, r.screen.Width()-n), 0)
	}
	r.screen.DrawText(col, row, text, c)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
