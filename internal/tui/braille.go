package tui

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"gazepaint/internal/geom"
)

// brailleBuf is the painting surface: a grid of braille cells, each a 2x4
// block of micro-pixels sharing one foreground colour. Engine coordinates
// are micro-pixel coordinates.
type brailleBuf struct {
	w, h int                // in cells
	m    [][]uint8          // per-cell 8-bit mask
	fg   [][]colorful.Color // per-cell colour
	// stamp remembers which primitive last tinted a cell so that one
	// primitive blends into a cell only once.
	stamp [][]uint32
	op    uint32
}

func newBrailleBuf(w, h int) *brailleBuf {
	b := &brailleBuf{w: w, h: h}
	b.m = make([][]uint8, h)
	b.fg = make([][]colorful.Color, h)
	b.stamp = make([][]uint32, h)
	for i := range b.m {
		b.m[i] = make([]uint8, w)
		b.fg[i] = make([]colorful.Color, w)
		b.stamp[i] = make([]uint32, w)
	}
	return b
}

// resized returns a w×h buffer holding the overlapping part of b.
func (b *brailleBuf) resized(w, h int) *brailleBuf {
	if b != nil && b.w == w && b.h == h {
		return b
	}
	n := newBrailleBuf(w, h)
	if b == nil {
		return n
	}
	for y := 0; y < min(h, b.h); y++ {
		copy(n.m[y], b.m[y])
		copy(n.fg[y], b.fg[y])
	}
	return n
}

func (b *brailleBuf) clear() {
	for y := range b.m {
		clear(b.m[y])
		clear(b.fg[y])
		clear(b.stamp[y])
	}
	b.op = 0
}

// microSize returns the canvas size in micro-pixels.
func (b *brailleBuf) microSize() (int, int) {
	return b.w * 2, b.h * 4
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell) and reports
// whether the cell was empty before.
func (b *brailleBuf) setPixel(mx, my int) (fresh, ok bool) {
	if mx < 0 || my < 0 {
		return false, false
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return false, false
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	fresh = b.m[cy][cx] == 0
	b.m[cy][cx] |= bit
	return fresh, true
}

// plot sets a micro-pixel and tints its cell with c. A cell's first
// colour is taken as is; later primitives blend in by their alpha.
func (b *brailleBuf) plot(mx, my int, c color.NRGBA) {
	fresh, ok := b.setPixel(mx, my)
	if !ok {
		return
	}
	cx, cy := mx/2, my/4
	if b.stamp[cy][cx] == b.op {
		return
	}
	b.stamp[cy][cx] = b.op
	nc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	if fresh {
		b.fg[cy][cx] = nc
		return
	}
	b.fg[cy][cx] = b.fg[cy][cx].BlendRgb(nc, float64(c.A)/255)
}

// begin starts a new primitive.
func (b *brailleBuf) begin() {
	b.op++
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, c color.NRGBA) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.plot(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillMicro fills a polygon given in micro-pixel coordinates. Coverage
// comes from an anti-aliasing rasteriser; pixels at least half covered
// are set.
func (b *brailleBuf) fillMicro(pts []geom.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	bb, _ := geom.BoundsOf(pts)
	wMic, hMic := b.microSize()
	x0 := max(0, int(math.Floor(bb.MinX)))
	y0 := max(0, int(math.Floor(bb.MinY)))
	x1 := min(wMic, int(math.Ceil(bb.MaxX))+1)
	y1 := min(hMic, int(math.Ceil(bb.MaxY))+1)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	r := vector.NewRasterizer(x1-x0, y1-y0)
	r.MoveTo(float32(pts[0].X)-float32(x0), float32(pts[0].Y)-float32(y0))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X)-float32(x0), float32(p.Y)-float32(y0))
	}
	r.ClosePath()
	mask := image.NewAlpha(image.Rect(0, 0, x1-x0, y1-y0))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for y := 0; y < y1-y0; y++ {
		for x := 0; x < x1-x0; x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				b.plot(x0+x, y0+y, c)
			}
		}
	}
}

// stroke draws a segment of the given width.
func (b *brailleBuf) stroke(from, to geom.Point, width float64, c color.NRGBA) {
	d := to.Sub(from)
	l := d.Length()
	if width <= 1.5 || l == 0 {
		b.drawLineMicro(int(math.Floor(from.X)), int(math.Floor(from.Y)), int(math.Floor(to.X)), int(math.Floor(to.Y)), c)
		return
	}
	n := geom.Pt(-d.Y, d.X).Mul(width / 2 / l)
	b.fillMicro([]geom.Point{from.Add(n), to.Add(n), to.Sub(n), from.Sub(n)}, c)
}

// The methods below implement paint.Canvas.

func (b *brailleBuf) Line(from, to geom.Point, width float64, c color.NRGBA) {
	b.begin()
	b.stroke(from, to, width, c)
}

func (b *brailleBuf) Circle(center geom.Point, radius float64, c color.NRGBA) {
	b.begin()
	if radius < 0.75 {
		b.plot(int(math.Floor(center.X)), int(math.Floor(center.Y)), c)
		return
	}
	n := min(64, max(8, int(2*math.Pi*radius)))
	pts := make([]geom.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = center.Add(geom.Pt(radius*math.Cos(a), radius*math.Sin(a)))
	}
	b.fillMicro(pts, c)
}

func (b *brailleBuf) Polygon(pts []geom.Point, c color.NRGBA) {
	b.begin()
	b.fillMicro(pts, c)
}

// curveSteps is the number of segments a curve is flattened into.
const curveSteps = 24

// Curve draws the quadratic Bézier that starts at from, ends at to and
// passes through through at its midpoint.
func (b *brailleBuf) Curve(from, through, to geom.Point, width float64, c color.NRGBA) {
	b.begin()
	ctrl := through.Mul(2).Sub(from.Add(to).Mul(0.5))
	prev := from
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		p := from.Mul(u * u).Add(ctrl.Mul(2 * u * t)).Add(to.Mul(t * t))
		b.stroke(prev, p, width, c)
		prev = p
	}
}

// toLines returns the canvas as plain braille text.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}
