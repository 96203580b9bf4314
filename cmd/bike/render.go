package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/setanarut/bike"
	"github.com/setanarut/vec"
)

// Terminal cells are about twice as tall as they are wide.
const (
	unitsPerColumn = 4.0
	unitsPerRow    = 8.0
)

var _ bike.Drawer = (*renderer)(nil)

// renderer draws world geometry onto a tcell screen with a camera following the bike.
type renderer struct {
	screen tcell.Screen
	w, h   int

	view    bike.Transform // world to cell
	inverse bike.Transform // cell to world
}

func newRenderer(screen tcell.Screen) *renderer {
	return &renderer{screen: screen}
}

// begin clears the screen and centers the camera on focus.
func (r *renderer) begin(focus vec.Vec2) {
	r.w, r.h = r.screen.Size()
	r.screen.Clear()
	center := vec.Vec2{X: float64(r.w) / 2, Y: float64(r.h) / 2}
	r.view = bike.NewTransformTranslate(center).
		Mult(bike.NewTransformScale(1/unitsPerColumn, 1/unitsPerRow)).
		Mult(bike.NewTransformTranslate(focus.Neg()))
	r.inverse = r.view.Inverse()
}

func (r *renderer) cell(p vec.Vec2) (int, int) {
	c := r.view.Apply(p)
	return int(math.Floor(c.X)), int(math.Floor(c.Y))
}

// cellCenter returns the world position of the center of cell x, y.
func (r *renderer) cellCenter(x, y int) vec.Vec2 {
	return r.inverse.Apply(vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
}

func (r *renderer) set(x, y int, ch rune, fill bike.FColor) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(toColor(fill)))
}

// cellRange returns the visible cells covered by bb.
func (r *renderer) cellRange(bb bike.BB) (x0, y0, x1, y1 int) {
	vb := r.view.BB(bb)
	x0 = max(int(math.Floor(vb.L)), 0)
	y0 = max(int(math.Floor(vb.B)), 0)
	x1 = min(int(math.Ceil(vb.R)), r.w-1)
	y1 = min(int(math.Ceil(vb.T)), r.h-1)
	return
}

func (r *renderer) DrawCircle(pos vec.Vec2, angle, radius float64, fill bike.FColor) {
	x0, y0, x1, y1 := r.cellRange(bike.NewBBForCircle(pos, radius))
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if r.cellCenter(x, y).Sub(pos).LengthSq() <= r2 {
				r.set(x, y, 'o', fill)
			}
		}
	}
	// spoke, so the rotation is visible
	r.DrawSegment(pos, pos.Add(vec.ForAngle(angle).Scale(radius)), fill)
}

func (r *renderer) DrawSegment(a, b vec.Vec2, fill bike.FColor) {
	ax, ay := r.cell(a)
	bx, by := r.cell(b)
	dx, dy := bx-ax, by-ay
	n := max(abs(dx), abs(dy))
	if n == 0 {
		r.set(ax, ay, '+', fill)
		return
	}
	ch := lineRune(dx, dy)
	for i := 0; i <= n; i++ {
		x := ax + int(math.Round(float64(dx*i)/float64(n)))
		y := ay + int(math.Round(float64(dy*i)/float64(n)))
		r.set(x, y, ch, fill)
	}
}

func (r *renderer) DrawFatSegment(a, b vec.Vec2, radius float64, fill bike.FColor) {
	// a cell is wider than every limb
	r.DrawSegment(a, b, fill)
}

func (r *renderer) DrawPolygon(verts []vec.Vec2, fill bike.FColor) {
	if len(verts) < 3 {
		return
	}
	poly := bike.NewPolygon(bike.Wall, verts)
	x0, y0, x1, y1 := r.cellRange(poly.BB)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if poly.ContainsPoint(r.cellCenter(x, y)) {
				r.set(x, y, '█', fill)
			}
		}
	}
}

func (r *renderer) DrawDot(size float64, pos vec.Vec2, fill bike.FColor) {
	x, y := r.cell(pos)
	r.set(x, y, '*', fill)
}

// text writes s at column x, row y in the default style.
func (r *renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= r.w {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *renderer) show() {
	r.screen.Show()
}

func toColor(c bike.FColor) tcell.Color {
	return tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
}

func lineRune(dx, dy int) rune {
	switch {
	case abs(dy)*2 < abs(dx):
		return '-'
	case abs(dx)*2 < abs(dy):
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
