// Package core provides the drawing surface, geometry and input types shared
// by sessions and hosts. It has no external dependencies (especially no
// Bubble Tea or ebiten) so session logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells. Sessions derive their
// rects from the current screen size and hit-test pointer events against them.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Centered returns a w×h rectangle centered inside an area of areaW×areaH.
// The size is shrunk to fit the area.
func Centered(areaW, areaH, w, h int) Rect {
	w = Clamp(w, 0, areaW)
	h = Clamp(h, 0, areaH)
	return NewRect((areaW-w)/2, (areaH-h)/2, w, h)
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by dx on the left and right and dy on the
// top and bottom.
func (r Rect) Inset(dx, dy int) Rect {
	return NewRect(r.X+dx, r.Y+dy, Max(r.W-2*dx, 0), Max(r.H-2*dy, 0))
}

// Rows splits the rectangle into n stacked rows of height h separated by gap.
// Rows are centered vertically within r.
func (r Rect) Rows(n, h, gap int) []Rect {
	if n <= 0 {
		return nil
	}
	total := n*h + (n-1)*gap
	y := r.Y + Max((r.H-total)/2, 0)
	rows := make([]Rect, n)
	for i := range rows {
		rows[i] = NewRect(r.X, y+i*(h+gap), r.W, h)
	}
	return rows
}

// Columns splits the rectangle into n side-by-side columns separated by gap.
func (r Rect) Columns(n, gap int) []Rect {
	if n <= 0 {
		return nil
	}
	w := Max((r.W-(n-1)*gap)/n, 1)
	cols := make([]Rect, n)
	for i := range cols {
		cols[i] = NewRect(r.X+i*(w+gap), r.Y, w, r.H)
	}
	return cols
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
