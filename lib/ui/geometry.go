package ui

import "fmt"

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func (r Rect) Bottom() int {
	return r.Y + r.Height
}

func (r Rect) Right() int {
	return r.X + r.Width
}

func (r Rect) Translate(dx, dy int) Rect {
	return Rect{r.X + dx, r.Y + dy, r.Width, r.Height}
}

func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := maxInt(r.X, o.X), maxInt(r.Y, o.Y)
	x1, y1 := minInt(r.Right(), o.Right()), minInt(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
