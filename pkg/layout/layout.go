package layout

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Size is a width and height in pixel space.
type Size struct {
	Width, Height float64
}

func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Center returns the midpoint of an area of this size anchored at the origin.
func (s Size) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

// Rect is an axis aligned rectangle.
type Rect struct {
	Position Point
	Size     Size
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{Position: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}
