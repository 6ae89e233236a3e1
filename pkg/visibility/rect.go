package visibility

// Rect is an axis-aligned rectangle in cell coordinates. X and Y locate the
// top-left corner; W and H are the size.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns W*H, or 0 for an empty rect.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Intersect returns the overlap of r and o. The result is the zero Rect if
// they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// IntersectionRatio returns the fraction of r's area that lies inside
// viewport, in [0, 1]. An empty r has ratio 0.
func (r Rect) IntersectionRatio(viewport Rect) float64 {
	area := r.Area()
	if area == 0 {
		return 0
	}
	return float64(r.Intersect(viewport).Area()) / float64(area)
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
