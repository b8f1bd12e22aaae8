package contour

import (
	"image"
	"math"
	"sort"
)

// Area возвращает площадь многоугольника (формула площади Гаусса, без знака).
func Area(points []image.Point) float64 {
	return math.Abs(signedArea(points))
}

func signedArea(points []image.Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}

	sum := 0.0
	prev := points[n-1]
	for _, p := range points {
		sum += float64(prev.X*p.Y - p.X*prev.Y)
		prev = p
	}
	return sum / 2
}

// ArcLength возвращает длину ломаной; closed замыкает её последним отрезком.
func ArcLength(points []image.Point, closed bool) float64 {
	if len(points) < 2 {
		return 0
	}

	length := 0.0
	for i := 1; i < len(points); i++ {
		length += dist(points[i-1], points[i])
	}
	if closed {
		length += dist(points[len(points)-1], points[0])
	}
	return length
}

func dist(a, b image.Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// BoundingRect возвращает охватывающий прямоугольник в пикселях (включительно).
func BoundingRect(points []image.Point) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}

	r := image.Rectangle{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}

// ConvexHull строит выпуклую оболочку (монотонная цепочка Эндрю).
func ConvexHull(points []image.Point) []image.Point {
	pts := make([]image.Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	pts = dedup(pts)
	if len(pts) < 3 {
		return pts
	}

	hull := make([]image.Point, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func turn(o, a, b image.Point) int {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func dedup(sorted []image.Point) []image.Point {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, p := range sorted[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
