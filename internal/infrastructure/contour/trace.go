package contour

import "image"

// Соседи в порядке против часовой стрелки (ось Y направлена вниз).
var neighbors = [8]image.Point{
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
}

const west = 4

var cross = [4]image.Point{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}

// FindExternal находит внешние контуры 8-связных областей переднего плана.
// Внутренние границы (дыры) и области, лежащие внутри дыр, не возвращаются.
// Контуры сжаты: от горизонтальных, вертикальных и диагональных отрезков
// остаются только концы.
func FindExternal(m *Mask) [][]image.Point {
	if m.Width == 0 || m.Height == 0 {
		return nil
	}

	outside := m.outerBackground()
	seen := make([]bool, len(m.Pix))

	var contours [][]image.Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i := m.index(x, y)
			if !m.Pix[i] || seen[i] {
				continue
			}
			if !m.fillComponent(x, y, seen, outside) {
				continue
			}
			contours = append(contours, compress(m.traceBorder(image.Pt(x, y))))
		}
	}
	return contours
}

// outerBackground помечает фон, 4-связно достижимый от края изображения.
func (m *Mask) outerBackground() []bool {
	outside := make([]bool, len(m.Pix))
	queue := make([]int, 0, 2*(m.Width+m.Height))

	push := func(x, y int) {
		i := m.index(x, y)
		if m.Pix[i] || outside[i] {
			return
		}
		outside[i] = true
		queue = append(queue, i)
	}

	for x := 0; x < m.Width; x++ {
		push(x, 0)
		push(x, m.Height-1)
	}
	for y := 0; y < m.Height; y++ {
		push(0, y)
		push(m.Width-1, y)
	}

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := queue[qi]%m.Width, queue[qi]/m.Width
		for _, d := range cross {
			vx, vy := ux+d.X, uy+d.Y
			if m.inBounds(vx, vy) {
				push(vx, vy)
			}
		}
	}
	return outside
}

// fillComponent обходит 8-связную область начиная с (x, y) и сообщает,
// граничит ли она с внешним фоном.
func (m *Mask) fillComponent(x, y int, seen, outside []bool) bool {
	i0 := m.index(x, y)
	seen[i0] = true
	queue := []int{i0}
	external := false

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := queue[qi]%m.Width, queue[qi]/m.Width
		for _, d := range cross {
			vx, vy := ux+d.X, uy+d.Y
			if !m.inBounds(vx, vy) || outside[m.index(vx, vy)] {
				external = true
				break
			}
		}
		for _, d := range neighbors {
			vx, vy := ux+d.X, uy+d.Y
			if !m.At(vx, vy) {
				continue
			}
			vi := m.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return external
}

// traceBorder проходит внешнюю границу области, начиная с её первого пикселя
// в порядке развёртки (алгоритм следования по границе Suzuki–Abe).
func (m *Mask) traceBorder(start image.Point) []image.Point {
	first, ok := m.nextNeighbor(start, west, -1)
	if !ok {
		return []image.Point{start}
	}

	var points []image.Point
	prev, cur := first, start
	for {
		next, _ := m.nextNeighbor(cur, direction(cur, prev)+1, 1)
		points = append(points, cur)
		if next == start && cur == first {
			return points
		}
		prev, cur = cur, next
	}
}

// nextNeighbor перебирает 8 соседей p начиная с направления from;
// step 1 — против часовой стрелки, -1 — по часовой.
func (m *Mask) nextNeighbor(p image.Point, from, step int) (image.Point, bool) {
	for i := 0; i < len(neighbors); i++ {
		d := ((from+i*step)%8 + 8) % 8
		q := p.Add(neighbors[d])
		if m.At(q.X, q.Y) {
			return q, true
		}
	}
	return image.Point{}, false
}

func direction(from, to image.Point) int {
	d := to.Sub(from)
	for i, n := range neighbors {
		if n == d {
			return i
		}
	}
	return 0
}

// compress оставляет только точки, в которых меняется направление обхода.
func compress(points []image.Point) []image.Point {
	n := len(points)
	if n < 3 {
		return points
	}

	out := make([]image.Point, 0, n)
	for i, p := range points {
		prev := points[(i-1+n)%n]
		next := points[(i+1)%n]
		if p.Sub(prev) != next.Sub(p) {
			out = append(out, p)
		}
	}
	return out
}
