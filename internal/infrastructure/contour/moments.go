package contour

import (
	"image"
	"math"
)

// float32Epsilon — машинный эпсилон float32; меньшая площадь считается нулевой.
const float32Epsilon = 1.1920929e-07

// Moments — пространственные моменты многоугольника до третьего порядка.
type Moments struct {
	M00, M10, M01      float64
	M20, M11, M02      float64
	M30, M21, M12, M03 float64
}

// ContourMoments считает моменты области, ограниченной контуром,
// по формуле Грина. Направление обхода не влияет на результат.
func ContourMoments(points []image.Point) Moments {
	n := len(points)
	if n == 0 {
		return Moments{}
	}

	var a00, a10, a01, a20, a11, a02, a30, a21, a12, a03 float64
	prev := points[n-1]
	for _, p := range points {
		xi1, yi1 := float64(prev.X), float64(prev.Y)
		xi, yi := float64(p.X), float64(p.Y)

		xi12, yi12 := xi1*xi1, yi1*yi1
		xi2, yi2 := xi*xi, yi*yi
		dxy := xi1*yi - xi*yi1
		xii1 := xi1 + xi
		yii1 := yi1 + yi

		a00 += dxy
		a10 += dxy * xii1
		a01 += dxy * yii1
		a20 += dxy * (xi1*xii1 + xi2)
		a11 += dxy * (xi1*(yii1+yi1) + xi*(yii1+yi))
		a02 += dxy * (yi1*yii1 + yi2)
		a30 += dxy * xii1 * (xi12 + xi2)
		a03 += dxy * yii1 * (yi12 + yi2)
		a21 += dxy * (xi12*(3*yi1+yi) + 2*xi*xi1*yii1 + xi2*(yi1+3*yi))
		a12 += dxy * (yi12*(3*xi1+xi) + 2*yi*yi1*xii1 + yi2*(xi1+3*xi))

		prev = p
	}

	if math.Abs(a00) <= float32Epsilon {
		return Moments{}
	}

	sign := 1.0
	if a00 < 0 {
		sign = -1
	}
	return Moments{
		M00: sign * a00 / 2,
		M10: sign * a10 / 6,
		M01: sign * a01 / 6,
		M20: sign * a20 / 12,
		M11: sign * a11 / 24,
		M02: sign * a02 / 12,
		M30: sign * a30 / 20,
		M21: sign * a21 / 60,
		M12: sign * a12 / 60,
		M03: sign * a03 / 20,
	}
}

// Hu возвращает семь инвариантов Ху, вычисленных по нормированным
// центральным моментам.
func (m Moments) Hu() [7]float64 {
	if m.M00 == 0 {
		return [7]float64{}
	}

	cx := m.M10 / m.M00
	cy := m.M01 / m.M00

	mu20 := m.M20 - m.M10*cx
	mu11 := m.M11 - m.M10*cy
	mu02 := m.M02 - m.M01*cy
	mu30 := m.M30 - cx*(3*mu20+cx*m.M10)
	mu21 := m.M21 - cx*(2*mu11+cx*m.M01) - cy*mu20
	mu12 := m.M12 - cy*(2*mu11+cy*m.M10) - cx*mu02
	mu03 := m.M03 - cy*(3*mu02+cy*m.M01)

	inv := 1 / math.Abs(m.M00)
	s2 := inv * inv
	s3 := s2 * math.Sqrt(inv)

	nu20, nu11, nu02 := mu20*s2, mu11*s2, mu02*s2
	nu30, nu21, nu12, nu03 := mu30*s3, mu21*s3, mu12*s3, mu03*s3

	var hu [7]float64
	t0 := nu30 + nu12
	t1 := nu21 + nu03
	q0 := t0 * t0
	q1 := t1 * t1
	n4 := 4 * nu11
	s := nu20 + nu02
	d := nu20 - nu02

	hu[0] = s
	hu[1] = d*d + n4*nu11
	hu[3] = q0 + q1
	hu[5] = d*(q0-q1) + n4*t0*t1

	t0 *= q0 - 3*q1
	t1 *= 3*q0 - q1

	q0 = nu30 - 3*nu12
	q1 = 3*nu21 - nu03

	hu[2] = q0*q0 + q1*q1
	hu[4] = q0*t0 + q1*t1
	hu[6] = q1*t0 - q0*t1

	return hu
}

// logEpsilon защищает логарифм от нулевых моментов.
const logEpsilon = 1e-10

// LogScale сжимает диапазон моментов: -sign(h) * log10(|h| + eps).
func LogScale(hu [7]float64) []float64 {
	out := make([]float64, len(hu))
	for i, h := range hu {
		out[i] = -sign(h) * math.Log10(math.Abs(h)+logEpsilon)
	}
	return out
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
