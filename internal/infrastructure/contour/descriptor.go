package contour

import (
	"image"
	"math"

	"devanagari-dataset/internal/domain/entity"
)

// MinContourPoints — контуры короче этого дают нулевой вектор признаков.
const MinContourPoints = 5

// Shape содержит измерения одного контура.
type Shape struct {
	Points    []image.Point
	Area      float64
	Perimeter float64
	Bounds    image.Rectangle
	HullArea  float64
}

// Measure измеряет контур средствами пакета.
func Measure(points []image.Point) Shape {
	return Shape{
		Points:    points,
		Area:      Area(points),
		Perimeter: ArcLength(points, true),
		Bounds:    BoundingRect(points),
		HullArea:  Area(ConvexHull(points)),
	}
}

// Largest возвращает индекс контура с наибольшей площадью;
// при равенстве побеждает первый.
func Largest(contours [][]image.Point) int {
	best, bestArea := 0, -1.0
	for i, c := range contours {
		if a := Area(c); a > bestArea {
			best, bestArea = i, a
		}
	}
	return best
}

// Features собирает вектор из 17 признаков: 7 логарифмированных моментов Ху
// и 10 геометрических характеристик. size — размер исходного изображения.
func Features(s Shape, size image.Point) entity.FeatureVector {
	if len(s.Points) < MinContourPoints {
		return entity.ZeroFeatures()
	}

	out := make(entity.FeatureVector, 0, entity.FeatureLength)
	out = append(out, LogScale(ContourMoments(s.Points).Hu())...)
	out = append(out, Geometry(s, size)...)
	return out
}

// Geometry возвращает 10 геометрических характеристик контура:
// площадь, периметр, компактность, соотношение сторон, заполненность рамки,
// плотность оболочки, нормированный центр по X и Y, долю площади и число точек.
func Geometry(s Shape, size image.Point) []float64 {
	if len(s.Points) < MinContourPoints {
		return make([]float64, entity.GeometryCount)
	}

	w := float64(s.Bounds.Dx())
	h := float64(s.Bounds.Dy())

	compactness := 0.0
	if s.Perimeter > 0 {
		compactness = 4 * math.Pi * s.Area / (s.Perimeter * s.Perimeter)
	}
	aspect := 1.0
	if h > 0 {
		aspect = w / h
	}
	extent := 0.0
	if w*h > 0 {
		extent = s.Area / (w * h)
	}
	solidity := 0.0
	if s.HullArea > 0 {
		solidity = s.Area / s.HullArea
	}

	var centerX, centerY, density float64
	if size.X > 0 {
		centerX = (float64(s.Bounds.Min.X) + w/2) / float64(size.X)
	}
	if size.Y > 0 {
		centerY = (float64(s.Bounds.Min.Y) + h/2) / float64(size.Y)
	}
	if total := size.X * size.Y; total > 0 {
		density = s.Area / float64(total)
	}

	return []float64{
		s.Area,
		s.Perimeter,
		compactness,
		aspect,
		extent,
		solidity,
		centerX,
		centerY,
		density,
		float64(len(s.Points)),
	}
}

// Describe — полный путь без OpenCV: бинаризация, внешние контуры,
// крупнейший контур, признаки. Пустое изображение даёт нулевой вектор.
func Describe(img image.Image, threshold uint8) entity.FeatureVector {
	mask := Binarize(img, threshold)
	contours := FindExternal(mask)
	if len(contours) == 0 {
		return entity.ZeroFeatures()
	}

	largest := contours[Largest(contours)]
	return Features(Measure(largest), mask.Size())
}
