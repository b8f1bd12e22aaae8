//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"devanagari-dataset/internal/domain/entity"
	"devanagari-dataset/internal/infrastructure/contour"
)

// ShapeExtractor извлекает признаки формы средствами OpenCV.
type ShapeExtractor struct {
	Threshold uint8
}

// NewShapeExtractor создаёт экстрактор с глобальным порогом бинаризации.
func NewShapeExtractor(threshold uint8) *ShapeExtractor {
	return &ShapeExtractor{Threshold: threshold}
}

// ExtractFile читает изображение в оттенках серого и возвращает вектор из 17 признаков.
func (e *ShapeExtractor) ExtractFile(ctx context.Context, path string) (entity.FeatureVector, error) {
	_ = ctx
	img := gocv.IMRead(path, gocv.IMReadGrayScale)
	defer img.Close()

	if img.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrUnreadableImage, path)
	}

	// Инвертируем: чернила становятся передним планом.
	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(img, &binary, float32(e.Threshold), 255, gocv.ThresholdBinaryInv)

	contours := gocv.FindContours(binary, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	if contours.Size() == 0 {
		return entity.ZeroFeatures(), nil
	}

	best, bestArea := 0, -1.0
	for i := 0; i < contours.Size(); i++ {
		if area := gocv.ContourArea(contours.At(i)); area > bestArea {
			best, bestArea = i, area
		}
	}

	largest := contours.At(best)
	shape := contour.Shape{
		Points:    largest.ToPoints(),
		Area:      bestArea,
		Perimeter: gocv.ArcLength(largest, true),
		Bounds:    gocv.BoundingRect(largest),
		HullArea:  hullArea(largest),
	}

	return contour.Features(shape, image.Pt(img.Cols(), img.Rows())), nil
}

// hullArea возвращает площадь выпуклой оболочки контура.
func hullArea(c gocv.PointVector) float64 {
	if c.Size() < 3 {
		return 0
	}

	hull := gocv.NewMat()
	defer hull.Close()
	gocv.ConvexHull(c, &hull, false, true)

	points := gocv.NewPointVectorFromMat(hull)
	defer points.Close()

	return gocv.ContourArea(points)
}
