//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"devanagari-dataset/internal/domain/entity"
	"devanagari-dataset/internal/infrastructure/contour"
)

// ShapeExtractor без OpenCV: контуры и моменты считает пакет contour.
type ShapeExtractor struct {
	Threshold uint8
}

// NewShapeExtractor создаёт экстрактор с глобальным порогом бинаризации.
func NewShapeExtractor(threshold uint8) *ShapeExtractor {
	return &ShapeExtractor{Threshold: threshold}
}

// ExtractFile декодирует изображение и возвращает вектор из 17 признаков.
func (e *ShapeExtractor) ExtractFile(ctx context.Context, path string) (entity.FeatureVector, error) {
	_ = ctx
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return contour.Describe(img, e.Threshold), nil
}

// decodeFile читает изображение с диска.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, path, err)
	}
	return img, nil
}
