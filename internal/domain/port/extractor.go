package port

import (
	"context"

	"devanagari-dataset/internal/domain/entity"
)

// FeatureExtractor интерфейс извлечения признаков формы
type FeatureExtractor interface {
	// ExtractFile читает изображение с диска и возвращает вектор из 17 признаков
	ExtractFile(ctx context.Context, path string) (entity.FeatureVector, error)
}
