package port

import (
	"context"

	"devanagari-dataset/internal/domain/entity"
)

// DatasetRepository интерфейс хранилища набора данных
type DatasetRepository interface {
	// Save записывает весь набор целиком
	Save(ctx context.Context, records []entity.TrainingRecord) error

	// Load читает ранее записанный набор
	Load(ctx context.Context) ([]entity.TrainingRecord, error)
}
