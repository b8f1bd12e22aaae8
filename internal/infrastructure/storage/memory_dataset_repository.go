package storage

import (
	"context"
	"sync"

	"devanagari-dataset/internal/domain/entity"
	"devanagari-dataset/internal/domain/port"
)

// MemoryDatasetRepository in-memory хранилище набора данных
type MemoryDatasetRepository struct {
	mu      sync.RWMutex
	records []entity.TrainingRecord
	saves   int
}

// NewMemoryDatasetRepository создаёт новое in-memory хранилище
func NewMemoryDatasetRepository() *MemoryDatasetRepository {
	return &MemoryDatasetRepository{}
}

// Save заменяет содержимое хранилища копией записей
func (r *MemoryDatasetRepository) Save(ctx context.Context, records []entity.TrainingRecord) error {
	out := make([]entity.TrainingRecord, len(records))
	for i, rec := range records {
		out[i] = entity.NewTrainingRecord(rec.Letter, rec.Features, rec.Score)
	}

	r.mu.Lock()
	r.records = out
	r.saves++
	r.mu.Unlock()

	return nil
}

// Load возвращает копию сохранённых записей
func (r *MemoryDatasetRepository) Load(ctx context.Context) ([]entity.TrainingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.TrainingRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Saves возвращает число вызовов Save
func (r *MemoryDatasetRepository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

// Проверка реализации интерфейса
var _ port.DatasetRepository = (*MemoryDatasetRepository)(nil)
