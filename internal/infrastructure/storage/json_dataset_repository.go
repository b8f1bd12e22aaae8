package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"devanagari-dataset/internal/domain/entity"
	"devanagari-dataset/internal/domain/port"
)

// JSONDatasetRepository хранит набор данных в одном JSON-файле
type JSONDatasetRepository struct {
	path string
}

// NewJSONDatasetRepository создаёт хранилище для файла path
func NewJSONDatasetRepository(path string) *JSONDatasetRepository {
	return &JSONDatasetRepository{path: path}
}

// Path возвращает путь к файлу
func (r *JSONDatasetRepository) Path() string {
	return r.path
}

// Save записывает массив записей с отступом в два пробела.
// Не-ASCII символы пишутся как есть.
func (r *JSONDatasetRepository) Save(ctx context.Context, records []entity.TrainingRecord) error {
	_ = ctx
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}

	if records == nil {
		records = []entity.TrainingRecord{}
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		f.Close()
		return fmt.Errorf("encode dataset: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close dataset file: %w", err)
	}
	return nil
}

// Load читает набор данных из файла
func (r *JSONDatasetRepository) Load(ctx context.Context) ([]entity.TrainingRecord, error) {
	_ = ctx
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}

	var records []entity.TrainingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return records, nil
}

// Проверка реализации интерфейса
var _ port.DatasetRepository = (*JSONDatasetRepository)(nil)
