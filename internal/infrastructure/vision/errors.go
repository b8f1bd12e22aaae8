package vision

import (
	"errors"

	"devanagari-dataset/internal/domain/port"
)

// ErrUnreadableImage — изображение не удалось прочитать или декодировать.
var ErrUnreadableImage = errors.New("failed to decode image")

// Проверка реализации интерфейса
var _ port.FeatureExtractor = (*ShapeExtractor)(nil)
