package storage

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"devanagari-dataset/internal/domain/port"
)

// TempArtifactStore сохраняет изображения во временные PNG-файлы
type TempArtifactStore struct {
	dir string
}

// NewTempArtifactStore создаёт хранилище в каталоге dir (пустая строка — системный temp)
func NewTempArtifactStore(dir string) *TempArtifactStore {
	return &TempArtifactStore{dir: dir}
}

// Stash пишет изображение в файл temp_<name>_*.png.
// Возвращаемая функция очистки удаляет файл и безопасна при повторном вызове.
func (s *TempArtifactStore) Stash(ctx context.Context, name string, img image.Image) (string, func(), error) {
	_ = ctx
	f, err := os.CreateTemp(s.dir, "temp_"+name+"_*.png")
	if err != nil {
		return "", func() {}, fmt.Errorf("create artifact: %w", err)
	}

	path := f.Name()
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove artifact %s: %v", path, err)
		}
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		cleanup()
		return "", func() {}, fmt.Errorf("encode artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("close artifact: %w", err)
	}

	return path, cleanup, nil
}

// Проверка реализации интерфейса
var _ port.ArtifactStore = (*TempArtifactStore)(nil)
