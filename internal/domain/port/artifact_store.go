package port

import (
	"context"
	"image"
)

// ArtifactStore интерфейс временного хранилища изображений
type ArtifactStore interface {
	// Stash сохраняет изображение и возвращает путь и функцию очистки.
	// Функцию очистки нужно вызвать в любом случае.
	Stash(ctx context.Context, name string, img image.Image) (path string, cleanup func(), err error)
}
