package port

import (
	"context"
	"image"
)

// GlyphRenderer интерфейс отрисовки эталонного символа
type GlyphRenderer interface {
	// Render рисует символ по центру холста и возвращает растр
	Render(ctx context.Context, glyph string) (image.Image, error)
}
