package glyph

import (
	"context"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"devanagari-dataset/internal/domain/port"
)

// Renderer рисует символ чёрным по белому в центре квадратного холста.
type Renderer struct {
	face   font.Face
	tier   string
	canvas int
}

// NewRenderer создаёт рендерер с уже выбранным шрифтом.
func NewRenderer(face font.Face, tier string, canvas int) *Renderer {
	return &Renderer{face: face, tier: tier, canvas: canvas}
}

// Tier возвращает имя уровня, с которого взят шрифт.
func (r *Renderer) Tier() string {
	return r.tier
}

// Render рисует символ так, чтобы центр его охватывающего прямоугольника
// совпал с центром холста.
func (r *Renderer) Render(ctx context.Context, glyph string) (image.Image, error) {
	_ = ctx
	img := image.NewGray(image.Rect(0, 0, r.canvas, r.canvas))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	text := norm.NFC.String(glyph)
	bounds, _ := font.BoundString(r.face, text)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	half := fixed.I(r.canvas) / 2

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: r.face,
		Dot: fixed.Point26_6{
			X: half - w/2 - bounds.Min.X,
			Y: half - h/2 - bounds.Min.Y,
		},
	}
	d.DrawString(text)

	return img, nil
}

// Проверка реализации интерфейса
var _ port.GlyphRenderer = (*Renderer)(nil)
