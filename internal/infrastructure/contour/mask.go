package contour

import (
	"image"
	"image/color"
)

// Mask — бинарное изображение, true означает пиксель «чернил».
type Mask struct {
	Width  int
	Height int
	Pix    []bool
}

// NewMask создаёт пустую маску.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]bool, width*height),
	}
}

// At возвращает значение пикселя; всё за границей считается фоном.
func (m *Mask) At(x, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}
	return m.Pix[m.index(x, y)]
}

// Set устанавливает значение пикселя внутри границ.
func (m *Mask) Set(x, y int, v bool) {
	if m.inBounds(x, y) {
		m.Pix[m.index(x, y)] = v
	}
}

// Size возвращает размер маски.
func (m *Mask) Size() image.Point {
	return image.Pt(m.Width, m.Height)
}

func (m *Mask) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

func (m *Mask) index(x, y int) int {
	return y*m.Width + x
}

// Binarize применяет глобальный порог с инверсией:
// пиксели с яркостью <= threshold становятся передним планом.
func Binarize(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < m.Height; y++ {
			row := gray.Pix[y*gray.Stride : y*gray.Stride+m.Width]
			for x, v := range row {
				m.Pix[m.index(x, y)] = v <= threshold
			}
		}
		return m
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			m.Pix[m.index(x, y)] = g.Y <= threshold
		}
	}
	return m
}
