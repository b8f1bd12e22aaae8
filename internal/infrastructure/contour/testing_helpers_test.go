package contour

import (
	"image"
	"image/color"
	"image/draw"
)

// maskFromRows строит маску из строк, где '#' — чернила.
func maskFromRows(rows ...string) *Mask {
	m := NewMask(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			m.Set(x, y, c == '#')
		}
	}
	return m
}

// discImage рисует чёрный круг на белом холсте.
func discImage(size, cx, cy, r int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r*r {
				img.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}
	return img
}

func blankImage(size int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}
