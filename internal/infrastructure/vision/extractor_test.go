package vision

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"devanagari-dataset/internal/domain/entity"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glyph.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func canvas() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 200, 200))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

func TestShapeExtractor_BlankImage(t *testing.T) {
	e := NewShapeExtractor(127)
	v, err := e.ExtractFile(context.Background(), writePNG(t, canvas()))
	require.NoError(t, err)
	require.Len(t, v, entity.FeatureLength)
	require.True(t, v.IsZero())
}

func TestShapeExtractor_Disc(t *testing.T) {
	img := canvas()
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if (x-100)*(x-100)+(y-100)*(y-100) <= 40*40 {
				img.SetGray(x, y, color.Gray{})
			}
		}
	}

	e := NewShapeExtractor(127)
	v, err := e.ExtractFile(context.Background(), writePNG(t, img))
	require.NoError(t, err)
	require.Len(t, v, entity.FeatureLength)
	require.False(t, v.IsZero())
	require.InDelta(t, 1.0, v.Geometry()[3], 1e-9)
	require.InDelta(t, 0.5, v.Geometry()[6], 0.01)
}

func TestShapeExtractor_Unreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	e := NewShapeExtractor(127)
	_, err := e.ExtractFile(context.Background(), path)
	require.ErrorIs(t, err, ErrUnreadableImage)

	_, err = e.ExtractFile(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.ErrorIs(t, err, ErrUnreadableImage)
}
