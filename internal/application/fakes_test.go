package app

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"strings"

	"devanagari-dataset/internal/domain/entity"
)

type fakeRenderer struct {
	fail map[string]bool
}

func (r *fakeRenderer) Render(ctx context.Context, glyph string) (image.Image, error) {
	if r.fail[glyph] {
		return nil, errors.New("no glyph")
	}
	return image.NewGray(image.Rect(0, 0, 4, 4)), nil
}

// fakeExtractor возвращает фиксированный вектор; поведение задаётся
// по идентификатору буквы из имени временного файла.
type fakeExtractor struct {
	fail  map[string]bool
	empty map[string]bool
	panic map[string]bool
	paths []string
}

func (e *fakeExtractor) ExtractFile(ctx context.Context, path string) (entity.FeatureVector, error) {
	e.paths = append(e.paths, path)
	id := letterFromPath(path)
	switch {
	case e.panic[id]:
		panic("extractor exploded")
	case e.fail[id]:
		return nil, errors.New("decode failed")
	case e.empty[id]:
		return entity.FeatureVector{}, nil
	}
	return referenceVector(), nil
}

func letterFromPath(path string) string {
	base := strings.TrimPrefix(filepath.Base(path), "temp_")
	return base[:strings.LastIndex(base, "_")]
}

func referenceVector() entity.FeatureVector {
	v := entity.ZeroFeatures()
	for i := range v {
		v[i] = float64(i + 1)
	}
	v[5] = 0
	return v
}

type failingRepo struct{}

func (failingRepo) Save(ctx context.Context, records []entity.TrainingRecord) error {
	return errors.New("disk full")
}

func (failingRepo) Load(ctx context.Context) ([]entity.TrainingRecord, error) {
	return nil, errors.New("disk full")
}
