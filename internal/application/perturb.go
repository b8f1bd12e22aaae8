package app

import (
	"math"
	"math/rand"

	"devanagari-dataset/internal/domain/entity"
)

// Perturber добавляет к признакам гауссов шум, имитируя неточный почерк.
// Не безопасен для конкурентного использования.
type Perturber struct {
	rng   *rand.Rand
	scale float64
}

// NewPerturber создаёт генератор шума; scale — доля модуля признака,
// которая при level = 1 становится стандартным отклонением.
func NewPerturber(rng *rand.Rand, scale float64) *Perturber {
	return &Perturber{rng: rng, scale: scale}
}

// Perturb возвращает новый вектор той же длины: к каждому элементу x
// добавляется независимый шум N(0, level*scale*|x|). Нули остаются нулями.
func (p *Perturber) Perturb(v entity.FeatureVector, level float64) entity.FeatureVector {
	out := make(entity.FeatureVector, len(v))
	for i, x := range v {
		sigma := level * p.scale * math.Abs(x)
		if sigma == 0 {
			out[i] = x
			continue
		}
		out[i] = x + p.rng.NormFloat64()*sigma
	}
	return out
}
