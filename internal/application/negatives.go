package app

import (
	"math/rand"

	"devanagari-dataset/internal/domain/entity"
)

// NegativeFabricator создаёт отрицательные примеры по прототипам фигур.
type NegativeFabricator struct {
	perturber    *Perturber
	rng          *rand.Rand
	archetypes   []entity.Archetype
	perArchetype int
	noise        float64
	label        string
}

// NewNegativeFabricator создаёт генератор: perArchetype экземпляров на каждую
// фигуру, каждый — прототип с шумом уровня noise и меткой label.
func NewNegativeFabricator(perturber *Perturber, rng *rand.Rand, archetypes []entity.Archetype, perArchetype int, noise float64, label string) *NegativeFabricator {
	return &NegativeFabricator{
		perturber:    perturber,
		rng:          rng,
		archetypes:   archetypes,
		perArchetype: perArchetype,
		noise:        noise,
		label:        label,
	}
}

// Fabricate возвращает записи в порядке фигур; оценка каждой записи
// выбирается равномерно из [MinScore, MaxScore).
func (f *NegativeFabricator) Fabricate() []entity.TrainingRecord {
	records := make([]entity.TrainingRecord, 0, len(f.archetypes)*f.perArchetype)
	for _, a := range f.archetypes {
		for i := 0; i < f.perArchetype; i++ {
			features := f.perturber.Perturb(a.Prototype, f.noise)
			records = append(records, entity.TrainingRecord{
				Letter:   f.label,
				Features: features,
				Score:    f.drawScore(a),
			})
		}
	}
	return records
}

func (f *NegativeFabricator) drawScore(a entity.Archetype) int {
	if a.MaxScore <= a.MinScore {
		return a.MinScore
	}
	return a.MinScore + f.rng.Intn(a.MaxScore-a.MinScore)
}
