package app

import (
	"context"
	"fmt"
	"log"

	"devanagari-dataset/internal/domain/entity"
	"devanagari-dataset/internal/domain/port"
)

// ScoreLadder задаёт оценку эталона и оценки зашумлённых копий.
type ScoreLadder struct {
	Reference int
	Degraded  []int
}

// NoiseLevel возвращает уровень шума для оценки: (100 - score) / 100.
func (l ScoreLadder) NoiseLevel(score int) float64 {
	return float64(l.Reference-score) / 100
}

type DatasetService struct {
	catalog   entity.LetterCatalog
	renderer  port.GlyphRenderer
	extractor port.FeatureExtractor
	artifacts port.ArtifactStore
	repo      port.DatasetRepository
	perturber *Perturber
	negatives *NegativeFabricator
	ladder    ScoreLadder
}

// DatasetOutput содержит собранные записи, итоги по буквам и статистику.
type DatasetOutput struct {
	Records  []entity.TrainingRecord
	Outcomes []entity.LetterOutcome
	Summary  entity.Summary
}

// NewDatasetService создаёт сборщик набора данных.
func NewDatasetService(
	catalog entity.LetterCatalog,
	renderer port.GlyphRenderer,
	extractor port.FeatureExtractor,
	artifacts port.ArtifactStore,
	repo port.DatasetRepository,
	perturber *Perturber,
	negatives *NegativeFabricator,
	ladder ScoreLadder,
) *DatasetService {
	return &DatasetService{
		catalog:   catalog,
		renderer:  renderer,
		extractor: extractor,
		artifacts: artifacts,
		repo:      repo,
		perturber: perturber,
		negatives: negatives,
		ladder:    ladder,
	}
}

// Generate собирает набор: по 1+len(Degraded) записей на каждую букву,
// затем отрицательные примеры. Ошибки отдельных букв приводят к пропуску
// буквы, неожиданный сбой прерывает только этап букв.
func (s *DatasetService) Generate(ctx context.Context) *DatasetOutput {
	records, outcomes := s.generateLetters(ctx)
	records = append(records, s.negatives.Fabricate()...)

	return &DatasetOutput{
		Records:  records,
		Outcomes: outcomes,
		Summary:  entity.Summarize(records),
	}
}

// Run собирает набор и сохраняет его в хранилище.
func (s *DatasetService) Run(ctx context.Context) (*DatasetOutput, error) {
	out := s.Generate(ctx)
	if err := s.repo.Save(ctx, out.Records); err != nil {
		return nil, fmt.Errorf("save dataset: %w", err)
	}
	return out, nil
}

func (s *DatasetService) generateLetters(ctx context.Context) (records []entity.TrainingRecord, outcomes []entity.LetterOutcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Letter generation aborted: %v", r)
		}
	}()

	for _, letter := range s.catalog.Letters() {
		log.Printf("Generating data for %s (%s)", letter.ID, letter.Description())

		outcome := s.processLetter(ctx, letter)
		outcomes = append(outcomes, outcome)
		if outcome.Status != entity.LetterProcessed {
			log.Printf("Skipping %s: %s", letter.ID, outcome.Reason)
			continue
		}
		records = append(records, s.letterRecords(outcome)...)
	}
	return records, outcomes
}

// processLetter рисует букву во временный файл, извлекает признаки
// и всегда удаляет файл.
func (s *DatasetService) processLetter(ctx context.Context, letter entity.Letter) entity.LetterOutcome {
	img, err := s.renderer.Render(ctx, letter.Glyph)
	if err != nil {
		return entity.Skipped(letter, fmt.Sprintf("render: %v", err))
	}

	path, cleanup, err := s.artifacts.Stash(ctx, letter.ID, img)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		return entity.Skipped(letter, fmt.Sprintf("stash: %v", err))
	}

	features, err := s.extractor.ExtractFile(ctx, path)
	if err != nil {
		return entity.Skipped(letter, fmt.Sprintf("extract: %v", err))
	}
	if len(features) == 0 {
		return entity.Skipped(letter, "no features extracted")
	}

	return entity.Processed(letter, features)
}

// letterRecords возвращает эталонную запись и зашумлённые копии.
func (s *DatasetService) letterRecords(outcome entity.LetterOutcome) []entity.TrainingRecord {
	id := outcome.Letter.ID
	records := make([]entity.TrainingRecord, 0, 1+len(s.ladder.Degraded))
	records = append(records, entity.NewTrainingRecord(id, outcome.Features, s.ladder.Reference))
	for _, score := range s.ladder.Degraded {
		noisy := s.perturber.Perturb(outcome.Features, s.ladder.NoiseLevel(score))
		records = append(records, entity.TrainingRecord{Letter: id, Features: noisy, Score: score})
	}
	return records
}
