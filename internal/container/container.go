package container

import (
	"devanagari-dataset/config"
	app "devanagari-dataset/internal/application"
	"devanagari-dataset/internal/domain/entity"
	"devanagari-dataset/internal/domain/port"
)

type Container struct {
	DatasetService *app.DatasetService
	Perturber      *app.Perturber
	Negatives      *app.NegativeFabricator
}

func New(
	cfg *config.Config,
	catalog entity.LetterCatalog,
	renderer port.GlyphRenderer,
	extractor port.FeatureExtractor,
	artifacts port.ArtifactStore,
	repo port.DatasetRepository,
) *Container {
	rng := app.NewRand(cfg.Seed)
	perturber := app.NewPerturber(rng, cfg.NoiseScale)
	negatives := app.NewNegativeFabricator(
		perturber,
		rng,
		cfg.Negatives,
		cfg.NegativesPerArchetype,
		cfg.NegativeNoise,
		cfg.NegativeLabel,
	)
	ladder := app.ScoreLadder{
		Reference: cfg.ReferenceScore,
		Degraded:  cfg.DegradedScores,
	}

	return &Container{
		DatasetService: app.NewDatasetService(catalog, renderer, extractor, artifacts, repo, perturber, negatives, ladder),
		Perturber:      perturber,
		Negatives:      negatives,
	}
}
