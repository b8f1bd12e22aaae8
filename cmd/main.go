package main

import (
	"context"
	"log"
	"os"
	"strings"

	"devanagari-dataset/config"
	"devanagari-dataset/internal/container"
	"devanagari-dataset/internal/domain/entity"
	"devanagari-dataset/internal/infrastructure/glyph"
	"devanagari-dataset/internal/infrastructure/storage"
	"devanagari-dataset/internal/infrastructure/vision"
)

func main() {
	log.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog := entity.DefaultCatalog()
	for _, l := range catalog.Letters() {
		if !glyph.IsDevanagari(l.Glyph) {
			log.Fatalf("Catalog entry %s is not a Devanagari glyph: %q", l.ID, l.Glyph)
		}
	}

	// Шрифт: именованный файл, затем системные, затем встроенный.
	providers := glyph.DefaultProviders(cfg.FontFile, cfg.SystemFonts, cfg.FontProbe)
	face, tier := glyph.Resolve(cfg.FontSize, providers...)
	renderer := glyph.NewRenderer(face, tier, cfg.CanvasSize)

	repo := storage.NewJSONDatasetRepository(cfg.OutputPath)

	appContainer := container.New(
		cfg,
		catalog,
		renderer,
		vision.NewShapeExtractor(cfg.Threshold),
		storage.NewTempArtifactStore(""),
		repo,
	)

	log.Println("Generating training data...")
	out, err := appContainer.DatasetService.Run(context.Background())
	if err != nil {
		log.Fatalf("Dataset error: %v", err)
	}

	s := out.Summary
	log.Printf("Generated %d samples", s.Total)
	log.Printf("Data saved to %s", repo.Path())
	log.Printf("Letters included: %s", strings.Join(s.Labels, ", "))
	log.Printf("Scores: min=%d, max=%d, mean=%.1f", s.MinScore, s.MaxScore, s.MeanScore)
}
