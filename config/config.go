package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"devanagari-dataset/internal/domain/entity"
)

type Config struct {
	Threshold  uint8   // глобальный порог бинаризации
	CanvasSize int     // сторона квадратного холста
	FontSize   float64 // кегль эталонного символа в пикселях

	FontFile    string   // именованный шрифт с деванагари
	SystemFonts []string // системные шрифты платформы
	FontProbe   rune     // символ, который обязан быть в шрифте

	ReferenceScore int   // оценка эталонной записи
	DegradedScores []int // лестница оценок для зашумлённых копий
	NoiseScale     float64

	NegativeLabel         string
	NegativeNoise         float64
	NegativesPerArchetype int
	Negatives             []entity.Archetype

	OutputPath string
	Seed       int64 // 0 — случайное зерно
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		Threshold:  127,
		CanvasSize: 200,
		FontSize:   72,

		FontFile:    "NotoSansDevanagari-Regular.ttf",
		SystemFonts: systemFonts(runtime.GOOS),
		FontProbe:   'क',

		ReferenceScore: 100,
		DegradedScores: []int{80, 60, 40, 20},
		NoiseScale:     0.2,

		NegativeLabel:         "incorrect",
		NegativeNoise:         0.1,
		NegativesPerArchetype: 5,
		Negatives: []entity.Archetype{
			{
				Name: "cross",
				Prototype: entity.FeatureVector{
					-1.5, -2.0, -1.8, -2.5, -3.0, -2.2, -1.9,
					100, 50, 0.3, 1.0, 0.6, 0.8, 0.5, 0.5, 0.02, 20,
				},
				MinScore: 5,
				MaxScore: 25,
			},
			{
				Name: "circle",
				Prototype: entity.FeatureVector{
					-1.8, -3.2, -2.5, -3.8, -4.0, -3.5, -2.8,
					80, 40, 0.8, 1.0, 0.7, 0.9, 0.5, 0.5, 0.015, 30,
				},
				MinScore: 5,
				MaxScore: 25,
			},
			{
				Name: "line",
				Prototype: entity.FeatureVector{
					-1.2, -1.8, -1.5, -2.0, -2.5, -1.9, -1.6,
					40, 80, 0.1, 0.1, 0.3, 0.4, 0.5, 0.5, 0.008, 15,
				},
				MinScore: 5,
				MaxScore: 20,
			},
		},

		OutputPath: "devanagari_training_data.json",
	}
}

// Load загружает конфигурацию: значения по умолчанию и необязательные
// переопределения из окружения или .env файла.
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("DATASET_OUTPUT"); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv("DATASET_FONT"); v != "" {
		cfg.FontFile = v
	}
	if v := os.Getenv("DATASET_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DATASET_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func systemFonts(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"/System/Library/Fonts/Arial Unicode MS.ttf"}
	case "windows":
		return []string{`C:\Windows\Fonts\Nirmala.ttf`}
	default:
		return []string{
			"/usr/share/fonts/truetype/noto/NotoSansDevanagari-Regular.ttf",
			"/usr/share/fonts/noto/NotoSansDevanagari-Regular.ttf",
		}
	}
}
