package glyph

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

var (
	// ErrNoFont — файл шрифта не найден или не читается.
	ErrNoFont = errors.New("font is not available")
	// ErrMissingGlyph — в шрифте нет символа для проверки покрытия.
	ErrMissingGlyph = errors.New("font has no glyph")
)

// BuiltinTier — имя встроенного минимального шрифта.
const BuiltinTier = "builtin"

// FontProvider — один уровень цепочки поиска шрифта.
type FontProvider interface {
	Name() string
	Face(size float64) (font.Face, error)
}

// FileProvider загружает шрифт из файла.
// Если задан Probe, шрифт без этого символа отклоняется.
type FileProvider struct {
	Path  string
	Probe rune
}

func (p FileProvider) Name() string { return p.Path }

func (p FileProvider) Face(size float64) (font.Face, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFont, err)
	}
	return parseFace(data, size, p.Probe)
}

// BytesProvider использует шрифт, уже загруженный в память.
type BytesProvider struct {
	Label string
	Data  []byte
	Probe rune
}

func (p BytesProvider) Name() string { return p.Label }

func (p BytesProvider) Face(size float64) (font.Face, error) {
	return parseFace(p.Data, size, p.Probe)
}

// Resolve перебирает поставщиков по порядку; первый успешный прерывает поиск.
// Если не подошёл ни один, возвращается встроенный шрифт с предупреждением,
// так что отрисовка никогда не останавливается из-за шрифта.
func Resolve(size float64, providers ...FontProvider) (font.Face, string) {
	for _, p := range providers {
		face, err := p.Face(size)
		if err != nil {
			log.Printf("Font %s skipped: %v", p.Name(), err)
			continue
		}
		log.Printf("Using font %s", p.Name())
		return face, p.Name()
	}

	log.Printf("Warning: Devanagari font not found, using built-in fallback font")
	return basicfont.Face7x13, BuiltinTier
}

func parseFace(data []byte, size float64, probe rune) (font.Face, error) {
	if probe != 0 {
		if err := checkCoverage(data, probe); err != nil {
			return nil, err
		}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// checkCoverage проверяет по таблице cmap, что шрифт содержит символ probe.
func checkCoverage(data []byte, probe rune) error {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	if _, ok := face.NominalGlyph(probe); !ok {
		return fmt.Errorf("%w %q", ErrMissingGlyph, probe)
	}
	return nil
}

// DefaultProviders строит цепочку: именованный файл шрифта, затем системные шрифты.
func DefaultProviders(fontFile string, systemFonts []string, probe rune) []FontProvider {
	providers := make([]FontProvider, 0, 1+len(systemFonts))
	if fontFile != "" {
		providers = append(providers, FileProvider{Path: fontFile, Probe: probe})
	}
	for _, path := range systemFonts {
		providers = append(providers, FileProvider{Path: path, Probe: probe})
	}
	return providers
}
