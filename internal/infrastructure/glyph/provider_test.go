package glyph

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type failingProvider struct{ calls int }

func (p *failingProvider) Name() string { return "failing" }

func (p *failingProvider) Face(size float64) (font.Face, error) {
	p.calls++
	return nil, errors.New("boom")
}

func TestResolve_FallsBackToBuiltin(t *testing.T) {
	missing := FileProvider{Path: filepath.Join(t.TempDir(), "NotoSansDevanagari-Regular.ttf")}
	face, tier := Resolve(72, missing)
	require.Equal(t, BuiltinTier, tier)
	require.Equal(t, basicfont.Face7x13, face)
}

func TestResolve_NoProviders(t *testing.T) {
	_, tier := Resolve(72)
	require.Equal(t, BuiltinTier, tier)
}

func TestResolve_FirstSuccessWins(t *testing.T) {
	failing := &failingProvider{}
	second := BytesProvider{Label: "goregular", Data: goregular.TTF}
	third := &failingProvider{}

	face, tier := Resolve(72, failing, second, third)
	require.NotNil(t, face)
	require.Equal(t, "goregular", tier)
	require.Equal(t, 1, failing.calls)
	require.Equal(t, 0, third.calls)
}

func TestFileProvider_Missing(t *testing.T) {
	_, err := FileProvider{Path: filepath.Join(t.TempDir(), "none.ttf")}.Face(72)
	require.ErrorIs(t, err, ErrNoFont)
}

func TestBytesProvider_ProbeRejectsLatinFont(t *testing.T) {
	_, err := BytesProvider{Label: "goregular", Data: goregular.TTF, Probe: 'क'}.Face(72)
	require.ErrorIs(t, err, ErrMissingGlyph)

	_, err = BytesProvider{Label: "goregular", Data: goregular.TTF, Probe: 'A'}.Face(72)
	require.NoError(t, err)
}

func TestBytesProvider_Garbage(t *testing.T) {
	_, err := BytesProvider{Label: "junk", Data: []byte("junk")}.Face(72)
	require.Error(t, err)
}

func TestDefaultProviders(t *testing.T) {
	providers := DefaultProviders("Noto.ttf", []string{"/a.ttf", "/b.ttf"}, 'क')
	require.Len(t, providers, 3)
	require.Equal(t, "Noto.ttf", providers[0].Name())
	require.Equal(t, "/b.ttf", providers[2].Name())

	require.Len(t, DefaultProviders("", nil, 0), 0)
}
