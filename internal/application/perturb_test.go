package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"devanagari-dataset/internal/domain/entity"
)

func TestPerturb_ZeroLevelIsIdentity(t *testing.T) {
	p := NewPerturber(NewRand(1), 0.2)
	v := referenceVector()

	out := p.Perturb(v, 0)
	require.Len(t, out, entity.FeatureLength)
	require.InDeltaSlice(t, []float64(v), []float64(out), 1e-12)
}

func TestPerturb_ZeroElementsStayZero(t *testing.T) {
	p := NewPerturber(NewRand(1), 0.2)
	v := referenceVector()

	for _, level := range []float64{0.2, 0.5, 0.8, 1} {
		out := p.Perturb(v, level)
		require.Equal(t, 0.0, out[5])
	}
	require.True(t, p.Perturb(entity.ZeroFeatures(), 1).IsZero())
}

func TestPerturb_DoesNotMutateInput(t *testing.T) {
	p := NewPerturber(NewRand(1), 0.2)
	v := referenceVector()
	orig := v.Clone()

	out := p.Perturb(v, 0.8)
	require.Equal(t, orig, v)
	require.NotEqual(t, v, out)
}

func TestPerturb_Deterministic(t *testing.T) {
	v := referenceVector()
	a := NewPerturber(NewRand(42), 0.2).Perturb(v, 0.4)
	b := NewPerturber(NewRand(42), 0.2).Perturb(v, 0.4)
	require.Equal(t, a, b)
}

func TestPerturb_Distribution(t *testing.T) {
	p := NewPerturber(NewRand(3), 0.2)
	v := entity.FeatureVector{-10}

	// sigma = 0.5 * 0.2 * 10 = 1
	const n = 20000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		x := p.Perturb(v, 0.5)[0]
		sum += x
		sumSq += x * x
	}
	mean := sum / n
	std := math.Sqrt(sumSq/n - mean*mean)
	require.InDelta(t, -10, mean, 0.05)
	require.InDelta(t, 1, std, 0.05)
}
