package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRand_SeedIsReproducible(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}
