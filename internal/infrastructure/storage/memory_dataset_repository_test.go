package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryDatasetRepository_SaveCopies(t *testing.T) {
	repo := NewMemoryDatasetRepository()
	ctx := context.Background()

	records := sampleRecords()
	require.NoError(t, repo.Save(ctx, records))
	records[0].Features[0] = 99

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	require.Equal(t, 0.0, loaded[0].Features[0])
	require.Equal(t, 1, repo.Saves())
}
