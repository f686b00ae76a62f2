package services

import (
	"context"
	"testing"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRefusesNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	svc := DataService{Admin: repositories.NewMemoryStore()}

	stats, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.Hotels)
	assert.Equal(t, 42, stats.Rooms)

	_, err = svc.Seed(ctx)
	assert.True(t, domain.IsConflict(err))

	require.NoError(t, svc.Reset(ctx))
	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{}, stats)
}

func TestHotelSearch(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	require.NoError(t, store.Seed(ctx))
	svc := HotelService{Hotels: store}

	blank, err := svc.SearchHotels(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, blank)

	hits, err := svc.SearchHotels(ctx, "inn")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Lakeside Inn", hits[0].Name)

	missing, err := svc.GetHotel(ctx, 0)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
