package service

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishmasterki/fishmaster/internal/models"
	"github.com/fishmasterki/fishmaster/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	mem := store.NewMemory()
	return New(mem, log), mem
}

func TestCreateCatchRefreshesCounters(t *testing.T) {
	ctx := context.Background()
	svc, mem := newTestService(t)
	require.NoError(t, store.Seed(ctx, mem))

	user, err := mem.CreateUser(ctx, models.InsertUser{
		Username: "angler", Email: "angler@example.com", DisplayName: "Angler",
	})
	require.NoError(t, err)

	_, err = svc.CreateCatch(ctx, CatchPayload{
		UserID:    user.ID,
		SpeciesID: "rainbow-trout",
		SpotID:    "crystal-lake",
		Weight:    2.5,
	})
	require.NoError(t, err)

	_, err = svc.CreateCatch(ctx, CatchPayload{
		UserID:    user.ID,
		SpeciesID: "northern-pike",
		SpotID:    "crystal-lake",
	})
	require.NoError(t, err)

	got, err := mem.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalCatches)
	assert.Equal(t, 2, got.SpeciesCount)
	assert.Equal(t, 1, got.SpotsVisited)

	spot, err := mem.GetFishingSpot(ctx, "crystal-lake")
	require.NoError(t, err)
	assert.Equal(t, 2, spot.RecentCatches)
}

func TestCreateCatchUnknownUserStillStores(t *testing.T) {
	// The original client pins a "default-user" that never gets registered;
	// catch creation must not depend on the user record existing.
	ctx := context.Background()
	svc, mem := newTestService(t)

	created, err := svc.CreateCatch(ctx, CatchPayload{
		UserID:    "default-user",
		SpeciesID: "rainbow-trout",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	catches, err := mem.ListCatches(ctx, "default-user")
	require.NoError(t, err)
	assert.Len(t, catches, 1)
}

func TestCreateCatchValidationWritesNothing(t *testing.T) {
	ctx := context.Background()
	svc, mem := newTestService(t)

	_, err := svc.CreateCatch(ctx, CatchPayload{UserID: "u1"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	catches, err := mem.ListCatches(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, catches)
}

func TestUpdateLogbookEntryRecomputesPoints(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.CreateLogbookEntry(ctx, LogbookPayload{
		UserID: "u1", Fish: "Hecht", Weight: 3.4, Spot: "Chiemsee", Gear: "Spinnrute",
	})
	require.NoError(t, err)
	assert.Equal(t, 340, created.Points)

	w := 5.0
	updated, err := svc.UpdateLogbookEntry(ctx, created.ID, LogbookUpdatePayload{Weight: w})
	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.Weight)
	assert.Equal(t, 500, updated.Points)
}

func TestUpdateLogbookEntryRejectsBadWeight(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.CreateLogbookEntry(ctx, LogbookPayload{
		UserID: "u1", Fish: "Hecht", Weight: 3.4, Spot: "Chiemsee", Gear: "Spinnrute",
	})
	require.NoError(t, err)

	_, err = svc.UpdateLogbookEntry(ctx, created.ID, LogbookUpdatePayload{Weight: "schwer"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"weight"}, ve.Fields)
}

func TestUserStatsEndToEnd(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	stats, err := svc.UserStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.UserStats{
		TotalPoints:  0,
		TotalCatches: 0,
		Rank:         RankAnfaenger,
		Achievements: []string{},
	}, stats)

	_, err = svc.CreateLogbookEntry(ctx, LogbookPayload{
		UserID: "u1", Fish: "Hecht", Weight: 3.4, Spot: "Chiemsee", Gear: "Spinnrute",
	})
	require.NoError(t, err)

	stats, err = svc.UserStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 340, stats.TotalPoints)
	assert.Equal(t, 1, stats.TotalCatches)
	assert.Contains(t, stats.Achievements, AchievementHechtKiller)
	assert.NotContains(t, stats.Achievements, Achievement3kgClub)

	// Entries from other users never leak into the stats.
	_, err = svc.CreateLogbookEntry(ctx, LogbookPayload{
		UserID: "u2", Fish: "Wels", Weight: 20, Spot: "Donau", Gear: "Wallerrute",
	})
	require.NoError(t, err)

	stats, err = svc.UserStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCatches)
}
