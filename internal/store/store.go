// Package store persists the app's entities. Two implementations share the
// same contract: an in-memory store used by default and a PostgreSQL store
// selected when DATABASE_URL is set.
package store

import (
	"context"
	"errors"

	"github.com/fishmasterki/fishmaster/internal/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// LogbookEntryUpdate carries the fields of a partial logbook update. Nil
// fields are left unchanged.
type LogbookEntryUpdate struct {
	Fish   *string
	Weight *float64
	Spot   *string
	Gear   *string
	Date   *string
	Points *int
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, ins models.InsertUser) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserCounters(ctx context.Context, id string, totalCatches, speciesCount, spotsVisited int) (models.User, error)
}

// SpeciesStore persists the fish species catalog.
type SpeciesStore interface {
	CreateFishSpecies(ctx context.Context, s models.FishSpecies) (models.FishSpecies, error)
	GetFishSpecies(ctx context.Context, id string) (models.FishSpecies, error)
	ListFishSpecies(ctx context.Context) ([]models.FishSpecies, error)
}

// SpotStore persists the fishing spot catalog.
type SpotStore interface {
	CreateFishingSpot(ctx context.Context, s models.FishingSpot) (models.FishingSpot, error)
	GetFishingSpot(ctx context.Context, id string) (models.FishingSpot, error)
	ListFishingSpots(ctx context.Context) ([]models.FishingSpot, error)
	UpdateSpotRecentCatches(ctx context.Context, id string, recentCatches int) (models.FishingSpot, error)
}

// CatchStore persists catches. ListCatches returns newest first; an empty
// userID returns every catch.
type CatchStore interface {
	CreateCatch(ctx context.Context, c models.Catch) (models.Catch, error)
	GetCatch(ctx context.Context, id string) (models.Catch, error)
	ListCatches(ctx context.Context, userID string) ([]models.Catch, error)
	IncrementCatchLikes(ctx context.Context, id string) (models.Catch, error)
}

// TipStore persists editorial tips.
type TipStore interface {
	CreateTip(ctx context.Context, t models.Tip) (models.Tip, error)
	GetTip(ctx context.Context, id string) (models.Tip, error)
	ListTips(ctx context.Context) ([]models.Tip, error)
}

// LogbookStore persists logbook entries. An empty userID lists every entry.
type LogbookStore interface {
	CreateLogbookEntry(ctx context.Context, e models.LogbookEntry) (models.LogbookEntry, error)
	GetLogbookEntry(ctx context.Context, id string) (models.LogbookEntry, error)
	ListLogbookEntries(ctx context.Context, userID string) ([]models.LogbookEntry, error)
	UpdateLogbookEntry(ctx context.Context, id string, upd LogbookEntryUpdate) (models.LogbookEntry, error)
	DeleteLogbookEntry(ctx context.Context, id string) error
}

// Store is the full persistence contract consumed by the services and the
// HTTP layer.
type Store interface {
	UserStore
	SpeciesStore
	SpotStore
	CatchStore
	TipStore
	LogbookStore
}
