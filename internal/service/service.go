// Package service holds the catch/logbook domain logic: submission
// validation, point computation, rank and achievement derivation, and the
// explicitly-triggered counter recomputations.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fishmasterki/fishmaster/internal/models"
	"github.com/fishmasterki/fishmaster/internal/store"
)

// Service wires the domain logic to a Store.
type Service struct {
	store store.Store
	log   logrus.FieldLogger
}

// New creates a Service on top of the given store.
func New(st store.Store, log logrus.FieldLogger) *Service {
	return &Service{store: st, log: log}
}

// CreateCatch validates and stores a catch, then recomputes the owner's
// aggregate counters and the spot's recent-catch count from stored data.
// Counter refresh is best effort: the catch is already persisted, so a
// refresh failure is logged, not surfaced.
func (s *Service) CreateCatch(ctx context.Context, p CatchPayload) (models.Catch, error) {
	rec, err := ValidateCatch(p)
	if err != nil {
		return models.Catch{}, err
	}

	created, err := s.store.CreateCatch(ctx, rec)
	if err != nil {
		return models.Catch{}, fmt.Errorf("storing catch: %w", err)
	}

	if err := s.RecomputeUserCounters(ctx, created.UserID); err != nil && !errors.Is(err, store.ErrNotFound) {
		s.log.WithError(err).WithField("user_id", created.UserID).Warn("refreshing user counters failed")
	}
	if created.SpotID != "" {
		if err := s.RecomputeSpotCatches(ctx, created.SpotID); err != nil && !errors.Is(err, store.ErrNotFound) {
			s.log.WithError(err).WithField("spot_id", created.SpotID).Warn("refreshing spot catches failed")
		}
	}

	return created, nil
}

// LikeCatch increments a catch's like counter atomically in the store.
func (s *Service) LikeCatch(ctx context.Context, id string) (models.Catch, error) {
	return s.store.IncrementCatchLikes(ctx, id)
}

// CreateLogbookEntry validates and stores a logbook entry. Points are
// computed here, never taken from the client.
func (s *Service) CreateLogbookEntry(ctx context.Context, p LogbookPayload) (models.LogbookEntry, error) {
	rec, err := ValidateLogbookEntry(p)
	if err != nil {
		return models.LogbookEntry{}, err
	}
	created, err := s.store.CreateLogbookEntry(ctx, rec)
	if err != nil {
		return models.LogbookEntry{}, fmt.Errorf("storing logbook entry: %w", err)
	}
	return created, nil
}

// UpdateLogbookEntry applies a partial update. When the weight changes the
// point value is recomputed so it stays a pure function of the weight.
func (s *Service) UpdateLogbookEntry(ctx context.Context, id string, p LogbookUpdatePayload) (models.LogbookEntry, error) {
	var fields []string
	if p.Fish != nil && *p.Fish == "" {
		fields = append(fields, "fish")
	}
	if p.Spot != nil && *p.Spot == "" {
		fields = append(fields, "spot")
	}
	if p.Gear != nil && *p.Gear == "" {
		fields = append(fields, "gear")
	}

	upd := store.LogbookEntryUpdate{
		Fish: p.Fish,
		Spot: p.Spot,
		Gear: p.Gear,
		Date: p.Date,
	}
	weight, present, ok := coerceFloat(p.Weight)
	if present {
		if !ok || weight <= 0 {
			fields = append(fields, "weight")
		} else {
			points := Points(weight)
			upd.Weight = &weight
			upd.Points = &points
		}
	}

	if len(fields) > 0 {
		return models.LogbookEntry{}, invalid(fields...)
	}

	return s.store.UpdateLogbookEntry(ctx, id, upd)
}

// DeleteLogbookEntry removes an entry.
func (s *Service) DeleteLogbookEntry(ctx context.Context, id string) error {
	return s.store.DeleteLogbookEntry(ctx, id)
}

// UserStats recomputes the point total, rank and achievements from the
// user's stored entries. No caching; a user with no entries gets the zero
// summary with rank Anfänger.
func (s *Service) UserStats(ctx context.Context, userID string) (models.UserStats, error) {
	entries, err := s.store.ListLogbookEntries(ctx, userID)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("listing logbook entries: %w", err)
	}
	return StatsFromEntries(entries), nil
}

// RecomputeUserCounters rebuilds totalCatches, speciesCount and spotsVisited
// from the user's stored catches and writes them back.
func (s *Service) RecomputeUserCounters(ctx context.Context, userID string) error {
	catches, err := s.store.ListCatches(ctx, userID)
	if err != nil {
		return fmt.Errorf("listing catches: %w", err)
	}

	speciesSeen := map[string]struct{}{}
	spotsSeen := map[string]struct{}{}
	for _, c := range catches {
		if c.SpeciesID != "" {
			speciesSeen[c.SpeciesID] = struct{}{}
		}
		if c.SpotID != "" {
			spotsSeen[c.SpotID] = struct{}{}
		}
	}

	_, err = s.store.UpdateUserCounters(ctx, userID, len(catches), len(speciesSeen), len(spotsSeen))
	return err
}

// RecomputeSpotCatches rebuilds a spot's recent-catch counter from stored
// catches referencing it.
func (s *Service) RecomputeSpotCatches(ctx context.Context, spotID string) error {
	catches, err := s.store.ListCatches(ctx, "")
	if err != nil {
		return fmt.Errorf("listing catches: %w", err)
	}
	n := 0
	for _, c := range catches {
		if c.SpotID == spotID {
			n++
		}
	}
	_, err = s.store.UpdateSpotRecentCatches(ctx, spotID, n)
	return err
}
