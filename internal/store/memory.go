package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fishmasterki/fishmaster/internal/models"
)

// Memory is an in-memory Store. It is safe for concurrent use; counter
// updates take the write lock so increments are never lost.
type Memory struct {
	mu           sync.RWMutex
	users        map[string]models.User
	userOrder    []string
	species      map[string]models.FishSpecies
	specOrder    []string
	spots        map[string]models.FishingSpot
	spotOrder    []string
	catches      map[string]models.Catch
	catchOrder   []string
	tips         map[string]models.Tip
	tipOrder     []string
	logbook      map[string]models.LogbookEntry
	logbookOrder []string
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:   make(map[string]models.User),
		species: make(map[string]models.FishSpecies),
		spots:   make(map[string]models.FishingSpot),
		catches: make(map[string]models.Catch),
		tips:    make(map[string]models.Tip),
		logbook: make(map[string]models.LogbookEntry),
	}
}

func newID() string {
	return uuid.NewString()
}

// Users -----------------------------------------------------------------------

func (m *Memory) CreateUser(_ context.Context, ins models.InsertUser) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := models.User{
		ID:          newID(),
		Username:    ins.Username,
		Email:       ins.Email,
		DisplayName: ins.DisplayName,
		Avatar:      ins.Avatar,
		CreatedAt:   time.Now().UTC(),
	}
	m.users[u.ID] = u
	m.userOrder = append(m.userOrder, u.ID)
	return u, nil
}

func (m *Memory) GetUser(_ context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.userOrder {
		if u := m.users[id]; strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *Memory) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.User, 0, len(m.userOrder))
	for _, id := range m.userOrder {
		out = append(out, m.users[id])
	}
	return out, nil
}

func (m *Memory) UpdateUserCounters(_ context.Context, id string, totalCatches, speciesCount, spotsVisited int) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	u.TotalCatches = totalCatches
	u.SpeciesCount = speciesCount
	u.SpotsVisited = spotsVisited
	m.users[id] = u
	return u, nil
}

// Species ---------------------------------------------------------------------

func (m *Memory) CreateFishSpecies(_ context.Context, s models.FishSpecies) (models.FishSpecies, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == "" {
		s.ID = newID()
	}
	m.species[s.ID] = s
	m.specOrder = append(m.specOrder, s.ID)
	return s, nil
}

func (m *Memory) GetFishSpecies(_ context.Context, id string) (models.FishSpecies, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.species[id]
	if !ok {
		return models.FishSpecies{}, ErrNotFound
	}
	return s, nil
}

func (m *Memory) ListFishSpecies(_ context.Context) ([]models.FishSpecies, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.FishSpecies, 0, len(m.specOrder))
	for _, id := range m.specOrder {
		out = append(out, m.species[id])
	}
	return out, nil
}

// Spots -----------------------------------------------------------------------

func (m *Memory) CreateFishingSpot(_ context.Context, s models.FishingSpot) (models.FishingSpot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == "" {
		s.ID = newID()
	}
	m.spots[s.ID] = s
	m.spotOrder = append(m.spotOrder, s.ID)
	return s, nil
}

func (m *Memory) GetFishingSpot(_ context.Context, id string) (models.FishingSpot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.spots[id]
	if !ok {
		return models.FishingSpot{}, ErrNotFound
	}
	return s, nil
}

func (m *Memory) ListFishingSpots(_ context.Context) ([]models.FishingSpot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.FishingSpot, 0, len(m.spotOrder))
	for _, id := range m.spotOrder {
		out = append(out, m.spots[id])
	}
	return out, nil
}

func (m *Memory) UpdateSpotRecentCatches(_ context.Context, id string, recentCatches int) (models.FishingSpot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.spots[id]
	if !ok {
		return models.FishingSpot{}, ErrNotFound
	}
	s.RecentCatches = recentCatches
	m.spots[id] = s
	return s, nil
}

// Catches ---------------------------------------------------------------------

func (m *Memory) CreateCatch(_ context.Context, c models.Catch) (models.Catch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = newID()
	c.CreatedAt = time.Now().UTC()
	c.Likes = 0
	c.Comments = 0
	m.catches[c.ID] = c
	m.catchOrder = append(m.catchOrder, c.ID)
	return c, nil
}

func (m *Memory) GetCatch(_ context.Context, id string) (models.Catch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.catches[id]
	if !ok {
		return models.Catch{}, ErrNotFound
	}
	return c, nil
}

func (m *Memory) ListCatches(_ context.Context, userID string) ([]models.Catch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Catch, 0, len(m.catchOrder))
	// Walk in reverse insertion order so equal timestamps keep newest first
	// after the stable sort.
	for i := len(m.catchOrder) - 1; i >= 0; i-- {
		c := m.catches[m.catchOrder[i]]
		if userID != "" && c.UserID != userID {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) IncrementCatchLikes(_ context.Context, id string) (models.Catch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.catches[id]
	if !ok {
		return models.Catch{}, ErrNotFound
	}
	c.Likes++
	m.catches[id] = c
	return c, nil
}

// Tips ------------------------------------------------------------------------

func (m *Memory) CreateTip(_ context.Context, t models.Tip) (models.Tip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.ID == "" {
		t.ID = newID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	m.tips[t.ID] = t
	m.tipOrder = append(m.tipOrder, t.ID)
	return t, nil
}

func (m *Memory) GetTip(_ context.Context, id string) (models.Tip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tips[id]
	if !ok {
		return models.Tip{}, ErrNotFound
	}
	return t, nil
}

func (m *Memory) ListTips(_ context.Context) ([]models.Tip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Tip, 0, len(m.tipOrder))
	for _, id := range m.tipOrder {
		out = append(out, m.tips[id])
	}
	return out, nil
}

// Logbook ---------------------------------------------------------------------

func (m *Memory) CreateLogbookEntry(_ context.Context, e models.LogbookEntry) (models.LogbookEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = newID()
	m.logbook[e.ID] = e
	m.logbookOrder = append(m.logbookOrder, e.ID)
	return e, nil
}

func (m *Memory) GetLogbookEntry(_ context.Context, id string) (models.LogbookEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.logbook[id]
	if !ok {
		return models.LogbookEntry{}, ErrNotFound
	}
	return e, nil
}

func (m *Memory) ListLogbookEntries(_ context.Context, userID string) ([]models.LogbookEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.LogbookEntry, 0, len(m.logbookOrder))
	for _, id := range m.logbookOrder {
		e := m.logbook[id]
		if userID != "" && e.UserID != userID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *Memory) UpdateLogbookEntry(_ context.Context, id string, upd LogbookEntryUpdate) (models.LogbookEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.logbook[id]
	if !ok {
		return models.LogbookEntry{}, ErrNotFound
	}
	if upd.Fish != nil {
		e.Fish = *upd.Fish
	}
	if upd.Weight != nil {
		e.Weight = *upd.Weight
	}
	if upd.Spot != nil {
		e.Spot = *upd.Spot
	}
	if upd.Gear != nil {
		e.Gear = *upd.Gear
	}
	if upd.Date != nil {
		e.Date = *upd.Date
	}
	if upd.Points != nil {
		e.Points = *upd.Points
	}
	m.logbook[id] = e
	return e, nil
}

func (m *Memory) DeleteLogbookEntry(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.logbook[id]; !ok {
		return ErrNotFound
	}
	delete(m.logbook, id)
	for i, oid := range m.logbookOrder {
		if oid == id {
			m.logbookOrder = append(m.logbookOrder[:i], m.logbookOrder[i+1:]...)
			break
		}
	}
	return nil
}
