package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fishmasterki/fishmaster/internal/models"
)

func TestMemoryUserLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	created, err := m.CreateUser(ctx, models.InsertUser{
		Username: "angler", Email: "Angler@Example.com", DisplayName: "Angler",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated ID")
	}
	if created.TotalCatches != 0 || created.SpeciesCount != 0 || created.SpotsVisited != 0 {
		t.Fatal("counters must start at zero")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp")
	}

	got, err := m.GetUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Username != "angler" {
		t.Fatalf("got username %q", got.Username)
	}

	byEmail, err := m.GetUserByEmail(ctx, "angler@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Fatal("email lookup returned wrong user")
	}

	if _, err := m.GetUser(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	updated, err := m.UpdateUserCounters(ctx, created.ID, 3, 2, 1)
	if err != nil {
		t.Fatalf("UpdateUserCounters: %v", err)
	}
	if updated.TotalCatches != 3 || updated.SpeciesCount != 2 || updated.SpotsVisited != 1 {
		t.Fatalf("counters not applied: %+v", updated)
	}
}

func TestMemoryCatchOrdering(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	// Insert with controlled timestamps via direct map access is not
	// possible from outside, so rely on insertion order for ties.
	first, _ := m.CreateCatch(ctx, models.Catch{UserID: "u1", SpeciesID: "s1"})
	time.Sleep(2 * time.Millisecond)
	second, _ := m.CreateCatch(ctx, models.Catch{UserID: "u1", SpeciesID: "s2"})
	time.Sleep(2 * time.Millisecond)
	third, _ := m.CreateCatch(ctx, models.Catch{UserID: "u2", SpeciesID: "s1"})

	all, err := m.ListCatches(ctx, "")
	if err != nil {
		t.Fatalf("ListCatches: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d catches", len(all))
	}
	if all[0].ID != third.ID || all[1].ID != second.ID || all[2].ID != first.ID {
		t.Fatal("catches not in descending creation order")
	}

	mine, err := m.ListCatches(ctx, "u1")
	if err != nil {
		t.Fatalf("ListCatches(u1): %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("got %d catches for u1", len(mine))
	}
	if mine[0].ID != second.ID || mine[1].ID != first.ID {
		t.Fatal("filtered catches not in descending creation order")
	}
}

func TestMemoryIncrementCatchLikesConcurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	c, _ := m.CreateCatch(ctx, models.Catch{UserID: "u1", SpeciesID: "s1"})

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := m.IncrementCatchLikes(ctx, c.ID); err != nil {
				t.Errorf("IncrementCatchLikes: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := m.GetCatch(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCatch: %v", err)
	}
	if got.Likes != n {
		t.Fatalf("expected %d likes, got %d (lost updates)", n, got.Likes)
	}
}

func TestMemoryLogbookLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	e1, _ := m.CreateLogbookEntry(ctx, models.LogbookEntry{UserID: "u1", Fish: "Hecht", Weight: 3.4, Points: 340})
	e2, _ := m.CreateLogbookEntry(ctx, models.LogbookEntry{UserID: "u2", Fish: "Barsch", Weight: 1, Points: 100})

	mine, err := m.ListLogbookEntries(ctx, "u1")
	if err != nil {
		t.Fatalf("ListLogbookEntries: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != e1.ID {
		t.Fatal("owner filter broken")
	}

	fish := "Riesenhecht"
	weight := 5.0
	points := 500
	updated, err := m.UpdateLogbookEntry(ctx, e1.ID, LogbookEntryUpdate{Fish: &fish, Weight: &weight, Points: &points})
	if err != nil {
		t.Fatalf("UpdateLogbookEntry: %v", err)
	}
	if updated.Fish != "Riesenhecht" || updated.Weight != 5.0 || updated.Points != 500 {
		t.Fatalf("partial update not applied: %+v", updated)
	}
	if updated.UserID != "u1" {
		t.Fatal("untouched fields must survive the merge")
	}

	if err := m.DeleteLogbookEntry(ctx, e1.ID); err != nil {
		t.Fatalf("DeleteLogbookEntry: %v", err)
	}
	if err := m.DeleteLogbookEntry(ctx, e1.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}

	rest, _ := m.ListLogbookEntries(ctx, "")
	if len(rest) != 1 || rest[0].ID != e2.ID {
		t.Fatal("delete removed the wrong entry")
	}
}

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := Seed(ctx, m); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	species, err := m.ListFishSpecies(ctx)
	if err != nil {
		t.Fatalf("ListFishSpecies: %v", err)
	}
	if len(species) != 4 {
		t.Fatalf("expected 4 seeded species, got %d", len(species))
	}
	if species[0].ID != "rainbow-trout" {
		t.Fatalf("expected insertion order, got %q first", species[0].ID)
	}

	trout, err := m.GetFishSpecies(ctx, "rainbow-trout")
	if err != nil {
		t.Fatalf("GetFishSpecies: %v", err)
	}
	if trout.ScientificName != "Oncorhynchus mykiss" {
		t.Fatalf("unexpected scientific name %q", trout.ScientificName)
	}
	if len(trout.CommonBaits) != 4 {
		t.Fatalf("expected 4 baits, got %v", trout.CommonBaits)
	}

	spots, err := m.ListFishingSpots(ctx)
	if err != nil {
		t.Fatalf("ListFishingSpots: %v", err)
	}
	if len(spots) != 2 {
		t.Fatalf("expected 2 seeded spots, got %d", len(spots))
	}
	lake, err := m.GetFishingSpot(ctx, "crystal-lake")
	if err != nil {
		t.Fatalf("GetFishingSpot: %v", err)
	}
	if lake.FishingScore != 9.2 || lake.RecentCatches != 12 {
		t.Fatalf("unexpected spot data: %+v", lake)
	}

	tips, err := m.ListTips(ctx)
	if err != nil {
		t.Fatalf("ListTips: %v", err)
	}
	if len(tips) != 1 {
		t.Fatalf("expected 1 seeded tip, got %d", len(tips))
	}
	if tips[0].Author != "Pro Angler Mike" {
		t.Fatalf("unexpected tip author %q", tips[0].Author)
	}
}
