package service

import (
	"math"
	"strings"

	"github.com/fishmasterki/fishmaster/internal/models"
)

// Rank names, lowest tier first.
const (
	RankAnfaenger = "Anfänger"
	RankProAngler = "Pro-Angler"
	RankLegende   = "Legende"
	RankFischgott = "Fischgott"
)

// Achievement badge names.
const (
	AchievementHechtKiller = "Hecht-Killer"
	Achievement3kgClub     = "3kg Club"
	AchievementFangmeister = "Fangmeister"
)

// Points converts a weight in kilograms into logbook points, 100 per kg.
func Points(weight float64) int {
	return int(math.Round(weight * 100))
}

// Rank maps cumulative points to the rank name. Boundaries are strict: a
// user at exactly 1000 points is still an Anfänger.
func Rank(totalPoints int) string {
	switch {
	case totalPoints > 4000:
		return RankFischgott
	case totalPoints > 2000:
		return RankLegende
	case totalPoints > 1000:
		return RankProAngler
	default:
		return RankAnfaenger
	}
}

// Achievements derives the badge set from a user's logbook entries. The
// result is never nil and preserves a fixed badge order.
func Achievements(entries []models.LogbookEntry) []string {
	badges := []string{}

	heavyCount := 0
	pike := false
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Fish), "hecht") {
			pike = true
		}
		if e.Weight >= 3 {
			heavyCount++
		}
	}

	if pike {
		badges = append(badges, AchievementHechtKiller)
	}
	if heavyCount >= 3 {
		badges = append(badges, Achievement3kgClub)
	}
	if len(entries) >= 5 {
		badges = append(badges, AchievementFangmeister)
	}
	return badges
}

// StatsFromEntries computes the full derived summary for one user's entries.
func StatsFromEntries(entries []models.LogbookEntry) models.UserStats {
	total := 0
	for _, e := range entries {
		total += e.Points
	}
	return models.UserStats{
		TotalPoints:  total,
		TotalCatches: len(entries),
		Rank:         Rank(total),
		Achievements: Achievements(entries),
	}
}
