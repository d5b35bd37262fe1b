// Package models defines the entity types shared by the store, the domain
// services and the HTTP layer.
package models

import "time"

// User is an app account. The aggregate counters are recomputed from the
// user's catches, never incremented in place.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName"`
	Avatar       *string   `json:"avatar"`
	TotalCatches int       `json:"totalCatches"`
	SpeciesCount int       `json:"speciesCount"`
	SpotsVisited int       `json:"spotsVisited"`
	CreatedAt    time.Time `json:"createdAt"`
}

// InsertUser is the client-supplied part of a User.
type InsertUser struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	DisplayName string  `json:"displayName"`
	Avatar      *string `json:"avatar"`
}

// FishSpecies is a catalog entry, seeded at startup and read-only afterwards.
type FishSpecies struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ScientificName string   `json:"scientificName"`
	Description    string   `json:"description"`
	Habitat        string   `json:"habitat"`
	Difficulty     string   `json:"difficulty"` // "Beginner Friendly", "Intermediate", "Advanced"
	ImageURL       string   `json:"imageUrl"`
	AverageWeight  float64  `json:"averageWeight"`
	AverageLength  float64  `json:"averageLength"`
	Tips           string   `json:"tips"`
	CommonBaits    []string `json:"commonBaits"`
}

// FishingSpot is a catalog entry. RecentCatches is the only field that changes
// after seeding; it is recomputed from stored catches.
type FishingSpot struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	FishingScore  float64  `json:"fishingScore"` // 0-10 rating
	ImageURL      string   `json:"imageUrl"`
	Accessibility string   `json:"accessibility"`
	Facilities    []string `json:"facilities"`
	BestSeasons   []string `json:"bestSeasons"`
	CommonSpecies []string `json:"commonSpecies"`
	RecentCatches int      `json:"recentCatches"`
}

// Catch is a user's record of a caught fish.
type Catch struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	SpeciesID         string    `json:"speciesId"`
	SpotID            string    `json:"spotId"`
	Weight            *float64  `json:"weight"`
	Length            *float64  `json:"length"`
	PhotoURL          string    `json:"photoUrl"`
	Notes             string    `json:"notes"`
	BaitUsed          string    `json:"baitUsed"`
	WeatherConditions string    `json:"weatherConditions"`
	WaterTemperature  *float64  `json:"waterTemperature"`
	IsReleased        bool      `json:"isReleased"`
	Likes             int       `json:"likes"`
	Comments          int       `json:"comments"`
	CreatedAt         time.Time `json:"createdAt"`
}

// LogbookEntry is the free-text catch record behind the point/rank system.
// Points is derived from Weight at write time.
type LogbookEntry struct {
	ID     string  `json:"id"`
	UserID string  `json:"userId"`
	Fish   string  `json:"fish"`
	Weight float64 `json:"weight"`
	Spot   string  `json:"spot"`
	Gear   string  `json:"gear"`
	Date   string  `json:"date"`
	Points int     `json:"points"`
}

// Tip is static editorial content.
type Tip struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"` // "technique", "equipment", "timing", "location"
	Difficulty string    `json:"difficulty"`
	ImageURL   string    `json:"imageUrl"`
	Author     string    `json:"author"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Weather is a point-in-time snapshot for a coordinate. It is regenerated on
// every request and never persisted.
type Weather struct {
	Location     string    `json:"location"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Temperature  float64   `json:"temperature"`
	Condition    string    `json:"condition"`
	WindSpeed    float64   `json:"windSpeed"`
	Humidity     float64   `json:"humidity"`
	Visibility   float64   `json:"visibility"`
	FishingScore string    `json:"fishingScore"` // "Poor", "Fair", "Good", "Excellent"
	Timestamp    time.Time `json:"timestamp"`
}

// UserStats is the derived logbook summary for one user.
type UserStats struct {
	TotalPoints  int      `json:"totalPoints"`
	TotalCatches int      `json:"totalCatches"`
	Rank         string   `json:"rank"`
	Achievements []string `json:"achievements"`
}
