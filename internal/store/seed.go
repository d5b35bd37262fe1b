package store

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fishmasterki/fishmaster/internal/models"
)

//go:embed seed/catalog.yaml
var catalogYAML []byte

type seedSpecies struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	ScientificName string   `yaml:"scientific_name"`
	Description    string   `yaml:"description"`
	Habitat        string   `yaml:"habitat"`
	Difficulty     string   `yaml:"difficulty"`
	ImageURL       string   `yaml:"image_url"`
	AverageWeight  float64  `yaml:"average_weight"`
	AverageLength  float64  `yaml:"average_length"`
	Tips           string   `yaml:"tips"`
	CommonBaits    []string `yaml:"common_baits"`
}

type seedSpot struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Latitude      float64  `yaml:"latitude"`
	Longitude     float64  `yaml:"longitude"`
	FishingScore  float64  `yaml:"fishing_score"`
	ImageURL      string   `yaml:"image_url"`
	Accessibility string   `yaml:"accessibility"`
	Facilities    []string `yaml:"facilities"`
	BestSeasons   []string `yaml:"best_seasons"`
	CommonSpecies []string `yaml:"common_species"`
	RecentCatches int      `yaml:"recent_catches"`
}

type seedTip struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Content    string `yaml:"content"`
	Category   string `yaml:"category"`
	Difficulty string `yaml:"difficulty"`
	ImageURL   string `yaml:"image_url"`
	Author     string `yaml:"author"`
}

type seedCatalog struct {
	Species []seedSpecies `yaml:"species"`
	Spots   []seedSpot    `yaml:"spots"`
	Tips    []seedTip     `yaml:"tips"`
}

// Seed loads the embedded catalog (species, spots, tips) into the store.
// Seed IDs are stable slugs so clients can link to catalog entries.
func Seed(ctx context.Context, s Store) error {
	var catalog seedCatalog
	if err := yaml.Unmarshal(catalogYAML, &catalog); err != nil {
		return fmt.Errorf("parsing seed catalog: %w", err)
	}

	for _, sp := range catalog.Species {
		_, err := s.CreateFishSpecies(ctx, models.FishSpecies{
			ID:             sp.ID,
			Name:           sp.Name,
			ScientificName: sp.ScientificName,
			Description:    sp.Description,
			Habitat:        sp.Habitat,
			Difficulty:     sp.Difficulty,
			ImageURL:       sp.ImageURL,
			AverageWeight:  sp.AverageWeight,
			AverageLength:  sp.AverageLength,
			Tips:           sp.Tips,
			CommonBaits:    sp.CommonBaits,
		})
		if err != nil {
			return fmt.Errorf("seeding species %q: %w", sp.ID, err)
		}
	}

	for _, sp := range catalog.Spots {
		_, err := s.CreateFishingSpot(ctx, models.FishingSpot{
			ID:            sp.ID,
			Name:          sp.Name,
			Description:   sp.Description,
			Latitude:      sp.Latitude,
			Longitude:     sp.Longitude,
			FishingScore:  sp.FishingScore,
			ImageURL:      sp.ImageURL,
			Accessibility: sp.Accessibility,
			Facilities:    sp.Facilities,
			BestSeasons:   sp.BestSeasons,
			CommonSpecies: sp.CommonSpecies,
			RecentCatches: sp.RecentCatches,
		})
		if err != nil {
			return fmt.Errorf("seeding spot %q: %w", sp.ID, err)
		}
	}

	for _, t := range catalog.Tips {
		_, err := s.CreateTip(ctx, models.Tip{
			ID:         t.ID,
			Title:      t.Title,
			Content:    t.Content,
			Category:   t.Category,
			Difficulty: t.Difficulty,
			ImageURL:   t.ImageURL,
			Author:     t.Author,
		})
		if err != nil {
			return fmt.Errorf("seeding tip %q: %w", t.ID, err)
		}
	}

	return nil
}
