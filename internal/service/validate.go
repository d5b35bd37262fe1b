package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fishmasterki/fishmaster/internal/models"
)

// CatchPayload is a submitted catch. Numeric fields accept JSON numbers or
// numeric strings, matching what the mobile client sends.
type CatchPayload struct {
	UserID            string `json:"userId"`
	SpeciesID         string `json:"speciesId"`
	SpotID            string `json:"spotId"`
	Weight            any    `json:"weight"`
	Length            any    `json:"length"`
	PhotoURL          string `json:"photoUrl"`
	Notes             string `json:"notes"`
	BaitUsed          string `json:"baitUsed"`
	WeatherConditions string `json:"weatherConditions"`
	WaterTemperature  any    `json:"waterTemperature"`
	IsReleased        *bool  `json:"isReleased"`
}

// LogbookPayload is a submitted logbook entry.
type LogbookPayload struct {
	UserID string `json:"userId"`
	Fish   string `json:"fish"`
	Weight any    `json:"weight"`
	Spot   string `json:"spot"`
	Gear   string `json:"gear"`
	Date   string `json:"date"`
}

// LogbookUpdatePayload is a partial logbook update. Nil fields are untouched.
type LogbookUpdatePayload struct {
	Fish   *string `json:"fish"`
	Weight any     `json:"weight"`
	Spot   *string `json:"spot"`
	Gear   *string `json:"gear"`
	Date   *string `json:"date"`
}

// coerceFloat turns a decoded JSON value into a float64. Numeric strings are
// accepted; anything else present but non-numeric is rejected.
func coerceFloat(v any) (val float64, present bool, ok bool) {
	switch n := v.(type) {
	case nil:
		return 0, false, true
	case float64:
		return n, true, !math.IsNaN(n) && !math.IsInf(n, 0)
	case string:
		if strings.TrimSpace(n) == "" {
			return 0, false, true
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, true, false
		}
		return f, true, true
	default:
		return 0, true, false
	}
}

// ValidateCatch checks a catch submission and returns the normalized record
// ready for insertion. isReleased defaults to false.
func ValidateCatch(p CatchPayload) (models.Catch, error) {
	var fields []string
	if strings.TrimSpace(p.UserID) == "" {
		fields = append(fields, "userId")
	}
	if strings.TrimSpace(p.SpeciesID) == "" {
		fields = append(fields, "speciesId")
	}

	weight, weightSet, ok := coerceFloat(p.Weight)
	if !ok {
		fields = append(fields, "weight")
	}
	length, lengthSet, ok := coerceFloat(p.Length)
	if !ok {
		fields = append(fields, "length")
	}
	waterTemp, waterTempSet, ok := coerceFloat(p.WaterTemperature)
	if !ok {
		fields = append(fields, "waterTemperature")
	}

	if len(fields) > 0 {
		return models.Catch{}, invalid(fields...)
	}

	c := models.Catch{
		UserID:            p.UserID,
		SpeciesID:         p.SpeciesID,
		SpotID:            p.SpotID,
		PhotoURL:          p.PhotoURL,
		Notes:             p.Notes,
		BaitUsed:          p.BaitUsed,
		WeatherConditions: p.WeatherConditions,
	}
	if weightSet {
		c.Weight = &weight
	}
	if lengthSet {
		c.Length = &length
	}
	if waterTempSet {
		c.WaterTemperature = &waterTemp
	}
	if p.IsReleased != nil {
		c.IsReleased = *p.IsReleased
	}
	return c, nil
}

// ValidateLogbookEntry checks a logbook submission, computes the point value
// and fills the display date when absent.
func ValidateLogbookEntry(p LogbookPayload) (models.LogbookEntry, error) {
	var fields []string
	if strings.TrimSpace(p.UserID) == "" {
		fields = append(fields, "userId")
	}
	if strings.TrimSpace(p.Fish) == "" {
		fields = append(fields, "fish")
	}
	if strings.TrimSpace(p.Spot) == "" {
		fields = append(fields, "spot")
	}
	if strings.TrimSpace(p.Gear) == "" {
		fields = append(fields, "gear")
	}

	weight, present, ok := coerceFloat(p.Weight)
	if !present || !ok || weight <= 0 {
		fields = append(fields, "weight")
	}

	if len(fields) > 0 {
		return models.LogbookEntry{}, invalid(fields...)
	}

	date := p.Date
	if date == "" {
		date = time.Now().Format("02.01.2006")
	}

	return models.LogbookEntry{
		UserID: p.UserID,
		Fish:   p.Fish,
		Weight: weight,
		Spot:   p.Spot,
		Gear:   p.Gear,
		Date:   date,
		Points: Points(weight),
	}, nil
}
