// Package weather fetches current conditions from Open-Meteo, labels the
// coordinate via Nominatim reverse geocoding and derives the fishing score.
// Every failure path degrades to a static snapshot so the endpoint never
// hard-fails.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fishmasterki/fishmaster/internal/models"
)

const (
	forecastBaseURL = "https://api.open-meteo.com/v1/forecast"
	geocodeBaseURL  = "https://nominatim.openstreetmap.org/reverse"
	userAgent       = "fishmaster/1.0"
)

// Client talks to the weather and geocoding collaborators.
type Client struct {
	httpClient  *http.Client
	forecastURL string
	geocodeURL  string
	log         logrus.FieldLogger
}

// NewClient creates a weather client with a bounded request timeout.
func NewClient(log logrus.FieldLogger) *Client {
	return NewClientWithBaseURLs(forecastBaseURL, geocodeBaseURL, log)
}

// NewClientWithBaseURLs creates a client against alternative collaborator
// endpoints.
func NewClientWithBaseURLs(forecastURL, geocodeURL string, log logrus.FieldLogger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		forecastURL: forecastURL,
		geocodeURL:  geocodeURL,
		log:         log,
	}
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		Visibility  float64 `json:"visibility"` // meters
	} `json:"current"`
}

type geocodeResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Village string `json:"village"`
		Town    string `json:"town"`
		City    string `json:"city"`
		County  string `json:"county"`
		State   string `json:"state"`
	} `json:"address"`
}

// Snapshot returns a weather snapshot for the coordinate. It never fails:
// when the collaborator is unreachable the static fallback is returned.
func (c *Client) Snapshot(ctx context.Context, lat, lng float64) models.Weather {
	w, err := c.Current(ctx, lat, lng)
	if err != nil {
		c.log.WithError(err).Warn("weather collaborator unavailable, serving fallback")
		return Fallback(lat, lng)
	}
	return w
}

// Current fetches live conditions for the coordinate.
func (c *Client) Current(ctx context.Context, lat, lng float64) (models.Weather, error) {
	params := url.Values{
		"latitude":  {fmt.Sprintf("%.4f", lat)},
		"longitude": {fmt.Sprintf("%.4f", lng)},
		"current":   {"temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m,visibility"},
	}

	body, err := c.get(ctx, c.forecastURL+"?"+params.Encode())
	if err != nil {
		return models.Weather{}, fmt.Errorf("fetching forecast: %w", err)
	}

	var resp forecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.Weather{}, fmt.Errorf("parsing forecast response: %w", err)
	}

	cur := resp.Current
	return models.Weather{
		Location:     c.locationLabel(ctx, lat, lng),
		Latitude:     lat,
		Longitude:    lng,
		Temperature:  cur.Temperature,
		Condition:    Condition(cur.WeatherCode),
		WindSpeed:    cur.WindSpeed,
		Humidity:     cur.Humidity,
		Visibility:   cur.Visibility / 1000, // km
		FishingScore: Score(cur.Temperature, cur.WindSpeed, cur.WeatherCode),
		Timestamp:    time.Now().UTC(),
	}, nil
}

// locationLabel reverse-geocodes the coordinate. Geocoding is best effort:
// any failure yields the coordinate string.
func (c *Client) locationLabel(ctx context.Context, lat, lng float64) string {
	coord := fmt.Sprintf("%.4f, %.4f", lat, lng)

	params := url.Values{
		"lat":    {fmt.Sprintf("%.4f", lat)},
		"lon":    {fmt.Sprintf("%.4f", lng)},
		"format": {"json"},
	}
	body, err := c.get(ctx, c.geocodeURL+"?"+params.Encode())
	if err != nil {
		return coord
	}

	var resp geocodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return coord
	}

	place := resp.Address.Village
	if place == "" {
		place = resp.Address.Town
	}
	if place == "" {
		place = resp.Address.City
	}
	if place == "" {
		place = resp.Address.County
	}
	if place == "" {
		return coord
	}
	if resp.Address.State != "" {
		return place + ", " + resp.Address.State
	}
	return place
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// Fallback is the static snapshot served when the collaborator is down.
func Fallback(lat, lng float64) models.Weather {
	return models.Weather{
		Location:     "Lake Tahoe, CA",
		Latitude:     lat,
		Longitude:    lng,
		Temperature:  72,
		Condition:    "Partly Cloudy",
		WindSpeed:    5,
		Humidity:     65,
		Visibility:   10,
		FishingScore: ScoreExcellent,
		Timestamp:    time.Now().UTC(),
	}
}
