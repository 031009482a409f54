package repositories

import (
	"context"
	"fmt"
	"time"

	"dayinfo-api/internal/models"
)

const (
	SunriseSunsetBaseURL = "https://api.sunrise-sunset.org/json"
)

type SunriseSunsetRepository struct {
	baseURL string
	client  *UpstreamClient
}

func NewSunriseSunsetRepository(baseURL string, client *UpstreamClient) *SunriseSunsetRepository {
	if baseURL == "" {
		baseURL = SunriseSunsetBaseURL
	}

	return &SunriseSunsetRepository{
		baseURL: baseURL,
		client:  client,
	}
}

func (s *SunriseSunsetRepository) Name() string {
	return "sunrise-sunset"
}

func (s *SunriseSunsetRepository) URL(date time.Time, coords models.Coordinates) string {
	return fmt.Sprintf("%s?lat=%.4f&lng=%.4f&date=%s", s.baseURL, coords.Latitude, coords.Longitude, date.Format(models.DateLayout))
}

func (s *SunriseSunsetRepository) Fetch(ctx context.Context, date time.Time, coords models.Coordinates) models.Outcome {
	return s.client.get(ctx, s.Name(), s.URL(date, coords))
}
