package repositories

import (
	"context"
	"fmt"
	"time"

	"dayinfo-api/internal/models"
)

const (
	OpenMeteoArchiveBaseURL = "https://archive-api.open-meteo.com/v1/archive"
)

// OpenMeteoArchiveRepository queries the Open-Meteo historical archive for
// the daily extremes and precipitation of a single day.
type OpenMeteoArchiveRepository struct {
	baseURL string
	client  *UpstreamClient
}

func NewOpenMeteoArchiveRepository(baseURL string, client *UpstreamClient) *OpenMeteoArchiveRepository {
	if baseURL == "" {
		baseURL = OpenMeteoArchiveBaseURL
	}

	return &OpenMeteoArchiveRepository{
		baseURL: baseURL,
		client:  client,
	}
}

func (o *OpenMeteoArchiveRepository) Name() string {
	return "open-meteo"
}

func (o *OpenMeteoArchiveRepository) URL(date time.Time, coords models.Coordinates) string {
	day := date.Format(models.DateLayout)

	return fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f&start_date=%s&end_date=%s&daily=temperature_2m_max,temperature_2m_min,precipitation_sum&timezone=auto",
		o.baseURL, coords.Latitude, coords.Longitude, day, day,
	)
}

func (o *OpenMeteoArchiveRepository) Fetch(ctx context.Context, date time.Time, coords models.Coordinates) models.Outcome {
	return o.client.get(ctx, o.Name(), o.URL(date, coords))
}
