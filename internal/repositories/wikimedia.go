package repositories

import (
	"context"
	"fmt"
	"time"

	"dayinfo-api/internal/models"
)

const (
	WikimediaFeedBaseURL = "https://api.wikimedia.org/feed/v1/wikipedia"
	defaultLanguage      = "en"
)

// WikimediaOnThisDayRepository reads the "on this day" feed. The feed is keyed
// by month and day only, so the year of the date and the coordinates are ignored.
type WikimediaOnThisDayRepository struct {
	baseURL  string
	language string
	client   *UpstreamClient
}

func NewWikimediaOnThisDayRepository(baseURL, language string, client *UpstreamClient) *WikimediaOnThisDayRepository {
	if baseURL == "" {
		baseURL = WikimediaFeedBaseURL
	}
	if language == "" {
		language = defaultLanguage
	}

	return &WikimediaOnThisDayRepository{
		baseURL:  baseURL,
		language: language,
		client:   client,
	}
}

func (w *WikimediaOnThisDayRepository) Name() string {
	return "wikimedia"
}

func (w *WikimediaOnThisDayRepository) URL(date time.Time, _ models.Coordinates) string {
	return fmt.Sprintf("%s/%s/onthisday/all/%02d/%02d", w.baseURL, w.language, int(date.Month()), date.Day())
}

func (w *WikimediaOnThisDayRepository) Fetch(ctx context.Context, date time.Time, coords models.Coordinates) models.Outcome {
	return w.client.get(ctx, w.Name(), w.URL(date, coords))
}
