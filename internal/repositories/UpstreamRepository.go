package repositories

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"dayinfo-api/config"
	"dayinfo-api/internal/metrics"
	"dayinfo-api/internal/models"
	"dayinfo-api/pkg/observe"
)

// maxBodySize caps how much of an upstream response is read into memory.
const maxBodySize = 4 << 20

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// UpstreamRepository fetches the raw response of one third-party provider for
// a date and a location. Fetch never interprets the body and never fails: every
// problem is reported inside the returned Outcome.
type UpstreamRepository interface {
	Name() string
	URL(date time.Time, coords models.Coordinates) string
	Fetch(ctx context.Context, date time.Time, coords models.Coordinates) models.Outcome
}

// Upstreams groups the three providers a day-info request is built from.
type Upstreams struct {
	Weather UpstreamRepository
	Astro   UpstreamRepository
	Events  UpstreamRepository
}

func InitUpstreamRepositories(cfg *config.Config, httpClient HTTPClient, l *observe.Logger) Upstreams {
	c := NewUpstreamClient(httpClient, cfg.Upstream.UserAgent, l)

	return Upstreams{
		Weather: NewOpenMeteoArchiveRepository(cfg.Upstream.WeatherBaseURL, c),
		Astro:   NewSunriseSunsetRepository(cfg.Upstream.AstroBaseURL, c),
		Events:  NewWikimediaOnThisDayRepository(cfg.Upstream.EventsBaseURL, cfg.Upstream.EventsLanguage, c),
	}
}

// UpstreamClient performs the GET requests shared by every provider.
type UpstreamClient struct {
	httpClient HTTPClient
	userAgent  string
	l          *observe.Logger
}

func NewUpstreamClient(httpClient HTTPClient, userAgent string, l *observe.Logger) *UpstreamClient {
	return &UpstreamClient{
		httpClient: httpClient,
		userAgent:  userAgent,
		l:          l,
	}
}

func (c *UpstreamClient) get(ctx context.Context, provider, url string) models.Outcome {
	outcome := models.Outcome{
		Provider: provider,
		URL:      url,
	}

	start := time.Now()
	defer func() {
		metrics.UpstreamLatency.WithLabelValues(provider).Observe(time.Since(start).Seconds())
		metrics.UpstreamCallsTotal.WithLabelValues(provider, result(outcome)).Inc()
	}()

	c.l.Debug("making upstream request", map[string]any{
		"provider": provider,
		"url":      url,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		outcome.Err = fmt.Errorf("failed to create request: %w", err)
		return outcome
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome.Err = fmt.Errorf("failed to do request: %w", err)
		c.l.Warning("upstream request failed", map[string]any{
			"provider": provider,
			"err":      outcome.Err.Error(),
		})
		return outcome
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		outcome.Err = fmt.Errorf("failed to read response body: %w", err)
		c.l.Warning("upstream response unreadable", map[string]any{
			"provider": provider,
			"status":   resp.StatusCode,
			"err":      outcome.Err.Error(),
		})
		return outcome
	}

	outcome.StatusCode = resp.StatusCode
	outcome.Body = body

	if resp.StatusCode != http.StatusOK {
		c.l.Warning("upstream returned non-success status", map[string]any{
			"provider":   provider,
			"status":     resp.StatusCode,
			"statusText": resp.Status,
		})
		return outcome
	}

	c.l.Debug("received upstream response", map[string]any{
		"provider": provider,
		"status":   resp.StatusCode,
		"bytes":    len(body),
		"took":     time.Since(start).String(),
	})

	return outcome
}

func result(o models.Outcome) string {
	switch {
	case o.Err != nil:
		return metrics.ResultTransport
	case o.StatusCode != http.StatusOK:
		return metrics.ResultHTTPError
	default:
		return metrics.ResultOK
	}
}
