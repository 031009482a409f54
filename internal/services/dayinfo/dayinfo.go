package dayinfo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dayinfo-api/internal/metrics"
	"dayinfo-api/internal/models"
	"dayinfo-api/internal/repositories"
	"dayinfo-api/pkg/observe"
)

const DefaultUpstreamTimeout = 10 * time.Second

// Service answers "what happened on date D in city L" by merging the three upstreams.
type Service struct {
	upstreams repositories.Upstreams
	resolver  *CityResolver
	timeout   time.Duration
	l         *observe.Logger
}

func NewDayInfoService(
	upstreams repositories.Upstreams,
	resolver *CityResolver,
	timeout time.Duration,
	l *observe.Logger,
) *Service {
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}

	return &Service{
		upstreams: upstreams,
		resolver:  resolver,
		timeout:   timeout,
		l:         l,
	}
}

func (s *Service) Resolver() *CityResolver {
	return s.resolver
}

// GetDayInfo validates the input and builds the merged response. The only
// error it returns is a *ValidationError; upstream failures degrade the
// affected section to its defaults.
func (s *Service) GetDayInfo(ctx context.Context, date, city string) (*models.DayInfo, error) {
	req, err := ParseRequest(date, city)
	if err != nil {
		metrics.DayInfoRequestsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	location := req.City
	if location == "" {
		location = s.resolver.DefaultName()
	}

	coords := s.resolver.Resolve(location)
	if !s.resolver.Known(location) {
		s.l.Debug("unknown city, using default", map[string]any{
			"city":    location,
			"default": s.resolver.DefaultName(),
		})
	}

	s.l.Info("starting day info fetch", map[string]any{
		"date":   req.Date.Format(models.DateLayout),
		"city":   location,
		"coords": coords.String(),
	})

	weatherOutcome, astroOutcome, eventsOutcome := s.fetchAll(ctx, req.Date, coords)

	weather := NormalizeWeather(weatherOutcome)
	astro := NormalizeAstro(astroOutcome)
	events := NormalizeWorldEvents(eventsOutcome)

	info := &models.DayInfo{
		Date:        req.Date.Format(models.DateLayout),
		Location:    location,
		Weather:     weather,
		Astro:       astro,
		WorldEvents: events,
		FunScore:    FunScore(weather, events),
	}

	withData := countWithData(weather, astro, events)
	metrics.DayInfoRequestsTotal.WithLabelValues("ok").Inc()
	metrics.ProvidersWithData.Observe(float64(withData))

	s.l.Info("completed day info fetch", map[string]any{
		"date":              info.Date,
		"city":              location,
		"providersWithData": withData,
		"worldEvents":       len(events),
	})

	return info, nil
}

// fetchAll calls the three upstreams concurrently and waits for all of them.
// Each call has its own deadline and is detached from the caller's
// cancellation, so one slow provider cannot cut the others short.
func (s *Service) fetchAll(ctx context.Context, date time.Time, coords models.Coordinates) (weather, astro, events models.Outcome) {
	var wg sync.WaitGroup

	fetch := func(repo repositories.UpstreamRepository, dst *models.Outcome) {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				*dst = models.Outcome{Provider: repo.Name(), Err: fmt.Errorf("panic in upstream fetch: %v", r)}
				s.l.Warning("upstream fetch panicked", map[string]any{"repo": repo.Name(), "panic": fmt.Sprint(r)})
			}
		}()

		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		*dst = repo.Fetch(callCtx, date, coords)

		if !dst.OK() {
			fields := map[string]any{"repo": repo.Name(), "status": dst.StatusCode}
			if dst.Err != nil {
				fields["err"] = dst.Err.Error()
			}
			s.l.Warning("upstream returned no data", fields)
		}
	}

	wg.Add(3)
	go fetch(s.upstreams.Weather, &weather)
	go fetch(s.upstreams.Astro, &astro)
	go fetch(s.upstreams.Events, &events)
	wg.Wait()

	return weather, astro, events
}

func countWithData(weather models.WeatherResult, astro models.AstroResult, events []string) int {
	n := 0
	if weather.HasData() {
		n++
	}
	if astro.Sunrise != nil || astro.Sunset != nil || astro.DayLength != nil {
		n++
	}
	if len(events) > 0 {
		n++
	}
	return n
}
