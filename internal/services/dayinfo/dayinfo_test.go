package dayinfo_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayinfo-api/internal/models"
	"dayinfo-api/internal/repositories"
	"dayinfo-api/internal/services/dayinfo"
	"dayinfo-api/pkg/observe"
)

const (
	lvivWeather = `{"daily": {"temperature_2m_max": [5.0], "temperature_2m_min": [-2.0], "precipitation_sum": [0.1]}}`
	fourEvents  = `{"events": [{"text": "A", "year": 1}, {"text": "B", "year": 2}], "births": [{"text": "C"}], "deaths": [{"pages": [{"normalizedtitle": "D"}]}]}`
	sunTimes    = `{"results": {"sunrise": "7:01:00 AM", "sunset": "5:48:00 PM", "day_length": "10:47:00"}, "status": "OK"}`
)

// MockRepository implements UpstreamRepository for testing
type MockRepository struct {
	name        string
	status      int
	body        string
	err         error
	shouldDelay time.Duration
	shouldPanic bool

	mu         sync.Mutex
	callCount  int
	lastDate   time.Time
	lastCoords models.Coordinates
	ctxErr     error
}

func (m *MockRepository) Name() string {
	return m.name
}

func (m *MockRepository) URL(date time.Time, coords models.Coordinates) string {
	return "mock://" + m.name
}

func (m *MockRepository) Fetch(ctx context.Context, date time.Time, coords models.Coordinates) models.Outcome {
	m.mu.Lock()
	m.callCount++
	m.lastDate = date
	m.lastCoords = coords
	m.mu.Unlock()

	if m.shouldPanic {
		panic("mock repository panic")
	}

	if m.shouldDelay > 0 {
		select {
		case <-ctx.Done():
			m.mu.Lock()
			m.ctxErr = ctx.Err()
			m.mu.Unlock()
			return models.Outcome{Provider: m.name, Err: ctx.Err()}
		case <-time.After(m.shouldDelay):
		}
	}

	if m.err != nil {
		return models.Outcome{Provider: m.name, Err: m.err}
	}

	return models.Outcome{Provider: m.name, StatusCode: m.status, Body: []byte(m.body)}
}

func (m *MockRepository) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

func okRepo(name, body string) *MockRepository {
	return &MockRepository{name: name, status: http.StatusOK, body: body}
}

func failingRepo(name string) *MockRepository {
	return &MockRepository{name: name, err: errors.New("mock repository error")}
}

func newService(t *testing.T, weather, astro, events *MockRepository, timeout time.Duration) *dayinfo.Service {
	t.Helper()

	resolver, err := dayinfo.NewCityResolver("Kyiv")
	require.NoError(t, err)

	upstreams := repositories.Upstreams{Weather: weather, Astro: astro, Events: events}

	return dayinfo.NewDayInfoService(upstreams, resolver, timeout, observe.NewZapLogger("test-app"))
}

func TestNewDayInfoService(t *testing.T) {
	service := newService(t, okRepo("w", ""), okRepo("a", ""), okRepo("e", ""), 0)

	assert.NotNil(t, service)
	assert.Equal(t, "Kyiv", service.Resolver().DefaultName())
}

func TestDayInfoService_LeapDayLviv(t *testing.T) {
	weather := okRepo("open-meteo", lvivWeather)
	astro := okRepo("sunrise-sunset", sunTimes)
	events := okRepo("wikimedia", fourEvents)

	service := newService(t, weather, astro, events, time.Second)

	info, err := service.GetDayInfo(context.Background(), "2024-02-29", "Lviv")
	require.NoError(t, err)

	assert.Equal(t, "2024-02-29", info.Date)
	assert.Equal(t, "Lviv", info.Location)

	require.NotNil(t, info.Weather.TMin)
	require.NotNil(t, info.Weather.TMax)
	require.NotNil(t, info.Weather.Precipitation)
	assert.Equal(t, -2.0, *info.Weather.TMin)
	assert.Equal(t, 5.0, *info.Weather.TMax)
	assert.Equal(t, 0.1, *info.Weather.Precipitation)
	assert.Equal(t, "data loaded", info.Weather.AnomalyComment)

	assert.Equal(t, []string{"1: A", "2: B", "C", "D"}, info.WorldEvents)

	require.NotNil(t, info.FunScore)
	assert.Equal(t, 5, *info.FunScore)

	require.NotNil(t, info.Astro.Sunrise)
	assert.Equal(t, "7:01:00 AM", *info.Astro.Sunrise)
	assert.Nil(t, info.Astro.MoonPhase)

	expectedDate := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	for _, repo := range []*MockRepository{weather, astro, events} {
		assert.Equal(t, 1, repo.calls())
		assert.Equal(t, expectedDate, repo.lastDate)
		assert.Equal(t, models.Coordinates{Latitude: 49.8397, Longitude: 24.0297}, repo.lastCoords)
	}
}

func TestDayInfoService_UnknownCityUsesDefaultCoordinates(t *testing.T) {
	weather := okRepo("open-meteo", lvivWeather)
	service := newService(t, weather, okRepo("a", sunTimes), okRepo("e", "{}"), time.Second)

	info, err := service.GetDayInfo(context.Background(), "2023-06-15", "Atlantis")
	require.NoError(t, err)

	assert.Equal(t, "Atlantis", info.Location)
	assert.Equal(t, models.Coordinates{Latitude: 50.4501, Longitude: 30.5234}, weather.lastCoords)
}

func TestDayInfoService_EmptyCityEchoesDefault(t *testing.T) {
	service := newService(t, okRepo("w", lvivWeather), okRepo("a", sunTimes), okRepo("e", "{}"), time.Second)

	info, err := service.GetDayInfo(context.Background(), "2023-06-15", "")
	require.NoError(t, err)

	assert.Equal(t, "Kyiv", info.Location)
}

func TestDayInfoService_InvalidDateMakesNoCalls(t *testing.T) {
	weather, astro, events := okRepo("w", lvivWeather), okRepo("a", sunTimes), okRepo("e", fourEvents)
	service := newService(t, weather, astro, events, time.Second)

	for _, date := range []string{"", "2023-02-29", "15.06.2023", "2023/06/15"} {
		info, err := service.GetDayInfo(context.Background(), date, "Kyiv")

		assert.Nil(t, info)
		var verr *dayinfo.ValidationError
		assert.ErrorAs(t, err, &verr, "date %q", date)
	}

	assert.Zero(t, weather.calls())
	assert.Zero(t, astro.calls())
	assert.Zero(t, events.calls())
}

func TestDayInfoService_WeatherFailureIsIsolated(t *testing.T) {
	weather := &MockRepository{name: "open-meteo", status: http.StatusInternalServerError, body: lvivWeather}
	service := newService(t, weather, okRepo("a", sunTimes), okRepo("e", fourEvents), time.Second)

	info, err := service.GetDayInfo(context.Background(), "2024-02-29", "Lviv")
	require.NoError(t, err)

	assert.Nil(t, info.Weather.TMin)
	assert.Nil(t, info.Weather.TMax)
	assert.Nil(t, info.Weather.Precipitation)
	assert.Equal(t, "no data", info.Weather.AnomalyComment)

	require.NotNil(t, info.Astro.Sunset)
	assert.Len(t, info.WorldEvents, 4)
	require.NotNil(t, info.FunScore)
	assert.Equal(t, 5, *info.FunScore)
}

func TestDayInfoService_EventsFailureScoresFromWeather(t *testing.T) {
	events := &MockRepository{name: "wikimedia", status: http.StatusOK, body: "not json"}
	service := newService(t, okRepo("w", lvivWeather), okRepo("a", sunTimes), events, time.Second)

	info, err := service.GetDayInfo(context.Background(), "2024-02-29", "Lviv")
	require.NoError(t, err)

	assert.Equal(t, []string{}, info.WorldEvents)
	require.NotNil(t, info.FunScore)
	assert.Equal(t, 3, *info.FunScore)
}

func TestDayInfoService_AllFailures(t *testing.T) {
	service := newService(t, failingRepo("w"), failingRepo("a"), failingRepo("e"), time.Second)

	info, err := service.GetDayInfo(context.Background(), "2024-02-29", "Lviv")
	require.NoError(t, err)

	assert.Equal(t, "2024-02-29", info.Date)
	assert.Nil(t, info.Weather.TMax)
	assert.Equal(t, "no data", info.Weather.AnomalyComment)
	assert.Nil(t, info.Astro.Sunrise)
	assert.Nil(t, info.Astro.Sunset)
	assert.Nil(t, info.Astro.DayLength)
	assert.Equal(t, []string{}, info.Astro.Events)
	assert.Equal(t, []string{}, info.WorldEvents)
	assert.Nil(t, info.FunScore)
}

func TestDayInfoService_AllTimeouts(t *testing.T) {
	slow := func(name string) *MockRepository {
		return &MockRepository{name: name, status: http.StatusOK, body: lvivWeather, shouldDelay: time.Second}
	}
	weather, astro, events := slow("w"), slow("a"), slow("e")

	service := newService(t, weather, astro, events, 50*time.Millisecond)

	start := time.Now()
	info, err := service.GetDayInfo(context.Background(), "2024-02-29", "Lviv")
	duration := time.Since(start)

	require.NoError(t, err)
	assert.Nil(t, info.Weather.TMax)
	assert.Nil(t, info.Astro.Sunrise)
	assert.Equal(t, []string{}, info.WorldEvents)
	assert.Nil(t, info.FunScore)

	// The three deadlines run in parallel
	assert.Less(t, duration, 500*time.Millisecond)
	for _, repo := range []*MockRepository{weather, astro, events} {
		assert.ErrorIs(t, repo.ctxErr, context.DeadlineExceeded)
	}
}

func TestDayInfoService_SlowProviderDoesNotAffectOthers(t *testing.T) {
	weather := &MockRepository{name: "open-meteo", status: http.StatusOK, body: lvivWeather, shouldDelay: time.Second}
	service := newService(t, weather, okRepo("a", sunTimes), okRepo("e", fourEvents), 50*time.Millisecond)

	info, err := service.GetDayInfo(context.Background(), "2024-02-29", "Lviv")
	require.NoError(t, err)

	assert.Nil(t, info.Weather.TMax)
	require.NotNil(t, info.Astro.Sunrise)
	assert.Len(t, info.WorldEvents, 4)
}

func TestDayInfoService_CallerCancellationNotPropagated(t *testing.T) {
	weather := &MockRepository{name: "open-meteo", status: http.StatusOK, body: lvivWeather, shouldDelay: 20 * time.Millisecond}
	service := newService(t, weather, okRepo("a", sunTimes), okRepo("e", fourEvents), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	info, err := service.GetDayInfo(ctx, "2024-02-29", "Lviv")
	require.NoError(t, err)

	require.NotNil(t, info.Weather.TMax)
	assert.NoError(t, weather.ctxErr)
}

func TestDayInfoService_ConcurrentExecution(t *testing.T) {
	delay := 100 * time.Millisecond
	weather := &MockRepository{name: "w", status: http.StatusOK, body: lvivWeather, shouldDelay: delay}
	astro := &MockRepository{name: "a", status: http.StatusOK, body: sunTimes, shouldDelay: delay}
	events := &MockRepository{name: "e", status: http.StatusOK, body: fourEvents, shouldDelay: delay}

	service := newService(t, weather, astro, events, time.Second)

	start := time.Now()
	info, err := service.GetDayInfo(context.Background(), "2024-02-29", "Lviv")
	duration := time.Since(start)

	require.NoError(t, err)
	require.NotNil(t, info.FunScore)

	// Sequential execution would take at least 300ms
	assert.Less(t, duration, 250*time.Millisecond)
}

func TestDayInfoService_PanickingRepository(t *testing.T) {
	weather := &MockRepository{name: "open-meteo", shouldPanic: true}
	service := newService(t, weather, okRepo("a", sunTimes), okRepo("e", fourEvents), time.Second)

	info, err := service.GetDayInfo(context.Background(), "2024-02-29", "Lviv")
	require.NoError(t, err)

	assert.Equal(t, "no data", info.Weather.AnomalyComment)
	assert.Len(t, info.WorldEvents, 4)
}

func TestDayInfoService_ConcurrentRequests(t *testing.T) {
	weather, astro, events := okRepo("w", lvivWeather), okRepo("a", sunTimes), okRepo("e", fourEvents)
	service := newService(t, weather, astro, events, time.Second)

	var wg sync.WaitGroup
	var failures atomic.Int32
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			info, err := service.GetDayInfo(context.Background(), "2024-02-29", "Odesa")
			if err != nil || info.FunScore == nil || *info.FunScore != 5 {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, failures.Load())
	assert.Equal(t, 20, weather.calls())
}
