package dayinfo

import "dayinfo-api/internal/models"

const (
	baseFunScore = 3
	maxFunScore  = 10
)

// FunScore rates how much was found for the day. It returns nil when neither
// weather numbers nor world events are available.
func FunScore(weather models.WeatherResult, events []string) *int {
	if !weather.HasData() && len(events) == 0 {
		return nil
	}

	score := min(baseFunScore+len(events)/2, maxFunScore)

	return &score
}
