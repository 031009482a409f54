package models

import "time"

const DateLayout = "2006-01-02"

type DayInfoRequest struct {
	Date time.Time
	City string
}

// WeatherResult is the normalized historical weather of one day. Numeric
// fields are nil when the provider returned nothing usable.
type WeatherResult struct {
	TMin           *float64 `json:"t_min" example:"-2.0"`
	TMax           *float64 `json:"t_max" example:"5.0"`
	Precipitation  *float64 `json:"precipitation" example:"0.1"`
	AnomalyComment string   `json:"anomaly_comment" example:"data loaded"`
}

func (w WeatherResult) HasData() bool {
	return w.TMin != nil || w.TMax != nil || w.Precipitation != nil
}

// AstroResult holds sunrise/sunset timings. MoonPhase and Events are part of
// the response shape but no provider fills them yet.
type AstroResult struct {
	Sunrise   *string  `json:"sunrise" example:"6:58:11 AM"`
	Sunset    *string  `json:"sunset" example:"5:21:43 PM"`
	DayLength *string  `json:"day_length" example:"10:23:32"`
	MoonPhase *string  `json:"moon_phase"`
	Events    []string `json:"events"`
}

type DayInfo struct {
	Date        string        `json:"date" example:"2024-02-29"`
	Location    string        `json:"location" example:"Lviv"`
	Weather     WeatherResult `json:"weather"`
	Astro       AstroResult   `json:"astro"`
	WorldEvents []string      `json:"world_events"`
	FunScore    *int          `json:"fun_score" example:"5"`
}
