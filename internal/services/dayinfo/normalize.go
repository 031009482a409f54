package dayinfo

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"dayinfo-api/internal/models"
)

const (
	CommentNoData     = "no data"
	CommentDataLoaded = "data loaded"

	eventsPerCategory = 3
)

// eventCategories are read in this order from the "on this day" feed.
var eventCategories = []string{"events", "births", "deaths"}

type openMeteoArchiveResponse struct {
	Daily *struct {
		Temperature2mMax []*float64 `json:"temperature_2m_max"`
		Temperature2mMin []*float64 `json:"temperature_2m_min"`
		PrecipitationSum []*float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

type sunriseSunsetResponse struct {
	Results *struct {
		Sunrise   string `json:"sunrise"`
		Sunset    string `json:"sunset"`
		DayLength string `json:"day_length"`
	} `json:"results"`
	Status string `json:"status"`
}

func noWeather() models.WeatherResult {
	return models.WeatherResult{AnomalyComment: CommentNoData}
}

// NormalizeWeather turns an archive response into a WeatherResult. Anything
// other than a 200 with a usable first daily value yields the no-data result.
func NormalizeWeather(o models.Outcome) models.WeatherResult {
	if !o.OK() {
		return noWeather()
	}

	var resp openMeteoArchiveResponse
	if err := json.Unmarshal(o.Body, &resp); err != nil || resp.Daily == nil {
		return noWeather()
	}

	tMax := first(resp.Daily.Temperature2mMax)
	tMin := first(resp.Daily.Temperature2mMin)
	if tMax == nil && tMin == nil {
		return noWeather()
	}

	return models.WeatherResult{
		TMin:           tMin,
		TMax:           tMax,
		Precipitation:  first(resp.Daily.PrecipitationSum),
		AnomalyComment: CommentDataLoaded,
	}
}

func first(values []*float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	return values[0]
}

// NormalizeAstro extracts sunrise, sunset and day length. MoonPhase stays nil
// and Events stays empty: the provider has no such data.
func NormalizeAstro(o models.Outcome) models.AstroResult {
	astro := models.AstroResult{Events: []string{}}

	if !o.OK() {
		return astro
	}

	var resp sunriseSunsetResponse
	if err := json.Unmarshal(o.Body, &resp); err != nil || resp.Results == nil {
		return astro
	}
	if resp.Status != "" && resp.Status != "OK" {
		return astro
	}

	astro.Sunrise = nonEmpty(resp.Results.Sunrise)
	astro.Sunset = nonEmpty(resp.Results.Sunset)
	astro.DayLength = nonEmpty(resp.Results.DayLength)

	return astro
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeWorldEvents flattens the first entries of each feed category into
// "YEAR: text" lines, keeping feed order.
func NormalizeWorldEvents(o models.Outcome) []string {
	events := []string{}

	if !o.OK() || !gjson.ValidBytes(o.Body) {
		return events
	}

	root := gjson.ParseBytes(o.Body)
	if !root.IsObject() {
		return events
	}

	for _, category := range eventCategories {
		entries := root.Get(category)
		if !entries.IsArray() {
			continue
		}

		list := entries.Array()
		if len(list) > eventsPerCategory {
			list = list[:eventsPerCategory]
		}

		for _, entry := range list {
			if line, ok := formatEvent(entry); ok {
				events = append(events, line)
			}
		}
	}

	return events
}

func formatEvent(entry gjson.Result) (string, bool) {
	if !entry.IsObject() {
		return "", false
	}

	text := strings.TrimSpace(stringValue(entry.Get("text")))
	if text == "" {
		text = strings.TrimSpace(stringValue(entry.Get("pages.0.normalizedtitle")))
	}
	if text == "" {
		return "", false
	}

	year := entry.Get("year")
	switch year.Type {
	case gjson.Number:
		return fmt.Sprintf("%d: %s", year.Int(), text), true
	case gjson.String:
		if y := strings.TrimSpace(year.Str); y != "" {
			return y + ": " + text, true
		}
	}

	return text, true
}

func stringValue(r gjson.Result) string {
	if r.Type != gjson.String {
		return ""
	}
	return r.Str
}
