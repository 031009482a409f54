package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dayinfo-api/internal/services/dayinfo"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid date format, expected YYYY-MM-DD"`
}

// HealthResponse represents the liveness response
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// CitiesResponse lists the cities with known coordinates
type CitiesResponse struct {
	Default string   `json:"default" example:"Kyiv"`
	Cities  []string `json:"cities"`
}

// GetHealth godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (r *routes) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{Status: "ok"})
}

// GetDayInfo godoc
// @Summary Get what happened on a day
// @Description Merges historical weather, sunrise/sunset times and "on this day" world events for a date and city.
// @Description Upstream failures never fail the request: the affected section is returned with its defaults.
// @Tags DayInfo
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)" example(2024-02-29)
// @Param city query string false "City name, unknown names fall back to the default city" example(Lviv)
// @Success 200 {object} models.DayInfo "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid date"
// @Router /day-info [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/day-info?date=2024-02-29&city=Lviv"
func (r *routes) handleDayInfo(c *fiber.Ctx) error {
	date := c.Query("date")
	city := c.Query("city")

	info, err := r.service.GetDayInfo(c.UserContext(), date, city)
	if err != nil {
		var verr *dayinfo.ValidationError
		if errors.As(err, &verr) {
			r.l.Warning("rejected day info request", map[string]any{
				"date":      date,
				"city":      city,
				"reason":    verr.Message,
				"requestId": c.Locals("requestid"),
			})

			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: verr.Message,
			})
		}

		r.l.Error(err, map[string]any{
			"date":      date,
			"city":      city,
			"requestId": c.Locals("requestid"),
		})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to fetch day info",
		})
	}

	return c.JSON(info)
}

// GetCities godoc
// @Summary List known cities
// @Tags DayInfo
// @Produce json
// @Success 200 {object} CitiesResponse
// @Router /cities [get]
func (r *routes) handleCities(c *fiber.Ctx) error {
	resolver := r.service.Resolver()

	return c.JSON(CitiesResponse{
		Default: resolver.DefaultName(),
		Cities:  resolver.Names(),
	})
}
