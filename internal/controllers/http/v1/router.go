package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "dayinfo-api/docs"
	"dayinfo-api/internal/services/dayinfo"
	"dayinfo-api/pkg/observe"
)

type routes struct {
	service *dayinfo.Service
	l       *observe.Logger
}

func NewRouter(
	app *fiber.App,
	dayInfoService *dayinfo.Service,
	l *observe.Logger,
) {
	r := &routes{
		service: dayInfoService,
		l:       l,
	}

	// Swagger documentation, served from the registered docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes
	app.Get("/health", r.handleHealth)
	app.Get("/day-info", r.handleDayInfo)
	app.Get("/cities", r.handleCities)
}
