package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"dayinfo-api/config"
	"dayinfo-api/docs"
	v1 "dayinfo-api/internal/controllers/http/v1"
	"dayinfo-api/internal/repositories"
	"dayinfo-api/internal/services/dayinfo"
	"dayinfo-api/pkg/httpserver"
	"dayinfo-api/pkg/observe"
)

type cli struct {
	Config  string `help:"Path to the YAML config file." default:"config/config.yaml" type:"path"`
	EnvFile string `help:"Path to a dotenv file loaded before environment overrides." default:".env" type:"path"`
}

// @title Day Info API
// @version 1.0.0
// @description Answers "what happened on date D in city L" by merging historical weather, sunrise/sunset times and world events.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name DayInfo
// @tag.description Day aggregation operations
func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("dayinfo-api"),
		kong.Description("HTTP API that tells what happened on a given day in a given city."),
	)

	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfigWithProvider(
		config.NewFileConfigProvider(args.Config).WithEnvFile(args.EnvFile),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load config: %v\n", err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}
	var sentryHook *observe.SentryHook
	if cnf.Sentry.DSN != "" && !cnf.IsDevelopment() {
		if sentryHook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.Debug, cnf.Sentry.DSN); err != nil {
			fmt.Fprintf(os.Stderr, "sentry disabled: %v\n", err)
		} else {
			writers = append(writers, sentryHook)
		}
	}

	l := observe.NewZapLogger(cnf.App.Name, writers...)
	l.SetEnv(cnf.App.Env)
	if err := l.SetLevel(cnf.Log.Level); err != nil {
		l.Warning("invalid log level, keeping debug", map[string]any{"level": cnf.Log.Level})
	}
	if sentryHook != nil {
		sentryHook.SetLogger(l)
	}

	resolver, err := dayinfo.NewCityResolver(cnf.Cities.Default)
	if err != nil {
		l.Fatal("cannot build city resolver", map[string]any{"err": err.Error()})
	}

	docs.SwaggerInfo.Version = cnf.App.Version

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		Quiet:        cnf.IsProduction(),
		ReadTimeout:  cnf.Server.ReadTimeout,
		WriteTimeout: cnf.Server.WriteTimeout,
		IdleTimeout:  cnf.Server.IdleTimeout,
	})

	// Per-call deadlines come from the service; the client has no global timeout.
	httpClient := &http.Client{}

	upstreams := repositories.InitUpstreamRepositories(cnf, httpClient, l)

	service := dayinfo.NewDayInfoService(upstreams, resolver, cnf.Upstream.Timeout, l)

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":         cnf.Server.Port,
		"env":          cnf.App.Env,
		"version":      cnf.App.Version,
		"defaultCity":  resolver.DefaultName(),
		"upstreamWait": cnf.Upstream.Timeout.String(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		httpClient.CloseIdleConnections()
		if sentryHook != nil {
			sentryHook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
