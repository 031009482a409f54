package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultEnvFile    = ".env"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Cities   CitiesConfig   `yaml:"cities"`
	Log      LogConfig      `yaml:"log"`
	Sentry   SentryConfig   `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"APP_NAME"`
	Version string `yaml:"version" envconfig:"APP_VERSION"`
	Env     string `yaml:"env" envconfig:"APP_ENV"`
}

type ServerConfig struct {
	Port         string        `yaml:"port" envconfig:"SERVER_PORT"`
	ReadTimeout  time.Duration `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" envconfig:"SERVER_IDLE_TIMEOUT"`
}

// UpstreamConfig describes the three third-party providers queried per request.
type UpstreamConfig struct {
	Timeout        time.Duration `yaml:"timeout" envconfig:"UPSTREAM_TIMEOUT"`
	UserAgent      string        `yaml:"user_agent" envconfig:"UPSTREAM_USER_AGENT"`
	WeatherBaseURL string        `yaml:"weather_base_url" envconfig:"UPSTREAM_WEATHER_BASE_URL"`
	AstroBaseURL   string        `yaml:"astro_base_url" envconfig:"UPSTREAM_ASTRO_BASE_URL"`
	EventsBaseURL  string        `yaml:"events_base_url" envconfig:"UPSTREAM_EVENTS_BASE_URL"`
	EventsLanguage string        `yaml:"events_language" envconfig:"UPSTREAM_EVENTS_LANGUAGE"`
}

type CitiesConfig struct {
	Default string `yaml:"default" envconfig:"CITIES_DEFAULT"`
}

type LogConfig struct {
	Level string `yaml:"level" envconfig:"LOG_LEVEL"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" envconfig:"SENTRY_DSN"`
	Debug bool   `yaml:"debug" envconfig:"SENTRY_DEBUG"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider layers defaults, an optional .env file, an optional YAML
// file and environment variables, in that order.
type FileConfigProvider struct {
	path    string
	envFile string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{
		path:    path,
		envFile: DefaultEnvFile,
	}
}

// WithEnvFile sets the dotenv file read before environment overrides are applied.
func (p *FileConfigProvider) WithEnvFile(path string) *FileConfigProvider {
	p.envFile = path
	return p
}

func Defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "dayinfo-api",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Upstream: UpstreamConfig{
			Timeout:        10 * time.Second,
			UserAgent:      "dayinfo-api/1.0 (+https://github.com/dayinfo/dayinfo-api)",
			WeatherBaseURL: "https://archive-api.open-meteo.com/v1/archive",
			AstroBaseURL:   "https://api.sunrise-sunset.org/json",
			EventsBaseURL:  "https://api.wikimedia.org/feed/v1/wikipedia",
			EventsLanguage: "en",
		},
		Cities: CitiesConfig{
			Default: "Kyiv",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Defaults()

	if err := p.loadEnvFile(); err != nil {
		return nil, err
	}

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadEnvFile() error {
	if p.envFile == "" {
		return nil
	}

	if err := godotenv.Load(p.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", p.envFile, err)
	}

	return nil
}

// loadFromFile merges the YAML file into config. A missing file is not an error.
func (p *FileConfigProvider) loadFromFile(config *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, config); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	var errs []string

	if strings.TrimSpace(config.App.Name) == "" {
		errs = append(errs, "app.name is required")
	}
	if strings.TrimSpace(config.Server.Port) == "" {
		errs = append(errs, "server.port is required")
	}
	if config.Upstream.Timeout <= 0 {
		errs = append(errs, "upstream.timeout must be positive")
	}

	for name, raw := range map[string]string{
		"upstream.weather_base_url": config.Upstream.WeatherBaseURL,
		"upstream.astro_base_url":   config.Upstream.AstroBaseURL,
		"upstream.events_base_url":  config.Upstream.EventsBaseURL,
	} {
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, name+" must be an absolute URL")
		}
	}

	if strings.TrimSpace(config.Upstream.EventsLanguage) == "" {
		errs = append(errs, "upstream.events_language is required")
	}
	if strings.TrimSpace(config.Cities.Default) == "" {
		errs = append(errs, "cities.default is required")
	}

	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q is not supported", config.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production" || c.App.Env == "prod"
}

// NewConfigWithProvider loads the configuration with the given provider and validates it.
func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}
