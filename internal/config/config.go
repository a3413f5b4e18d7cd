package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultBackendURL = "http://localhost:8000"

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Backend Config
	BackendURL     string        `env:"BACKEND_URL" envDefault:"http://localhost:8000"`
	AnalysisURL    string        `env:"ANALYSIS_URL"`
	HotspotURL     string        `env:"HOTSPOT_URL"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`

	// Upload Config
	AnalysisTimeout time.Duration `env:"ANALYSIS_TIMEOUT" envDefault:"10m"`
	Stage1Delay     time.Duration `env:"STAGE1_DELAY" envDefault:"20s"`
	Stage2Delay     time.Duration `env:"STAGE2_DELAY" envDefault:"40s"`
	MaxUploadMB     int           `env:"MAX_UPLOAD_MB" envDefault:"512"`

	// Triage Config
	StatusUpdateTimeout     time.Duration `env:"STATUS_UPDATE_TIMEOUT" envDefault:"15s"`
	IncidentRefreshInterval time.Duration `env:"INCIDENT_REFRESH_INTERVAL" envDefault:"0"`
	HotspotCacheTTL         time.Duration `env:"HOTSPOT_CACHE_TTL" envDefault:"5m"`
	SessionIdleTimeout      time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		BackendURL:              strings.TrimRight(getEnv("BACKEND_URL", defaultBackendURL), "/"),
		BackendTimeout:          getEnvAsDuration("BACKEND_TIMEOUT", 15*time.Second),
		AnalysisTimeout:         getEnvAsDuration("ANALYSIS_TIMEOUT", 10*time.Minute),
		Stage1Delay:             getEnvAsDuration("STAGE1_DELAY", 20*time.Second),
		Stage2Delay:             getEnvAsDuration("STAGE2_DELAY", 40*time.Second),
		MaxUploadMB:             getEnvAsInt("MAX_UPLOAD_MB", 512),
		StatusUpdateTimeout:     getEnvAsDuration("STATUS_UPDATE_TIMEOUT", 15*time.Second),
		IncidentRefreshInterval: getEnvAsDuration("INCIDENT_REFRESH_INTERVAL", 0),
		HotspotCacheTTL:         getEnvAsDuration("HOTSPOT_CACHE_TTL", 5*time.Minute),
		SessionIdleTimeout:      getEnvAsDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:               os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		WebhookURL:              os.Getenv("WEBHOOK_URL"),
		WebhookSecret:           os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:          getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:       getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:        getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Сервис анализа и агрегатор горячих точек по умолчанию живут на том же адресе
	cfg.AnalysisURL = strings.TrimRight(getEnv("ANALYSIS_URL", cfg.BackendURL), "/")
	cfg.HotspotURL = strings.TrimRight(getEnv("HOTSPOT_URL", cfg.BackendURL), "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	for name, raw := range map[string]string{
		"BACKEND_URL":  c.BackendURL,
		"ANALYSIS_URL": c.AnalysisURL,
		"HOTSPOT_URL":  c.HotspotURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}
	if c.Stage1Delay <= 0 || c.Stage2Delay <= c.Stage1Delay {
		return fmt.Errorf("STAGE2_DELAY (%v) must be greater than STAGE1_DELAY (%v) and both positive", c.Stage2Delay, c.Stage1Delay)
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
