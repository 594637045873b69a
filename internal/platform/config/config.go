// Package config provides configuration loading and validation for the service
// and the docgen CLI. Configuration is layered: built-in defaults ->
// base.yaml -> {profile}.yaml -> APP_ environment variables.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Storage   StorageConfig   `koanf:"storage"`
	Browser   BrowserConfig   `koanf:"browser"`
	Client    ClientConfig    `koanf:"client"`
	Export    ExportConfig    `koanf:"export"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// RequestTimeout bounds handler execution. It must be shorter than
	// WriteTimeout so the 504 response can still be written.
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Storage drivers.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// StorageConfig selects where document snapshots are persisted.
type StorageConfig struct {
	Driver string `koanf:"driver"`
	// Path is a directory for the file driver and a database file for sqlite.
	Path        string        `koanf:"path"`
	BusyTimeout time.Duration `koanf:"busy_timeout"`
}

// BrowserConfig holds headless Chrome settings used for rasterization and
// print-to-PDF. When RemoteURL is set, an already running browser is used
// through its DevTools endpoint and nothing is launched locally.
type BrowserConfig struct {
	Bin       string        `koanf:"bin"`
	RemoteURL string        `koanf:"remote_url"`
	Headless  bool          `koanf:"headless"`
	Timeout   time.Duration `koanf:"timeout"`
}

// ClientConfig holds outbound HTTP client settings, used to discover a
// remote browser's DevTools endpoint.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token bucket settings. A zero rate disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// ExportConfig holds pagination and download settings.
type ExportConfig struct {
	// PageWidthPx is the CSS width of the layout container; 794 is A4 at 96 dpi.
	PageWidthPx int     `koanf:"page_width_px"`
	ScaleFactor float64 `koanf:"scale_factor"`
	// OutputDir is where the CLI writes exported files.
	OutputDir string `koanf:"output_dir"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
