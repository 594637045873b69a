package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 5.0
	defaultRateLimitBurst = 5

	defaultPageWidthPx = 794
	defaultScaleFactor = 2.0
)

// defaults returns the built-in configuration values. They form the lowest
// layer and are overridden by base.yaml, the profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "60s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "45s",

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":       StorageMemory,
		"storage.path":         "",
		"storage.busy_timeout": "5s",

		"browser.bin":        "",
		"browser.remote_url": "",
		"browser.headless":   true,
		"browser.timeout":    "30s",

		"client.timeout":                         "10s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"export.page_width_px": defaultPageWidthPx,
		"export.scale_factor":  defaultScaleFactor,
		"export.output_dir":    ".",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "nyaay-saathi",
	}
}
