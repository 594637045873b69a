package ports

import "context"

// HealthChecker is a dependency the service needs in order to take
// traffic: the snapshot store and the headless browser.
type HealthChecker interface {
	// Name is the key of the check in the readiness response.
	Name() string

	// HealthCheck returns nil when the dependency is usable.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them on each
// readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll maps each checker name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
