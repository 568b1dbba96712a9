package ports

import "context"

// HealthChecker reports whether a dependency of the board can currently be
// used, typically a confirm transport.
type HealthChecker interface {
	// Name identifies the component in readiness output, e.g. "sync-api".
	Name() string

	// HealthCheck returns nil when healthy. It must return promptly once
	// ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll maps each checker name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
