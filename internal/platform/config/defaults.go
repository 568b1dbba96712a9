package config

// section is one block of default values, keyed relative to its prefix.
type section struct {
	prefix string
	values map[string]any
}

// defaultSections holds the built-in values loaded beneath every YAML file.
// Durations are strings so they decode the same way as the YAML sources.
var defaultSections = []section{
	{"server", map[string]any{
		"host":             "0.0.0.0",
		"port":             8080,
		"read_timeout":     "5s",
		"write_timeout":    "10s",
		"idle_timeout":     "120s",
		"shutdown_timeout": "15s",
	}},
	{"log", map[string]any{"level": "info", "format": "json"}},
	{"store", map[string]any{"seed": false}},
	{"optimistic", map[string]any{
		"queue_size":      256,
		"confirm_timeout": "5s",
	}},
	// A half-second round trip that never rejects.
	{"confirm", map[string]any{
		"transport": TransportSimulated,
		"delay":     "500ms",
		"fail_rate": 0.0,
	}},
	{"client", map[string]any{
		"base_url": "http://localhost:8081",
		"timeout":  "30s",
	}},
	{"client.retry", map[string]any{
		"max_attempts":     3,
		"initial_interval": "100ms",
		"max_interval":     "10s",
		"multiplier":       2.0,
	}},
	{"client.circuit_breaker", map[string]any{
		"max_failures":    5,
		"timeout":         "30s",
		"half_open_limit": 1,
	}},
	{"client.rate_limit", map[string]any{
		"requests_per_second": 0.0,
		"burst_size":          10,
	}},
	{"telemetry", map[string]any{
		"enabled":      false,
		"exporter":     "stdout",
		"endpoint":     "",
		"service_name": "kanban-board",
	}},
}

// defaults flattens defaultSections into dotted keys.
func defaults() map[string]any {
	out := make(map[string]any)
	for _, s := range defaultSections {
		for key, v := range s.values {
			out[s.prefix+"."+key] = v
		}
	}
	return out
}
