package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	overrides map[string]any
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// The default is "configs" under the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// WithOverrides applies dotted-key values on top of every other source,
// e.g. {"confirm.transport": "simulated", "store.seed": true}.
func WithOverrides(values map[string]any) Option {
	return func(o *loadOptions) { o.overrides = values }
}

// Load builds the configuration for profile from, lowest precedence first:
// built-in defaults, {dir}/base.yaml, {dir}/{profile}.yaml, APP_* environment
// variables, and WithOverrides. The result is validated.
//
// Environment names map onto known keys, so field names containing
// underscores resolve correctly:
//
//	APP_SERVER_READ_TIMEOUT       -> server.read_timeout
//	APP_OPTIMISTIC_QUEUE_SIZE     -> optimistic.queue_size
//	APP_CONFIRM_FAIL_RATE         -> confirm.fail_rate
//	APP_CLIENT_RETRY_MAX_ATTEMPTS -> client.retry.max_attempts
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := setAll(k, defaults(), "default"); err != nil {
		return nil, err
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	known := envKeys(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if err := setAll(k, o.overrides, "override"); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

func setAll(k *koanf.Koanf, values map[string]any, source string) error {
	for key, v := range values {
		if err := k.Set(key, v); err != nil {
			return fmt.Errorf("setting %s %s: %w", source, key, err)
		}
	}
	return nil
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a plain name", profile)
	}
	return nil
}

// envKeys maps the underscore form of each dotted key back to the key, so
// "server_read_timeout" finds "server.read_timeout".
func envKeys(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}
