package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	rules      = validator.New(validator.WithRequiredStructEnabled())
	translator ut.Translator
)

func init() {
	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(rules, translator)

	// Namespaces read like the yaml keys: server.port, client.retry.multiplier.
	rules.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})

	custom := map[string]struct {
		fn  validator.Func
		msg string
	}{
		"loglevel": {
			fn: func(fl validator.FieldLevel) bool {
				var lvl slog.Level
				return lvl.UnmarshalText([]byte(fl.Field().String())) == nil
			},
			msg: "must be debug, info, warn or error, optionally with an offset such as warn+2",
		},
		"logformat": {
			fn: func(fl validator.FieldLevel) bool {
				f := strings.ToLower(fl.Field().String())
				return f == "json" || f == "text"
			},
			msg: "must be json or text",
		},
	}
	for tag, c := range custom {
		_ = rules.RegisterValidation(tag, c.fn)
		_ = rules.RegisterTranslation(tag, translator,
			func(ut.Translator) error { return nil },
			func(ut.Translator, validator.FieldError) string { return c.msg },
		)
	}

	rules.RegisterStructValidation(func(sl validator.StructLevel) {
		rl := sl.Current().Interface().(RateLimitConfig)
		if rl.RequestsPerSecond > 0 && rl.BurstSize < 1 {
			sl.ReportError(rl.BurstSize, "burst_size", "BurstSize", "min", "1")
		}
	}, RateLimitConfig{})
}

// Validate checks every section and reports all failures at once. The client
// section is checked only for the remote transport, telemetry only when
// enabled.
func (c *Config) Validate() error {
	errs := []error{check(c, "")}
	if c.Confirm.Transport == TransportRemote {
		errs = append(errs, check(&c.Client, "client"))
	}
	if c.Telemetry.Enabled {
		errs = append(errs, check(&c.Telemetry, "telemetry"))
	}
	return errors.Join(errs...)
}

// check validates v and renders each failure as "<key>: <message>", where
// key is the dotted yaml path under prefix.
func check(v any, prefix string) error {
	err := rules.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fe.Namespace()
		// Drop the root type name, e.g. "Config." or "ClientConfig.".
		if _, rest, ok := strings.Cut(key, "."); ok {
			key = rest
		}
		if prefix != "" {
			key = prefix + "." + key
		}
		errs = append(errs, fmt.Errorf("%s: %s (got %v)", key, fe.Translate(translator), fe.Value()))
	}
	return errors.Join(errs...)
}
