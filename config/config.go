package config

import (
	"errors"
	"io/fs"
	"os"
	"reflect"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

type Config struct {
	AppName    string `env:"APP_NAME" env-default:"reed"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info"`
	PrettyLogs bool   `env:"PRETTY_LOGS" env-default:"false"`

	// Open a span for every chain invocation
	TracingEnabled bool `env:"TRACING_ENABLED" env-default:"false"`
	// Collect Prometheus metrics for chain invocations
	MetricsEnabled bool `env:"METRICS_ENABLED" env-default:"false"`

	// Local timezone for date steps that do not name one; empty keeps the system zone
	Timezone string `env:"TIMEZONE" env-default:""`
}

// Default returns the config built from env-default tags alone.
func Default() Config {
	var cfg Config
	_ = decode(defaults(), &cfg)
	return cfg
}

// Load reads the given .env files, or ".env" when none are given, then
// overlays the process environment on the tag defaults. A missing .env
// file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	values := defaults()
	for key := range values {
		if value, ok := os.LookupEnv(key); ok {
			values[key] = value
		}
	}

	var cfg Config
	if err := decode(values, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaults() map[string]any {
	values := map[string]any{}
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if key := field.Tag.Get("env"); key != "" {
			values[key] = field.Tag.Get("env-default")
		}
	}
	return values
}

func decode(values map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "env",
		WeaklyTypedInput: true,
		Result:           cfg,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(values)
}
