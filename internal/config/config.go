// Package config loads fitcoach settings from defaults and FITCOACH_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "FITCOACH_"

type Config struct {
	Sensor  SensorConfig  `koanf:"sensor"`
	History HistoryConfig `koanf:"history"`
	Log     LogConfig     `koanf:"log"`
	Profile ProfileConfig `koanf:"profile"`
}

// SensorConfig selects and tunes the classification source. A non-empty
// Endpoint switches from the simulator to the HTTP inference source.
type SensorConfig struct {
	Endpoint     string        `koanf:"endpoint" validate:"omitempty,http_url"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0,lte=1m"`
	Latency      time.Duration `koanf:"latency" validate:"gte=0,lte=1m"`
	HeartRateMin int           `koanf:"heart_rate_min" validate:"gt=0"`
	HeartRateMax int           `koanf:"heart_rate_max" validate:"gtefield=HeartRateMin,lte=250"`
	FailureRate  float64       `koanf:"failure_rate" validate:"gte=0,lte=1"`
	Seed         uint64        `koanf:"seed"`
}

type HistoryConfig struct {
	Limit int `koanf:"limit" validate:"gte=1,lte=1000"`
}

type LogConfig struct {
	UseCases    bool `koanf:"use_cases"`
	SensorCalls bool `koanf:"sensor_calls"`
}

// ProfileConfig is the profile the dashboard starts with.
type ProfileConfig struct {
	Body      string `koanf:"body" validate:"oneof=normal overweight obease underweight"`
	Objective string `koanf:"objective" validate:"oneof=cardio strength"`
}

func Default() *Config {
	return &Config{
		Sensor: SensorConfig{
			Timeout:      3 * time.Second,
			Latency:      1200 * time.Millisecond,
			HeartRateMin: 70,
			HeartRateMax: 160,
		},
		History: HistoryConfig{Limit: 20},
		Profile: ProfileConfig{Body: "normal", Objective: "cardio"},
	}
}

// Load layers environment variables over Default and validates the result.
func Load() (*Config, error) {
	return load(env.Provider(EnvPrefix, ".", envTransform))
}

func load(envProvider koanf.Provider) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envTransform maps FITCOACH_SENSOR_HEART_RATE_MIN to sensor.heart_rate_min.
// Variables without a section are ignored.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	section, field, ok := strings.Cut(key, "_")
	if !ok || section == "" || field == "" {
		return ""
	}
	return section + "." + field
}

func (c *Config) normalize() {
	c.Sensor.Endpoint = strings.TrimRight(strings.TrimSpace(c.Sensor.Endpoint), "/")
	c.Profile.Body = strings.ToLower(strings.TrimSpace(c.Profile.Body))
	c.Profile.Objective = strings.ToLower(strings.TrimSpace(c.Profile.Objective))
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(koanfTagName)
	})
	return validate
}

// Validate reports every invalid field, named by its configuration key.
func (c *Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating configuration: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return &ValidationError{Problems: msgs}
}

// ValidationError lists configuration keys that failed validation.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

func describe(fe validator.FieldError) string {
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	envName := EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s (%s) must be one of [%s], got %v", key, envName, fe.Param(), fe.Value())
	case "gtefield":
		return fmt.Sprintf("%s (%s) must not be below heart_rate_min, got %v", key, envName, fe.Value())
	case "http_url":
		return fmt.Sprintf("%s (%s) must be an http(s) URL, got %q", key, envName, fe.Value())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s (%s) failed %s=%s, got %v", key, envName, fe.Tag(), fe.Param(), fe.Value())
		}
		return fmt.Sprintf("%s (%s) failed %s, got %v", key, envName, fe.Tag(), fe.Value())
	}
}
