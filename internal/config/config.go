// Package config loads and validates application configuration from
// environment variables and an optional YAML house-rules file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/sitterbook/internal/domain"
)

// Config holds all configuration values for bookingcheck.
// Values are populated by Load from environment variables.
type Config struct {
	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat selects the slog handler: "text" (default) or "json".
	LogFormat string

	// Rules is the service window. Defaults to 5:00 PM - 4:00 AM.
	// Set HOUSE_EARLIEST_START / HOUSE_LATEST_END to override.
	Rules domain.HouseRules

	// Strategy selects how times are compared. Defaults to clock12.
	Strategy domain.Strategy

	// BusinessDayStart anchors the businessday strategy. Defaults to 12:00 PM.
	BusinessDayStart domain.TimeOfDay

	// RulesFile is an optional YAML file whose keys override the values above.
	RulesFile string
}

// rulesFile is the on-disk shape of a house-rules file. Absent keys leave
// the corresponding Config value untouched.
//
//	earliest_start: 5:00 PM
//	latest_end: 4:00 AM
//	strategy: clock12
//	business_day_start: 12:00 PM
type rulesFile struct {
	EarliestStart    *domain.TimeOfDay `yaml:"earliest_start"`
	LatestEnd        *domain.TimeOfDay `yaml:"latest_end"`
	Strategy         string            `yaml:"strategy"`
	BusinessDayStart *domain.TimeOfDay `yaml:"business_day_start"`
}

// Load reads configuration from environment variables and, when
// HOUSE_RULES_FILE is set, from that file. Returns an error listing every
// variable that could not be parsed.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		RulesFile: os.Getenv("HOUSE_RULES_FILE"),
	}

	var invalid []string

	defaults := domain.DefaultHouseRules()
	var err error
	if cfg.Rules.EarliestStart, err = getTimeEnv("HOUSE_EARLIEST_START", defaults.EarliestStart); err != nil {
		invalid = append(invalid, err.Error())
	}
	if cfg.Rules.LatestEnd, err = getTimeEnv("HOUSE_LATEST_END", defaults.LatestEnd); err != nil {
		invalid = append(invalid, err.Error())
	}
	if cfg.BusinessDayStart, err = getTimeEnv("BUSINESS_DAY_START", domain.DefaultBusinessDayStart); err != nil {
		invalid = append(invalid, err.Error())
	}
	if cfg.Strategy, err = domain.ParseStrategy(getEnv("RULE_STRATEGY", string(domain.StrategyClock12))); err != nil {
		invalid = append(invalid, "RULE_STRATEGY: "+err.Error())
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
		cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	default:
		invalid = append(invalid, fmt.Sprintf("LOG_FORMAT: %q must be text or json", cfg.LogFormat))
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: invalid environment variables: %s", domain.ErrValidation, strings.Join(invalid, "; "))
	}

	if cfg.RulesFile != "" {
		return ApplyRulesFile(cfg, cfg.RulesFile)
	}
	return cfg, nil
}

// ApplyRulesFile overlays the YAML house-rules file at path onto cfg.
// Unknown keys are rejected so a typo does not silently fall back to defaults.
func ApplyRulesFile(cfg Config, path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening house rules file: %w", err)
	}
	defer f.Close()

	slog.Debug("loading house rules", "path", path)

	var rf rulesFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing house rules file %s: %w", path, err)
	}

	if rf.EarliestStart != nil {
		cfg.Rules.EarliestStart = *rf.EarliestStart
	}
	if rf.LatestEnd != nil {
		cfg.Rules.LatestEnd = *rf.LatestEnd
	}
	if rf.BusinessDayStart != nil {
		cfg.BusinessDayStart = *rf.BusinessDayStart
	}
	if rf.Strategy != "" {
		s, err := domain.ParseStrategy(rf.Strategy)
		if err != nil {
			return Config{}, fmt.Errorf("house rules file %s: %w", path, err)
		}
		cfg.Strategy = s
	}
	cfg.RulesFile = path
	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getTimeEnv parses the environment variable named by key as a TimeOfDay,
// or returns fallback if it is not set or is empty.
func getTimeEnv(key string, fallback domain.TimeOfDay) (domain.TimeOfDay, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	t, err := domain.ParseTimeOfDay(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return t, nil
}
