package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the environment variables, e.g. KERNELBENCH_SIZES.
const envPrefix = "KERNELBENCH"

var (
	errInvalidSize   = errors.New("invalid size")
	errInvalidRepeat = errors.New("repeat must be positive")
	errInvalidFormat = errors.New("unknown output format")
)

// Config holds the benchmark settings.
type Config struct {
	Sizes    []int  `envconfig:"SIZES" default:"256,4096,65536"`
	Repeat   int    `envconfig:"REPEAT" default:"5"`
	Format   string `envconfig:"FORMAT" default:"table"`
	Workers  int    `envconfig:"WORKERS" default:"0"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings after flag overrides have been applied.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes given", errInvalidSize)
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("%w: %d", errInvalidSize, s)
		}
	}
	if c.Repeat <= 0 {
		return fmt.Errorf("%w: %d", errInvalidRepeat, c.Repeat)
	}
	switch c.Format {
	case "table", "yaml":
	default:
		return fmt.Errorf("%w: %q (want table or yaml)", errInvalidFormat, c.Format)
	}
	return nil
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errInvalidSize, field)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func formatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}
