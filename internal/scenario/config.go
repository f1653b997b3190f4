package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zeusync/elastic/pkg/collision"
	"github.com/zeusync/elastic/pkg/observability/log"
)

const (
	// DefaultTolerance is the conservation and agreement tolerance used when a file sets none.
	DefaultTolerance = 1e-4

	methodBoth = "both"
)

var (
	ErrNoScenarios        = errors.New("no scenarios")
	ErrInvalidTolerance   = errors.New("tolerance must not be negative")
	ErrInvalidWorkers     = errors.New("workers must not be negative")
	ErrUnsupportedFormat  = errors.New("unsupported scenario file format")
	ErrDuplicateScenarios = errors.New("duplicate scenario id")
)

// Config holds batch configuration
type Config struct {
	Resolver  collision.Config
	Methods   []collision.Method
	Tolerance float64
	Workers   int
	LogLevel  log.Level
}

// DefaultConfig returns default batch configuration
func DefaultConfig() Config {
	return Config{
		Resolver:  collision.DefaultConfig(),
		Methods:   []collision.Method{collision.MethodAngleFree, collision.MethodTrigonometric},
		Tolerance: DefaultTolerance,
		Workers:   0,
		LogLevel:  log.LevelInfo,
	}
}

// ParseMethods maps "both" (or an empty string) to both formulations and any other
// value to the single method it names.
func ParseMethods(s string) ([]collision.Method, error) {
	if s == "" || strings.EqualFold(strings.TrimSpace(s), methodBoth) {
		return []collision.Method{collision.MethodAngleFree, collision.MethodTrigonometric}, nil
	}
	method, err := collision.ParseMethod(s)
	if err != nil {
		return nil, err
	}
	return []collision.Method{method}, nil
}

// Config derives the batch configuration from the file header.
func (f *File) Config() (Config, error) {
	config := DefaultConfig()

	methods, err := ParseMethods(f.Method)
	if err != nil {
		return Config{}, err
	}
	config.Methods = methods

	level, err := log.ParseLevel(f.LogLevel)
	if err != nil {
		return Config{}, err
	}
	config.LogLevel = level

	switch {
	case f.Tolerance < 0:
		return Config{}, fmt.Errorf("%w: %g", ErrInvalidTolerance, f.Tolerance)
	case f.Tolerance > 0:
		config.Tolerance = f.Tolerance
	}

	if f.Workers < 0 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidWorkers, f.Workers)
	}
	config.Workers = f.Workers

	if f.StrictCenters != nil {
		config.Resolver.StrictCenters = *f.StrictCenters
	}
	config.Resolver.InvertY = f.InvertY

	return config, nil
}
