package collision

import (
	"fmt"

	"github.com/zeusync/elastic/pkg/observability/log"
)

// Config holds resolver configuration
type Config struct {
	// StrictCenters rejects angle-free contacts whose centers share an X or Y coordinate.
	StrictCenters bool
	// InvertY negates the Y component of both outgoing velocities, for display coordinates.
	InvertY bool
}

// DefaultConfig returns default resolver configuration
func DefaultConfig() Config {
	return Config{
		StrictCenters: true,
		InvertY:       false,
	}
}

// Resolver is the collision facade. It applies Config and reports every
// precondition failure as a warning before returning it.
//
// A Resolver holds no mutable state and may be shared between goroutines.
type Resolver struct {
	config Config
	logger log.Log
}

// NewResolver creates a resolver. A nil logger discards diagnostics.
func NewResolver(config Config, logger log.Log) *Resolver {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Resolver{
		config: config,
		logger: logger.With(log.String("component", "collision")),
	}
}

// Config returns the resolver configuration
func (r *Resolver) Config() Config {
	return r.config
}

// Trigonometric resolves b1 and b2 with the trigonometric method.
func (r *Resolver) Trigonometric(b1, b2 Body) (Result, error) {
	return r.Resolve(MethodTrigonometric, b1, b2)
}

// AngleFree resolves b1 and b2 with the angle-free method.
func (r *Resolver) AngleFree(b1, b2 Body) (Result, error) {
	return r.Resolve(MethodAngleFree, b1, b2)
}

// Resolve dispatches on method.
func (r *Resolver) Resolve(method Method, b1, b2 Body) (Result, error) {
	var (
		result Result
		err    error
	)

	switch method {
	case MethodAngleFree:
		result, err = resolveAngleFree(b1, b2, r.config.StrictCenters)
	case MethodTrigonometric:
		result, err = ResolveTrigonometric(b1, b2)
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownMethod, uint8(method))
	}

	if err != nil {
		r.logger.Warn("Collision not resolved",
			log.Stringer("method", method),
			log.Stringer("velocity1", b1.Velocity),
			log.Stringer("velocity2", b2.Velocity),
			log.Float64("mass1", b1.Mass),
			log.Float64("mass2", b2.Mass),
			log.Stringer("center1", b1.Center),
			log.Stringer("center2", b2.Center),
			log.Error(err))
		return Result{}, err
	}

	if r.config.InvertY {
		result = result.InvertedY()
	}

	r.logger.Debug("Collision resolved",
		log.Stringer("method", method),
		log.Stringer("outgoing1", result.Outgoing1),
		log.Stringer("outgoing2", result.Outgoing2))

	return result, nil
}
