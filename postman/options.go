package postman

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// Options configures every Solve* entry point.
type Options struct {
	// Logger receives a debug record per component or best budget trial and an
	// info record per solve. Defaults to zap.NewNop().
	Logger *zap.Logger

	// Workers bounds how many components (or budget start vertices) are
	// processed concurrently. 0 and 1 mean sequential; at most 256.
	Workers int `validate:"gte=0,lte=256"`
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns sequential processing with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		Workers: 1,
	}
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithWorkers sets the parallelism bound. Results are always aggregated in
// component (or vertex) order, so the output does not depend on n.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// budgetRequest carries the cost ceiling through struct validation.
// gte rejects NaN because every comparison with NaN is false.
type budgetRequest struct {
	K float64 `validate:"gte=0"`
}

func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validate.Struct(o); err != nil {
		return o, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	return o, nil
}

func validateBudget(k float64) error {
	if err := validate.Struct(budgetRequest{K: k}); err != nil {
		return fmt.Errorf("%w: K=%v", ErrInvalidBudget, k)
	}

	return nil
}
