package optimizer

import "fmt"

// Options configures an Engine. Zero values fall back to the defaults used
// across the service; weight sets are validated because a bad weight set
// silently corrupts every score.
type Options struct {
	Weights         Weights
	CriticalWeights Weights
	DefaultDistKM   float64
	CriticalScore   float64
	ConcerningScore float64
	RadiusExpansion float64
}

// DefaultOptions returns the recognized engine configuration.
func DefaultOptions() Options {
	return Options{
		Weights:         DefaultWeights,
		CriticalWeights: CriticalWeights,
		DefaultDistKM:   10.0,
		CriticalScore:   3.0,
		ConcerningScore: 5.0,
		RadiusExpansion: 1.5,
	}
}

// Engine evaluates eligibility, scoring and critical-case flagging over
// immutable snapshots. It holds configuration only; all methods are pure
// and safe for concurrent use.
type Engine struct {
	opts Options
}

func NewEngine(opts Options) (*Engine, error) {
	if err := opts.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("weights: %w", err)
	}
	if err := opts.CriticalWeights.Validate(); err != nil {
		return nil, fmt.Errorf("critical weights: %w", err)
	}
	if opts.DefaultDistKM < 0 {
		return nil, fmt.Errorf("default distance must be >= 0, got %v", opts.DefaultDistKM)
	}
	if opts.RadiusExpansion < 1.0 {
		return nil, fmt.Errorf("radius expansion must be >= 1.0, got %v", opts.RadiusExpansion)
	}
	return &Engine{opts: opts}, nil
}

func (e *Engine) Weights() Weights {
	return e.opts.Weights
}
