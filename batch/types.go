package batch

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/paths"
)

// Sentinel errors for batch runs.
var (
	// ErrEmptyInput indicates there were no codes to run.
	ErrEmptyInput = errors.New("batch: no codes supplied")

	// ErrNoDigits indicates a code without digits.
	ErrNoDigits = errors.New("batch: code has no digits")

	// ErrUnknownFormat indicates an unsupported report format.
	ErrUnknownFormat = errors.New("batch: unknown report format")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("batch: invalid option supplied")
)

// Defaults used by DefaultOptions.
const (
	DefaultDepth   = 2
	DefaultWorkers = 4
)

// Result is the outcome for one code.
type Result struct {
	Code       string `json:"code" yaml:"code"`
	Value      uint64 `json:"value" yaml:"value"`
	Presses    uint64 `json:"presses" yaml:"presses"`
	Complexity uint64 `json:"complexity" yaml:"complexity"`
}

// Report is the outcome of a run, with results in input order.
type Report struct {
	RunID    string           `json:"run_id" yaml:"run_id"`
	Depth    int              `json:"depth" yaml:"depth"`
	Strategy string           `json:"strategy" yaml:"strategy"`
	Results  []Result         `json:"results" yaml:"results"`
	Total    uint64           `json:"total" yaml:"total"`
	Cache    chain.CacheStats `json:"cache" yaml:"cache"`
}

// Options configures Run.
type Options struct {
	// Depth is the number of robot-operated directional pads.
	Depth int

	// Workers bounds concurrent evaluations; ≤ 0 means unbounded.
	Workers int

	// Strategy selects candidate paths for every evaluator.
	Strategy paths.Strategy

	// SharedCache makes all workers use one Cache.
	SharedCache bool

	// Logger receives one info record per code and one per run.
	Logger zerolog.Logger

	// RunID tags log records and the report; generated when empty.
	RunID string

	err error
}

// Option configures Run via functional arguments.
type Option func(*Options)

// DefaultOptions returns depth 2, four workers, L-shaped paths, one cache
// per code, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Depth:    DefaultDepth,
		Workers:  DefaultWorkers,
		Strategy: paths.LShape,
		Logger:   zerolog.Nop(),
	}
}

// WithDepth sets the chain depth; negative depths are rejected.
func WithDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: depth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.Depth = d
	}
}

// WithWorkers bounds concurrency; n ≤ 0 removes the bound.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithStrategy selects the path enumeration strategy.
func WithStrategy(s paths.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithSharedCache makes every worker read and write a single Cache.
func WithSharedCache() Option {
	return func(o *Options) {
		o.SharedCache = true
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}
