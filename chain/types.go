package chain

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/paths"
)

// Sentinel errors for evaluation.
var (
	// ErrInvalidCode indicates a code label that is not on the numeric pad.
	ErrInvalidCode = errors.New("chain: invalid code")

	// ErrNegativeDepth indicates a negative number of levels.
	ErrNegativeDepth = errors.New("chain: levels must be non-negative")

	// ErrOverflow indicates the press count exceeds the uint64 range.
	ErrOverflow = errors.New("chain: press count overflows uint64")

	// ErrExpansionTooLong indicates Expand was asked for a sequence longer
	// than the configured maximum.
	ErrExpansionTooLong = errors.New("chain: expansion exceeds maximum length")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("chain: invalid option supplied")
)

// DefaultMaxExpand is the default cap on the length of an expanded sequence.
const DefaultMaxExpand uint64 = 1 << 20

// Transition is the unit of work being priced: move the arm over a Kind
// pad from From to To and press, with Levels directional pads between that
// pad and the human. It is also the Cache key.
type Transition struct {
	From, To rune
	Kind     keypad.Kind
	Levels   int
}

// String renders the transition as "numeric 0→2 @2".
func (t Transition) String() string {
	return fmt.Sprintf("%s %c→%c @%d", t.Kind, t.From, t.To, t.Levels)
}

// Options configures an Evaluator.
type Options struct {
	// Strategy selects candidate paths at each level.
	Strategy paths.Strategy

	// Memo enables the transition cache. Disabled only for cross-checks.
	Memo bool

	// Cache, if non-nil, is used instead of a fresh one.
	Cache *Cache

	// Logger receives trace records for priced transitions and debug
	// records for completed queries.
	Logger zerolog.Logger

	// OnTransition is called once for every transition actually priced,
	// that is, on every cache miss (or every call when Memo is off).
	OnTransition func(t Transition, cost uint64)

	// MaxExpand caps the sequence length Expand will materialise.
	MaxExpand uint64

	// internal error recorded during option parsing
	err error
}

// Option configures Evaluator behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - Strategy paths.LShape
//   - Memo enabled, fresh Cache
//   - zerolog.Nop() logger
//   - no-op OnTransition
//   - MaxExpand DefaultMaxExpand
func DefaultOptions() Options {
	return Options{
		Strategy:     paths.LShape,
		Memo:         true,
		Logger:       zerolog.Nop(),
		OnTransition: func(Transition, uint64) {},
		MaxExpand:    DefaultMaxExpand,
	}
}

// WithStrategy selects the path enumeration strategy.
func WithStrategy(s paths.Strategy) Option {
	return func(o *Options) {
		switch s {
		case paths.LShape, paths.Exhaustive:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, s)
		}
	}
}

// WithCache makes the Evaluator read and write c. A nil cache is rejected.
func WithCache(c *Cache) Option {
	return func(o *Options) {
		if c == nil {
			o.err = fmt.Errorf("%w: nil cache", ErrOptionViolation)
			return
		}
		o.Cache = c
	}
}

// WithoutMemo disables caching; every transition is re-derived.
func WithoutMemo() Option {
	return func(o *Options) {
		o.Memo = false
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnTransition registers a callback run for every priced transition.
func WithOnTransition(fn func(t Transition, cost uint64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTransition = fn
		}
	}
}

// WithMaxExpand caps Expand output length; n must be positive.
func WithMaxExpand(n uint64) Option {
	return func(o *Options) {
		if n == 0 {
			o.err = fmt.Errorf("%w: MaxExpand must be positive", ErrOptionViolation)
			return
		}
		o.MaxExpand = n
	}
}
