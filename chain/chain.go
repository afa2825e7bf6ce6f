package chain

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/paths"
)

// Evaluator prices transitions and codes. It owns (or shares, via
// WithCache) a Cache; with its own Cache an Evaluator is meant for one
// goroutine at a time.
type Evaluator struct {
	opts  Options
	cache *Cache
	log   zerolog.Logger
}

// New builds an Evaluator from DefaultOptions overridden by opts.
// Returns ErrOptionViolation (wrapped) if any option was invalid.
func New(opts ...Option) (*Evaluator, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	c := cfg.Cache
	if c == nil {
		c = NewCache()
	}

	return &Evaluator{opts: cfg, cache: c, log: cfg.Logger}, nil
}

// MinPresses is a one-shot query on a fresh Evaluator: the minimum number
// of human presses that make the door arm type code through levels
// robot-operated directional pads.
func MinPresses(code string, levels int, opts ...Option) (uint64, error) {
	e, err := New(opts...)
	if err != nil {
		return 0, err
	}
	return e.MinPresses(code, levels)
}

// Cache returns the Evaluator's cache.
func (e *Evaluator) Cache() *Cache { return e.cache }

// MinPresses returns the minimum number of human presses that make the
// door arm type code, with levels robot-operated directional pads between
// the human and the door pad. The door arm starts on A.
//
// The code is validated before any pricing, so a failing query leaves no
// partial result. An empty code costs zero presses.
func (e *Evaluator) MinPresses(code string, levels int) (uint64, error) {
	if levels < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDepth, levels)
	}
	if err := validateCode(code); err != nil {
		return 0, err
	}

	pad := keypad.NumericPad()
	prev := keypad.Activate
	var total uint64
	for _, r := range code {
		c, err := e.cost(pad, Transition{From: prev, To: r, Kind: keypad.KindNumeric, Levels: levels})
		if err != nil {
			return 0, err
		}
		if total, err = add(total, c); err != nil {
			return 0, err
		}
		prev = r
	}

	e.log.Debug().
		Str("code", code).
		Int("levels", levels).
		Uint64("presses", total).
		Int("cache_entries", e.cache.Len()).
		Msg("priced code")

	return total, nil
}

// TransitionCost returns the human presses needed to move the arm over a
// kind pad from button from to button to and press it, with levels
// directional pads between that pad and the human.
func (e *Evaluator) TransitionCost(from, to rune, kind keypad.Kind, levels int) (uint64, error) {
	if levels < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDepth, levels)
	}
	pad, err := keypad.ForKind(kind)
	if err != nil {
		return 0, err
	}
	return e.cost(pad, Transition{From: from, To: to, Kind: kind, Levels: levels})
}

// cost evaluates the recurrence for t on pad, consulting the cache first.
func (e *Evaluator) cost(pad *keypad.Layout, t Transition) (uint64, error) {
	if e.opts.Memo {
		if v, ok := e.cache.Get(t); ok {
			return v, nil
		}
	}

	var best uint64
	if t.Levels == 0 {
		src, err := pad.CoordinateOf(t.From)
		if err != nil {
			return 0, err
		}
		dst, err := pad.CoordinateOf(t.To)
		if err != nil {
			return 0, err
		}
		best = uint64(keypad.Distance(src, dst)) + 1
	} else {
		candidates, err := paths.Enumerate(pad, t.From, t.To, e.opts.Strategy)
		if err != nil {
			return 0, fmt.Errorf("chain: pricing %s: %w", t, err)
		}
		best = math.MaxUint64
		for _, p := range candidates {
			c, err := e.sequenceCost(p.Presses(), t.Levels-1)
			if err != nil {
				return 0, err
			}
			if c < best {
				best = c
			}
		}
	}

	if e.opts.Memo {
		best = e.cache.Store(t, best)
	}
	e.opts.OnTransition(t, best)
	e.log.Trace().Stringer("transition", t).Uint64("cost", best).Msg("priced transition")

	return best, nil
}

// sequenceCost prices pressing seq on the directional pad at the given
// level, starting from the pad's resting A.
func (e *Evaluator) sequenceCost(seq []rune, levels int) (uint64, error) {
	pad := keypad.DirectionalPad()
	prev := keypad.Activate
	var sum uint64
	for _, r := range seq {
		c, err := e.cost(pad, Transition{From: prev, To: r, Kind: keypad.KindDirectional, Levels: levels})
		if err != nil {
			return 0, err
		}
		if sum, err = add(sum, c); err != nil {
			return 0, err
		}
		prev = r
	}
	return sum, nil
}

// validateCode rejects any label that is not a door-pad button.
func validateCode(code string) error {
	pad := keypad.NumericPad()
	for i, r := range code {
		if !pad.Has(r) {
			return fmt.Errorf("%w: %q has %q at offset %d", ErrInvalidCode, code, r, i)
		}
	}
	return nil
}

func add(a, b uint64) (uint64, error) {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return s, nil
}
