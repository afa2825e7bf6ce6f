package batch

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/keypadchain/chain"
)

// Run evaluates every code at the configured depth and aggregates
// value × presses.
//
// Behavior:
//  1. Apply options; reject empty input.
//  2. Compute every numeric value up front so a bad code fails before any
//     evaluation starts.
//  3. Fan out through an errgroup bounded by Workers; each worker builds its
//     own chain.Evaluator (sharing one Cache only with WithSharedCache).
//  4. Sum complexities in input order.
//
// Context cancellation stops scheduling further codes and is returned as
// the error.
func Run(ctx context.Context, codes []string, opts ...Option) (*Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if len(codes) == 0 {
		return nil, ErrEmptyInput
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
	log := cfg.Logger.With().Str("run", cfg.RunID).Logger()

	values := make([]uint64, len(codes))
	for i, code := range codes {
		v, err := NumericValue(code)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	var shared *chain.Cache
	if cfg.SharedCache {
		shared = chain.NewCache()
	}
	results := make([]Result, len(codes))
	stats := make([]chain.CacheStats, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, code := range codes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			evalOpts := []chain.Option{
				chain.WithStrategy(cfg.Strategy),
				chain.WithLogger(log),
			}
			if shared != nil {
				evalOpts = append(evalOpts, chain.WithCache(shared))
			}
			e, err := chain.New(evalOpts...)
			if err != nil {
				return err
			}
			n, err := e.MinPresses(code, cfg.Depth)
			if err != nil {
				return fmt.Errorf("batch: code %q: %w", code, err)
			}
			c, err := mul(values[i], n)
			if err != nil {
				return fmt.Errorf("batch: code %q: %w", code, err)
			}
			results[i] = Result{Code: code, Value: values[i], Presses: n, Complexity: c}
			stats[i] = e.Cache().Stats()

			log.Info().
				Str("code", code).
				Uint64("value", values[i]).
				Uint64("presses", n).
				Uint64("complexity", c).
				Msg("code evaluated")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep := &Report{
		RunID:    cfg.RunID,
		Depth:    cfg.Depth,
		Strategy: cfg.Strategy.String(),
		Results:  results,
	}
	for _, r := range results {
		total, carry := bits.Add64(rep.Total, r.Complexity, 0)
		if carry != 0 {
			return nil, fmt.Errorf("batch: total: %w", chain.ErrOverflow)
		}
		rep.Total = total
	}
	if shared != nil {
		rep.Cache = shared.Stats()
	} else {
		for _, s := range stats {
			rep.Cache.Entries += s.Entries
			rep.Cache.Hits += s.Hits
			rep.Cache.Misses += s.Misses
		}
	}

	log.Info().
		Int("codes", len(codes)).
		Int("depth", cfg.Depth).
		Uint64("total", rep.Total).
		Msg("run complete")

	return rep, nil
}

func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, chain.ErrOverflow
	}
	return lo, nil
}
