package chain

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/paths"
)

// maxGrowHint bounds the up-front buffer allocation in Expand.
const maxGrowHint = 1 << 16

// Expand returns one press sequence for the human that realises code
// through levels robots with exactly MinPresses(code, levels) presses.
//
// Behavior:
//  1. Price the code; fail with ErrExpansionTooLong above Options.MaxExpand.
//  2. For each transition pick the first candidate path whose priced
//     sequence matches the transition's minimum, and expand that sequence
//     one level further out.
//  3. At level 0 emit the first shortest path followed by A.
//
// Ties between equally cheap candidates resolve to enumeration order
// (vertical-first), so the output is deterministic.
func (e *Evaluator) Expand(code string, levels int) (string, error) {
	n, err := e.MinPresses(code, levels)
	if err != nil {
		return "", err
	}
	if n > e.opts.MaxExpand {
		return "", fmt.Errorf("%w: %d presses, limit %d", ErrExpansionTooLong, n, e.opts.MaxExpand)
	}

	var b strings.Builder
	b.Grow(int(min(n, maxGrowHint)))
	if err := e.expandSequence(&b, keypad.NumericPad(), []rune(code), levels); err != nil {
		return "", err
	}

	return b.String(), nil
}

// expandSequence writes the human presses for typing seq on pad, starting
// from the pad's resting A.
func (e *Evaluator) expandSequence(b *strings.Builder, pad *keypad.Layout, seq []rune, levels int) error {
	prev := keypad.Activate
	for _, r := range seq {
		t := Transition{From: prev, To: r, Kind: pad.Kind(), Levels: levels}
		if err := e.expandTransition(b, pad, t); err != nil {
			return err
		}
		prev = r
	}
	return nil
}

func (e *Evaluator) expandTransition(b *strings.Builder, pad *keypad.Layout, t Transition) error {
	candidates, err := paths.Enumerate(pad, t.From, t.To, e.opts.Strategy)
	if err != nil {
		return fmt.Errorf("chain: expanding %s: %w", t, err)
	}
	if t.Levels == 0 {
		b.WriteString(string(candidates[0].Presses()))
		return nil
	}

	want, err := e.cost(pad, t)
	if err != nil {
		return err
	}
	for _, p := range candidates {
		seq := p.Presses()
		c, err := e.sequenceCost(seq, t.Levels-1)
		if err != nil {
			return err
		}
		if c != want {
			continue
		}
		return e.expandSequence(b, keypad.DirectionalPad(), seq, t.Levels-1)
	}

	return fmt.Errorf("chain: expanding %s: no candidate reaches cost %d", t, want)
}

// Replay pushes a human press sequence through levels robot-operated
// directional pads and the door pad, returning what the door arm types.
// It is the inverse check for Expand.
func Replay(presses string, levels int) (string, error) {
	if levels < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeDepth, levels)
	}
	seq := presses
	var err error
	for i := 0; i < levels; i++ {
		if seq, err = keypad.DirectionalPad().Drive(seq); err != nil {
			return "", fmt.Errorf("chain: replay level %d: %w", levels-i-1, err)
		}
	}
	if seq, err = keypad.NumericPad().Drive(seq); err != nil {
		return "", fmt.Errorf("chain: replay door pad: %w", err)
	}
	return seq, nil
}
