package keypad_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/keypad"
)

//----------------------------------------------------------------------------//
// New Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects malformed layouts.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"EmptyRows", []string{}, keypad.ErrEmptyGrid},
		{"EmptyCols", []string{""}, keypad.ErrEmptyGrid},
		{"NonRectangular", []string{"12", "3"}, keypad.ErrNonRectangular},
		{"NoGap", []string{"12", "34"}, keypad.ErrGapCount},
		{"TwoGaps", []string{"1 ", " 4"}, keypad.ErrGapCount},
		{"Duplicate", []string{"11", " 4"}, keypad.ErrDuplicateButton},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := keypad.New(keypad.KindNumeric, tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Fixed layouts
//----------------------------------------------------------------------------//

// TestNumericPad_Coordinates pins every button of the door keypad.
func TestNumericPad_Coordinates(t *testing.T) {
	pad := keypad.NumericPad()
	want := map[rune]keypad.Position{
		'7': {0, 0}, '8': {0, 1}, '9': {0, 2},
		'4': {1, 0}, '5': {1, 1}, '6': {1, 2},
		'1': {2, 0}, '2': {2, 1}, '3': {2, 2},
		'0': {3, 1}, 'A': {3, 2},
	}
	for label, p := range want {
		got, err := pad.CoordinateOf(label)
		require.NoError(t, err)
		require.Equal(t, p, got, "CoordinateOf(%q)", label)
	}
	require.Equal(t, keypad.Position{Row: 3, Col: 0}, pad.Forbidden())
	require.True(t, pad.IsForbidden(keypad.Position{Row: 3, Col: 0}))
	require.Len(t, pad.Labels(), 11)
	require.Equal(t, keypad.KindNumeric, pad.Kind())
}

// TestDirectionalPad_Coordinates pins every button of the arrow keypad.
func TestDirectionalPad_Coordinates(t *testing.T) {
	pad := keypad.DirectionalPad()
	want := map[rune]keypad.Position{
		'^': {0, 1}, 'A': {0, 2},
		'<': {1, 0}, 'v': {1, 1}, '>': {1, 2},
	}
	for label, p := range want {
		got, err := pad.CoordinateOf(label)
		require.NoError(t, err)
		require.Equal(t, p, got, "CoordinateOf(%q)", label)
	}
	require.Equal(t, keypad.Position{Row: 0, Col: 0}, pad.Forbidden())
	require.Equal(t, []rune{'^', 'A', '<', 'v', '>'}, pad.Labels())
}

// TestCoordinateOf_Unknown checks the defensive UnknownButton failure.
func TestCoordinateOf_Unknown(t *testing.T) {
	_, err := keypad.NumericPad().CoordinateOf('^')
	require.ErrorIs(t, err, keypad.ErrUnknownButton)

	_, err = keypad.DirectionalPad().CoordinateOf('7')
	require.ErrorIs(t, err, keypad.ErrUnknownButton)

	// The gap itself is never a button.
	require.False(t, keypad.DirectionalPad().Has(keypad.Gap))
}

// TestLabelAt checks reverse lookup, bounds and the gap.
func TestLabelAt(t *testing.T) {
	pad := keypad.NumericPad()

	label, ok := pad.LabelAt(keypad.Position{Row: 1, Col: 1})
	require.True(t, ok)
	require.Equal(t, '5', label)

	invalid := []keypad.Position{{-1, 0}, {0, 3}, {4, 0}, {3, 0}}
	for _, p := range invalid {
		if _, ok := pad.LabelAt(p); ok {
			t.Errorf("LabelAt(%v) ok=true; want false", p)
		}
	}
}

// TestLayout_Dimensions checks grid size and bounds on both pads.
func TestLayout_Dimensions(t *testing.T) {
	num, dir := keypad.NumericPad(), keypad.DirectionalPad()
	require.Equal(t, 3, num.Width())
	require.Equal(t, 4, num.Height())
	require.Equal(t, 3, dir.Width())
	require.Equal(t, 2, dir.Height())

	require.True(t, num.InBounds(keypad.Position{Row: 3, Col: 2}))
	require.False(t, num.InBounds(keypad.Position{Row: 4, Col: 0}))
	require.False(t, dir.InBounds(keypad.Position{Row: 0, Col: 3}))
}

// TestForKind maps kinds to the shared layouts.
func TestForKind(t *testing.T) {
	l, err := keypad.ForKind(keypad.KindNumeric)
	require.NoError(t, err)
	require.Same(t, keypad.NumericPad(), l)

	l, err = keypad.ForKind(keypad.KindDirectional)
	require.NoError(t, err)
	require.Same(t, keypad.DirectionalPad(), l)

	_, err = keypad.ForKind(keypad.Kind(7))
	require.Error(t, err)
}

// TestMove_StepAndLabel checks unit steps and their arrow labels.
func TestMove_StepAndLabel(t *testing.T) {
	origin := keypad.Position{Row: 1, Col: 1}
	cases := []struct {
		m     keypad.Move
		want  keypad.Position
		label rune
	}{
		{keypad.Up, keypad.Position{Row: 0, Col: 1}, '^'},
		{keypad.Down, keypad.Position{Row: 2, Col: 1}, 'v'},
		{keypad.Left, keypad.Position{Row: 1, Col: 0}, '<'},
		{keypad.Right, keypad.Position{Row: 1, Col: 2}, '>'},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.m.Step(origin))
		require.Equal(t, tc.label, tc.m.Label())
		back, ok := keypad.MoveFor(tc.label)
		require.True(t, ok)
		require.Equal(t, tc.m, back)
	}
	_, ok := keypad.MoveFor('A')
	require.False(t, ok)
}

// TestDistance checks the Manhattan metric.
func TestDistance(t *testing.T) {
	require.Equal(t, 0, keypad.Distance(keypad.Position{Row: 2, Col: 2}, keypad.Position{Row: 2, Col: 2}))
	require.Equal(t, 5, keypad.Distance(keypad.Position{Row: 0, Col: 0}, keypad.Position{Row: 3, Col: 2}))
	require.Equal(t, 5, keypad.Distance(keypad.Position{Row: 3, Col: 2}, keypad.Position{Row: 0, Col: 0}))
}
