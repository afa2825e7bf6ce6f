package batch_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/keypadchain/batch"
	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/paths"
)

var exampleCodes = []string{"029A", "980A", "179A", "456A", "379A"}

//----------------------------------------------------------------------------//
// Run
//----------------------------------------------------------------------------//

// TestRun_Example checks per-code results and the total at depth 2.
func TestRun_Example(t *testing.T) {
	rep, err := batch.Run(context.Background(), exampleCodes)
	require.NoError(t, err)
	require.Equal(t, uint64(126384), rep.Total)
	require.Equal(t, 2, rep.Depth)
	require.Equal(t, "lshape", rep.Strategy)
	require.NotEmpty(t, rep.RunID)

	require.Len(t, rep.Results, 5)
	require.Equal(t, batch.Result{Code: "029A", Value: 29, Presses: 68, Complexity: 1972}, rep.Results[0])
	require.Equal(t, batch.Result{Code: "379A", Value: 379, Presses: 64, Complexity: 24256}, rep.Results[4])
	require.Positive(t, rep.Cache.Entries)
}

// TestRun_Configurations checks every knob yields the same totals.
func TestRun_Configurations(t *testing.T) {
	cases := []struct {
		name string
		opts []batch.Option
		want uint64
	}{
		{"Depth25", []batch.Option{batch.WithDepth(25)}, 154115708116294},
		{"SharedCache", []batch.Option{batch.WithDepth(25), batch.WithSharedCache()}, 154115708116294},
		{"Unbounded", []batch.Option{batch.WithDepth(25), batch.WithWorkers(0)}, 154115708116294},
		{"SingleWorker", []batch.Option{batch.WithWorkers(1)}, 126384},
		{"Exhaustive", []batch.Option{batch.WithStrategy(paths.Exhaustive)}, 126384},
		{"Depth0", []batch.Option{batch.WithDepth(0)}, 25392},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := batch.Run(context.Background(), exampleCodes, tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.want, rep.Total)
		})
	}
}

// TestRun_SharedCacheIsSmaller checks one cache holds fewer entries than
// the sum of per-code caches.
func TestRun_SharedCacheIsSmaller(t *testing.T) {
	own, err := batch.Run(context.Background(), exampleCodes, batch.WithDepth(25))
	require.NoError(t, err)
	shared, err := batch.Run(context.Background(), exampleCodes, batch.WithDepth(25), batch.WithSharedCache())
	require.NoError(t, err)
	require.Less(t, shared.Cache.Entries, own.Cache.Entries)
	require.LessOrEqual(t, shared.Cache.Entries, 25*25+121)
}

// TestRun_Errors checks that failures are atomic.
func TestRun_Errors(t *testing.T) {
	_, err := batch.Run(context.Background(), nil)
	require.ErrorIs(t, err, batch.ErrEmptyInput)

	_, err = batch.Run(context.Background(), []string{"029A", "AAA"})
	require.ErrorIs(t, err, batch.ErrNoDigits)

	rep, err := batch.Run(context.Background(), []string{"029A", "12<A"})
	require.ErrorIs(t, err, chain.ErrInvalidCode)
	require.Nil(t, rep)

	_, err = batch.Run(context.Background(), exampleCodes, batch.WithDepth(-1))
	require.ErrorIs(t, err, batch.ErrOptionViolation)
}

// TestRun_Canceled checks a canceled context aborts the run.
func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := batch.Run(ctx, exampleCodes)
	require.ErrorIs(t, err, context.Canceled)
}

// TestRun_Logging checks the run identifier tags every record.
func TestRun_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	_, err := batch.Run(context.Background(), exampleCodes,
		batch.WithLogger(logger), batch.WithRunID("run-1"), batch.WithWorkers(1))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(exampleCodes)+1)
	for _, line := range lines {
		require.Contains(t, line, `"run":"run-1"`)
	}
	require.Contains(t, lines[len(lines)-1], `"total":126384`)
}

//----------------------------------------------------------------------------//
// Parsing
//----------------------------------------------------------------------------//

// TestNumericValue covers leading zeros and failures.
func TestNumericValue(t *testing.T) {
	cases := []struct {
		code string
		want uint64
	}{
		{"029A", 29},
		{"980A", 980},
		{"000A", 0},
		{"1A2", 12},
	}
	for _, tc := range cases {
		got, err := batch.NumericValue(tc.code)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, tc.code)
	}

	_, err := batch.NumericValue("A")
	require.ErrorIs(t, err, batch.ErrNoDigits)

	_, err = batch.NumericValue("99999999999999999999999A")
	require.Error(t, err)
}

// TestParseCodes skips blanks and comments.
func TestParseCodes(t *testing.T) {
	in := "# door codes\n029A\n\n  980A  \n179A\n"
	got, err := batch.ParseCodes(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"029A", "980A", "179A"}, got)

	_, err = batch.ParseCodes(strings.NewReader("\n# nothing\n"))
	require.ErrorIs(t, err, batch.ErrEmptyInput)
}

//----------------------------------------------------------------------------//
// Report encoding
//----------------------------------------------------------------------------//

// TestReport_Encode checks every format carries the results.
func TestReport_Encode(t *testing.T) {
	rep, err := batch.Run(context.Background(), exampleCodes, batch.WithRunID("r"))
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, rep.Encode(&text, batch.FormatText))
	require.Contains(t, text.String(), "COMPLEXITY")
	require.Contains(t, text.String(), "24256")
	require.Contains(t, text.String(), "total: 126384 (depth 2, lshape, run r)")

	var js bytes.Buffer
	require.NoError(t, rep.Encode(&js, batch.FormatJSON))
	var fromJSON batch.Report
	require.NoError(t, json.Unmarshal(js.Bytes(), &fromJSON))
	require.Equal(t, *rep, fromJSON)

	var ym bytes.Buffer
	require.NoError(t, rep.Encode(&ym, batch.FormatYAML))
	var fromYAML batch.Report
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &fromYAML))
	require.Equal(t, *rep, fromYAML)

	require.ErrorIs(t, rep.Encode(&text, batch.Format(9)), batch.ErrUnknownFormat)
}

// TestParseFormat maps names and rejects unknown ones.
func TestParseFormat(t *testing.T) {
	for name, want := range map[string]batch.Format{"": batch.FormatText, "JSON": batch.FormatJSON, "yml": batch.FormatYAML} {
		got, err := batch.ParseFormat(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := batch.ParseFormat("xml")
	require.ErrorIs(t, err, batch.ErrUnknownFormat)
}
