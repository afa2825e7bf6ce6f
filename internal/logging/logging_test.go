package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/internal/logging"
)

func TestLevel(t *testing.T) {
	cases := map[int]zerolog.Level{
		-1: zerolog.WarnLevel,
		0:  zerolog.WarnLevel,
		1:  zerolog.InfoLevel,
		2:  zerolog.DebugLevel,
		3:  zerolog.TraceLevel,
		9:  zerolog.TraceLevel,
	}
	for v, want := range cases {
		require.Equal(t, want, logging.Level(v), "verbosity %d", v)
	}
}

func TestSetup_FiltersByVerbosity(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Setup(0, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestFor_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	logging.Setup(1, &buf)
	l := logging.For("solve")
	l.Info().Msg("hello")
	require.Contains(t, buf.String(), "component=solve")
}
