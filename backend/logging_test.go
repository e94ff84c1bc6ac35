package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	assert.Error(t, SetupLogging("loud", false, nil))

	var buf bytes.Buffer
	require.NoError(t, SetupLogging("warn", false, &buf))
	log.Info().Msg("hidden")
	log.Warn().Str("move", "(9,9)").Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"move":"(9,9)"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
