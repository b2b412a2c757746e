package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSetsGlobalLevel(t *testing.T) {
	require.NoError(t, Init(&Config{Level: "warn"}))
	assert.Equal(t, zerolog.WarnLevel, GetLogger().GetLevel())
}

func TestInitNilConfigUsesDefaults(t *testing.T) {
	require.NoError(t, Init(nil))
	assert.Equal(t, zerolog.InfoLevel, GetLogger().GetLevel())
}

func TestInitDebugOverridesLevel(t *testing.T) {
	require.NoError(t, Init(&Config{Level: "error", Debug: true}))
	assert.Equal(t, zerolog.DebugLevel, GetLogger().GetLevel())
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Init(&Config{Level: "loud"}))
}

func TestSetLevelAndSetDebug(t *testing.T) {
	require.NoError(t, Init(&Config{Level: "info"}))

	SetLevel(zerolog.ErrorLevel)
	assert.Equal(t, zerolog.ErrorLevel, GetLogger().GetLevel())

	SetDebug(true)
	assert.Equal(t, zerolog.DebugLevel, GetLogger().GetLevel())

	SetDebug(false)
	assert.Equal(t, zerolog.InfoLevel, GetLogger().GetLevel())
}

func TestWithComponentTagsEntries(t *testing.T) {
	require.NoError(t, Init(&Config{Level: "info"}))

	var buf bytes.Buffer

	log := WithComponent("core").Output(&buf)
	log.Info().Msg("ready")

	assert.Contains(t, buf.String(), `"component":"core"`)
	assert.Contains(t, buf.String(), `"message":"ready"`)
}

func TestPackageLevelEventsHonorLevel(t *testing.T) {
	require.NoError(t, Init(&Config{Level: "warn"}))

	// Below the configured level the event is disabled and never emitted.
	assert.False(t, Debug().Enabled())
	assert.False(t, Info().Enabled())
	assert.True(t, Warn().Enabled())
	assert.True(t, Error().Enabled())
}

func TestWithBuildsChildContext(t *testing.T) {
	require.NoError(t, Init(&Config{Level: "info"}))

	var buf bytes.Buffer

	log := With().Str("service", "core").Logger().Output(&buf)
	log.Info().Msg("started")

	assert.Contains(t, buf.String(), `"service":"core"`)
}
