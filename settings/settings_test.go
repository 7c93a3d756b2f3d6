package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// check settings object is initialised
func TestInitialiseSettings(t *testing.T) {
	tSettings := NewSettings()

	require.NotEmpty(t, tSettings.ClientName)
	require.NotEmpty(t, tSettings.Logger.Level)
	require.NotEmpty(t, tSettings.Logger.Type)
	require.NotEmpty(t, tSettings.UtxoPool.Type)
	require.Positive(t, tSettings.UtxoPool.InitialCapacity)
}

func TestDefaults(t *testing.T) {
	require.Equal(t, "fallback", getString("this_key_is_never_configured", "fallback"))
	require.Equal(t, 42, getInt("this_key_is_never_configured", 42))
	require.True(t, getBool("this_key_is_never_configured", true))
}
