package legislature

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{Session: "2025"}.WithDefaults()

	require.NoError(t, cfg.Validate())
	require.Equal(t, "https://www.ncleg.gov", cfg.BaseURL)
	require.Equal(t, "H", cfg.Chamber)
	require.Equal(t, DefaultKeywords, cfg.Keywords)
	require.Equal(t, DefaultCountableMotions, cfg.CountableMotions)
	require.Equal(t, 6*time.Hour, cfg.CacheTTL())
	require.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestConfigOverridesSurvive(t *testing.T) {
	cfg := Config{
		Session:         "2023",
		Chamber:         "S",
		Keywords:        []string{"CANCER"},
		CacheTTLMinutes: 10,
	}.WithDefaults()

	require.NoError(t, cfg.Validate())
	require.Equal(t, "S", cfg.Chamber)
	require.Equal(t, []string{"CANCER"}, cfg.Keywords)
	require.Equal(t, 10*time.Minute, cfg.CacheTTL())
}

func TestConfigValidate(t *testing.T) {
	require.Error(t, Config{}.WithDefaults().Validate())
	require.Error(t, Config{Session: "2025", Chamber: "X"}.Validate())
}
