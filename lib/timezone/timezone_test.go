package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseVoteTime(t *testing.T) {
	parsed, err := ParseVoteTime("6/26/2025 2:45 PM")
	require.NoError(t, err)
	require.Equal(t, 2025, parsed.Year())
	require.Equal(t, time.June, parsed.Month())
	require.Equal(t, 26, parsed.Day())
	require.Equal(t, 14, parsed.Hour())
	require.Equal(t, Location, parsed.Location())

	parsed, err = ParseVoteTime("6/26/2025")
	require.NoError(t, err)
	require.Equal(t, 0, parsed.Hour())

	_, err = ParseVoteTime("June 26th")
	require.Error(t, err)
}
