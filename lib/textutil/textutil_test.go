package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Rep. John A. Smith", "john a. smith"},
		{"Senator Jane Doe ", "jane doe"},
		{"  Erin   Paré", "erin paré"},
		{"John A. Smith", "john a. smith"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, NormalizeName(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeMotion(t *testing.T) {
	require.Equal(t, "SECOND READING", NormalizeMotion("Second  Reading"))
	require.Equal(t, "CONCUR", NormalizeMotion(" concur "))
}
