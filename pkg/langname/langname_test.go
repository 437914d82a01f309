package langname

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameSelfDescribed(t *testing.T) {
	require.Equal(t, "Français", Name("fr"))
	require.Equal(t, "English", Name("en"))
	require.Equal(t, "Español", Name("es"))
}

func TestNameUnknownCodeDegradesToUpperCase(t *testing.T) {
	require.Equal(t, "ZZ", Name("zz"))
	require.Equal(t, "NOT A CODE", Name("not a code"))
}
