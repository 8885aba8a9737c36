package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	require.Equal(t, ID("nw_chicken"), ID("nw_chicken"))
	require.NotEqual(t, ID("nw_chicken"), ID("nw_chicken2"))
	require.NotZero(t, ID("m13aa_area"))
}
