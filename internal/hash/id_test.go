package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	require := require.New(t)

	require.Equal(xxhash.Sum64String("Quote"), ID("Quote"))
	require.Equal(ID("Quote"), ID("Quote"))
	require.NotEqual(ID("Quote"), ID("quote"))
	require.Equal(xxhash.Sum64([]byte(nil)), ID(""))
}
