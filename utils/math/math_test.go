package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivCeil(t *testing.T) {
	require.Equal(t, 3, DivCeil(9, 3))
	require.Equal(t, 4, DivCeil(10, 3))
	require.Equal(t, uint32(1), DivCeil(uint32(1), uint32(8)))
	require.Equal(t, uint32(0), DivCeil(uint32(0), uint32(8)))
}

func TestMinOf(t *testing.T) {
	require.Equal(t, 2, MinOf(2, 5))
	require.Equal(t, uint64(5), MinOf(uint64(7), uint64(5)))
}
