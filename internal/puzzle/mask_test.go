package puzzle

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func naiveBitCount(i int) (count int) {
	s := strconv.FormatInt(int64(i), 2)
	for _, char := range s {
		if char == '1' {
			count += 1
		}
	}
	return
}

func TestBitCount(t *testing.T) {
	for i := range 0xFFFF {
		require.Equal(t, naiveBitCount(i), mask(i).bitCount())
	}
}

func TestMaskIndexesRoundTrip(t *testing.T) {
	require.Equal(t, []int{0, 2, 5}, mask(0b100101).indexes())
	require.Equal(t, mask(0b100101), maskOf([]int{0, 2, 5}))
	require.Empty(t, mask(0).indexes())
	require.Equal(t, mask(0), maskOf([]int{-1, 16}))
}
