package slicest

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
	assert.Empty(t, Map([]int(nil), strconv.Itoa))
}

func TestMapX(t *testing.T) {
	got, err := MapX([]string{"1", "2"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	got, err = MapX([]string{"1", "x"}, strconv.Atoi)
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestMapXI_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := MapXI([]int{1, 2, 3}, func(i int, v int) (int, error) {
		calls++
		if i == 1 {
			return 0, boom
		}
		return v, nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}
