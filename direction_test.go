package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Right, Left},
		{Left, Right},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.Opposite())
			assert.Equal(t, tt.d, tt.want.Opposite())
		})
	}
}

func TestDirectionEncoding(t *testing.T) {
	// The constraints bitmask layout depends on this exact encoding.
	assert.Equal(t, Direction(0), Up)
	assert.Equal(t, Direction(1), Right)
	assert.Equal(t, Direction(2), Down)
	assert.Equal(t, Direction(3), Left)
}

func TestAddPosAndFromNeighbors(t *testing.T) {
	for _, d := range directions {
		x, y := 5, 5
		nx, ny := AddPos(x, y, d)
		assert.Equal(t, d, FromNeighbors(x, y, nx, ny))
	}
}
