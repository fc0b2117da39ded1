package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid_Contains(t *testing.T) {
	g := NewGrid(10, 10)

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{9, 9}, true},
		{Point{10, 5}, false},
		{Point{5, 10}, false},
		{Point{-1, 5}, false},
		{Point{5, -1}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, g.Contains(tt.p), "point %v", tt.p)
	}
}

func TestGrid_Center(t *testing.T) {
	assert.Equal(t, Point{5, 5}, NewGrid(10, 10).Center())
	assert.Equal(t, Point{9, 16}, NewGrid(18, 32).Center())
	assert.Equal(t, 100, NewGrid(10, 10).Cells())
}

func TestDirection_IsReverseOf(t *testing.T) {
	all := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for _, current := range all {
		for _, proposed := range all {
			want := proposed.X == -current.X && proposed.Y == -current.Y
			assert.Equal(t, want, proposed.IsReverseOf(current), "%s vs %s", proposed, current)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		parsed, ok := ParseDirection(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, parsed)
	}

	_, ok := ParseDirection("diagonal")
	assert.False(t, ok)
	assert.Equal(t, "none", Direction{}.String())
}
