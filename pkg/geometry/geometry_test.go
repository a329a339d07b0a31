package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Less(t *testing.T) {
	assert.True(t, NewPoint(0, 5).Less(NewPoint(1, 0)))
	assert.True(t, NewPoint(1, 0).Less(NewPoint(1, 1)))
	assert.False(t, NewPoint(1, 1).Less(NewPoint(1, 1)))
	assert.False(t, NewPoint(2, 0).Less(NewPoint(1, 9)))
}

func TestPoint_Transpose(t *testing.T) {
	assert.Equal(t, NewPoint(3, 1), NewPoint(1, 3).Transpose())
	assert.Equal(t, "(1, 3)", NewPoint(1, 3).String())
}

func TestRect_Size(t *testing.T) {
	r := NewRect(1, 2, 4, 7)
	assert.Equal(t, 5, r.Width())
	assert.Equal(t, 3, r.Height())
	assert.True(t, r.IsValid())
	assert.False(t, r.IsEmpty())

	assert.Equal(t, NewPoint(1, 2), r.TopLeft())
	assert.Equal(t, NewPoint(4, 7), r.BottomRight())

	assert.True(t, NewRect(1, 1, 1, 4).IsEmpty())
	assert.False(t, NewRect(2, 0, 1, 0).IsValid())
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(0, 0, 2, 3)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", NewPoint(0, 0), true},
		{"last inside", NewPoint(1, 2), true},
		{"bottom edge is exclusive", NewPoint(2, 0), false},
		{"right edge is exclusive", NewPoint(0, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}

	assert.True(t, r.ContainsRect(NewRect(0, 1, 2, 3)))
	assert.False(t, r.ContainsRect(NewRect(0, 1, 3, 3)))
}

func TestRect_OverlapsAndUnion(t *testing.T) {
	a := NewRect(0, 0, 2, 2)
	b := NewRect(1, 1, 3, 3)
	c := NewRect(2, 0, 3, 2)

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c), "touching rectangles do not overlap")
	assert.False(t, a.Overlaps(NewRect(0, 0, 0, 0)))
	assert.Equal(t, NewRect(0, 0, 3, 3), a.Union(b))
	assert.Equal(t, NewRect(1, 0, 3, 2), NewRect(0, 1, 2, 3).Transpose())
}
