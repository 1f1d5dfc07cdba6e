package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestNextWrapsElevenByFour(t *testing.T) {
	p := New(seq(11), 4)
	var got []int
	for i := 0; i < 4; i++ {
		got = append(got, p.Index())
		p.Next()
	}
	assert.Equal(t, []int{0, 4, 8, 0}, got)
}

func TestNextFullCycleReturnsToZero(t *testing.T) {
	for l := 1; l <= 20; l++ {
		for size := 1; size <= 6; size++ {
			p := New(seq(l), size)
			pages := (l + size - 1) / size
			for i := 0; i < pages; i++ {
				p.Next()
			}
			require.Equal(t, 0, p.Index(), "L=%d P=%d", l, size)
		}
	}
}

func TestPreviousFromZero(t *testing.T) {
	cases := []struct{ l, size, want int }{
		{11, 4, 7},
		{8, 4, 4},
		{3, 4, 0},
		{4, 4, 0},
	}
	for _, tc := range cases {
		p := New(seq(tc.l), tc.size)
		p.Previous()
		assert.Equal(t, tc.want, p.Index(), "L=%d P=%d", tc.l, tc.size)
		assert.Equal(t, -1, p.Direction())
	}
}

func TestPageNeverOutOfBounds(t *testing.T) {
	p := New(seq(11), 4)
	p.Next()
	p.Next()
	assert.Equal(t, []int{8, 9, 10}, p.Page())

	p.Previous()
	assert.Equal(t, []int{4, 5, 6, 7}, p.Page())

	for i := 0; i < 50; i++ {
		if i%3 == 0 {
			p.Previous()
		} else {
			p.Next()
		}
		require.GreaterOrEqual(t, p.Index(), 0)
		require.Less(t, p.Index(), p.Len())
		require.LessOrEqual(t, len(p.Page()), 4)
	}
}

func TestJumpTo(t *testing.T) {
	p := New(seq(11), 4)
	p.JumpTo(2)
	assert.Equal(t, 8, p.Index())
	assert.Equal(t, 1, p.Direction())
	assert.Equal(t, 2, p.CurrentPage())

	p.JumpTo(0)
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, -1, p.Direction())

	p.JumpTo(0)
	assert.Equal(t, 0, p.Direction())

	p.JumpTo(99)
	assert.Equal(t, 8, p.Index())
	p.JumpTo(-3)
	assert.Equal(t, 0, p.Index())
}

func TestRestoreClamps(t *testing.T) {
	assert.Equal(t, 4, Restore(seq(11), 4, 4).Index())
	assert.Equal(t, 0, Restore(seq(11), 4, -2).Index())
	assert.Equal(t, 7, Restore(seq(11), 4, 42).Index())
	assert.Equal(t, 0, Restore[int](nil, 4, 3).Index())
}

func TestEmptyPager(t *testing.T) {
	p := New[string](nil, 3)
	p.Next()
	p.Previous()
	p.JumpTo(1)
	assert.Equal(t, 0, p.Index())
	assert.Empty(t, p.Page())
	assert.Equal(t, 0, p.PageCount())
}

func TestPageSizeFloor(t *testing.T) {
	p := New(seq(3), 0)
	assert.Equal(t, 1, p.PageSize())
	assert.Equal(t, 3, p.PageCount())
}
