package binselect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPenalty(t *testing.T) {
	assert.Equal(t, 0.0, Penalty(1))
	assert.InDelta(t, 2+math.Pow(math.Log(3), 2.5), Penalty(3), 1e-12)
	assert.InDelta(t, 9+math.Pow(math.Log(10), 2.5), Penalty(10), 1e-12)
	// 惩罚项随 d 单调递增
	for d := 2; d <= MaxBinsCap; d++ {
		assert.Greater(t, Penalty(d), Penalty(d-1))
	}
}

func TestScoreFlat(t *testing.T) {
	// 每箱密度恰为 1, 对数似然为 0, 只剩惩罚
	got := Score(3, 6, []int{2, 2, 2}, 1.0/3)
	assert.InDelta(t, -Penalty(3), got, 1e-12)
}

func TestScoreSkipsEmptyBins(t *testing.T) {
	got := Score(3, 6, []int{4, 0, 2}, 1)
	want := 4*math.Log(4.0/6) + 2*math.Log(2.0/6) - Penalty(3)
	assert.InDelta(t, want, got, 1e-12)
	assert.False(t, math.IsNaN(got))
	assert.False(t, math.IsInf(got, 0))
}

func TestScoreIgnoresTail(t *testing.T) {
	// 只读取前 d 个计数
	a := Score(3, 6, []int{1, 2, 3}, 0.5)
	b := Score(3, 6, []int{1, 2, 3, 99, 42}, 0.5)
	assert.Equal(t, a, b)
}
