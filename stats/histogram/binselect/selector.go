// Package binselect 按惩罚最大似然准则选择规则直方图的最优分箱数
package binselect

import (
	"fmt"
	"math"

	"histopt/infra/errorx"
	"histopt/infra/errorx/errCode"
	"histopt/infra/observe/log/staticLog"

	"gonum.org/v1/gonum/floats"
)

const (
	MinBins    = 3
	MaxBinsCap = 250
)

// Candidate 一次候选分箱的评估结果
type Candidate struct {
	Bins     int     `json:"bins"`
	BinWidth float64 `json:"bin_width"`
	Score    float64 `json:"score"`
}

// Result 最优分箱. Counts 长度恰为 Bins
// 样本量 <= 1, 全部取值相同, 或跨度小到分箱宽度下溢为 0 时 Bins = 1, Counts = [n], BinWidth = 0, Score = 0
type Result struct {
	Bins     int
	Counts   []int
	Min      float64
	Max      float64
	BinWidth float64
	Score    float64
}

// Degenerate 未经搜索直接退化为单箱
func (r Result) Degenerate() bool {
	return r.Bins == 1 && r.BinWidth == 0
}

// Selector 持有可复用的计数缓冲, 非并发安全
type Selector struct {
	buf []int
}

func NewSelector() *Selector {
	return &Selector{buf: make([]int, MaxBinsCap)}
}

// ChooseBinCount 用新的 Selector 选择最优分箱
func ChooseBinCount(sample []float64) (Result, error) {
	return NewSelector().Choose(sample)
}

// Trace 返回所有候选的评分, 按分箱数升序
func Trace(sample []float64) ([]Candidate, error) {
	return NewSelector().Trace(sample)
}

// SearchRange 候选分箱区间 [3, max(3, min(250, ceil(n/log(n))))]
func SearchRange(n int) (dMin, dMax int) {
	if n < 2 {
		return MinBins, MinBins
	}
	dMax = int(math.Ceil(float64(n) / math.Log(float64(n))))
	return MinBins, max(MinBins, min(MaxBinsCap, dMax))
}

// BinIndex 返回 x 所在分箱的下标(0 起), 即 clamp(ceil((x-xMin)/binwidth), 1, d) - 1
// x == xMin 落在第一个箱, x == xMax 落在最后一个箱
func BinIndex(x, xMin, binwidth float64, d int) int {
	idx := int(math.Ceil((x - xMin) / binwidth))
	if idx < 1 {
		idx = 1
	}
	if idx > d {
		idx = d
	}
	return idx - 1
}

// BinCounts 统计每箱样本数, dst 容量足够时复用
func BinCounts(sample []float64, xMin, binwidth float64, d int, dst []int) []int {
	if cap(dst) < d {
		dst = make([]int, d)
	}
	dst = dst[:d]
	clear(dst)
	for _, x := range sample {
		dst[BinIndex(x, xMin, binwidth, d)]++
	}
	return dst
}

// Choose 在候选区间内暴力搜索得分最高的分箱数, 平分时取较小的分箱数
func (s *Selector) Choose(sample []float64) (Result, error) {
	n := len(sample)
	xMin, xMax, err := Bounds(sample)
	if err != nil {
		return Result{}, err
	}
	if collapsed(n, xMax-xMin) {
		staticLog.Log.Debugf("binselect: degenerate sample n=%d span=%g, single bin", n, xMax-xMin)
		return Result{Bins: 1, Counts: []int{n}, Min: xMin, Max: xMax}, nil
	}

	best := s.search(sample, xMin, xMax-xMin, nil)

	// 按最优分箱重新统计, 结果不共享内部缓冲
	counts := BinCounts(sample, xMin, best.BinWidth, best.Bins, nil)
	staticLog.Log.Debugf("binselect: n=%d bins=%d binwidth=%g score=%g", n, best.Bins, best.BinWidth, best.Score)
	return Result{
		Bins:     best.Bins,
		Counts:   counts,
		Min:      xMin,
		Max:      xMax,
		BinWidth: best.BinWidth,
		Score:    best.Score,
	}, nil
}

// Trace 逐个返回候选评分; 退化样本没有候选, 返回 nil
func (s *Selector) Trace(sample []float64) ([]Candidate, error) {
	xMin, xMax, err := Bounds(sample)
	if err != nil {
		return nil, err
	}
	if collapsed(len(sample), xMax-xMin) {
		return nil, nil
	}
	dMin, dMax := SearchRange(len(sample))
	out := make([]Candidate, 0, dMax-dMin+1)
	s.search(sample, xMin, xMax-xMin, func(c Candidate) {
		out = append(out, c)
	})
	return out, nil
}

func (s *Selector) search(sample []float64, xMin, span float64, visit func(Candidate)) Candidate {
	n := len(sample)
	dMin, dMax := SearchRange(n)
	best := Candidate{Score: math.Inf(-1)}
	for d := dMin; d <= dMax; d++ {
		binwidth := span / float64(d)
		s.buf = BinCounts(sample, xMin, binwidth, d, s.buf)
		c := Candidate{Bins: d, BinWidth: binwidth, Score: Score(d, n, s.buf, binwidth)}
		if visit != nil {
			visit(c)
		}
		if better(c, best) {
			best = c
		}
	}
	return best
}

// collapsed 样本量 <= 1, 或跨度为 0, 或跨度小到最细分箱宽度下溢为 0 时退化为单箱
func collapsed(n int, span float64) bool {
	if n <= 1 {
		return true
	}
	_, dMax := SearchRange(n)
	return !(span/float64(dMax) > 0)
}

// better 严格大于才替换, 平分时保留先出现(较小)的分箱数
func better(c, cur Candidate) bool {
	return c.Score > cur.Score
}

// bestOf 按分箱数升序的候选中取得分最高者
func bestOf(cands []Candidate) Candidate {
	best := Candidate{Score: math.Inf(-1)}
	for _, c := range cands {
		if better(c, best) {
			best = c
		}
	}
	return best
}

// Bounds 校验样本有限并返回最小最大值, 空样本返回 0, 0
func Bounds(sample []float64) (float64, float64, error) {
	if len(sample) == 0 {
		return 0, 0, nil
	}
	if floats.HasNaN(sample) {
		return 0, 0, errorx.New(errCode.INVALID_VALUE, "sample contains NaN")
	}
	xMin, xMax := floats.Min(sample), floats.Max(sample)
	if math.IsInf(xMin, 0) || math.IsInf(xMax, 0) {
		return 0, 0, errorx.New(errCode.INVALID_VALUE, "sample contains Inf")
	}
	if math.IsInf(xMax-xMin, 0) {
		return 0, 0, errorx.New(errCode.INVALID_VALUE, fmt.Sprintf("sample span overflows: [%g, %g]", xMin, xMax))
	}
	return xMin, xMax, nil
}
