package sample

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Span   float64 `json:"span"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// Describe 基本描述统计, 样本量 < 2 时标准差记为 0
func Describe(x []float64) Summary {
	s := Summary{N: len(x)}
	if s.N == 0 {
		return s
	}
	s.Min, s.Max = floats.Min(x), floats.Max(x)
	s.Span = s.Max - s.Min
	if s.N == 1 {
		s.Mean = x[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
	return s
}
