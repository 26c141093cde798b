package sample

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// MaskNonFinite 剔除 NaN / Inf, 返回剩余样本及被剔除位置
func MaskNonFinite(x []float64) ([]float64, *bitset.BitSet) {
	dropped := bitset.New(uint(len(x)))
	out := make([]float64, 0, len(x))
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			dropped.Set(uint(i))
			continue
		}
		out = append(out, v)
	}
	return out, dropped
}
