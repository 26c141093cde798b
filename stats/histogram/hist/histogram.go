package hist

import "histopt/stats/histogram/binselect"

// HistogramBin 每个分箱的结构, 区间为 (From, To], 第一个箱包含 From
type HistogramBin struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

// Hist 按指定 bins 对 data 做等宽分箱统计, 含 NaN / Inf 时返回 nil
// 全部取值相同(或分箱宽度下溢为 0)时退化为单箱 [min, max]
func Hist(data []float64, bins int) []HistogramBin {
	if len(data) == 0 || bins <= 0 {
		return nil
	}

	// 1. 求最小值最大值
	minV, maxV, err := binselect.Bounds(data)
	if err != nil {
		return nil
	}

	// 2. 分箱宽度与计数
	width := (maxV - minV) / float64(bins)
	if !(width > 0) {
		return []HistogramBin{{From: minV, To: maxV, Count: len(data)}}
	}
	counts := binselect.BinCounts(data, minV, width, bins, nil)
	return edges(minV, maxV, width, counts)
}

// Optimal 用惩罚似然准则选择分箱数, 再还原各箱边界
func Optimal(data []float64) ([]HistogramBin, error) {
	if len(data) == 0 {
		return nil, nil
	}
	res, err := binselect.ChooseBinCount(data)
	if err != nil {
		return nil, err
	}
	return FromResult(res), nil
}

// FromResult 由分箱结果还原各箱边界
func FromResult(res binselect.Result) []HistogramBin {
	if res.Degenerate() {
		return []HistogramBin{{From: res.Min, To: res.Max, Count: res.Counts[0]}}
	}
	return edges(res.Min, res.Max, res.BinWidth, res.Counts)
}

func edges(minV, maxV, width float64, counts []int) []HistogramBin {
	result := make([]HistogramBin, len(counts))
	for i, c := range counts {
		result[i] = HistogramBin{
			From:  minV + float64(i)*width,
			To:    minV + float64(i+1)*width,
			Count: c,
		}
	}
	// 最后一个箱的右端点对齐最大值, 消除累积误差
	result[len(result)-1].To = maxV
	return result
}
