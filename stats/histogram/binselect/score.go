package binselect

import "math"

// Penalty Birgé–Rozenholc 惩罚项: d - 1 + log(d)^2.5
// d == 1 时 log(d) = 0, math.Pow(0, 2.5) = 0
func Penalty(d int) float64 {
	return float64(d-1) + math.Pow(math.Log(float64(d)), 2.5)
}

// Score 候选分箱数 d 的惩罚对数似然, 越大越好
// counts 至少有 d 个有效值, n 为样本量, binwidth = span / d
func Score(d, n int, counts []int, binwidth float64) float64 {
	norm := float64(n) * binwidth
	loglik := 0.0
	for _, c := range counts[:d] {
		if c > 0 { // 空箱不参与, 避免 log(0)
			cf := float64(c)
			loglik += cf * math.Log(cf/norm)
		}
	}
	return loglik - Penalty(d)
}
