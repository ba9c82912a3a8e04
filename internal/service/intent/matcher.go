package intent

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultCutoff 模糊匹配默认相似度下限
const DefaultCutoff = 0.6

// CloseMatches 返回 possibilities 中与 word 最相似的至多 n 个候选
// 相似度按字符序列计算 2*M/T，低于 cutoff 的候选被丢弃
// 结果按相似度降序，相似度相同时字典序大的在前
func CloseMatches(word string, possibilities []string, n int, cutoff float64) []string {
	if n <= 0 || cutoff < 0 || cutoff > 1 {
		return nil
	}

	type scored struct {
		score float64
		value string
	}

	m := difflib.NewMatcher(nil, nil)
	m.SetSeq2(chars(word))

	var results []scored
	for _, x := range possibilities {
		m.SetSeq1(chars(x))
		// 先用上界快速淘汰
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		if ratio := m.Ratio(); ratio >= cutoff {
			results = append(results, scored{score: ratio, value: x})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].value > results[j].value
	})
	if len(results) > n {
		results = results[:n]
	}

	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.value
	}
	return out
}

// Ratio 两个字符串的相似度，取值 [0, 1]
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

func chars(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}
