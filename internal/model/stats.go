package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PriceStats 价格统计
type PriceStats struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Median  float64 `json:"median"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// CalculatePriceStats 计算价格统计，结果保留两位小数
func CalculatePriceStats(listings []Listing) PriceStats {
	if len(listings) == 0 {
		return PriceStats{}
	}

	prices := make([]decimal.Decimal, len(listings))
	sum := decimal.Zero
	for i, l := range listings {
		prices[i] = decimal.NewFromFloat(l.Price)
		sum = sum.Add(prices[i])
	}
	sort.Slice(prices, func(i, j int) bool { return prices[i].LessThan(prices[j]) })

	n := len(prices)
	median := prices[n/2]
	if n%2 == 0 {
		median = prices[n/2-1].Add(prices[n/2]).Div(decimal.NewFromInt(2))
	}
	average := sum.Div(decimal.NewFromInt(int64(n)))

	return PriceStats{
		Min:     round2(prices[0]),
		Max:     round2(prices[n-1]),
		Median:  round2(median),
		Average: round2(average),
		Count:   n,
	}
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
