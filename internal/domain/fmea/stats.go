package fmea

import (
	"math"
	"strconv"
)

// ComponentStats aggregates items sharing a component name.
type ComponentStats struct {
	Count         int `json:"count"`
	TotalRPN      int `json:"totalRPN"`
	AverageRPN    int `json:"averageRPN"`
	HighRiskCount int `json:"highRiskCount"`
}

// Statistics summarizes an item list. Risk bands come from the threshold
// table: high is rpn >= High, medium is Medium <= rpn < High, low is
// rpn < Medium.
type Statistics struct {
	TotalItems           int                       `json:"totalItems"`
	HighRiskItems        int                       `json:"highRiskItems"`
	MediumRiskItems      int                       `json:"mediumRiskItems"`
	LowRiskItems         int                       `json:"lowRiskItems"`
	AverageRPN           int                       `json:"averageRPN"`
	MaxRPN               int                       `json:"maxRPN"`
	ComponentBreakdown   map[string]ComponentStats `json:"componentBreakdown"`
	SeverityDistribution map[string]int            `json:"severityDistribution"`
}

// ComputeStatistics summarizes any item list against a threshold table.
// Safe on an empty list: averages and maxima are zero, never a division
// by zero.
func ComputeStatistics(items []Item, thresholds RiskThresholds) Statistics {
	stats := Statistics{
		TotalItems:           len(items),
		ComponentBreakdown:   make(map[string]ComponentStats),
		SeverityDistribution: make(map[string]int),
	}
	for i := 1; i <= 10; i++ {
		stats.SeverityDistribution[strconv.Itoa(i)] = 0
	}

	totalRPN := 0
	for _, item := range items {
		totalRPN += item.RPN
		if item.RPN > stats.MaxRPN {
			stats.MaxRPN = item.RPN
		}

		switch {
		case item.RPN >= thresholds.High:
			stats.HighRiskItems++
		case item.RPN >= thresholds.Medium:
			stats.MediumRiskItems++
		default:
			stats.LowRiskItems++
		}

		if item.Severity >= 1 && item.Severity <= 10 {
			stats.SeverityDistribution[strconv.Itoa(item.Severity)]++
		}

		cs := stats.ComponentBreakdown[item.Component]
		cs.Count++
		cs.TotalRPN += item.RPN
		if item.RPN >= thresholds.High {
			cs.HighRiskCount++
		}
		stats.ComponentBreakdown[item.Component] = cs
	}

	if len(items) > 0 {
		stats.AverageRPN = int(math.Round(float64(totalRPN) / float64(len(items))))
	}
	for name, cs := range stats.ComponentBreakdown {
		cs.AverageRPN = int(math.Round(float64(cs.TotalRPN) / float64(cs.Count)))
		stats.ComponentBreakdown[name] = cs
	}

	return stats
}
