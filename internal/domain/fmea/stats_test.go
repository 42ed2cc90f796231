package fmea_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
)

func TestComputeStatisticsEmptyList(t *testing.T) {
	stats := fmea.ComputeStatistics(nil, fmea.DefaultThresholds())

	assert.Zero(t, stats.TotalItems)
	assert.Zero(t, stats.AverageRPN)
	assert.Zero(t, stats.MaxRPN)
	assert.Empty(t, stats.ComponentBreakdown)
	// The severity histogram always carries all ten buckets.
	require.Len(t, stats.SeverityDistribution, 10)
	assert.Zero(t, stats.SeverityDistribution["5"])
}

func TestComputeStatisticsRiskBands(t *testing.T) {
	items := []fmea.Item{
		{Component: "A", Severity: 9, RPN: 250}, // high
		{Component: "A", Severity: 7, RPN: 108}, // medium
		{Component: "B", Severity: 3, RPN: 40},  // low
	}

	stats := fmea.ComputeStatistics(items, fmea.DefaultThresholds())

	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 1, stats.HighRiskItems)
	assert.Equal(t, 1, stats.MediumRiskItems)
	assert.Equal(t, 1, stats.LowRiskItems)
	assert.Equal(t, 250, stats.MaxRPN)
	assert.Equal(t, 133, stats.AverageRPN) // round(398/3)

	a := stats.ComponentBreakdown["A"]
	assert.Equal(t, 2, a.Count)
	assert.Equal(t, 358, a.TotalRPN)
	assert.Equal(t, 179, a.AverageRPN)
	assert.Equal(t, 1, a.HighRiskCount)

	assert.Equal(t, 1, stats.SeverityDistribution["9"])
	assert.Equal(t, 1, stats.SeverityDistribution["7"])
	assert.Equal(t, 1, stats.SeverityDistribution["3"])
}

func TestClassifyBands(t *testing.T) {
	th := fmea.DefaultThresholds()

	assert.Equal(t, fmea.RiskLow, th.Classify(40))
	assert.Equal(t, fmea.RiskMedium, th.Classify(108))
	assert.Equal(t, fmea.RiskHigh, th.Classify(200))
	assert.Equal(t, fmea.RiskCritical, th.Classify(300))
	assert.Equal(t, fmea.RiskMedium, th.Classify(199))
}
