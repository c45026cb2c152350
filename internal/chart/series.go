// Package chart generates the hazard-trend series consumed by the chart
// rendering collaborator. The core produces labeled daily counts; drawing
// is entirely external.
package chart

import (
	"math"
	"math/rand"
	"time"
)

// Windows supported by the trend chart, in days.
const (
	WindowWeek    = 7
	WindowMonth   = 30
	WindowQuarter = 90
)

// Series is a time-labeled set of daily counts, one slice per hazard
// category, all of equal length.
type Series struct {
	Labels            []string `json:"labels"`
	OilSpills         []int    `json:"oilSpills"`
	PlasticWaste      []int    `json:"plasticWaste"`
	ChemicalPollution []int    `json:"chemicalPollution"`
	MarineLife        []int    `json:"marineLife"`
}

// Generate builds the trailing series ending at now. Unknown window sizes
// normalize to the week view. Counts are drawn from the injected source
// with per-category bounds and a slow seasonal swing, so a fixed seed gives
// a reproducible series.
func Generate(now time.Time, days int, rng *rand.Rand) Series {
	switch days {
	case WindowWeek, WindowMonth, WindowQuarter:
	default:
		days = WindowWeek
	}

	s := Series{
		Labels:            make([]string, 0, days),
		OilSpills:         make([]int, 0, days),
		PlasticWaste:      make([]int, 0, days),
		ChemicalPollution: make([]int, 0, days),
		MarineLife:        make([]int, 0, days),
	}

	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		s.Labels = append(s.Labels, label(day, days))

		season := seasonFactor(day)
		s.OilSpills = append(s.OilSpills, scaled(rng, 15, 5, season))
		s.PlasticWaste = append(s.PlasticWaste, scaled(rng, 25, 15, season))
		s.ChemicalPollution = append(s.ChemicalPollution, scaled(rng, 8, 2, season))
		s.MarineLife = append(s.MarineLife, scaled(rng, 12, 8, season))
	}
	return s
}

// label formats a tick label for the window granularity: weekday for the
// week view, month+day for the month view, month+year beyond.
func label(day time.Time, days int) string {
	switch {
	case days <= WindowWeek:
		return day.Format("Mon")
	case days <= WindowMonth:
		return day.Format("Jan 2")
	default:
		return day.Format("Jan 06")
	}
}

// seasonFactor swings counts ±30% over roughly a half-year period.
func seasonFactor(day time.Time) float64 {
	unixDays := float64(day.Unix()) / 86400
	return math.Sin(unixDays*math.Pi/182.5)*0.3 + 1
}

func scaled(rng *rand.Rand, spread, floor int, season float64) int {
	return int(float64(rng.Intn(spread)+floor) * season)
}
