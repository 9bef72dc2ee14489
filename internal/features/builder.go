// Package features derives fixed-width numeric feature vectors from game
// history. All functions are pure: identical inputs yield identical vectors.
package features

import (
	"fmt"
	"math"
	"sort"

	"github.com/yourusername/courtside/internal/models"
)

// DefaultMinGames is the minimum history length for a stable feature vector.
const DefaultMinGames = 5

// Rolling window sizes.
const (
	windowShort  = 5
	windowMedium = 10
)

// Recency weights ramp linearly from oldest to newest game.
const (
	recencyWeightMin = 0.5
	recencyWeightMax = 1.0
)

// Feature names, used by model artifacts to reference vector entries.
const (
	FeatSeasonAverage   = "avg_pts_season"
	FeatLast10Average   = "avg_pts_last10"
	FeatLast5Average    = "avg_pts_last5"
	FeatStdDev          = "std_pts"
	FeatCoefVariation   = "cv_pts"
	FeatPointsPerMinute = "pts_per_min"
	FeatSeasonMargin    = "margin_season"
	FeatLast10Margin    = "margin_last10"
	FeatLast5Margin     = "margin_last5"
	FeatOverRateSeason  = "over_rate_season"
	FeatOverRateLast10  = "over_rate_last10"
	FeatOverRateLast5   = "over_rate_last5"
	FeatTrendSlope      = "trend_slope"
	FeatStreak          = "streak"
	FeatHomeAwaySplit   = "home_away_split"
)

// Vector is a fixed ordered set of named numeric features computed from a
// game sequence and one threshold. Recomputed fresh per request.
type Vector struct {
	Threshold  float64
	SampleSize int

	SeasonAverage   float64
	Last10Average   float64
	Last5Average    float64
	StdDev          float64
	CoefVariation   float64
	PointsPerMinute float64
	SeasonMargin    float64
	Last10Margin    float64
	Last5Margin     float64
	OverRateSeason  float64
	OverRateLast10  float64
	OverRateLast5   float64
	TrendSlope      float64
	Streak          float64
	HomeAwaySplit   float64
}

// Map returns the features keyed by name for model artifacts.
func (v *Vector) Map() map[string]float64 {
	return map[string]float64{
		FeatSeasonAverage:   v.SeasonAverage,
		FeatLast10Average:   v.Last10Average,
		FeatLast5Average:    v.Last5Average,
		FeatStdDev:          v.StdDev,
		FeatCoefVariation:   v.CoefVariation,
		FeatPointsPerMinute: v.PointsPerMinute,
		FeatSeasonMargin:    v.SeasonMargin,
		FeatLast10Margin:    v.Last10Margin,
		FeatLast5Margin:     v.Last5Margin,
		FeatOverRateSeason:  v.OverRateSeason,
		FeatOverRateLast10:  v.OverRateLast10,
		FeatOverRateLast5:   v.OverRateLast5,
		FeatTrendSlope:      v.TrendSlope,
		FeatStreak:          v.Streak,
		FeatHomeAwaySplit:   v.HomeAwaySplit,
	}
}

// Build computes the feature vector for the given game history and threshold.
// Returns ErrInsufficientData when fewer than minGames games are available.
func Build(games []models.GameRecord, threshold float64, minGames int) (*Vector, error) {
	if minGames <= 0 {
		minGames = DefaultMinGames
	}
	if len(games) < minGames {
		return nil, fmt.Errorf("%w: have %d games, need %d", models.ErrInsufficientData, len(games), minGames)
	}

	pts := make([]float64, len(games))
	for i, g := range games {
		pts[i] = g.Points
	}

	v := &Vector{
		Threshold:  threshold,
		SampleSize: len(games),
	}

	v.SeasonAverage = mean(pts)
	v.Last10Average = mean(tail(pts, windowMedium))
	v.Last5Average = mean(tail(pts, windowShort))
	v.StdDev = stddev(pts, v.SeasonAverage)
	if v.SeasonAverage != 0 {
		v.CoefVariation = v.StdDev / v.SeasonAverage
	}

	var totalPts, totalMin float64
	for _, g := range games {
		totalPts += g.Points
		totalMin += g.Minutes
	}
	if totalMin > 0 {
		v.PointsPerMinute = totalPts / totalMin
	}

	v.SeasonMargin = v.SeasonAverage - threshold
	v.Last10Margin = v.Last10Average - threshold
	v.Last5Margin = v.Last5Average - threshold

	v.OverRateSeason = overRate(pts, threshold)
	v.OverRateLast10 = overRate(tail(pts, windowMedium), threshold)
	v.OverRateLast5 = overRate(tail(pts, windowShort), threshold)

	v.TrendSlope = weightedSlope(pts)
	v.Streak = float64(streak(pts, threshold))
	v.HomeAwaySplit = homeAwaySplit(games)

	return v, nil
}

// EmpiricalOverRate is the fraction of past games exceeding the threshold,
// used as the fallback prediction below the minimum sample size.
func EmpiricalOverRate(games []models.GameRecord, threshold float64) float64 {
	if len(games) == 0 {
		return 0
	}
	pts := make([]float64, len(games))
	for i, g := range games {
		pts[i] = g.Points
	}
	return overRate(pts, threshold)
}

// PointsQuantile returns the q-quantile of scored points using linear
// interpolation between order statistics.
func PointsQuantile(games []models.GameRecord, q float64) float64 {
	if len(games) == 0 {
		return 0
	}
	pts := make([]float64, len(games))
	for i, g := range games {
		pts[i] = g.Points
	}
	sort.Float64s(pts)

	if q <= 0 {
		return pts[0]
	}
	if q >= 1 {
		return pts[len(pts)-1]
	}
	pos := q * float64(len(pts)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return pts[lo]
	}
	frac := pos - float64(lo)
	return pts[lo]*(1-frac) + pts[hi]*frac
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stddev(xs []float64, m float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

func tail(xs []float64, n int) []float64 {
	if n >= len(xs) {
		return xs
	}
	return xs[len(xs)-n:]
}

func overRate(xs []float64, threshold float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var over int
	for _, x := range xs {
		if x > threshold {
			over++
		}
	}
	return float64(over) / float64(len(xs))
}

// weightedSlope fits a weighted linear regression of points on game index,
// with weights ramping linearly toward the most recent games, and returns
// the slope in points per game.
func weightedSlope(pts []float64) float64 {
	n := len(pts)
	if n < 2 {
		return 0
	}

	weights := make([]float64, n)
	for i := range weights {
		weights[i] = recencyWeightMin + (recencyWeightMax-recencyWeightMin)*float64(i)/float64(n-1)
	}

	var wSum, xMean, yMean float64
	for i, w := range weights {
		wSum += w
		xMean += w * float64(i)
		yMean += w * pts[i]
	}
	xMean /= wSum
	yMean /= wSum

	var num, den float64
	for i, w := range weights {
		dx := float64(i) - xMean
		num += w * dx * (pts[i] - yMean)
		den += w * dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// streak counts consecutive overs (positive) or unders (negative) ending at
// the most recent game.
func streak(pts []float64, threshold float64) int {
	current := 0
	for _, p := range pts {
		if p > threshold {
			if current >= 0 {
				current++
			} else {
				current = 1
			}
		} else {
			if current <= 0 {
				current--
			} else {
				current = -1
			}
		}
	}
	return current
}

// homeAwaySplit is home average minus away average; zero when either side
// has no games.
func homeAwaySplit(games []models.GameRecord) float64 {
	var homeSum, awaySum float64
	var homeN, awayN int
	for _, g := range games {
		if g.Away {
			awaySum += g.Points
			awayN++
		} else {
			homeSum += g.Points
			homeN++
		}
	}
	if homeN == 0 || awayN == 0 {
		return 0
	}
	return homeSum/float64(homeN) - awaySum/float64(awayN)
}
