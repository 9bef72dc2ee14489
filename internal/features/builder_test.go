package features

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/courtside/internal/models"
)

func gamesFromPoints(pts ...float64) []models.GameRecord {
	games := make([]models.GameRecord, len(pts))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range pts {
		games[i] = models.GameRecord{
			Date:    base.AddDate(0, 0, i),
			Points:  p,
			Minutes: 32,
			Away:    i%2 == 1,
		}
	}
	return games
}

func TestBuildInsufficientData(t *testing.T) {
	games := gamesFromPoints(20, 25, 30, 22)

	_, err := Build(games, 24.5, DefaultMinGames)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInsufficientData)
}

func TestBuildBasicAggregates(t *testing.T) {
	games := gamesFromPoints(10, 20, 30, 40, 50)

	v, err := Build(games, 25, DefaultMinGames)
	require.NoError(t, err)

	assert.Equal(t, 5, v.SampleSize)
	assert.InDelta(t, 30, v.SeasonAverage, 1e-9)
	assert.InDelta(t, 5, v.SeasonMargin, 1e-9)
	assert.InDelta(t, 0.6, v.OverRateSeason, 1e-9)
	assert.Greater(t, v.StdDev, 0.0)
	assert.InDelta(t, v.StdDev/30, v.CoefVariation, 1e-9)
	assert.InDelta(t, 30.0/32.0, v.PointsPerMinute, 1e-9)
}

func TestBuildDeterministic(t *testing.T) {
	games := gamesFromPoints(18, 22, 25, 31, 27, 19, 24, 28)

	v1, err := Build(games, 23.5, DefaultMinGames)
	require.NoError(t, err)
	v2, err := Build(games, 23.5, DefaultMinGames)
	require.NoError(t, err)

	assert.Equal(t, v1.Map(), v2.Map())
}

func TestTrendSlopeDirection(t *testing.T) {
	rising, err := Build(gamesFromPoints(10, 14, 18, 22, 26, 30), 20, DefaultMinGames)
	require.NoError(t, err)
	falling, err := Build(gamesFromPoints(30, 26, 22, 18, 14, 10), 20, DefaultMinGames)
	require.NoError(t, err)
	flat, err := Build(gamesFromPoints(20, 20, 20, 20, 20), 20, DefaultMinGames)
	require.NoError(t, err)

	assert.Greater(t, rising.TrendSlope, 0.0)
	assert.Less(t, falling.TrendSlope, 0.0)
	assert.InDelta(t, 0, flat.TrendSlope, 1e-9)
}

func TestStreakSign(t *testing.T) {
	over, err := Build(gamesFromPoints(10, 10, 25, 26, 27), 20, DefaultMinGames)
	require.NoError(t, err)
	under, err := Build(gamesFromPoints(25, 26, 10, 11, 12), 20, DefaultMinGames)
	require.NoError(t, err)

	assert.Equal(t, 3.0, over.Streak)
	assert.Equal(t, -3.0, under.Streak)
}

func TestHomeAwaySplit(t *testing.T) {
	// Even indexes are home games per gamesFromPoints: home 30s, away 20s.
	games := gamesFromPoints(30, 20, 30, 20, 30, 20)

	v, err := Build(games, 25, DefaultMinGames)
	require.NoError(t, err)
	assert.InDelta(t, 10, v.HomeAwaySplit, 1e-9)
}

func TestHomeAwaySplitAllHome(t *testing.T) {
	games := gamesFromPoints(30, 20, 30, 20, 30)
	for i := range games {
		games[i].Away = false
	}

	v, err := Build(games, 25, DefaultMinGames)
	require.NoError(t, err)
	assert.Zero(t, v.HomeAwaySplit)
}

func TestEmpiricalOverRate(t *testing.T) {
	games := gamesFromPoints(10, 20, 30, 40)

	assert.InDelta(t, 0.5, EmpiricalOverRate(games, 25), 1e-9)
	assert.InDelta(t, 0, EmpiricalOverRate(games, 100), 1e-9)
	assert.InDelta(t, 1, EmpiricalOverRate(games, 5), 1e-9)
	assert.Zero(t, EmpiricalOverRate(nil, 25))
}

func TestEmpiricalOverRateStrictlyGreater(t *testing.T) {
	games := gamesFromPoints(20, 20, 20, 20)

	// Games exactly at the threshold do not count as overs.
	assert.Zero(t, EmpiricalOverRate(games, 20))
}

func TestPointsQuantile(t *testing.T) {
	games := gamesFromPoints(10, 20, 30, 40, 50)

	assert.InDelta(t, 10, PointsQuantile(games, 0), 1e-9)
	assert.InDelta(t, 50, PointsQuantile(games, 1), 1e-9)
	assert.InDelta(t, 30, PointsQuantile(games, 0.5), 1e-9)
	assert.InDelta(t, 18, PointsQuantile(games, 0.2), 1e-9)
	assert.Zero(t, PointsQuantile(nil, 0.5))
}
