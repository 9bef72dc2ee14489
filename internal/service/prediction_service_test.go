package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/courtside/internal/cache"
	"github.com/yourusername/courtside/internal/ensemble"
	"github.com/yourusername/courtside/internal/gamelog"
	"github.com/yourusername/courtside/internal/models"
)

func newTestPredictionService(t *testing.T) *PredictionService {
	t.Helper()
	bundle, err := ensemble.LoadDefaultBundle()
	require.NoError(t, err)
	predictor := ensemble.NewPredictor(bundle, 5, quietLogger())
	return NewPredictionService(gamelog.NewParser(), predictor, cache.NewPredictionCache(time.Minute, 100), quietLogger())
}

func testCSV(n int) string {
	rows := []string{"Date,MP,PTS"}
	for i := 0; i < n; i++ {
		rows = append(rows, fmt.Sprintf("2026-01-%02d,33:00,%d", i+1, 20+i%9))
	}
	return strings.Join(rows, "\n")
}

func TestPredictSingleThreshold(t *testing.T) {
	svc := newTestPredictionService(t)

	outcome, err := svc.Predict(context.Background(), testCSV(25), []float64{23.5})
	require.NoError(t, err)

	require.Len(t, outcome.Results, 1)
	assert.Equal(t, 25, outcome.SampleSize)
	res := outcome.Results[0]
	assert.InDelta(t, 1.0, res.OverProbability+res.UnderProbability, 1e-12)
	assert.Greater(t, outcome.PlayerStats.SeasonAverage, 0.0)
}

func TestPredictCachedSecondCall(t *testing.T) {
	svc := newTestPredictionService(t)
	csvText := testCSV(25)

	first, err := svc.Predict(context.Background(), csvText, []float64{23.5})
	require.NoError(t, err)
	second, err := svc.Predict(context.Background(), csvText, []float64{23.5})
	require.NoError(t, err)

	assert.Equal(t, first.Results[0], second.Results[0])
	assert.Equal(t, first.PlayerStats, second.PlayerStats)
}

func TestPredictBatchOrdering(t *testing.T) {
	svc := newTestPredictionService(t)

	thresholds := []float64{27.5, 21.5, 24.5}
	outcome, err := svc.Predict(context.Background(), testCSV(30), thresholds)
	require.NoError(t, err)
	require.Len(t, outcome.Results, 3)

	for i, threshold := range thresholds {
		assert.Equal(t, threshold, outcome.Results[i].Threshold)
	}
	// Ascending thresholds carry non-increasing OVER probabilities.
	assert.GreaterOrEqual(t, outcome.Results[1].OverProbability, outcome.Results[2].OverProbability)
	assert.GreaterOrEqual(t, outcome.Results[2].OverProbability, outcome.Results[0].OverProbability)
}

func TestPredictParseError(t *testing.T) {
	svc := newTestPredictionService(t)

	_, err := svc.Predict(context.Background(), "Opp,MP\nBOS,30:00", []float64{23.5})
	assert.ErrorIs(t, err, models.ErrParse)
}

func TestPredictNoThresholds(t *testing.T) {
	svc := newTestPredictionService(t)

	_, err := svc.Predict(context.Background(), testCSV(10), nil)
	assert.Error(t, err)
}

func TestPredictSmallSampleFallback(t *testing.T) {
	svc := newTestPredictionService(t)

	outcome, err := svc.Predict(context.Background(), testCSV(4), []float64{23.5})
	require.NoError(t, err)

	assert.Equal(t, models.MethodEmpiricalFrequency, outcome.Results[0].MethodUsed)
	assert.Equal(t, models.ConfidenceVeryLow, outcome.Results[0].Confidence)
}
