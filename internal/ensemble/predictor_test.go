package ensemble

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/courtside/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func logFromPoints(pts ...float64) *models.GameLog {
	log := &models.GameLog{}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range pts {
		log.Games = append(log.Games, models.GameRecord{
			Date:    base.AddDate(0, 0, i),
			Points:  p,
			Minutes: 33,
			Away:    i%2 == 1,
		})
	}
	return log
}

// scorerLog is a 30-game log hovering around 25 points.
func scorerLog() *models.GameLog {
	pts := make([]float64, 0, 30)
	for i := 0; i < 30; i++ {
		pts = append(pts, 25+float64(i%7)-3)
	}
	return logFromPoints(pts...)
}

func TestPredictProbabilityRange(t *testing.T) {
	bundle, err := LoadDefaultBundle()
	require.NoError(t, err)
	p := NewPredictor(bundle, 5, testLogger())

	for _, threshold := range []float64{10.5, 20.5, 25.5, 30.5, 40.5} {
		res, err := p.Predict(scorerLog(), threshold)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, res.OverProbability, 0.0)
		assert.LessOrEqual(t, res.OverProbability, 1.0)
		assert.InDelta(t, 1.0, res.OverProbability+res.UnderProbability, 1e-12,
			"over and under must sum to one at threshold %.1f", threshold)
	}
}

func TestPredictDeterministic(t *testing.T) {
	bundle, err := LoadDefaultBundle()
	require.NoError(t, err)
	p := NewPredictor(bundle, 5, testLogger())

	r1, err := p.Predict(scorerLog(), 24.5)
	require.NoError(t, err)
	r2, err := p.Predict(scorerLog(), 24.5)
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
}

func TestPredictBatchMonotonicity(t *testing.T) {
	bundle, err := LoadDefaultBundle()
	require.NoError(t, err)
	p := NewPredictor(bundle, 5, testLogger())

	thresholds := []float64{22.5, 24.5, 26.5, 28.5}
	results, err := p.PredictBatch(scorerLog(), thresholds)
	require.NoError(t, err)
	require.Len(t, results, len(thresholds))

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i].OverProbability, results[i-1].OverProbability,
			"OVER probability must not increase with the threshold")
	}
}

func TestPredictBatchCallerOrderPreserved(t *testing.T) {
	bundle, err := LoadDefaultBundle()
	require.NoError(t, err)
	p := NewPredictor(bundle, 5, testLogger())

	// Descending caller order; results must come back in the same order.
	thresholds := []float64{28.5, 22.5, 25.5}
	results, err := p.PredictBatch(scorerLog(), thresholds)
	require.NoError(t, err)

	for i, threshold := range thresholds {
		assert.Equal(t, threshold, results[i].Threshold)
	}

	// Monotonicity still holds when re-sorted ascending.
	assert.GreaterOrEqual(t, results[1].OverProbability, results[2].OverProbability)
	assert.GreaterOrEqual(t, results[2].OverProbability, results[0].OverProbability)
}

func TestPredictBatchEmptyThresholds(t *testing.T) {
	bundle, err := LoadDefaultBundle()
	require.NoError(t, err)
	p := NewPredictor(bundle, 5, testLogger())

	_, err = p.PredictBatch(scorerLog(), nil)
	assert.Error(t, err)
}

func TestPredictEmpiricalFallbackBelowMinimum(t *testing.T) {
	bundle, err := LoadDefaultBundle()
	require.NoError(t, err)
	p := NewPredictor(bundle, 5, testLogger())

	res, err := p.Predict(logFromPoints(20, 30, 25, 28), 24.5)
	require.NoError(t, err)

	assert.Equal(t, models.MethodEmpiricalFrequency, res.MethodUsed)
	assert.Equal(t, models.ConfidenceVeryLow, res.Confidence)
	assert.Equal(t, 4, res.SampleSize)
	// 3 of 4 games exceed 24.5.
	assert.InDelta(t, 0.75, res.OverProbability, 1e-9)
}

func TestPredictExtremeThresholdFallback(t *testing.T) {
	bundle, err := LoadDefaultBundle()
	require.NoError(t, err)
	p := NewPredictor(bundle, 5, testLogger())

	res, err := p.Predict(scorerLog(), 80.5)
	require.NoError(t, err)

	assert.Equal(t, models.MethodExtremeThreshold, res.MethodUsed)
	assert.Equal(t, models.ConfidenceLow, res.Confidence)
	assert.Zero(t, res.OverProbability)
	assert.Equal(t, 1.0, res.UnderProbability)
}

func TestPredictRecentWindowCap(t *testing.T) {
	bundle, err := LoadDefaultBundle()
	require.NoError(t, err)
	p := NewPredictor(bundle, 5, testLogger())

	// 60 games: only the most recent 35 should feed the prediction.
	pts := make([]float64, 60)
	for i := range pts {
		pts[i] = 25
	}
	res, err := p.Predict(logFromPoints(pts...), 24.5)
	require.NoError(t, err)

	assert.Equal(t, RecentWindow, res.SampleSize)
}

func TestClassifyConfidence(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		sampleSize  int
		spread      float64
		want        models.Confidence
	}{
		{"all conditions met", 0.72, 25, 0.05, models.ConfidenceHigh},
		{"small sample", 0.72, 10, 0.05, models.ConfidenceMedium},
		{"wide spread", 0.72, 25, 0.30, models.ConfidenceMedium},
		{"near coin flip", 0.55, 25, 0.05, models.ConfidenceMedium},
		{"small sample and spread", 0.72, 10, 0.30, models.ConfidenceLow},
		{"all violated", 0.55, 10, 0.30, models.ConfidenceVeryLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyConfidence(tt.probability, tt.sampleSize, tt.spread))
		})
	}
}

func TestAgreementSpread(t *testing.T) {
	assert.Zero(t, agreementSpread(nil))
	assert.Zero(t, agreementSpread([]float64{0.6}))
	assert.InDelta(t, 0.2, agreementSpread([]float64{0.5, 0.7, 0.6}), 1e-9)
}

func TestBundleDegradedWithoutBoosted(t *testing.T) {
	full, err := LoadDefaultBundle()
	require.NoError(t, err)
	assert.False(t, full.Degraded())

	degraded := &Bundle{
		version: "test",
		weights: map[string]float64{"linear": 0.5, "forest": 0.5},
		members: full.Members()[:2],
	}
	assert.True(t, degraded.Degraded())

	p := NewPredictor(degraded, 5, testLogger())
	res, err := p.Predict(scorerLog(), 24.5)
	require.NoError(t, err)
	assert.Equal(t, models.MethodEnsembleDegraded, res.MethodUsed)
}

func TestCombineWeightedAverage(t *testing.T) {
	bundle, err := LoadDefaultBundle()
	require.NoError(t, err)

	feats := map[string]float64{}
	prob, memberProbs := bundle.Combine(feats)

	assert.Len(t, memberProbs, len(bundle.Members()))
	assert.GreaterOrEqual(t, prob, 0.0)
	assert.LessOrEqual(t, prob, 1.0)
}

func TestTreeEval(t *testing.T) {
	tree := &TreeNode{
		Feature: "margin_last10",
		Split:   0,
		Left:    &TreeNode{Leaf: true, Value: 0.3},
		Right:   &TreeNode{Leaf: true, Value: 0.8},
	}

	assert.Equal(t, 0.3, tree.Eval(map[string]float64{"margin_last10": -2}))
	assert.Equal(t, 0.8, tree.Eval(map[string]float64{"margin_last10": 3}))
	// Boundary routes left.
	assert.Equal(t, 0.3, tree.Eval(map[string]float64{"margin_last10": 0}))
}
