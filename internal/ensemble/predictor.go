package ensemble

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside/internal/features"
	"github.com/yourusername/courtside/internal/models"
)

// RecentWindow caps how much history feeds a prediction; older games carry
// little signal for current form.
const RecentWindow = 35

// Quantile bounds beyond which a threshold is considered unrealistic for
// the observed scoring distribution and the ensemble is bypassed.
const (
	extremeLowQuantile  = 0.05
	extremeHighQuantile = 0.95
)

// Predictor scores OVER probabilities for point thresholds against a game
// log. It is stateless apart from the immutable model bundle, so a single
// instance serves concurrent requests without coordination.
type Predictor struct {
	bundle   *Bundle
	minGames int
	logger   *logrus.Logger
}

// NewPredictor creates a predictor around a loaded model bundle.
func NewPredictor(bundle *Bundle, minGames int, logger *logrus.Logger) *Predictor {
	if minGames <= 0 {
		minGames = features.DefaultMinGames
	}
	return &Predictor{
		bundle:   bundle,
		minGames: minGames,
		logger:   logger,
	}
}

// Predict scores a single threshold.
func (p *Predictor) Predict(log *models.GameLog, threshold float64) (*models.PredictionResult, error) {
	results, err := p.PredictBatch(log, []float64{threshold})
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// PredictBatch scores multiple thresholds against the same game log.
// Thresholds are evaluated in ascending order so the monotonicity clamp can
// be applied: holding the history fixed, the OVER probability for a higher
// threshold must never exceed the probability already produced for a lower
// one. The clamp is a separate post-processing step over raw model output.
// Results are returned in the caller's threshold order.
func (p *Predictor) PredictBatch(log *models.GameLog, thresholds []float64) ([]*models.PredictionResult, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("no thresholds supplied")
	}
	games := log.Tail(RecentWindow)

	order := make([]int, len(thresholds))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return thresholds[order[a]] < thresholds[order[b]]
	})

	results := make([]*models.PredictionResult, len(thresholds))
	prevOver := 1.0
	for _, idx := range order {
		res := p.predictOne(games, thresholds[idx])

		if res.OverProbability > prevOver {
			res.OverProbability = prevOver
			res.Adjusted = true
		}
		prevOver = res.OverProbability

		res.UnderProbability = 1 - res.OverProbability
		results[idx] = res
	}

	return results, nil
}

func (p *Predictor) predictOne(games []models.GameRecord, threshold float64) *models.PredictionResult {
	n := len(games)

	if n < p.minGames {
		p.logger.WithFields(logrus.Fields{
			"sample_size": n,
			"min_games":   p.minGames,
			"threshold":   threshold,
		}).Debug("Below minimum sample size, using empirical frequency")

		return &models.PredictionResult{
			Threshold:       threshold,
			OverProbability: features.EmpiricalOverRate(games, threshold),
			Confidence:      models.ConfidenceVeryLow,
			SampleSize:      n,
			MethodUsed:      models.MethodEmpiricalFrequency,
		}
	}

	// Thresholds far outside the observed scoring range carry no training
	// signal; the empirical rate is the honest answer there.
	lowBound := features.PointsQuantile(games, extremeLowQuantile)
	highBound := features.PointsQuantile(games, extremeHighQuantile)
	if threshold > highBound || threshold < lowBound {
		return &models.PredictionResult{
			Threshold:       threshold,
			OverProbability: features.EmpiricalOverRate(games, threshold),
			Confidence:      models.ConfidenceLow,
			SampleSize:      n,
			MethodUsed:      models.MethodExtremeThreshold,
		}
	}

	vec, err := features.Build(games, threshold, p.minGames)
	if err != nil {
		// Build only fails below the minimum, which was checked above.
		return &models.PredictionResult{
			Threshold:       threshold,
			OverProbability: features.EmpiricalOverRate(games, threshold),
			Confidence:      models.ConfidenceVeryLow,
			SampleSize:      n,
			MethodUsed:      models.MethodEmpiricalFrequency,
		}
	}

	over, memberProbs := p.bundle.Combine(vec.Map())
	spread := agreementSpread(memberProbs)

	method := models.MethodEnsemble
	if p.bundle.Degraded() {
		method = models.MethodEnsembleDegraded
	}

	return &models.PredictionResult{
		Threshold:       threshold,
		OverProbability: over,
		Confidence:      ClassifyConfidence(over, n, spread),
		SampleSize:      n,
		MethodUsed:      method,
	}
}
