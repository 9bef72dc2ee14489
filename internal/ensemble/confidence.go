package ensemble

import (
	"math"

	"github.com/yourusername/courtside/internal/models"
)

// Confidence banding breakpoints. Named so they can be tuned and tested
// independently of the classifier logic.
const (
	// HighConfidenceSampleSize is the minimum history for full confidence.
	HighConfidenceSampleSize = 20

	// MaxAgreementSpread is the widest member disagreement (max minus min
	// member probability) still considered agreement.
	MaxAgreementSpread = 0.15

	// MinProbabilityMargin is the minimum distance from the coin-flip
	// probability for a decisive prediction.
	MinProbabilityMargin = 0.15
)

// ClassifyConfidence maps probability, sample size and member agreement
// spread to an ordinal label. Confidence starts at HIGH and degrades one
// level per violated condition, floor VERY_LOW. Deterministic.
func ClassifyConfidence(probability float64, sampleSize int, spread float64) models.Confidence {
	conf := models.ConfidenceHigh
	if sampleSize < HighConfidenceSampleSize {
		conf = conf.Degrade()
	}
	if spread > MaxAgreementSpread {
		conf = conf.Degrade()
	}
	if math.Abs(probability-0.5) < MinProbabilityMargin {
		conf = conf.Degrade()
	}
	return conf
}

// agreementSpread is max minus min of the member probabilities.
func agreementSpread(probs []float64) float64 {
	if len(probs) < 2 {
		return 0
	}
	lo, hi := probs[0], probs[0]
	for _, p := range probs[1:] {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return hi - lo
}
