package models

// Confidence is an ordinal label summarizing prediction reliability.
type Confidence string

const (
	ConfidenceVeryLow Confidence = "VERY_LOW"
	ConfidenceLow     Confidence = "LOW"
	ConfidenceMedium  Confidence = "MEDIUM"
	ConfidenceHigh    Confidence = "HIGH"
)

// Degrade lowers the confidence by one level, floor VERY_LOW.
func (c Confidence) Degrade() Confidence {
	switch c {
	case ConfidenceHigh:
		return ConfidenceMedium
	case ConfidenceMedium:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}

// Valid reports whether c is one of the four known labels.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceVeryLow, ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	}
	return false
}

// Prediction methods reported via MethodUsed.
const (
	MethodEnsemble           = "ensemble"
	MethodEnsembleDegraded   = "ensemble_degraded"
	MethodEmpiricalFrequency = "empirical_frequency"
	MethodExtremeThreshold   = "extreme_threshold"
)

// PredictionResult is the outcome of a single-threshold prediction.
// Invariant: OverProbability + UnderProbability == 1 exactly.
type PredictionResult struct {
	Threshold        float64    `json:"threshold"`
	OverProbability  float64    `json:"over_probability" validate:"gte=0,lte=1"`
	UnderProbability float64    `json:"under_probability" validate:"gte=0,lte=1"`
	Confidence       Confidence `json:"confidence"`
	SampleSize       int        `json:"sample_size"`
	MethodUsed       string     `json:"method_used"`
	Adjusted         bool       `json:"adjusted"`
}
