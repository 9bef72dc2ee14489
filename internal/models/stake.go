package models

// RiskTier bands the recommended stake as a fraction of bankroll.
type RiskTier string

const (
	RiskLow     RiskTier = "LOW"
	RiskMedium  RiskTier = "MEDIUM"
	RiskHigh    RiskTier = "HIGH"
	RiskExtreme RiskTier = "EXTREME"
)

// StakeRecommendation is the output of the Kelly stake engine.
type StakeRecommendation struct {
	Recommended     bool     `json:"recommended"`
	StakeAmount     float64  `json:"stake_amount" validate:"gte=0"`
	StakeFraction   float64  `json:"stake_fraction"`
	KellyFraction   float64  `json:"kelly_fraction"`
	RiskTier        RiskTier `json:"risk_tier"`
	PotentialProfit float64  `json:"potential_profit"`
	Rationale       string   `json:"rationale"`

	// Expectations over the remaining events at the given probability.
	ExpectedWins         float64 `json:"expected_wins"`
	ExpectedLosses       float64 `json:"expected_losses"`
	ExpectedTotalProfit  float64 `json:"expected_total_profit"`
	BreakEvenProbability float64 `json:"break_even_probability"`
}
