// Package staking computes Kelly-Criterion stake recommendations with
// layered risk ceilings.
package staking

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside/internal/models"
)

// Risk ceilings and banding breakpoints. Named so they can be tuned and
// tested independently.
const (
	// MaxBetFraction caps any single stake at this share of bankroll.
	MaxBetFraction = 0.15

	// Risk tier bands on stake/bankroll.
	riskLowBand    = 0.05
	riskMediumBand = 0.10
	riskHighBand   = 0.15
)

// confidenceMultipliers scale the raw Kelly fraction down as prediction
// confidence drops. VERY_LOW never stakes.
var confidenceMultipliers = map[models.Confidence]float64{
	models.ConfidenceHigh:    1.0,
	models.ConfidenceMedium:  0.6,
	models.ConfidenceLow:     0.3,
	models.ConfidenceVeryLow: 0.0,
}

// Input carries everything the engine needs for one evaluation.
type Input struct {
	Probability     float64           `json:"probability" validate:"gte=0,lte=1"`
	Odds            float64           `json:"odds" validate:"gt=1"`
	Bankroll        float64           `json:"bankroll" validate:"gt=0"`
	RemainingEvents int               `json:"remaining_events" validate:"gt=0"`
	Confidence      models.Confidence `json:"confidence"`
}

// Engine evaluates stake recommendations. Stateless; safe for concurrent use.
type Engine struct {
	logger *logrus.Logger
}

// NewEngine creates a stake engine.
func NewEngine(logger *logrus.Logger) *Engine {
	return &Engine{logger: logger}
}

// Evaluate computes the recommended stake for the given edge and bankroll
// state.
//
// The raw Kelly fraction f = (p(b-1) - (1-p)) / (b-1) is scaled by a
// confidence multiplier, then the final stake is the MINIMUM of three
// independent ceilings: the fractional Kelly stake, the survival ceiling
// bankroll/remainingEvents, and the max-bet ceiling MaxBetFraction*bankroll.
// The tightest ceiling always wins. A non-positive edge never stakes.
func (e *Engine) Evaluate(in Input) (*models.StakeRecommendation, error) {
	if in.Odds <= 1 {
		return nil, fmt.Errorf("%w: got %.2f", models.ErrInvalidOdds, in.Odds)
	}
	if in.Bankroll <= 0 || in.RemainingEvents <= 0 {
		return nil, fmt.Errorf("%w: bankroll=%.2f remaining_events=%d",
			models.ErrInvalidBankroll, in.Bankroll, in.RemainingEvents)
	}
	if in.Probability < 0 || in.Probability > 1 {
		return nil, fmt.Errorf("probability must be within [0,1], got %v", in.Probability)
	}
	conf := in.Confidence
	if !conf.Valid() {
		conf = models.ConfidenceMedium
	}

	b := in.Odds - 1
	p := in.Probability
	q := 1 - p
	kelly := (p*b - q) / b

	rec := &models.StakeRecommendation{
		KellyFraction:        kelly,
		RiskTier:             models.RiskLow,
		BreakEvenProbability: 1 / in.Odds,
	}

	if kelly <= 0 {
		e.logger.WithFields(logrus.Fields{
			"probability": p,
			"odds":        in.Odds,
			"kelly":       kelly,
		}).Debug("Negative Kelly fraction, no stake recommended")
		rec.Rationale = "negative edge: the implied probability exceeds the predicted probability"
		return rec, nil
	}

	mult := confidenceMultipliers[conf]
	if mult == 0 {
		rec.Rationale = "confidence too low to stake"
		return rec, nil
	}
	fraction := kelly * mult

	kellyStake := fraction * in.Bankroll
	survivalCap := in.Bankroll / float64(in.RemainingEvents)
	maxBetCap := MaxBetFraction * in.Bankroll

	stake, ceiling := kellyStake, "kelly"
	if survivalCap < stake {
		stake, ceiling = survivalCap, "survival"
	}
	if maxBetCap < stake {
		stake, ceiling = maxBetCap, "max_bet"
	}

	// Round to cents for presentation; the tier is banded on the rounded
	// amount so the reported stake and tier always agree.
	stake = roundCents(stake)

	rec.Recommended = true
	rec.StakeAmount = stake
	rec.StakeFraction = stake / in.Bankroll
	rec.RiskTier = tierFor(stake / in.Bankroll)
	rec.PotentialProfit = roundCents(stake * b)
	rec.Rationale = rationaleFor(ceiling, conf)

	expectedWins := float64(in.RemainingEvents) * p
	rec.ExpectedWins = expectedWins
	rec.ExpectedLosses = float64(in.RemainingEvents) - expectedWins
	rec.ExpectedTotalProfit = roundCents(expectedWins*rec.PotentialProfit - rec.ExpectedLosses*stake)

	e.logger.WithFields(logrus.Fields{
		"kelly":       kelly,
		"confidence":  conf,
		"stake":       stake,
		"ceiling":     ceiling,
		"risk_tier":   rec.RiskTier,
	}).Debug("Stake evaluated")

	return rec, nil
}

func tierFor(ratio float64) models.RiskTier {
	switch {
	case ratio < riskLowBand:
		return models.RiskLow
	case ratio < riskMediumBand:
		return models.RiskMedium
	case ratio < riskHighBand:
		return models.RiskHigh
	default:
		return models.RiskExtreme
	}
}

func rationaleFor(ceiling string, conf models.Confidence) string {
	switch ceiling {
	case "survival":
		return fmt.Sprintf("stake capped to preserve bankroll across remaining events (confidence %s)", conf)
	case "max_bet":
		return fmt.Sprintf("stake capped at %.0f%% of bankroll (confidence %s)", MaxBetFraction*100, conf)
	default:
		return fmt.Sprintf("fractional Kelly stake at %s confidence", conf)
	}
}

func roundCents(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
