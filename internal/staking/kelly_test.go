package staking

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/courtside/internal/models"
)

func testEngine() *Engine {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewEngine(logger)
}

func TestEvaluateNegativeEdgeNoStake(t *testing.T) {
	engine := testEngine()

	rec, err := engine.Evaluate(Input{
		Probability:     0.45,
		Odds:            1.80,
		Bankroll:        1000,
		RemainingEvents: 10,
		Confidence:      models.ConfidenceHigh,
	})
	require.NoError(t, err)

	assert.False(t, rec.Recommended)
	assert.Zero(t, rec.StakeAmount)
	// f = (0.45*0.80 - 0.55) / 0.80 = -0.2375
	assert.InDelta(t, -0.2375, rec.KellyFraction, 1e-9)
	assert.NotEmpty(t, rec.Rationale)
}

func TestEvaluateMaxBetCeiling(t *testing.T) {
	engine := testEngine()

	rec, err := engine.Evaluate(Input{
		Probability:     0.70,
		Odds:            1.90,
		Bankroll:        100,
		RemainingEvents: 2,
		Confidence:      models.ConfidenceHigh,
	})
	require.NoError(t, err)

	// Kelly f = (0.7*0.9 - 0.3) / 0.9 = 0.3667 -> 36.67; survival cap 50;
	// max-bet cap 15. The tightest ceiling wins.
	assert.True(t, rec.Recommended)
	assert.Equal(t, 15.0, rec.StakeAmount)
	assert.Equal(t, models.RiskExtreme, rec.RiskTier)
	assert.InDelta(t, 0.15, rec.StakeFraction, 1e-9)
}

func TestEvaluateSurvivalCeiling(t *testing.T) {
	engine := testEngine()

	rec, err := engine.Evaluate(Input{
		Probability:     0.70,
		Odds:            1.90,
		Bankroll:        1000,
		RemainingEvents: 100,
		Confidence:      models.ConfidenceHigh,
	})
	require.NoError(t, err)

	// Kelly stake 366.67, survival cap 1000/100 = 10, max-bet cap 150.
	assert.True(t, rec.Recommended)
	assert.Equal(t, 10.0, rec.StakeAmount)
	assert.Equal(t, models.RiskLow, rec.RiskTier)
}

func TestEvaluateConfidenceScaling(t *testing.T) {
	engine := testEngine()

	// Kelly f = (0.55*1.2 - 0.45) / 1.2 = 0.175: full Kelly stake 175,
	// survival cap 500, max-bet cap 150.
	in := Input{
		Probability:     0.55,
		Odds:            2.20,
		Bankroll:        1000,
		RemainingEvents: 2,
		Confidence:      models.ConfidenceHigh,
	}
	high, err := engine.Evaluate(in)
	require.NoError(t, err)

	in.Confidence = models.ConfidenceMedium
	medium, err := engine.Evaluate(in)
	require.NoError(t, err)

	in.Confidence = models.ConfidenceLow
	low, err := engine.Evaluate(in)
	require.NoError(t, err)

	// High confidence hits the max-bet ceiling; the scaled fractions fall
	// below it.
	assert.Equal(t, 150.0, high.StakeAmount)
	assert.Equal(t, 105.0, medium.StakeAmount)
	assert.Equal(t, 52.5, low.StakeAmount)
}

func TestEvaluateVeryLowConfidenceNeverStakes(t *testing.T) {
	engine := testEngine()

	rec, err := engine.Evaluate(Input{
		Probability:     0.80,
		Odds:            2.50,
		Bankroll:        1000,
		RemainingEvents: 10,
		Confidence:      models.ConfidenceVeryLow,
	})
	require.NoError(t, err)

	assert.False(t, rec.Recommended)
	assert.Zero(t, rec.StakeAmount)
	assert.Greater(t, rec.KellyFraction, 0.0)
}

func TestEvaluateUnknownConfidenceDefaultsToMedium(t *testing.T) {
	engine := testEngine()

	in := Input{
		Probability:     0.55,
		Odds:            2.20,
		Bankroll:        1000,
		RemainingEvents: 2,
		Confidence:      models.Confidence("BOGUS"),
	}
	bogus, err := engine.Evaluate(in)
	require.NoError(t, err)

	in.Confidence = models.ConfidenceMedium
	medium, err := engine.Evaluate(in)
	require.NoError(t, err)

	assert.Equal(t, medium.StakeAmount, bogus.StakeAmount)
}

func TestEvaluateInvalidOdds(t *testing.T) {
	engine := testEngine()

	for _, odds := range []float64{1.0, 0.5, -2, 0} {
		_, err := engine.Evaluate(Input{
			Probability:     0.6,
			Odds:            odds,
			Bankroll:        100,
			RemainingEvents: 5,
			Confidence:      models.ConfidenceHigh,
		})
		assert.ErrorIs(t, err, models.ErrInvalidOdds, "odds %.2f", odds)
	}
}

func TestEvaluateInvalidBankrollState(t *testing.T) {
	engine := testEngine()

	_, err := engine.Evaluate(Input{
		Probability:     0.6,
		Odds:            2.0,
		Bankroll:        0,
		RemainingEvents: 5,
		Confidence:      models.ConfidenceHigh,
	})
	assert.ErrorIs(t, err, models.ErrInvalidBankroll)

	_, err = engine.Evaluate(Input{
		Probability:     0.6,
		Odds:            2.0,
		Bankroll:        100,
		RemainingEvents: 0,
		Confidence:      models.ConfidenceHigh,
	})
	assert.ErrorIs(t, err, models.ErrInvalidBankroll)
}

func TestEvaluateInvalidProbability(t *testing.T) {
	engine := testEngine()

	for _, p := range []float64{-0.1, 1.1} {
		_, err := engine.Evaluate(Input{
			Probability:     p,
			Odds:            2.0,
			Bankroll:        100,
			RemainingEvents: 5,
			Confidence:      models.ConfidenceHigh,
		})
		assert.Error(t, err, "probability %v", p)
	}
}

func TestEvaluateExpectedValues(t *testing.T) {
	engine := testEngine()

	rec, err := engine.Evaluate(Input{
		Probability:     0.70,
		Odds:            1.90,
		Bankroll:        100,
		RemainingEvents: 2,
		Confidence:      models.ConfidenceHigh,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.4, rec.ExpectedWins, 1e-9)
	assert.InDelta(t, 0.6, rec.ExpectedLosses, 1e-9)
	// Profit on win: 15 * 0.9 = 13.50.
	assert.InDelta(t, 13.50, rec.PotentialProfit, 1e-9)
	// 1.4*13.50 - 0.6*15 = 9.90.
	assert.InDelta(t, 9.90, rec.ExpectedTotalProfit, 1e-9)
	assert.InDelta(t, 1/1.9, rec.BreakEvenProbability, 1e-9)
}

func TestRiskTierBands(t *testing.T) {
	assert.Equal(t, models.RiskLow, tierFor(0.02))
	assert.Equal(t, models.RiskMedium, tierFor(0.05))
	assert.Equal(t, models.RiskMedium, tierFor(0.09))
	assert.Equal(t, models.RiskHigh, tierFor(0.10))
	assert.Equal(t, models.RiskHigh, tierFor(0.14))
	assert.Equal(t, models.RiskExtreme, tierFor(0.15))
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 10.67, roundCents(10.666666))
	assert.Equal(t, 10.66, roundCents(10.664))
	assert.Equal(t, 0.0, roundCents(0))
}
