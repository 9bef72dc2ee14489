package staking

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/yourusername/courtside/internal/models"
)

// SimulationInput configures a Monte Carlo bankroll projection. Each
// iteration plays the remaining events in sequence, re-evaluating the stake
// after every result so the trajectory compounds the way a live project
// would.
type SimulationInput struct {
	Probability float64           `json:"probability" validate:"gte=0,lte=1"`
	Odds        float64           `json:"odds" validate:"gt=1"`
	Bankroll    float64           `json:"bankroll" validate:"gt=0"`
	Events      int               `json:"events" validate:"gt=0"`
	Target      float64           `json:"target,omitempty"`
	Confidence  models.Confidence `json:"confidence"`
	Iterations  int               `json:"iterations,omitempty"`
	Seed        int64             `json:"seed,omitempty"`
}

// SimulationResult summarizes the terminal bankroll distribution.
type SimulationResult struct {
	Iterations          int                `json:"iterations"`
	MeanReturn          float64            `json:"mean_return"`
	StdReturn           float64            `json:"std_return"`
	VaR95               float64            `json:"var_95"`
	VaR99               float64            `json:"var_99"`
	ProbabilityOfProfit float64            `json:"probability_of_profit"`
	ProbabilityOfRuin   float64            `json:"probability_of_ruin"`
	ProbabilityOfTarget float64            `json:"probability_of_target,omitempty"`
	MedianFinalBankroll float64            `json:"median_final_bankroll"`
	ConfidenceIntervals map[string]float64 `json:"confidence_intervals"`
}

const defaultSimulationIterations = 1000

// Simulate runs a Monte Carlo projection of the project bankroll under the
// engine's staking policy. The context is checked between iterations so a
// cancelled request does not burn CPU.
func (e *Engine) Simulate(ctx context.Context, in SimulationInput) (*SimulationResult, error) {
	if in.Odds <= 1 {
		return nil, fmt.Errorf("%w: got %.2f", models.ErrInvalidOdds, in.Odds)
	}
	if in.Bankroll <= 0 || in.Events <= 0 {
		return nil, fmt.Errorf("%w: bankroll=%.2f events=%d",
			models.ErrInvalidBankroll, in.Bankroll, in.Events)
	}
	if in.Probability < 0 || in.Probability > 1 {
		return nil, fmt.Errorf("probability must be within [0,1], got %v", in.Probability)
	}

	iterations := in.Iterations
	if iterations <= 0 {
		iterations = defaultSimulationIterations
	}
	seed := in.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	target := 0.0
	if in.Target > 0 {
		target = in.Bankroll + in.Target
	}

	finals := make([]float64, iterations)
	reachedTarget := 0
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bankroll := e.playTrajectory(rng, in, target)
		if target > 0 && bankroll >= target {
			reachedTarget++
		}
		finals[i] = bankroll
	}

	mean, std := meanStd(finals)
	result := &SimulationResult{
		Iterations:          iterations,
		MeanReturn:          (mean - in.Bankroll) / in.Bankroll,
		StdReturn:           std / in.Bankroll,
		VaR95:               (quantileOf(finals, 0.05) - in.Bankroll) / in.Bankroll,
		VaR99:               (quantileOf(finals, 0.01) - in.Bankroll) / in.Bankroll,
		ProbabilityOfProfit: shareAbove(finals, in.Bankroll),
		ProbabilityOfRuin:   shareAtOrBelow(finals, 0),
		MedianFinalBankroll: quantileOf(finals, 0.5),
		ConfidenceIntervals: intervalWidths(finals, []float64{0.9, 0.95, 0.99}),
	}
	if target > 0 {
		result.ProbabilityOfTarget = float64(reachedTarget) / float64(iterations)
	}
	return result, nil
}

// playTrajectory runs one iteration: stake, resolve, compound, until the
// events are exhausted or a terminal condition is hit.
func (e *Engine) playTrajectory(rng *rand.Rand, in SimulationInput, target float64) float64 {
	bankroll := in.Bankroll
	for remaining := in.Events; remaining > 0; remaining-- {
		rec, err := e.Evaluate(Input{
			Probability:     in.Probability,
			Odds:            in.Odds,
			Bankroll:        bankroll,
			RemainingEvents: remaining,
			Confidence:      in.Confidence,
		})
		if err != nil || !rec.Recommended {
			break
		}
		if rng.Float64() < in.Probability {
			bankroll += rec.PotentialProfit
		} else {
			bankroll -= rec.StakeAmount
		}
		if bankroll <= 0 {
			return 0
		}
		if target > 0 && bankroll >= target {
			break
		}
	}
	return bankroll
}

func intervalWidths(values []float64, levels []float64) map[string]float64 {
	widths := make(map[string]float64, len(levels))
	for _, level := range levels {
		p := (1 - level) / 2
		low := quantileOf(values, p)
		high := quantileOf(values, 1-p)
		widths[fmt.Sprintf("%.0f%%", level*100)] = high - low
	}
	return widths
}

func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}

func quantileOf(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	idx := int(math.Floor(p * float64(len(sorted)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func shareAbove(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	count := 0
	for _, v := range values {
		if v > threshold {
			count++
		}
	}
	return float64(count) / float64(len(values))
}

func shareAtOrBelow(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	count := 0
	for _, v := range values {
		if v <= threshold {
			count++
		}
	}
	return float64(count) / float64(len(values))
}
